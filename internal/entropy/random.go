// Package entropy provides the randomness sources behind board
// generation and dice rolls: true randomness via random.org when an API
// key is configured, crypto/rand otherwise, and a seeded deterministic
// source for reproducible tests.
package entropy

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"encoding/json"
	"io"
	"log/slog"
	mrand "math/rand"
	"net/http"
	"sync"
	"time"
)

// Source yields uniform random integers. All draws in the module go
// through this interface so any consumer can be made deterministic.
type Source interface {
	// Intn returns a uniform value in [0, n). n must be > 0.
	Intn(n int) int
}

// Crypto is a Source backed by crypto/rand.
type Crypto struct{}

// Intn returns a uniform value in [0, n) using rejection sampling, so
// no modulo bias is introduced.
func (Crypto) Intn(n int) int {
	if n <= 0 {
		panic("entropy: Intn with non-positive n")
	}
	max := ^uint64(0)
	limit := max - max%uint64(n)
	for {
		var buf [8]byte
		if _, err := rand.Read(buf[:]); err != nil {
			// crypto/rand never fails on supported platforms; fall back
			// to the process-global PRNG rather than looping forever.
			return mrand.Intn(n)
		}
		v := binary.LittleEndian.Uint64(buf[:])
		if v < limit {
			return int(v % uint64(n))
		}
	}
}

// NewSeeded returns a deterministic Source for the given seed.
func NewSeeded(seed int64) Source {
	return seededSource{rng: mrand.New(mrand.NewSource(seed))}
}

type seededSource struct {
	rng *mrand.Rand
}

func (s seededSource) Intn(n int) int {
	return s.rng.Intn(n)
}

// Shuffle permutes n elements with a uniform Fisher–Yates shuffle.
func Shuffle(src Source, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		swap(i, j)
	}
}

// Client provides true random numbers from random.org with a local
// pool. A nil Client is valid and draws from crypto/rand.
type Client struct {
	apiKey string
	client *http.Client

	mu   sync.Mutex
	pool []float64
}

// NewClient creates a random.org client. Returns nil if apiKey is
// empty; a nil Client is still a usable Source.
func NewClient(apiKey string) *Client {
	if apiKey == "" {
		return nil
	}
	return &Client{
		apiKey: apiKey,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Intn returns a uniform value in [0, n). Uses the random.org pool,
// refilling when low, and falls back to crypto/rand on API failure.
func (c *Client) Intn(n int) int {
	if n <= 0 {
		panic("entropy: Intn with non-positive n")
	}
	if c == nil {
		return Crypto{}.Intn(n)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.pool) < 10 {
		c.refill()
	}

	if len(c.pool) == 0 {
		return Crypto{}.Intn(n)
	}

	val := c.pool[0]
	c.pool = c.pool[1:]

	i := int(val * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Enabled returns true if the client has a valid API key.
func (c *Client) Enabled() bool {
	return c != nil && c.apiKey != ""
}

func (c *Client) refill() {
	req := map[string]any{
		"jsonrpc": "2.0",
		"method":  "generateDecimalFractions",
		"params": map[string]any{
			"apiKey":        c.apiKey,
			"n":             100,
			"decimalPlaces": 6,
		},
		"id": 1,
	}

	body, err := json.Marshal(req)
	if err != nil {
		slog.Debug("random.org marshal failed", "error", err)
		return
	}

	resp, err := c.client.Post("https://api.random.org/json-rpc/4/invoke", "application/json", bytes.NewReader(body))
	if err != nil {
		slog.Debug("random.org fetch failed", "error", err)
		return
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Debug("random.org read failed", "error", err)
		return
	}

	var result struct {
		Result struct {
			Random struct {
				Data []float64 `json:"data"`
			} `json:"random"`
		} `json:"result"`
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}

	if err := json.Unmarshal(respBody, &result); err != nil {
		slog.Debug("random.org parse failed", "error", err)
		return
	}

	if result.Error != nil {
		slog.Debug("random.org API error", "error", result.Error.Message)
		return
	}

	c.pool = append(c.pool, result.Result.Random.Data...)
	slog.Debug("random.org pool refilled", "count", len(result.Result.Random.Data))
}
