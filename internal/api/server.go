// Package api provides the HTTP API for game boards.
// GET endpoints are public (read-only queries).
// POST endpoints require a bearer token (admin control plane).
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/talgya/settlers/internal/board"
	"github.com/talgya/settlers/internal/entropy"
	"github.com/talgya/settlers/internal/hexgrid"
	"github.com/talgya/settlers/internal/persistence"
	"github.com/talgya/settlers/internal/rules"
)

// Server serves game state over HTTP.
type Server struct {
	DB       *persistence.DB
	Rand     entropy.Source
	Port     int
	AdminKey string // Bearer token for POST endpoints. Empty = POST disabled.

	// Serializes game writes; reads go straight to the database.
	mu sync.Mutex
}

// Handler builds the routing table. Exposed for tests.
func (s *Server) Handler() http.Handler {
	// Board generation burns shuffle retries; keep creation rate limited.
	createLimiter := NewRateLimiter(60, time.Hour)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/games", s.adminOnly(RateLimitMiddleware(createLimiter, s.handleGames)))
	mux.HandleFunc("/api/v1/game/", s.adminOnly(s.handleGameRoutes))

	return corsMiddleware(mux)
}

// Start begins serving the HTTP API in a goroutine.
func (s *Server) Start() {
	addr := fmt.Sprintf(":%d", s.Port)
	slog.Info("HTTP API starting", "addr", addr, "admin_auth", s.AdminKey != "")

	handler := s.Handler()
	go func() {
		if err := http.ListenAndServe(addr, handler); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

// corsMiddleware adds CORS headers for allowed frontend origins.
// Set CORS_ORIGINS env var to a comma-separated list of allowed origins.
// Localhost dev servers are always allowed.
func corsMiddleware(next http.Handler) http.Handler {
	allowedOrigins := map[string]bool{
		"http://localhost:5173": true,
		"http://localhost:4173": true,
		"http://localhost:3000": true,
	}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		for _, origin := range strings.Split(env, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				allowedOrigins[origin] = true
			}
		}
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowedOrigins[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// checkBearerToken returns true if the request has a valid admin bearer token.
func (s *Server) checkBearerToken(r *http.Request) bool {
	auth := r.Header.Get("Authorization")
	return strings.HasPrefix(auth, "Bearer ") && strings.TrimPrefix(auth, "Bearer ") == s.AdminKey
}

// adminOnly wraps a handler to require bearer token auth on POST requests.
// GET requests pass through.
func (s *Server) adminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			if s.AdminKey == "" {
				http.Error(w, "admin endpoints disabled (no BOARDSIM_ADMIN_KEY set)", http.StatusForbidden)
				return
			}
			if !s.checkBearerToken(r) {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
		}
		next(w, r)
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	games, err := s.DB.ListGames()
	if err != nil {
		slog.Error("list games failed", "error", err)
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]any{
		"name":  "settlers",
		"games": len(games),
	})
}

// handleGames dispatches GET (list) and POST (create) on /api/v1/games.
func (s *Server) handleGames(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		games, err := s.DB.ListGames()
		if err != nil {
			slog.Error("list games failed", "error", err)
			http.Error(w, "database error", http.StatusInternalServerError)
			return
		}
		if games == nil {
			games = []persistence.GameRecord{}
		}
		writeJSON(w, games)
	case http.MethodPost:
		s.handleCreateGame(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name   string `json:"name"`
		Layout string `json:"layout"`
		Seed   *int64 `json:"seed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		req.Name = "game"
	}

	var layout board.Layout
	switch req.Layout {
	case "", "standard":
		layout = board.StandardLayout()
	case "island":
		cfg := board.DefaultIslandConfig()
		if req.Seed != nil {
			cfg.Seed = *req.Seed
		}
		layout = board.IslandLayout(cfg)
	default:
		http.Error(w, "unknown layout", http.StatusBadRequest)
		return
	}

	src := s.Rand
	if req.Seed != nil {
		src = entropy.NewSeeded(*req.Seed)
	}

	snap, err := board.Generate(layout, src)
	if err != nil {
		if errors.Is(err, board.ErrGenerationFailed) {
			slog.Warn("board generation failed", "layout", req.Layout)
			http.Error(w, "failed to generate board", http.StatusServiceUnavailable)
			return
		}
		slog.Error("board generation error", "error", err)
		http.Error(w, "generation error", http.StatusInternalServerError)
		return
	}

	s.mu.Lock()
	rec, err := s.DB.CreateGame(req.Name, snap)
	s.mu.Unlock()
	if err != nil {
		slog.Error("create game failed", "error", err)
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, rec)
}

// handleGameRoutes dispatches /api/v1/game/:id and its sub-resources.
func (s *Server) handleGameRoutes(w http.ResponseWriter, r *http.Request) {
	// /api/v1/game/:id/... → parts[0]="" [1]="api" [2]="v1" [3]="game" [4]=id [5]=sub
	parts := strings.Split(r.URL.Path, "/")
	if len(parts) < 5 || parts[4] == "" {
		http.Error(w, "missing game id", http.StatusBadRequest)
		return
	}
	id := parts[4]

	snap, err := s.DB.LoadSnapshot(id)
	if err != nil {
		if errors.Is(err, persistence.ErrGameNotFound) {
			http.Error(w, "game not found", http.StatusNotFound)
			return
		}
		slog.Error("load snapshot failed", "error", err, "game", id)
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}

	if len(parts) < 6 || parts[5] == "" {
		s.handleBoard(w, snap)
		return
	}

	switch parts[5] {
	case "spots":
		if len(parts) < 7 {
			http.Error(w, "usage: /api/v1/game/:id/spots/{settlements,roads,cities}", http.StatusBadRequest)
			return
		}
		s.handleSpots(w, r, snap, parts[6])
	case "roll":
		s.handleRoll(w, r, id, snap)
	case "rolls":
		s.handleRollHistory(w, r, id)
	case "production":
		s.handleProduction(w, r, snap)
	default:
		http.Error(w, "not found", http.StatusNotFound)
	}
}

// handleBoard returns the full board for the renderer. Water tiles
// carry their shoreline pattern as a rendering hint.
func (s *Server) handleBoard(w http.ResponseWriter, snap *board.Snapshot) {
	type tileEntry struct {
		Q         int    `json:"q"`
		R         int    `json:"r"`
		Terrain   string `json:"terrain"`
		Number    int    `json:"number,omitempty"`
		HasRobber bool   `json:"has_robber,omitempty"`
		Shore     string `json:"shore,omitempty"`
		ShoreRot  int    `json:"shore_rotation,omitempty"`
	}

	tiles := make([]tileEntry, 0, len(snap.Tiles))
	for _, t := range snap.Tiles {
		entry := tileEntry{
			Q:         t.Coord.Q,
			R:         t.Coord.R,
			Terrain:   board.TerrainName(t.Terrain),
			Number:    t.Number,
			HasRobber: t.HasRobber,
		}
		if t.Terrain == board.TerrainWater {
			pattern, rot := board.Shoreline(snap, t.Coord)
			entry.Shore = board.ShorePatternName(pattern)
			entry.ShoreRot = rot
		}
		tiles = append(tiles, entry)
	}

	buildings := make([]board.Building, 0, len(snap.Buildings))
	for _, b := range snap.Buildings {
		buildings = append(buildings, b)
	}
	roads := make([]board.RoadPiece, 0, len(snap.Roads))
	for _, rd := range snap.Roads {
		roads = append(roads, rd)
	}

	writeJSON(w, map[string]any{
		"tiles":     tiles,
		"buildings": buildings,
		"roads":     roads,
		"ports":     snap.Ports,
	})
}

// handleSpots returns valid placement locations for a player.
func (s *Server) handleSpots(w http.ResponseWriter, r *http.Request, snap *board.Snapshot, kind string) {
	player := board.PlayerID(r.URL.Query().Get("player"))
	if player == "" {
		http.Error(w, "missing player", http.StatusBadRequest)
		return
	}

	phase := rules.PhaseNormal
	switch r.URL.Query().Get("phase") {
	case "", "normal":
	case "setup":
		phase = rules.PhaseSetup
	default:
		http.Error(w, "phase must be setup or normal", http.StatusBadRequest)
		return
	}

	switch kind {
	case "settlements":
		writeJSON(w, nonNilVertices(rules.ValidSettlementSpots(snap, phase, player)))
	case "roads":
		writeJSON(w, nonNilEdges(rules.ValidRoadSpots(snap, player)))
	case "cities":
		writeJSON(w, nonNilVertices(rules.ValidCitySpots(snap, player)))
	default:
		http.Error(w, "unknown spot kind", http.StatusNotFound)
	}
}

// handleRoll rolls the dice for a game, records the roll, and returns
// the resulting production.
func (s *Server) handleRoll(w http.ResponseWriter, r *http.Request, id string, snap *board.Snapshot) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	roll := rules.RollDice(s.Rand)

	s.mu.Lock()
	err := s.DB.AppendRoll(id, roll)
	s.mu.Unlock()
	if err != nil {
		slog.Error("append roll failed", "error", err, "game", id)
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}

	slog.Info("dice rolled", "game", id, "die1", roll.Die1, "die2", roll.Die2, "total", roll.Total)

	writeJSON(w, map[string]any{
		"roll":       roll,
		"production": productionPayload(snap, roll.Total),
	})
}

func (s *Server) handleRollHistory(w http.ResponseWriter, r *http.Request, id string) {
	limit := 50
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	rolls, err := s.DB.RecentRolls(id, limit)
	if err != nil {
		slog.Error("roll history failed", "error", err, "game", id)
		http.Error(w, "database error", http.StatusInternalServerError)
		return
	}
	if rolls == nil {
		rolls = []persistence.RollRecord{}
	}
	writeJSON(w, rolls)
}

// handleProduction returns the per-player deltas for a hypothetical
// roll total without recording anything.
func (s *Server) handleProduction(w http.ResponseWriter, r *http.Request, snap *board.Snapshot) {
	total, err := strconv.Atoi(r.URL.Query().Get("total"))
	if err != nil || total < 2 || total > 12 {
		http.Error(w, "total must be 2-12", http.StatusBadRequest)
		return
	}
	writeJSON(w, productionPayload(snap, total))
}

func productionPayload(snap *board.Snapshot, total int) map[string]any {
	production := rules.ProductionForRoll(snap, total)
	perPlayer := make(map[string]map[string]int, len(production))
	for player, counts := range production {
		deltas := make(map[string]int, board.NumResources)
		for i := 0; i < board.NumResources; i++ {
			res := board.Resource(i)
			deltas[strings.ToLower(board.ResourceName(res))] = counts.Get(res)
		}
		perPlayer[string(player)] = deltas
	}
	return map[string]any{
		"total":       total,
		"probability": rules.RollProbability(total),
		"players":     perPlayer,
	}
}

func nonNilVertices(vs []hexgrid.VertexCoord) []hexgrid.VertexCoord {
	if vs == nil {
		return []hexgrid.VertexCoord{}
	}
	return vs
}

func nonNilEdges(es []hexgrid.EdgeCoord) []hexgrid.EdgeCoord {
	if es == nil {
		return []hexgrid.EdgeCoord{}
	}
	return es
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(data)
}
