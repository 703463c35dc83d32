// Command boardsim serves hex board games over HTTP: board generation,
// placement queries, and dice-roll production.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/talgya/settlers/internal/api"
	"github.com/talgya/settlers/internal/board"
	"github.com/talgya/settlers/internal/config"
	"github.com/talgya/settlers/internal/entropy"
	"github.com/talgya/settlers/internal/persistence"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	slog.Info("boardsim starting")

	// ── Randomness ────────────────────────────────────────────────────
	var src entropy.Source = entropy.Crypto{}
	if client := entropy.NewClient(cfg.RandomOrgKey); client.Enabled() {
		src = client
		slog.Info("true randomness enabled (random.org)")
	} else {
		slog.Info("using crypto/rand")
	}

	// ── Database ──────────────────────────────────────────────────────
	os.MkdirAll(filepath.Dir(cfg.DBPath), 0755)
	db, err := persistence.Open(cfg.DBPath)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database opened", "path", cfg.DBPath)

	// Sanity-generate a standard board so a broken layout fails loudly
	// at startup instead of on the first create request.
	snap, err := board.Generate(board.StandardLayout(), src)
	if err != nil {
		slog.Error("standard board generation failed", "error", err)
		os.Exit(1)
	}
	counts := make(map[board.Terrain]int)
	for _, t := range snap.Tiles {
		counts[t.Terrain]++
	}
	for terrain, n := range counts {
		slog.Debug("terrain", "type", board.TerrainName(terrain), "count", n)
	}
	slog.Info("board generation ready", "tiles", len(snap.Tiles), "ports", len(snap.Ports))

	// ── HTTP API ──────────────────────────────────────────────────────
	if cfg.AdminKey == "" {
		slog.Warn("BOARDSIM_ADMIN_KEY not set — admin POST endpoints will be disabled")
	}

	server := &api.Server{
		DB:       db,
		Rand:     src,
		Port:     cfg.Port,
		AdminKey: cfg.AdminKey,
	}
	server.Start()

	fmt.Printf("API: http://localhost:%d/api/v1/status\n", cfg.Port)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	slog.Info("received signal, shutting down", "signal", sig)
}
