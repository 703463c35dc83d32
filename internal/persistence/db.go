// Package persistence provides SQLite-based game state storage: one
// row per game plus its tiles, pieces, ports, and roll history.
package persistence

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/settlers/internal/board"
	"github.com/talgya/settlers/internal/hexgrid"
	"github.com/talgya/settlers/internal/rules"
)

// ErrGameNotFound reports a lookup of an unknown game ID.
var ErrGameNotFound = errors.New("persistence: game not found")

// DB wraps a SQLite connection for game state persistence.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS games (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS tiles (
		game_id TEXT NOT NULL,
		q INTEGER NOT NULL,
		r INTEGER NOT NULL,
		terrain INTEGER NOT NULL,
		number INTEGER NOT NULL,
		has_robber INTEGER NOT NULL,
		PRIMARY KEY (game_id, q, r)
	);

	CREATE TABLE IF NOT EXISTS buildings (
		game_id TEXT NOT NULL,
		q INTEGER NOT NULL,
		r INTEGER NOT NULL,
		side INTEGER NOT NULL,
		owner TEXT NOT NULL,
		kind INTEGER NOT NULL,
		PRIMARY KEY (game_id, q, r, side)
	);

	CREATE TABLE IF NOT EXISTS roads (
		game_id TEXT NOT NULL,
		q INTEGER NOT NULL,
		r INTEGER NOT NULL,
		side INTEGER NOT NULL,
		owner TEXT NOT NULL,
		kind INTEGER NOT NULL,
		PRIMARY KEY (game_id, q, r, side)
	);

	CREATE TABLE IF NOT EXISTS ports (
		game_id TEXT NOT NULL,
		idx INTEGER NOT NULL,
		kind INTEGER NOT NULL,
		resource INTEGER NOT NULL,
		ratio INTEGER NOT NULL,
		vertices_json TEXT NOT NULL,
		PRIMARY KEY (game_id, idx)
	);

	CREATE TABLE IF NOT EXISTS rolls (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL,
		die1 INTEGER NOT NULL,
		die2 INTEGER NOT NULL,
		total INTEGER NOT NULL,
		rolled_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_tiles_game ON tiles(game_id);
	CREATE INDEX IF NOT EXISTS idx_buildings_game ON buildings(game_id);
	CREATE INDEX IF NOT EXISTS idx_roads_game ON roads(game_id);
	CREATE INDEX IF NOT EXISTS idx_rolls_game ON rolls(game_id);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// GameRecord is a row in the games table.
type GameRecord struct {
	ID        string `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	CreatedAt string `db:"created_at" json:"created_at"`
}

// RollRecord is a row in the roll history.
type RollRecord struct {
	Die1     int    `db:"die1" json:"die1"`
	Die2     int    `db:"die2" json:"die2"`
	Total    int    `db:"total" json:"total"`
	RolledAt string `db:"rolled_at" json:"rolled_at"`
}

// CreateGame stores a new game with its initial board and returns the
// record.
func (db *DB) CreateGame(name string, snap *board.Snapshot) (GameRecord, error) {
	rec := GameRecord{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if _, err := db.conn.Exec(
		"INSERT INTO games (id, name, created_at) VALUES (?, ?, ?)",
		rec.ID, rec.Name, rec.CreatedAt,
	); err != nil {
		return GameRecord{}, fmt.Errorf("insert game: %w", err)
	}
	if err := db.SaveSnapshot(rec.ID, snap); err != nil {
		return GameRecord{}, err
	}

	slog.Info("game created", "id", rec.ID, "name", rec.Name, "tiles", len(snap.Tiles))
	return rec, nil
}

// GetGame returns the record for a game ID.
func (db *DB) GetGame(id string) (GameRecord, error) {
	var rec GameRecord
	err := db.conn.Get(&rec, "SELECT id, name, created_at FROM games WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return GameRecord{}, fmt.Errorf("game %s: %w", id, ErrGameNotFound)
	}
	return rec, err
}

// ListGames returns all games, newest first.
func (db *DB) ListGames() ([]GameRecord, error) {
	var recs []GameRecord
	err := db.conn.Select(&recs, "SELECT id, name, created_at FROM games ORDER BY created_at DESC")
	return recs, err
}

// SaveSnapshot writes the full board state for a game (full replace).
func (db *DB) SaveSnapshot(gameID string, snap *board.Snapshot) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"tiles", "buildings", "roads", "ports"} {
		if _, err := tx.Exec("DELETE FROM "+table+" WHERE game_id = ?", gameID); err != nil {
			return err
		}
	}

	stmt, err := tx.Preparex(
		"INSERT INTO tiles (game_id, q, r, terrain, number, has_robber) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()
	for coord, t := range snap.Tiles {
		robber := 0
		if t.HasRobber {
			robber = 1
		}
		if _, err := stmt.Exec(gameID, coord.Q, coord.R, t.Terrain, t.Number, robber); err != nil {
			return fmt.Errorf("insert tile %v: %w", coord, err)
		}
	}

	for v, b := range snap.Buildings {
		if _, err := tx.Exec(
			"INSERT INTO buildings (game_id, q, r, side, owner, kind) VALUES (?, ?, ?, ?, ?, ?)",
			gameID, v.Hex.Q, v.Hex.R, v.Side, string(b.Owner), b.Kind,
		); err != nil {
			return fmt.Errorf("insert building %v: %w", v, err)
		}
	}

	for e, r := range snap.Roads {
		if _, err := tx.Exec(
			"INSERT INTO roads (game_id, q, r, side, owner, kind) VALUES (?, ?, ?, ?, ?, ?)",
			gameID, e.Hex.Q, e.Hex.R, e.Side, string(r.Owner), r.Kind,
		); err != nil {
			return fmt.Errorf("insert road %v: %w", e, err)
		}
	}

	for i, p := range snap.Ports {
		verts, err := json.Marshal(p.Vertices)
		if err != nil {
			return fmt.Errorf("marshal port %d: %w", i, err)
		}
		if _, err := tx.Exec(
			"INSERT INTO ports (game_id, idx, kind, resource, ratio, vertices_json) VALUES (?, ?, ?, ?, ?, ?)",
			gameID, i, p.Kind, p.Resource, p.Ratio, string(verts),
		); err != nil {
			return fmt.Errorf("insert port %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// LoadSnapshot reconstructs a game's board state.
func (db *DB) LoadSnapshot(gameID string) (*board.Snapshot, error) {
	if _, err := db.GetGame(gameID); err != nil {
		return nil, err
	}

	snap := board.NewSnapshot()

	var tiles []struct {
		Q         int `db:"q"`
		R         int `db:"r"`
		Terrain   int `db:"terrain"`
		Number    int `db:"number"`
		HasRobber int `db:"has_robber"`
	}
	if err := db.conn.Select(&tiles,
		"SELECT q, r, terrain, number, has_robber FROM tiles WHERE game_id = ?", gameID); err != nil {
		return nil, fmt.Errorf("load tiles: %w", err)
	}
	for _, t := range tiles {
		coord := hexgrid.HexCoord{Q: t.Q, R: t.R}
		snap.Tiles[coord] = board.Tile{
			Coord:     coord,
			Terrain:   board.Terrain(t.Terrain),
			Number:    t.Number,
			HasRobber: t.HasRobber != 0,
		}
	}

	var pieces []struct {
		Q     int    `db:"q"`
		R     int    `db:"r"`
		Side  int    `db:"side"`
		Owner string `db:"owner"`
		Kind  int    `db:"kind"`
	}
	if err := db.conn.Select(&pieces,
		"SELECT q, r, side, owner, kind FROM buildings WHERE game_id = ?", gameID); err != nil {
		return nil, fmt.Errorf("load buildings: %w", err)
	}
	for _, p := range pieces {
		v := hexgrid.VertexCoord{Hex: hexgrid.HexCoord{Q: p.Q, R: p.R}, Side: hexgrid.VertexSide(p.Side)}
		snap.Buildings[v] = board.Building{
			Owner:  board.PlayerID(p.Owner),
			Kind:   board.BuildingKind(p.Kind),
			Vertex: v,
		}
	}

	pieces = pieces[:0]
	if err := db.conn.Select(&pieces,
		"SELECT q, r, side, owner, kind FROM roads WHERE game_id = ?", gameID); err != nil {
		return nil, fmt.Errorf("load roads: %w", err)
	}
	for _, p := range pieces {
		e := hexgrid.EdgeCoord{Hex: hexgrid.HexCoord{Q: p.Q, R: p.R}, Side: hexgrid.EdgeSide(p.Side)}
		snap.Roads[e] = board.RoadPiece{
			Owner: board.PlayerID(p.Owner),
			Kind:  board.RoadKind(p.Kind),
			Edge:  e,
		}
	}

	var ports []struct {
		Kind     int    `db:"kind"`
		Resource int    `db:"resource"`
		Ratio    int    `db:"ratio"`
		Vertices string `db:"vertices_json"`
	}
	if err := db.conn.Select(&ports,
		"SELECT kind, resource, ratio, vertices_json FROM ports WHERE game_id = ? ORDER BY idx", gameID); err != nil {
		return nil, fmt.Errorf("load ports: %w", err)
	}
	for i, p := range ports {
		var verts [2]hexgrid.VertexCoord
		if err := json.Unmarshal([]byte(p.Vertices), &verts); err != nil {
			return nil, fmt.Errorf("unmarshal port %d: %w", i, err)
		}
		snap.Ports = append(snap.Ports, board.Port{
			Kind:     board.PortKind(p.Kind),
			Resource: board.Resource(p.Resource),
			Ratio:    p.Ratio,
			Vertices: verts,
		})
	}

	return snap, nil
}

// AppendRoll records a dice roll for a game.
func (db *DB) AppendRoll(gameID string, roll rules.DiceRoll) error {
	_, err := db.conn.Exec(
		"INSERT INTO rolls (game_id, die1, die2, total, rolled_at) VALUES (?, ?, ?, ?, ?)",
		gameID, roll.Die1, roll.Die2, roll.Total,
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// RecentRolls returns the most recent N rolls for a game, newest first.
func (db *DB) RecentRolls(gameID string, limit int) ([]RollRecord, error) {
	var rolls []RollRecord
	err := db.conn.Select(&rolls,
		"SELECT die1, die2, total, rolled_at FROM rolls WHERE game_id = ? ORDER BY id DESC LIMIT ?",
		gameID, limit,
	)
	return rolls, err
}
