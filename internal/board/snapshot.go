package board

import (
	"errors"
	"fmt"
	"sort"

	"github.com/talgya/settlers/internal/hexgrid"
)

var (
	// ErrNoSuchTile reports a coordinate outside the board.
	ErrNoSuchTile = errors.New("board: no tile at coordinate")
	// ErrRobberOnWater reports a robber move onto water or fog.
	ErrRobberOnWater = errors.New("board: robber must sit on a revealed land tile")
	// ErrNotFog reports a reveal of a tile that is not fog.
	ErrNotFog = errors.New("board: tile is not fog")
)

// Snapshot is a read-only view of the board: tiles, pieces, and ports.
// The engine never mutates a snapshot; mutation helpers return a new
// value and leave the receiver untouched, so the caller owns commit
// and synchronization.
type Snapshot struct {
	Tiles     map[hexgrid.HexCoord]Tile        `json:"tiles"`
	Buildings map[hexgrid.VertexCoord]Building `json:"buildings"`
	Roads     map[hexgrid.EdgeCoord]RoadPiece  `json:"roads"`
	Ports     []Port                           `json:"ports"`
}

// NewSnapshot creates an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Tiles:     make(map[hexgrid.HexCoord]Tile),
		Buildings: make(map[hexgrid.VertexCoord]Building),
		Roads:     make(map[hexgrid.EdgeCoord]RoadPiece),
	}
}

// TileAt returns the tile at the given coordinate.
func (s *Snapshot) TileAt(coord hexgrid.HexCoord) (Tile, bool) {
	t, ok := s.Tiles[coord]
	return t, ok
}

// BuildingAt returns the building at a vertex, if any.
func (s *Snapshot) BuildingAt(v hexgrid.VertexCoord) (Building, bool) {
	b, ok := s.Buildings[v]
	return b, ok
}

// RoadAt returns the road or ship on an edge, if any.
func (s *Snapshot) RoadAt(e hexgrid.EdgeCoord) (RoadPiece, bool) {
	r, ok := s.Roads[e]
	return r, ok
}

// RobberAt returns the robber's tile coordinate.
func (s *Snapshot) RobberAt() (hexgrid.HexCoord, bool) {
	for coord, t := range s.Tiles {
		if t.HasRobber {
			return coord, true
		}
	}
	return hexgrid.HexCoord{}, false
}

// Players returns every player owning a piece on the board, sorted.
func (s *Snapshot) Players() []PlayerID {
	seen := make(map[PlayerID]bool)
	for _, b := range s.Buildings {
		seen[b.Owner] = true
	}
	for _, r := range s.Roads {
		seen[r.Owner] = true
	}
	out := make([]PlayerID, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Vertices returns every canonical vertex owned by a tile on the
// board, in deterministic order.
func (s *Snapshot) Vertices() []hexgrid.VertexCoord {
	out := make([]hexgrid.VertexCoord, 0, 2*len(s.Tiles))
	for coord := range s.Tiles {
		for _, v := range hexgrid.VerticesOfHex(coord) {
			out = append(out, v)
		}
	}
	sortVertices(out)
	return out
}

// Edges returns every canonical edge owned by a tile on the board, in
// deterministic order.
func (s *Snapshot) Edges() []hexgrid.EdgeCoord {
	out := make([]hexgrid.EdgeCoord, 0, 3*len(s.Tiles))
	for coord := range s.Tiles {
		for _, e := range hexgrid.EdgesOfHex(coord) {
			out = append(out, e)
		}
	}
	sortEdges(out)
	return out
}

// Clone returns a deep copy of the snapshot.
func (s *Snapshot) Clone() *Snapshot {
	out := &Snapshot{
		Tiles:     make(map[hexgrid.HexCoord]Tile, len(s.Tiles)),
		Buildings: make(map[hexgrid.VertexCoord]Building, len(s.Buildings)),
		Roads:     make(map[hexgrid.EdgeCoord]RoadPiece, len(s.Roads)),
		Ports:     append([]Port(nil), s.Ports...),
	}
	for k, v := range s.Tiles {
		out.Tiles[k] = v
	}
	for k, v := range s.Buildings {
		out.Buildings[k] = v
	}
	for k, v := range s.Roads {
		out.Roads[k] = v
	}
	return out
}

// WithBuilding returns a copy of the snapshot with the building added.
// Validity is the caller's concern (see the rules package); this only
// commits.
func (s *Snapshot) WithBuilding(b Building) *Snapshot {
	out := s.Clone()
	out.Buildings[b.Vertex] = b
	return out
}

// WithRoad returns a copy of the snapshot with the road piece added.
func (s *Snapshot) WithRoad(r RoadPiece) *Snapshot {
	out := s.Clone()
	out.Roads[r.Edge] = r
	return out
}

// MoveRobber returns a copy of the snapshot with the robber moved to
// the given tile. Exactly one tile carries the robber afterward.
func (s *Snapshot) MoveRobber(to hexgrid.HexCoord) (*Snapshot, error) {
	target, ok := s.Tiles[to]
	if !ok {
		return nil, fmt.Errorf("move robber to %v: %w", to, ErrNoSuchTile)
	}
	if !target.Terrain.Land() || target.Terrain == TerrainFog {
		return nil, fmt.Errorf("move robber to %v: %w", to, ErrRobberOnWater)
	}

	out := s.Clone()
	for coord, t := range out.Tiles {
		if t.HasRobber {
			t.HasRobber = false
			out.Tiles[coord] = t
		}
	}
	target.HasRobber = true
	out.Tiles[to] = target
	return out, nil
}

// RevealFog returns a copy of the snapshot with a fog tile replaced by
// its revealed terrain and number. The caller owns the reveal pool.
func (s *Snapshot) RevealFog(coord hexgrid.HexCoord, terrain Terrain, number int) (*Snapshot, error) {
	t, ok := s.Tiles[coord]
	if !ok {
		return nil, fmt.Errorf("reveal %v: %w", coord, ErrNoSuchTile)
	}
	if t.Terrain != TerrainFog {
		return nil, fmt.Errorf("reveal %v: %w", coord, ErrNotFog)
	}

	out := s.Clone()
	t.Terrain = terrain
	if terrain.Producing() {
		t.Number = number
	} else {
		t.Number = 0
	}
	out.Tiles[coord] = t
	return out, nil
}

// String returns a summary of the snapshot.
func (s *Snapshot) String() string {
	return fmt.Sprintf("Snapshot(tiles=%d, buildings=%d, roads=%d, ports=%d)",
		len(s.Tiles), len(s.Buildings), len(s.Roads), len(s.Ports))
}

func sortVertices(vs []hexgrid.VertexCoord) {
	sort.Slice(vs, func(i, j int) bool {
		a, b := vs[i], vs[j]
		if a.Hex.Q != b.Hex.Q {
			return a.Hex.Q < b.Hex.Q
		}
		if a.Hex.R != b.Hex.R {
			return a.Hex.R < b.Hex.R
		}
		return a.Side < b.Side
	})
}

func sortEdges(es []hexgrid.EdgeCoord) {
	sort.Slice(es, func(i, j int) bool {
		a, b := es[i], es[j]
		if a.Hex.Q != b.Hex.Q {
			return a.Hex.Q < b.Hex.Q
		}
		if a.Hex.R != b.Hex.R {
			return a.Hex.R < b.Hex.R
		}
		return a.Side < b.Side
	})
}
