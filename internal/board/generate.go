// Board generation: shuffle terrain and number-token pools onto a
// layout, retrying token placement until no 6 sits next to an 8.
package board

import (
	"errors"
	"fmt"

	"github.com/talgya/settlers/internal/entropy"
	"github.com/talgya/settlers/internal/hexgrid"
)

// maxTokenAttempts bounds the non-adjacency retry loop. The standard
// pool succeeds within a handful of attempts almost always; exhausting
// the bound is surfaced as ErrGenerationFailed, never as a board that
// violates the rule.
const maxTokenAttempts = 100

var (
	// ErrGenerationFailed reports that no token arrangement satisfying
	// the six-eight non-adjacency rule was found within the attempt
	// bound. The caller decides whether to retry with a fresh source.
	ErrGenerationFailed = errors.New("board: no valid number layout within attempt bound")
	// ErrTokenShortage reports a layout whose token pool is smaller
	// than its producing tile count.
	ErrTokenShortage = errors.New("board: fewer number tokens than producing tiles")
)

// Generate creates a board from a layout using the given randomness
// source. Pass entropy.Crypto{} for real games or entropy.NewSeeded
// for reproducible boards.
func Generate(layout Layout, src entropy.Source) (*Snapshot, error) {
	terrains := materializeTerrains(layout.Terrains)
	if len(terrains) < len(layout.Land) {
		return nil, fmt.Errorf("generate %s: %d terrains for %d land hexes", layout.Name, len(terrains), len(layout.Land))
	}
	entropy.Shuffle(src, len(terrains), func(i, j int) {
		terrains[i], terrains[j] = terrains[j], terrains[i]
	})

	snap := NewSnapshot()
	for i, coord := range layout.Land {
		snap.Tiles[coord] = Tile{Coord: coord, Terrain: terrains[i]}
	}
	for _, coord := range layout.Fog {
		snap.Tiles[coord] = Tile{Coord: coord, Terrain: TerrainFog}
	}
	for _, coord := range layout.Water {
		snap.Tiles[coord] = Tile{Coord: coord, Terrain: TerrainWater}
	}

	if err := assignTokens(snap, layout, src); err != nil {
		return nil, err
	}

	placeRobber(snap, layout)
	if err := placePorts(snap, layout, src); err != nil {
		return nil, err
	}

	return snap, nil
}

// assignTokens shuffles the token pool onto producing tiles, in land
// order, until the six-eight rule holds or the attempt bound is hit.
func assignTokens(snap *Snapshot, layout Layout, src entropy.Source) error {
	var producing []hexgrid.HexCoord
	for _, coord := range layout.Land {
		if snap.Tiles[coord].Terrain.Producing() {
			producing = append(producing, coord)
		}
	}

	tokens := materializeTokens(layout.Tokens)
	if len(tokens) < len(producing) {
		return fmt.Errorf("generate %s: %w (%d tokens, %d tiles)", layout.Name, ErrTokenShortage, len(tokens), len(producing))
	}

	for attempt := 0; attempt < maxTokenAttempts; attempt++ {
		entropy.Shuffle(src, len(tokens), func(i, j int) {
			tokens[i], tokens[j] = tokens[j], tokens[i]
		})
		for i, coord := range producing {
			t := snap.Tiles[coord]
			t.Number = tokens[i]
			snap.Tiles[coord] = t
		}
		if sixEightSeparated(snap) {
			return nil
		}
	}

	return fmt.Errorf("generate %s: %w", layout.Name, ErrGenerationFailed)
}

// sixEightSeparated reports whether no tile numbered 6 or 8 is
// adjacent to another tile numbered 6 or 8.
func sixEightSeparated(snap *Snapshot) bool {
	for coord, t := range snap.Tiles {
		if t.Number != 6 && t.Number != 8 {
			continue
		}
		for _, n := range coord.Neighbors() {
			nt, ok := snap.Tiles[n]
			if !ok {
				continue
			}
			if nt.Number == 6 || nt.Number == 8 {
				return false
			}
		}
	}
	return true
}

// placeRobber starts the robber on the first desert in land order. A
// layout without a desert starts robberless; the caller introduces the
// robber with Snapshot.MoveRobber.
func placeRobber(snap *Snapshot, layout Layout) {
	for _, coord := range layout.Land {
		t := snap.Tiles[coord]
		if t.Terrain == TerrainDesert {
			t.HasRobber = true
			snap.Tiles[coord] = t
			return
		}
	}
}

// placePorts shuffles port kinds across the layout's port edges.
func placePorts(snap *Snapshot, layout Layout, src entropy.Source) error {
	if len(layout.PortEdges) != len(layout.Ports) {
		return fmt.Errorf("generate %s: %d port edges for %d port specs", layout.Name, len(layout.PortEdges), len(layout.Ports))
	}
	if len(layout.Ports) == 0 {
		return nil
	}

	specs := append([]PortSpec(nil), layout.Ports...)
	entropy.Shuffle(src, len(specs), func(i, j int) {
		specs[i], specs[j] = specs[j], specs[i]
	})

	snap.Ports = make([]Port, len(specs))
	for i, spec := range specs {
		a, b := hexgrid.EndpointsOf(layout.PortEdges[i])
		snap.Ports[i] = Port{
			Kind:     spec.Kind,
			Resource: spec.Resource,
			Ratio:    spec.Ratio,
			Vertices: [2]hexgrid.VertexCoord{a, b},
		}
	}
	return nil
}

func materializeTerrains(counts []TerrainCount) []Terrain {
	var out []Terrain
	for _, tc := range counts {
		for i := 0; i < tc.Count; i++ {
			out = append(out, tc.Terrain)
		}
	}
	return out
}

func materializeTokens(counts []TokenCount) []int {
	var out []int
	for _, tc := range counts {
		for i := 0; i < tc.Count; i++ {
			out = append(out, tc.Number)
		}
	}
	return out
}
