// Package rules implements placement validation and dice-driven
// resource production over board snapshots. Every function is pure:
// the snapshot is never mutated and an empty result means "no legal
// move", not an error.
package rules

import (
	"sort"

	"github.com/talgya/settlers/internal/board"
	"github.com/talgya/settlers/internal/hexgrid"
)

// Phase selects which placement rules apply. Setup relaxes the road
// connectivity requirement; land and distance checks apply in both
// phases.
type Phase uint8

const (
	PhaseSetup Phase = iota
	PhaseNormal
)

// PhaseName returns a human-readable name for a phase.
func PhaseName(p Phase) string {
	switch p {
	case PhaseSetup:
		return "Setup"
	case PhaseNormal:
		return "Normal"
	default:
		return "Unknown"
	}
}

// IsLandVertex returns true if any of the three hexes touching the
// vertex is a non-water tile on the board. Off-board hexes count as
// water.
func IsLandVertex(snap *board.Snapshot, v hexgrid.VertexCoord) bool {
	for _, h := range hexgrid.HexesTouchingVertex(v) {
		if t, ok := snap.TileAt(h); ok && t.Terrain.Land() {
			return true
		}
	}
	return false
}

// IsLandEdge returns true if either hex flanking the edge is a
// non-water tile on the board.
func IsLandEdge(snap *board.Snapshot, e hexgrid.EdgeCoord) bool {
	for _, h := range hexgrid.HexesFlankingEdge(e) {
		if t, ok := snap.TileAt(h); ok && t.Terrain.Land() {
			return true
		}
	}
	return false
}

// SatisfiesDistanceRule returns true if no adjacent vertex holds a
// building, regardless of owner.
func SatisfiesDistanceRule(snap *board.Snapshot, v hexgrid.VertexCoord) bool {
	for _, a := range hexgrid.AdjacentVertices(v) {
		if _, ok := snap.BuildingAt(a); ok {
			return false
		}
	}
	return true
}

// ValidSettlementSpots returns every vertex where the player may place
// a settlement: land, unoccupied, and satisfying the distance rule. In
// the Normal phase the vertex must additionally touch one of the
// player's own roads.
func ValidSettlementSpots(snap *board.Snapshot, phase Phase, player board.PlayerID) []hexgrid.VertexCoord {
	var out []hexgrid.VertexCoord
	for _, v := range snap.Vertices() {
		if _, ok := snap.BuildingAt(v); ok {
			continue
		}
		if !IsLandVertex(snap, v) {
			continue
		}
		if !SatisfiesDistanceRule(snap, v) {
			continue
		}
		if phase == PhaseNormal && !touchesOwnRoad(snap, v, player) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func touchesOwnRoad(snap *board.Snapshot, v hexgrid.VertexCoord, player board.PlayerID) bool {
	for _, e := range hexgrid.EdgesOfVertex(v) {
		if r, ok := snap.RoadAt(e); ok && r.Owner == player {
			return true
		}
	}
	return false
}

// ValidRoadSpots returns every edge where the player may place a road:
// one hop from the player's buildings or existing roads, on land, and
// unoccupied. Extension through a vertex holding an opponent's
// building is blocked; the player's own buildings never block.
func ValidRoadSpots(snap *board.Snapshot, player board.PlayerID) []hexgrid.EdgeCoord {
	seen := make(map[hexgrid.EdgeCoord]bool)

	admit := func(e hexgrid.EdgeCoord) {
		if _, ok := snap.RoadAt(e); ok {
			return
		}
		if !IsLandEdge(snap, e) {
			return
		}
		seen[e] = true
	}

	for v, b := range snap.Buildings {
		if b.Owner != player {
			continue
		}
		for _, e := range hexgrid.EdgesOfVertex(v) {
			admit(e)
		}
	}

	for re, r := range snap.Roads {
		if r.Owner != player {
			continue
		}
		a, b := hexgrid.EndpointsOf(re)
		for _, v := range [2]hexgrid.VertexCoord{a, b} {
			// An opponent's settlement on the junction cuts the road
			// network at that vertex.
			if bld, ok := snap.BuildingAt(v); ok && bld.Owner != player {
				continue
			}
			for _, e := range hexgrid.EdgesOfVertex(v) {
				if e == re {
					continue
				}
				admit(e)
			}
		}
	}

	out := make([]hexgrid.EdgeCoord, 0, len(seen))
	for e := range seen {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Hex.Q != b.Hex.Q {
			return a.Hex.Q < b.Hex.Q
		}
		if a.Hex.R != b.Hex.R {
			return a.Hex.R < b.Hex.R
		}
		return a.Side < b.Side
	})
	return out
}

// ValidCitySpots returns the vertices of the player's own settlements,
// the only places a city may be built.
func ValidCitySpots(snap *board.Snapshot, player board.PlayerID) []hexgrid.VertexCoord {
	var out []hexgrid.VertexCoord
	for v, b := range snap.Buildings {
		if b.Owner == player && b.Kind == board.Settlement {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Hex.Q != b.Hex.Q {
			return a.Hex.Q < b.Hex.Q
		}
		if a.Hex.R != b.Hex.R {
			return a.Hex.R < b.Hex.R
		}
		return a.Side < b.Side
	})
	return out
}

// ValidSetupRoadSpots returns the edges where the setup road following
// a just-placed settlement may go: the three edges touching that
// vertex, on land and unoccupied. The road must touch this settlement,
// not any other piece.
func ValidSetupRoadSpots(snap *board.Snapshot, settlement hexgrid.VertexCoord) []hexgrid.EdgeCoord {
	var out []hexgrid.EdgeCoord
	for _, e := range hexgrid.EdgesOfVertex(settlement) {
		if _, ok := snap.RoadAt(e); ok {
			continue
		}
		if !IsLandEdge(snap, e) {
			continue
		}
		out = append(out, e)
	}
	return out
}
