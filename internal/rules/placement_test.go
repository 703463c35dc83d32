package rules

import (
	"testing"

	"github.com/talgya/settlers/internal/board"
	"github.com/talgya/settlers/internal/hexgrid"
)

// landPatch builds a snapshot with forest on every hex within the
// given radius of the origin.
func landPatch(radius int) *board.Snapshot {
	snap := board.NewSnapshot()
	for q := -radius; q <= radius; q++ {
		for r := -radius; r <= radius; r++ {
			c := hexgrid.HexCoord{Q: q, R: r}
			if hexgrid.Distance(c, hexgrid.HexCoord{}) > radius {
				continue
			}
			snap.Tiles[c] = board.Tile{Coord: c, Terrain: board.TerrainForest}
		}
	}
	return snap
}

func vertexAt(q, r int, side hexgrid.VertexSide) hexgrid.VertexCoord {
	return hexgrid.VertexCoord{Hex: hexgrid.HexCoord{Q: q, R: r}, Side: side}
}

func edgeAt(q, r int, side hexgrid.EdgeSide) hexgrid.EdgeCoord {
	return hexgrid.EdgeCoord{Hex: hexgrid.HexCoord{Q: q, R: r}, Side: side}
}

func TestIsLandVertex(t *testing.T) {
	snap := landPatch(1)

	if !IsLandVertex(snap, vertexAt(0, 0, hexgrid.Top)) {
		t.Error("origin top should be land")
	}
	if IsLandVertex(snap, vertexAt(5, 5, hexgrid.Top)) {
		t.Error("off-board vertex should not be land")
	}

	water := board.NewSnapshot()
	c := hexgrid.HexCoord{}
	water.Tiles[c] = board.Tile{Coord: c, Terrain: board.TerrainWater}
	if IsLandVertex(water, vertexAt(0, 0, hexgrid.Top)) {
		t.Error("vertex touching only water should not be land")
	}
}

func TestIsLandEdge(t *testing.T) {
	snap := landPatch(1)

	if !IsLandEdge(snap, edgeAt(0, 0, hexgrid.NE)) {
		t.Error("interior edge should be land")
	}
	if IsLandEdge(snap, edgeAt(5, 5, hexgrid.E)) {
		t.Error("off-board edge should not be land")
	}
}

func TestDistanceRule(t *testing.T) {
	snap := landPatch(1)
	v := vertexAt(0, 0, hexgrid.Top)
	occupied := snap.WithBuilding(board.Building{Owner: "a", Kind: board.Settlement, Vertex: v})

	spots := ValidSettlementSpots(occupied, PhaseSetup, "b")
	banned := map[hexgrid.VertexCoord]bool{v: true}
	for _, adj := range hexgrid.AdjacentVertices(v) {
		banned[adj] = true
	}
	for _, s := range spots {
		if banned[s] {
			t.Errorf("spot %v violates the distance rule", s)
		}
	}
	if len(spots) == 0 {
		t.Error("expected some valid spots away from the settlement")
	}
}

func TestSetupSettlementSpotsIgnoreConnectivity(t *testing.T) {
	snap := landPatch(1)
	spots := ValidSettlementSpots(snap, PhaseSetup, "a")
	if len(spots) != 2*len(snap.Tiles) {
		t.Errorf("empty board setup spots = %d, want every vertex (%d)", len(spots), 2*len(snap.Tiles))
	}
}

func TestNormalPhaseRequiresRoad(t *testing.T) {
	snap := landPatch(1)

	if spots := ValidSettlementSpots(snap, PhaseNormal, "a"); len(spots) != 0 {
		t.Errorf("player with no roads has %d spots in normal phase, want 0", len(spots))
	}

	// A single road opens exactly its two endpoints.
	road := edgeAt(0, 0, hexgrid.NE)
	withRoad := snap.WithRoad(board.RoadPiece{Owner: "a", Kind: board.Road, Edge: road})
	spots := ValidSettlementSpots(withRoad, PhaseNormal, "a")
	if len(spots) != 2 {
		t.Fatalf("spots = %v, want the road's two endpoints", spots)
	}
	e1, e2 := hexgrid.EndpointsOf(road)
	found := map[hexgrid.VertexCoord]bool{}
	for _, s := range spots {
		found[s] = true
	}
	if !found[e1] || !found[e2] {
		t.Errorf("spots = %v, want %v and %v", spots, e1, e2)
	}

	// The opponent gains nothing from a's road.
	if spots := ValidSettlementSpots(withRoad, PhaseNormal, "b"); len(spots) != 0 {
		t.Errorf("opponent spots = %d, want 0", len(spots))
	}
}

func TestValidRoadSpotsFromBuilding(t *testing.T) {
	snap := landPatch(1)
	v := vertexAt(0, 0, hexgrid.Top)
	withSettlement := snap.WithBuilding(board.Building{Owner: "a", Kind: board.Settlement, Vertex: v})

	spots := ValidRoadSpots(withSettlement, "a")
	if len(spots) != 3 {
		t.Fatalf("road spots = %v, want the settlement's three edges", spots)
	}
	want := hexgrid.EdgesOfVertex(v)
	got := map[hexgrid.EdgeCoord]bool{}
	for _, e := range spots {
		got[e] = true
	}
	for _, e := range want {
		if !got[e] {
			t.Errorf("missing edge %v", e)
		}
	}

	if spots := ValidRoadSpots(withSettlement, "b"); len(spots) != 0 {
		t.Errorf("opponent road spots = %d, want 0", len(spots))
	}
}

func TestOpponentSettlementBlocksRoadExtension(t *testing.T) {
	snap := landPatch(1)
	road := edgeAt(0, 0, hexgrid.NE)
	near, far := hexgrid.EndpointsOf(road) // (0,0) Top and (1,-1) Bottom

	state := snap.
		WithRoad(board.RoadPiece{Owner: "a", Kind: board.Road, Edge: road}).
		WithBuilding(board.Building{Owner: "b", Kind: board.Settlement, Vertex: far})

	spots := ValidRoadSpots(state, "a")
	blocked := map[hexgrid.EdgeCoord]bool{}
	for _, e := range hexgrid.EdgesOfVertex(far) {
		blocked[e] = true
	}
	open := map[hexgrid.EdgeCoord]bool{}
	for _, e := range hexgrid.EdgesOfVertex(near) {
		if e != road {
			open[e] = true
		}
	}
	for _, e := range spots {
		if blocked[e] {
			t.Errorf("edge %v should be blocked by the opponent settlement", e)
		}
		delete(open, e)
	}
	for e := range open {
		t.Errorf("edge %v past the open endpoint should be valid", e)
	}

	// The player's own settlement at the far endpoint does not block.
	own := snap.
		WithRoad(board.RoadPiece{Owner: "a", Kind: board.Road, Edge: road}).
		WithBuilding(board.Building{Owner: "a", Kind: board.Settlement, Vertex: far})
	spots = ValidRoadSpots(own, "a")
	if len(spots) != 4 {
		t.Errorf("road spots past own settlement = %v, want 4 edges", spots)
	}
}

func TestValidCitySpots(t *testing.T) {
	snap := landPatch(1)
	v1 := vertexAt(0, 0, hexgrid.Top)
	v2 := vertexAt(0, 0, hexgrid.Bottom)
	state := snap.
		WithBuilding(board.Building{Owner: "a", Kind: board.Settlement, Vertex: v1}).
		WithBuilding(board.Building{Owner: "a", Kind: board.City, Vertex: v2}).
		WithBuilding(board.Building{Owner: "b", Kind: board.Settlement, Vertex: vertexAt(1, 0, hexgrid.Top)})

	spots := ValidCitySpots(state, "a")
	if len(spots) != 1 || spots[0] != v1 {
		t.Errorf("city spots = %v, want [%v]", spots, v1)
	}
}

func TestValidSetupRoadSpots(t *testing.T) {
	snap := landPatch(1)
	v := vertexAt(0, 0, hexgrid.Top)

	spots := ValidSetupRoadSpots(snap, v)
	if len(spots) != 3 {
		t.Fatalf("setup road spots = %v, want 3", spots)
	}

	taken := spots[0]
	withRoad := snap.WithRoad(board.RoadPiece{Owner: "b", Kind: board.Road, Edge: taken})
	spots = ValidSetupRoadSpots(withRoad, v)
	if len(spots) != 2 {
		t.Errorf("setup road spots with one edge taken = %v, want 2", spots)
	}
	for _, e := range spots {
		if e == taken {
			t.Errorf("occupied edge %v offered as setup road spot", e)
		}
	}
}
