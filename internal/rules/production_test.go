package rules

import (
	"testing"

	"github.com/talgya/settlers/internal/board"
	"github.com/talgya/settlers/internal/entropy"
	"github.com/talgya/settlers/internal/hexgrid"
)

// forestEight builds a snapshot with one Forest tile numbered 8 at the
// origin, a Desert to hold the robber, and a road for player b so both
// players appear in production maps.
func forestEight() *board.Snapshot {
	snap := board.NewSnapshot()
	forest := hexgrid.HexCoord{Q: 0, R: 0}
	desert := hexgrid.HexCoord{Q: 3, R: 0}
	snap.Tiles[forest] = board.Tile{Coord: forest, Terrain: board.TerrainForest, Number: 8}
	snap.Tiles[desert] = board.Tile{Coord: desert, Terrain: board.TerrainDesert, HasRobber: true}

	bRoad := edgeAt(3, 0, hexgrid.NE)
	snap.Roads[bRoad] = board.RoadPiece{Owner: "b", Kind: board.Road, Edge: bRoad}
	return snap
}

func TestProductionSettlement(t *testing.T) {
	snap := forestEight().WithBuilding(board.Building{
		Owner: "a", Kind: board.Settlement, Vertex: vertexAt(0, 0, hexgrid.Top),
	})

	got := ProductionForRoll(snap, 8)
	if len(got) != 2 {
		t.Fatalf("player count = %d, want entries for a and b", len(got))
	}
	if n := got["a"].Get(board.ResourceLumber); n != 1 {
		t.Errorf("a lumber = %d, want 1", n)
	}
	if got["a"].Total() != 1 {
		t.Errorf("a total = %d, want 1", got["a"].Total())
	}
	if got["b"].Total() != 0 {
		t.Errorf("b total = %d, want all-zero entry", got["b"].Total())
	}
}

func TestProductionCity(t *testing.T) {
	snap := forestEight().WithBuilding(board.Building{
		Owner: "a", Kind: board.City, Vertex: vertexAt(0, 0, hexgrid.Top),
	})

	got := ProductionForRoll(snap, 8)
	if n := got["a"].Get(board.ResourceLumber); n != 2 {
		t.Errorf("a lumber = %d, want 2", n)
	}
}

func TestProductionRobberBlocks(t *testing.T) {
	snap := forestEight().WithBuilding(board.Building{
		Owner: "a", Kind: board.Settlement, Vertex: vertexAt(0, 0, hexgrid.Top),
	})
	snap, err := snap.MoveRobber(hexgrid.HexCoord{Q: 0, R: 0})
	if err != nil {
		t.Fatalf("MoveRobber() error = %v", err)
	}

	got := ProductionForRoll(snap, 8)
	for p, counts := range got {
		if counts.Total() != 0 {
			t.Errorf("player %s total = %d, want 0 with robber on the tile", p, counts.Total())
		}
	}
}

func TestProductionMultipleTiles(t *testing.T) {
	snap := forestEight()
	pasture := hexgrid.HexCoord{Q: 1, R: -1}
	snap.Tiles[pasture] = board.Tile{Coord: pasture, Terrain: board.TerrainPasture, Number: 8}

	// (0,0) Top sits on the outline of both the forest and the pasture.
	snap = snap.WithBuilding(board.Building{
		Owner: "a", Kind: board.Settlement, Vertex: vertexAt(0, 0, hexgrid.Top),
	})

	got := ProductionForRoll(snap, 8)
	if n := got["a"].Get(board.ResourceLumber); n != 1 {
		t.Errorf("a lumber = %d, want 1", n)
	}
	if n := got["a"].Get(board.ResourceWool); n != 1 {
		t.Errorf("a wool = %d, want 1", n)
	}
}

func TestProductionConservation(t *testing.T) {
	snap := forestEight()
	snap = snap.
		WithBuilding(board.Building{Owner: "a", Kind: board.Settlement, Vertex: vertexAt(0, 0, hexgrid.Top)}).
		WithBuilding(board.Building{Owner: "b", Kind: board.City, Vertex: vertexAt(0, 0, hexgrid.Bottom)})

	got := ProductionForRoll(snap, 8)
	total := 0
	for _, counts := range got {
		total += counts.Total()
	}
	// One producing tile, one settlement plus one city on its outline.
	if total != 3 {
		t.Errorf("credited total = %d, want 3", total)
	}
}

func TestProducingTiles(t *testing.T) {
	snap := forestEight()
	tiles := ProducingTiles(snap, 8)
	if len(tiles) != 1 || tiles[0].Terrain != board.TerrainForest {
		t.Errorf("ProducingTiles(8) = %v, want the forest", tiles)
	}
	if tiles := ProducingTiles(snap, 6); len(tiles) != 0 {
		t.Errorf("ProducingTiles(6) = %v, want none", tiles)
	}
}

func TestRollProbability(t *testing.T) {
	tests := []struct {
		n      int
		combos int
	}{
		{2, 1}, {3, 2}, {4, 3}, {5, 4}, {6, 5}, {7, 6},
		{8, 5}, {9, 4}, {10, 3}, {11, 2}, {12, 1},
		{1, 0}, {13, 0},
	}
	for _, tc := range tests {
		want := float64(tc.combos) / 36
		if got := RollProbability(tc.n); got != want {
			t.Errorf("RollProbability(%d) = %v, want %v", tc.n, got, want)
		}
	}
}

func TestIsHighFrequency(t *testing.T) {
	for n := 2; n <= 12; n++ {
		want := n == 6 || n == 8
		if got := IsHighFrequency(n); got != want {
			t.Errorf("IsHighFrequency(%d) = %v, want %v", n, got, want)
		}
	}
}

func TestTradeRatio(t *testing.T) {
	snap := forestEight()
	v := vertexAt(0, 0, hexgrid.Top)
	snap.Ports = []board.Port{
		{Kind: board.PortGeneric, Ratio: 3, Vertices: [2]hexgrid.VertexCoord{v, vertexAt(0, 0, hexgrid.Bottom)}},
		{Kind: board.PortResource, Resource: board.ResourceOre, Ratio: 2, Vertices: [2]hexgrid.VertexCoord{vertexAt(1, -1, hexgrid.Top), vertexAt(1, -1, hexgrid.Bottom)}},
	}

	if got := TradeRatio(snap, "a", board.ResourceLumber); got != 4 {
		t.Errorf("ratio with no building = %d, want 4", got)
	}

	snap = snap.WithBuilding(board.Building{Owner: "a", Kind: board.Settlement, Vertex: v})
	if got := TradeRatio(snap, "a", board.ResourceLumber); got != 3 {
		t.Errorf("ratio on generic port = %d, want 3", got)
	}
	if got := TradeRatio(snap, "a", board.ResourceOre); got != 3 {
		t.Errorf("ore ratio without ore port = %d, want 3", got)
	}

	snap = snap.WithBuilding(board.Building{Owner: "a", Kind: board.Settlement, Vertex: vertexAt(1, -1, hexgrid.Top)})
	if got := TradeRatio(snap, "a", board.ResourceOre); got != 2 {
		t.Errorf("ore ratio on ore port = %d, want 2", got)
	}
	if got := TradeRatio(snap, "a", board.ResourceLumber); got != 3 {
		t.Errorf("lumber ratio = %d, want 3 from the generic port", got)
	}
}

func TestRollDice(t *testing.T) {
	src := entropy.NewSeeded(7)
	for i := 0; i < 200; i++ {
		roll := RollDice(src)
		if roll.Die1 < 1 || roll.Die1 > 6 || roll.Die2 < 1 || roll.Die2 > 6 {
			t.Fatalf("die out of range: %+v", roll)
		}
		if roll.Total != roll.Die1+roll.Die2 {
			t.Fatalf("total mismatch: %+v", roll)
		}
	}

	a := RollDice(entropy.NewSeeded(42))
	b := RollDice(entropy.NewSeeded(42))
	if a != b {
		t.Errorf("seeded rolls differ: %+v vs %+v", a, b)
	}

	nilRoll := RollDice(nil)
	if nilRoll.Total < 2 || nilRoll.Total > 12 {
		t.Errorf("nil-source roll out of range: %+v", nilRoll)
	}
}
