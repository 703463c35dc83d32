package board

import (
	"testing"

	"github.com/talgya/settlers/internal/hexgrid"
)

func TestClassifyShoreKnownMasks(t *testing.T) {
	tests := []struct {
		name     string
		mask     uint8
		want     ShorePattern
		wantRot  int
	}{
		{"open water", 0b000000, ShoreNone, 0},
		{"single east", 0b000001, ShoreSingle, 0},
		{"single west", 0b001000, ShoreSingle, 180},
		{"adjacent pair", 0b000011, ShorePair, 0},
		{"opposite pair", 0b001001, ShorePairOpposite, 0},
		{"run of three", 0b000111, ShoreRun3, 0},
		{"rotated run of three", 0b111000, ShoreRun3, 180},
		{"alternating", 0b010101, ShoreAlternating, 0},
		{"five land", 0b011111, ShoreRun5, 0},
		{"enclosed", 0b111111, ShoreEnclosed, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rot := ClassifyShore(tt.mask)
			if got != tt.want {
				t.Errorf("ClassifyShore(%06b) = %s, want %s", tt.mask, ShorePatternName(got), ShorePatternName(tt.want))
			}
			if rot != tt.wantRot {
				t.Errorf("ClassifyShore(%06b) rotation = %d, want %d", tt.mask, rot, tt.wantRot)
			}
		})
	}
}

func TestClassifyShoreTotal(t *testing.T) {
	// Every 6-bit mask classifies to a named pattern, and rotating a
	// mask never changes its pattern.
	for mask := uint8(0); mask < 64; mask++ {
		p, rot := ClassifyShore(mask)
		if ShorePatternName(p) == "Unknown" {
			t.Errorf("mask %06b has no pattern", mask)
		}
		if rot < 0 || rot >= 360 || rot%60 != 0 {
			t.Errorf("mask %06b rotation = %d, want multiple of 60 in [0, 300]", mask, rot)
		}
		for i := 1; i < 6; i++ {
			rp, _ := ClassifyShore(rotateMask(mask, i))
			if rp != p {
				t.Errorf("mask %06b rotated %d classifies as %s, original %s", mask, i, ShorePatternName(rp), ShorePatternName(p))
			}
		}
	}
}

func TestShorelineOnBoard(t *testing.T) {
	snap := NewSnapshot()
	center := hexgrid.HexCoord{}
	snap.Tiles[center] = Tile{Coord: center, Terrain: TerrainWater}

	// Land east and southeast of the water tile.
	for _, c := range []hexgrid.HexCoord{{Q: 1, R: 0}, {Q: 0, R: 1}} {
		snap.Tiles[c] = Tile{Coord: c, Terrain: TerrainForest}
	}

	p, rot := Shoreline(snap, center)
	if p != ShorePair || rot != 0 {
		t.Errorf("Shoreline() = %s rot %d, want Pair rot 0", ShorePatternName(p), rot)
	}

	// Off-board neighbors count as water.
	lone := hexgrid.HexCoord{Q: 10, R: 10}
	snap.Tiles[lone] = Tile{Coord: lone, Terrain: TerrainWater}
	if p, _ := Shoreline(snap, lone); p != ShoreNone {
		t.Errorf("Shoreline(isolated) = %s, want None", ShorePatternName(p))
	}
}
