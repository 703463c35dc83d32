// Shoreline classification for water tiles. Rendering uses the result
// to pick a beach sprite and rotation; nothing in generation or rule
// validation depends on it.
package board

import "github.com/talgya/settlers/internal/hexgrid"

// ShorePattern names a rotation-normalized arrangement of land around
// a water tile. There are exactly fourteen: the binary necklaces of
// length six.
type ShorePattern uint8

const (
	ShoreNone          ShorePattern = iota // open water, no land neighbor
	ShoreSingle                            // one land neighbor
	ShorePair                              // two adjacent
	ShorePairGap                           // two with one gap
	ShorePairOpposite                      // two opposite
	ShoreRun3                              // three adjacent
	ShoreRun2Plus1                         // two adjacent plus one at a gap
	ShoreRun2Plus1Wide                     // two adjacent plus one opposite-ish
	ShoreAlternating                       // every other neighbor
	ShoreRun4                              // four adjacent
	ShoreRun3Plus1                         // three adjacent plus one
	ShoreDoublePair                        // two pairs
	ShoreRun5                              // five adjacent
	ShoreEnclosed                          // fully surrounded by land
)

// shorePatterns maps each canonical (rotation-minimal) 6-bit mask to
// its pattern. Bit i of a mask is the neighbor at
// HexNeighborDirections[i], clockwise from East.
var shorePatterns = map[uint8]ShorePattern{
	0b000000: ShoreNone,
	0b000001: ShoreSingle,
	0b000011: ShorePair,
	0b000101: ShorePairGap,
	0b001001: ShorePairOpposite,
	0b000111: ShoreRun3,
	0b001011: ShoreRun2Plus1,
	0b001101: ShoreRun2Plus1Wide,
	0b010101: ShoreAlternating,
	0b001111: ShoreRun4,
	0b010111: ShoreRun3Plus1,
	0b011011: ShoreDoublePair,
	0b011111: ShoreRun5,
	0b111111: ShoreEnclosed,
}

// ShorePatternName returns a human-readable name for a pattern.
func ShorePatternName(p ShorePattern) string {
	switch p {
	case ShoreNone:
		return "None"
	case ShoreSingle:
		return "Single"
	case ShorePair:
		return "Pair"
	case ShorePairGap:
		return "PairGap"
	case ShorePairOpposite:
		return "PairOpposite"
	case ShoreRun3:
		return "Run3"
	case ShoreRun2Plus1:
		return "Run2Plus1"
	case ShoreRun2Plus1Wide:
		return "Run2Plus1Wide"
	case ShoreAlternating:
		return "Alternating"
	case ShoreRun4:
		return "Run4"
	case ShoreRun3Plus1:
		return "Run3Plus1"
	case ShoreDoublePair:
		return "DoublePair"
	case ShoreRun5:
		return "Run5"
	case ShoreEnclosed:
		return "Enclosed"
	default:
		return "Unknown"
	}
}

// ClassifyShore canonicalizes a 6-bit land mask against its six cyclic
// rotations. It returns the matched pattern and the rotation in
// degrees (clockwise, multiple of 60) that maps the canonical pattern
// onto the observed mask.
func ClassifyShore(mask uint8) (ShorePattern, int) {
	mask &= 0b111111
	canonical := mask
	steps := 0
	for i := 1; i < 6; i++ {
		r := rotateMask(mask, i)
		if r < canonical {
			canonical = r
			steps = i
		}
	}
	return shorePatterns[canonical], steps * 60
}

// Shoreline classifies the land arrangement around a water tile on the
// given snapshot. Neighbors outside the board count as water.
func Shoreline(snap *Snapshot, coord hexgrid.HexCoord) (ShorePattern, int) {
	var mask uint8
	for i, n := range coord.Neighbors() {
		t, ok := snap.TileAt(n)
		if ok && t.Terrain.Land() {
			mask |= 1 << i
		}
	}
	return ClassifyShore(mask)
}

// rotateMask rotates a 6-bit mask right by n positions.
func rotateMask(mask uint8, n int) uint8 {
	n %= 6
	return ((mask >> n) | (mask << (6 - n))) & 0b111111
}
