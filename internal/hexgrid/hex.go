// Package hexgrid provides axial hex coordinates and the canonical
// vertex/edge addressing built on top of them.
//
// Hexes are pointy-top, addressed by axial coordinates (q, r) with r
// increasing toward the bottom of the screen. The third cube coordinate
// is implicit: s = -q - r.
package hexgrid

// HexCoord represents a position on the hex grid using axial coordinates.
type HexCoord struct {
	Q int `json:"q"`
	R int `json:"r"`
}

// S returns the implicit third cube coordinate.
func (h HexCoord) S() int {
	return -h.Q - h.R
}

// Add returns the coordinate offset by d.
func (h HexCoord) Add(d HexCoord) HexCoord {
	return HexCoord{Q: h.Q + d.Q, R: h.R + d.R}
}

// HexNeighborDirections defines the six neighbor offsets in axial
// coordinates, clockwise starting East.
var HexNeighborDirections = [6]HexCoord{
	{Q: 1, R: 0},  // E
	{Q: 0, R: 1},  // SE
	{Q: -1, R: 1}, // SW
	{Q: -1, R: 0}, // W
	{Q: 0, R: -1}, // NW
	{Q: 1, R: -1}, // NE
}

// Indices into HexNeighborDirections and Neighbors results.
const (
	DirE = iota
	DirSE
	DirSW
	DirW
	DirNW
	DirNE
)

// Neighbors returns the six adjacent hex coordinates, clockwise
// starting East.
func (h HexCoord) Neighbors() [6]HexCoord {
	var result [6]HexCoord
	for i, dir := range HexNeighborDirections {
		result[i] = h.Add(dir)
	}
	return result
}

// Distance returns the hex distance between two coordinates, the
// max-norm of the cube coordinate difference.
func Distance(a, b HexCoord) int {
	dq := abs(a.Q - b.Q)
	dr := abs(a.R - b.R)
	ds := abs(a.S() - b.S())
	max := dq
	if dr > max {
		max = dr
	}
	if ds > max {
		max = ds
	}
	return max
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
