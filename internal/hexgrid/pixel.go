// Pixel projection for pointy-top hexes. These helpers exist for
// renderers; nothing in board generation or rule validation uses them.
package hexgrid

import "math"

// ToPixel returns the pixel center of a hex for the given size
// (circumradius). x grows East, y grows South.
func ToPixel(h HexCoord, size float64) (x, y float64) {
	x = size * math.Sqrt(3) * (float64(h.Q) + float64(h.R)/2)
	y = size * 1.5 * float64(h.R)
	return x, y
}

// FromPixel returns the hex whose center is nearest to the pixel
// position. Inverse of ToPixel for any point inside the hex.
func FromPixel(x, y float64, size float64) HexCoord {
	q := (math.Sqrt(3)/3*x - y/3) / size
	r := (2.0 / 3.0 * y) / size
	return cubeRound(q, r)
}

// VertexPixel returns the pixel position of a vertex. A hex owns its
// top and bottom points, one circumradius above and below its center.
func VertexPixel(v VertexCoord, size float64) (x, y float64) {
	x, y = ToPixel(v.Hex, size)
	switch v.Side {
	case Top:
		return x, y - size
	default:
		return x, y + size
	}
}

// cubeRound rounds fractional axial coordinates to the containing hex.
// Each cube component is rounded independently, then the one with the
// largest rounding error is re-derived to restore q+r+s = 0.
func cubeRound(q, r float64) HexCoord {
	s := -q - r

	rq := math.Round(q)
	rr := math.Round(r)
	rs := math.Round(s)

	dq := math.Abs(rq - q)
	dr := math.Abs(rr - r)
	ds := math.Abs(rs - s)

	if dq > dr && dq > ds {
		rq = -rr - rs
	} else if dr > ds {
		rr = -rq - rs
	}

	return HexCoord{Q: int(rq), R: int(rr)}
}
