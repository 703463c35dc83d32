// Canonical vertex addressing. Geometrically three hexes meet at every
// vertex, but each hex owns exactly two canonical vertices: its top and
// bottom points. Every physical vertex therefore has exactly one
// representation, and no normalization step exists anywhere in the
// module.
package hexgrid

// VertexSide selects which of a hex's two owned vertices is meant.
type VertexSide uint8

const (
	Top VertexSide = iota // The hex's top point
	Bottom                // The hex's bottom point
)

// VertexCoord identifies a vertex by its owning hex and side.
type VertexCoord struct {
	Hex  HexCoord   `json:"hex"`
	Side VertexSide `json:"side"`
}

// VertexName returns a human-readable name for a vertex side.
func VertexName(s VertexSide) string {
	switch s {
	case Top:
		return "Top"
	case Bottom:
		return "Bottom"
	default:
		return "Unknown"
	}
}

// VerticesOfHex returns the two vertices owned by a hex.
// The remaining four corners of the hex outline are owned by its
// neighbors; see HexOutline.
func VerticesOfHex(h HexCoord) [2]VertexCoord {
	return [2]VertexCoord{
		{Hex: h, Side: Top},
		{Hex: h, Side: Bottom},
	}
}

// HexOutline returns all six corners of a hex, clockwise from the top
// point. Four of them are owned by the NE, SE, SW, and NW neighbors.
func HexOutline(h HexCoord) [6]VertexCoord {
	return [6]VertexCoord{
		{Hex: h, Side: Top},
		{Hex: h.Add(HexCoord{Q: 1, R: -1}), Side: Bottom},
		{Hex: h.Add(HexCoord{Q: 0, R: 1}), Side: Top},
		{Hex: h, Side: Bottom},
		{Hex: h.Add(HexCoord{Q: -1, R: 1}), Side: Top},
		{Hex: h.Add(HexCoord{Q: 0, R: -1}), Side: Bottom},
	}
}

// EdgesOfVertex returns the three edges meeting at a vertex. A top
// vertex touches its own hex's NE edge and the NW-neighbor's E and SE
// edges; a bottom vertex touches its own hex's SE edge and the
// SW-neighbor's NE and E edges.
func EdgesOfVertex(v VertexCoord) [3]EdgeCoord {
	switch v.Side {
	case Top:
		nw := v.Hex.Add(HexCoord{Q: 0, R: -1})
		return [3]EdgeCoord{
			{Hex: v.Hex, Side: NE},
			{Hex: nw, Side: E},
			{Hex: nw, Side: SE},
		}
	default:
		sw := v.Hex.Add(HexCoord{Q: -1, R: 1})
		return [3]EdgeCoord{
			{Hex: v.Hex, Side: SE},
			{Hex: sw, Side: NE},
			{Hex: sw, Side: E},
		}
	}
}

// AdjacentVertices returns the three vertices one edge away, the far
// endpoint of each edge from EdgesOfVertex.
func AdjacentVertices(v VertexCoord) [3]VertexCoord {
	var result [3]VertexCoord
	for i, e := range EdgesOfVertex(v) {
		a, b := EndpointsOf(e)
		if a == v {
			result[i] = b
		} else {
			result[i] = a
		}
	}
	return result
}

// HexesTouchingVertex returns the three hexes meeting at a vertex.
func HexesTouchingVertex(v VertexCoord) [3]HexCoord {
	switch v.Side {
	case Top:
		return [3]HexCoord{
			v.Hex,
			v.Hex.Add(HexCoord{Q: 0, R: -1}), // NW
			v.Hex.Add(HexCoord{Q: 1, R: -1}), // NE
		}
	default:
		return [3]HexCoord{
			v.Hex,
			v.Hex.Add(HexCoord{Q: -1, R: 1}), // SW
			v.Hex.Add(HexCoord{Q: 0, R: 1}),  // SE
		}
	}
}
