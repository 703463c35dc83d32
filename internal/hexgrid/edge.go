// Canonical edge addressing. Each hex owns its NE, E, and SE edges;
// the opposite three edges are the NE/E/SE edges of the SW, W, and NW
// neighbors. As with vertices, every physical edge has exactly one
// representation.
package hexgrid

// EdgeSide selects which of a hex's three owned edges is meant.
type EdgeSide uint8

const (
	NE EdgeSide = iota // Upper-right edge
	E                  // Right edge
	SE                 // Lower-right edge
)

// EdgeCoord identifies an edge by its owning hex and side.
type EdgeCoord struct {
	Hex  HexCoord `json:"hex"`
	Side EdgeSide `json:"side"`
}

// EdgeName returns a human-readable name for an edge side.
func EdgeName(s EdgeSide) string {
	switch s {
	case NE:
		return "NE"
	case E:
		return "E"
	case SE:
		return "SE"
	default:
		return "Unknown"
	}
}

// EdgesOfHex returns the three edges owned by a hex.
func EdgesOfHex(h HexCoord) [3]EdgeCoord {
	return [3]EdgeCoord{
		{Hex: h, Side: NE},
		{Hex: h, Side: E},
		{Hex: h, Side: SE},
	}
}

// EndpointsOf returns the two vertices an edge connects:
//
//	NE: own Top          ↔ NE-neighbor Bottom
//	E:  NE-neighbor Bottom ↔ SE-neighbor Top
//	SE: SE-neighbor Top  ↔ own Bottom
func EndpointsOf(e EdgeCoord) (VertexCoord, VertexCoord) {
	ne := e.Hex.Add(HexCoord{Q: 1, R: -1})
	se := e.Hex.Add(HexCoord{Q: 0, R: 1})
	switch e.Side {
	case NE:
		return VertexCoord{Hex: e.Hex, Side: Top}, VertexCoord{Hex: ne, Side: Bottom}
	case E:
		return VertexCoord{Hex: ne, Side: Bottom}, VertexCoord{Hex: se, Side: Top}
	default:
		return VertexCoord{Hex: se, Side: Top}, VertexCoord{Hex: e.Hex, Side: Bottom}
	}
}

// HexesFlankingEdge returns the two hexes separated by an edge: the
// owner and its NE, E, or SE neighbor.
func HexesFlankingEdge(e EdgeCoord) [2]HexCoord {
	switch e.Side {
	case NE:
		return [2]HexCoord{e.Hex, e.Hex.Add(HexCoord{Q: 1, R: -1})}
	case E:
		return [2]HexCoord{e.Hex, e.Hex.Add(HexCoord{Q: 1, R: 0})}
	default:
		return [2]HexCoord{e.Hex, e.Hex.Add(HexCoord{Q: 0, R: 1})}
	}
}

// SharedVertex returns the vertex two distinct edges have in common and
// true, or the zero vertex and false when they do not meet.
func SharedVertex(a, b EdgeCoord) (VertexCoord, bool) {
	a1, a2 := EndpointsOf(a)
	b1, b2 := EndpointsOf(b)
	if a1 == b1 || a1 == b2 {
		return a1, true
	}
	if a2 == b1 || a2 == b2 {
		return a2, true
	}
	return VertexCoord{}, false
}
