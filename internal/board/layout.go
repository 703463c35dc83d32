package board

import "github.com/talgya/settlers/internal/hexgrid"

// TerrainCount is one entry of a terrain distribution.
type TerrainCount struct {
	Terrain Terrain
	Count   int
}

// TokenCount is one entry of a number-token distribution.
type TokenCount struct {
	Number int
	Count  int
}

// PortSpec describes one port to be placed during generation. Port
// kinds are shuffled across the layout's port edges.
type PortSpec struct {
	Kind     PortKind
	Resource Resource
	Ratio    int
}

// Layout is the fixed geometry a board is generated onto: which hexes
// exist, what the terrain and token pools contain, and where ports
// anchor. Land order determines terrain assignment order.
type Layout struct {
	Name      string
	Land      []hexgrid.HexCoord
	Fog       []hexgrid.HexCoord
	Water     []hexgrid.HexCoord
	Terrains  []TerrainCount
	Tokens    []TokenCount
	PortEdges []hexgrid.EdgeCoord
	Ports     []PortSpec
}

// StandardLayout returns the classic board: 19 land hexes within
// radius 2, a ring of 18 water hexes at radius 3, the 4/4/4/3/3+desert
// terrain pool, the 18-token number pool, and nine coastal ports.
func StandardLayout() Layout {
	var land, water []hexgrid.HexCoord
	for q := -3; q <= 3; q++ {
		for r := -3; r <= 3; r++ {
			h := hexgrid.HexCoord{Q: q, R: r}
			switch d := hexgrid.Distance(hexgrid.HexCoord{}, h); {
			case d <= 2:
				land = append(land, h)
			case d == 3:
				water = append(water, h)
			}
		}
	}

	return Layout{
		Name:  "standard",
		Land:  land,
		Water: water,
		Terrains: []TerrainCount{
			{TerrainForest, 4},
			{TerrainPasture, 4},
			{TerrainFields, 4},
			{TerrainHills, 3},
			{TerrainMountains, 3},
			{TerrainDesert, 1},
		},
		Tokens: []TokenCount{
			{2, 1},
			{3, 2},
			{4, 2},
			{5, 2},
			{6, 2},
			{8, 2},
			{9, 2},
			{10, 2},
			{11, 2},
			{12, 1},
		},
		PortEdges: standardPortEdges(),
		Ports: []PortSpec{
			{Kind: PortGeneric, Ratio: 3},
			{Kind: PortGeneric, Ratio: 3},
			{Kind: PortGeneric, Ratio: 3},
			{Kind: PortGeneric, Ratio: 3},
			{Kind: PortResource, Resource: ResourceLumber, Ratio: 2},
			{Kind: PortResource, Resource: ResourceWool, Ratio: 2},
			{Kind: PortResource, Resource: ResourceGrain, Ratio: 2},
			{Kind: PortResource, Resource: ResourceBrick, Ratio: 2},
			{Kind: PortResource, Resource: ResourceOre, Ratio: 2},
		},
	}
}

// standardPortEdges lists the nine coastal edges ports anchor to,
// clockwise from the north shore. Each flanks one land and one water
// hex; edges on the west and northwest shores are owned by their water
// hex under the ownership scheme.
func standardPortEdges() []hexgrid.EdgeCoord {
	return []hexgrid.EdgeCoord{
		{Hex: hexgrid.HexCoord{Q: 1, R: -2}, Side: hexgrid.NE},
		{Hex: hexgrid.HexCoord{Q: 2, R: -2}, Side: hexgrid.E},
		{Hex: hexgrid.HexCoord{Q: 2, R: -1}, Side: hexgrid.E},
		{Hex: hexgrid.HexCoord{Q: 2, R: 0}, Side: hexgrid.SE},
		{Hex: hexgrid.HexCoord{Q: 1, R: 1}, Side: hexgrid.SE},
		{Hex: hexgrid.HexCoord{Q: -1, R: 2}, Side: hexgrid.SE},
		{Hex: hexgrid.HexCoord{Q: -3, R: 2}, Side: hexgrid.E},
		{Hex: hexgrid.HexCoord{Q: -3, R: 1}, Side: hexgrid.NE},
		{Hex: hexgrid.HexCoord{Q: -1, R: -2}, Side: hexgrid.SE},
	}
}
