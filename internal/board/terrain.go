// Package board provides the tile data model, board generation, and
// the immutable snapshot consumed by rule validation and production.
package board

import "github.com/talgya/settlers/internal/hexgrid"

// Terrain types for board tiles.
type Terrain uint8

const (
	TerrainForest    Terrain = iota // Produces lumber
	TerrainPasture                  // Produces wool
	TerrainFields                   // Produces grain
	TerrainHills                    // Produces brick
	TerrainMountains                // Produces ore
	TerrainDesert                   // Land, produces nothing
	TerrainWater                    // Sea, buildable only by ship
	TerrainFog                      // Unrevealed tile on island boards
)

// Resource enumerates the five producible resources.
type Resource uint8

const (
	ResourceLumber Resource = iota
	ResourceWool
	ResourceGrain
	ResourceBrick
	ResourceOre
)

// NumResources is the number of distinct resources.
const NumResources = 5

// Resource returns the resource a terrain yields, or false for
// non-producing terrain. The switch is exhaustive over Terrain so a new
// terrain type fails to compile here rather than silently producing
// nothing.
func (t Terrain) Resource() (Resource, bool) {
	switch t {
	case TerrainForest:
		return ResourceLumber, true
	case TerrainPasture:
		return ResourceWool, true
	case TerrainFields:
		return ResourceGrain, true
	case TerrainHills:
		return ResourceBrick, true
	case TerrainMountains:
		return ResourceOre, true
	case TerrainDesert, TerrainWater, TerrainFog:
		return 0, false
	default:
		return 0, false
	}
}

// Producing returns true if the terrain yields a resource and may
// carry a number token.
func (t Terrain) Producing() bool {
	_, ok := t.Resource()
	return ok
}

// Land returns true for every terrain except open water.
func (t Terrain) Land() bool {
	return t != TerrainWater
}

// TerrainName returns a human-readable name for a terrain type.
func TerrainName(t Terrain) string {
	switch t {
	case TerrainForest:
		return "Forest"
	case TerrainPasture:
		return "Pasture"
	case TerrainFields:
		return "Fields"
	case TerrainHills:
		return "Hills"
	case TerrainMountains:
		return "Mountains"
	case TerrainDesert:
		return "Desert"
	case TerrainWater:
		return "Water"
	case TerrainFog:
		return "Fog"
	default:
		return "Unknown"
	}
}

// ResourceName returns a human-readable name for a resource.
func ResourceName(r Resource) string {
	switch r {
	case ResourceLumber:
		return "Lumber"
	case ResourceWool:
		return "Wool"
	case ResourceGrain:
		return "Grain"
	case ResourceBrick:
		return "Brick"
	case ResourceOre:
		return "Ore"
	default:
		return "Unknown"
	}
}

// PlayerID identifies a player. The engine treats it as opaque.
type PlayerID string

// Tile is a single hex on the board. Number is 0 for tiles without a
// production token; a token is present iff the terrain is producing.
type Tile struct {
	Coord     hexgrid.HexCoord `json:"coord"`
	Terrain   Terrain          `json:"terrain"`
	Number    int              `json:"number,omitempty"`
	HasRobber bool             `json:"has_robber,omitempty"`
}

// BuildingKind distinguishes settlements from cities.
type BuildingKind uint8

const (
	Settlement BuildingKind = iota
	City
)

// Building occupies a canonical vertex. At most one building exists
// per vertex.
type Building struct {
	Owner  PlayerID            `json:"owner"`
	Kind   BuildingKind        `json:"kind"`
	Vertex hexgrid.VertexCoord `json:"vertex"`
}

// RoadKind distinguishes roads from ships.
type RoadKind uint8

const (
	Road RoadKind = iota
	Ship
)

// RoadPiece occupies a canonical edge. At most one piece exists per
// edge.
type RoadPiece struct {
	Owner PlayerID          `json:"owner"`
	Kind  RoadKind          `json:"kind"`
	Edge  hexgrid.EdgeCoord `json:"edge"`
}

// PortKind distinguishes generic 3:1 ports from 2:1 resource ports.
type PortKind uint8

const (
	PortGeneric PortKind = iota
	PortResource
)

// Port grants its trade ratio to any player with a building on either
// of its two vertices. Resource is meaningful only for PortResource.
type Port struct {
	Kind     PortKind               `json:"kind"`
	Resource Resource               `json:"resource,omitempty"`
	Ratio    int                    `json:"ratio"`
	Vertices [2]hexgrid.VertexCoord `json:"vertices"`
}
