package rules

import (
	"sort"

	"github.com/talgya/settlers/internal/board"
	"github.com/talgya/settlers/internal/hexgrid"
)

// ResourceCounts holds a per-resource tally, indexed by board.Resource.
type ResourceCounts [board.NumResources]int

// Add credits n units of a resource.
func (c *ResourceCounts) Add(r board.Resource, n int) {
	c[r] += n
}

// Get returns the tally for a resource.
func (c ResourceCounts) Get(r board.Resource) int {
	return c[r]
}

// Total returns the sum across all resources.
func (c ResourceCounts) Total() int {
	sum := 0
	for _, n := range c {
		sum += n
	}
	return sum
}

// ProducingTiles returns the tiles that produce for the given roll
// total: number matches, terrain yields a resource, and the robber is
// elsewhere. Results are in deterministic coordinate order.
func ProducingTiles(snap *board.Snapshot, total int) []board.Tile {
	var out []board.Tile
	for _, t := range snap.Tiles {
		if t.Number != total || t.HasRobber {
			continue
		}
		if !t.Terrain.Producing() {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Coord, out[j].Coord
		if a.Q != b.Q {
			return a.Q < b.Q
		}
		return a.R < b.R
	})
	return out
}

// ProductionForRoll computes the per-player resource deltas for a roll
// total. Each producing tile credits the owner of each building on its
// six corners: 1 unit for a settlement, 2 for a city. Every player on
// the board gets an entry, all-zero when they produced nothing.
func ProductionForRoll(snap *board.Snapshot, total int) map[board.PlayerID]ResourceCounts {
	out := make(map[board.PlayerID]ResourceCounts)
	for _, p := range snap.Players() {
		out[p] = ResourceCounts{}
	}

	for _, tile := range ProducingTiles(snap, total) {
		res, ok := tile.Terrain.Resource()
		if !ok {
			continue
		}
		for _, v := range hexgrid.HexOutline(tile.Coord) {
			b, found := snap.BuildingAt(v)
			if !found {
				continue
			}
			counts := out[b.Owner]
			switch b.Kind {
			case board.City:
				counts.Add(res, 2)
			default:
				counts.Add(res, 1)
			}
			out[b.Owner] = counts
		}
	}
	return out
}

// RollProbability returns the probability of a two-die roll summing to
// n, or 0 for totals outside 2–12.
func RollProbability(n int) float64 {
	if n < 2 || n > 12 {
		return 0
	}
	combos := 6 - abs(7-n)
	return float64(combos) / 36
}

// IsHighFrequency returns true for the two most probable non-7 totals,
// the ones the generator keeps off adjacent tiles.
func IsHighFrequency(n int) bool {
	return n == 6 || n == 8
}

// TradeRatio returns the player's best bank trade ratio for a
// resource: 2 with a building on a matching resource port, 3 with a
// building on a generic port, 4 otherwise.
func TradeRatio(snap *board.Snapshot, player board.PlayerID, r board.Resource) int {
	ratio := 4
	for _, port := range snap.Ports {
		if port.Kind == board.PortResource && port.Resource != r {
			continue
		}
		if port.Ratio >= ratio {
			continue
		}
		for _, v := range port.Vertices {
			if b, ok := snap.BuildingAt(v); ok && b.Owner == player {
				ratio = port.Ratio
				break
			}
		}
	}
	return ratio
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
