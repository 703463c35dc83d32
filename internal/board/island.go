// Island layout: a larger board whose land mass is carved from
// simplex noise instead of the fixed standard disc. The coastline
// varies per seed; terrain and token assignment still go through
// Generate and its non-adjacency retry loop.
package board

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/settlers/internal/hexgrid"
)

// IslandConfig holds island layout parameters.
type IslandConfig struct {
	Radius   int     // Board radius (3 = one ring larger than standard)
	Seed     int64   // Noise seed; the same seed carves the same coast
	SeaLevel float64 // Elevation threshold for water (0.0–1.0)
}

// DefaultIslandConfig returns a radius-3 island with a moderate sea
// level, roughly two dozen land hexes on most seeds.
func DefaultIslandConfig() IslandConfig {
	return IslandConfig{
		Radius:   3,
		Seed:     1,
		SeaLevel: 0.42,
	}
}

// IslandLayout carves a land/water mask from layered simplex noise and
// builds a layout whose terrain and token pools are scaled to the land
// count. Land on the outermost ring enters the pool as fog, revealed
// during play by the caller.
func IslandLayout(cfg IslandConfig) Layout {
	noise := opensimplex.NewNormalized(cfg.Seed)

	var land, fog []hexgrid.HexCoord
	var water []hexgrid.HexCoord
	origin := hexgrid.HexCoord{}

	for q := -cfg.Radius; q <= cfg.Radius; q++ {
		for r := -cfg.Radius; r <= cfg.Radius; r++ {
			coord := hexgrid.HexCoord{Q: q, R: r}
			d := hexgrid.Distance(origin, coord)
			if d > cfg.Radius {
				continue
			}

			// Hex axial → cartesian for noise sampling.
			x := float64(q) + float64(r)/2
			y := float64(r) * math.Sqrt(3) / 2

			elev := octaveNoise(noise, x, y, 4, 0.35, 0.5)

			// Shave elevation toward the rim so the island stays
			// surrounded by sea.
			distFromCenter := math.Hypot(x, y) / float64(cfg.Radius)
			falloff := 1 - math.Pow(distFromCenter, 3)
			if falloff < 0 {
				falloff = 0
			}
			elev *= falloff

			switch {
			case elev < cfg.SeaLevel:
				water = append(water, coord)
			case d == cfg.Radius:
				fog = append(fog, coord)
			default:
				land = append(land, coord)
			}
		}
	}

	return Layout{
		Name:     "island",
		Land:     land,
		Fog:      fog,
		Water:    water,
		Terrains: islandTerrains(len(land)),
		Tokens:   islandTokens(len(land)),
	}
}

// islandTerrains scales the standard terrain proportions to n hexes,
// always keeping at least one desert for the robber.
func islandTerrains(n int) []TerrainCount {
	if n <= 0 {
		return nil
	}

	deserts := n / 18
	if deserts < 1 {
		deserts = 1
	}
	remaining := n - deserts

	producing := []Terrain{
		TerrainForest,
		TerrainPasture,
		TerrainFields,
		TerrainHills,
		TerrainMountains,
	}
	counts := make(map[Terrain]int)
	for i := 0; i < remaining; i++ {
		counts[producing[i%len(producing)]]++
	}

	out := make([]TerrainCount, 0, len(producing)+1)
	for _, t := range producing {
		if counts[t] > 0 {
			out = append(out, TerrainCount{t, counts[t]})
		}
	}
	out = append(out, TerrainCount{TerrainDesert, deserts})
	return out
}

// islandTokens repeats the standard token sequence until every
// producing tile can carry a number.
func islandTokens(n int) []TokenCount {
	sequence := []int{2, 3, 3, 4, 4, 5, 5, 6, 6, 8, 8, 9, 9, 10, 10, 11, 11, 12}
	counts := make(map[int]int)
	for i := 0; i < n; i++ {
		counts[sequence[i%len(sequence)]]++
	}

	out := make([]TokenCount, 0, len(counts))
	for _, v := range []int{2, 3, 4, 5, 6, 8, 9, 10, 11, 12} {
		if counts[v] > 0 {
			out = append(out, TokenCount{v, counts[v]})
		}
	}
	return out
}

// octaveNoise layers multiple noise frequencies for a less blobby
// coastline.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
