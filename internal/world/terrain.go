package world

import (
	"math"

	"github.com/aquilax/go-perlin"

	"github.com/woozymasta/loco-construct/internal/coord"
)

// TerrainOptions configures GenerateTerrain.
type TerrainOptions struct {
	Seed       int64   `json:"seed"`
	Alpha      float64 `json:"alpha,omitempty"`     // noise smoothing
	Beta       float64 `json:"beta,omitempty"`      // noise frequency
	Octaves    int32   `json:"octaves,omitempty"`   // noise octaves
	Frequency  float64 `json:"frequency,omitempty"` // noise periods across the map
	BaseHeight int     `json:"base_height"`
	Amplitude  int     `json:"amplitude"`   // highest rise above BaseHeight
	WaterLevel int     `json:"water_level"` // tiles below it are flooded, 0 disables water
}

// DefaultTerrainOptions returns gentle rolling hills.
func DefaultTerrainOptions(seed int64) TerrainOptions {
	return TerrainOptions{
		Seed:       seed,
		Alpha:      2,
		Beta:       2,
		Octaves:    3,
		Frequency:  4,
		BaseHeight: 32,
		Amplitude:  64,
	}
}

// GenerateTerrain builds a deterministic width x height map from perlin noise.
// Heights are quantised to HeightStep; tiles next to a higher neighbour become slopes.
func GenerateTerrain(width, height int, opts TerrainOptions) *Map {
	def := DefaultTerrainOptions(opts.Seed)
	if opts.Alpha == 0 {
		opts.Alpha = def.Alpha
	}
	if opts.Beta == 0 {
		opts.Beta = def.Beta
	}
	if opts.Octaves == 0 {
		opts.Octaves = def.Octaves
	}
	if opts.Frequency == 0 {
		opts.Frequency = def.Frequency
	}

	m := NewMap(width, height, opts.BaseHeight)
	noise := perlin.NewPerlin(opts.Alpha, opts.Beta, opts.Octaves, opts.Seed)

	heights := make([]int, m.width*m.height)
	steps := opts.Amplitude / HeightStep
	for y := range m.height {
		for x := range m.width {
			nx := float64(x) / float64(m.width) * opts.Frequency
			ny := float64(y) / float64(m.height) * opts.Frequency
			v := (noise.Noise2D(nx, ny) + 1) / 2
			v = math.Max(0, math.Min(1, v))

			heights[y*m.width+x] = opts.BaseHeight + int(math.Round(v*float64(steps)))*HeightStep
		}
	}

	// corner neighbours: north, east, south, west
	neighbours := [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	for y := range m.height {
		for x := range m.width {
			h := heights[y*m.width+x]
			s := Surface{BaseHeight: h}

			rise := 0
			for bit, d := range neighbours {
				nx, ny := x+d[0], y+d[1]
				if nx < 0 || ny < 0 || nx >= m.width || ny >= m.height {
					continue
				}
				if diff := heights[ny*m.width+nx] - h; diff > 0 {
					s.SlopeCorners |= 1 << bit
					rise = max(rise, diff)
				}
			}
			s.DoubleHeight = rise >= 2*HeightStep
			if opts.WaterLevel > 0 && h < opts.WaterLevel {
				s.Water = opts.WaterLevel
			}

			m.SetSurface(coord.Pos2{X: x * coord.TileSize, Y: y * coord.TileSize}, s)
		}
	}

	return m
}
