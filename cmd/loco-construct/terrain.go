package main

import (
	"fmt"
	"strings"

	"github.com/woozymasta/loco-construct/internal/coord"
	"github.com/woozymasta/loco-construct/internal/world"
)

type terrainCmd struct {
	Width     int   `short:"W" long:"width" default:"32" description:"Map width in tiles"`
	Height    int   `short:"H" long:"height" default:"32" description:"Map height in tiles"`
	Seed      int64 `short:"s" long:"seed" default:"1" description:"Noise seed"`
	Base      int   `long:"base" default:"32" description:"Base height"`
	Amplitude int   `long:"amplitude" default:"64" description:"Highest rise above the base"`
	Water     int   `long:"water" description:"Water level, 0 disables water"`
}

// Execute prints the terrain as height steps, "~" marking water.
func (c *terrainCmd) Execute(_ []string) error {
	if c.Width <= 0 || c.Height <= 0 || c.Width*coord.TileSize > world.MaxCoord || c.Height*coord.TileSize > world.MaxCoord {
		return fmt.Errorf("invalid map size %dx%d", c.Width, c.Height)
	}

	opts := world.DefaultTerrainOptions(c.Seed)
	opts.BaseHeight = c.Base
	opts.Amplitude = c.Amplitude
	opts.WaterLevel = c.Water
	m := world.GenerateTerrain(c.Width, c.Height, opts)

	var sb strings.Builder
	for y := range m.Height() {
		for x := range m.Width() {
			s, _ := m.Surface(coord.Pos2{X: x * coord.TileSize, Y: y * coord.TileSize})
			if s.Water > s.BaseHeight {
				sb.WriteString("  ~")
				continue
			}
			fmt.Fprintf(&sb, "%3d", s.BaseHeight/world.HeightStep)
		}
		sb.WriteByte('\n')
	}

	fmt.Print(sb.String())
	return nil
}
