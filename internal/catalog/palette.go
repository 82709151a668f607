package catalog

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash"
)

// Color is an RGBA highlight colour.
type Color struct {
	R, G, B, A byte
}

// Hex renders the colour as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// paletteRule maps name keywords onto fixed highlight colours.
type paletteRule struct {
	Keys   []string // Keys to match (e.g. ["tram"])
	Normal Color    // tile highlight
	Key    Color    // outline and arrow
}

var paletteRules = []paletteRule{
	{
		Keys:   []string{"monorail", "maglev"},
		Normal: Color{R: 170, G: 220, B: 255, A: 255},
		Key:    Color{R: 90, G: 150, B: 210, A: 255},
	},
	{
		Keys:   []string{"narrow"},
		Normal: Color{R: 190, G: 145, B: 90, A: 255},
		Key:    Color{R: 120, G: 80, B: 40, A: 255},
	},
	{
		Keys:   []string{"rail", "gauge"},
		Normal: Color{R: 200, G: 70, B: 50, A: 255},
		Key:    Color{R: 120, G: 30, B: 20, A: 255},
	},
	{
		Keys:   []string{"tram"},
		Normal: Color{R: 170, G: 80, B: 200, A: 255},
		Key:    Color{R: 90, G: 40, B: 120, A: 255},
	},
	{
		Keys:   []string{"dirt", "track"},
		Normal: Color{R: 140, G: 90, B: 55, A: 255},
		Key:    Color{R: 90, G: 50, B: 25, A: 255},
	},
	{
		Keys:   []string{"road"},
		Normal: Color{R: 110, G: 125, B: 150, A: 255},
		Key:    Color{R: 60, G: 80, B: 110, A: 255},
	},
}

// Palette returns the highlight colours for an object name. Unknown names get a
// stable colour derived from the name.
func Palette(name string) (normal, key Color) {
	name = strings.ToLower(name)
	for _, rule := range paletteRules {
		if rule.matches(name) {
			return rule.Normal, rule.Key
		}
	}

	h := xxhash.Sum64String(name)
	normal = Color{R: byte(60 + h%160), G: byte(60 + (h>>8)%160), B: byte(60 + (h>>16)%160), A: 255}
	key = Color{R: normal.R / 2, G: normal.G / 2, B: normal.B / 2, A: 255}

	return normal, key
}

// GhostColor lightens a highlight colour halfway to white for ghost previews.
func GhostColor(c Color) Color {
	return Color{R: lighten(c.R), G: lighten(c.G), B: lighten(c.B), A: 255}
}

func lighten(v byte) byte {
	return byte((int(v) + 256) / 2)
}

func (r paletteRule) matches(name string) bool {
	for _, k := range r.Keys {
		if strings.Contains(name, k) {
			return true
		}
	}

	return false
}
