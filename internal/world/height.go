package world

import "github.com/woozymasta/loco-construct/internal/coord"

// TileHeight is the flat construction height of a tile.
type TileHeight struct {
	Land  int `json:"land"`
	Water int `json:"water"`
}

// Ground returns the higher of land and water.
func (h TileHeight) Ground() int {
	return max(h.Land, h.Water)
}

// ConstructionHeight returns the land height raised by one step for sloped tiles and
// another for double height slopes, together with the water height.
func (m *Map) ConstructionHeight(p coord.Pos2) (TileHeight, bool) {
	s, ok := m.Surface(p)
	if !ok {
		return TileHeight{}, false
	}

	h := TileHeight{Land: s.BaseHeight, Water: s.Water}
	if s.SlopeCorners != 0 {
		h.Land += HeightStep
	}
	if s.DoubleHeight {
		h.Land += HeightStep
	}

	return h, true
}
