// Package world is an in-memory tile map: surfaces, water and placed track or road
// elements, plus the height queries, isometric projection and construction commands
// the construction engine consumes.
package world

import (
	"github.com/woozymasta/loco-construct/internal/coord"
	"github.com/woozymasta/loco-construct/internal/track"
)

const (
	// MaxCoord is the largest valid world coordinate on either axis.
	MaxCoord = 0x2FFF

	// HeightStep is the construction height quantum.
	HeightStep = 16

	// MinBuildHeight is the lowest base height a piece may use.
	MinBuildHeight = 16

	// MaxBuildHeight is the highest clearance height a piece may reach.
	MaxBuildHeight = 944

	// NoBridge marks an empty bridge selection.
	NoBridge uint8 = 0xFF

	// NoStation marks an element without a station.
	NoStation uint8 = 0xFF
)

// Surface is the terrain of one tile.
type Surface struct {
	BaseHeight   int   `json:"base_height"`             // lowest corner height
	SlopeCorners uint8 `json:"slope_corners,omitempty"` // raised corner mask
	DoubleHeight bool  `json:"double_height,omitempty"` // steep slope spanning two steps
	Water        int   `json:"water,omitempty"`         // water surface height, 0 when dry
}

// Element is one tile of a placed track or road piece.
type Element struct {
	Pos      coord.Pos2     // tile-aligned position
	BaseZ    int            // base height
	ClearZ   int            // clearance height
	Type     track.Type     // object being built
	ID       track.ID       // geometry id
	Rotation track.Rotation // stored rotation
	Sequence int            // tile index inside the piece
	Quarter  uint8          // occupied quarter mask, rotated
	Bridge   uint8
	Mods     uint8
	Ghost    bool
	Cost     int

	SignalSides  uint16
	SignalObject uint8
	Station      uint8
}

// IsRoad reports whether the element is road.
func (e *Element) IsRoad() bool {
	return e.Type.IsRoad()
}

// Map is a rectangular tile map.
type Map struct {
	width, height int
	surfaces      []Surface
	elements      [][]*Element
}

// NewMap creates a flat, dry map of width x height tiles.
func NewMap(width, height, baseHeight int) *Map {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	m := &Map{
		width:    width,
		height:   height,
		surfaces: make([]Surface, width*height),
		elements: make([][]*Element, width*height),
	}
	for i := range m.surfaces {
		m.surfaces[i].BaseHeight = baseHeight
	}

	return m
}

// Width returns the map width in tiles.
func (m *Map) Width() int { return m.width }

// Height returns the map height in tiles.
func (m *Map) Height() int { return m.height }

// ValidCoords reports whether p lies on the map.
func (m *Map) ValidCoords(p coord.Pos2) bool {
	if p.X < 0 || p.Y < 0 || p.X > MaxCoord || p.Y > MaxCoord {
		return false
	}

	return p.X < m.width*coord.TileSize && p.Y < m.height*coord.TileSize
}

func (m *Map) index(p coord.Pos2) (int, bool) {
	if !m.ValidCoords(p) {
		return 0, false
	}

	return (p.Y/coord.TileSize)*m.width + p.X/coord.TileSize, true
}

// Surface returns the terrain at p.
func (m *Map) Surface(p coord.Pos2) (Surface, bool) {
	i, ok := m.index(p)
	if !ok {
		return Surface{}, false
	}

	return m.surfaces[i], true
}

// SetSurface replaces the terrain at p; it reports false off the map.
func (m *Map) SetSurface(p coord.Pos2, s Surface) bool {
	i, ok := m.index(p)
	if !ok {
		return false
	}
	m.surfaces[i] = s

	return true
}

// Elements returns the elements on the tile containing p.
func (m *Map) Elements(p coord.Pos2) []*Element {
	i, ok := m.index(p)
	if !ok {
		return nil
	}

	return append([]*Element(nil), m.elements[i]...)
}

// Each calls fn for every element in tile order until fn returns false.
func (m *Map) Each(fn func(*Element) bool) {
	for _, tile := range m.elements {
		for _, e := range tile {
			if !fn(e) {
				return
			}
		}
	}
}

// Count returns the number of elements, ghosts included when ghosts is true.
func (m *Map) Count(ghosts bool) int {
	n := 0
	m.Each(func(e *Element) bool {
		if ghosts || !e.Ghost {
			n++
		}
		return true
	})

	return n
}

func (m *Map) add(e *Element) {
	i, ok := m.index(e.Pos)
	if !ok {
		return
	}
	m.elements[i] = append(m.elements[i], e)
}

func (m *Map) remove(e *Element) {
	i, ok := m.index(e.Pos)
	if !ok {
		return
	}

	tile := m.elements[i]
	for j, other := range tile {
		if other == e {
			m.elements[i] = append(tile[:j], tile[j+1:]...)
			return
		}
	}
}
