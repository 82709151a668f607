package world

import "github.com/woozymasta/loco-construct/internal/coord"

// inverseRotation undoes a view rotation.
var inverseRotation = [4]uint8{0, 3, 2, 1}

// GameToScreen projects a world position into screen space for a view rotation.
func GameToScreen(p coord.Pos3, rotation uint8) coord.Point {
	r := coord.Rotate(p.XY(), rotation)

	return coord.Point{
		X: r.Y - r.X,
		Y: ((r.Y + r.X) >> 1) - p.Z,
	}
}

// ScreenToGame unprojects a screen position at height z.
func ScreenToGame(pt coord.Point, z int, rotation uint8) coord.Pos2 {
	r := coord.Pos2{
		X: pt.Y - (pt.X >> 1) + z,
		Y: pt.Y + (pt.X >> 1) + z,
	}

	return coord.Rotate(r, inverseRotation[rotation&3])
}

// Viewport is a window onto the map.
type Viewport struct {
	X, Y          int   // screen position of the viewport
	Width, Height int   // size in screen pixels
	ViewX, ViewY  int   // top left corner in view space
	Zoom          uint8 // view space to screen shift
	Rotation      uint8 // view rotation 0-3
}

// ToView converts a screen point into view space.
func (v Viewport) ToView(pt coord.Point) coord.Point {
	return coord.Point{
		X: ((pt.X - v.X) << v.Zoom) + v.ViewX,
		Y: ((pt.Y - v.Y) << v.Zoom) + v.ViewY,
	}
}

// ToScreen converts a view space point into screen space.
func (v Viewport) ToScreen(vp coord.Point) coord.Point {
	return coord.Point{
		X: ((vp.X - v.ViewX) >> v.Zoom) + v.X,
		Y: ((vp.Y - v.ViewY) >> v.Zoom) + v.Y,
	}
}

// Contains reports whether a screen point is inside the viewport; a zero size means unbounded.
func (v Viewport) Contains(pt coord.Point) bool {
	if v.Width == 0 && v.Height == 0 {
		return true
	}

	return pt.X >= v.X && pt.Y >= v.Y && pt.X < v.X+v.Width && pt.Y < v.Y+v.Height
}

// Project returns the screen position of a world position.
func (v Viewport) Project(p coord.Pos3) coord.Point {
	return v.ToScreen(GameToScreen(p, v.Rotation))
}

// Unproject returns the world position under a screen point at height z.
func (v Viewport) Unproject(pt coord.Point, z int) coord.Pos2 {
	return ScreenToGame(v.ToView(pt), z, v.Rotation)
}

// MapAtHeight returns the map position under pt at height z.
func (m *Map) MapAtHeight(v Viewport, pt coord.Point, z int) (coord.Pos2, bool) {
	if !v.Contains(pt) {
		return coord.Pos2{}, false
	}

	p := v.Unproject(pt, z)
	if !m.ValidCoords(p) {
		return coord.Pos2{}, false
	}

	return p, true
}

// surfaceIterations bounds the height refinement in SurfaceAt.
const surfaceIterations = 8

// SurfaceAt returns the land or water position under pt by refining the unprojection
// height against the terrain until the tile stops changing.
func (m *Map) SurfaceAt(v Viewport, pt coord.Point) (coord.Pos2, bool) {
	if !v.Contains(pt) {
		return coord.Pos2{}, false
	}

	z := 0
	pos := v.Unproject(pt, z)
	for range surfaceIterations {
		h, ok := m.ConstructionHeight(pos)
		if !ok {
			break
		}
		next := v.Unproject(pt, h.Ground())
		if next.TileAligned() == pos.TileAligned() && h.Ground() == z {
			break
		}
		pos, z = next, h.Ground()
	}

	if !m.ValidCoords(pos) {
		return coord.Pos2{}, false
	}

	return pos, true
}
