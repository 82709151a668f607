package world

import "github.com/woozymasta/loco-construct/internal/coord"

// ElementAt returns the topmost built element of the given mode under a screen point.
// Ghost elements are never picked.
func (m *Map) ElementAt(v Viewport, pt coord.Point, road bool) (*Element, bool) {
	var best *Element
	m.Each(func(e *Element) bool {
		if e.Ghost || e.IsRoad() != road {
			return true
		}

		p, ok := m.MapAtHeight(v, pt, e.BaseZ)
		if !ok || p.TileAligned() != e.Pos {
			return true
		}
		if best == nil || e.BaseZ > best.BaseZ {
			best = e
		}
		return true
	})

	return best, best != nil
}
