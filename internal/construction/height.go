package construction

import (
	"github.com/woozymasta/loco-construct/internal/coord"
	"github.com/woozymasta/loco-construct/internal/world"
)

// maxConstructHeight is the highest land, or water plus one step, under the highlighted tiles.
func (s *Session) maxConstructHeight() int {
	maxH := 0
	for _, p := range s.highlight.Tiles() {
		if !s.heights.ValidCoords(p) {
			continue
		}
		h, ok := s.heights.ConstructionHeight(p)
		if !ok {
			continue
		}

		maxH = max(maxH, h.Land)
		if h.Water > 0 {
			maxH = max(maxH, h.Water+world.HeightStep)
		}
	}

	return maxH
}

// constructionPos returns the tile under pt and its construction height. With capped set
// the land height is limited to capH; water always wins.
func (s *Session) constructionPos(pt coord.Point, capH int, capped bool) (coord.Pos2, int, bool) {
	pos, ok := s.locator.SurfaceAt(s.viewport, pt)
	if !ok {
		if pos, ok = s.locator.MapAtHeight(s.viewport, pt, capH); !ok {
			return coord.Pos2{}, 0, false
		}
	}
	pos = pos.TileAligned()

	h, ok := s.heights.ConstructionHeight(pos)
	if !ok {
		return coord.Pos2{}, 0, false
	}

	land := h.Land
	if capped {
		land = min(land, capH)
	}

	return pos, max(land, h.Water), true
}

// tryJunction locates an existing element of the session mode under pt that a new piece
// can start from, returning the tile and the element piece's start height.
func (s *Session) tryJunction(pt coord.Point) (coord.Pos2, int, bool) {
	e, ok := s.locator.ElementAt(s.viewport, pt, s.mode.IsRoad())
	if !ok {
		return coord.Pos2{}, 0, false
	}
	if !s.mode.IsRoad() && e.Type != s.sel.Type {
		return coord.Pos2{}, 0, false
	}

	piece, ok := s.table.Piece(e.ID)
	if !ok || e.Sequence >= len(piece.Tiles) {
		return coord.Pos2{}, 0, false
	}
	if !s.mode.IsRoad() && s.table.End(e.ID, 0).Z != 0 {
		return coord.Pos2{}, 0, false
	}

	z := e.BaseZ - piece.Tiles[e.Sequence].Z
	pos, ok := s.locator.MapAtHeight(s.viewport, pt, z)
	if !ok {
		return coord.Pos2{}, 0, false
	}

	return pos.TileAligned(), z, true
}
