package construction

import (
	"github.com/woozymasta/loco-construct/internal/coord"
	"github.com/woozymasta/loco-construct/internal/geometry"
	"github.com/woozymasta/loco-construct/internal/track"
)

// TileSetCapacity bounds a highlighted tile set, sentinel included.
const TileSetCapacity = 300

// Sentinel terminates a TileSet.
var Sentinel = coord.Pos2{X: -1}

// TileSet is the ordered set of highlighted map tiles, always terminated by Sentinel.
type TileSet struct {
	tiles []coord.Pos2
}

// ComputeHighlight returns the whole tiles covered by a piece placed at origin.
// Diagonal sub-tile entries are skipped.
func ComputeHighlight(piece geometry.Piece, origin coord.Pos2, rot track.Rotation) TileSet {
	tiles := make([]coord.Pos2, 0, min(len(piece.Tiles), TileSetCapacity-1)+1)
	for _, tile := range piece.Tiles {
		if tile.Diagonal {
			continue
		}
		if len(tiles) == TileSetCapacity-1 {
			break
		}
		tiles = append(tiles, origin.Add(coord.Rotate(coord.Pos2{X: tile.X, Y: tile.Y}, rot.Direction())).TileAligned())
	}

	return TileSet{tiles: append(tiles, Sentinel)}
}

// Tiles returns the highlighted tiles without the sentinel.
func (s TileSet) Tiles() []coord.Pos2 {
	if len(s.tiles) == 0 {
		return nil
	}

	out := make([]coord.Pos2, len(s.tiles)-1)
	copy(out, s.tiles)

	return out
}

// Terminated returns the raw set including the sentinel.
func (s TileSet) Terminated() []coord.Pos2 {
	if len(s.tiles) == 0 {
		return []coord.Pos2{Sentinel}
	}

	out := make([]coord.Pos2, len(s.tiles))
	copy(out, s.tiles)

	return out
}

// Len returns the tile count without the sentinel.
func (s TileSet) Len() int {
	return max(len(s.tiles)-1, 0)
}

// Contains reports whether p lies in a highlighted tile.
func (s TileSet) Contains(p coord.Pos2) bool {
	p = p.TileAligned()
	for _, t := range s.Tiles() {
		if t == p {
			return true
		}
	}

	return false
}
