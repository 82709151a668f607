package construction

import (
	"github.com/woozymasta/loco-construct/internal/coord"
	"github.com/woozymasta/loco-construct/internal/geometry"
	"github.com/woozymasta/loco-construct/internal/track"
	"github.com/woozymasta/loco-construct/internal/world"
)

// Candidate is a position and rotation a new piece may start from.
type Candidate struct {
	Pos      coord.Pos3     `json:"pos"`
	Rotation track.Rotation `json:"rotation"`
}

// Attachment holds the two ways to continue an existing piece.
type Attachment struct {
	Next     Candidate `json:"next"`
	Previous Candidate `json:"previous"`
}

// ResolveAttachment returns the next and previous candidates of the piece owning e.
func ResolveAttachment(table *geometry.Table, e *world.Element) (Attachment, bool) {
	piece, ok := table.Piece(e.ID)
	if !ok || e.Sequence < 0 || e.Sequence >= len(piece.Tiles) {
		return Attachment{}, false
	}

	dir := e.Rotation.Direction()
	seq := piece.Tiles[e.Sequence]
	first := e.Pos.Sub(coord.Rotate(coord.Pos2{X: seq.X, Y: seq.Y}, dir)).WithZ(e.BaseZ - seq.Z)

	end := table.End(e.ID, dir)
	att := Attachment{
		Next: Candidate{Pos: first.Add(end.Pos()), Rotation: track.Rotation(end.End)},
	}

	prev := geometry.ReverseRotation[end.Begin&0xF]
	att.Previous = Candidate{Pos: first, Rotation: track.Rotation(prev)}
	if !geometry.Terminal(prev) {
		att.Previous.Pos = first.Add(geometry.RotationOffset[prev].WithZ(0))
	}

	return att, true
}

// tileCentre is the screen anchor of a candidate tile.
var tileCentre = coord.Pos3{X: coord.TileSize / 2, Y: coord.TileSize / 2}

// ChooseCloser reports whether the next candidate is closer to pt on screen.
// Equal distances go to the lower tile so that swapping the candidates flips the answer.
func ChooseCloser(att Attachment, pt coord.Point, v world.Viewport) bool {
	dn := coord.ManhattanDistance(v.Project(att.Next.Pos.Add(tileCentre)), pt)
	dp := coord.ManhattanDistance(v.Project(att.Previous.Pos.Add(tileCentre)), pt)
	if dn != dp {
		return dn < dp
	}

	return !lessPos(att.Previous.Pos, att.Next.Pos)
}

func lessPos(a, b coord.Pos3) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	if a.X != b.X {
		return a.X < b.X
	}

	return a.Z < b.Z
}

// Choose returns the chosen candidate.
func (a Attachment) Choose(pt coord.Point, v world.Viewport) (Candidate, bool) {
	if ChooseCloser(a, pt, v) {
		return a.Next, true
	}

	return a.Previous, false
}
