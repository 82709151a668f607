package construction

import (
	"github.com/woozymasta/loco-construct/internal/coord"
	"github.com/woozymasta/loco-construct/internal/track"
	"github.com/woozymasta/loco-construct/internal/world"
)

// placedPiece is a piece built by the session and the selection it was built with.
type placedPiece struct {
	args world.PlaceArgs
	sel  Selection
}

// Remove removes the last piece placed by the session and moves the anchor back to its start.
func (s *Session) Remove() (Outcome, error) {
	if s.closed {
		return Outcome{}, ErrClosed
	}
	if s.state != Idle {
		return Outcome{}, ErrNotIdle
	}
	if len(s.placed) == 0 {
		return Outcome{}, ErrNothingPlaced
	}

	last := s.placed[len(s.placed)-1]
	piece, ok := s.table.Piece(last.args.ID)
	if !ok || len(piece.Tiles) == 0 {
		return Outcome{}, world.ErrUnknownPiece
	}

	first := piece.Tiles[0]
	pos := last.args.Pos.XY().Add(coord.Rotate(coord.Pos2{X: first.X, Y: first.Y}, last.args.Rotation.Direction())).TileAligned()
	refund, err := s.commands.RemovePiece(world.RemoveArgs{
		Pos:      pos.WithZ(last.args.Pos.Z + first.Z),
		Rotation: last.args.Rotation,
		Type:     last.args.Type,
		ID:       last.args.ID,
		Sequence: 0,
	})
	if err != nil {
		return Outcome{}, err
	}

	s.placed = s.placed[:len(s.placed)-1]
	s.anchor = last.args.Pos
	s.sel.Rotation = last.sel.Rotation
	s.sel.Piece = track.Straight
	s.sel.Gradient = track.Level
	s.cost = refund
	s.recomputeHighlight()

	s.log.Info("piece removed", "id", last.args.ID, "pos", last.args.Pos, "refund", -refund)

	return Outcome{
		Removed:  true,
		Attempts: 1,
		Cost:     refund,
		Type:     last.args.Type,
		ID:       last.args.ID,
		Rotation: last.args.Rotation,
		Pos:      last.args.Pos,
		Anchor:   s.anchor,
	}, nil
}

// Placed returns the number of pieces the session built and has not removed.
func (s *Session) Placed() int {
	return len(s.placed)
}
