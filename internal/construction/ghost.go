package construction

import (
	"encoding/binary"
	"errors"

	"github.com/woozymasta/loco-construct/internal/coord"
	"github.com/woozymasta/loco-construct/internal/geometry"
	"github.com/woozymasta/loco-construct/internal/world"
)

// ToolUpdate previews the selected piece under pt with a ghost and records its cost.
// The error reports why no ghost could be placed; the session stays Previewing.
func (s *Session) ToolUpdate(pt coord.Point, mods Modifiers) error {
	if s.closed {
		return ErrClosed
	}
	if s.state != Previewing {
		return ErrNotPreviewing
	}

	res, ok := s.resolve()
	if !ok {
		s.removeGhosts()
		s.cost = NoCost
		return nil
	}

	pos, z, junction := s.tryJunction(pt)
	if !junction {
		if pos, z, ok = s.constructionPos(pt, 0, false); !ok {
			s.removeGhosts()
			s.cost = NoCost
			return nil
		}
	}

	s.anchor = pos.WithZ(z)
	s.recomputeHighlight()
	if !junction {
		z = max(s.maxConstructHeight(), z)
	}

	shift := mods.Has(ModShift)
	z -= s.table.MinZ(res.ID)
	z -= world.HeightStep
	budget := Bounded(2)
	if shift {
		budget = Unbounded()
		z -= world.HeightStep
	}

	return s.ghostLoop(pos, max(z, 0), budget, shift)
}

func (s *Session) ghostLoop(pos coord.Pos2, z int, budget RetryBudget, shift bool) error {
	res, ok := s.resolve()
	if !ok {
		return ErrInvalidCombination
	}

	s.anchor = pos.WithZ(z)
	key := ghostKey(s.placeArgs(res, true))
	if s.ghost != nil && s.ghostKey == key {
		return nil
	}

	mode := modeLabel(s.mode.IsRoad())
	attempts := 0
	for {
		attempts++
		args := s.placeArgs(res, true)
		args.Pos = pos.WithZ(z)

		cost, err := s.placeGhost(args)
		s.metrics.ghost(mode, err)
		if err == nil {
			s.cost = cost
			// the bridge may have been swapped
			s.ghostKey = ghostKey(s.placeArgs(res, true))
			return nil
		}

		if budget.Spend() {
			z -= world.HeightStep
			if z >= 0 {
				if !shift {
					z += 2 * world.HeightStep
				}
				continue
			}
		}

		s.cost = NoCost
		return &PlacementError{Attempts: attempts, Height: args.Pos.Z, Err: err}
	}
}

// placeGhost replaces the ghost. A bridge that cannot carry the piece is swapped for the
// next suitable bridge in the list.
func (s *Session) placeGhost(args world.PlaceArgs) (int, error) {
	s.removeGhosts()

	cost, err := s.commands.PlacePiece(args)
	if errors.Is(err, world.ErrBridgeUnsuitable) {
		if bridge, ok := s.suitableBridge(args); ok {
			s.log.Debug("bridge swapped", "from", args.Bridge, "to", bridge)
			s.sel.Bridge = bridge
			args.Bridge = bridge
			return s.placeGhost(args)
		}
	}
	if err != nil {
		return 0, err
	}

	ghost := args
	s.ghost = &ghost

	return cost, nil
}

func (s *Session) suitableBridge(args world.PlaceArgs) (uint8, bool) {
	for _, id := range s.lists.Bridges {
		disabled, ok := s.objects.BridgeDisabled(id)
		if !ok || disabled.Any(args.Traits) {
			continue
		}
		if id == args.Bridge {
			break
		}
		return id, true
	}

	return 0, false
}

// removeGhosts removes the ghost piece placed by this session.
func (s *Session) removeGhosts() {
	if s.ghost == nil {
		return
	}

	g := *s.ghost
	s.ghost = nil
	s.ghostKey = 0

	piece, ok := s.table.Piece(g.ID)
	if !ok || len(piece.Tiles) == 0 {
		return
	}

	first := piece.Tiles[0]
	pos := g.Pos.XY().Add(coord.Rotate(coord.Pos2{X: first.X, Y: first.Y}, g.Rotation.Direction())).TileAligned()
	_, err := s.commands.RemovePiece(world.RemoveArgs{
		Pos:      pos.WithZ(g.Pos.Z + first.Z),
		Rotation: g.Rotation,
		Type:     g.Type,
		ID:       g.ID,
		Sequence: 0,
		Ghost:    true,
	})
	if err != nil {
		s.log.Debug("ghost already gone", "err", err)
	}
}

// ghostKey identifies a ghost request by its starting position and selection.
func ghostKey(args world.PlaceArgs) uint32 {
	b := make([]byte, 0, 17)
	for _, v := range []int{args.Pos.X, args.Pos.Y, args.Pos.Z} {
		b = binary.LittleEndian.AppendUint32(b, uint32(int32(v)))
	}
	b = append(b, byte(args.Type), byte(args.ID), byte(args.Rotation), args.Bridge, args.Mods)

	return geometry.Hash32(b)
}
