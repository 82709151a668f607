package construction

import (
	"errors"
	"fmt"
	"slices"

	"github.com/woozymasta/loco-construct/internal/coord"
	"github.com/woozymasta/loco-construct/internal/track"
	"github.com/woozymasta/loco-construct/internal/world"
)

// RetryBudget bounds placement attempts.
type RetryBudget struct {
	left      int
	unbounded bool
}

// Bounded allows n attempts.
func Bounded(n int) RetryBudget {
	return RetryBudget{left: n}
}

// Unbounded never runs out; the loop stops on height instead.
func Unbounded() RetryBudget {
	return RetryBudget{unbounded: true}
}

// IsUnbounded reports whether the budget never runs out.
func (b RetryBudget) IsUnbounded() bool {
	return b.unbounded
}

// Exhausted reports whether no attempt is left.
func (b RetryBudget) Exhausted() bool {
	return !b.unbounded && b.left <= 0
}

// Spend uses one attempt and reports whether another one remains.
func (b *RetryBudget) Spend() bool {
	if b.unbounded {
		return true
	}
	if b.left > 0 {
		b.left--
	}

	return b.left > 0
}

func (b RetryBudget) String() string {
	if b.unbounded {
		return "unbounded"
	}

	return fmt.Sprintf("bounded(%d)", b.left)
}

// Outcome describes a finished construction command.
type Outcome struct {
	Placed   bool           `json:"placed"`
	Removed  bool           `json:"removed,omitempty"`
	Junction bool           `json:"junction,omitempty"`
	Attempts int            `json:"attempts"`
	Cost     int            `json:"cost"`
	Type     track.Type     `json:"type"`
	ID       track.ID       `json:"id"`
	Rotation track.Rotation `json:"rotation"`
	Pos      coord.Pos3     `json:"pos"`    // where the piece starts
	Anchor   coord.Pos3     `json:"anchor"` // where the next piece starts
}

// ToolDown places the selected piece at the clicked point. A selection that resolves to no
// piece, or a point off the map, is a silent no-op.
func (s *Session) ToolDown(pt coord.Point, mods Modifiers) (Outcome, error) {
	if s.closed {
		return Outcome{}, ErrClosed
	}
	if s.state != Previewing {
		return Outcome{}, ErrNotPreviewing
	}

	s.invalidate(s.highlight)
	s.removeGhosts()

	res, ok := s.resolve()
	if !ok {
		return Outcome{}, nil
	}

	maxH := s.maxConstructHeight()
	pos, z, junction := s.tryJunction(pt)
	if !junction {
		var h int
		if pos, h, ok = s.constructionPos(pt, maxH, true); !ok {
			return Outcome{}, nil
		}
		z = max(maxH, h)
	}

	budget := Bounded(1)
	shift := mods.Has(ModShift)
	if shift || !junction {
		z -= s.table.MinZ(res.ID)
		z -= world.HeightStep
		budget = Bounded(2)
		if shift {
			budget = Unbounded()
			z -= world.HeightStep
		}
	}
	z = max(z, 0)

	s.log.Debug("tool down", "pos", pos, "z", z, "junction", junction, "budget", budget.String())

	out, err := s.constructionLoop(pos, z, budget, shift)
	out.Junction = junction

	return out, err
}

// constructionLoop issues placements until one succeeds, the budget runs out or the height
// would drop below zero. Below ground failures are never retried.
func (s *Session) constructionLoop(pos coord.Pos2, z int, budget RetryBudget, shift bool) (Outcome, error) {
	s.state = Constructing
	s.sel.Hover = false
	mode := modeLabel(s.mode.IsRoad())

	attempts := 0
	for {
		s.anchor = pos.WithZ(z)
		attempts++

		out, err := s.build()
		s.metrics.attempt(mode, err)
		if err == nil {
			out.Attempts = attempts
			s.metrics.finished(mode, true, attempts)
			s.toIdle()
			s.log.Info("piece placed", "id", out.ID, "pos", out.Pos, "cost", out.Cost, "attempts", attempts)
			return out, nil
		}

		s.log.Debug("placement attempt failed", "z", z, "attempt", attempts, "err", err)

		last := z
		if Classify(err) != FailureBelowGround && budget.Spend() {
			z -= world.HeightStep
			if z >= 0 {
				if !shift {
					z += 2 * world.HeightStep
				}
				continue
			}
		}

		s.metrics.finished(mode, false, attempts)
		s.cost = NoCost
		s.toIdle()
		s.recomputeHighlight()
		if s.cue != nil {
			s.cue.Failure()
		}
		s.log.Info("placement failed", "attempts", attempts, "err", err)

		return Outcome{Attempts: attempts}, &PlacementError{Attempts: attempts, Height: last, Err: err}
	}
}

// Build places the selected piece at the anchor without probing heights, as the construct
// button does after a previous placement.
func (s *Session) Build() (Outcome, error) {
	if s.closed {
		return Outcome{}, ErrClosed
	}
	if s.state != Idle {
		return Outcome{}, ErrNotIdle
	}

	out, err := s.build()
	s.metrics.attempt(modeLabel(s.mode.IsRoad()), err)
	if err != nil {
		if s.cue != nil && Classify(err) != FailureInvalidCombination {
			s.cue.Failure()
		}
		return Outcome{}, err
	}
	out.Attempts = 1

	return out, nil
}

// build places the selected piece at the anchor and advances the anchor to its end.
func (s *Session) build() (Outcome, error) {
	res, ok := s.resolve()
	if !ok {
		return Outcome{}, ErrInvalidCombination
	}

	before := s.sel
	args := s.placeArgs(res, false)
	cost, err := s.commands.PlacePiece(args)
	if err != nil {
		alt, ok := s.alternateRoad(err)
		if !ok {
			return Outcome{}, err
		}

		s.log.Info("switching road type", "from", s.sel.Type, "to", alt)
		if err := s.switchType(alt); err != nil {
			return Outcome{}, err
		}
		if res, ok = s.resolve(); !ok {
			return Outcome{}, ErrInvalidCombination
		}
		args = s.placeArgs(res, false)
		if cost, err = s.commands.PlacePiece(args); err != nil {
			return Outcome{}, err
		}
	}

	s.cost = cost
	s.placed = append(s.placed, placedPiece{args: args, sel: before})

	end := s.table.End(res.ID, res.Rotation.Direction())
	s.anchor = s.anchor.Add(end.Pos())
	s.sel.Rotation = track.Rotation(end.End)
	if s.sel.Piece.ResetsAfterBuild() {
		s.sel.Piece = track.Straight
	}
	s.recomputeHighlight()

	return Outcome{
		Placed:   true,
		Cost:     cost,
		Type:     args.Type,
		ID:       res.ID,
		Rotation: res.Rotation,
		Pos:      args.Pos,
		Anchor:   s.anchor,
	}, nil
}

// alternateRoad returns the road type to switch to after a junction with an incompatible
// road: both roads must be switchable and the other one available to this session.
func (s *Session) alternateRoad(err error) (track.Type, bool) {
	if !s.mode.IsRoad() || !errors.Is(err, world.ErrIncompatibleJunction) {
		return 0, false
	}

	other, ok := world.Conflict(err)
	if !ok || !other.IsRoad() || other == s.sel.Type {
		return 0, false
	}
	if !s.objects.Switchable(s.sel.Type) || !s.objects.Switchable(other) {
		return 0, false
	}
	if !slices.Contains(s.objects.AvailableTypes(s.year), other) {
		return 0, false
	}

	return other, true
}

func (s *Session) placeArgs(res track.Resolution, ghost bool) world.PlaceArgs {
	return world.PlaceArgs{
		Pos:      s.anchor,
		Rotation: res.Rotation,
		Type:     s.sel.Type,
		ID:       res.ID,
		Traits:   res.Traits,
		Mods:     s.sel.Mods,
		Bridge:   s.sel.Bridge,
		Ghost:    ghost,
	}
}
