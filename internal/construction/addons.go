package construction

import (
	"github.com/woozymasta/loco-construct/internal/coord"
	"github.com/woozymasta/loco-construct/internal/world"
)

// Signal side masks.
const (
	SignalNext     uint16 = 0x4000
	SignalPrevious uint16 = 0x8000
	SignalBoth            = SignalNext | SignalPrevious
)

// PlaceSignal adds the selected signal to the rail element under pt, facing the closer end
// or both ends.
func (s *Session) PlaceSignal(pt coord.Point, both bool) (Outcome, error) {
	if err := s.addonReady(); err != nil {
		return Outcome{}, err
	}
	if s.mode.IsRoad() {
		return Outcome{}, ErrNoSignals
	}
	if s.sel.Signal == NoChoice {
		return Outcome{}, ErrNotAvailable
	}

	e, err := s.addonTarget(pt)
	if err != nil {
		return Outcome{}, err
	}

	sides := SignalBoth
	if !both {
		att, ok := ResolveAttachment(s.table, e)
		if !ok {
			return Outcome{}, world.ErrUnknownPiece
		}
		sides = SignalPrevious
		if ChooseCloser(att, pt, s.viewport) {
			sides = SignalNext
		}
	}

	cost, err := s.commands.PlaceSignal(world.SignalArgs{
		Pos:      e.Pos.WithZ(e.BaseZ),
		Rotation: e.Rotation,
		Type:     e.Type,
		ID:       e.ID,
		Sequence: e.Sequence,
		Sides:    sides,
		Signal:   s.sel.Signal,
	})
	if err != nil {
		return Outcome{}, err
	}
	s.cost = cost

	return s.addonOutcome(e, cost), nil
}

// PlaceStation adds the selected station to the element under pt.
func (s *Session) PlaceStation(pt coord.Point) (Outcome, error) {
	if err := s.addonReady(); err != nil {
		return Outcome{}, err
	}
	if s.sel.Station == NoChoice {
		return Outcome{}, ErrNotAvailable
	}

	e, err := s.addonTarget(pt)
	if err != nil {
		return Outcome{}, err
	}

	cost, err := s.commands.PlaceStation(world.StationArgs{
		Pos:      e.Pos.WithZ(e.BaseZ),
		Rotation: e.Rotation,
		Type:     e.Type,
		ID:       e.ID,
		Sequence: e.Sequence,
		Station:  s.sel.Station,
	})
	if err != nil {
		return Outcome{}, err
	}
	s.cost = cost

	return s.addonOutcome(e, cost), nil
}

func (s *Session) addonReady() error {
	switch {
	case s.closed:
		return ErrClosed
	case s.state == Constructing:
		return ErrBusy
	}
	s.removeGhosts()

	return nil
}

// addonTarget picks the element under pt. Rail add-ons need the session's own rail type.
func (s *Session) addonTarget(pt coord.Point) (*world.Element, error) {
	e, ok := s.locator.ElementAt(s.viewport, pt, s.mode.IsRoad())
	if !ok || (!s.mode.IsRoad() && e.Type != s.sel.Type) {
		return nil, &world.CommandError{Reason: world.ErrNoTrackHere, Object: s.sel.Type.String()}
	}

	return e, nil
}

func (s *Session) addonOutcome(e *world.Element, cost int) Outcome {
	return Outcome{
		Placed:   true,
		Attempts: 1,
		Cost:     cost,
		Type:     e.Type,
		ID:       e.ID,
		Rotation: e.Rotation,
		Pos:      e.Pos.WithZ(e.BaseZ),
		Anchor:   s.anchor,
	}
}
