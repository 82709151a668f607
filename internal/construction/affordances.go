package construction

import "github.com/woozymasta/loco-construct/internal/track"

// Affordances lists which construction controls are enabled.
type Affordances struct {
	Pieces    map[track.Piece]bool    `json:"pieces"`
	Gradients map[track.Gradient]bool `json:"gradients"`
	Construct bool                    `json:"construct"`
	Remove    bool                    `json:"remove"`
	Rotate    bool                    `json:"rotate"`
}

// Affordances returns the enabled controls for the current selection.
func (s *Session) Affordances() Affordances {
	a := Affordances{
		Pieces:    make(map[track.Piece]bool, len(track.Pieces)),
		Gradients: make(map[track.Gradient]bool, len(track.Gradients)),
	}
	if s.closed {
		return a
	}

	for _, p := range track.Pieces {
		a.Pieces[p] = s.pieceEnabled(p)
	}
	for _, g := range track.Gradients {
		a.Gradients[g] = s.gradientEnabled(g)
	}

	_, resolvable := s.resolve()
	a.Construct = s.state == Idle && resolvable
	a.Remove = s.state == Idle && len(s.placed) > 0
	a.Rotate = s.state != Constructing

	return a
}

func (s *Session) pieceEnabled(p track.Piece) bool {
	if !s.mode.Offers(p) {
		return false
	}

	g, r := s.sel.Gradient, s.sel.Rotation
	if g.IsSloped() && !s.climbs(p) {
		return false
	}

	switch {
	case r >= 12:
		switch p {
		case track.LeftCurveVerySmall, track.RightCurveVerySmall,
			track.LeftCurveSmall, track.RightCurveSmall,
			track.LeftCurve, track.RightCurve,
			track.Turnaround:
			return false
		}
		return !p.IsSBend()
	case r >= 8:
		return !bandCurve(p) && p != track.SBendRight
	case r >= 4:
		return !bandCurve(p) && p != track.SBendLeft
	}

	return true
}

// climbs reports whether p may be built on a slope: straights always, rail small
// curves only with SlopedCurve.
func (s *Session) climbs(p track.Piece) bool {
	if !p.IsCurve() && !p.IsSBend() && p != track.Turnaround {
		return true
	}
	small := p == track.LeftCurveSmall || p == track.RightCurveSmall

	return small && !s.mode.IsRoad() && s.mode.Traits().Has(track.SlopedCurve)
}

// bandCurve reports curves with no geometry in the half-diagonal bands.
func bandCurve(p track.Piece) bool {
	switch p {
	case track.LeftCurveSmall, track.RightCurveSmall,
		track.LeftCurve, track.RightCurve,
		track.LeftCurveLarge, track.RightCurveLarge:
		return true
	}

	return false
}

func (s *Session) gradientEnabled(g track.Gradient) bool {
	if !s.mode.OffersGradient(g) {
		return false
	}

	if g.IsSloped() && !s.climbs(s.sel.Piece) {
		return false
	}

	r := s.sel.Rotation
	switch {
	case r >= 12:
		return g == track.Level
	case r >= 4:
		return g != track.SlopeUp && g != track.SlopeDown
	}

	return true
}
