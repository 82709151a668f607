package track

// Mode is the transport-mode specific part of construction: piece resolution and
// which controls the object type offers. Rail and Road implement it.
type Mode interface {
	// IsRoad reports whether the mode builds road.
	IsRoad() bool

	// Resolve maps a selection onto the mode's geometry table.
	Resolve(p Piece, g Gradient, r Rotation) (Resolution, bool)

	// Offers reports whether the object type has a button for the piece.
	Offers(p Piece) bool

	// OffersGradient reports whether the object type has a button for the gradient.
	OffersGradient(g Gradient) bool

	// Traits returns the object capabilities.
	Traits() Traits
}

// Rail is the rail transport mode.
type Rail struct {
	Caps Traits // object capabilities
}

// Road is the road transport mode.
type Road struct {
	Caps Traits // object capabilities
}

// ModeFor returns the mode matching a track type.
func ModeFor(t Type, caps Traits) Mode {
	if t.IsRoad() {
		return Road{Caps: caps}
	}

	return Rail{Caps: caps}
}

// IsRoad implements Mode.
func (Rail) IsRoad() bool { return false }

// Traits implements Mode.
func (m Rail) Traits() Traits { return m.Caps }

// Resolve implements Mode.
func (m Rail) Resolve(p Piece, g Gradient, r Rotation) (Resolution, bool) {
	id, ok := railID(p, g, r, m.Caps.Has(SlopedCurve))
	if !ok {
		return Resolution{}, false
	}

	return Resolution{ID: id, Rotation: r.Effective(), Traits: PieceTraits(p, g, r)}, true
}

// Offers implements Mode.
func (m Rail) Offers(p Piece) bool {
	switch p {
	case Straight, SBendLeft, SBendRight:
		return true
	case LeftCurveVerySmall, RightCurveVerySmall:
		return m.Caps.Has(VerySmallCurve)
	case LeftCurveSmall, RightCurveSmall:
		return m.Caps.Has(SmallCurve)
	case LeftCurve, RightCurve:
		return m.Caps.Has(NormalCurve)
	case LeftCurveLarge, RightCurveLarge:
		return m.Caps.Has(LargeCurve)
	case SBendToDualTrack, SBendToSingleTrack, Turnaround:
		return m.Caps.Has(OneSided)
	default:
		return false
	}
}

// OffersGradient implements Mode. Sloped curves imply both slope kinds.
func (m Rail) OffersGradient(g Gradient) bool {
	switch {
	case g == Level:
		return true
	case g.IsSteep():
		return m.Caps.Any(SteepSlope | SlopedCurve)
	case g.IsSloped():
		return m.Caps.Any(Slope | SlopedCurve)
	default:
		return false
	}
}

// IsRoad implements Mode.
func (Road) IsRoad() bool { return true }

// Traits implements Mode.
func (m Road) Traits() Traits { return m.Caps }

// Resolve implements Mode.
func (m Road) Resolve(p Piece, g Gradient, r Rotation) (Resolution, bool) {
	return Resolve(p, g, r, true)
}

// Offers implements Mode.
func (m Road) Offers(p Piece) bool {
	switch p {
	case Straight:
		return true
	case LeftCurveVerySmall, RightCurveVerySmall:
		return m.Caps.Has(VerySmallCurve)
	case LeftCurveSmall, RightCurveSmall:
		return m.Caps.Has(SmallCurve)
	case Turnaround:
		return m.Caps.Has(TurnaroundPiece)
	default:
		return false
	}
}

// OffersGradient implements Mode.
func (m Road) OffersGradient(g Gradient) bool {
	switch {
	case g == Level:
		return true
	case g.IsSteep():
		return m.Caps.Has(SteepSlope)
	case g.IsSloped():
		return m.Caps.Has(Slope)
	default:
		return false
	}
}
