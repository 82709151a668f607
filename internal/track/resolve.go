package track

// ID is a geometry table index for one transport mode.
type ID uint8

// Resolution is a valid piece selection mapped onto the geometry table.
type Resolution struct {
	ID       ID       `json:"id"`       // geometry id
	Rotation Rotation `json:"rotation"` // effective rotation stored with the placed piece
	Traits   Traits   `json:"traits"`   // traits exercised by the piece
}

// Resolve maps a selection onto a geometry id for the plain rail or road table.
// Rail resolution here never accepts sloped curves; use Rail{Traits: SlopedCurve}
// for object types that provide them.
func Resolve(p Piece, g Gradient, r Rotation, isRoad bool) (Resolution, bool) {
	var (
		id ID
		ok bool
	)
	if isRoad {
		id, ok = roadID(p, g, r)
	} else {
		id, ok = railID(p, g, r, false)
	}
	if !ok {
		return Resolution{}, false
	}

	return Resolution{ID: id, Rotation: r.Effective(), Traits: PieceTraits(p, g, r)}, true
}

// railID is the rail lookup; slopedCurves enables geometry ids 18-25.
func railID(p Piece, g Gradient, r Rotation, slopedCurves bool) (ID, bool) {
	switch p {
	case Straight:
		switch r.Band() {
		case 3:
			return 1, g == Level
		case 2:
			return byGradient(g, map[Gradient]ID{Level: 27, SteepSlopeUp: 35, SteepSlopeDown: 37})
		case 1:
			return byGradient(g, map[Gradient]ID{Level: 26, SteepSlopeUp: 34, SteepSlopeDown: 36})
		default:
			return byGradient(g, map[Gradient]ID{Level: 0, SlopeUp: 14, SlopeDown: 15, SteepSlopeUp: 16, SteepSlopeDown: 17})
		}

	case LeftCurveVerySmall:
		return byBand(g, r, 2, 28, 29, none)
	case RightCurveVerySmall:
		return byBand(g, r, 3, 30, 31, none)

	case LeftCurveSmall:
		if r.Band() != 0 {
			return 0, false
		}
		if !slopedCurves {
			return byGradient(g, map[Gradient]ID{Level: 4})
		}
		return byGradient(g, map[Gradient]ID{Level: 4, SlopeUp: 18, SlopeDown: 20, SteepSlopeUp: 22, SteepSlopeDown: 24})
	case RightCurveSmall:
		if r.Band() != 0 {
			return 0, false
		}
		if !slopedCurves {
			return byGradient(g, map[Gradient]ID{Level: 5})
		}
		return byGradient(g, map[Gradient]ID{Level: 5, SlopeUp: 19, SlopeDown: 21, SteepSlopeUp: 23, SteepSlopeDown: 25})

	case LeftCurve:
		return byBand(g, r, 6, none, none, none)
	case RightCurve:
		return byBand(g, r, 7, none, none, none)
	case LeftCurveLarge:
		return byBand(g, r, 8, none, none, 10)
	case RightCurveLarge:
		return byBand(g, r, 9, none, none, 11)

	case SBendLeft:
		return byBand(g, r, 12, none, 33, none)
	case SBendRight:
		return byBand(g, r, 13, 32, none, none)
	case SBendToDualTrack:
		return byBand(g, r, 38, 40, none, none)
	case SBendToSingleTrack:
		return byBand(g, r, 39, none, 41, none)
	case Turnaround:
		return byBand(g, r, 42, none, 43, none)
	}

	return 0, false
}

// roadID is the road lookup: no curve larger than small, no s-bends.
func roadID(p Piece, g Gradient, r Rotation) (ID, bool) {
	switch p {
	case Straight:
		if r.Band() != 0 {
			return 0, false
		}
		return byGradient(g, map[Gradient]ID{Level: 0, SlopeUp: 5, SlopeDown: 6, SteepSlopeUp: 7, SteepSlopeDown: 8})
	case LeftCurveVerySmall:
		return byBand(g, r, 1, none, none, none)
	case RightCurveVerySmall:
		return byBand(g, r, 2, none, none, none)
	case LeftCurveSmall:
		return byBand(g, r, 3, none, none, none)
	case RightCurveSmall:
		return byBand(g, r, 4, none, none, none)
	case Turnaround:
		if g != Level || r.IsDiagonal() {
			return 0, false
		}
		return 9, true
	}

	return 0, false
}

// none marks a rotation band without geometry.
const none = -1

// byBand selects a level-only geometry id per rotation band; none rejects the band.
func byBand(g Gradient, r Rotation, b0, b1, b2, b3 int) (ID, bool) {
	if g != Level {
		return 0, false
	}

	id := [4]int{b0, b1, b2, b3}[r.Band()]
	if id == none {
		return 0, false
	}

	return ID(id), true
}

// byGradient selects a geometry id by gradient; missing gradients are invalid.
func byGradient(g Gradient, ids map[Gradient]ID) (ID, bool) {
	id, ok := ids[g]
	return id, ok
}
