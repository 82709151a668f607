// Package track resolves piece, gradient and rotation selections into geometry ids for rail and road.
package track

import "strings"

// Piece is the shape of a placeable segment.
type Piece uint8

const (
	// Straight piece.
	Straight Piece = iota

	// LeftCurveVerySmall is a one-tile left curve.
	LeftCurveVerySmall

	// RightCurveVerySmall is a one-tile right curve.
	RightCurveVerySmall

	// LeftCurveSmall is a 2x2 left curve.
	LeftCurveSmall

	// RightCurveSmall is a 2x2 right curve.
	RightCurveSmall

	// LeftCurve is a 3x3 left curve.
	LeftCurve

	// RightCurve is a 3x3 right curve.
	RightCurve

	// LeftCurveLarge is a left curve ending on a diagonal.
	LeftCurveLarge

	// RightCurveLarge is a right curve ending on a diagonal.
	RightCurveLarge

	// SBendLeft shifts one lane to the left.
	SBendLeft

	// SBendRight shifts one lane to the right.
	SBendRight

	// SBendToDualTrack splits into a parallel pair.
	SBendToDualTrack

	// SBendToSingleTrack merges a parallel pair.
	SBendToSingleTrack

	// Turnaround reverses direction on the spot.
	Turnaround

	// PieceNone marks an empty selection; it never resolves.
	PieceNone Piece = 0xFF
)

// Pieces lists every selectable piece in button order.
var Pieces = []Piece{
	Straight,
	LeftCurveVerySmall, RightCurveVerySmall,
	LeftCurveSmall, RightCurveSmall,
	LeftCurve, RightCurve,
	LeftCurveLarge, RightCurveLarge,
	SBendLeft, SBendRight,
	SBendToDualTrack, SBendToSingleTrack,
	Turnaround,
}

var pieceNames = map[Piece]string{
	Straight:            "straight",
	LeftCurveVerySmall:  "left_curve_very_small",
	RightCurveVerySmall: "right_curve_very_small",
	LeftCurveSmall:      "left_curve_small",
	RightCurveSmall:     "right_curve_small",
	LeftCurve:           "left_curve",
	RightCurve:          "right_curve",
	LeftCurveLarge:      "left_curve_large",
	RightCurveLarge:     "right_curve_large",
	SBendLeft:           "s_bend_left",
	SBendRight:          "s_bend_right",
	SBendToDualTrack:    "s_bend_to_dual_track",
	SBendToSingleTrack:  "s_bend_to_single_track",
	Turnaround:          "turnaround",
}

// String returns the canonical piece name.
func (p Piece) String() string {
	if name, ok := pieceNames[p]; ok {
		return name
	}
	if p == PieceNone {
		return "none"
	}

	return "unknown"
}

// IsCurve reports whether the piece is one of the left/right curves.
func (p Piece) IsCurve() bool {
	return p >= LeftCurveVerySmall && p <= RightCurveLarge
}

// IsSBend reports whether the piece is any s-bend.
func (p Piece) IsSBend() bool {
	return p >= SBendLeft && p <= SBendToSingleTrack
}

// ResetsAfterBuild reports whether a successful build returns the selection to Straight.
func (p Piece) ResetsAfterBuild() bool {
	return p != PieceNone && p >= SBendLeft
}

// ParsePiece parses a piece name.
// Besides canonical names it accepts the short forms used in scenario scripts,
// e.g. "lhc_small", "rhc_vs", "sbend_dual", "s", "u".
func ParsePiece(name string) (Piece, bool) {
	base := strings.ToLower(strings.TrimSpace(name))
	base = strings.ReplaceAll(base, "-", "_")
	if base == "" {
		return PieceNone, false
	}

	for p, n := range pieceNames {
		if n == base {
			return p, true
		}
	}

	switch base {
	case "s", "str":
		return Straight, true
	case "u", "turn":
		return Turnaround, true
	case "none":
		return PieceNone, true
	}

	if strings.HasPrefix(base, "sbend_") || strings.HasPrefix(base, "s_bend_") {
		rest := base[strings.Index(base, "bend_")+len("bend_"):]
		switch rest {
		case "left", "l":
			return SBendLeft, true
		case "right", "r":
			return SBendRight, true
		case "dual", "to_dual":
			return SBendToDualTrack, true
		case "single", "to_single":
			return SBendToSingleTrack, true
		}
		return PieceNone, false
	}

	idx := strings.Index(base, "_")
	if idx <= 0 {
		return PieceNone, false
	}

	var left bool
	switch base[:idx] {
	case "lhc", "left":
		left = true
	case "rhc", "right":
		left = false
	default:
		return PieceNone, false
	}

	size := base[idx+1:]
	size = strings.TrimPrefix(size, "curve_")
	size = strings.TrimPrefix(size, "curve")

	var p Piece
	switch size {
	case "very_small", "vs":
		p = RightCurveVerySmall
	case "small", "sm":
		p = RightCurveSmall
	case "", "normal":
		p = RightCurve
	case "large", "lg":
		p = RightCurveLarge
	default:
		return PieceNone, false
	}
	if left {
		p--
	}

	return p, true
}
