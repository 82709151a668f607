package track

import (
	"fmt"
	"sort"
	"strings"
)

// Traits is a capability bit set of a track or road object, and also the trait set
// of a resolved piece (which bridges check against their disabled mask).
type Traits uint16

const (
	// VerySmallCurve enables one-tile curves.
	VerySmallCurve Traits = 1 << iota

	// SmallCurve enables 2x2 curves.
	SmallCurve

	// NormalCurve enables 3x3 curves.
	NormalCurve

	// LargeCurve enables diagonal-ending curves.
	LargeCurve

	// SBend enables s-bends (all rail types carry it implicitly).
	SBend

	// OneSided enables dual-track s-bends and the rail turnaround.
	OneSided

	// TurnaroundPiece enables the road turnaround.
	TurnaroundPiece

	// Slope enables normal slopes.
	Slope

	// SteepSlope enables steep slopes.
	SteepSlope

	// SlopedCurve lets rail small curves climb.
	SlopedCurve

	// Junction allows crossing the same object.
	Junction

	// Tunnel allows building fully below the surface.
	Tunnel

	// Diagonal marks a piece on a diagonal rotation; only used as a piece trait.
	Diagonal
)

var traitNames = map[Traits]string{
	VerySmallCurve:  "very_small_curve",
	SmallCurve:      "small_curve",
	NormalCurve:     "normal_curve",
	LargeCurve:      "large_curve",
	SBend:           "s_bend",
	OneSided:        "one_sided",
	TurnaroundPiece: "turnaround",
	Slope:           "slope",
	SteepSlope:      "steep_slope",
	SlopedCurve:     "sloped_curve",
	Junction:        "junction",
	Tunnel:          "tunnel",
	Diagonal:        "diagonal",
}

// Has reports whether every bit of f is set.
func (t Traits) Has(f Traits) bool {
	return t&f == f
}

// Any reports whether any bit of f is set.
func (t Traits) Any(f Traits) bool {
	return t&f != 0
}

// Names returns the sorted names of the set bits.
func (t Traits) Names() []string {
	var out []string
	for bit, name := range traitNames {
		if t&bit != 0 {
			out = append(out, name)
		}
	}
	sort.Strings(out)

	return out
}

// ParseTraits folds a list of trait names into a bit set.
func ParseTraits(names []string) (Traits, error) {
	var out Traits
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" {
			continue
		}

		found := false
		for bit, name := range traitNames {
			if name == n {
				out |= bit
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown trait %q", n)
		}
	}

	return out, nil
}

// PieceTraits returns the traits a resolved selection exercises.
func PieceTraits(p Piece, g Gradient, r Rotation) Traits {
	var t Traits
	switch p {
	case LeftCurveVerySmall, RightCurveVerySmall:
		t |= VerySmallCurve
	case LeftCurveSmall, RightCurveSmall:
		t |= SmallCurve
	case LeftCurve, RightCurve:
		t |= NormalCurve
	case LeftCurveLarge, RightCurveLarge:
		t |= LargeCurve
	case SBendLeft, SBendRight:
		t |= SBend
	case SBendToDualTrack, SBendToSingleTrack:
		t |= SBend | OneSided
	case Turnaround:
		t |= TurnaroundPiece
	}

	switch {
	case g.IsSteep():
		t |= SteepSlope
	case g.IsSloped():
		t |= Slope
	}
	if g.IsSloped() && p.IsCurve() {
		t |= SlopedCurve
	}
	if r.IsDiagonal() {
		t |= Diagonal
	}

	return t
}
