package track

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRailOffers(t *testing.T) {
	t.Parallel()

	bare := Rail{}
	for _, p := range []Piece{Straight, SBendLeft, SBendRight} {
		assert.True(t, bare.Offers(p), "bare rail offers %v", p)
	}
	for _, p := range []Piece{LeftCurveVerySmall, LeftCurveSmall, LeftCurve, LeftCurveLarge, SBendToDualTrack, Turnaround} {
		assert.False(t, bare.Offers(p), "bare rail offers %v", p)
	}

	full := Rail{Caps: VerySmallCurve | SmallCurve | NormalCurve | LargeCurve | OneSided}
	for _, p := range Pieces {
		assert.True(t, full.Offers(p), "full rail offers %v", p)
	}
	assert.False(t, full.Offers(PieceNone))
}

func TestRailOffersGradient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		caps  Traits
		grad  Gradient
		offer bool
	}{
		{name: "level_bare", grad: Level, offer: true},
		{name: "up_bare", grad: SlopeUp},
		{name: "up_slope", caps: Slope, grad: SlopeUp, offer: true},
		{name: "steep_slope_only", caps: Slope, grad: SteepSlopeUp},
		{name: "steep_steep", caps: SteepSlope, grad: SteepSlopeDown, offer: true},
		{name: "down_sloped_curve", caps: SlopedCurve, grad: SlopeDown, offer: true},
		{name: "steep_sloped_curve", caps: SlopedCurve, grad: SteepSlopeUp, offer: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.offer, Rail{Caps: tt.caps}.OffersGradient(tt.grad))
		})
	}
}

func TestRoadOffers(t *testing.T) {
	t.Parallel()

	m := Road{Caps: VerySmallCurve | TurnaroundPiece | Slope}
	want := map[Piece]bool{
		Straight:            true,
		LeftCurveVerySmall:  true,
		RightCurveVerySmall: true,
		Turnaround:          true,
	}
	for _, p := range Pieces {
		assert.Equal(t, want[p], m.Offers(p), "%v", p)
	}

	assert.True(t, m.OffersGradient(SlopeUp))
	assert.False(t, m.OffersGradient(SteepSlopeUp))
}

func TestModeFor(t *testing.T) {
	t.Parallel()

	assert.True(t, ModeFor(RoadType(3), 0).IsRoad())

	m := ModeFor(RailType(3), SlopedCurve)
	assert.False(t, m.IsRoad())
	assert.True(t, m.Traits().Has(SlopedCurve))

	_, ok := m.Resolve(LeftCurveSmall, SlopeUp, 0)
	assert.True(t, ok, "sloped curve caps applied")
}
