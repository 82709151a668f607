package track

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePiece(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Piece
		ok   bool
	}{
		{in: "straight", want: Straight, ok: true},
		{in: "S", want: Straight, ok: true},
		{in: "lhc_small", want: LeftCurveSmall, ok: true},
		{in: "rhc_vs", want: RightCurveVerySmall, ok: true},
		{in: "left_curve", want: LeftCurve, ok: true},
		{in: "right-curve-large", want: RightCurveLarge, ok: true},
		{in: "rhc", want: RightCurve, ok: true},
		{in: "sbend_left", want: SBendLeft, ok: true},
		{in: "s_bend_right", want: SBendRight, ok: true},
		{in: "sbend_dual", want: SBendToDualTrack, ok: true},
		{in: "sbend_single", want: SBendToSingleTrack, ok: true},
		{in: "u", want: Turnaround, ok: true},
		{in: "none", want: PieceNone, ok: true},
		{in: "", want: PieceNone},
		{in: "lhc_huge", want: PieceNone},
		{in: "sbend_up", want: PieceNone},
		{in: "zigzag", want: PieceNone},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, ok := ParsePiece(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPieceNamesRoundTrip(t *testing.T) {
	t.Parallel()

	for _, p := range Pieces {
		got, ok := ParsePiece(p.String())
		assert.True(t, ok, "%v", p)
		assert.Equal(t, p, got)
	}
	for _, g := range Gradients {
		got, ok := ParseGradient(g.String())
		assert.True(t, ok, "%v", g)
		assert.Equal(t, g, got)
	}
}

func TestParseTraits(t *testing.T) {
	t.Parallel()

	got, err := ParseTraits([]string{"slope", " Junction ", ""})
	require.NoError(t, err)
	assert.Equal(t, Slope|Junction, got)
	assert.Equal(t, []string{"junction", "slope"}, got.Names())

	_, err = ParseTraits([]string{"hover"})
	assert.Error(t, err)
}

func TestPieceTraits(t *testing.T) {
	t.Parallel()

	tr := PieceTraits(LeftCurveSmall, SteepSlopeUp, 0)
	assert.True(t, tr.Has(SmallCurve|SteepSlope|SlopedCurve), "%v", tr.Names())
	assert.False(t, tr.Has(Slope))
	assert.True(t, PieceTraits(Straight, Level, 13).Has(Diagonal))
	assert.True(t, PieceTraits(SBendToDualTrack, Level, 0).Has(SBend|OneSided))
}

func TestRotation(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Rotation(0), Rotation(3).Next())
	assert.Equal(t, Rotation(2), Rotation(13).Next(), "next wraps modulo 4")
	assert.Equal(t, Rotation(1), Rotation(9).Effective())
	assert.Equal(t, Rotation(14), Rotation(14).Effective())
	assert.Equal(t, 1, Rotation(7).Band())
	assert.Equal(t, 3, Rotation(12).Band())

	assert.True(t, RoadType(5).IsRoad())
	assert.Equal(t, uint8(5), RoadType(5).ObjectID())
	assert.Equal(t, "rail:5", RailType(5).String())
}
