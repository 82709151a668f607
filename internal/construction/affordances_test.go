package construction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/loco-construct/internal/track"
)

func TestAffordancesByTraits(t *testing.T) {
	env := newTestEnv(t, 32)
	s := env.open(t, standardGauge)

	a := s.Affordances()
	assert.True(t, a.Pieces[track.Straight])
	assert.True(t, a.Pieces[track.LeftCurve])
	assert.True(t, a.Pieces[track.Turnaround])
	assert.False(t, a.Pieces[track.LeftCurveVerySmall])
	assert.True(t, a.Gradients[track.SteepSlopeUp])
	assert.False(t, a.Construct, "construct needs an idle tool")
	assert.False(t, a.Remove)
	assert.True(t, a.Rotate)

	assert.ErrorIs(t, s.SelectPiece(track.LeftCurveVerySmall), ErrControlDisabled)
}

func TestAffordancesOnSlopes(t *testing.T) {
	env := newTestEnv(t, 32)

	s := env.open(t, standardGauge)
	require.NoError(t, s.SelectGradient(track.SlopeUp))

	a := s.Affordances()
	assert.True(t, a.Pieces[track.Straight])
	assert.False(t, a.Pieces[track.LeftCurve])
	assert.False(t, a.Pieces[track.LeftCurveSmall])
	assert.False(t, a.Pieces[track.SBendLeft])
	assert.ErrorIs(t, s.SelectPiece(track.LeftCurve), ErrControlDisabled)

	narrow := env.open(t, narrowGauge)
	require.NoError(t, narrow.SelectGradient(track.SlopeUp))

	a = narrow.Affordances()
	assert.True(t, a.Pieces[track.LeftCurveSmall], "sloped curves")
	assert.False(t, a.Pieces[track.LeftCurve])
	require.NoError(t, narrow.SelectPiece(track.RightCurveSmall))

	res, ok := narrow.Resolved()
	require.True(t, ok)
	assert.Equal(t, track.ID(19), res.ID)
}

func TestAffordancesByRotation(t *testing.T) {
	env := newTestEnv(t, 32)
	s := env.open(t, narrowGauge)

	s.sel.Rotation = 5
	a := s.Affordances()
	assert.True(t, a.Pieces[track.LeftCurveVerySmall])
	assert.False(t, a.Pieces[track.LeftCurveSmall])
	assert.False(t, a.Pieces[track.LeftCurve])
	assert.False(t, a.Pieces[track.SBendLeft])
	assert.True(t, a.Pieces[track.SBendRight])
	assert.False(t, a.Gradients[track.SlopeUp])
	assert.True(t, a.Gradients[track.SteepSlopeUp])

	s.sel.Rotation = 9
	a = s.Affordances()
	assert.True(t, a.Pieces[track.SBendLeft])
	assert.False(t, a.Pieces[track.SBendRight])

	s.sel.Rotation = 13
	a = s.Affordances()
	assert.True(t, a.Pieces[track.Straight])
	assert.False(t, a.Pieces[track.LeftCurveVerySmall])
	assert.False(t, a.Pieces[track.RightCurve])
	assert.False(t, a.Pieces[track.SBendLeft])
	assert.True(t, a.Gradients[track.Level])
	assert.False(t, a.Gradients[track.SteepSlopeDown])

	std := env.open(t, standardGauge)
	std.sel.Rotation = 13
	a = std.Affordances()
	assert.True(t, a.Pieces[track.LeftCurveLarge])
	assert.False(t, a.Pieces[track.Turnaround])
	assert.ErrorIs(t, std.SelectPiece(track.Turnaround), ErrControlDisabled)
}

func TestGradientsFollowPiece(t *testing.T) {
	env := newTestEnv(t, 32)

	s := env.open(t, standardGauge)
	require.NoError(t, s.SelectPiece(track.LeftCurve))
	assert.ErrorIs(t, s.SelectGradient(track.SlopeUp), ErrControlDisabled)

	a := s.Affordances()
	assert.True(t, a.Gradients[track.Level])
	assert.False(t, a.Gradients[track.SlopeUp])
	assert.False(t, a.Gradients[track.SteepSlopeDown])
	_, ok := s.Resolved()
	assert.True(t, ok)

	require.NoError(t, s.SelectPiece(track.Turnaround))
	assert.ErrorIs(t, s.SelectGradient(track.SteepSlopeUp), ErrControlDisabled)

	narrow := env.open(t, narrowGauge)
	require.NoError(t, narrow.SelectPiece(track.LeftCurveSmall))
	require.NoError(t, narrow.SelectGradient(track.SlopeUp))
	res, ok := narrow.Resolved()
	require.True(t, ok)
	assert.Equal(t, track.ID(18), res.ID)
	assert.True(t, narrow.Affordances().Gradients[track.SteepSlopeDown], "sloped curves")

	rd := env.open(t, road)
	require.NoError(t, rd.SelectPiece(track.RightCurveSmall))
	assert.ErrorIs(t, rd.SelectGradient(track.SlopeDown), ErrControlDisabled)
	require.NoError(t, rd.SelectPiece(track.Turnaround))
	assert.ErrorIs(t, rd.SelectGradient(track.SlopeUp), ErrControlDisabled)
}

func TestAffordancesConstructAndRemove(t *testing.T) {
	env := newTestEnv(t, 32)
	s := env.open(t, standardGauge)

	_, err := s.ToolDown(tileAt(160, 160, 32), 0)
	require.NoError(t, err)

	a := s.Affordances()
	assert.True(t, a.Construct)
	assert.True(t, a.Remove)
	assert.True(t, a.Rotate)

	s.Close()
	a = s.Affordances()
	assert.False(t, a.Construct)
	assert.False(t, a.Pieces[track.Straight])
}
