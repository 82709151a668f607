package construction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/loco-construct/internal/coord"
	"github.com/woozymasta/loco-construct/internal/geometry"
	"github.com/woozymasta/loco-construct/internal/track"
	"github.com/woozymasta/loco-construct/internal/world"
)

type memDefaults map[track.Type]Choices

func (d memDefaults) LastUsed(t track.Type) (Choices, bool) {
	c, ok := d[t]
	return c, ok
}

func (d memDefaults) Remember(t track.Type, c Choices) {
	d[t] = c
}

func TestOpen(t *testing.T) {
	env := newTestEnv(t, 32)
	s := env.open(t, standardGauge)

	assert.Equal(t, Previewing, s.State())
	assert.True(t, s.Selection().Hover)
	assert.Equal(t, track.Straight, s.Selection().Piece)
	assert.Equal(t, track.Level, s.Selection().Gradient)
	assert.Equal(t, NoCost, s.Cost())

	// sorted by name, first entry selected
	assert.Equal(t, []uint8{1, 0}, s.Lists().Bridges)
	assert.Equal(t, []uint8{1, 0}, s.Lists().Signals)
	assert.Equal(t, []uint8{0}, s.Lists().Stations)
	assert.Equal(t, uint8(1), s.Selection().Bridge)
	assert.Equal(t, uint8(1), s.Selection().Signal)
	assert.Equal(t, uint8(0), s.Selection().Station)
	assert.Zero(t, s.Selection().Mods)

	id, ok := env.cfg.Guard.Active()
	require.True(t, ok)
	assert.Equal(t, s.ID(), id)
}

func TestOpenUnknownType(t *testing.T) {
	env := newTestEnv(t, 32)

	_, err := Open(env.cfg, track.RailType(42))
	assert.ErrorIs(t, err, ErrUnknownType)

	_, err = Open(Config{}, standardGauge)
	assert.Error(t, err)
}

func TestDefaultsRoundTrip(t *testing.T) {
	env := newTestEnv(t, 32)
	defaults := memDefaults{
		standardGauge: {Bridge: 0, Signal: 0, Station: 1, Mods: 0xFF},
	}
	env.cfg.Defaults = defaults

	s, err := Open(env.cfg, standardGauge)
	require.NoError(t, err)

	sel := s.Selection()
	assert.Equal(t, uint8(0), sel.Bridge)
	assert.Equal(t, uint8(0), sel.Signal)
	assert.Equal(t, uint8(0), sel.Station, "unavailable station falls back to the first entry")
	assert.Equal(t, uint8(1), sel.Mods, "mods are limited to the list")

	require.NoError(t, s.SelectBridge(1))
	s.Close()
	assert.True(t, s.Closed())
	assert.Equal(t, Choices{Bridge: 1, Signal: 0, Station: 0, Mods: 1}, defaults[standardGauge])

	_, active := env.cfg.Guard.Active()
	assert.False(t, active)

	assert.ErrorIs(t, s.Rotate(), ErrClosed)
	_, err = s.ToolDown(tileAt(0, 0, 32), 0)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestGuardCancelsOtherSession(t *testing.T) {
	env := newTestEnv(t, 32)
	first := env.open(t, standardGauge)
	second := env.open(t, road)

	assert.Equal(t, Idle, first.State())
	assert.Equal(t, Previewing, second.State())

	id, _ := env.cfg.Guard.Active()
	assert.Equal(t, second.ID(), id)

	// rotate while idle arms the tool again
	require.NoError(t, first.Rotate())
	assert.Equal(t, Previewing, first.State())
	assert.Equal(t, Idle, second.State())
	assert.Equal(t, track.Rotation(0), first.Selection().Rotation)

	env.cfg.Guard.Cancel()
	assert.Equal(t, Idle, first.State())
	_, active := env.cfg.Guard.Active()
	assert.False(t, active)
}

func TestRotateWhilePreviewing(t *testing.T) {
	env := newTestEnv(t, 32)
	s := env.open(t, standardGauge)

	for want := range 8 {
		assert.Equal(t, track.Rotation(want%4), s.Selection().Rotation)
		require.NoError(t, s.Rotate())
	}
}

func TestHighlightFollowsAnchor(t *testing.T) {
	env := newTestEnv(t, 32)
	inv := &recordInvalidator{}
	env.cfg.Invalidator = inv
	s := env.open(t, standardGauge)

	assert.Equal(t, []coord.Pos2{{X: 0, Y: 0}}, s.Highlight().Tiles())

	require.NoError(t, s.ToolUpdate(tileAt(160, 160, 32), 0))

	piece := geometry.Rail().MustPiece(0)
	var want []coord.Pos2
	for _, tile := range piece.Tiles {
		if !tile.Diagonal {
			want = append(want, coord.Pos2{X: 160 + tile.X, Y: 160 + tile.Y})
		}
	}
	assert.Equal(t, want, s.Highlight().Tiles())
	assert.Equal(t, Sentinel, s.Highlight().Terminated()[s.Highlight().Len()])

	assert.Contains(t, inv.calls, []coord.Pos2{{X: 0, Y: 0}})
	assert.Contains(t, inv.calls, want)
}

func TestHighlightFallsBackToStraight(t *testing.T) {
	env := newTestEnv(t, 32)
	s := env.open(t, standardGauge)

	s.sel.Piece = track.LeftCurve
	s.sel.Gradient = track.SlopeUp
	s.recomputeHighlight()

	_, ok := s.Resolved()
	assert.False(t, ok)
	assert.Equal(t, 1, s.Highlight().Len())
}

func TestVerySmallCurveBand(t *testing.T) {
	env := newTestEnv(t, 32)
	s := env.open(t, narrowGauge)

	s.sel.Rotation = 5
	require.NoError(t, s.SelectPiece(track.LeftCurveVerySmall))

	res, ok := s.Resolved()
	require.True(t, ok)
	assert.Equal(t, track.ID(28), res.ID)
	assert.Equal(t, track.Rotation(1), res.Rotation)
}

func TestOpenAtElement(t *testing.T) {
	env := newTestEnv(t, 32)
	_, err := env.b.PlacePiece(world.PlaceArgs{Pos: coord.Pos3{X: 160, Y: 160, Z: 32}, Type: standardGauge})
	require.NoError(t, err)

	pt := world.GameToScreen(coord.Pos3{X: 162, Y: 176, Z: 32}, 0)
	e, ok := env.m.ElementAt(env.cfg.Viewport, pt, false)
	require.True(t, ok)

	s, err := OpenAt(env.cfg, e, pt)
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, Idle, s.State())
	assert.Equal(t, coord.Pos3{X: 128, Y: 160, Z: 32}, s.Anchor())
	assert.Equal(t, track.Rotation(0), s.Selection().Rotation)

	out, err := s.Build()
	require.NoError(t, err)
	assert.Equal(t, coord.Pos3{X: 128, Y: 160, Z: 32}, out.Pos)
	assert.Equal(t, 2, env.m.Count(false))

	// the other end
	pt = world.GameToScreen(coord.Pos3{X: 190, Y: 176, Z: 32}, 0)
	e, ok = env.m.ElementAt(env.cfg.Viewport, pt, false)
	require.True(t, ok)
	require.Equal(t, coord.Pos2{X: 160, Y: 160}, e.Pos)

	back, err := OpenAt(env.cfg, e, pt)
	require.NoError(t, err)
	defer back.Close()
	assert.Equal(t, coord.Pos3{X: 192, Y: 160, Z: 32}, back.Anchor())
	assert.Equal(t, track.Rotation(2), back.Selection().Rotation)
}
