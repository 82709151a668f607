package construction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/loco-construct/internal/coord"
	"github.com/woozymasta/loco-construct/internal/track"
	"github.com/woozymasta/loco-construct/internal/world"
)

func ghostCount(m *world.Map) int {
	return m.Count(true) - m.Count(false)
}

func TestGhostPreview(t *testing.T) {
	env := newTestEnv(t, 32)
	s := env.open(t, standardGauge)

	require.NoError(t, s.ToolUpdate(tileAt(160, 160, 32), 0))
	assert.Equal(t, 1, ghostCount(env.m))
	assert.Equal(t, 40, s.Cost())

	g, ok := s.Ghost()
	require.True(t, ok)
	assert.Equal(t, coord.Pos3{X: 160, Y: 160, Z: 32}, g.Pos)

	// moving the pointer replaces the ghost
	require.NoError(t, s.ToolUpdate(tileAt(224, 160, 32), 0))
	assert.Equal(t, 1, ghostCount(env.m))
	g, _ = s.Ghost()
	assert.Equal(t, coord.Pos3{X: 224, Y: 160, Z: 32}, g.Pos)

	// a click builds the real piece in place of the ghost
	out, err := s.ToolDown(tileAt(224, 160, 32), 0)
	require.NoError(t, err)
	assert.True(t, out.Placed)
	assert.Zero(t, ghostCount(env.m))
	assert.Equal(t, 1, env.m.Count(false))
}

func TestGhostSkipsSamePosition(t *testing.T) {
	s, stub, _ := openStubbed(t, 32, standardGauge)

	require.NoError(t, s.ToolUpdate(tileAt(160, 160, 32), 0))
	require.NoError(t, s.ToolUpdate(tileAt(160, 160, 32), 0))
	assert.Len(t, stub.calls, 1)
	assert.True(t, stub.calls[0].Ghost)

	require.NoError(t, s.SelectPiece(track.RightCurve))
	_, ok := s.Ghost()
	assert.False(t, ok, "selection change removes the ghost")
	assert.Equal(t, NoCost, s.Cost())

	require.NoError(t, s.ToolUpdate(tileAt(160, 160, 32), 0))
	assert.Len(t, stub.calls, 2)
}

func TestGhostRetries(t *testing.T) {
	s, stub, _ := openStubbed(t, 32, standardGauge, inTheWay())

	err := s.ToolUpdate(tileAt(160, 160, 32), 0)
	require.Error(t, err)
	assert.Equal(t, []int{16, 32}, stub.heights())
	assert.Equal(t, NoCost, s.Cost())
	assert.Equal(t, Previewing, s.State())

	// ghosts retry below ground as well
	s, stub, _ = openStubbed(t, 32, standardGauge, belowGround())
	require.Error(t, s.ToolUpdate(tileAt(160, 160, 32), 0))
	assert.Len(t, stub.calls, 2)
}

func TestGhostSwapsUnsuitableBridge(t *testing.T) {
	env := newTestEnv(t, 32)
	env.cfg.Year = 1965
	unsuitable := &world.CommandError{Reason: world.ErrBridgeUnsuitable}
	stub := &stubCommands{errs: []error{unsuitable, nil}}
	env.cfg.Commands = stub
	s := env.open(t, standardGauge)

	require.Equal(t, []uint8{2, 1, 0}, s.Lists().Bridges)
	require.NoError(t, s.SelectBridge(1))
	require.NoError(t, s.SelectGradient(track.SteepSlopeUp))

	require.NoError(t, s.ToolUpdate(tileAt(160, 160, 32), 0))
	require.Len(t, stub.calls, 2)
	assert.Equal(t, uint8(1), stub.calls[0].Bridge)
	assert.Equal(t, uint8(2), stub.calls[1].Bridge)
	assert.Equal(t, uint8(2), s.Selection().Bridge)

	require.NoError(t, s.ToolUpdate(tileAt(160, 160, 32), 0))
	assert.Len(t, stub.calls, 2, "same position after a swap")
}

func TestToolUpdateNeedsPreviewing(t *testing.T) {
	env := newTestEnv(t, 32)
	s := env.open(t, standardGauge)
	s.ToolCancel()

	assert.ErrorIs(t, s.ToolUpdate(tileAt(160, 160, 32), 0), ErrNotPreviewing)
}
