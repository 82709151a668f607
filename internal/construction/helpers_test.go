package construction

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/woozymasta/loco-construct/internal/catalog"
	"github.com/woozymasta/loco-construct/internal/coord"
	"github.com/woozymasta/loco-construct/internal/track"
	"github.com/woozymasta/loco-construct/internal/world"
)

var (
	standardGauge = track.RailType(0)
	narrowGauge   = track.RailType(1)
	road          = track.RoadType(0)
	dirtTrack     = track.RoadType(2)
)

type testEnv struct {
	m   *world.Map
	b   *world.Builder
	cat *catalog.Catalog
	cfg Config
	cue *countCue
}

func newTestEnv(t *testing.T, land int) *testEnv {
	t.Helper()

	m := world.NewMap(32, 32, land)
	cat := catalog.Default()
	b := world.NewBuilder(m, cat)

	env := &testEnv{m: m, b: b, cat: cat, cue: &countCue{}}
	env.cfg = WorldConfig(m, b, cat)
	env.cfg.Guard = NewGuard()
	env.cfg.Year = 1950
	env.cfg.Cue = env.cue

	return env
}

func (e *testEnv) open(t *testing.T, tt track.Type) *Session {
	t.Helper()

	s, err := Open(e.cfg, tt)
	require.NoError(t, err)
	t.Cleanup(s.Close)

	return s
}

// tileAt returns the screen point over the centre of the tile at x,y on height z.
func tileAt(x, y, z int) coord.Point {
	return world.GameToScreen(coord.Pos3{X: x + 16, Y: y + 16, Z: z}, 0)
}

type countCue struct{ n int }

func (c *countCue) Failure() { c.n++ }

// stubCommands fails every placement with err and records what it was asked to build.
type stubCommands struct {
	errs    []error // per call, the last one repeats
	session *Session
	calls   []world.PlaceArgs
	states  []State
}

func (s *stubCommands) PlacePiece(args world.PlaceArgs) (int, error) {
	s.calls = append(s.calls, args)
	if s.session != nil {
		s.states = append(s.states, s.session.State())
	}
	if len(s.errs) == 0 {
		return 1, nil
	}

	err := s.errs[min(len(s.calls), len(s.errs))-1]
	if err != nil {
		return 0, err
	}

	return 1, nil
}

func (s *stubCommands) RemovePiece(world.RemoveArgs) (int, error)   { return 0, nil }
func (s *stubCommands) PlaceSignal(world.SignalArgs) (int, error)   { return 0, nil }
func (s *stubCommands) PlaceStation(world.StationArgs) (int, error) { return 0, nil }

func (s *stubCommands) heights() []int {
	out := make([]int, len(s.calls))
	for i, c := range s.calls {
		out[i] = c.Pos.Z
	}

	return out
}

type recordInvalidator struct{ calls [][]coord.Pos2 }

func (r *recordInvalidator) InvalidateTiles(tiles []coord.Pos2) {
	r.calls = append(r.calls, tiles)
}
