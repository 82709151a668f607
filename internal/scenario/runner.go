package scenario

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/woozymasta/loco-construct/internal/catalog"
	"github.com/woozymasta/loco-construct/internal/construction"
	"github.com/woozymasta/loco-construct/internal/coord"
	"github.com/woozymasta/loco-construct/internal/track"
	"github.com/woozymasta/loco-construct/internal/world"
)

// ErrNoSession is reported for steps that need an open session.
var ErrNoSession = errors.New("no open session")

// Options configure a Runner.
type Options struct {
	Catalog  *catalog.Catalog // overrides the scenario catalog
	Defaults *Defaults
	Metrics  *construction.Metrics
	Logger   *slog.Logger
}

// Result is the observable effect of one step.
type Result struct {
	Step      int                   `json:"step"`
	Action    string                `json:"action"`
	State     string                `json:"state,omitempty"`
	Outcome   *construction.Outcome `json:"outcome,omitempty"`
	Cost      *int                  `json:"cost,omitempty"`
	Highlight []coord.Pos2          `json:"highlight,omitempty"`
	Cue       bool                  `json:"cue,omitempty"`
	Error     string                `json:"error,omitempty"`
}

// Runner replays scenario steps against an in-memory map.
type Runner struct {
	Map      *world.Map
	Builder  *world.Builder
	Catalog  *catalog.Catalog
	Defaults *Defaults

	sc       *Scenario
	viewport world.Viewport
	guard    *construction.Guard
	session  *construction.Session
	metrics  *construction.Metrics
	logger   *slog.Logger
	cues     int
}

// NewRunner prepares the map, catalog and defaults of a scenario.
func NewRunner(sc *Scenario, opts Options) (*Runner, error) {
	cat := opts.Catalog
	if cat == nil {
		if path := sc.CatalogPath(); path != "" {
			var err error
			if cat, err = catalog.Load(path); err != nil {
				return nil, err
			}
		} else {
			cat = catalog.Default()
		}
	}

	defaults := opts.Defaults
	if defaults == nil {
		defaults = NewDefaults()
	}
	for name, c := range sc.Defaults {
		o, ok := cat.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("defaults: unknown type %q", name)
		}
		defaults.Remember(o.Type(), c)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	m := sc.BuildMap()
	b := world.NewBuilder(m, cat)
	if sc.Funds != nil {
		b.Unlimited = false
		b.Funds = *sc.Funds
	}

	return &Runner{
		Map:      m,
		Builder:  b,
		Catalog:  cat,
		Defaults: defaults,
		sc:       sc,
		viewport: sc.Viewport.Viewport(),
		guard:    construction.NewGuard(),
		metrics:  opts.Metrics,
		logger:   logger.With("scenario", sc.Name),
	}, nil
}

// Failure implements construction.Cue.
func (r *Runner) Failure() {
	r.cues++
}

// Session returns the open session, if any.
func (r *Runner) Session() *construction.Session {
	return r.session
}

// Run replays every step and closes the last session. Step failures are reported in the
// results; only a broken scenario stops the run.
func (r *Runner) Run() ([]Result, error) {
	var results []Result
	for i, st := range r.sc.Steps {
		for range max(st.Repeat, 1) {
			results = append(results, r.Step(i+1, st))
		}
	}

	if r.session != nil {
		r.session.Close()
		r.session = nil
	}

	return results, nil
}

// Step runs one step.
func (r *Runner) Step(n int, st Step) Result {
	res := Result{Step: n, Action: st.Action}
	cues := r.cues

	out, err := r.apply(st)
	if out != nil {
		res.Outcome = out
	}
	if err != nil {
		res.Error = err.Error()
		r.logger.Debug("step failed", "step", n, "action", st.Action, "err", err)
	}
	res.Cue = r.cues > cues

	if s := r.session; s != nil {
		res.State = s.State().String()
		if cost := s.Cost(); cost != construction.NoCost {
			res.Cost = &cost
		}
		res.Highlight = s.Highlight().Tiles()
	}

	return res
}

func (r *Runner) apply(st Step) (*construction.Outcome, error) {
	switch st.Action {
	case ActionOpen:
		return nil, r.open(st)
	case ActionOpenAt:
		return nil, r.openAt(st)
	}

	s := r.session
	if s == nil {
		return nil, ErrNoSession
	}

	switch st.Action {
	case ActionSelect:
		return nil, r.selectStep(s, st)
	case ActionRotate:
		return nil, s.Rotate()
	case ActionArm:
		return nil, s.Arm()
	case ActionHover:
		return nil, s.ToolUpdate(r.point(st), modifiers(st))
	case ActionClick:
		return outcome(s.ToolDown(r.point(st), modifiers(st)))
	case ActionBuild:
		return outcome(s.Build())
	case ActionRemove:
		return outcome(s.Remove())
	case ActionSignal:
		return outcome(s.PlaceSignal(r.point(st), st.Both))
	case ActionStation:
		return outcome(s.PlaceStation(r.point(st)))
	case ActionCancel:
		s.ToolCancel()
		return nil, nil
	case ActionClose:
		s.Close()
		r.session = nil
		return nil, nil
	}

	return nil, fmt.Errorf("unknown action %q", st.Action)
}

func outcome(out construction.Outcome, err error) (*construction.Outcome, error) {
	if err != nil && !out.Placed && out.Attempts == 0 {
		return nil, err
	}

	return &out, err
}

func (r *Runner) config() construction.Config {
	cfg := construction.WorldConfig(r.Map, r.Builder, r.Catalog)
	cfg.Viewport = r.viewport
	cfg.Guard = r.guard
	cfg.Defaults = r.Defaults
	cfg.Year = r.sc.Year
	cfg.Cue = r
	cfg.Metrics = r.metrics
	cfg.Logger = r.logger

	return cfg
}

func (r *Runner) open(st Step) error {
	o, ok := r.Catalog.Lookup(st.Type)
	if !ok {
		return fmt.Errorf("%w: %s", construction.ErrUnknownType, st.Type)
	}

	r.closeSession()
	s, err := construction.Open(r.config(), o.Type())
	if err != nil {
		return err
	}
	r.session = s

	return nil
}

func (r *Runner) openAt(st Step) error {
	pt := r.point(st)

	road := false
	if st.Type != "" {
		o, ok := r.Catalog.Lookup(st.Type)
		if !ok {
			return fmt.Errorf("%w: %s", construction.ErrUnknownType, st.Type)
		}
		road = o.Type().IsRoad()
	}

	e, ok := r.Map.ElementAt(r.viewport, pt, road)
	if !ok && st.Type == "" {
		e, ok = r.Map.ElementAt(r.viewport, pt, true)
	}
	if !ok {
		return world.ErrNoTrackHere
	}

	r.closeSession()
	s, err := construction.OpenAt(r.config(), e, pt)
	if err != nil {
		return err
	}
	r.session = s

	return nil
}

func (r *Runner) closeSession() {
	if r.session != nil {
		r.session.Close()
		r.session = nil
	}
}

func (r *Runner) selectStep(s *construction.Session, st Step) error {
	if st.Piece != "" {
		p, ok := track.ParsePiece(st.Piece)
		if !ok || p == track.PieceNone {
			return fmt.Errorf("unknown piece %q", st.Piece)
		}
		if err := s.SelectPiece(p); err != nil {
			return fmt.Errorf("piece %s: %w", p, err)
		}
	}
	if st.Gradient != "" {
		g, ok := track.ParseGradient(st.Gradient)
		if !ok {
			return fmt.Errorf("unknown gradient %q", st.Gradient)
		}
		if err := s.SelectGradient(g); err != nil {
			return fmt.Errorf("gradient %s: %w", g, err)
		}
	}
	if st.Bridge != nil {
		if err := s.SelectBridge(*st.Bridge); err != nil {
			return fmt.Errorf("bridge %d: %w", *st.Bridge, err)
		}
	}
	if st.Signal != nil {
		if err := s.SelectSignal(*st.Signal); err != nil {
			return fmt.Errorf("signal %d: %w", *st.Signal, err)
		}
	}
	if st.Station != nil {
		if err := s.SelectStation(*st.Station); err != nil {
			return fmt.Errorf("station %d: %w", *st.Station, err)
		}
	}
	if st.Mods != nil {
		if err := s.SetMods(*st.Mods); err != nil {
			return fmt.Errorf("mods %#x: %w", *st.Mods, err)
		}
	}

	return nil
}

// point returns the screen point of a step: the raw point, or the centre of the tile
// at its height (the ground height when z is zero).
func (r *Runner) point(st Step) coord.Point {
	if st.Point != nil {
		return *st.Point
	}
	if st.Tile == nil {
		return coord.Point{}
	}

	p := st.Tile.XY().TileAligned()
	z := st.Tile.Z
	if z == 0 {
		if h, ok := r.Map.ConstructionHeight(p); ok {
			z = h.Ground()
		}
	}

	return r.viewport.Project(coord.Pos3{X: p.X + coord.TileSize/2, Y: p.Y + coord.TileSize/2, Z: z})
}

func modifiers(st Step) construction.Modifiers {
	if st.Shift {
		return construction.ModShift
	}

	return 0
}
