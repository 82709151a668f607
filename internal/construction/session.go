// Package construction is the interactive track and road construction tool: a session
// owns the selection and state machine, highlights covered tiles, previews ghosts and
// places pieces with a height-probing retry loop.
package construction

import (
	"errors"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/woozymasta/loco-construct/internal/catalog"
	"github.com/woozymasta/loco-construct/internal/coord"
	"github.com/woozymasta/loco-construct/internal/geometry"
	"github.com/woozymasta/loco-construct/internal/track"
	"github.com/woozymasta/loco-construct/internal/world"
)

// NoCost is reported when there is no cost to show.
const NoCost = -1 << 31

// Config wires a session to its collaborators. Objects, Heights, Locator and Commands are required.
type Config struct {
	Objects     Objects
	Heights     Heights
	Locator     Locator
	Commands    Commands
	Viewport    world.Viewport
	Guard       *Guard // DefaultGuard when nil
	Defaults    Defaults
	Year        int
	Cue         Cue
	Invalidator Invalidator
	Metrics     *Metrics
	Logger      *slog.Logger
}

// WorldConfig wires a session to an in-memory map and its builder.
func WorldConfig(m *world.Map, b *world.Builder, objects Objects) Config {
	return Config{Objects: objects, Heights: m, Locator: m, Commands: b}
}

// Session is one open construction tool.
type Session struct {
	id          uuid.UUID
	objects     Objects
	heights     Heights
	locator     Locator
	commands    Commands
	guard       *Guard
	defaults    Defaults
	cue         Cue
	invalidator Invalidator
	metrics     *Metrics
	logger      *slog.Logger
	log         *slog.Logger
	year        int
	viewport    world.Viewport

	mode      track.Mode
	table     *geometry.Table
	lists     catalog.Lists
	sel       Selection
	state     State
	anchor    coord.Pos3
	highlight TileSet
	cost      int

	ghost    *world.PlaceArgs
	ghostKey uint32
	placed   []placedPiece
	closed   bool
}

// Open starts a session for type t with the tool armed.
func Open(cfg Config, t track.Type) (*Session, error) {
	s, err := newSession(cfg, t)
	if err != nil {
		return nil, err
	}

	s.recomputeHighlight()
	s.arm()

	return s, nil
}

// OpenAt starts an idle session continuing the piece owning e from whichever end is closer to pt.
func OpenAt(cfg Config, e *world.Element, pt coord.Point) (*Session, error) {
	if e == nil {
		return nil, world.ErrNoTrackHere
	}

	s, err := newSession(cfg, e.Type)
	if err != nil {
		return nil, err
	}

	att, ok := ResolveAttachment(s.table, e)
	if !ok {
		return nil, world.ErrUnknownPiece
	}
	c, next := att.Choose(pt, s.viewport)
	s.anchor = c.Pos
	s.sel.Rotation = c.Rotation
	s.recomputeHighlight()

	s.log.Info("session opened at element", "anchor", s.anchor, "rotation", c.Rotation, "next", next)

	return s, nil
}

func newSession(cfg Config, t track.Type) (*Session, error) {
	if cfg.Objects == nil || cfg.Heights == nil || cfg.Locator == nil || cfg.Commands == nil {
		return nil, errors.New("construction: incomplete config")
	}

	mode, ok := cfg.Objects.Mode(t)
	if !ok {
		return nil, ErrUnknownType
	}

	s := &Session{
		id:          uuid.New(),
		objects:     cfg.Objects,
		heights:     cfg.Heights,
		locator:     cfg.Locator,
		commands:    cfg.Commands,
		guard:       cfg.Guard,
		defaults:    cfg.Defaults,
		cue:         cfg.Cue,
		invalidator: cfg.Invalidator,
		metrics:     cfg.Metrics,
		logger:      cfg.Logger,
		year:        cfg.Year,
		viewport:    cfg.Viewport,
		cost:        NoCost,
	}
	if s.guard == nil {
		s.guard = DefaultGuard()
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}

	s.setType(t, mode)
	s.sel.Piece = track.Straight
	s.sel.Gradient = track.Level
	s.applyDefaults()

	s.log.Debug("session created", "bridges", len(s.lists.Bridges), "signals", len(s.lists.Signals))

	return s, nil
}

func (s *Session) setType(t track.Type, mode track.Mode) {
	s.mode = mode
	s.table = geometry.For(mode.IsRoad())
	s.lists = s.objects.ListsFor(t, s.year)
	s.sel.Type = t
	s.log = s.logger.With("session", s.id.String(), "track_type", t.String())
}

// applyDefaults restores the last used choices, falling back to the first list entry.
func (s *Session) applyDefaults() {
	var c Choices
	found := false
	if s.defaults != nil {
		c, found = s.defaults.LastUsed(s.sel.Type)
	}

	s.sel.Bridge = pick(s.lists.Bridges, c.Bridge, found)
	s.sel.Signal = pick(s.lists.Signals, c.Signal, found)
	s.sel.Station = pick(s.lists.Stations, c.Station, found)
	s.sel.Mods = 0
	if found {
		s.sel.Mods = c.Mods & modMask(len(s.lists.Mods))
	}
}

func pick(list []uint8, last uint8, found bool) uint8 {
	if found && slices.Contains(list, last) {
		return last
	}
	if len(list) > 0 {
		return list[0]
	}

	return NoChoice
}

func modMask(n int) uint8 {
	return uint8(1<<min(n, 4)) - 1
}

// switchType moves the session to another type of the same mode.
func (s *Session) switchType(t track.Type) error {
	mode, ok := s.objects.Mode(t)
	if !ok || mode.IsRoad() != s.mode.IsRoad() {
		return ErrUnknownType
	}

	s.setType(t, mode)
	s.sel.Bridge = pick(s.lists.Bridges, s.sel.Bridge, true)
	s.sel.Signal = pick(s.lists.Signals, s.sel.Signal, true)
	s.sel.Station = pick(s.lists.Stations, s.sel.Station, true)
	s.sel.Mods &= modMask(len(s.lists.Mods))

	return nil
}

// Close removes the ghost, releases the tool and stores the choices for the next session.
func (s *Session) Close() {
	if s.closed {
		return
	}

	s.removeGhosts()
	s.invalidate(s.highlight)
	s.guard.Release(s.id)
	if s.defaults != nil {
		s.defaults.Remember(s.sel.Type, Choices{
			Bridge:  s.sel.Bridge,
			Signal:  s.sel.Signal,
			Station: s.sel.Station,
			Mods:    s.sel.Mods,
		})
	}

	s.state = Idle
	s.sel.Hover = false
	s.closed = true
	s.log.Info("session closed", "placed", len(s.placed))
}

// Arm makes the tool follow the pointer, cancelling any other armed session.
func (s *Session) Arm() error {
	switch {
	case s.closed:
		return ErrClosed
	case s.state == Constructing:
		return ErrBusy
	}
	s.arm()

	return nil
}

func (s *Session) arm() {
	s.guard.Acquire(s.id, s.cancelled)
	s.state = Previewing
	s.sel.Hover = true
}

// cancelled runs when another session takes the tool.
func (s *Session) cancelled() {
	s.removeGhosts()
	s.state = Idle
	s.sel.Hover = false
	s.log.Debug("tool taken by another session")
}

func (s *Session) toIdle() {
	s.state = Idle
	s.sel.Hover = false
	s.guard.Release(s.id)
}

// ToolCancel disarms the tool.
func (s *Session) ToolCancel() {
	if s.closed || s.state != Previewing {
		return
	}

	s.removeGhosts()
	s.cost = NoCost
	s.invalidate(s.highlight)
	s.toIdle()
}

// SelectPiece changes the piece.
func (s *Session) SelectPiece(p track.Piece) error {
	if err := s.editable(); err != nil {
		return err
	}
	if !s.pieceEnabled(p) {
		return ErrControlDisabled
	}

	s.sel.Piece = p
	s.selectionChanged()

	return nil
}

// SelectGradient changes the gradient.
func (s *Session) SelectGradient(g track.Gradient) error {
	if err := s.editable(); err != nil {
		return err
	}
	if !s.gradientEnabled(g) {
		return ErrControlDisabled
	}

	s.sel.Gradient = g
	s.selectionChanged()

	return nil
}

// Rotate turns the piece a quarter while previewing and arms the tool while idle.
func (s *Session) Rotate() error {
	if err := s.editable(); err != nil {
		return err
	}

	if s.state == Idle {
		s.arm()
		return nil
	}

	s.sel.Rotation = s.sel.Rotation.Next()
	s.selectionChanged()

	return nil
}

// SelectBridge chooses a bridge from the session list.
func (s *Session) SelectBridge(id uint8) error {
	return s.selectFrom(s.lists.Bridges, id, &s.sel.Bridge)
}

// SelectSignal chooses a signal from the session list.
func (s *Session) SelectSignal(id uint8) error {
	return s.selectFrom(s.lists.Signals, id, &s.sel.Signal)
}

// SelectStation chooses a station from the session list.
func (s *Session) SelectStation(id uint8) error {
	return s.selectFrom(s.lists.Stations, id, &s.sel.Station)
}

// SetMods sets the mod bit mask; bit i selects the i-th mod of the list.
func (s *Session) SetMods(mask uint8) error {
	if err := s.editable(); err != nil {
		return err
	}
	if mask&^modMask(len(s.lists.Mods)) != 0 {
		return ErrNotAvailable
	}

	s.sel.Mods = mask
	s.selectionChanged()

	return nil
}

func (s *Session) selectFrom(list []uint8, id uint8, dst *uint8) error {
	if err := s.editable(); err != nil {
		return err
	}
	if !slices.Contains(list, id) {
		return ErrNotAvailable
	}

	*dst = id
	s.selectionChanged()

	return nil
}

func (s *Session) editable() error {
	switch {
	case s.closed:
		return ErrClosed
	case s.state == Constructing:
		return ErrBusy
	}

	return nil
}

func (s *Session) selectionChanged() {
	s.removeGhosts()
	s.cost = NoCost
	s.recomputeHighlight()
}

// SetViewport replaces the viewport used to map screen points.
func (s *Session) SetViewport(v world.Viewport) {
	s.viewport = v
}

func (s *Session) resolve() (track.Resolution, bool) {
	return s.mode.Resolve(s.sel.Piece, s.sel.Gradient, s.sel.Rotation)
}

// recomputeHighlight highlights the resolved piece at the anchor, or a single straight
// tile when the selection does not resolve.
func (s *Session) recomputeHighlight() {
	id, rot := track.ID(0), s.sel.Rotation
	if res, ok := s.resolve(); ok {
		id, rot = res.ID, res.Rotation
	}

	piece, _ := s.table.Piece(id)
	next := ComputeHighlight(piece, s.anchor.XY(), rot)

	s.invalidate(s.highlight)
	s.highlight = next
	s.invalidate(next)
}

func (s *Session) invalidate(ts TileSet) {
	if s.invalidator == nil || ts.Len() == 0 {
		return
	}
	s.invalidator.InvalidateTiles(ts.Tiles())
}

// ID returns the session id.
func (s *Session) ID() uuid.UUID { return s.id }

// State returns the tool state.
func (s *Session) State() State { return s.state }

// Selection returns a copy of the selection.
func (s *Session) Selection() Selection { return s.sel }

// Highlight returns the highlighted tiles.
func (s *Session) Highlight() TileSet { return s.highlight }

// Cost returns the last ghost, placement or removal cost, or NoCost.
func (s *Session) Cost() int { return s.cost }

// Anchor returns where the next piece starts.
func (s *Session) Anchor() coord.Pos3 { return s.anchor }

// Lists returns the object choices of the session.
func (s *Session) Lists() catalog.Lists { return s.lists }

// Closed reports whether Close was called.
func (s *Session) Closed() bool { return s.closed }

// Resolved returns the geometry the current selection resolves to.
func (s *Session) Resolved() (track.Resolution, bool) {
	return s.resolve()
}

// Ghost returns the arguments of the current ghost piece.
func (s *Session) Ghost() (world.PlaceArgs, bool) {
	if s.ghost == nil {
		return world.PlaceArgs{}, false
	}

	return *s.ghost, true
}
