// Package scenario loads simulator scenarios, keeps last used construction choices and
// replays scripted construction sessions against an in-memory map.
package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/invopop/yaml"

	"github.com/woozymasta/loco-construct/internal/construction"
	"github.com/woozymasta/loco-construct/internal/coord"
	"github.com/woozymasta/loco-construct/internal/world"
)

// Scenario is a simulator input file.
type Scenario struct {
	Name     string                          `json:"name"`
	Year     int                             `json:"year"`
	Funds    *int                            `json:"funds,omitempty"`   // unlimited when unset
	Catalog  string                          `json:"catalog,omitempty"` // catalog file, built-in when empty
	Map      MapSpec                         `json:"map"`
	Viewport ViewportSpec                    `json:"viewport"`
	Defaults map[string]construction.Choices `json:"defaults,omitempty"` // keyed by type name
	Steps    []Step                          `json:"steps"`

	dir string
}

// MapSpec describes the simulator map.
type MapSpec struct {
	Width      int                   `json:"width"`
	Height     int                   `json:"height"`
	BaseHeight int                   `json:"base_height"`
	Terrain    *world.TerrainOptions `json:"terrain,omitempty"` // generated terrain replaces the flat map
	Tiles      []TilePatch           `json:"tiles,omitempty"`
}

// TilePatch overrides the surface of one tile, addressed in tiles.
type TilePatch struct {
	X int `json:"x"`
	Y int `json:"y"`
	world.Surface
}

// ViewportSpec is the simulator viewport.
type ViewportSpec struct {
	X        int   `json:"x"`
	Y        int   `json:"y"`
	Width    int   `json:"width"`
	Height   int   `json:"height"`
	ViewX    int   `json:"view_x"`
	ViewY    int   `json:"view_y"`
	Zoom     uint8 `json:"zoom"`
	Rotation uint8 `json:"rotation"`
}

// Viewport converts the spec.
func (v ViewportSpec) Viewport() world.Viewport {
	return world.Viewport{
		X: v.X, Y: v.Y,
		Width: v.Width, Height: v.Height,
		ViewX: v.ViewX, ViewY: v.ViewY,
		Zoom: v.Zoom, Rotation: v.Rotation & 3,
	}
}

// Step is one scripted user action.
type Step struct {
	Action   string       `json:"action"`
	Type     string       `json:"type,omitempty"`     // open: catalog name or "rail:<id>"
	Piece    string       `json:"piece,omitempty"`    // select
	Gradient string       `json:"gradient,omitempty"` // select
	Bridge   *uint8       `json:"bridge,omitempty"`   // select
	Signal   *uint8       `json:"signal,omitempty"`   // select
	Station  *uint8       `json:"station,omitempty"`  // select
	Mods     *uint8       `json:"mods,omitempty"`     // select
	Tile     *coord.Pos3  `json:"tile,omitempty"`     // world position; z 0 means the ground height
	Point    *coord.Point `json:"point,omitempty"`    // raw screen point
	Shift    bool         `json:"shift,omitempty"`
	Both     bool         `json:"both,omitempty"` // signal: both directions
	Repeat   int          `json:"repeat,omitempty"`
}

// Actions understood by the runner.
const (
	ActionOpen    = "open"
	ActionOpenAt  = "open_at"
	ActionSelect  = "select"
	ActionRotate  = "rotate"
	ActionArm     = "arm"
	ActionHover   = "hover"
	ActionClick   = "click"
	ActionBuild   = "build"
	ActionRemove  = "remove"
	ActionSignal  = "signal"
	ActionStation = "station"
	ActionCancel  = "cancel"
	ActionClose   = "close"
)

var pointActions = map[string]bool{
	ActionOpenAt:  true,
	ActionHover:   true,
	ActionClick:   true,
	ActionSignal:  true,
	ActionStation: true,
}

var knownActions = map[string]bool{
	ActionOpen: true, ActionOpenAt: true, ActionSelect: true, ActionRotate: true,
	ActionArm: true, ActionHover: true, ActionClick: true, ActionBuild: true,
	ActionRemove: true, ActionSignal: true, ActionStation: true, ActionCancel: true,
	ActionClose: true,
}

// Load reads a scenario file.
func Load(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	sc, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	sc.dir = filepath.Dir(path)

	return sc, nil
}

// Parse decodes and validates a YAML or JSON scenario.
func Parse(raw []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(raw, &sc); err != nil {
		return nil, err
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	return &sc, nil
}

// Validate checks the map size and every step.
func (sc *Scenario) Validate() error {
	if sc.Map.Width <= 0 || sc.Map.Height <= 0 {
		return fmt.Errorf("map size %dx%d", sc.Map.Width, sc.Map.Height)
	}
	if sc.Map.Width*coord.TileSize > world.MaxCoord+1 || sc.Map.Height*coord.TileSize > world.MaxCoord+1 {
		return fmt.Errorf("map size %dx%d exceeds %d tiles", sc.Map.Width, sc.Map.Height, (world.MaxCoord+1)/coord.TileSize)
	}
	for i, p := range sc.Map.Tiles {
		if p.X < 0 || p.Y < 0 || p.X >= sc.Map.Width || p.Y >= sc.Map.Height {
			return fmt.Errorf("tile patch %d: %d,%d off the map", i, p.X, p.Y)
		}
	}

	for i := range sc.Steps {
		st := &sc.Steps[i]
		st.Action = strings.ToLower(strings.TrimSpace(st.Action))
		if !knownActions[st.Action] {
			return fmt.Errorf("step %d: unknown action %q", i+1, st.Action)
		}
		if st.Action == ActionOpen && st.Type == "" {
			return fmt.Errorf("step %d: open needs a type", i+1)
		}
		if pointActions[st.Action] && st.Tile == nil && st.Point == nil {
			return fmt.Errorf("step %d: %s needs a tile or point", i+1, st.Action)
		}
		if st.Repeat < 0 {
			return fmt.Errorf("step %d: negative repeat", i+1)
		}
	}

	return nil
}

// BuildMap creates the scenario map.
func (sc *Scenario) BuildMap() *world.Map {
	var m *world.Map
	if sc.Map.Terrain != nil {
		m = world.GenerateTerrain(sc.Map.Width, sc.Map.Height, *sc.Map.Terrain)
	} else {
		m = world.NewMap(sc.Map.Width, sc.Map.Height, sc.Map.BaseHeight)
	}

	for _, p := range sc.Map.Tiles {
		m.SetSurface(coord.Pos2{X: p.X * coord.TileSize, Y: p.Y * coord.TileSize}, p.Surface)
	}

	return m
}

// CatalogPath returns the catalog file relative to the scenario file.
func (sc *Scenario) CatalogPath() string {
	if sc.Catalog == "" || filepath.IsAbs(sc.Catalog) || sc.dir == "" {
		return sc.Catalog
	}

	return filepath.Join(sc.dir, sc.Catalog)
}
