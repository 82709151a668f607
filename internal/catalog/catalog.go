// Package catalog holds the object definitions the construction tool builds with:
// track and road types, bridges, signals, stations and mods.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/invopop/yaml"

	"github.com/woozymasta/loco-construct/internal/track"
)

//go:embed data/default.yaml
var defaultCatalog []byte

// Availability is the year range an object can be built in.
type Availability struct {
	Designed int `json:"designed,omitempty"` // first year, 0 means always
	Obsolete int `json:"obsolete,omitempty"` // first year it is gone, 0 means never
}

// AvailableIn reports whether the object can be built in year.
func (a Availability) AvailableIn(year int) bool {
	if a.Designed != 0 && year < a.Designed {
		return false
	}

	return a.Obsolete == 0 || year < a.Obsolete
}

// TrackObject is a rail or road type.
type TrackObject struct {
	ID         uint8    `json:"id"`
	Name       string   `json:"name"`
	Traits     []string `json:"traits,omitempty"`
	TileCost   int      `json:"tile_cost"`
	Mods       []uint8  `json:"mods,omitempty"`       // up to four mod objects
	Bridges    []uint8  `json:"bridges,omitempty"`    // bridge objects usable with this type
	Signals    []uint8  `json:"signals,omitempty"`    // rail only
	Stations   []uint8  `json:"stations,omitempty"`   // station objects usable with this type
	Compatible []string `json:"compatible,omitempty"` // names of types it may share junctions with
	Switchable bool     `json:"switchable,omitempty"` // road may switch to a switchable road it meets
	Availability

	road   bool
	traits track.Traits
}

// Type returns the construction type of the object.
func (o *TrackObject) Type() track.Type {
	if o.road {
		return track.RoadType(o.ID)
	}

	return track.RailType(o.ID)
}

// Caps returns the parsed traits.
func (o *TrackObject) Caps() track.Traits {
	return o.traits
}

// BridgeObject is a bridge type.
type BridgeObject struct {
	ID             uint8    `json:"id"`
	Name           string   `json:"name"`
	MaxHeight      int      `json:"max_height"`
	DisabledTraits []string `json:"disabled_traits,omitempty"`
	TileCost       int      `json:"tile_cost"`
	Availability

	disabled track.Traits
}

// SignalObject is a rail signal type.
type SignalObject struct {
	ID   uint8  `json:"id"`
	Name string `json:"name"`
	Cost int    `json:"cost"`
	Availability
}

// StationObject is a station type.
type StationObject struct {
	ID   uint8  `json:"id"`
	Name string `json:"name"`
	Road bool   `json:"road,omitempty"`
	Cost int    `json:"cost"`
	Availability
}

// ModObject is an add-on such as overhead wires.
type ModObject struct {
	ID       uint8  `json:"id"`
	Name     string `json:"name"`
	Road     bool   `json:"road,omitempty"`
	TileCost int    `json:"tile_cost"`
	Availability
}

// Catalog is the full object set.
type Catalog struct {
	Tracks   []TrackObject   `json:"tracks"`
	Roads    []TrackObject   `json:"roads"`
	Bridges  []BridgeObject  `json:"bridges"`
	Signals  []SignalObject  `json:"signals"`
	Stations []StationObject `json:"stations"`
	Mods     []ModObject     `json:"mods"`

	byType map[track.Type]*TrackObject
	byName map[string]*TrackObject
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("catalog: default: %v", err))
	}

	return c
}

// Load reads a catalog from a YAML or JSON file.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// Parse decodes, indexes and validates a catalog.
func Parse(raw []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if err := c.index(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// index parses trait names and builds the lookup maps.
func (c *Catalog) index() error {
	c.byType = make(map[track.Type]*TrackObject, len(c.Tracks)+len(c.Roads))
	c.byName = make(map[string]*TrackObject, len(c.Tracks)+len(c.Roads))

	for _, list := range []struct {
		objs []TrackObject
		road bool
	}{{c.Tracks, false}, {c.Roads, true}} {
		for i := range list.objs {
			o := &list.objs[i]
			o.road = list.road

			traits, err := track.ParseTraits(o.Traits)
			if err != nil {
				return fmt.Errorf("%s: %w", o.Name, err)
			}
			o.traits = traits

			if _, dup := c.byType[o.Type()]; dup {
				return fmt.Errorf("duplicate object %s", o.Type())
			}
			c.byType[o.Type()] = o
			c.byName[strings.ToLower(o.Name)] = o
		}
	}

	for i := range c.Bridges {
		b := &c.Bridges[i]
		disabled, err := track.ParseTraits(b.DisabledTraits)
		if err != nil {
			return fmt.Errorf("bridge %s: %w", b.Name, err)
		}
		b.disabled = disabled
	}

	return nil
}

// Object returns the track or road object of a type.
func (c *Catalog) Object(t track.Type) (*TrackObject, bool) {
	o, ok := c.byType[t]
	return o, ok
}

// Lookup finds a track or road object by name or by "rail:<id>" / "road:<id>".
func (c *Catalog) Lookup(name string) (*TrackObject, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if o, ok := c.byName[key]; ok {
		return o, true
	}
	for t, o := range c.byType {
		if t.String() == key {
			return o, true
		}
	}

	return nil, false
}

// Mode returns the construction mode of a type.
func (c *Catalog) Mode(t track.Type) (track.Mode, bool) {
	o, ok := c.byType[t]
	if !ok {
		return nil, false
	}

	return track.ModeFor(t, o.traits), true
}

// bridge returns a bridge object by id.
func (c *Catalog) bridge(id uint8) (*BridgeObject, bool) {
	for i := range c.Bridges {
		if c.Bridges[i].ID == id {
			return &c.Bridges[i], true
		}
	}

	return nil, false
}

func (c *Catalog) signal(id uint8) (*SignalObject, bool) {
	for i := range c.Signals {
		if c.Signals[i].ID == id {
			return &c.Signals[i], true
		}
	}

	return nil, false
}

func (c *Catalog) station(id uint8, road bool) (*StationObject, bool) {
	for i := range c.Stations {
		if c.Stations[i].ID == id && c.Stations[i].Road == road {
			return &c.Stations[i], true
		}
	}

	return nil, false
}

func (c *Catalog) mod(id uint8, road bool) (*ModObject, bool) {
	for i := range c.Mods {
		if c.Mods[i].ID == id && c.Mods[i].Road == road {
			return &c.Mods[i], true
		}
	}

	return nil, false
}
