package catalog

import (
	"sort"
	"strings"

	"github.com/woozymasta/loco-construct/internal/track"
)

// Lists are the object choices offered while building one type in one year.
type Lists struct {
	Bridges  []uint8 `json:"bridges"`
	Signals  []uint8 `json:"signals"`
	Stations []uint8 `json:"stations"`
	Mods     []uint8 `json:"mods"` // mod object ids, position is the mod bit
}

// ListsFor builds the choice lists of a type: objects referenced by the type and
// available in year, sorted by name. Mods keep their slot order.
func (c *Catalog) ListsFor(t track.Type, year int) Lists {
	o, ok := c.byType[t]
	if !ok {
		return Lists{}
	}

	var l Lists
	for _, id := range o.Bridges {
		if b, ok := c.bridge(id); ok && b.AvailableIn(year) {
			l.Bridges = append(l.Bridges, id)
		}
	}
	sortByName(l.Bridges, func(id uint8) string {
		b, _ := c.bridge(id)
		return b.Name
	})

	if !o.road {
		for _, id := range o.Signals {
			if s, ok := c.signal(id); ok && s.AvailableIn(year) {
				l.Signals = append(l.Signals, id)
			}
		}
		sortByName(l.Signals, func(id uint8) string {
			s, _ := c.signal(id)
			return s.Name
		})
	}

	for _, id := range o.Stations {
		if s, ok := c.station(id, o.road); ok && s.AvailableIn(year) {
			l.Stations = append(l.Stations, id)
		}
	}
	sortByName(l.Stations, func(id uint8) string {
		s, _ := c.station(id, o.road)
		return s.Name
	})

	for _, id := range o.Mods {
		if m, ok := c.mod(id, o.road); ok && m.AvailableIn(year) {
			l.Mods = append(l.Mods, id)
		}
	}

	return l
}

// AvailableTypes returns the rail and road types available in year, rail first, each sorted by name.
func (c *Catalog) AvailableTypes(year int) []track.Type {
	var rail, road []*TrackObject
	for _, t := range c.sortedTypes() {
		o := c.byType[t]
		if !o.AvailableIn(year) {
			continue
		}
		if o.road {
			road = append(road, o)
		} else {
			rail = append(rail, o)
		}
	}

	var out []track.Type
	for _, group := range [][]*TrackObject{rail, road} {
		sort.SliceStable(group, func(i, j int) bool {
			return strings.ToLower(group[i].Name) < strings.ToLower(group[j].Name)
		})
		for _, o := range group {
			out = append(out, o.Type())
		}
	}

	return out
}

func (c *Catalog) sortedTypes() []track.Type {
	out := make([]track.Type, 0, len(c.byType))
	for t := range c.byType {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

func sortByName(ids []uint8, name func(uint8) string) {
	sort.SliceStable(ids, func(i, j int) bool {
		return strings.ToLower(name(ids[i])) < strings.ToLower(name(ids[j]))
	})
}
