package catalog

import (
	"fmt"
	"strings"
)

// Validate checks cross references: unique names, known bridges, signals, stations and
// mods, compatible type names and year ranges.
// This is intended to run before building sessions to catch typos early.
func (c *Catalog) Validate() error {
	seen := map[string]string{} // nameLower -> type

	for _, t := range c.sortedTypes() {
		o := c.byType[t]
		name := strings.TrimSpace(o.Name)
		if name == "" {
			return fmt.Errorf("%s: empty name", t)
		}
		if prev, exists := seen[strings.ToLower(name)]; exists {
			return fmt.Errorf("duplicate object name %q: %s and %s", name, prev, t)
		}
		seen[strings.ToLower(name)] = t.String()

		if err := o.Availability.validate(); err != nil {
			return fmt.Errorf("%q: %w", name, err)
		}
		if len(o.Mods) > 4 {
			return fmt.Errorf("%q: %d mods, at most 4 allowed", name, len(o.Mods))
		}

		for _, id := range o.Bridges {
			if _, ok := c.bridge(id); !ok {
				return fmt.Errorf("%q: unknown bridge %d", name, id)
			}
		}
		for _, id := range o.Signals {
			if o.road {
				return fmt.Errorf("%q: roads cannot list signals", name)
			}
			if _, ok := c.signal(id); !ok {
				return fmt.Errorf("%q: unknown signal %d", name, id)
			}
		}
		for _, id := range o.Stations {
			if _, ok := c.station(id, o.road); !ok {
				return fmt.Errorf("%q: unknown station %d", name, id)
			}
		}
		for _, id := range o.Mods {
			if _, ok := c.mod(id, o.road); !ok {
				return fmt.Errorf("%q: unknown mod %d", name, id)
			}
		}

		for _, other := range o.Compatible {
			target, ok := c.Lookup(other)
			if !ok {
				return fmt.Errorf("%q: compatible refers to unknown type %q", name, other)
			}
			if target.road != o.road {
				return fmt.Errorf("%q: compatible type %q is a different transport mode", name, other)
			}
		}
	}

	ids := map[string]struct{}{}
	check := func(kind string, id uint8, name string, a Availability) error {
		key := fmt.Sprintf("%s:%d", kind, id)
		if _, dup := ids[key]; dup {
			return fmt.Errorf("duplicate %s id %d", kind, id)
		}
		ids[key] = struct{}{}
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%s %d: empty name", kind, id)
		}
		if err := a.validate(); err != nil {
			return fmt.Errorf("%s %q: %w", kind, name, err)
		}

		return nil
	}

	for _, b := range c.Bridges {
		if err := check("bridge", b.ID, b.Name, b.Availability); err != nil {
			return err
		}
		if b.MaxHeight <= 0 {
			return fmt.Errorf("bridge %q: max_height must be positive", b.Name)
		}
	}
	for _, s := range c.Signals {
		if err := check("signal", s.ID, s.Name, s.Availability); err != nil {
			return err
		}
	}
	for _, s := range c.Stations {
		kind := "rail station"
		if s.Road {
			kind = "road station"
		}
		if err := check(kind, s.ID, s.Name, s.Availability); err != nil {
			return err
		}
	}
	for _, m := range c.Mods {
		kind := "rail mod"
		if m.Road {
			kind = "road mod"
		}
		if err := check(kind, m.ID, m.Name, m.Availability); err != nil {
			return err
		}
	}

	return nil
}

func (a Availability) validate() error {
	if a.Obsolete != 0 && a.Obsolete <= a.Designed {
		return fmt.Errorf("obsolete year %d not after designed year %d", a.Obsolete, a.Designed)
	}

	return nil
}
