package catalog

import (
	"github.com/woozymasta/loco-construct/internal/track"
	"github.com/woozymasta/loco-construct/internal/world"
)

var _ world.Objects = (*Catalog)(nil)

// Track implements world.Objects.
func (c *Catalog) Track(t track.Type) (world.TrackSpec, bool) {
	o, ok := c.byType[t]
	if !ok {
		return world.TrackSpec{}, false
	}

	spec := world.TrackSpec{Traits: o.traits, TileCost: o.TileCost}
	for bit, id := range o.Mods {
		if bit >= len(spec.ModCosts) {
			break
		}
		if m, ok := c.mod(id, o.road); ok {
			spec.ModCosts[bit] = m.TileCost
		}
	}
	for _, name := range o.Compatible {
		if other, ok := c.Lookup(name); ok {
			spec.Compatible = append(spec.Compatible, other.Type())
		}
	}

	return spec, true
}

// Bridge implements world.Objects.
func (c *Catalog) Bridge(id uint8) (world.BridgeSpec, bool) {
	b, ok := c.bridge(id)
	if !ok {
		return world.BridgeSpec{}, false
	}

	return world.BridgeSpec{MaxHeight: b.MaxHeight, DisabledTraits: b.disabled, TileCost: b.TileCost}, true
}

// Signal implements world.Objects.
func (c *Catalog) Signal(id uint8) (world.AddonSpec, bool) {
	s, ok := c.signal(id)
	if !ok {
		return world.AddonSpec{}, false
	}

	return world.AddonSpec{Cost: s.Cost}, true
}

// Station implements world.Objects.
func (c *Catalog) Station(id uint8, road bool) (world.AddonSpec, bool) {
	s, ok := c.station(id, road)
	if !ok {
		return world.AddonSpec{}, false
	}

	return world.AddonSpec{Cost: s.Cost}, true
}

// BridgeDisabled returns the piece traits a bridge cannot carry.
func (c *Catalog) BridgeDisabled(id uint8) (track.Traits, bool) {
	b, ok := c.bridge(id)
	if !ok {
		return 0, false
	}

	return b.disabled, true
}

// Switchable reports whether a road type may switch to another switchable road it meets.
func (c *Catalog) Switchable(t track.Type) bool {
	o, ok := c.byType[t]
	return ok && o.road && o.Switchable
}
