package world

import (
	"slices"

	"github.com/woozymasta/loco-construct/internal/track"
)

// Objects describes the objects commands may build.
type Objects interface {
	Track(t track.Type) (TrackSpec, bool)
	Bridge(id uint8) (BridgeSpec, bool)
	Signal(id uint8) (AddonSpec, bool)
	Station(id uint8, road bool) (AddonSpec, bool)
}

// TrackSpec is the command view of a track or road object.
type TrackSpec struct {
	Traits     track.Traits
	TileCost   int
	ModCosts   [4]int       // per tile, by mod bit
	Compatible []track.Type // objects it may share a junction with
}

// CompatibleWith reports whether t may share a junction with the object.
func (s TrackSpec) CompatibleWith(t track.Type) bool {
	return slices.Contains(s.Compatible, t)
}

// modCost returns the per tile cost of a mod bitmask.
func (s TrackSpec) modCost(mods uint8) int {
	cost := 0
	for bit := range len(s.ModCosts) {
		if mods&(1<<bit) != 0 {
			cost += s.ModCosts[bit]
		}
	}

	return cost
}

// BridgeSpec is the command view of a bridge object.
type BridgeSpec struct {
	MaxHeight      int          // highest span above ground
	DisabledTraits track.Traits // piece traits the bridge cannot carry
	TileCost       int
}

// AddonSpec is the command view of a signal or station object.
type AddonSpec struct {
	Cost int
}
