package construction

import (
	"github.com/woozymasta/loco-construct/internal/catalog"
	"github.com/woozymasta/loco-construct/internal/coord"
	"github.com/woozymasta/loco-construct/internal/track"
	"github.com/woozymasta/loco-construct/internal/world"
)

// Heights answers tile height queries. *world.Map implements it.
type Heights interface {
	ConstructionHeight(p coord.Pos2) (world.TileHeight, bool)
	ValidCoords(p coord.Pos2) bool
}

// Locator maps screen points onto the world. *world.Map implements it.
type Locator interface {
	SurfaceAt(v world.Viewport, pt coord.Point) (coord.Pos2, bool)
	MapAtHeight(v world.Viewport, pt coord.Point, z int) (coord.Pos2, bool)
	ElementAt(v world.Viewport, pt coord.Point, road bool) (*world.Element, bool)
}

// Commands mutates the world. *world.Builder implements it.
type Commands interface {
	PlacePiece(args world.PlaceArgs) (int, error)
	RemovePiece(args world.RemoveArgs) (int, error)
	PlaceSignal(args world.SignalArgs) (int, error)
	PlaceStation(args world.StationArgs) (int, error)
}

// Objects is the object catalog. *catalog.Catalog implements it.
type Objects interface {
	Mode(t track.Type) (track.Mode, bool)
	ListsFor(t track.Type, year int) catalog.Lists
	AvailableTypes(year int) []track.Type
	BridgeDisabled(id uint8) (track.Traits, bool)
	Switchable(t track.Type) bool
}

// Cue plays the audible failure signal.
type Cue interface {
	Failure()
}

// Invalidator marks map tiles for redraw.
type Invalidator interface {
	InvalidateTiles(tiles []coord.Pos2)
}

var (
	_ Heights  = (*world.Map)(nil)
	_ Locator  = (*world.Map)(nil)
	_ Commands = (*world.Builder)(nil)
	_ Objects  = (*catalog.Catalog)(nil)
)
