package world

import (
	"fmt"

	"github.com/woozymasta/loco-construct/internal/coord"
	"github.com/woozymasta/loco-construct/internal/geometry"
	"github.com/woozymasta/loco-construct/internal/track"
)

// PlaceArgs places one piece. Pos is the first tile at the piece origin height;
// every tile is built at Pos.Z plus its own height offset.
type PlaceArgs struct {
	Pos      coord.Pos3
	Rotation track.Rotation
	Type     track.Type
	ID       track.ID
	Traits   track.Traits // traits of the resolved piece
	Mods     uint8
	Bridge   uint8
	Ghost    bool
}

// RemoveArgs removes the piece owning one element.
type RemoveArgs struct {
	Pos      coord.Pos3 // element tile and base height
	Rotation track.Rotation
	Type     track.Type
	ID       track.ID
	Sequence int
	Ghost    bool
}

// SignalArgs adds signals to a rail element.
type SignalArgs struct {
	Pos      coord.Pos3
	Rotation track.Rotation
	Type     track.Type
	ID       track.ID
	Sequence int
	Sides    uint16
	Signal   uint8
	Ghost    bool
}

// StationArgs adds a station to an element.
type StationArgs struct {
	Pos      coord.Pos3
	Rotation track.Rotation
	Type     track.Type
	ID       track.ID
	Sequence int
	Station  uint8
	Ghost    bool
}

// Builder executes construction commands against a map. Commands either fully apply or
// leave the map untouched.
type Builder struct {
	Map       *Map
	Objects   Objects
	Funds     int
	Unlimited bool // skip the funds check
}

// NewBuilder returns a builder with unlimited funds.
func NewBuilder(m *Map, objects Objects) *Builder {
	return &Builder{Map: m, Objects: objects, Unlimited: true}
}

// PlacePiece builds a piece and returns its cost.
func (b *Builder) PlacePiece(args PlaceArgs) (int, error) {
	spec, ok := b.Objects.Track(args.Type)
	if !ok {
		return 0, fail(ErrUnknownObject, "%s", args.Type)
	}

	piece, ok := geometry.For(args.Type.IsRoad()).Piece(args.ID)
	if !ok {
		return 0, fail(ErrUnknownPiece, "%s piece %d", args.Type, args.ID)
	}

	var bridge BridgeSpec
	if args.Bridge != NoBridge {
		if bridge, ok = b.Objects.Bridge(args.Bridge); !ok {
			return 0, fail(ErrUnknownObject, "bridge %d", args.Bridge)
		}
	}

	dir := args.Rotation.Direction()
	plan := make([]Element, 0, len(piece.Tiles))
	cost := 0
	for _, tile := range piece.Tiles {
		pos := args.Pos.XY().Add(coord.Rotate(coord.Pos2{X: tile.X, Y: tile.Y}, dir))
		if !b.Map.ValidCoords(pos) {
			return 0, fail(ErrOffMap, "%d,%d", pos.X, pos.Y)
		}
		pos = pos.TileAligned()

		base := args.Pos.Z + tile.Z
		clear := base + tile.Clearance + 2*HeightStep
		at := pos.WithZ(base)

		if base < MinBuildHeight {
			return 0, fail(ErrTooLow, "%v", at)
		}
		if clear > MaxBuildHeight {
			return 0, fail(ErrTooHigh, "%v", at)
		}

		h, _ := b.Map.ConstructionHeight(pos)
		if h.Water > 0 && base < h.Water+HeightStep {
			return 0, fail(ErrUnderwater, "%v", at)
		}
		if base < h.Land {
			if base+2*HeightStep+tile.Clearance > h.Land {
				return 0, fail(ErrLandInTheWay, "%v", at)
			}
			if !spec.Traits.Has(track.Tunnel) {
				return 0, fail(ErrBelowGround, "%v", at)
			}
		}

		tileCost := spec.TileCost + spec.modCost(args.Mods)
		if base > h.Ground()+HeightStep {
			if args.Bridge == NoBridge {
				return 0, fail(ErrBridgeNeeded, "%v", at)
			}
			if base-h.Ground() > bridge.MaxHeight {
				return 0, fail(ErrTooHighForBridge, "bridge %d at %v", args.Bridge, at)
			}
			if bridge.DisabledTraits.Any(args.Traits) {
				return 0, fail(ErrBridgeUnsuitable, "bridge %d at %v", args.Bridge, at)
			}
			tileCost += bridge.TileCost
		}

		quarter := rotateQuarter(tile.Quarter, dir)
		if err := b.checkCollisions(args, spec, tile.Index, pos, base, clear, quarter); err != nil {
			return 0, err
		}

		plan = append(plan, Element{
			Pos:      pos,
			BaseZ:    base,
			ClearZ:   clear,
			Type:     args.Type,
			ID:       args.ID,
			Rotation: args.Rotation,
			Sequence: tile.Index,
			Quarter:  quarter,
			Bridge:   args.Bridge,
			Mods:     args.Mods,
			Ghost:    args.Ghost,
			Cost:     tileCost,
			Station:  NoStation,
		})
		cost += tileCost
	}

	if err := b.charge(args.Ghost, cost); err != nil {
		return 0, err
	}
	for i := range plan {
		b.Map.add(&plan[i])
	}

	return cost, nil
}

// checkCollisions rejects pieces sharing a quarter and a vertical range with existing elements.
func (b *Builder) checkCollisions(args PlaceArgs, spec TrackSpec, seq int, pos coord.Pos2, base, clear int, quarter uint8) error {
	at := pos.WithZ(base)
	for _, e := range b.Map.Elements(pos) {
		if e.Quarter&quarter == 0 || e.BaseZ >= clear || base >= e.ClearZ {
			continue
		}

		switch {
		case e.Type == args.Type && e.ID == args.ID && e.Rotation == args.Rotation && e.Sequence == seq && e.BaseZ == base:
			return fail(ErrAlreadyBuilt, "%v", at)
		case e.IsRoad() != args.Type.IsRoad() || e.BaseZ != base:
			return fail(ErrInTheWay, "%v", at)
		case e.Type == args.Type:
			if !spec.Traits.Has(track.Junction) {
				return fail(ErrJunctionsNotPossible, "%s at %v", args.Type, at)
			}
		case !spec.CompatibleWith(e.Type):
			return &CommandError{
				Reason:      ErrIncompatibleJunction,
				Object:      fmt.Sprintf("%s with %s at %v", args.Type, e.Type, at),
				Conflict:    e.Type,
				HasConflict: true,
			}
		}
	}

	return nil
}

// RemovePiece removes the whole piece owning the addressed element and returns the refund
// as a negative cost.
func (b *Builder) RemovePiece(args RemoveArgs) (int, error) {
	first, ok := b.find(args.Pos, args.Type, args.ID, args.Rotation, args.Sequence, args.Ghost)
	if !ok {
		return 0, fail(ErrNothingToRemove, "%v", args.Pos)
	}

	piece, ok := geometry.For(args.Type.IsRoad()).Piece(args.ID)
	if !ok || first.Sequence >= len(piece.Tiles) {
		return 0, fail(ErrUnknownPiece, "%s piece %d", args.Type, args.ID)
	}

	dir := args.Rotation.Direction()
	seqTile := piece.Tiles[first.Sequence]
	origin := first.Pos.Sub(coord.Rotate(coord.Pos2{X: seqTile.X, Y: seqTile.Y}, dir))
	originZ := first.BaseZ - seqTile.Z

	var found []*Element
	refund := 0
	for _, tile := range piece.Tiles {
		pos := origin.Add(coord.Rotate(coord.Pos2{X: tile.X, Y: tile.Y}, dir)).TileAligned()
		e, ok := b.find(pos.WithZ(originZ+tile.Z), args.Type, args.ID, args.Rotation, tile.Index, args.Ghost)
		if !ok {
			continue
		}
		found = append(found, e)
		refund += e.Cost
	}

	for _, e := range found {
		b.Map.remove(e)
	}
	if args.Ghost {
		return 0, nil
	}
	if !b.Unlimited {
		b.Funds += refund
	}

	return -refund, nil
}

// PlaceSignal adds signals to the sides of a rail element.
func (b *Builder) PlaceSignal(args SignalArgs) (int, error) {
	if args.Type.IsRoad() {
		return 0, fail(ErrSignalOnRoad, "%s", args.Type)
	}

	e, ok := b.find(args.Pos, args.Type, args.ID, args.Rotation, args.Sequence, false)
	if !ok {
		return 0, fail(ErrNoTrackHere, "%v", args.Pos)
	}
	if e.SignalSides&args.Sides == args.Sides {
		return 0, fail(ErrAlreadyBuilt, "signal at %v", args.Pos)
	}

	spec, ok := b.Objects.Signal(args.Signal)
	if !ok {
		return 0, fail(ErrUnknownObject, "signal %d", args.Signal)
	}
	if err := b.charge(args.Ghost, spec.Cost); err != nil {
		return 0, err
	}
	if !args.Ghost {
		e.SignalSides |= args.Sides
		e.SignalObject = args.Signal
	}

	return spec.Cost, nil
}

// PlaceStation adds a station to a straight level element.
func (b *Builder) PlaceStation(args StationArgs) (int, error) {
	e, ok := b.find(args.Pos, args.Type, args.ID, args.Rotation, args.Sequence, false)
	if !ok {
		return 0, fail(ErrNoTrackHere, "%v", args.Pos)
	}
	if e.ID != 0 {
		return 0, fail(ErrStationNeedsStraight, "%v", args.Pos)
	}
	if e.Station != NoStation {
		return 0, fail(ErrAlreadyBuilt, "station at %v", args.Pos)
	}

	spec, ok := b.Objects.Station(args.Station, args.Type.IsRoad())
	if !ok {
		return 0, fail(ErrUnknownObject, "station %d", args.Station)
	}
	if err := b.charge(args.Ghost, spec.Cost); err != nil {
		return 0, err
	}
	if !args.Ghost {
		e.Station = args.Station
	}

	return spec.Cost, nil
}

// RemoveGhosts removes every ghost element.
func (b *Builder) RemoveGhosts() int {
	var ghosts []*Element
	b.Map.Each(func(e *Element) bool {
		if e.Ghost {
			ghosts = append(ghosts, e)
		}
		return true
	})
	for _, e := range ghosts {
		b.Map.remove(e)
	}

	return len(ghosts)
}

func (b *Builder) charge(ghost bool, cost int) error {
	if ghost || b.Unlimited {
		return nil
	}
	if cost > b.Funds {
		return fail(ErrInsufficientFunds, "cost %d, funds %d", cost, b.Funds)
	}
	b.Funds -= cost

	return nil
}

func (b *Builder) find(pos coord.Pos3, t track.Type, id track.ID, rot track.Rotation, seq int, ghost bool) (*Element, bool) {
	for _, e := range b.Map.Elements(pos.XY()) {
		if e.Type == t && e.ID == id && e.Rotation.Direction() == rot.Direction() &&
			e.Sequence == seq && e.BaseZ == pos.Z && e.Ghost == ghost {
			return e, true
		}
	}

	return nil, false
}

// rotateQuarter rotates a quarter tile mask by quarter turns.
func rotateQuarter(q uint8, dir uint8) uint8 {
	q &= 0xF
	dir &= 3

	return ((q << dir) | (q >> (4 - dir))) & 0xF
}
