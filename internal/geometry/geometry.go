// Package geometry holds the static piece geometry tables for rail and road.
//
// A table is indexed by geometry id. Each piece lists the tiles it occupies relative to
// its first tile and eight end coordinates, one per entry direction (0-3 forward, 4-7
// reversed), giving the offset and rotation of the next attachment point.
package geometry

import (
	"fmt"

	"github.com/woozymasta/loco-construct/internal/coord"
	"github.com/woozymasta/loco-construct/internal/track"
)

// EndCount is the number of end coordinates per piece.
const EndCount = 8

// Tile is one tile occupied by a piece, relative to the piece's first tile.
type Tile struct {
	Index     int   `json:"index"`              // sequence index inside the piece
	X         int   `json:"x"`                  // offset in world units
	Y         int   `json:"y"`                  // offset in world units
	Z         int   `json:"z"`                  // height offset in world units
	Clearance int   `json:"clearance"`          // extra vertical clearance
	Quarter   uint8 `json:"quarter"`            // occupied quarter-tile mask
	Diagonal  bool  `json:"diagonal,omitempty"` // sub-tile detail, not whole-tile coverage
}

// Offset returns the tile offset as a position.
func (t Tile) Offset() coord.Pos3 {
	return coord.Pos3{X: t.X, Y: t.Y, Z: t.Z}
}

// End is the attachment point reached after a piece placed in some direction.
type End struct {
	Begin uint8 `json:"begin"` // rotation at the piece start
	End   uint8 `json:"end"`   // rotation at the next attachment point
	X     int   `json:"x"`
	Y     int   `json:"y"`
	Z     int   `json:"z"`
}

// Pos returns the end offset as a position.
func (e End) Pos() coord.Pos3 {
	return coord.Pos3{X: e.X, Y: e.Y, Z: e.Z}
}

// Piece is the geometry of one geometry id.
type Piece struct {
	ID    int    `json:"id"`
	Tiles []Tile `json:"tiles"`
	Ends  []End  `json:"ends"`
}

// MinZ returns the lowest tile height offset of the piece.
func (p Piece) MinZ() int {
	if len(p.Tiles) == 0 {
		return 0
	}

	minZ := p.Tiles[0].Z
	for _, t := range p.Tiles[1:] {
		if t.Z < minZ {
			minZ = t.Z
		}
	}

	return minZ
}

// Table is a complete geometry table for one transport mode.
type Table struct {
	Name    string  `json:"-"`
	Pieces  []Piece `json:"pieces"`
	Version uint32  `json:"-"` // folded xxhash of the raw table bytes
}

// Len returns the number of geometry ids.
func (t *Table) Len() int {
	return len(t.Pieces)
}

// Piece returns the geometry of id.
func (t *Table) Piece(id track.ID) (Piece, bool) {
	if int(id) >= len(t.Pieces) {
		return Piece{}, false
	}

	return t.Pieces[id], true
}

// MustPiece returns the geometry of id and panics on unknown ids.
func (t *Table) MustPiece(id track.ID) Piece {
	p, ok := t.Piece(id)
	if !ok {
		panic(fmt.Sprintf("geometry: %s table has no id %d", t.Name, id))
	}

	return p
}

// End returns the end coordinates of id entered in direction dir (0-7).
func (t *Table) End(id track.ID, dir uint8) End {
	return t.MustPiece(id).Ends[dir&(EndCount-1)]
}

// MinZ returns the lowest tile height offset of id.
func (t *Table) MinZ(id track.ID) int {
	return t.MustPiece(id).MinZ()
}

// validate checks table shape: sequential ids, at least one tile and all ends per piece.
func (t *Table) validate() error {
	if len(t.Pieces) == 0 {
		return fmt.Errorf("%s: empty table", t.Name)
	}

	for i, p := range t.Pieces {
		if p.ID != i {
			return fmt.Errorf("%s: piece %d has id %d", t.Name, i, p.ID)
		}
		if len(p.Tiles) == 0 {
			return fmt.Errorf("%s: piece %d has no tiles", t.Name, i)
		}
		if len(p.Ends) != EndCount {
			return fmt.Errorf("%s: piece %d has %d ends, want %d", t.Name, i, len(p.Ends), EndCount)
		}
		for j, tile := range p.Tiles {
			if tile.Index != j {
				return fmt.Errorf("%s: piece %d tile %d has index %d", t.Name, i, j, tile.Index)
			}
			if tile.Quarter > 0xF {
				return fmt.Errorf("%s: piece %d tile %d quarter mask %#x out of range", t.Name, i, j, tile.Quarter)
			}
		}
		for j, e := range p.Ends {
			if e.Begin > 15 || e.End > 15 {
				return fmt.Errorf("%s: piece %d end %d rotation out of range", t.Name, i, j)
			}
		}
	}

	return nil
}
