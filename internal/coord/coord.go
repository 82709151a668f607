// Package coord provides world and screen coordinate types shared by the construction packages.
package coord

// TileSize is the edge length of a map tile in world units.
const TileSize = 32

// Pos2 is a horizontal world position in world units.
type Pos2 struct {
	X int `json:"x"` // west-east world coordinate
	Y int `json:"y"` // north-south world coordinate
}

// Pos3 is a world position with height.
type Pos3 struct {
	X int `json:"x"` // west-east world coordinate
	Y int `json:"y"` // north-south world coordinate
	Z int `json:"z"` // height in world units
}

// Point is a screen or viewport position in pixels.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p+o.
func (p Pos2) Add(o Pos2) Pos2 {
	return Pos2{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns p-o.
func (p Pos2) Sub(o Pos2) Pos2 {
	return Pos2{X: p.X - o.X, Y: p.Y - o.Y}
}

// WithZ lifts a horizontal position to the given height.
func (p Pos2) WithZ(z int) Pos3 {
	return Pos3{X: p.X, Y: p.Y, Z: z}
}

// TileAligned snaps the position down to the owning tile corner.
func (p Pos2) TileAligned() Pos2 {
	return Pos2{X: p.X &^ (TileSize - 1), Y: p.Y &^ (TileSize - 1)}
}

// Add returns p+o.
func (p Pos3) Add(o Pos3) Pos3 {
	return Pos3{X: p.X + o.X, Y: p.Y + o.Y, Z: p.Z + o.Z}
}

// Sub returns p-o.
func (p Pos3) Sub(o Pos3) Pos3 {
	return Pos3{X: p.X - o.X, Y: p.Y - o.Y, Z: p.Z - o.Z}
}

// XY drops the height component.
func (p Pos3) XY() Pos2 {
	return Pos2{X: p.X, Y: p.Y}
}

// Rotate turns v clockwise by quarter turns; only the low two bits of dir are used.
func Rotate(v Pos2, dir uint8) Pos2 {
	switch dir & 3 {
	case 1:
		return Pos2{X: v.Y, Y: -v.X}
	case 2:
		return Pos2{X: -v.X, Y: -v.Y}
	case 3:
		return Pos2{X: -v.Y, Y: v.X}
	default:
		return v
	}
}

// ManhattanDistance returns |a.X-b.X| + |a.Y-b.Y|.
func ManhattanDistance(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
