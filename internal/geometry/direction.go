package geometry

import "github.com/woozymasta/loco-construct/internal/coord"

// RotationOffset is the one-tile step taken when leaving a tile in a rotation:
// 0-3 grid directions, 12-15 diagonals. Rotations 4-11 repeat the grid steps.
var RotationOffset = [16]coord.Pos2{
	{X: -32, Y: 0}, {X: 0, Y: 32}, {X: 32, Y: 0}, {X: 0, Y: -32},
	{X: -32, Y: 0}, {X: 0, Y: 32}, {X: 32, Y: 0}, {X: 0, Y: -32},
	{X: -32, Y: 0}, {X: 0, Y: 32}, {X: 32, Y: 0}, {X: 0, Y: -32},
	{X: -32, Y: 32}, {X: 32, Y: 32}, {X: 32, Y: -32}, {X: -32, Y: -32},
}

// ReverseRotation maps a rotation onto the rotation facing the other way.
var ReverseRotation = [16]uint8{2, 3, 0, 1, 10, 11, 8, 9, 6, 7, 4, 5, 14, 15, 12, 13}

// Terminal reports whether a reversed rotation has no single-tile step back.
func Terminal(rot uint8) bool {
	return rot >= 12
}
