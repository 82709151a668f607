package track

// Rotation is a piece orientation. Values 0-3 are the four grid directions,
// 4-11 are the half-diagonal bands used by mirrored geometry, 12-15 are diagonals.
type Rotation uint8

// Band groups a rotation into its geometry band: 0 for 0-3, 1 for 4-7, 2 for 8-11, 3 for 12-15.
func (r Rotation) Band() int {
	switch {
	case r < 4:
		return 0
	case r < 8:
		return 1
	case r < 12:
		return 2
	default:
		return 3
	}
}

// Direction returns the grid direction (low two bits).
func (r Rotation) Direction() uint8 {
	return uint8(r) & 3
}

// IsDiagonal reports whether the rotation lies in the diagonal band.
func (r Rotation) IsDiagonal() bool {
	return r >= 12
}

// Effective is the rotation stored with a resolved piece: non-diagonal rotations fold to 0-3.
func (r Rotation) Effective() Rotation {
	if r < 12 {
		return r & 3
	}

	return r
}

// Next is the previewing rotate step.
func (r Rotation) Next() Rotation {
	return (r + 1) & 3
}
