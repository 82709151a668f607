package coord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotate(t *testing.T) {
	t.Parallel()

	v := Pos2{X: -32, Y: 64}
	tests := []struct {
		name string
		dir  uint8
		want Pos2
	}{
		{name: "dir0", dir: 0, want: Pos2{X: -32, Y: 64}},
		{name: "dir1", dir: 1, want: Pos2{X: 64, Y: 32}},
		{name: "dir2", dir: 2, want: Pos2{X: 32, Y: -64}},
		{name: "dir3", dir: 3, want: Pos2{X: -64, Y: -32}},
		{name: "dir5_masks", dir: 5, want: Pos2{X: 64, Y: 32}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Rotate(v, tt.dir))
		})
	}
}

func TestRotateFullTurn(t *testing.T) {
	t.Parallel()

	v := Pos2{X: 96, Y: -32}
	got := v
	for range 4 {
		got = Rotate(got, 1)
	}
	assert.Equal(t, v, got, "four quarter turns")
}

func TestManhattanDistance(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 10, ManhattanDistance(Point{X: 3, Y: -4}, Point{X: -1, Y: 2}))
	assert.Zero(t, ManhattanDistance(Point{X: 7, Y: 7}, Point{X: 7, Y: 7}))
}

func TestTileAligned(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Pos2{X: 64, Y: 32}, Pos2{X: 95, Y: 33}.TileAligned())
}
