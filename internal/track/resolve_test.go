package track

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		piece  Piece
		grad   Gradient
		rot    Rotation
		ok     bool
		id     ID
		effRot Rotation
	}{
		{name: "straight_level", piece: Straight, grad: Level, rot: 0, ok: true, id: 0},
		{name: "straight_rot3", piece: Straight, grad: Level, rot: 3, ok: true, id: 0, effRot: 3},
		{name: "straight_up", piece: Straight, grad: SlopeUp, rot: 1, ok: true, id: 14, effRot: 1},
		{name: "straight_down", piece: Straight, grad: SlopeDown, rot: 2, ok: true, id: 15, effRot: 2},
		{name: "straight_steep_up", piece: Straight, grad: SteepSlopeUp, rot: 0, ok: true, id: 16},
		{name: "straight_steep_down", piece: Straight, grad: SteepSlopeDown, rot: 0, ok: true, id: 17},
		{name: "straight_band1", piece: Straight, grad: Level, rot: 5, ok: true, id: 26, effRot: 1},
		{name: "straight_band1_steep", piece: Straight, grad: SteepSlopeUp, rot: 6, ok: true, id: 34, effRot: 2},
		{name: "straight_band1_slope_rejected", piece: Straight, grad: SlopeUp, rot: 6},
		{name: "straight_band2", piece: Straight, grad: Level, rot: 9, ok: true, id: 27, effRot: 1},
		{name: "straight_band2_steep_down", piece: Straight, grad: SteepSlopeDown, rot: 11, ok: true, id: 37, effRot: 3},
		{name: "straight_diagonal", piece: Straight, grad: Level, rot: 13, ok: true, id: 1, effRot: 13},
		{name: "straight_diagonal_slope", piece: Straight, grad: SlopeUp, rot: 13},
		{name: "lhc_vs", piece: LeftCurveVerySmall, grad: Level, rot: 2, ok: true, id: 2, effRot: 2},
		{name: "lhc_vs_band1", piece: LeftCurveVerySmall, grad: Level, rot: 5, ok: true, id: 28, effRot: 1},
		{name: "lhc_vs_band2", piece: LeftCurveVerySmall, grad: Level, rot: 8, ok: true, id: 29},
		{name: "lhc_vs_diagonal", piece: LeftCurveVerySmall, grad: Level, rot: 12},
		{name: "rhc_vs_band1", piece: RightCurveVerySmall, grad: Level, rot: 7, ok: true, id: 30, effRot: 3},
		{name: "rhc_vs_band2", piece: RightCurveVerySmall, grad: Level, rot: 10, ok: true, id: 31, effRot: 2},
		{name: "lhc_small", piece: LeftCurveSmall, grad: Level, rot: 0, ok: true, id: 4},
		{name: "rhc_small", piece: RightCurveSmall, grad: Level, rot: 1, ok: true, id: 5, effRot: 1},
		{name: "lhc_small_band1", piece: LeftCurveSmall, grad: Level, rot: 4},
		{name: "lhc", piece: LeftCurve, grad: Level, rot: 0, ok: true, id: 6},
		{name: "rhc", piece: RightCurve, grad: Level, rot: 0, ok: true, id: 7},
		{name: "rhc_band2", piece: RightCurve, grad: Level, rot: 8},
		{name: "lhc_large", piece: LeftCurveLarge, grad: Level, rot: 3, ok: true, id: 8, effRot: 3},
		{name: "lhc_large_diagonal", piece: LeftCurveLarge, grad: Level, rot: 14, ok: true, id: 10, effRot: 14},
		{name: "rhc_large_diagonal", piece: RightCurveLarge, grad: Level, rot: 15, ok: true, id: 11, effRot: 15},
		{name: "rhc_large_band1", piece: RightCurveLarge, grad: Level, rot: 4},
		{name: "sbend_left", piece: SBendLeft, grad: Level, rot: 0, ok: true, id: 12},
		{name: "sbend_left_band2", piece: SBendLeft, grad: Level, rot: 9, ok: true, id: 33, effRot: 1},
		{name: "sbend_left_band1", piece: SBendLeft, grad: Level, rot: 5},
		{name: "sbend_right", piece: SBendRight, grad: Level, rot: 0, ok: true, id: 13},
		{name: "sbend_right_band1", piece: SBendRight, grad: Level, rot: 6, ok: true, id: 32, effRot: 2},
		{name: "sbend_right_band2", piece: SBendRight, grad: Level, rot: 8},
		{name: "sbend_dual", piece: SBendToDualTrack, grad: Level, rot: 0, ok: true, id: 38},
		{name: "sbend_dual_band1", piece: SBendToDualTrack, grad: Level, rot: 4, ok: true, id: 40},
		{name: "sbend_dual_band2", piece: SBendToDualTrack, grad: Level, rot: 8},
		{name: "sbend_single", piece: SBendToSingleTrack, grad: Level, rot: 1, ok: true, id: 39, effRot: 1},
		{name: "sbend_single_band2", piece: SBendToSingleTrack, grad: Level, rot: 11, ok: true, id: 41, effRot: 3},
		{name: "turnaround", piece: Turnaround, grad: Level, rot: 0, ok: true, id: 42},
		{name: "turnaround_band2", piece: Turnaround, grad: Level, rot: 8, ok: true, id: 43},
		{name: "turnaround_band1", piece: Turnaround, grad: Level, rot: 4},
		{name: "turnaround_diagonal", piece: Turnaround, grad: Level, rot: 12},
		{name: "none", piece: PieceNone, grad: Level, rot: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Resolve(tt.piece, tt.grad, tt.rot, false)
			require.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.id, got.ID)
			assert.Equal(t, tt.effRot, got.Rotation)
		})
	}
}

func TestResolveRoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		piece Piece
		grad  Gradient
		rot   Rotation
		ok    bool
		id    ID
	}{
		{name: "straight", piece: Straight, grad: Level, rot: 2, ok: true, id: 0},
		{name: "straight_up", piece: Straight, grad: SlopeUp, rot: 0, ok: true, id: 5},
		{name: "straight_down", piece: Straight, grad: SlopeDown, rot: 0, ok: true, id: 6},
		{name: "straight_steep_up", piece: Straight, grad: SteepSlopeUp, rot: 0, ok: true, id: 7},
		{name: "straight_steep_down", piece: Straight, grad: SteepSlopeDown, rot: 0, ok: true, id: 8},
		{name: "straight_band1", piece: Straight, grad: Level, rot: 4},
		{name: "lhc_vs", piece: LeftCurveVerySmall, grad: Level, rot: 1, ok: true, id: 1},
		{name: "rhc_vs", piece: RightCurveVerySmall, grad: Level, rot: 3, ok: true, id: 2},
		{name: "lhc_small", piece: LeftCurveSmall, grad: Level, rot: 0, ok: true, id: 3},
		{name: "rhc_small", piece: RightCurveSmall, grad: Level, rot: 0, ok: true, id: 4},
		{name: "rhc_small_slope", piece: RightCurveSmall, grad: SlopeUp, rot: 0},
		{name: "lhc_vs_band1", piece: LeftCurveVerySmall, grad: Level, rot: 5},
		{name: "normal_curve", piece: LeftCurve, grad: Level, rot: 0},
		{name: "large_curve", piece: RightCurveLarge, grad: Level, rot: 0},
		{name: "sbend", piece: SBendLeft, grad: Level, rot: 0},
		{name: "sbend_dual", piece: SBendToDualTrack, grad: Level, rot: 0},
		{name: "turnaround", piece: Turnaround, grad: Level, rot: 0, ok: true, id: 9},
		{name: "turnaround_band2", piece: Turnaround, grad: Level, rot: 9, ok: true, id: 9},
		{name: "turnaround_diagonal", piece: Turnaround, grad: Level, rot: 12},
		{name: "turnaround_slope", piece: Turnaround, grad: SlopeDown, rot: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Resolve(tt.piece, tt.grad, tt.rot, true)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.id, got.ID)
			}
		})
	}
}

func TestResolveDeterministic(t *testing.T) {
	t.Parallel()

	for _, road := range []bool{false, true} {
		for _, p := range append(append([]Piece{}, Pieces...), PieceNone) {
			for _, g := range Gradients {
				for r := Rotation(0); r < 16; r++ {
					a, okA := Resolve(p, g, r, road)
					b, okB := Resolve(p, g, r, road)
					require.Equal(t, a, b, "road=%v %v/%v/%d", road, p, g, r)
					require.Equal(t, okA, okB, "road=%v %v/%v/%d", road, p, g, r)
				}
			}
		}
	}
}

func TestRailCurvesRejectSlopes(t *testing.T) {
	t.Parallel()

	for _, p := range Pieces {
		if p == Straight {
			continue
		}
		for _, g := range Gradients {
			if g == Level {
				continue
			}
			for r := Rotation(0); r < 16; r++ {
				res, ok := Resolve(p, g, r, false)
				require.False(t, ok, "%v/%v/%d resolved to %d", p, g, r, res.ID)
			}
		}
	}
}

func TestTurnaroundRotationRange(t *testing.T) {
	t.Parallel()

	for _, road := range []bool{false, true} {
		for r := Rotation(12); r < 16; r++ {
			_, ok := Resolve(Turnaround, Level, r, road)
			assert.False(t, ok, "road=%v rotation=%d", road, r)
		}
		_, ok := Resolve(Turnaround, Level, 0, road)
		assert.True(t, ok, "road=%v rotation=0", road)
	}
}

func TestRoadNeverExceedsRailTable(t *testing.T) {
	t.Parallel()

	for _, p := range Pieces {
		for _, g := range Gradients {
			for r := Rotation(0); r < 16; r++ {
				if _, ok := Resolve(p, g, r, true); ok && p != Turnaround {
					_, railOK := Resolve(p, g, r, false)
					assert.True(t, railOK || g.IsSloped(), "%v/%v/%d valid for road but not rail", p, g, r)
				}
			}
		}
	}
}

func TestRailSlopedCurves(t *testing.T) {
	t.Parallel()

	plain := Rail{Caps: SmallCurve}
	sloped := Rail{Caps: SmallCurve | SlopedCurve}

	tests := []struct {
		piece Piece
		grad  Gradient
		id    ID
	}{
		{piece: LeftCurveSmall, grad: SlopeUp, id: 18},
		{piece: RightCurveSmall, grad: SlopeUp, id: 19},
		{piece: LeftCurveSmall, grad: SlopeDown, id: 20},
		{piece: RightCurveSmall, grad: SlopeDown, id: 21},
		{piece: LeftCurveSmall, grad: SteepSlopeUp, id: 22},
		{piece: RightCurveSmall, grad: SteepSlopeUp, id: 23},
		{piece: LeftCurveSmall, grad: SteepSlopeDown, id: 24},
		{piece: RightCurveSmall, grad: SteepSlopeDown, id: 25},
	}

	for _, tt := range tests {
		_, ok := plain.Resolve(tt.piece, tt.grad, 0)
		assert.False(t, ok, "plain rail %v/%v", tt.piece, tt.grad)

		got, ok := sloped.Resolve(tt.piece, tt.grad, 0)
		require.True(t, ok, "sloped rail %v/%v", tt.piece, tt.grad)
		assert.Equal(t, tt.id, got.ID)
		assert.True(t, got.Traits.Has(SlopedCurve), "%v", got.Traits.Names())
	}

	_, ok := sloped.Resolve(LeftCurve, SlopeUp, 0)
	assert.False(t, ok, "normal curve stays level")
}
