package stitcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

type HoleTest struct {
	Index int
	X, Y  float64
}

func TestHoleToXYCircle(t *testing.T) {
	g, err := NewGeometry(Shape{Holes: 4, Sides: 1})
	require.NoError(t, err)

	tests := []HoleTest{
		{0, 10, 0},
		{1, 0, 10},
		{2, -10, 0},
		{3, 0, -10},
		{4, 10, 0},
	}
	for _, test := range tests {
		p := g.HoleToXY(test.Index, 10)
		require.InDelta(t, test.X, p.X, 1e-9, "hole %d", test.Index)
		require.InDelta(t, test.Y, p.Y, 1e-9, "hole %d", test.Index)
	}
}

func TestHoleToXYCenter(t *testing.T) {
	g, err := NewGeometry(Shape{Holes: 8, Sides: 1, CenterX: 100, CenterY: 50})
	require.NoError(t, err)

	for i, p := range g.Outline(20) {
		require.InDelta(t, 20, p.Distance(g.Center()), 1e-9, "hole %d", i)
	}
}

func TestZeroPointinessIsCircle(t *testing.T) {
	for _, n := range []int{1, 3, 5} {
		for _, m := range []float64{0, 0.5, 2} {
			g, err := NewGeometry(Shape{Holes: 24, Sides: n, PointsPerSide: m})
			require.NoError(t, err)
			for i := 0; i < 24; i++ {
				require.InDelta(t, 1, g.Scale(i), 1e-12, "n=%d m=%g hole %d", n, m, i)
			}
		}
	}
}

func TestPointyShape(t *testing.T) {
	g, err := NewGeometry(Shape{Holes: 36, K: 0.5, Sides: 3})
	require.NoError(t, err)

	require.InDelta(t, 1, g.Scale(0), 1e-12)
	require.InDelta(t, 1, g.Scale(6), 1e-12)
	require.InDelta(t, math.Cos(math.Pi/18), g.Scale(3), 1e-12)
}

func TestHoleAngle(t *testing.T) {
	require.Equal(t, 0.0, HoleAngle(0, 16))
	require.Equal(t, 90.0, HoleAngle(4, 16))
	require.Equal(t, 360.0, HoleAngle(16, 16))
}

func TestGeometryErrors(t *testing.T) {
	_, err := NewGeometry(Shape{Holes: 16, K: 1.5, Sides: 1})
	require.ErrorIs(t, err, ErrDomain)

	_, err = NewGeometry(Shape{Holes: 4, Sides: 1, PointsPerSide: 1})
	require.ErrorIs(t, err, ErrDomain)
	var de *DomainError
	require.ErrorAs(t, err, &de)
	require.Equal(t, 0, de.Hole)

	_, err = NewGeometry(Shape{Holes: 0, Sides: 1})
	require.ErrorIs(t, err, ErrConfiguration)

	_, err = NewGeometry(Shape{Holes: 4, Sides: 0})
	require.ErrorIs(t, err, ErrConfiguration)
}
