package spline

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/plotter"
)

func TestDegenerateSplines(t *testing.T) {
	for _, ip := range []Interpolation{CubicSpline, Linear, Polynomial} {
		s := New(ip, nil)
		assert.Equal(t, 0.0, s.Interpolate(3), "%s empty", ip)

		s.Add(1, 7)
		assert.Equal(t, 0.0, s.Interpolate(1), "%s single point", ip)
		assert.Equal(t, 0.0, s.Interpolate(-4), "%s single point", ip)

		// Two points are always linear.
		s.Add(3, 11)
		assert.InDelta(t, 9.0, s.Interpolate(2), 1e-12, "%s two points", ip)
		assert.InDelta(t, 8.0, s.Interpolate(1.5), 1e-12, "%s two points", ip)
	}
}

func TestClampedOutsidePoints(t *testing.T) {
	for _, ip := range []Interpolation{CubicSpline, Linear, Polynomial} {
		s := New(ip, plotter.XYs{{X: 0, Y: 1}, {X: 1, Y: 3}, {X: 2, Y: 2}, {X: 3, Y: 5}})
		assert.InDelta(t, 1.0, s.Interpolate(-10), 1e-12, "%s left", ip)
		assert.InDelta(t, 5.0, s.Interpolate(42), 1e-12, "%s right", ip)
	}
}

func TestInterpolationHitsControlPoints(t *testing.T) {
	xy := plotter.XYs{{X: -2, Y: 4}, {X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2.5, Y: -1}, {X: 4, Y: 3}}
	for _, ip := range []Interpolation{CubicSpline, Linear, Polynomial} {
		s := New(ip, xy)
		for _, p := range xy {
			assert.InDelta(t, p.Y, s.Interpolate(p.X), 1e-9, "%s at %g", ip, p.X)
		}
	}
}

func TestLinear(t *testing.T) {
	s := New(Linear, plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 4}})
	assert.InDelta(t, 0.5, s.Interpolate(0.5), 1e-12)
	assert.InDelta(t, 2.5, s.Interpolate(1.5), 1e-12)
}

func TestCubicSplineIsSmooth(t *testing.T) {
	s := New(CubicSpline, plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}, {X: 3, Y: 1}})
	// A natural cubic spline overshoots the control points: its
	// maximum lies left of x=1.
	assert.Greater(t, s.Interpolate(0.9), 1.0)

	// Continuous across the knot.
	assert.InDelta(t, s.Interpolate(1-1e-9), s.Interpolate(1+1e-9), 1e-6)
}

func TestPolynomial(t *testing.T) {
	cube := func(x float64) float64 { return x * x * x }
	var xy plotter.XYs
	for _, x := range []float64{-2, -1, 0, 1, 2, 3} {
		xy = append(xy, plotter.XY{X: x, Y: cube(x)})
	}
	s := New(Polynomial, xy)
	for _, x := range []float64{-1.5, -0.25, 0.5, 1.5, 2.75} {
		assert.InDelta(t, cube(x), s.Interpolate(x), 1e-9, "x=%g", x)
	}

	// Less than four points fall back to linear interpolation.
	s = New(Polynomial, plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 4}})
	assert.InDelta(t, 2.5, s.Interpolate(1.5), 1e-12)
}

func TestCacheIsInvalidated(t *testing.T) {
	s := New(Linear, plotter.XYs{{X: 0, Y: 0}, {X: 2, Y: 2}})
	require.InDelta(t, 1.0, s.Interpolate(1), 1e-12)

	s.Add(1, 5)
	assert.InDelta(t, 5.0, s.Interpolate(1), 1e-12)

	s.Remove(1)
	assert.InDelta(t, 1.0, s.Interpolate(1), 1e-12)

	require.True(t, s.Move(2, 2, 4))
	assert.InDelta(t, 2.0, s.Interpolate(1), 1e-12)

	s.Load(map[float64]float64{0: 10, 4: 10})
	assert.InDelta(t, 10.0, s.Interpolate(1), 1e-12)

	s.Interpolation = CubicSpline
	s.AddPoints(plotter.XYs{{X: 2, Y: 12}})
	assert.InDelta(t, 12.0, s.Interpolate(2), 1e-12)
}

func TestPointSet(t *testing.T) {
	s := New(CubicSpline, plotter.XYs{{X: 3, Y: 1}, {X: -1, Y: 2}, {X: 3, Y: 7}, {X: math.NaN(), Y: 0}})
	assert.Equal(t, []float64{-1, 3}, s.Keys())
	y, ok := s.Value(3)
	require.True(t, ok)
	assert.Equal(t, 7.0, y, "later points override")

	s.Add(3, 8)
	assert.Equal(t, 2, s.Len())
	y, _ = s.Value(3)
	assert.Equal(t, 8.0, y)

	assert.False(t, s.Remove(5))
	assert.True(t, s.Remove(-1))
	assert.False(t, s.Has(-1))
	assert.Equal(t, plotter.XYs{{X: 3, Y: 8}}, s.Points())
}

func TestMove(t *testing.T) {
	s := New(Linear, plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 0}})

	assert.False(t, s.Move(5, 6, 6), "no point at 5")
	assert.False(t, s.Move(0, 2, 3), "collision")
	assert.Equal(t, []float64{0, 1, 2}, s.Keys())

	assert.True(t, s.Move(1, 1, 9))
	y, _ := s.Value(1)
	assert.Equal(t, 9.0, y)

	assert.True(t, s.Move(0, 3, 3))
	assert.Equal(t, []float64{1, 2, 3}, s.Keys())
}

func TestBounds(t *testing.T) {
	s := New(Linear, nil)
	assert.Equal(t, 0.0, s.XMinimum())
	assert.Equal(t, 0.0, s.XMaximum())
	s.AddPoints(plotter.XYs{{X: 4, Y: 0}, {X: -3, Y: 1}, {X: 1, Y: 1}})
	assert.Equal(t, -3.0, s.XMinimum())
	assert.Equal(t, 4.0, s.XMaximum())
}

func TestParseInterpolation(t *testing.T) {
	for _, ip := range []Interpolation{CubicSpline, Linear, Polynomial} {
		got, ok := ParseInterpolation(ip.String())
		assert.True(t, ok)
		assert.Equal(t, ip, got)
	}
	_, ok := ParseInterpolation("bezier")
	assert.False(t, ok)
}

func TestFunctionView(t *testing.T) {
	s := New(Linear, plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 2}})
	assert.True(t, s.InDomain(-1e9))
	assert.Equal(t, s.Interpolate(0.25), s.Y(0.25))
}
