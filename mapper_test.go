package xyplot

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var transformationTests = []struct {
	a, b    float64 // from
	u, v    float64 // to
	x, want float64
}{
	{10, 20, 10, 20, 12, 12},
	{10, 20, 100, 200, 12, 120},
	{3, 5, 0, 1, 3, 0},
	{3, 5, 0, 1, 4, 0.5},
	{3, 5, 0, 1, 5, 1},
	{3, 5, 1, 0, 3, 1}, // reversed target
	{3, 5, 1, 0, 4.5, 0.25},
	{-10, 10, 0, 599, 0, 299.5},
}

func TestLinearTrans(t *testing.T) {
	for i, tc := range transformationTests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			from, to := Interval{tc.a, tc.b}, Interval{tc.u, tc.v}
			got := LinearTrans.Trans(from, to, tc.x)
			assert.InDelta(t, tc.want, got, 1e-12)
			assert.InDelta(t, tc.x, LinearTrans.Inverse(from, to, got), 1e-12)
		})
	}
}

func TestMapperCorners(t *testing.T) {
	m := NewMapper(DefaultRect(), Viewport{600, 600})
	require.True(t, m.Valid())

	px, py := m.PointToPixel(-10, 10)
	assert.Equal(t, 0.0, px)
	assert.Equal(t, 0.0, py)

	px, py = m.PointToPixel(10, -10)
	assert.Equal(t, 599.0, px)
	assert.Equal(t, 599.0, py)

	px, py = m.PointToPixel(0, 0)
	assert.Equal(t, 299.5, px)
	assert.Equal(t, 299.5, py)

	// y grows downwards.
	assert.Less(t, m.YToPixel(5), m.YToPixel(-5))
}

func TestMapperRoundTrip(t *testing.T) {
	for _, m := range []Mapper{
		NewMapper(DefaultRect(), Viewport{600, 600}),
		NewMapper(RealRect{-1e-6, 3e-6, 1e5, 1e5 + 7}, Viewport{1024, 33}),
		NewMapper(RealRect{2, 3, -40, 90}, Viewport{2, 2}),
	} {
		for _, p := range [][2]float64{{0, 0}, {1.25, -3}, {1e5, 2}, {-7, 1e5 + 3}} {
			px, py := m.PointToPixel(p[0], p[1])
			x, y := m.PixelToPoint(px, py)
			assert.InEpsilon(t, nonzero(p[0]), nonzero(x), 1e-9, "x of %v in %s", p, m.Rect)
			assert.InEpsilon(t, nonzero(p[1]), nonzero(y), 1e-9, "y of %v in %s", p, m.Rect)
		}
	}
}

// nonzero shifts values away from zero for relative comparisons.
func nonzero(v float64) float64 {
	if math.Abs(v) < 1e-3 {
		return v + 1
	}
	return v
}

func TestMapperScaleConsistency(t *testing.T) {
	m := NewMapper(RealRect{-3, 17, 2, 4}, Viewport{801, 201})
	// Pure scale factors agree with the point mapping.
	assert.InDelta(t, m.XToPixel(5)-m.XToPixel(1), m.WidthToPixels(4), 1e-9)
	assert.InDelta(t, m.YToPixel(2)-m.YToPixel(3), m.HeightToPixels(1), 1e-9)
	assert.InDelta(t, 4.0, m.PixelsToWidth(m.WidthToPixels(4)), 1e-12)
	assert.InDelta(t, 0.5, m.PixelsToHeight(m.HeightToPixels(0.5)), 1e-12)
	assert.Equal(t, 40.0, m.WidthToPixels(1))
	assert.Equal(t, 100.0, m.HeightToPixels(1))
}

func TestMapperRects(t *testing.T) {
	m := NewMapper(DefaultRect(), Viewport{601, 401})
	x0, y0, x1, y1 := m.RectToPixels(RealRect{-5, 5, -5, 5})
	assert.Equal(t, []float64{150, 100, 450, 300}, []float64{x0, y0, x1, y1})

	want := RealRect{-5, 5, -5, 5}
	assert.Equal(t, want, m.PixelsToRect(150, 100, 450, 300))
	assert.Equal(t, want, m.PixelsToRect(450, 300, 150, 100))
	assert.Equal(t, want, m.PixelsToRect(150, 300, 450, 100))
}

func TestMapperInvalid(t *testing.T) {
	assert.False(t, NewMapper(RealRect{0, 0, 0, 1}, Viewport{100, 100}).Valid())
	assert.False(t, NewMapper(DefaultRect(), Viewport{1, 100}).Valid())

	m := NewMapper(RealRect{1, 1, 0, 1}, Viewport{100, 100})
	px := m.XToPixel(1)
	assert.True(t, math.IsNaN(px) || math.IsInf(px, 0))
}
