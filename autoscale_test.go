package xyplot

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var nan = math.NaN()

var autoscalingTests = []struct {
	rel, abs           float64
	minRange, maxRange Interval
	data, want         Interval
}{
	{0, 0, Interval{nan, nan}, Interval{nan, nan}, Interval{2, 6}, Interval{2, 6}},
	{0.25, 0, Interval{nan, nan}, Interval{nan, nan}, Interval{2, 6}, Interval{1, 7}},
	{0, 0.5, Interval{nan, nan}, Interval{nan, nan}, Interval{2, 6}, Interval{1.5, 6.5}},
	{0.25, 1, Interval{nan, nan}, Interval{nan, nan}, Interval{2, 6}, Interval{0, 8}},

	// Fixed edges.
	{0.25, 0, Interval{0, 0}, Interval{nan, nan}, Interval{2, 6}, Interval{0, 7}},
	{0.25, 0, Interval{nan, nan}, Interval{10, 10}, Interval{2, 6}, Interval{1, 10}},

	// Clipped edges.
	{0.25, 0, Interval{1.5, nan}, Interval{nan, 6.5}, Interval{2, 6}, Interval{1.5, 6.5}},
	{0.25, 0, Interval{nan, 0.5}, Interval{7.5, nan}, Interval{2, 6}, Interval{0.5, 7.5}},
	{0, 0, Interval{-5, 5}, Interval{-5, 5}, Interval{2, 6}, Interval{2, 5}},
}

func TestAutoscaling(t *testing.T) {
	for i, tc := range autoscalingTests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a := NewAutoscaling()
			a.Expand.Relative, a.Expand.Absolute = tc.rel, tc.abs
			a.MinRange, a.MaxRange = tc.minRange, tc.maxRange
			require.NoError(t, a.validate())
			assert.Equal(t, tc.want, a.Apply(tc.data))
		})
	}
}

func TestAutoscalingValidate(t *testing.T) {
	assert.Error(t, Autoscaling{}.validate(), "zero value fixes both edges to 0")

	a := NewAutoscaling()
	a.MinRange = Interval{3, 1}
	assert.Error(t, a.validate())

	a = NewAutoscaling()
	a.Expand.Relative = -0.1
	assert.Error(t, a.validate())

	a = NewAutoscaling()
	a.MinRange, a.MaxRange = Interval{0, 0}, Interval{1, 1}
	assert.True(t, a.Fixed())
	assert.NoError(t, a.validate())
}

func TestAutoZoomWithAutoscaling(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AutoscaleX.Expand.Relative = 0.1
	cfg.AutoscaleY.MinRange = Interval{0, 0}
	c, err := NewController(NewPlot(), cfg)
	require.NoError(t, err)
	c.Plot.AddSeries(series(1, 2, 11, 4))

	require.True(t, c.AutoZoom())
	assertRect(t, RealRect{0, 12, 0, 4}, c.Rect())
}
