package xyplot

import (
	"math"

	"github.com/pkg/errors"
)

// ----------------------------------------------------------------------------
// Autoscaling

// Autoscaling controls how the data range of one axis becomes the visible
// range after an autozoom.
// Setting a range to a degenerate interval [f:f] will turn off autoscaling
// and fix the edge to f. A non-degenerate range [u:v] will allow autoscaling
// between u and v. A NaN value works like -Inf for u and +Inf for v.
type Autoscaling struct {
	// Expand determines how much the data range is expanded on each side:
	// Relative times its length plus Absolute.
	Expand struct {
		Absolute float64 `yaml:"absolute"`
		Relative float64 `yaml:"relative"`
	} `yaml:"expand"`

	MinRange Interval `yaml:"min_range"` // allowed range of the lower edge
	MaxRange Interval `yaml:"max_range"` // allowed range of the upper edge
}

// NewAutoscaling returns an autoscaling which shows exactly the data range.
func NewAutoscaling() Autoscaling {
	return Autoscaling{MinRange: unsetInterval(), MaxRange: unsetInterval()}
}

func have(x float64) bool {
	return !math.IsNaN(x)
}

// Fixed reports whether both edges are fixed.
func (a Autoscaling) Fixed() bool {
	return have(a.MinRange.Min) && a.MinRange.Min == a.MinRange.Max &&
		have(a.MaxRange.Min) && a.MaxRange.Min == a.MaxRange.Max
}

func (a Autoscaling) validate() error {
	for _, r := range []Interval{a.MinRange, a.MaxRange} {
		if r.Min > r.Max {
			return errors.Errorf("reversed range [%g:%g]", r.Min, r.Max)
		}
	}
	if a.Fixed() && a.MinRange.Min >= a.MaxRange.Min {
		return errors.Errorf("edges fixed to empty range [%g:%g]", a.MinRange.Min, a.MaxRange.Min)
	}
	if a.Expand.Relative < 0 || a.Expand.Absolute < 0 {
		return errors.New("negative expansion")
	}
	return nil
}

// Apply turns the data range into the visible range.
func (a Autoscaling) Apply(data Interval) Interval {
	ext := a.Expand.Relative*data.Len() + a.Expand.Absolute
	return Interval{
		Min: a.edge(a.MinRange, data.Min-ext),
		Max: a.edge(a.MaxRange, data.Max+ext),
	}
}

func (a Autoscaling) edge(r Interval, v float64) float64 {
	if have(r.Min) && r.Min == r.Max {
		// Degenerate range: the user has fixed this edge.
		return r.Min
	}
	// Clip autoscaling
	if have(r.Min) && v < r.Min {
		v = r.Min
	}
	if have(r.Max) && v > r.Max {
		v = r.Max
	}
	return v
}
