package xyplot

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// niceSteps are the mantissas of all tick divisions.
var niceSteps = [...]float64{2.0, 2.5, 5.0, 10.0}

// maxTicks bounds the number of ticks per axis.
const maxTicks = 10000

// NearestNiceDivision returns the smallest value c*10^k with c in
// {2, 2.5, 5, 10} which is >= d. A d <= 0 or a non-finite d yields 1
// so that degenerate rectangles never loop.
func NearestNiceDivision(d float64) float64 {
	if !(d > 0) || math.IsInf(d, 0) {
		return 1.0
	}

	// Normalize d into (1,10]: an exact power of ten is its own
	// division (10*10^(k-1)).
	k := 0
	for d > 10.0 {
		d /= 10.0
		k++
	}
	for d <= 1.0 {
		d *= 10.0
		k--
	}
	decade := math.Pow10(k)
	for _, c := range niceSteps {
		if c >= d {
			return c * decade
		}
	}
	return decade
}

// TickValues returns n*div for every integer n != 0 with
// ceil(lo/div) <= n < ceil(hi/div). The zero line is drawn separately.
func TickValues(lo, hi, div float64) []float64 {
	if !(div > 0) || math.IsInf(div, 0) {
		return nil
	}
	first, last := math.Ceil(lo/div), math.Ceil(hi/div)
	if math.IsNaN(first) || math.IsNaN(last) || last-first > maxTicks {
		return nil
	}
	var values []float64
	for n := first; n < last; n++ {
		if n == 0 {
			continue
		}
		values = append(values, n*div)
	}
	return values
}

// FormatTick formats a tick value with six significant digits.
func FormatTick(v float64) string {
	if v == 0 {
		return "0" // no "-0"
	}
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// ----------------------------------------------------------------------------
// Planner

// A Tick is one tick mark of an axis.
type Tick struct {
	Value float64 // in real space
	Pixel float64 // column for x ticks, row for y ticks
	Label string

	// ShowLabel is false for ticks too close to the zero axis crossing.
	ShowLabel bool
}

// AxisPlan is the layout of both axes for one Mapper.
type AxisPlan struct {
	// ZeroX and ZeroY is the pixel position of the real origin, clamped
	// into the viewport.
	ZeroX, ZeroY float64

	XDiv, YDiv     float64
	XTicks, YTicks []Tick
}

// A Planner computes tick divisions and positions.
type Planner struct {
	MinPixelsX float64 // minimal pixel spacing of x ticks
	MinPixelsY float64 // minimal pixel spacing of y ticks

	// LabelClearance is the pixel distance from the zero axis crossing
	// within which tick labels are suppressed.
	LabelClearance float64
}

// DefaultPlanner returns the planner with 50px/40px minimal spacing and
// 30px label clearance.
func DefaultPlanner() Planner {
	return Planner{MinPixelsX: 50, MinPixelsY: 40, LabelClearance: 30}
}

// XDivision is the nice x tick spacing at the zoom level of m.
func (p Planner) XDivision(m Mapper) float64 {
	return NearestNiceDivision(m.PixelsToWidth(p.MinPixelsX))
}

// YDivision is the nice y tick spacing at the zoom level of m.
func (p Planner) YDivision(m Mapper) float64 {
	return NearestNiceDivision(m.PixelsToHeight(p.MinPixelsY))
}

// Plan lays out both axes. It returns the zero value if m is not valid.
func (p Planner) Plan(m Mapper) AxisPlan {
	if !m.Valid() {
		return AxisPlan{}
	}

	zx, zy := m.PointToPixel(0, 0)
	ap := AxisPlan{
		ZeroX: clamp(zx, 0, float64(m.View.Width-1)),
		ZeroY: clamp(zy, 0, float64(m.View.Height-1)),
		XDiv:  p.XDivision(m),
		YDiv:  p.YDivision(m),
	}

	for _, v := range TickValues(m.Rect.XMin, m.Rect.XMax, ap.XDiv) {
		px := m.XToPixel(v)
		ap.XTicks = append(ap.XTicks, Tick{
			Value:     v,
			Pixel:     px,
			Label:     FormatTick(v),
			ShowLabel: math.Abs(px-ap.ZeroX) > p.LabelClearance,
		})
	}
	for _, v := range TickValues(m.Rect.YMin, m.Rect.YMax, ap.YDiv) {
		py := m.YToPixel(v)
		ap.YTicks = append(ap.YTicks, Tick{
			Value:     v,
			Pixel:     py,
			Label:     FormatTick(v),
			ShowLabel: math.Abs(py-ap.ZeroY) > p.LabelClearance,
		})
	}
	return ap
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ----------------------------------------------------------------------------
// NiceTicks

// NiceTicks is a plot.Ticker placing ticks on the same {2,2.5,5,10}*10^k
// divisions as the interactive axes. Unlike the axes it includes zero.
type NiceTicks struct {
	// N is the approximate number of ticks. Zero means 5.
	N int
}

var _ plot.Ticker = NiceTicks{}

// Ticks implements plot.Ticker.
func (t NiceTicks) Ticks(min, max float64) []plot.Tick {
	n := t.N
	if n <= 0 {
		n = 5
	}
	if !(max > min) {
		return nil
	}
	div := NearestNiceDivision((max - min) / float64(n))
	first, last := math.Ceil(min/div), math.Floor(max/div)
	if last-first > maxTicks {
		return nil
	}
	var ticks []plot.Tick
	for k := first; k <= last; k++ {
		v := k * div
		ticks = append(ticks, plot.Tick{Value: v, Label: FormatTick(v)})
	}
	return ticks
}
