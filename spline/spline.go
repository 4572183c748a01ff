// Package spline provides editable interpolated curves.
//
// A Spline is a set of control points with unique, ascending x values.
// The interpolator is built lazily on the first evaluation after a
// change and cached until the next change.
package spline

import (
	"image/color"
	"math"
	"sort"

	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Interpolation selects how a Spline is evaluated between its points.
type Interpolation int

const (
	CubicSpline Interpolation = iota // natural cubic spline
	Linear                           // piecewise linear
	Polynomial                       // cubic Lagrange polynomial through the 4 nearest points
)

func (ip Interpolation) String() string {
	switch ip {
	case CubicSpline:
		return "spline"
	case Linear:
		return "linear"
	case Polynomial:
		return "polynomial"
	}
	return "unknown"
}

// ParseInterpolation is the inverse of Interpolation.String.
func ParseInterpolation(s string) (Interpolation, bool) {
	for _, ip := range []Interpolation{CubicSpline, Linear, Polynomial} {
		if ip.String() == s {
			return ip, true
		}
	}
	return CubicSpline, false
}

// A Spline is an interpolated curve through control points.
// The zero value is an empty, invisible cubic spline.
type Spline struct {
	Name string

	Interpolation Interpolation

	// Line draws the curve, the dot styles its control points.
	Line      draw.LineStyle
	DotRadius vg.Length
	DotPen    draw.LineStyle
	DotFill   color.Color

	Visible bool

	xs, ys []float64

	// predictor is nil whenever the points changed since it was built.
	predictor interp.Predictor
}

// New returns a visible spline of the given interpolation through the
// points of xy. Later points override earlier ones with the same x.
func New(ip Interpolation, xy plotter.XYer) *Spline {
	s := &Spline{
		Interpolation: ip,
		Line:          draw.LineStyle{Color: color.White, Width: 1},
		DotRadius:     3,
		DotPen:        draw.LineStyle{Color: color.White, Width: 1},
		Visible:       true,
	}
	if xy != nil {
		for i := 0; i < xy.Len(); i++ {
			s.set(xy.XY(i))
		}
	}
	return s
}

// Len returns the number of control points.
func (s *Spline) Len() int { return len(s.xs) }

// XY returns the i-th control point in ascending x order.
func (s *Spline) XY(i int) (x, y float64) { return s.xs[i], s.ys[i] }

// Points returns a copy of the control points in ascending x order.
func (s *Spline) Points() plotter.XYs {
	xy := make(plotter.XYs, len(s.xs))
	for i := range xy {
		xy[i].X, xy[i].Y = s.xs[i], s.ys[i]
	}
	return xy
}

// Keys returns a copy of the x values of the control points.
func (s *Spline) Keys() []float64 {
	return append([]float64(nil), s.xs...)
}

func (s *Spline) search(x float64) (int, bool) {
	i := sort.SearchFloat64s(s.xs, x)
	return i, i < len(s.xs) && s.xs[i] == x
}

// Has reports whether s has a control point at x.
func (s *Spline) Has(x float64) bool {
	_, ok := s.search(x)
	return ok
}

// Value returns the y of the control point at x.
func (s *Spline) Value(x float64) (float64, bool) {
	if i, ok := s.search(x); ok {
		return s.ys[i], true
	}
	return 0, false
}

func (s *Spline) set(x, y float64) {
	if math.IsNaN(x) {
		return
	}
	i, ok := s.search(x)
	if ok {
		s.ys[i] = y
		return
	}
	s.xs = append(s.xs, 0)
	s.ys = append(s.ys, 0)
	copy(s.xs[i+1:], s.xs[i:])
	copy(s.ys[i+1:], s.ys[i:])
	s.xs[i], s.ys[i] = x, y
}

// Add sets the control point at x to y, overwriting an existing point
// with the same x.
func (s *Spline) Add(x, y float64) {
	s.set(x, y)
	s.Respline()
}

// AddPoints adds all points of xy.
func (s *Spline) AddPoints(xy plotter.XYer) {
	for i := 0; i < xy.Len(); i++ {
		s.set(xy.XY(i))
	}
	s.Respline()
}

// Load replaces all control points by the entries of points.
func (s *Spline) Load(points map[float64]float64) {
	s.xs, s.ys = s.xs[:0], s.ys[:0]
	for x, y := range points {
		s.set(x, y)
	}
	s.Respline()
}

// Remove deletes the control point at x and reports whether there was one.
func (s *Spline) Remove(x float64) bool {
	i, ok := s.search(x)
	if !ok {
		return false
	}
	s.xs = append(s.xs[:i], s.xs[i+1:]...)
	s.ys = append(s.ys[:i], s.ys[i+1:]...)
	s.Respline()
	return true
}

// Move moves the control point at from to (x,y). It refuses, returning
// false, if there is no point at from or if a different point already
// sits at x.
func (s *Spline) Move(from, x, y float64) bool {
	i, ok := s.search(from)
	if !ok {
		return false
	}
	if x == from {
		s.ys[i] = y
		s.Respline()
		return true
	}
	if s.Has(x) {
		return false
	}
	s.xs = append(s.xs[:i], s.xs[i+1:]...)
	s.ys = append(s.ys[:i], s.ys[i+1:]...)
	s.set(x, y)
	s.Respline()
	return true
}

// Respline drops the cached interpolator.
func (s *Spline) Respline() {
	s.predictor = nil
}

// XMinimum returns the smallest x of all control points or 0 for an
// empty spline.
func (s *Spline) XMinimum() float64 {
	if len(s.xs) == 0 {
		return 0
	}
	return s.xs[0]
}

// XMaximum returns the largest x of all control points or 0 for an
// empty spline.
func (s *Spline) XMaximum() float64 {
	if len(s.xs) == 0 {
		return 0
	}
	return s.xs[len(s.xs)-1]
}

// Interpolate evaluates s at x.
//
// A spline with less than two points is 0 everywhere. Two points are
// always interpolated linearly. Outside of its points a spline continues
// with the value of its first and last point.
func (s *Spline) Interpolate(x float64) float64 {
	if len(s.xs) <= 1 {
		return 0
	}
	if s.predictor == nil {
		s.predictor = s.build()
	}
	return s.predictor.Predict(x)
}

// build returns a predictor fitted to copies of the current points.
func (s *Spline) build() interp.Predictor {
	xs := append([]float64(nil), s.xs...)
	ys := append([]float64(nil), s.ys...)

	if len(xs) > 2 {
		switch s.Interpolation {
		case CubicSpline:
			var nc interp.NaturalCubic
			if err := nc.Fit(xs, ys); err == nil {
				return &nc
			}
		case Polynomial:
			if len(xs) >= 4 {
				return lagrange4{xs: xs, ys: ys}
			}
		}
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return constant(0)
	}
	return &pl
}

type constant float64

func (c constant) Predict(float64) float64 { return float64(c) }

// lagrange4 evaluates the cubic polynomial through the four points
// around x.
type lagrange4 struct {
	xs, ys []float64
}

func (l lagrange4) Predict(x float64) float64 {
	n := len(l.xs)
	if x <= l.xs[0] {
		return l.ys[0]
	}
	if x >= l.xs[n-1] {
		return l.ys[n-1]
	}

	// i is the first point > x, shifted so that [i-2,i+1] is in range.
	i := sort.Search(n, func(k int) bool { return l.xs[k] > x })
	if i < 2 {
		i = 2
	}
	if i > n-2 {
		i = n - 2
	}
	xs, ys := l.xs[i-2:i+2], l.ys[i-2:i+2]

	y := 0.0
	for j := range xs {
		w := 1.0
		for k := range xs {
			if k != j {
				w *= (x - xs[k]) / (xs[j] - xs[k])
			}
		}
		y += ys[j] * w
	}
	return y
}

// Y implements xyplot.Function.
func (s *Spline) Y(x float64) float64 { return s.Interpolate(x) }

// InDomain implements xyplot.Function: a spline is defined everywhere.
func (s *Spline) InDomain(x float64) bool { return true }
