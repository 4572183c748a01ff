package xyplot

import (
	"fmt"
	"math"
)

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// set determined.
type Interval struct {
	Min, Max float64
}

func unsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include x. NaN values are ignored.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min <= v) {
			i.Min = v
		}
		if !(i.Max >= v) {
			i.Max = v
		}
	}
}

// Equal reports whether i and j are the same interval, treating unset
// (NaN) edges as equal to each other.
func (i Interval) Equal(j Interval) bool {
	if math.IsNaN(i.Min) != math.IsNaN(j.Min) || math.IsNaN(i.Max) != math.IsNaN(j.Max) {
		return false
	}
	return (math.IsNaN(i.Min) || i.Min == j.Min) && (math.IsNaN(i.Max) || i.Max == j.Max)
}

// Len is Max-Min.
func (i Interval) Len() float64 { return i.Max - i.Min }

// ----------------------------------------------------------------------------
// RealRect

// RealRect is the visible rectangle of real space.
// A RealRect is a value: zoom and pan replace it as a whole.
type RealRect struct {
	XMin float64 `yaml:"xmin"`
	XMax float64 `yaml:"xmax"`
	YMin float64 `yaml:"ymin"`
	YMax float64 `yaml:"ymax"`
}

// DefaultRect is the rectangle [-10,10]x[-10,10] a new Controller starts with.
func DefaultRect() RealRect {
	return RealRect{XMin: -10, XMax: 10, YMin: -10, YMax: 10}
}

// CanonRect returns the rectangle spanned by the two corners (x0,y0) and
// (x1,y1) with XMin <= XMax and YMin <= YMax.
func CanonRect(x0, y0, x1, y1 float64) RealRect {
	return RealRect{
		XMin: math.Min(x0, x1), XMax: math.Max(x0, x1),
		YMin: math.Min(y0, y1), YMax: math.Max(y0, y1),
	}
}

func (r RealRect) Width() float64  { return r.XMax - r.XMin }
func (r RealRect) Height() float64 { return r.YMax - r.YMin }

// X and Y return the horizontal and vertical extent of r.
func (r RealRect) X() Interval { return Interval{r.XMin, r.XMax} }
func (r RealRect) Y() Interval { return Interval{r.YMin, r.YMax} }

// IsInvalid reports whether r cannot be mapped: its width or height is
// zero, negative, infinite or NaN.
func (r RealRect) IsInvalid() bool {
	w, h := r.Width(), r.Height()
	return !(w > 0) || !(h > 0) || math.IsInf(w, 0) || math.IsInf(h, 0)
}

// Center returns the center of r.
func (r RealRect) Center() (x, y float64) {
	return (r.XMin + r.XMax) / 2, (r.YMin + r.YMax) / 2
}

// Contains reports whether (x,y) lies inside r, edges included.
func (r RealRect) Contains(x, y float64) bool {
	return x >= r.XMin && x <= r.XMax && y >= r.YMin && y <= r.YMax
}

// Translate returns r moved by (dx,dy).
func (r RealRect) Translate(dx, dy float64) RealRect {
	return RealRect{r.XMin + dx, r.XMax + dx, r.YMin + dy, r.YMax + dy}
}

// Rescale scales r by k around the fixed point (cx,cy):
// every edge e becomes c + k*(e-c). Factors k < 1 zoom in, k > 1 zoom out.
func (r RealRect) Rescale(k, cx, cy float64) RealRect {
	return RealRect{
		XMin: cx + k*(r.XMin-cx),
		XMax: cx + k*(r.XMax-cx),
		YMin: cy + k*(r.YMin-cy),
		YMax: cy + k*(r.YMax-cy),
	}
}

// Relative scales r by k around its own center.
func (r RealRect) Relative(k float64) RealRect {
	cx, cy := r.Center()
	return r.Rescale(k, cx, cy)
}

// CenterOn returns a rectangle of the same size as r centered on (x,y).
func (r RealRect) CenterOn(x, y float64) RealRect {
	w, h := r.Width()/2, r.Height()/2
	return RealRect{x - w, x + w, y - h, y + h}
}

func (r RealRect) String() string {
	return fmt.Sprintf("[%g:%g]x[%g:%g]", r.XMin, r.XMax, r.YMin, r.YMax)
}

// ----------------------------------------------------------------------------
// Viewport

// Viewport is the pixel size of the drawing area.
type Viewport struct {
	Width, Height int
}

// IsNull reports whether v is too small to map anything onto: the last
// pixel column and row must differ from the first one.
func (v Viewport) IsNull() bool {
	return v.Width < 2 || v.Height < 2
}
