// Package data contains the point series shown by an xyplot.
package data

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A PointSeries is an ordered sequence of points drawn as dots and,
// optionally, connected by straight lines in insertion order.
type PointSeries struct {
	Name string

	points plotter.XYs

	// Line is used to connect consecutive points. A nil Color
	// draws no connecting line.
	Line draw.LineStyle

	// DotRadius is the radius of the dot markers; 0 draws no dots.
	DotRadius vg.Length
	DotPen    draw.LineStyle
	DotFill   color.Color

	Visible bool
}

// NewPointSeries returns a visible series of the given points with light
// gray dots of radius 2 and no connecting line.
func NewPointSeries(xy plotter.XYer) *PointSeries {
	s := &PointSeries{
		DotRadius: 2,
		DotPen:    draw.LineStyle{Color: color.Gray{0xd3}, Width: 1},
		DotFill:   color.Gray{0xd3},
		Visible:   true,
	}
	if xy != nil {
		s.points = make(plotter.XYs, xy.Len())
		for i := range s.points {
			s.points[i].X, s.points[i].Y = xy.XY(i)
		}
	}
	return s
}

// Len implements plotter.XYer.
func (s *PointSeries) Len() int { return len(s.points) }

// XY implements plotter.XYer.
func (s *PointSeries) XY(i int) (x, y float64) { return s.points[i].X, s.points[i].Y }

// Points returns a copy of the points of s.
func (s *PointSeries) Points() plotter.XYs {
	return append(plotter.XYs(nil), s.points...)
}

// Append adds the point (x,y) at the end of s.
func (s *PointSeries) Append(x, y float64) {
	s.points = append(s.points, plotter.XY{X: x, Y: y})
}

// Clear removes all points from s.
func (s *PointSeries) Clear() { s.points = s.points[:0] }

// HasLine reports whether consecutive points are connected.
func (s *PointSeries) HasLine() bool {
	return s.Line.Color != nil && s.Line.Width > 0
}

// Range returns the minimum and maximum x and y values of s ignoring NaNs.
// An empty series yields +Inf for the minima and -Inf for the maxima.
func Range(xy plotter.XYer) (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	ymin, ymax = math.Inf(1), math.Inf(-1)
	for i := 0; i < xy.Len(); i++ {
		x, y := xy.XY(i)
		if !math.IsNaN(x) {
			xmin, xmax = math.Min(xmin, x), math.Max(xmax, x)
		}
		if !math.IsNaN(y) {
			ymin, ymax = math.Min(ymin, y), math.Max(ymax, y)
		}
	}
	return xmin, xmax, ymin, ymax
}
