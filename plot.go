package xyplot

import (
	"github.com/vdobler/xyplot/data"
	"github.com/vdobler/xyplot/spline"
)

// A Plot is everything drawn: point series, function curves and splines.
// Of the splines at most one, Current, is editable.
type Plot struct {
	Series  []*data.PointSeries
	Curves  []*Curve
	Splines []*spline.Spline

	// Current is the spline edited by mouse gestures; nil disables editing.
	Current *spline.Spline

	Look Look
}

// NewPlot returns an empty plot with the default look.
func NewPlot() *Plot {
	return &Plot{Look: DefaultLook(10)}
}

// AddSeries adds point series to p.
func (p *Plot) AddSeries(s ...*data.PointSeries) { p.Series = append(p.Series, s...) }

// AddFunction adds f as a visible curve and returns the curve.
func (p *Plot) AddFunction(f Function) *Curve {
	c := NewCurve(f)
	p.Curves = append(p.Curves, c)
	return c
}

// AddSpline adds s to p.
func (p *Plot) AddSpline(s *spline.Spline) { p.Splines = append(p.Splines, s) }
