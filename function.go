package xyplot

import (
	"image/color"

	"gonum.org/v1/plot/vg/draw"
)

// A Function is a curve y = f(x) which may be undefined for some x.
type Function interface {
	// Y evaluates the function at x.
	Y(x float64) float64

	// InDomain reports whether the function is defined at x.
	InDomain(x float64) bool
}

// Func adapts an ordinary function to the Function interface.
type Func struct {
	F func(x float64) float64

	// Domain restricts F; nil means F is defined everywhere.
	Domain func(x float64) bool
}

func (f Func) Y(x float64) float64 { return f.F(x) }

func (f Func) InDomain(x float64) bool {
	return f.Domain == nil || f.Domain(x)
}

// Curve is a Function drawn in a plot.
type Curve struct {
	Function
	Line    draw.LineStyle
	Visible bool
}

// NewCurve returns a visible curve of f drawn in white.
func NewCurve(f Function) *Curve {
	return &Curve{
		Function: f,
		Line:     draw.LineStyle{Color: color.White, Width: 1},
		Visible:  true,
	}
}
