package xyplot

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Look controls how the axes and the interactive overlays are drawn.
// Series, curves and splines carry their own styles.
type Look struct {
	Background color.Color

	Axes    draw.LineStyle // zero lines and tick marks
	Subaxes draw.LineStyle // grid
	Text    draw.TextStyle // tick labels
	Zoom    draw.LineStyle // rubber-band rectangle

	// TickLength is the half length of a tick mark in pixels.
	TickLength float64

	// CurrentSpline replaces the dot pen of the current spline.
	CurrentSpline draw.LineStyle

	Hover struct {
		Ring   draw.LineStyle
		Radius vg.Length
		Label  draw.TextStyle
	}
}

// DefaultLook returns a Look with light axes and white text on black.
// The baseFontSize is the size of the tick labels.
func DefaultLook(baseFontSize vg.Length) Look {
	lk := Look{}
	lk.Background = color.Black

	lk.Axes.Color = color.Gray{0xc0}
	lk.Axes.Width = vg.Length(1)

	lk.Subaxes.Color = color.Gray{0x40}
	lk.Subaxes.Width = vg.Length(1)
	lk.Subaxes.Dashes = []vg.Length{1, 2}

	lk.Text = textStyle(color.White, baseFontSize)

	lk.Zoom.Color = color.RGBA{0xff, 0, 0, 0xff}
	lk.Zoom.Width = vg.Length(1)

	lk.TickLength = 5

	lk.CurrentSpline.Color = color.RGBA{0xff, 0xff, 0, 0xff}
	lk.CurrentSpline.Width = vg.Length(2)

	lk.Hover.Ring.Color = color.RGBA{0, 0xff, 0xff, 0xff}
	lk.Hover.Ring.Width = vg.Length(1)
	lk.Hover.Radius = 6
	lk.Hover.Label = textStyle(color.RGBA{0, 0xff, 0xff, 0xff}, baseFontSize)

	return lk
}

func textStyle(col color.Color, size vg.Length) draw.TextStyle {
	return draw.TextStyle{
		Color:   col,
		Font:    font.From(plot.DefaultFont, size),
		Handler: plot.DefaultTextHandler,
		XAlign:  draw.XLeft,
		YAlign:  draw.YTop,
	}
}
