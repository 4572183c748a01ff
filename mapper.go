package xyplot

// A Transformation bundles two functions Trans and Inverse together.
// Trans maps x from the interval from onto the interval to, Inverse
// maps a value of to back onto from.
type Transformation struct {
	Name    string
	Trans   func(from, to Interval, x float64) float64
	Inverse func(from, to Interval, y float64) float64
}

// LinearTrans implements a linear mapping of from to to. A reversed
// target interval (to.Min > to.Max) flips the direction.
var LinearTrans = Transformation{
	Name: "Linear",
	Trans: func(from, to Interval, x float64) float64 {
		return to.Min + (x-from.Min)*(to.Max-to.Min)/(from.Max-from.Min)
	},
	Inverse: func(from, to Interval, y float64) float64 {
		return from.Min + (y-to.Min)*(from.Max-from.Min)/(to.Max-to.Min)
	},
}

// ----------------------------------------------------------------------------
// Mapper

// A Mapper maps between real space and the pixels of a viewport.
//
// Real xMin maps to column 0 and xMax to column Width-1, real yMax maps
// to row 0 and yMin to row Height-1. A Mapper of an invalid rectangle or
// a null viewport produces NaN or Inf; check Valid before drawing.
type Mapper struct {
	Rect RealRect
	View Viewport
}

// NewMapper returns the mapper of r onto v.
func NewMapper(r RealRect, v Viewport) Mapper {
	return Mapper{Rect: r, View: v}
}

// Valid reports whether m can be used for drawing.
func (m Mapper) Valid() bool {
	return !m.Rect.IsInvalid() && !m.View.IsNull()
}

// The pixel extent along x and y. The y extent is reversed.
func (m Mapper) px() Interval { return Interval{0, float64(m.View.Width - 1)} }
func (m Mapper) py() Interval { return Interval{float64(m.View.Height - 1), 0} }

func (m Mapper) XToPixel(x float64) float64  { return LinearTrans.Trans(m.Rect.X(), m.px(), x) }
func (m Mapper) PixelToX(px float64) float64 { return LinearTrans.Inverse(m.Rect.X(), m.px(), px) }
func (m Mapper) YToPixel(y float64) float64  { return LinearTrans.Trans(m.Rect.Y(), m.py(), y) }
func (m Mapper) PixelToY(py float64) float64 { return LinearTrans.Inverse(m.Rect.Y(), m.py(), py) }

// PointToPixel maps the real point (x,y) to the pixel (px,py).
func (m Mapper) PointToPixel(x, y float64) (px, py float64) {
	return m.XToPixel(x), m.YToPixel(y)
}

// PixelToPoint is the inverse of PointToPixel.
func (m Mapper) PixelToPoint(px, py float64) (x, y float64) {
	return m.PixelToX(px), m.PixelToY(py)
}

// WidthToPixels converts a real width into a number of pixels.
// The conversions of widths and heights are pure scale factors.
func (m Mapper) WidthToPixels(w float64) float64 {
	return w * float64(m.View.Width-1) / m.Rect.Width()
}

// PixelsToWidth converts a number of pixels into a real width.
func (m Mapper) PixelsToWidth(p float64) float64 {
	return p * m.Rect.Width() / float64(m.View.Width-1)
}

// HeightToPixels converts a real height into a number of pixels.
func (m Mapper) HeightToPixels(h float64) float64 {
	return h * float64(m.View.Height-1) / m.Rect.Height()
}

// PixelsToHeight converts a number of pixels into a real height.
func (m Mapper) PixelsToHeight(p float64) float64 {
	return p * m.Rect.Height() / float64(m.View.Height-1)
}

// RectToPixels returns the top-left and bottom-right pixel corners of r.
func (m Mapper) RectToPixels(r RealRect) (x0, y0, x1, y1 float64) {
	x0, y0 = m.PointToPixel(r.XMin, r.YMax)
	x1, y1 = m.PointToPixel(r.XMax, r.YMin)
	return x0, y0, x1, y1
}

// PixelsToRect returns the real rectangle spanned by two pixel corners
// given in any order. The upper pixel row becomes YMax.
func (m Mapper) PixelsToRect(px0, py0, px1, py1 float64) RealRect {
	x0, y0 := m.PixelToPoint(px0, py0)
	x1, y1 := m.PixelToPoint(px1, py1)
	return CanonRect(x0, y0, x1, y1)
}
