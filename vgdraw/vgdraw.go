// Package vgdraw executes xyplot render plans on gonum/plot canvases.
//
// One pixel of the plan is one vg.Point on the canvas. Image space has
// its origin top-left with y growing downwards, the canvas has y
// growing upwards; Draw flips rows accordingly.
package vgdraw

import (
	"image"
	"io"
	"math"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/vdobler/xyplot"
)

// Draw executes all instructions of rp in order on c.
func Draw(c draw.Canvas, rp *xyplot.RenderPlan) {
	if rp.Empty() {
		return
	}
	pt := func(p xyplot.Pixel) vg.Point {
		return vg.Point{X: c.Min.X + vg.Length(p.X), Y: c.Max.Y - vg.Length(p.Y)}
	}

	for _, in := range rp.Instructions {
		switch in.Kind {
		case xyplot.FillKind:
			if in.Fill == nil {
				continue
			}
			c.SetColor(in.Fill)
			c.Fill(c.Rectangle.Path())

		case xyplot.LineKind:
			if len(in.Points) < 2 || !stroked(in.Line) {
				continue
			}
			a, b := pt(in.Points[0]), pt(in.Points[1])
			c.StrokeLine2(in.Line, a.X, a.Y, b.X, b.Y)

		case xyplot.PolylineKind:
			if len(in.Points) < 2 || !stroked(in.Line) {
				continue
			}
			line := make([]vg.Point, len(in.Points))
			for i, p := range in.Points {
				line[i] = pt(p)
			}
			c.StrokeLines(in.Line, line)

		case xyplot.EllipseKind:
			if len(in.Points) < 1 || !(in.Radius > 0) {
				continue
			}
			path := circle(pt(in.Points[0]), vg.Length(in.Radius))
			if in.Fill != nil {
				c.SetColor(in.Fill)
				c.Fill(path)
			}
			if stroked(in.Line) {
				c.SetLineStyle(in.Line)
				c.Stroke(path)
			}

		case xyplot.RectKind:
			if len(in.Points) < 2 {
				continue
			}
			r := canonicRectangle(vg.Rectangle{Min: pt(in.Points[0]), Max: pt(in.Points[1])})
			if in.Fill != nil {
				c.SetColor(in.Fill)
				c.Fill(r.Path())
			}
			if stroked(in.Line) {
				c.SetLineStyle(in.Line)
				c.Stroke(r.Path())
			}

		case xyplot.TextKind:
			if len(in.Points) < 1 || in.Text == "" || in.TextStyle.Handler == nil {
				continue
			}
			c.FillText(in.TextStyle, pt(in.Points[0]), in.Text)
		}
	}
}

func stroked(sty draw.LineStyle) bool {
	return sty.Color != nil && sty.Width > 0
}

// canonicRectangle returns r with its Min point having smaller
// coordinates than its Max point.
func canonicRectangle(r vg.Rectangle) vg.Rectangle {
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

func circle(center vg.Point, r vg.Length) vg.Path {
	var p vg.Path
	p.Move(vg.Point{X: center.X + r, Y: center.Y})
	p.Arc(center, r, 0, 2*math.Pi)
	p.Close()
	return p
}

// ----------------------------------------------------------------------------
// Output

// Formats lists the output formats understood by Write.
var Formats = []string{"png", "jpg", "jpeg", "tif", "tiff", "svg", "pdf", "eps"}

// NewCanvas returns a canvas for format with one point per pixel of v.
func NewCanvas(format string, v xyplot.Viewport) (vg.CanvasWriterTo, error) {
	w, h := vg.Length(v.Width), vg.Length(v.Height)
	switch strings.ToLower(format) {
	case "png":
		return vgimg.PngCanvas{Canvas: raster(w, h)}, nil
	case "jpg", "jpeg":
		return vgimg.JpegCanvas{Canvas: raster(w, h)}, nil
	case "tif", "tiff":
		return vgimg.TiffCanvas{Canvas: raster(w, h)}, nil
	case "svg":
		return vgsvg.New(w, h), nil
	case "pdf":
		return vgpdf.New(w, h), nil
	case "eps":
		return vgeps.New(w, h), nil
	}
	return nil, errors.Errorf("unsupported format %q", format)
}

func raster(w, h vg.Length) *vgimg.Canvas {
	return vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(72))
}

// Write draws rp in the given format to out.
func Write(out io.Writer, format string, rp *xyplot.RenderPlan) error {
	if rp.View.IsNull() {
		return errors.Errorf("cannot draw into viewport %dx%d", rp.View.Width, rp.View.Height)
	}
	cw, err := NewCanvas(format, rp.View)
	if err != nil {
		return err
	}
	Draw(draw.New(cw), rp)
	if _, err := cw.WriteTo(out); err != nil {
		return errors.Wrapf(err, "writing %s", format)
	}
	return nil
}

// Image rasterizes rp.
func Image(rp *xyplot.RenderPlan) image.Image {
	c := raster(vg.Length(rp.View.Width), vg.Length(rp.View.Height))
	Draw(draw.New(c), rp)
	return c.Image()
}
