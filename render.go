package xyplot

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
)

// ----------------------------------------------------------------------------
// RenderPlan

// Layer orders the instructions of a RenderPlan from back to front.
type Layer int

const (
	BackgroundLayer Layer = iota
	GridLayer
	TickLayer
	ZeroAxesLayer
	SeriesLineLayer
	SeriesDotLayer
	FunctionLayer
	SplineLayer
	SplineMarkerLayer
	LabelLayer
	ZoomRectLayer
	HoverLayer
)

var layerNames = []string{"background", "grid", "ticks", "zero-axes",
	"series-lines", "series-dots", "functions", "splines", "spline-markers",
	"labels", "zoom-rect", "hover"}

func (l Layer) String() string {
	if l < 0 || int(l) >= len(layerNames) {
		return fmt.Sprintf("Layer(%d)", int(l))
	}
	return layerNames[l]
}

// Kind is the drawing primitive of an Instruction.
type Kind int

const (
	FillKind     Kind = iota // fill the whole viewport with Fill
	LineKind                 // line from Points[0] to Points[1]
	PolylineKind             // open path through Points
	EllipseKind              // circle of Radius around Points[0]
	RectKind                 // rectangle with corners Points[0] and Points[1]
	TextKind                 // Text at Points[0]
)

// Pixel is a point in image space.
type Pixel struct{ X, Y float64 }

// An Instruction is one drawing operation in image space.
type Instruction struct {
	Layer  Layer
	Kind   Kind
	Points []Pixel
	Radius float64

	Line draw.LineStyle // outline
	Fill color.Color    // interior, nil for none

	Text      string
	TextStyle draw.TextStyle
}

// A RenderPlan is the complete, ordered list of drawing instructions of
// one frame. It is always rebuilt from scratch.
type RenderPlan struct {
	View         Viewport
	Rect         RealRect
	Instructions []Instruction
}

func (rp *RenderPlan) add(in Instruction) {
	rp.Instructions = append(rp.Instructions, in)
}

// Layer returns the instructions of layer l in drawing order.
func (rp *RenderPlan) Layer(l Layer) []Instruction {
	var ins []Instruction
	for _, in := range rp.Instructions {
		if in.Layer == l {
			ins = append(ins, in)
		}
	}
	return ins
}

// Empty reports whether rp draws nothing.
func (rp *RenderPlan) Empty() bool { return rp == nil || len(rp.Instructions) == 0 }

// clone returns a copy of rp whose instruction list may be appended to.
func (rp *RenderPlan) clone() *RenderPlan {
	c := *rp
	c.Instructions = append([]Instruction(nil), rp.Instructions...)
	return &c
}

// ----------------------------------------------------------------------------
// Assembly

// A Renderer assembles RenderPlans.
type Renderer struct {
	Planner Planner

	// TraceStep is the pixel stride used to sample function curves.
	TraceStep float64
}

// DefaultRenderer returns a renderer with the default planner sampling
// functions every 1.5 pixels.
func DefaultRenderer() Renderer {
	return Renderer{Planner: DefaultPlanner(), TraceStep: 1.5}
}

// Build assembles the plan of p in m. An invalid mapper yields an empty
// plan: nothing is drawn.
func (r Renderer) Build(p *Plot, m Mapper) *RenderPlan {
	rp := &RenderPlan{View: m.View, Rect: m.Rect}
	if !m.Valid() {
		return rp
	}
	lk := p.Look
	w, h := float64(m.View.Width-1), float64(m.View.Height-1)

	rp.add(Instruction{Layer: BackgroundLayer, Kind: FillKind, Fill: lk.Background})

	ap := r.Planner.Plan(m)
	r.axes(rp, lk, ap, w, h)

	for _, s := range p.Series {
		if s == nil || !s.Visible || !s.HasLine() {
			continue
		}
		for _, seg := range segments(s.Len(), func(i int) (float64, float64, bool) {
			px, py := m.PointToPixel(s.XY(i))
			return px, py, true
		}) {
			rp.add(Instruction{Layer: SeriesLineLayer, Kind: PolylineKind, Points: seg, Line: s.Line})
		}
	}
	for _, s := range p.Series {
		if s == nil || !s.Visible || s.DotRadius <= 0 {
			continue
		}
		r.dots(rp, SeriesDotLayer, m, s, float64(s.DotRadius), s.DotPen, s.DotFill)
	}

	for _, c := range p.Curves {
		if c == nil || !c.Visible || c.Function == nil {
			continue
		}
		for _, seg := range r.Trace(c.Function, m) {
			rp.add(Instruction{Layer: FunctionLayer, Kind: PolylineKind, Points: seg, Line: c.Line})
		}
	}
	for _, s := range p.Splines {
		if s == nil || !s.Visible {
			continue
		}
		for _, seg := range r.Trace(s, m) {
			rp.add(Instruction{Layer: SplineLayer, Kind: PolylineKind, Points: seg, Line: s.Line})
		}
	}
	for _, s := range p.Splines {
		if s == nil || !s.Visible || s.DotRadius <= 0 {
			continue
		}
		pen, radius := s.DotPen, float64(s.DotRadius)
		if s == p.Current {
			pen, radius = lk.CurrentSpline, radius+1
		}
		r.dots(rp, SplineMarkerLayer, m, s, radius, pen, s.DotFill)
	}

	r.labels(rp, lk, ap, w, h)
	return rp
}

func (r Renderer) axes(rp *RenderPlan, lk Look, ap AxisPlan, w, h float64) {
	line := func(l Layer, sty draw.LineStyle, x0, y0, x1, y1 float64) {
		rp.add(Instruction{Layer: l, Kind: LineKind, Points: []Pixel{{x0, y0}, {x1, y1}}, Line: sty})
	}
	for _, t := range ap.XTicks {
		line(GridLayer, lk.Subaxes, t.Pixel, h, t.Pixel, 0)
	}
	for _, t := range ap.YTicks {
		line(GridLayer, lk.Subaxes, 0, t.Pixel, w, t.Pixel)
	}
	tl := lk.TickLength
	for _, t := range ap.XTicks {
		line(TickLayer, lk.Axes, t.Pixel, ap.ZeroY-tl, t.Pixel, ap.ZeroY+tl)
	}
	for _, t := range ap.YTicks {
		line(TickLayer, lk.Axes, ap.ZeroX-tl, t.Pixel, ap.ZeroX+tl, t.Pixel)
	}
	line(ZeroAxesLayer, lk.Axes, 0, ap.ZeroY, w, ap.ZeroY)
	line(ZeroAxesLayer, lk.Axes, ap.ZeroX, 0, ap.ZeroX, h)
}

// labels places x labels below the x axis if it is in the upper half of
// the viewport, above otherwise, and y labels right of the y axis if it
// is in the left half, left of it otherwise.
func (r Renderer) labels(rp *RenderPlan, lk Look, ap AxisPlan, w, h float64) {
	gap := lk.TickLength + 2

	xsty := lk.Text
	xsty.XAlign = draw.XCenter
	y := ap.ZeroY + gap
	xsty.YAlign = draw.YTop
	if ap.ZeroY >= h/2 {
		y = ap.ZeroY - gap
		xsty.YAlign = draw.YBottom
	}
	for _, t := range ap.XTicks {
		if !t.ShowLabel {
			continue
		}
		rp.add(Instruction{Layer: LabelLayer, Kind: TextKind, Points: []Pixel{{t.Pixel, y}}, Text: t.Label, TextStyle: xsty})
	}

	ysty := lk.Text
	ysty.YAlign = draw.YCenter
	x := ap.ZeroX + gap
	ysty.XAlign = draw.XLeft
	if ap.ZeroX >= w/2 {
		x = ap.ZeroX - gap
		ysty.XAlign = draw.XRight
	}
	for _, t := range ap.YTicks {
		if !t.ShowLabel {
			continue
		}
		rp.add(Instruction{Layer: LabelLayer, Kind: TextKind, Points: []Pixel{{x, t.Pixel}}, Text: t.Label, TextStyle: ysty})
	}
}

func (r Renderer) dots(rp *RenderPlan, l Layer, m Mapper, xy plotter.XYer, radius float64, pen draw.LineStyle, fill color.Color) {
	for i := 0; i < xy.Len(); i++ {
		px, py := m.PointToPixel(xy.XY(i))
		if !finite(px) || !finite(py) {
			continue
		}
		rp.add(Instruction{Layer: l, Kind: EllipseKind, Points: []Pixel{{px, py}}, Radius: radius, Line: pen, Fill: fill})
	}
}

// Trace samples f every TraceStep pixels across the viewport. The curve
// is split wherever f leaves its domain or evaluates to NaN or Inf.
// Segments of a single sample are dropped.
func (r Renderer) Trace(f Function, m Mapper) [][]Pixel {
	if !m.Valid() {
		return nil
	}
	step := r.TraceStep
	if !(step > 0) {
		step = 1.5
	}
	n := int(math.Ceil(float64(m.View.Width-1)/step)) + 1
	return segments(n, func(i int) (float64, float64, bool) {
		px := math.Min(float64(i)*step, float64(m.View.Width-1))
		x := m.PixelToX(px)
		if !f.InDomain(x) {
			return 0, 0, false
		}
		return px, m.YToPixel(f.Y(x)), true
	})
}

// segments collects the n samples of at into runs of consecutive valid
// and finite pixels.
func segments(n int, at func(i int) (px, py float64, ok bool)) [][]Pixel {
	var segs [][]Pixel
	var cur []Pixel
	flush := func() {
		if len(cur) > 1 {
			segs = append(segs, cur)
		}
		cur = nil
	}
	for i := 0; i < n; i++ {
		px, py, ok := at(i)
		if !ok || !finite(px) || !finite(py) {
			flush()
			continue
		}
		cur = append(cur, Pixel{px, py})
	}
	flush()
	return segs
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
