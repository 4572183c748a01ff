package xyplot

import (
	"fmt"
	"math"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/xyplot/spline"
)

// Log is the logger of all Controllers which do not set their own.
var Log logrus.FieldLogger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	return l
}

// ----------------------------------------------------------------------------
// Events

// State is the gesture a Controller is in. Only one gesture is active
// at a time.
type State int

const (
	Idle State = iota
	Panning
	RubberBandZooming
	DraggingSplinePoint
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Panning:
		return "panning"
	case RubberBandZooming:
		return "rubber-band"
	case DraggingSplinePoint:
		return "dragging"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Button is a set of mouse buttons.
type Button uint8

const (
	NoButton    Button = 0
	LeftButton  Button = 1
	RightButton Button = 2
)

func (b Button) String() string {
	switch b {
	case NoButton:
		return "none"
	case LeftButton:
		return "left"
	case RightButton:
		return "right"
	case LeftButton | RightButton:
		return "left+right"
	}
	return fmt.Sprintf("Button(%d)", int(b))
}

// ParseButton is the inverse of Button.String for single buttons.
func ParseButton(s string) (Button, error) {
	switch s {
	case "left":
		return LeftButton, nil
	case "right":
		return RightButton, nil
	}
	return NoButton, errors.Errorf("unknown button %q", s)
}

// Modifier is a set of keyboard modifiers held during a press.
type Modifier uint8

const (
	NoModifier      Modifier = 0
	ControlModifier Modifier = 1
	ShiftModifier   Modifier = 2
)

// Key is a key understood by Controller.Key.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeyPlus
	KeyMinus
	KeyHome
)

var keyNames = []string{"left", "right", "up", "down", "plus", "minus", "home"}

func (k Key) String() string {
	if k < 0 || int(k) >= len(keyNames) {
		return fmt.Sprintf("Key(%d)", int(k))
	}
	return keyNames[k]
}

// ParseKey is the inverse of Key.String.
func ParseKey(s string) (Key, error) {
	for i, n := range keyNames {
		if n == s {
			return Key(i), nil
		}
	}
	return 0, errors.Errorf("unknown key %q", s)
}

// ----------------------------------------------------------------------------
// Notifications

// A Listener is notified by a Controller. All calls happen synchronously
// on the goroutine driving the Controller.
type Listener interface {
	// ZoomChanged is called once a series of zoom changes has settled.
	ZoomChanged(r RealRect)

	// MousePosition reports the real position under the mouse.
	MousePosition(x, y float64)

	// MouseClick reports a press and release of b without movement.
	MouseClick(x, y float64, b Button)

	// SplineChanged is called after an edit of s is complete.
	SplineChanged(s *spline.Spline)
}

// ListenerFuncs implements Listener with optional functions.
type ListenerFuncs struct {
	OnZoomChanged   func(r RealRect)
	OnMousePosition func(x, y float64)
	OnMouseClick    func(x, y float64, b Button)
	OnSplineChanged func(s *spline.Spline)
}

func (l ListenerFuncs) ZoomChanged(r RealRect) {
	if l.OnZoomChanged != nil {
		l.OnZoomChanged(r)
	}
}

func (l ListenerFuncs) MousePosition(x, y float64) {
	if l.OnMousePosition != nil {
		l.OnMousePosition(x, y)
	}
}

func (l ListenerFuncs) MouseClick(x, y float64, b Button) {
	if l.OnMouseClick != nil {
		l.OnMouseClick(x, y, b)
	}
}

func (l ListenerFuncs) SplineChanged(s *spline.Spline) {
	if l.OnSplineChanged != nil {
		l.OnSplineChanged(s)
	}
}

// ----------------------------------------------------------------------------
// Overlays

// ZoomRectGesture is the rubber band of a running zoom, in pixels.
type ZoomRectGesture struct {
	OX, OY float64 // where the button went down
	X, Y   float64 // current corner
}

// Corners returns the canonical corners: (x0,y0) is top-left.
func (g ZoomRectGesture) Corners() (x0, y0, x1, y1 float64) {
	return math.Min(g.OX, g.X), math.Min(g.OY, g.Y), math.Max(g.OX, g.X), math.Max(g.OY, g.Y)
}

// Empty reports whether the rubber band has no area.
func (g ZoomRectGesture) Empty() bool {
	return g.OX == g.X || g.OY == g.Y
}

// HoverHighlight marks the point under the mouse.
type HoverHighlight struct {
	Pixel Pixel
	X, Y  float64
	Label string
}

// ----------------------------------------------------------------------------
// Controller

// A Controller translates pointer, wheel, keyboard and resize events
// into changes of the visible rectangle and of the current spline, and
// produces the RenderPlan of each frame.
//
// A Controller is not safe for concurrent use.
type Controller struct {
	Plot     *Plot
	Renderer Renderer
	Flags    Flags
	Listener Listener
	Log      logrus.FieldLogger

	// Clock returns the current time; it drives the coalescing of
	// zoom notifications.
	Clock func() time.Time

	cfg  Config
	rect RealRect
	view Viewport

	state        State
	lastX, lastY float64
	click        Button // pressed and not moved since

	gesture   *ZoomRectGesture
	dragKey   float64
	dragMoved bool
	hover     *HoverHighlight

	dirty, overlayDirty bool
	base                *RenderPlan

	zoomPending bool
	zoomDue     time.Time
}

// NewController returns an idle controller of p configured by cfg.
// The look of p is replaced by the one configured in cfg.
func NewController(p *Plot, cfg Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	flags, _ := ParseFlags(cfg.Flags)
	lk, _ := cfg.Look()
	if p == nil {
		p = NewPlot()
	}
	p.Look = lk
	return &Controller{
		Plot:     p,
		Renderer: cfg.Renderer(),
		Flags:    flags,
		Listener: ListenerFuncs{},
		Log:      Log,
		Clock:    time.Now,
		cfg:      cfg,
		rect:     cfg.Zoom,
		dirty:    true,
	}, nil
}

func (c *Controller) State() State       { return c.state }
func (c *Controller) Rect() RealRect     { return c.rect }
func (c *Controller) Viewport() Viewport { return c.view }

// Mapper returns the current mapping between real space and the viewport.
func (c *Controller) Mapper() Mapper { return NewMapper(c.rect, c.view) }

// Gesture returns the running rubber band, if any.
func (c *Controller) Gesture() (ZoomRectGesture, bool) {
	if c.gesture == nil {
		return ZoomRectGesture{}, false
	}
	return *c.gesture, true
}

// Hover returns the highlighted point, if any.
func (c *Controller) Hover() (HoverHighlight, bool) {
	if c.hover == nil {
		return HoverHighlight{}, false
	}
	return *c.hover, true
}

// MarkDirty requests a new frame, e.g. after the plot was modified.
func (c *Controller) MarkDirty() { c.dirty = true }

func (c *Controller) setState(s State) {
	if s == c.state {
		return
	}
	c.Log.WithFields(logrus.Fields{"from": c.state, "to": s}).Debug("gesture")
	c.state = s
}

// ----------------------------------------------------------------------------
// Zoom operations

// SetZoom makes r the visible rectangle. An invalid r is rejected and
// SetZoom reports false.
func (c *Controller) SetZoom(r RealRect) bool {
	if r.IsInvalid() {
		c.Log.WithField("rect", r).Debug("rejected zoom")
		return false
	}
	if r == c.rect {
		return true
	}
	c.rect = r
	c.dirty = true
	c.refreshHover()
	if c.Flags.Has(SendZoomChanged) {
		c.zoomPending = true
		c.zoomDue = c.Clock().Add(c.cfg.ZoomSignalDelay)
	}
	return true
}

// SetXMin, SetXMax, SetYMin and SetYMax change a single edge of the
// visible rectangle. Like SetZoom they reject an invalid result.
func (c *Controller) SetXMin(v float64) bool {
	r := c.rect
	r.XMin = v
	return c.SetZoom(r)
}

func (c *Controller) SetXMax(v float64) bool {
	r := c.rect
	r.XMax = v
	return c.SetZoom(r)
}

func (c *Controller) SetYMin(v float64) bool {
	r := c.rect
	r.YMin = v
	return c.SetZoom(r)
}

func (c *Controller) SetYMax(v float64) bool {
	r := c.rect
	r.YMax = v
	return c.SetZoom(r)
}

// RelativeZoom scales the visible rectangle by k around its center.
func (c *Controller) RelativeZoom(k float64) bool {
	return c.SetZoom(c.rect.Relative(k))
}

// FocusOn recenters the visible rectangle on (x,y) keeping its size.
func (c *Controller) FocusOn(x, y float64) bool {
	return c.SetZoom(c.rect.CenterOn(x, y))
}

// AutoZoom fits the visible rectangle to all points of all series,
// autoscaled as configured. It does nothing and reports false if the
// bounds are degenerate.
func (c *Controller) AutoZoom() bool {
	r, ok := ComputeBounds(c.Plot.Series...)
	if !ok {
		c.Log.Debug("autozoom: degenerate bounds")
		return false
	}
	x, y := c.cfg.AutoscaleX.Apply(r.X()), c.cfg.AutoscaleY.Apply(r.Y())
	return c.SetZoom(RealRect{XMin: x.Min, XMax: x.Max, YMin: y.Min, YMax: y.Max})
}

// ----------------------------------------------------------------------------
// Event handling

// Resize sets the pixel size of the viewport.
func (c *Controller) Resize(width, height int) {
	v := Viewport{width, height}
	if v == c.view {
		return
	}
	c.view = v
	c.refreshHover()
	if c.Flags.Has(RegraphOnResize) {
		c.dirty = true
	}
}

// Press handles a mouse button going down at pixel (px,py).
func (c *Controller) Press(b Button, px, py float64, mods Modifier) {
	c.lastX, c.lastY = px, py
	c.click = b
	if c.state != Idle {
		return
	}
	c.clearHover()

	switch b {
	case LeftButton:
		if c.editSpline(px, py, mods) {
			return
		}
		c.setState(Panning)
	case RightButton:
		c.gesture = &ZoomRectGesture{OX: px, OY: py, X: px, Y: py}
		c.overlayDirty = true
		c.setState(RubberBandZooming)
	}
}

// editSpline handles a left press on the current spline: control-click
// adds or removes a point, a press on a marker starts dragging it.
func (c *Controller) editSpline(px, py float64, mods Modifier) bool {
	s := c.Plot.Current
	m := c.Mapper()
	if s == nil || mods&ShiftModifier != 0 || !m.Valid() {
		return false
	}
	key, onMarker := c.pick(s, px, py)

	if mods&ControlModifier != 0 {
		if onMarker {
			s.Remove(key)
		} else {
			s.Add(m.PixelToPoint(px, py))
		}
		c.Log.WithFields(logrus.Fields{"spline": s.Name, "points": s.Len()}).Debug("spline edited")
		c.dirty = true
		c.Listener.SplineChanged(s)
		return true
	}

	if !onMarker {
		return false
	}
	c.dragKey, c.dragMoved = key, false
	c.setState(DraggingSplinePoint)
	return true
}

// Move handles the mouse moving to (px,py) with buttons held.
func (c *Controller) Move(px, py float64, buttons Button) {
	switch c.state {
	case Panning:
		m := c.Mapper()
		if m.Valid() {
			dx := -m.PixelsToWidth(px - c.lastX)
			dy := m.PixelsToHeight(py - c.lastY)
			c.SetZoom(c.rect.Translate(dx, dy))
		}
	case RubberBandZooming:
		c.gesture.X, c.gesture.Y = px, py
		c.overlayDirty = true
	case DraggingSplinePoint:
		c.drag(px, py)
	case Idle:
		if buttons == NoButton && c.Flags.Has(ShowPointPosition) {
			c.updateHover(px, py)
		}
	}

	if px != c.lastX || py != c.lastY {
		c.click = NoButton
	}
	c.lastX, c.lastY = px, py

	if c.Flags.Has(SendMouseMove) {
		if m := c.Mapper(); m.Valid() {
			c.Listener.MousePosition(m.PixelToPoint(px, py))
		}
	}
}

func (c *Controller) drag(px, py float64) {
	s := c.Plot.Current
	m := c.Mapper()
	if s == nil || !m.Valid() {
		return
	}
	x, y := m.PixelToPoint(px, py)
	if !s.Move(c.dragKey, x, y) {
		c.Log.WithFields(logrus.Fields{"from": c.dragKey, "to": x}).Debug("spline point collision")
		return
	}
	c.dragKey = x
	c.dragMoved = true
	c.dirty = true
}

// Release handles mouse button b going up at (px,py). A release away
// from the last known position first moves there.
func (c *Controller) Release(b Button, px, py float64) {
	if px != c.lastX || py != c.lastY {
		c.Move(px, py, b)
	}
	if c.click != NoButton && c.click == b && c.Flags.Has(SendMouseMove) {
		if m := c.Mapper(); m.Valid() {
			x, y := m.PixelToPoint(px, py)
			c.Listener.MouseClick(x, y, b)
		}
	}
	c.click = NoButton

	switch {
	case b == LeftButton && c.state == Panning:
		c.setState(Idle)
		c.dirty = true
	case b == LeftButton && c.state == DraggingSplinePoint:
		c.setState(Idle)
		if c.dragMoved && c.Plot.Current != nil {
			c.Listener.SplineChanged(c.Plot.Current)
		}
		c.dragMoved = false
		c.dirty = true
	case b == RightButton && c.state == RubberBandZooming:
		g := *c.gesture
		g.X, g.Y = px, py
		c.gesture = nil
		c.setState(Idle)
		if !g.Empty() {
			if m := c.Mapper(); m.Valid() {
				c.SetZoom(m.PixelsToRect(g.Corners()))
			}
		}
		c.dirty = true
	}
}

// Wheel zooms by WheelBase^(delta/WheelNotch) keeping the real point
// under (px,py) fixed. Positive deltas zoom in.
func (c *Controller) Wheel(delta, px, py float64) {
	m := c.Mapper()
	if !m.Valid() || delta == 0 {
		return
	}
	k := math.Pow(c.cfg.WheelBase, delta/c.cfg.WheelNotch)
	x, y := m.PixelToPoint(px, py)
	c.SetZoom(c.rect.Rescale(k, x, y))
}

// DoubleClick handles a double click of b at (px,py).
func (c *Controller) DoubleClick(b Button, px, py float64) {
	if b != RightButton || !c.Flags.Has(AutoZoomOnDoubleClick) {
		return
	}
	if c.AutoZoom() {
		c.RelativeZoom(c.cfg.AutoZoomMargin)
	}
}

// Key handles a key press and reports whether k was understood.
func (c *Controller) Key(k Key) bool {
	w, h := c.rect.Width()*c.cfg.PanStep, c.rect.Height()*c.cfg.PanStep
	switch k {
	case KeyLeft:
		c.SetZoom(c.rect.Translate(-w, 0))
	case KeyRight:
		c.SetZoom(c.rect.Translate(w, 0))
	case KeyUp:
		c.SetZoom(c.rect.Translate(0, h))
	case KeyDown:
		c.SetZoom(c.rect.Translate(0, -h))
	case KeyPlus:
		c.RelativeZoom(c.cfg.ZoomIn)
	case KeyMinus:
		c.RelativeZoom(c.cfg.ZoomOut)
	case KeyHome:
		c.AutoZoom()
	default:
		return false
	}
	return true
}

// ----------------------------------------------------------------------------
// Picking

// pick returns the x of the control point of s nearest to (px,py)
// within the hover tolerance.
func (c *Controller) pick(s *spline.Spline, px, py float64) (float64, bool) {
	i, _ := c.nearest(s, px, py, math.Inf(1))
	if i < 0 {
		return 0, false
	}
	x, _ := s.XY(i)
	return x, true
}

// nearest returns the index of the point of xy closest to (px,py) by
// squared pixel distance inside the tolerance box, or -1. Only points
// strictly closer than best are considered.
func (c *Controller) nearest(xy plotter.XYer, px, py, best float64) (int, float64) {
	m := c.Mapper()
	tol := c.cfg.HoverTolerance
	idx := -1
	for i := 0; i < xy.Len(); i++ {
		qx, qy := m.PointToPixel(xy.XY(i))
		dx, dy := qx-px, qy-py
		if math.Abs(dx) > tol || math.Abs(dy) > tol {
			continue
		}
		if d := dx*dx + dy*dy; d < best {
			idx, best = i, d
		}
	}
	return idx, best
}

func (c *Controller) updateHover(px, py float64) {
	m := c.Mapper()
	if !m.Valid() {
		c.clearHover()
		return
	}
	var found plotter.XYer
	at, best := -1, math.Inf(1)
	consider := func(xy plotter.XYer) {
		if i, d := c.nearest(xy, px, py, best); i >= 0 {
			found, at, best = xy, i, d
		}
	}
	for _, s := range c.Plot.Series {
		if s != nil && s.Visible && s.DotRadius > 0 {
			consider(s)
		}
	}
	for _, s := range c.Plot.Splines {
		if s != nil && s.Visible && s.DotRadius > 0 {
			consider(s)
		}
	}
	if at < 0 {
		c.clearHover()
		return
	}

	x, y := found.XY(at)
	qx, qy := m.PointToPixel(x, y)
	h := &HoverHighlight{
		Pixel: Pixel{qx, qy},
		X:     x, Y: y,
		Label: fmt.Sprintf("(%s, %s)", FormatTick(x), FormatTick(y)),
	}
	if c.hover != nil && *c.hover == *h {
		return
	}
	c.hover = h
	c.overlayDirty = true
}

// refreshHover recomputes the highlight at the last mouse position after
// the mapping changed.
func (c *Controller) refreshHover() {
	if c.hover == nil {
		return
	}
	if c.state != Idle || !c.Flags.Has(ShowPointPosition) {
		c.clearHover()
		return
	}
	c.updateHover(c.lastX, c.lastY)
}

func (c *Controller) clearHover() {
	if c.hover != nil {
		c.hover = nil
		c.overlayDirty = true
	}
}

// ----------------------------------------------------------------------------
// Frames

// Tick delivers a pending zoom notification once its delay has passed.
// Every zoom change restarts the delay.
func (c *Controller) Tick() {
	if c.zoomPending && !c.Clock().Before(c.zoomDue) {
		c.zoomPending = false
		c.Listener.ZoomChanged(c.rect)
	}
}

// Frame runs Tick and returns the plan of the next frame if anything
// changed since the last one.
func (c *Controller) Frame() (*RenderPlan, bool) {
	c.Tick()
	if !c.dirty && !c.overlayDirty {
		return nil, false
	}
	return c.Plan(), true
}

// Plan returns the complete plan of the current state. The data layers
// are rebuilt only if something changed; overlays are added every time.
func (c *Controller) Plan() *RenderPlan {
	m := c.Mapper()
	if c.dirty || c.base == nil || c.base.View != m.View || c.base.Rect != m.Rect {
		c.base = c.Renderer.Build(c.Plot, m)
	}
	c.dirty, c.overlayDirty = false, false

	rp := c.base.clone()
	if rp.Empty() {
		return rp
	}
	lk := c.Plot.Look
	if g := c.gesture; g != nil && !g.Empty() {
		x0, y0, x1, y1 := g.Corners()
		rp.add(Instruction{Layer: ZoomRectLayer, Kind: RectKind, Points: []Pixel{{x0, y0}, {x1, y1}}, Line: lk.Zoom})
	}
	if h := c.hover; h != nil {
		rp.add(Instruction{Layer: HoverLayer, Kind: EllipseKind, Points: []Pixel{h.Pixel},
			Radius: float64(lk.Hover.Radius), Line: lk.Hover.Ring})
		sty := lk.Hover.Label
		sty.YAlign = draw.YBottom
		r := float64(lk.Hover.Radius) + 2
		rp.add(Instruction{Layer: HoverLayer, Kind: TextKind, Points: []Pixel{{h.Pixel.X + r, h.Pixel.Y - r}},
			Text: h.Label, TextStyle: sty})
	}
	return rp
}
