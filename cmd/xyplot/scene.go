package main

import (
	"math"
	"os"

	"github.com/pkg/errors"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"

	"github.com/vdobler/xyplot"
	"github.com/vdobler/xyplot/data"
	"github.com/vdobler/xyplot/spline"
)

// Scene is the YAML description of what to plot.
type Scene struct {
	Viewport struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"viewport"`

	// AutoZoom fits the view to the series before the script runs.
	AutoZoom bool `yaml:"autozoom"`

	Series    []SeriesSpec   `yaml:"series"`
	Functions []FunctionSpec `yaml:"functions"`
	Splines   []SplineSpec   `yaml:"splines"`
	Script    []Step         `yaml:"script"`
}

// SeriesSpec describes a point series.
type SeriesSpec struct {
	Name      string       `yaml:"name"`
	Points    [][2]float64 `yaml:"points"`
	Line      string       `yaml:"line"`
	Color     string       `yaml:"color"`
	DotRadius *float64     `yaml:"dot_radius"`
	Hidden    bool         `yaml:"hidden"`
}

// FunctionSpec refers to one of the named functions.
type FunctionSpec struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

// SplineSpec describes a spline. The last one marked current is edited.
type SplineSpec struct {
	Name          string       `yaml:"name"`
	Interpolation string       `yaml:"interpolation"`
	Points        [][2]float64 `yaml:"points"`
	Color         string       `yaml:"color"`
	Current       bool         `yaml:"current"`
	Hidden        bool         `yaml:"hidden"`
}

// functions are the curves a scene can refer to by name.
var functions = map[string]xyplot.Func{
	"sin":     {F: math.Sin},
	"cos":     {F: math.Cos},
	"tan":     {F: math.Tan},
	"exp":     {F: math.Exp},
	"log":     {F: math.Log, Domain: func(x float64) bool { return x > 0 }},
	"sqrt":    {F: math.Sqrt, Domain: func(x float64) bool { return x >= 0 }},
	"square":  {F: func(x float64) float64 { return x * x }},
	"inverse": {F: func(x float64) float64 { return 1 / x }, Domain: func(x float64) bool { return x != 0 }},
}

// LoadScene reads a scene file.
func LoadScene(path string) (*Scene, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading scene")
	}
	sc := &Scene{}
	sc.Viewport.Width, sc.Viewport.Height = 600, 600
	if err := yaml.Unmarshal(buf, sc); err != nil {
		return nil, errors.Wrapf(err, "parsing scene %s", path)
	}
	return sc, nil
}

func xys(points [][2]float64) plotter.XYs {
	xy := make(plotter.XYs, len(points))
	for i, p := range points {
		xy[i].X, xy[i].Y = p[0], p[1]
	}
	return xy
}

// Populate adds the series, functions and splines of sc to p.
func (sc *Scene) Populate(p *xyplot.Plot) error {
	for _, ss := range sc.Series {
		s := data.NewPointSeries(xys(ss.Points))
		s.Name = ss.Name
		s.Visible = !ss.Hidden
		if ss.DotRadius != nil {
			s.DotRadius = vg.Length(*ss.DotRadius)
		}
		if ss.Color != "" {
			col, err := xyplot.ParseColor(ss.Color)
			if err != nil {
				return errors.Wrapf(err, "series %q", ss.Name)
			}
			s.DotPen.Color, s.DotFill = col, col
		}
		if ss.Line != "" {
			col, err := xyplot.ParseColor(ss.Line)
			if err != nil {
				return errors.Wrapf(err, "series %q", ss.Name)
			}
			s.Line.Color, s.Line.Width = col, 1
		}
		p.AddSeries(s)
	}

	for _, fs := range sc.Functions {
		f, ok := functions[fs.Name]
		if !ok {
			return errors.Errorf("unknown function %q", fs.Name)
		}
		c := p.AddFunction(f)
		if fs.Color != "" {
			col, err := xyplot.ParseColor(fs.Color)
			if err != nil {
				return errors.Wrapf(err, "function %q", fs.Name)
			}
			c.Line.Color = col
		}
	}

	for _, ss := range sc.Splines {
		ip := spline.CubicSpline
		if ss.Interpolation != "" {
			var ok bool
			if ip, ok = spline.ParseInterpolation(ss.Interpolation); !ok {
				return errors.Errorf("spline %q: unknown interpolation %q", ss.Name, ss.Interpolation)
			}
		}
		s := spline.New(ip, xys(ss.Points))
		s.Name = ss.Name
		s.Visible = !ss.Hidden
		if ss.Color != "" {
			col, err := xyplot.ParseColor(ss.Color)
			if err != nil {
				return errors.Wrapf(err, "spline %q", ss.Name)
			}
			s.Line.Color, s.DotPen.Color = col, col
		}
		p.AddSpline(s)
		if ss.Current {
			p.Current = s
		}
	}
	return nil
}
