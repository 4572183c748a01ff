package xyplot

import (
	"fmt"
	"image/color"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"
)

// ----------------------------------------------------------------------------
// Flags

// Flags switch optional behaviour of a Controller.
type Flags uint

const (
	// SendMouseMove reports mouse positions and clicks to the Listener.
	SendMouseMove Flags = 1 << iota
	// RegraphOnResize redraws when the viewport changes size.
	RegraphOnResize
	// SendZoomChanged reports zoom changes, coalesced, to the Listener.
	SendZoomChanged
	// AutoZoomOnDoubleClick autozooms on a double right click.
	AutoZoomOnDoubleClick
	// ShowPointPosition highlights the point under the mouse.
	ShowPointPosition
)

// DefaultFlags are the flags of a new Controller.
const DefaultFlags = RegraphOnResize | AutoZoomOnDoubleClick

var flagNames = []string{"send-mouse-move", "regraph-on-resize",
	"send-zoom-changed", "autozoom-on-double-click", "show-point-position"}

// Has reports whether all of g are set in f.
func (f Flags) Has(g Flags) bool { return f&g == g }

func (f Flags) String() string {
	var names []string
	for i, n := range flagNames {
		if f.Has(1 << uint(i)) {
			names = append(names, n)
		}
	}
	return strings.Join(names, "|")
}

// ParseFlags combines the named flags.
func ParseFlags(names []string) (Flags, error) {
	var f Flags
outer:
	for _, name := range names {
		for i, n := range flagNames {
			if n == name {
				f |= 1 << uint(i)
				continue outer
			}
		}
		return 0, errors.Errorf("unknown flag %q", name)
	}
	return f, nil
}

// ----------------------------------------------------------------------------
// Config

// Config holds the tunable behaviour and colors of a Controller.
type Config struct {
	Zoom  RealRect `yaml:"zoom"`
	Flags []string `yaml:"flags"`

	// The zoom factor of one wheel event is WheelBase^(delta/WheelNotch).
	WheelNotch float64 `yaml:"wheel_notch"`
	WheelBase  float64 `yaml:"wheel_base"`

	MinPixelsX     float64 `yaml:"min_pixels_x"`
	MinPixelsY     float64 `yaml:"min_pixels_y"`
	LabelClearance float64 `yaml:"label_clearance"`
	TickLength     float64 `yaml:"tick_length"`
	TraceStep      float64 `yaml:"trace_step"`

	// HoverTolerance is the half width in pixels of the box searched
	// for points under the cursor.
	HoverTolerance float64 `yaml:"hover_tolerance"`

	PanStep        float64 `yaml:"pan_step"` // fraction of width/height per arrow key
	ZoomIn         float64 `yaml:"zoom_in"`
	ZoomOut        float64 `yaml:"zoom_out"`
	AutoZoomMargin float64 `yaml:"autozoom_margin"`

	// AutoscaleX and AutoscaleY turn the data bounds into the rectangle
	// shown after an autozoom.
	AutoscaleX Autoscaling `yaml:"autoscale_x"`
	AutoscaleY Autoscaling `yaml:"autoscale_y"`

	ZoomSignalDelay time.Duration `yaml:"zoom_signal_delay"`

	FontSize float64 `yaml:"font_size"`
	Colors   struct {
		Background string `yaml:"background"`
		Axes       string `yaml:"axes"`
		Subaxes    string `yaml:"subaxes"`
		Text       string `yaml:"text"`
		Zoom       string `yaml:"zoom"`
	} `yaml:"colors"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Zoom:            DefaultRect(),
		Flags:           []string{"regraph-on-resize", "autozoom-on-double-click"},
		WheelNotch:      120,
		WheelBase:       0.95,
		MinPixelsX:      50,
		MinPixelsY:      40,
		LabelClearance:  30,
		TickLength:      5,
		TraceStep:       1.5,
		HoverTolerance:  10,
		PanStep:         0.1,
		ZoomIn:          0.9,
		ZoomOut:         1.1,
		AutoZoomMargin:  1.01,
		AutoscaleX:      NewAutoscaling(),
		AutoscaleY:      NewAutoscaling(),
		ZoomSignalDelay: 100 * time.Millisecond,
		FontSize:        10,
	}
}

// LoadConfig reads a YAML configuration. Unset fields keep their
// default value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	buf, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Validate checks cfg for values which would break mapping or zooming.
func (cfg Config) Validate() error {
	if cfg.Zoom.IsInvalid() {
		return errors.Errorf("invalid zoom %s", cfg.Zoom)
	}
	if _, err := ParseFlags(cfg.Flags); err != nil {
		return err
	}
	if !(cfg.WheelNotch > 0) {
		return errors.Errorf("wheel_notch must be positive, got %g", cfg.WheelNotch)
	}
	if !(cfg.WheelBase > 0 && cfg.WheelBase < 1) {
		return errors.Errorf("wheel_base must be in (0,1), got %g", cfg.WheelBase)
	}
	if !(cfg.ZoomIn > 0 && cfg.ZoomIn < 1) || !(cfg.ZoomOut > 1) {
		return errors.Errorf("need 0 < zoom_in < 1 < zoom_out, got %g and %g", cfg.ZoomIn, cfg.ZoomOut)
	}
	if !(cfg.AutoZoomMargin > 0) {
		return errors.Errorf("autozoom_margin must be positive, got %g", cfg.AutoZoomMargin)
	}
	if err := cfg.AutoscaleX.validate(); err != nil {
		return errors.Wrap(err, "autoscale_x")
	}
	if err := cfg.AutoscaleY.validate(); err != nil {
		return errors.Wrap(err, "autoscale_y")
	}
	for _, v := range []struct {
		name string
		v    float64
	}{
		{"min_pixels_x", cfg.MinPixelsX},
		{"min_pixels_y", cfg.MinPixelsY},
		{"trace_step", cfg.TraceStep},
		{"font_size", cfg.FontSize},
	} {
		if !(v.v > 0) {
			return errors.Errorf("%s must be positive, got %g", v.name, v.v)
		}
	}
	_, err := cfg.Look()
	return err
}

// Planner returns the tick planner configured by cfg.
func (cfg Config) Planner() Planner {
	return Planner{
		MinPixelsX:     cfg.MinPixelsX,
		MinPixelsY:     cfg.MinPixelsY,
		LabelClearance: cfg.LabelClearance,
	}
}

// Renderer returns the plan renderer configured by cfg.
func (cfg Config) Renderer() Renderer {
	return Renderer{Planner: cfg.Planner(), TraceStep: cfg.TraceStep}
}

// Look returns the default look with the configured font size, tick
// length and colors.
func (cfg Config) Look() (Look, error) {
	lk := DefaultLook(vg.Length(cfg.FontSize))
	lk.TickLength = cfg.TickLength
	for _, c := range []struct {
		name string
		hex  string
		dst  *color.Color
	}{
		{"background", cfg.Colors.Background, &lk.Background},
		{"axes", cfg.Colors.Axes, &lk.Axes.Color},
		{"subaxes", cfg.Colors.Subaxes, &lk.Subaxes.Color},
		{"text", cfg.Colors.Text, &lk.Text.Color},
		{"zoom", cfg.Colors.Zoom, &lk.Zoom.Color},
	} {
		if c.hex == "" {
			continue
		}
		col, err := ParseColor(c.hex)
		if err != nil {
			return lk, errors.Wrapf(err, "color %s", c.name)
		}
		*c.dst = col
	}
	return lk, nil
}

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.Color, error) {
	var r, g, b uint8
	a := uint8(0xff)
	var err error
	switch len(s) {
	case 4:
		_, err = fmt.Sscanf(s, "#%1x%1x%1x", &r, &g, &b)
		r, g, b = r*0x11, g*0x11, b*0x11
	case 7:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b)
	case 9:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		err = errors.New("bad length")
	}
	if err != nil {
		return nil, errors.Wrapf(err, "invalid color %q", s)
	}
	return color.NRGBA{r, g, b, a}, nil
}
