package main

import (
	"github.com/pkg/errors"

	"github.com/vdobler/xyplot"
)

// A Step is one recorded event of a gesture script.
type Step struct {
	Event     string   `yaml:"event"` // press, move, release, wheel, double-click, key, resize, focus, zoom
	Button    string   `yaml:"button"`
	Buttons   []string `yaml:"buttons"` // held during move
	Modifiers []string `yaml:"modifiers"`
	Key       string   `yaml:"key"`
	X         float64  `yaml:"x"`
	Y         float64  `yaml:"y"`
	Delta     float64  `yaml:"delta"`
	Width     int      `yaml:"width"`
	Height    int      `yaml:"height"`
	Factor    float64  `yaml:"factor"`
}

func buttons(names []string) (xyplot.Button, error) {
	var b xyplot.Button
	for _, n := range names {
		bb, err := xyplot.ParseButton(n)
		if err != nil {
			return 0, err
		}
		b |= bb
	}
	return b, nil
}

func modifiers(names []string) (xyplot.Modifier, error) {
	var m xyplot.Modifier
	for _, n := range names {
		switch n {
		case "ctrl", "control":
			m |= xyplot.ControlModifier
		case "shift":
			m |= xyplot.ShiftModifier
		default:
			return 0, errors.Errorf("unknown modifier %q", n)
		}
	}
	return m, nil
}

// Replay feeds the steps to c in order.
func Replay(c *xyplot.Controller, steps []Step) error {
	for i, st := range steps {
		if err := replay(c, st); err != nil {
			return errors.Wrapf(err, "step %d (%s)", i+1, st.Event)
		}
	}
	return nil
}

func replay(c *xyplot.Controller, st Step) error {
	switch st.Event {
	case "press", "release", "double-click":
		b, err := xyplot.ParseButton(st.Button)
		if err != nil {
			return err
		}
		switch st.Event {
		case "press":
			mods, err := modifiers(st.Modifiers)
			if err != nil {
				return err
			}
			c.Press(b, st.X, st.Y, mods)
		case "release":
			c.Release(b, st.X, st.Y)
		default:
			c.DoubleClick(b, st.X, st.Y)
		}
	case "move":
		b, err := buttons(st.Buttons)
		if err != nil {
			return err
		}
		c.Move(st.X, st.Y, b)
	case "wheel":
		c.Wheel(st.Delta, st.X, st.Y)
	case "key":
		k, err := xyplot.ParseKey(st.Key)
		if err != nil {
			return err
		}
		c.Key(k)
	case "resize":
		c.Resize(st.Width, st.Height)
	case "focus":
		c.FocusOn(st.X, st.Y)
	case "zoom":
		if !c.RelativeZoom(st.Factor) {
			return errors.Errorf("invalid zoom factor %g", st.Factor)
		}
	default:
		return errors.Errorf("unknown event %q", st.Event)
	}
	return nil
}
