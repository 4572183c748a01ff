package xyplot

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	flags, err := ParseFlags(cfg.Flags)
	require.NoError(t, err)
	assert.Equal(t, DefaultFlags, flags)
	assert.Equal(t, DefaultPlanner(), cfg.Planner())
	assert.Equal(t, DefaultRenderer(), cfg.Renderer())
}

func TestFlags(t *testing.T) {
	f, err := ParseFlags([]string{"send-mouse-move", "show-point-position"})
	require.NoError(t, err)
	assert.True(t, f.Has(SendMouseMove))
	assert.True(t, f.Has(ShowPointPosition))
	assert.False(t, f.Has(SendZoomChanged))
	assert.False(t, f.Has(SendMouseMove|SendZoomChanged))
	assert.Equal(t, "send-mouse-move|show-point-position", f.String())

	_, err = ParseFlags([]string{"regraph"})
	assert.Error(t, err)
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "xyplot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, `
zoom: {xmin: -1, xmax: 1, ymin: 0, ymax: 100}
flags: [send-zoom-changed]
wheel_notch: 15
zoom_signal_delay: 250ms
colors:
  background: "#fff"
  zoom: "#00ff0080"
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, RealRect{-1, 1, 0, 100}, cfg.Zoom)
	assert.Equal(t, []string{"send-zoom-changed"}, cfg.Flags)
	assert.Equal(t, 15.0, cfg.WheelNotch)
	assert.Equal(t, 250*time.Millisecond, cfg.ZoomSignalDelay)
	assert.Equal(t, 0.95, cfg.WheelBase, "unset fields keep their default")

	lk, err := cfg.Look()
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0xff, 0xff, 0xff, 0xff}, lk.Background)
	assert.Equal(t, color.NRGBA{0, 0xff, 0, 0x80}, lk.Zoom.Color)

	c, err := NewController(nil, cfg)
	require.NoError(t, err)
	assert.Equal(t, cfg.Zoom, c.Rect())
	assert.Equal(t, SendZoomChanged, c.Flags)
	assert.Equal(t, lk.Background, c.Plot.Look.Background)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	for _, content := range []string{
		"zoom: [1, 2",
		"zoom: {xmin: 1, xmax: 1, ymin: 0, ymax: 1}",
		"flags: [bogus]",
		"wheel_base: 1.5",
		"wheel_notch: 0",
		"zoom_in: 1.2",
		"trace_step: -1",
		"colors: {axes: red}",
	} {
		_, err := LoadConfig(writeFile(t, content))
		assert.Error(t, err, content)
	}
}

func TestParseColor(t *testing.T) {
	for _, tc := range []struct {
		s    string
		want color.Color
	}{
		{"#000", color.NRGBA{0, 0, 0, 0xff}},
		{"#f80", color.NRGBA{0xff, 0x88, 0, 0xff}},
		{"#102030", color.NRGBA{0x10, 0x20, 0x30, 0xff}},
		{"#10203040", color.NRGBA{0x10, 0x20, 0x30, 0x40}},
	} {
		got, err := ParseColor(tc.s)
		require.NoError(t, err, tc.s)
		assert.Equal(t, tc.want, got, tc.s)
	}
	for _, s := range []string{"", "red", "#12", "#zzzzzz", "102030"} {
		_, err := ParseColor(s)
		assert.Error(t, err, s)
	}
}
