package main

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vdobler/xyplot"
)

const rubberBandScene = `
viewport: {width: 601, height: 401}
series:
  - name: data
    points: [[-5, -5], [5, 5], [0, 3]]
    line: "#ff0000"
functions:
  - name: log
    color: "#00ff00"
splines:
  - name: edit
    interpolation: linear
    points: [[-5, 0], [0, 0], [5, 0]]
    current: true
script:
  - {event: press, button: right, x: 150, y: 100}
  - {event: move, x: 450, y: 300, buttons: [right]}
  - {event: release, button: right, x: 450, y: 300}
`

func loadScene(t *testing.T, content string) *Scene {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	sc, err := LoadScene(path)
	require.NoError(t, err)
	return sc
}

func TestRunRubberBand(t *testing.T) {
	sc := loadScene(t, rubberBandScene)
	logger, _ := test.NewNullLogger()
	rp, err := Run(xyplot.DefaultConfig(), sc, logger)
	require.NoError(t, err)
	assert.Equal(t, xyplot.RealRect{XMin: -5, XMax: 5, YMin: -5, YMax: 5}, rp.Rect)
	assert.Equal(t, xyplot.Viewport{Width: 601, Height: 401}, rp.View)
	assert.NotEmpty(t, rp.Layer(xyplot.FunctionLayer))
	assert.NotEmpty(t, rp.Layer(xyplot.SeriesLineLayer))
}

func TestRunNotifications(t *testing.T) {
	sc := loadScene(t, `
viewport: {width: 601, height: 401}
autozoom: true
series:
  - points: [[-1, -1], [1, 1]]
splines:
  - name: edit
    interpolation: linear
    points: [[-1, 0], [1, 0]]
    current: true
script:
  - {event: press, button: left, x: 300, y: 100, modifiers: [ctrl]}
  - {event: release, button: left, x: 300, y: 100}
  - {event: key, key: plus}
`)
	cfg := xyplot.DefaultConfig()
	cfg.Flags = append(cfg.Flags, "send-zoom-changed", "send-mouse-move")
	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.DebugLevel)

	rp, err := Run(cfg, sc, logger)
	require.NoError(t, err)
	assert.InDelta(t, 1.8, rp.Rect.Width(), 1e-9)

	var msgs []string
	for _, e := range hook.AllEntries() {
		if e.Level == log.InfoLevel {
			msgs = append(msgs, e.Message)
		}
	}
	assert.Equal(t, []string{"spline changed", "click", "zoom changed"}, msgs)
}

func TestReplayErrors(t *testing.T) {
	c, err := xyplot.NewController(nil, xyplot.DefaultConfig())
	require.NoError(t, err)
	for _, st := range []Step{
		{Event: "poke"},
		{Event: "press", Button: "middle"},
		{Event: "press", Button: "left", Modifiers: []string{"alt"}},
		{Event: "move", Buttons: []string{"left", "middle"}},
		{Event: "key", Key: "escape"},
		{Event: "zoom", Factor: -1},
	} {
		assert.Error(t, Replay(c, []Step{st}), st.Event)
	}
}

func TestReplayWheelAndFocus(t *testing.T) {
	c, err := xyplot.NewController(nil, xyplot.DefaultConfig())
	require.NoError(t, err)
	var steps []Step
	require.NoError(t, yaml.Unmarshal([]byte(`
- {event: resize, width: 601, height: 401}
- {event: focus, x: 3, y: 4}
- {event: wheel, delta: 120, x: 300, y: 200}
- {event: zoom, factor: 2}
`), &steps))
	require.NoError(t, Replay(c, steps))
	r := c.Rect()
	cx, cy := r.Center()
	assert.InDelta(t, 3, cx, 1e-9)
	assert.InDelta(t, 4, cy, 1e-9)
	assert.InDelta(t, 38, r.Width(), 1e-9)
}

func TestPopulateErrors(t *testing.T) {
	for _, content := range []string{
		"functions: [{name: gamma}]",
		"series: [{points: [[0, 0]], color: blue}]",
		"splines: [{interpolation: bezier}]",
	} {
		sc := loadScene(t, content)
		assert.Error(t, sc.Populate(xyplot.NewPlot()), content)
	}
}
