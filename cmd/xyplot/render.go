package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vdobler/xyplot"
	"github.com/vdobler/xyplot/spline"
	"github.com/vdobler/xyplot/vgdraw"
)

var (
	outFile string
	format  string
)

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&outFile, "out", "o", "xyplot.png", "Output file")
	renderCmd.Flags().StringVar(&format, "format", "", "Output format, defaults to the extension of --out ("+strings.Join(vgdraw.Formats, ", ")+")")
}

var renderCmd = &cobra.Command{
	Use:   "render scene.yaml",
	Short: "Render a scene to an image",
	Long: `Loads the scene, replays its script and writes the final frame.
Notifications raised by the script are logged.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		sc, err := LoadScene(args[0])
		if err != nil {
			return err
		}
		f := format
		if f == "" {
			f = strings.TrimPrefix(filepath.Ext(outFile), ".")
		}
		rp, err := Run(cfg, sc, xyplot.Log)
		if err != nil {
			return err
		}

		out, err := os.Create(outFile)
		if err != nil {
			return errors.Wrap(err, "creating output")
		}
		if err := vgdraw.Write(out, f, rp); err != nil {
			out.Close()
			return err
		}
		return out.Close()
	},
}

// Run builds the controller of sc, replays the script and returns the
// plan of the final frame. Notifications are logged to logger.
func Run(cfg xyplot.Config, sc *Scene, logger log.FieldLogger) (*xyplot.RenderPlan, error) {
	p := xyplot.NewPlot()
	c, err := xyplot.NewController(p, cfg)
	if err != nil {
		return nil, err
	}
	if err := sc.Populate(p); err != nil {
		return nil, err
	}
	c.Log = logger
	c.Listener = xyplot.ListenerFuncs{
		OnZoomChanged: func(r xyplot.RealRect) {
			logger.WithField("rect", r).Info("zoom changed")
		},
		OnMousePosition: func(x, y float64) {
			logger.WithFields(log.Fields{"x": x, "y": y}).Debug("mouse")
		},
		OnMouseClick: func(x, y float64, b xyplot.Button) {
			logger.WithFields(log.Fields{"x": x, "y": y, "button": b}).Info("click")
		},
		OnSplineChanged: func(s *spline.Spline) {
			logger.WithFields(log.Fields{"spline": s.Name, "points": s.Len()}).Info("spline changed")
		},
	}

	c.Resize(sc.Viewport.Width, sc.Viewport.Height)
	if sc.AutoZoom {
		c.AutoZoom()
	}
	if err := Replay(c, sc.Script); err != nil {
		return nil, err
	}
	// The script runs instantly; flush a pending zoom notification.
	c.Clock = func() time.Time { return time.Now().Add(cfg.ZoomSignalDelay) }
	c.Tick()
	return c.Plan(), nil
}
