package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vdobler/xyplot"
)

func init() {
	rootCmd.AddCommand(ticksCmd)
}

// hidden prints ticks whose label is suppressed.
var hidden = color.New(color.Faint)

var ticksCmd = &cobra.Command{
	Use:   "ticks xmin xmax ymin ymax width height",
	Short: "Print the axis layout of a view",
	Long: `Prints the tick divisions and the tick positions in pixels.
Ticks too close to the origin, whose labels are not drawn, are dimmed.
Separate negative arguments from the flags with --:

    xyplot ticks -- -10 10 -10 10 600 600`,
	Args:  cobra.ExactArgs(6),
	RunE: func(cmd *cobra.Command, args []string) error {
		var v [6]float64
		for i, a := range args {
			f, err := strconv.ParseFloat(a, 64)
			if err != nil {
				return errors.Wrapf(err, "argument %d", i+1)
			}
			v[i] = f
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		m := xyplot.NewMapper(
			xyplot.RealRect{XMin: v[0], XMax: v[1], YMin: v[2], YMax: v[3]},
			xyplot.Viewport{Width: int(v[4]), Height: int(v[5])})
		if !m.Valid() {
			return errors.Errorf("cannot map %s onto %dx%d", m.Rect, m.View.Width, m.View.Height)
		}
		ap := cfg.Planner().Plan(m)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "origin at pixel (%g, %g)\n", ap.ZeroX, ap.ZeroY)
		fmt.Fprintf(out, "x division %g\n", ap.XDiv)
		printTicks(out, ap.XTicks)
		fmt.Fprintf(out, "y division %g\n", ap.YDiv)
		printTicks(out, ap.YTicks)
		return nil
	},
}

func printTicks(out io.Writer, ticks []xyplot.Tick) {
	for _, t := range ticks {
		line := fmt.Sprintf("  %-10s %8.2f\n", t.Label, t.Pixel)
		if t.ShowLabel {
			fmt.Fprint(out, line)
		} else {
			hidden.Fprint(out, line)
		}
	}
}
