// Command xyplot renders plots of point series, functions and splines
// and replays mouse and keyboard gestures on them.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vdobler/xyplot"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "xyplot",
	Short: "Interactive 2D plot engine",
	Long: `xyplot draws point series, function curves and editable splines.
Scenes are described in YAML; a scene may carry a script of mouse and
keyboard events which is replayed before the final frame is rendered.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger := log.New()
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
		logger.SetOutput(os.Stderr)
		if verbose {
			logger.SetLevel(log.DebugLevel)
		} else {
			logger.SetLevel(log.InfoLevel)
		}
		xyplot.Log = logger
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log gestures and notifications")
}

// loadConfig returns the configuration given by --config or the default.
func loadConfig() (xyplot.Config, error) {
	if cfgFile == "" {
		return xyplot.DefaultConfig(), nil
	}
	return xyplot.LoadConfig(cfgFile)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
