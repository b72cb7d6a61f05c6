package app

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/amberwatch/amberwatch/internal/config"
	"github.com/amberwatch/amberwatch/internal/daemon"
	"github.com/amberwatch/amberwatch/internal/logger"
)

func init() { //nolint: gochecknoinits
	sweepCmd.Flags().StringVar(&configPath, "config", "", "Path to the configuration directory")

	rootCmd.AddCommand(sweepCmd)
}

// sweepCmd runs exactly one sweep and exits. Meant for external cron
// triggers; a failed batch load exits non-zero so the scheduler sees it.
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run one price monitor sweep and exit",
	PreRun: func(_ *cobra.Command, _ []string) {
		if cfg, err = config.ReadConfig(configPath); err != nil {
			panic(err)
		}

		if err = logger.Init(cfg.Log); err != nil {
			panic(err)
		}
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return daemon.New(&cfg).Sweep(context.Background())
	},
}
