package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/danirodriguezz/hirepilot/pkg/config"
	"github.com/danirodriguezz/hirepilot/pkg/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:          "hirepilotctl",
		Short:        "Operate the HirePilot tailoring backend from the command line",
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log state transitions and provider calls")
	root.AddCommand(
		newTailorCmd(&verbose),
		newMigrateCmd(&verbose),
		newSchemaCmd(),
	)
	return root
}

// setup resolves configuration and a logger the same way the server does.
func setup(verbose bool) (config.Config, *logrus.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	return cfg, logging.New(level, cfg.LogFormat), nil
}
