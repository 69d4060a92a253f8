package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridsearch/internal/config"
	"github.com/katalvlaran/gridsearch/internal/logging"
	"github.com/katalvlaran/gridsearch/scenario"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	cfg config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), log: logging.NewNop()}

	root := &cobra.Command{
		Use:           "gridsearch",
		Short:         "Uninformed path search on a grid",
		Long:          `gridsearch runs BFS, DFS, UCS, DLS, IDDFS and bidirectional search on grid scenarios and shows how each explores the map.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			envFile, _ := cmd.Flags().GetString("env-file")
			var files []string
			if envFile != "" {
				files = append(files, envFile)
			}
			cfg, err := config.Load(files...)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
			}
			if cmd.Flags().Changed("dir") {
				cfg.ScenarioDir, _ = cmd.Flags().GetString("dir")
			}
			level, err := logging.ParseLevel(cfg.LogLevel)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logging.New(level)

			return nil
		},
	}

	root.PersistentFlags().String("env-file", "", "Load settings from this .env file (default .env)")
	root.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn or error")
	root.PersistentFlags().String("dir", "", "Directory with extra scenario YAML files")

	root.AddCommand(
		newAlgorithmsCmd(),
		newScenariosCmd(a),
		newRunCmd(a),
		newServeCmd(a),
	)

	return root
}

// catalog returns the built-in scenarios plus those in the configured dir.
func (a *app) catalog() (*scenario.Catalog, error) {
	c := scenario.Builtin()
	if a.cfg.ScenarioDir == "" {
		return c, nil
	}
	if err := c.LoadDir(a.cfg.ScenarioDir); err != nil {
		return nil, fmt.Errorf("load scenarios: %w", err)
	}
	a.log.Debug("scenarios loaded", "dir", a.cfg.ScenarioDir, "count", c.Len())

	return c, nil
}
