// ABOUTME: Root Cobra command for fitlog CLI.
// ABOUTME: Opens the storage backend and wires services via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/fitlog/internal/config"
	"github.com/harperreed/fitlog/internal/service"
	"github.com/harperreed/fitlog/internal/storage"
	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagBackend string

	activeCfg   *config.Config
	store       storage.Store
	activityMgr *service.ActivityManager
	goalTracker *service.GoalTracker
	analytics   *service.AnalyticsEngine
)

var rootCmd = &cobra.Command{
	Use:   "fitlog",
	Short: "Personal fitness activity tracker",
	Long: `Fitlog is a CLI tool for logging workouts and tracking fitness goals.

ACTIVITY TYPES:

  running, cycling, swimming, walking, strength_training

QUICK START:

  $ fitlog add running 30 --distance 5        # Log a 30 min, 5 km run
  $ fitlog list                               # See recent activities
  $ fitlog list --type running                # Filter by type
  $ fitlog stats                              # Weekly statistics

GOALS:

  Goals measure your activities between their creation and a deadline
  against a target: total distance, total duration, total calories, or
  workout count.

  $ fitlog goal add "March distance" total_distance 100 --deadline 2025-03-31
  $ fitlog goal list                          # All goals with progress
  $ fitlog goal show abc123                   # Full progress report

MCP INTEGRATION:

  Run 'fitlog mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants. Add to your Claude
  config:

  {
    "mcpServers": {
      "fitlog": { "command": "fitlog", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Activities and goals are stored under ~/.local/share/fitlog using the
  badger backend by default. Switch backends with 'fitlog config set
  backend sqlite' (or 'file'), or per invocation with --backend. Move
  existing data between backends with 'fitlog migrate'.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Config commands only read and write the config file.
		switch cmd.Name() {
		case "help", "version", "completion", "config", "set":
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if flagBackend != "" {
			cfg.Backend = flagBackend
		}
		if flagDataDir != "" {
			cfg.DataDir = flagDataDir
		}
		activeCfg = cfg

		store, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}

		activityMgr = service.NewActivityManager(store)
		goalTracker = service.NewGoalTracker(store, activityMgr)
		analytics = service.NewAnalyticsEngine(activityMgr)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			err := store.Close()
			store = nil
			return err
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default ~/.local/share/fitlog)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "storage backend: badger, sqlite, or file")
}
