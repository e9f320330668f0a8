// ABOUTME: CLI commands for viewing and changing fitlog configuration.
// ABOUTME: Manages the storage backend and data directory settings.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fitlog/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration",
	Long: `Show the active fitlog configuration.

SETTINGS:

  backend    Storage backend: badger (default), sqlite, or file
  data-dir   Root directory for stored data

EXAMPLES:

  fitlog config                             # Show current settings
  fitlog config set backend sqlite          # Switch to sqlite
  fitlog config set data-dir ~/fitness      # Move the data directory`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		fmt.Printf("Config file: %s\n", config.GetConfigPath())
		fmt.Printf("Backend: %s\n", cfg.GetBackend())
		fmt.Printf("Data dir: %s\n", cfg.GetDataDir())

		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a configuration setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		switch key {
		case "backend":
			switch value {
			case "badger", "sqlite", "file":
			default:
				return fmt.Errorf("unknown backend: %q (use badger, sqlite, or file)", value)
			}
			cfg.Backend = value
		case "data-dir":
			cfg.DataDir = value
		default:
			return fmt.Errorf("unknown config key: %s (use backend or data-dir)", key)
		}

		if err := cfg.Save(); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		color.Green("✓ Set %s to %s", key, value)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
