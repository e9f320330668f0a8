// ABOUTME: CLI command for migrating data between storage backends.
// ABOUTME: Copies all records from the active backend into a target backend.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fitlog/internal/config"
	"github.com/harperreed/fitlog/internal/storage"
	"github.com/spf13/cobra"
)

var migrateDryRun bool

var migrateCmd = &cobra.Command{
	Use:   "migrate <target-backend>",
	Short: "Migrate data to another storage backend",
	Long: `Migrate all activities and goals from the active storage backend to
another backend.

The target backend is created in the same data directory: badger data
lives under badger/, sqlite in fitlog.db, and the file backend in
activities/ and goals/ folders, so backends never clash.

Records keep their IDs, so re-running a migration overwrites rather
than duplicates. The source data is left untouched.

USAGE:

  fitlog migrate sqlite --dry-run   # Preview what would be migrated
  fitlog migrate sqlite             # Copy everything to sqlite

AFTER MIGRATION:

  Point fitlog at the new backend:
    fitlog config set backend sqlite

  Then verify with 'fitlog list' before removing the old data.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"badger", "sqlite", "file"},
	RunE: func(cmd *cobra.Command, args []string) error {
		target := args[0]

		switch target {
		case "badger", "sqlite", "file":
		default:
			return fmt.Errorf("unknown backend: %q (use badger, sqlite, or file)", target)
		}
		if target == activeCfg.GetBackend() {
			return fmt.Errorf("already using the %s backend", target)
		}

		dstCfg := &config.Config{Backend: target, DataDir: activeCfg.DataDir}
		existing, err := dstCfg.HasExistingData()
		if err != nil {
			return fmt.Errorf("failed to inspect %s backend: %w", target, err)
		}
		if existing {
			color.Yellow("⚠ The %s backend is not empty; records with matching ids will be overwritten", target)
		}

		if migrateDryRun {
			activities, err := store.LoadAllActivities()
			if err != nil {
				return fmt.Errorf("failed to load activities: %w", err)
			}
			goals, err := store.LoadAllGoals()
			if err != nil {
				return fmt.Errorf("failed to load goals: %w", err)
			}
			color.Yellow("Dry run mode - no changes will be made")
			fmt.Printf("Would migrate %d activities and %d goals to %s.\n",
				len(activities), len(goals), target)
			return nil
		}

		dst, err := dstCfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open %s backend: %w", target, err)
		}
		defer func() { _ = dst.Close() }()

		summary, err := storage.MigrateData(store, dst)
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		color.Green("✓ Migrated %d activities and %d goals to %s",
			summary.Activities, summary.Goals, target)
		fmt.Println()
		fmt.Println("To switch to the new backend:")
		fmt.Printf("  fitlog config set backend %s\n", target)

		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "preview migration without making changes")
	rootCmd.AddCommand(migrateCmd)
}
