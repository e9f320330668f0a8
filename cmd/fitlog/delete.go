// ABOUTME: CLI command for deleting fitness activities.
// ABOUTME: Supports deletion by full ID or ID prefix.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fitlog/internal/storage"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a fitness activity",
	Long: `Delete a fitness activity by its ID or ID prefix.

You can use either the full UUID or just the first few characters (prefix).
The ID prefix is shown in the first column of 'fitlog list' output.

EXAMPLES:

  fitlog delete abc12345                    # Delete by 8-char prefix
  fitlog delete abc12345-1234-1234-...      # Delete by full UUID
  fitlog rm abc1                            # Short prefix (if unique)

CAUTION:

  This permanently deletes the activity. There is no undo.
  If the prefix matches multiple activities, an error is returned.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := storage.ResolveActivityID(store, args[0])
		if err != nil {
			return fmt.Errorf("activity not found: %s", args[0])
		}

		// Fetch first to show what we're deleting.
		a, err := activityMgr.GetActivity(id)
		if err != nil {
			return fmt.Errorf("failed to get activity: %w", err)
		}

		if err := activityMgr.DeleteActivity(id); err != nil {
			return fmt.Errorf("failed to delete activity: %w", err)
		}

		color.Yellow("✗ Deleted %s", a.Type)
		fmt.Printf("  %s %s %.0f min\n",
			color.New(color.Faint).Sprint(a.ID[:8]),
			a.Date.Format("2006-01-02"), a.Duration)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
