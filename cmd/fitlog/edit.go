// ABOUTME: CLI command for editing logged activities.
// ABOUTME: Loads the existing record and overlays only the flags that were set.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fitlog/internal/models"
	"github.com/harperreed/fitlog/internal/storage"
	"github.com/spf13/cobra"
)

var (
	editType     string
	editDate     string
	editDuration float64
	editDistance float64
	editCalories float64
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a logged activity",
	Long: `Edit a logged activity by its ID or ID prefix.

Only the fields you pass as flags change; everything else keeps its
current value. The activity keeps its ID.

EXAMPLES:

  fitlog edit abc12345 --duration 45
  fitlog edit abc1 --type cycling --distance 20
  fitlog edit abc1 --date "2024-12-14 07:00"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := storage.ResolveActivityID(store, args[0])
		if err != nil {
			return fmt.Errorf("activity not found: %s", args[0])
		}

		a, err := activityMgr.GetActivity(id)
		if err != nil {
			return fmt.Errorf("failed to get activity: %w", err)
		}

		in := models.ActivityInput{
			Type:     string(a.Type),
			Date:     &a.Date,
			Duration: &a.Duration,
			Distance: &a.Distance,
			Calories: &a.Calories,
		}

		flags := cmd.Flags()
		changed := false
		if flags.Changed("type") {
			in.Type = editType
			changed = true
		}
		if flags.Changed("date") {
			t, err := parseTime(editDate)
			if err != nil {
				return fmt.Errorf("invalid date: %s", editDate)
			}
			in.Date = &t
			changed = true
		}
		if flags.Changed("duration") {
			in.Duration = &editDuration
			changed = true
		}
		if flags.Changed("distance") {
			in.Distance = &editDistance
			changed = true
		}
		if flags.Changed("calories") {
			in.Calories = &editCalories
			changed = true
		}
		if !changed {
			fmt.Println("Nothing to change.")
			return nil
		}

		updated, err := activityMgr.UpdateActivity(id, in)
		if err != nil {
			return fmt.Errorf("failed to update activity: %w", err)
		}

		color.Green("✓ Updated %s", updated.Type)
		fmt.Printf("  %s %.0f min  %.2f km  %.0f kcal\n",
			color.New(color.Faint).Sprint(updated.ID[:8]),
			updated.Duration, updated.Distance, updated.Calories)

		return nil
	},
}

func init() {
	editCmd.Flags().StringVar(&editType, "type", "", "activity type")
	editCmd.Flags().StringVar(&editDate, "date", "", "activity date (YYYY-MM-DD HH:MM)")
	editCmd.Flags().Float64Var(&editDuration, "duration", 0, "duration in minutes")
	editCmd.Flags().Float64Var(&editDistance, "distance", 0, "distance in kilometers")
	editCmd.Flags().Float64Var(&editCalories, "calories", 0, "calories burned")
	rootCmd.AddCommand(editCmd)
}
