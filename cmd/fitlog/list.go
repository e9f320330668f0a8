// ABOUTME: CLI commands for listing and showing fitness activities.
// ABOUTME: Supports filtering by type, date range, and limiting results.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/fitlog/internal/models"
	"github.com/harperreed/fitlog/internal/storage"
	"github.com/spf13/cobra"
)

var (
	listType  string
	listLimit int
	listFrom  string
	listTo    string
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List fitness activities",
	Long: `List recent activities from your fitness log, newest first.

OUTPUT FORMAT:

  Each line shows: ID  DATE  TYPE  DURATION  DISTANCE  CALORIES

  The ID is an 8-character prefix you can use with show, edit, and
  delete commands.

FILTERING:

  Use --type to filter by activity type:
    running, cycling, swimming, walking, strength_training

  Use --from and --to together to show a date range. Both bounds are
  inclusive.

EXAMPLES:

  fitlog list                              # Show last 20 activities
  fitlog list --type running               # Show only runs
  fitlog list -t cycling -n 50             # Show last 50 rides
  fitlog list --from 2024-01-01 --to 2024-01-31`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if (listFrom == "") != (listTo == "") {
			return fmt.Errorf("--from and --to must be used together")
		}
		if listType != "" && !models.IsValidActivityType(listType) {
			return fmt.Errorf("unknown activity type: %s", listType)
		}

		var activities []*models.Activity
		var err error
		switch {
		case listFrom != "":
			from, perr := parseTime(listFrom)
			if perr != nil {
				return fmt.Errorf("invalid date: %s", listFrom)
			}
			to, perr := parseTime(listTo)
			if perr != nil {
				return fmt.Errorf("invalid date: %s", listTo)
			}
			activities, err = activityMgr.GetActivitiesByDateRange(from, to)
			if err == nil && listType != "" {
				filtered := activities[:0]
				for _, a := range activities {
					if a.Type == models.ActivityType(listType) {
						filtered = append(filtered, a)
					}
				}
				activities = filtered
			}
		case listType != "":
			activities, err = activityMgr.GetActivitiesByType(models.ActivityType(listType))
		default:
			activities, err = activityMgr.GetAllActivities()
		}
		if err != nil {
			return fmt.Errorf("failed to list activities: %w", err)
		}

		if len(activities) > listLimit {
			activities = activities[:listLimit]
		}
		if len(activities) == 0 {
			fmt.Println("No activities found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, a := range activities {
			fmt.Printf("%s %s %s %6.0f min %8.2f km %6.0f kcal\n",
				faint.Sprint(a.ID[:8]),
				faint.Sprint(a.Date.Format("2006-01-02 15:04")),
				padRight(string(a.Type), 18),
				a.Duration, a.Distance, a.Calories)
		}

		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show activity details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := storage.ResolveActivityID(store, args[0])
		if err != nil {
			return fmt.Errorf("activity not found: %s", args[0])
		}

		a, err := activityMgr.GetActivity(id)
		if err != nil {
			return fmt.Errorf("failed to get activity: %w", err)
		}

		fmt.Printf("Activity: %s\n", a.ID[:8])
		fmt.Printf("Type: %s\n", a.Type)
		fmt.Printf("Date: %s\n", a.Date.Format("2006-01-02 15:04"))
		fmt.Printf("Duration: %.0f min\n", a.Duration)
		fmt.Printf("Distance: %.2f km\n", a.Distance)
		fmt.Printf("Calories: %.0f kcal\n", a.Calories)

		return nil
	},
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	listCmd.Flags().StringVarP(&listType, "type", "t", "", "filter by activity type")
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "max number of results")
	listCmd.Flags().StringVar(&listFrom, "from", "", "range start date (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&listTo, "to", "", "range end date (YYYY-MM-DD)")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
}
