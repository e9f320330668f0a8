// ABOUTME: CLI command for activity statistics.
// ABOUTME: Supports weekly, monthly, custom period, and per-type views.
package main

import (
	"fmt"
	"time"

	"github.com/harperreed/fitlog/internal/models"
	"github.com/harperreed/fitlog/internal/service"
	"github.com/spf13/cobra"
)

var (
	statsMonth bool
	statsFrom  string
	statsTo    string
	statsType  string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show activity statistics",
	Long: `Show aggregate statistics over your logged activities.

PERIODS:

  Default is the last 7 days. Use --month for the last 30 days, or
  --from and --to together for a custom period (both bounds inclusive).

EXAMPLES:

  fitlog stats                                  # Last 7 days
  fitlog stats --month                          # Last 30 days
  fitlog stats --from 2024-01-01 --to 2024-01-31
  fitlog stats --type running                   # Only runs, last 7 days
  fitlog stats --month -t cycling               # Only rides, last 30 days`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if (statsFrom == "") != (statsTo == "") {
			return fmt.Errorf("--from and --to must be used together")
		}

		now := time.Now()
		custom := statsFrom != ""

		var start, end time.Time
		var label string
		switch {
		case custom:
			var err error
			if start, err = parseTime(statsFrom); err != nil {
				return fmt.Errorf("invalid date: %s", statsFrom)
			}
			if end, err = parseTime(statsTo); err != nil {
				return fmt.Errorf("invalid date: %s", statsTo)
			}
			label = fmt.Sprintf("%s to %s", start.Format("2006-01-02"), end.Format("2006-01-02"))
		case statsMonth:
			start, end, label = now.Add(-30*24*time.Hour), now, "the last 30 days"
		default:
			start, end, label = now.Add(-7*24*time.Hour), now, "the last 7 days"
		}

		if statsType != "" {
			if !models.IsValidActivityType(statsType) {
				return fmt.Errorf("unknown activity type: %s", statsType)
			}
			ts := analytics.StatsByType(models.ActivityType(statsType), start, end)
			fmt.Printf("Stats for %s, %s:\n\n", statsType, label)
			printTypeStats(ts)
			return nil
		}

		var stats *service.Statistics
		switch {
		case custom:
			stats = analytics.StatsByPeriod(start, end)
		case statsMonth:
			stats = analytics.MonthlyStats()
		default:
			stats = analytics.WeeklyStats()
		}

		fmt.Printf("Stats for %s:\n\n", label)
		fmt.Printf("  Workouts:  %d\n", stats.WorkoutCount)
		fmt.Printf("  Duration:  %.0f min\n", stats.TotalDuration)
		fmt.Printf("  Distance:  %.2f km\n", stats.TotalDistance)
		fmt.Printf("  Calories:  %.0f kcal\n", stats.TotalCalories)

		if len(stats.BreakdownByType) > 0 {
			fmt.Println("\nBy type:")
			for _, at := range models.AllActivityTypes {
				ts, ok := stats.BreakdownByType[at]
				if !ok {
					continue
				}
				fmt.Printf("  %s %2d workouts %6.0f min %8.2f km\n",
					padRight(string(at), 18), ts.WorkoutCount, ts.TotalDuration, ts.TotalDistance)
			}
		}

		fmt.Printf("\nAverage duration (all time): %.1f min\n", analytics.AverageDuration())
		return nil
	},
}

func printTypeStats(ts *service.TypeStats) {
	fmt.Printf("  Workouts:  %d\n", ts.WorkoutCount)
	fmt.Printf("  Duration:  %.0f min\n", ts.TotalDuration)
	fmt.Printf("  Distance:  %.2f km\n", ts.TotalDistance)
	fmt.Printf("  Calories:  %.0f kcal\n", ts.TotalCalories)
}

func init() {
	statsCmd.Flags().BoolVar(&statsMonth, "month", false, "show the last 30 days instead of 7")
	statsCmd.Flags().StringVar(&statsFrom, "from", "", "custom period start (YYYY-MM-DD)")
	statsCmd.Flags().StringVar(&statsTo, "to", "", "custom period end (YYYY-MM-DD)")
	statsCmd.Flags().StringVarP(&statsType, "type", "t", "", "restrict to one activity type")
	rootCmd.AddCommand(statsCmd)
}
