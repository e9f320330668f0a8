// ABOUTME: CLI command for logging fitness activities.
// ABOUTME: Takes type and duration positionally with date, distance, and calories flags.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/fitlog/internal/models"
	"github.com/spf13/cobra"
)

var (
	addDate     string
	addDistance float64
	addCalories float64
)

var addCmd = &cobra.Command{
	Use:     "add <type> <duration>",
	Aliases: []string{"a", "log"},
	Short:   "Log a fitness activity",
	Long: `Log a fitness activity with its duration in minutes.

Examples:
  fitlog add running 30 --distance 5.2
  fitlog add cycling 90 --distance 40 --calories 800
  fitlog add swimming 45 --date "2024-12-14 07:00"
  fitlog add strength_training 60`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		activityType := args[0]

		if !models.IsValidActivityType(activityType) {
			return fmt.Errorf("unknown activity type: %s\nValid types: %s",
				activityType, models.ActivityTypeNames())
		}

		duration, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid duration: %s", args[1])
		}

		date := time.Now()
		if addDate != "" {
			t, err := parseTime(addDate)
			if err != nil {
				return fmt.Errorf("invalid date: %s", addDate)
			}
			date = t
		}

		a, err := activityMgr.CreateActivity(models.ActivityInput{
			Type:     activityType,
			Date:     &date,
			Duration: &duration,
			Distance: &addDistance,
			Calories: &addCalories,
		})
		if err != nil {
			return fmt.Errorf("failed to log activity: %w", err)
		}

		color.Green("✓ Logged %s", a.Type)
		fmt.Printf("  %s %.0f min  %.2f km  %.0f kcal\n",
			color.New(color.Faint).Sprint(a.ID[:8]),
			a.Duration, a.Distance, a.Calories)

		return nil
	},
}

func parseTime(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		"2006-01-02",
		time.RFC3339,
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format")
}

func init() {
	addCmd.Flags().StringVar(&addDate, "date", "", "activity date (YYYY-MM-DD HH:MM), defaults to now")
	addCmd.Flags().Float64VarP(&addDistance, "distance", "d", 0, "distance in kilometers")
	addCmd.Flags().Float64VarP(&addCalories, "calories", "c", 0, "calories burned")
	rootCmd.AddCommand(addCmd)
}
