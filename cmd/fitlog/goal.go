// ABOUTME: CLI commands for managing fitness goals.
// ABOUTME: Supports add, list, show, edit, and delete subcommands with progress display.
package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/fitlog/internal/models"
	"github.com/harperreed/fitlog/internal/storage"
	"github.com/spf13/cobra"
)

var (
	goalDeadline string
	goalName     string
	goalMetric   string
	goalTarget   float64
)

var goalCmd = &cobra.Command{
	Use:     "goal",
	Aliases: []string{"g"},
	Short:   "Manage fitness goals",
	Long: `Track fitness goals measured against your logged activities.

A goal counts activities dated between its creation time and its
deadline, and measures them against a target value for one metric.

METRICS:

  total_distance   Sum of distance (km)
  total_duration   Sum of duration (minutes)
  total_calories   Sum of calories burned
  workout_count    Number of activities

STATUS:

  active      Deadline ahead, target not yet reached
  completed   Target reached (before or after the deadline)
  missed      Deadline passed without reaching the target

COMMANDS:

  add      Create a new goal
  list     List goals with progress
  show     Full progress report for one goal
  edit     Change a goal's fields
  delete   Remove a goal`,
}

var goalAddCmd = &cobra.Command{
	Use:   "add <name> <metric> <target>",
	Short: "Add a new goal",
	Long: `Add a new fitness goal.

Examples:
  fitlog goal add "March distance" total_distance 100 --deadline 2025-03-31
  fitlog goal add "Stay active" workout_count 20 --deadline 2025-06-01`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		metric := args[1]

		target, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid target value: %s", args[2])
		}

		if goalDeadline == "" {
			return fmt.Errorf("--deadline is required (YYYY-MM-DD)")
		}
		deadline, err := parseTime(goalDeadline)
		if err != nil {
			return fmt.Errorf("invalid deadline: %s", goalDeadline)
		}

		g, err := goalTracker.CreateGoal(models.GoalInput{
			Name:         name,
			TargetMetric: metric,
			TargetValue:  &target,
			Deadline:     &deadline,
		})
		if err != nil {
			return fmt.Errorf("failed to add goal: %w", err)
		}

		color.Green("✓ Added goal %q", g.Name)
		fmt.Printf("  %s %s %.2f by %s\n",
			color.New(color.Faint).Sprint(g.ID[:8]),
			g.TargetMetric, g.TargetValue, g.Deadline.Format("2006-01-02"))

		return nil
	},
}

var goalListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List goals with progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		goals, err := goalTracker.GetAllGoals()
		if err != nil {
			return fmt.Errorf("failed to list goals: %w", err)
		}

		if len(goals) == 0 {
			fmt.Println("No goals found.")
			return nil
		}

		// Stable display order: oldest goal first.
		sort.Slice(goals, func(i, j int) bool {
			return goals[i].CreatedAt.Before(goals[j].CreatedAt)
		})

		faint := color.New(color.Faint)
		for _, g := range goals {
			report, err := goalTracker.GetProgressReport(g.ID)
			if err != nil {
				return fmt.Errorf("failed to get progress for %s: %w", g.ID[:8], err)
			}
			fmt.Printf("%s %s %5.1f%%  %.2f/%.2f %s  %s  due %s\n",
				faint.Sprint(g.ID[:8]),
				padRight(truncate(g.Name, 20), 20),
				report.Percentage,
				report.CurrentValue, g.TargetValue, g.TargetMetric,
				statusColor(report.Status).Sprint(padRight(string(report.Status), 9)),
				g.Deadline.Format("2006-01-02"))
		}

		return nil
	},
}

var goalShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show goal progress report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := storage.ResolveGoalID(store, args[0])
		if err != nil {
			return fmt.Errorf("goal not found: %s", args[0])
		}

		report, err := goalTracker.GetProgressReport(id)
		if err != nil {
			return fmt.Errorf("failed to get progress: %w", err)
		}

		g := report.Goal
		fmt.Printf("Goal: %s\n", g.Name)
		fmt.Printf("ID: %s\n", g.ID[:8])
		fmt.Printf("Metric: %s\n", g.TargetMetric)
		fmt.Printf("Target: %.2f\n", report.TargetValue)
		fmt.Printf("Current: %.2f\n", report.CurrentValue)
		fmt.Printf("Progress: %.1f%%\n", report.Percentage)
		fmt.Printf("Status: %s\n", statusColor(report.Status).Sprint(report.Status))
		fmt.Printf("Window: %s to %s\n",
			g.CreatedAt.Format("2006-01-02"), g.Deadline.Format("2006-01-02"))

		return nil
	},
}

var goalEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a goal",
	Long: `Edit a goal by its ID or ID prefix.

Only the fields you pass as flags change; everything else keeps its
current value. The goal keeps its ID and creation time, so its
measurement window start is preserved.

EXAMPLES:

  fitlog goal edit abc12345 --target 150
  fitlog goal edit abc1 --name "Spring distance" --deadline 2025-05-31`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := storage.ResolveGoalID(store, args[0])
		if err != nil {
			return fmt.Errorf("goal not found: %s", args[0])
		}

		g, err := goalTracker.GetGoal(id)
		if err != nil {
			return fmt.Errorf("failed to get goal: %w", err)
		}

		in := models.GoalInput{
			Name:         g.Name,
			TargetMetric: string(g.TargetMetric),
			TargetValue:  &g.TargetValue,
			Deadline:     &g.Deadline,
		}

		flags := cmd.Flags()
		changed := false
		if flags.Changed("name") {
			in.Name = goalName
			changed = true
		}
		if flags.Changed("metric") {
			in.TargetMetric = goalMetric
			changed = true
		}
		if flags.Changed("target") {
			in.TargetValue = &goalTarget
			changed = true
		}
		if flags.Changed("deadline") {
			t, err := parseTime(goalDeadline)
			if err != nil {
				return fmt.Errorf("invalid deadline: %s", goalDeadline)
			}
			in.Deadline = &t
			changed = true
		}
		if !changed {
			fmt.Println("Nothing to change.")
			return nil
		}

		updated, err := goalTracker.UpdateGoal(id, in)
		if err != nil {
			return fmt.Errorf("failed to update goal: %w", err)
		}

		color.Green("✓ Updated goal %q", updated.Name)
		fmt.Printf("  %s %s %.2f by %s\n",
			color.New(color.Faint).Sprint(updated.ID[:8]),
			updated.TargetMetric, updated.TargetValue, updated.Deadline.Format("2006-01-02"))

		return nil
	},
}

var goalDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a goal",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := storage.ResolveGoalID(store, args[0])
		if err != nil {
			return fmt.Errorf("goal not found: %s", args[0])
		}

		g, err := goalTracker.GetGoal(id)
		if err != nil {
			return fmt.Errorf("failed to get goal: %w", err)
		}

		if err := goalTracker.DeleteGoal(id); err != nil {
			return fmt.Errorf("failed to delete goal: %w", err)
		}

		color.Yellow("✗ Deleted goal %q", g.Name)
		return nil
	},
}

func statusColor(s models.GoalStatus) *color.Color {
	switch s {
	case models.StatusCompleted:
		return color.New(color.FgGreen)
	case models.StatusMissed:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgCyan)
	}
}

func init() {
	goalAddCmd.Flags().StringVar(&goalDeadline, "deadline", "", "goal deadline (YYYY-MM-DD), required")

	goalEditCmd.Flags().StringVar(&goalName, "name", "", "goal name")
	goalEditCmd.Flags().StringVar(&goalMetric, "metric", "", "target metric")
	goalEditCmd.Flags().Float64Var(&goalTarget, "target", 0, "target value")
	goalEditCmd.Flags().StringVar(&goalDeadline, "deadline", "", "goal deadline (YYYY-MM-DD)")

	goalCmd.AddCommand(goalAddCmd)
	goalCmd.AddCommand(goalListCmd)
	goalCmd.AddCommand(goalShowCmd)
	goalCmd.AddCommand(goalEditCmd)
	goalCmd.AddCommand(goalDeleteCmd)
	rootCmd.AddCommand(goalCmd)
}
