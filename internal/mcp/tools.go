// ABOUTME: MCP tool implementations for fitlog.
// ABOUTME: Provides CRUD over activities and goals plus statistics tools.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/fitlog/internal/models"
	"github.com/harperreed/fitlog/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// log_activity
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_activity",
		Description: "Log a workout (running, cycling, swimming, walking, strength_training)",
	}, s.handleLogActivity)

	// list_activities
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_activities",
		Description: "List recent activities, optionally filtered by type",
	}, s.handleListActivities)

	// get_activity
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_activity",
		Description: "Get one activity by ID or ID prefix",
	}, s.handleGetActivity)

	// update_activity
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_activity",
		Description: "Replace an activity's fields (full payload, ID is kept)",
	}, s.handleUpdateActivity)

	// delete_activity
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_activity",
		Description: "Delete an activity by ID or ID prefix",
	}, s.handleDeleteActivity)

	// add_goal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_goal",
		Description: "Create a fitness goal against an aggregate metric",
	}, s.handleAddGoal)

	// list_goals
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_goals",
		Description: "List all goals with current progress and status",
	}, s.handleListGoals)

	// get_goal_progress
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_goal_progress",
		Description: "Get a goal's progress report (current value, percentage, status)",
	}, s.handleGetGoalProgress)

	// update_goal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_goal",
		Description: "Replace a goal's fields (ID and creation time are kept)",
	}, s.handleUpdateGoal)

	// delete_goal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_goal",
		Description: "Delete a goal by ID or ID prefix",
	}, s.handleDeleteGoal)

	// get_stats
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_stats",
		Description: "Get aggregate statistics for a period, optionally for one activity type",
	}, s.handleGetStats)

	// get_average_duration
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_average_duration",
		Description: "Get the mean duration across all logged activities",
	}, s.handleGetAverageDuration)
}

// Tool input/output types

type logActivityInput struct {
	ActivityType string  `json:"activity_type" jsonschema:"description=Type of activity (running, cycling, swimming, walking, strength_training),required"`
	Date         string  `json:"date,omitempty" jsonschema:"description=When the activity happened (ISO 8601), defaults to now"`
	Duration     float64 `json:"duration" jsonschema:"description=Duration in minutes,required"`
	Distance     float64 `json:"distance,omitempty" jsonschema:"description=Distance in kilometers"`
	Calories     float64 `json:"calories,omitempty" jsonschema:"description=Calories burned"`
}

type activityOutput struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

type listActivitiesInput struct {
	ActivityType string `json:"activity_type,omitempty" jsonschema:"description=Filter by activity type"`
	Limit        int    `json:"limit,omitempty" jsonschema:"description=Max results (default 20)"`
}

type activityIDInput struct {
	ID string `json:"id" jsonschema:"description=Activity ID or prefix,required"`
}

type updateActivityInput struct {
	ID           string  `json:"id" jsonschema:"description=Activity ID or prefix,required"`
	ActivityType string  `json:"activity_type" jsonschema:"description=Type of activity,required"`
	Date         string  `json:"date" jsonschema:"description=When the activity happened (ISO 8601),required"`
	Duration     float64 `json:"duration" jsonschema:"description=Duration in minutes,required"`
	Distance     float64 `json:"distance,omitempty" jsonschema:"description=Distance in kilometers"`
	Calories     float64 `json:"calories,omitempty" jsonschema:"description=Calories burned"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type addGoalInput struct {
	Name         string  `json:"name" jsonschema:"description=Goal name,required"`
	TargetMetric string  `json:"target_metric" jsonschema:"description=Metric to reach (total_distance, total_duration, total_calories, workout_count),required"`
	TargetValue  float64 `json:"target_value" jsonschema:"description=Target value to reach,required"`
	Deadline     string  `json:"deadline" jsonschema:"description=Goal deadline (ISO 8601), must be in the future,required"`
}

type goalOutput struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

type goalIDInput struct {
	ID string `json:"id" jsonschema:"description=Goal ID or prefix,required"`
}

type listGoalsInput struct{}

type updateGoalInput struct {
	ID           string  `json:"id" jsonschema:"description=Goal ID or prefix,required"`
	Name         string  `json:"name" jsonschema:"description=Goal name,required"`
	TargetMetric string  `json:"target_metric" jsonschema:"description=Metric to reach,required"`
	TargetValue  float64 `json:"target_value" jsonschema:"description=Target value to reach,required"`
	Deadline     string  `json:"deadline" jsonschema:"description=Goal deadline (ISO 8601),required"`
}

type goalProgressOutput struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	TargetMetric string  `json:"target_metric"`
	TargetValue  float64 `json:"target_value"`
	CurrentValue float64 `json:"current_value"`
	Percentage   float64 `json:"percentage"`
	Status       string  `json:"status"`
	Deadline     string  `json:"deadline"`
}

type getStatsInput struct {
	Period       string `json:"period,omitempty" jsonschema:"description=Named period: week (default) or month"`
	From         string `json:"from,omitempty" jsonschema:"description=Custom period start (ISO 8601), requires to"`
	To           string `json:"to,omitempty" jsonschema:"description=Custom period end (ISO 8601), requires from"`
	ActivityType string `json:"activity_type,omitempty" jsonschema:"description=Restrict stats to one activity type"`
}

type averageDurationInput struct{}

type averageDurationOutput struct {
	AverageDurationMinutes float64 `json:"average_duration_minutes"`
	Message                string  `json:"message"`
}

// parseDate accepts RFC 3339 timestamps plus the shorter date formats
// the CLI takes.
func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD or RFC 3339)", s)
}

// Tool handlers

func (s *Server) handleLogActivity(ctx context.Context, req *mcp.CallToolRequest, input logActivityInput) (*mcp.CallToolResult, activityOutput, error) {
	date := time.Now()
	if input.Date != "" {
		t, err := parseDate(input.Date)
		if err != nil {
			return nil, activityOutput{}, err
		}
		date = t
	}

	a, err := s.activities.CreateActivity(models.ActivityInput{
		Type:     input.ActivityType,
		Date:     &date,
		Duration: &input.Duration,
		Distance: &input.Distance,
		Calories: &input.Calories,
	})
	if err != nil {
		return nil, activityOutput{}, fmt.Errorf("failed to log activity: %w", err)
	}

	return nil, activityOutput{
		ID:      a.ID[:8],
		Type:    string(a.Type),
		Message: fmt.Sprintf("Logged %s: %.0f min, %.2f km (ID: %s)", a.Type, a.Duration, a.Distance, a.ID[:8]),
	}, nil
}

func (s *Server) handleListActivities(ctx context.Context, req *mcp.CallToolRequest, input listActivitiesInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	var activities []*models.Activity
	var err error
	if input.ActivityType != "" {
		activities, err = s.activities.GetActivitiesByType(models.ActivityType(input.ActivityType))
	} else {
		activities, err = s.activities.GetAllActivities()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list activities: %w", err)
	}

	if len(activities) > input.Limit {
		activities = activities[:input.Limit]
	}
	if len(activities) == 0 {
		return nil, map[string]interface{}{"message": "No activities found."}, nil
	}

	return nil, activities, nil
}

func (s *Server) handleGetActivity(ctx context.Context, req *mcp.CallToolRequest, input activityIDInput) (*mcp.CallToolResult, any, error) {
	id, err := storage.ResolveActivityID(s.store, input.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("activity not found: %s", input.ID)
	}

	a, err := s.activities.GetActivity(id)
	if err != nil {
		return nil, nil, err
	}

	return nil, a, nil
}

func (s *Server) handleUpdateActivity(ctx context.Context, req *mcp.CallToolRequest, input updateActivityInput) (*mcp.CallToolResult, simpleOutput, error) {
	id, err := storage.ResolveActivityID(s.store, input.ID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("activity not found: %s", input.ID)
	}

	date, err := parseDate(input.Date)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	if _, err := s.activities.UpdateActivity(id, models.ActivityInput{
		Type:     input.ActivityType,
		Date:     &date,
		Duration: &input.Duration,
		Distance: &input.Distance,
		Calories: &input.Calories,
	}); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to update activity: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Updated activity: %s", id[:8]),
	}, nil
}

func (s *Server) handleDeleteActivity(ctx context.Context, req *mcp.CallToolRequest, input activityIDInput) (*mcp.CallToolResult, simpleOutput, error) {
	id, err := storage.ResolveActivityID(s.store, input.ID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("activity not found: %s", input.ID)
	}

	if err := s.activities.DeleteActivity(id); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete activity: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted activity: %s", input.ID),
	}, nil
}

func (s *Server) handleAddGoal(ctx context.Context, req *mcp.CallToolRequest, input addGoalInput) (*mcp.CallToolResult, goalOutput, error) {
	deadline, err := parseDate(input.Deadline)
	if err != nil {
		return nil, goalOutput{}, err
	}

	g, err := s.goals.CreateGoal(models.GoalInput{
		Name:         input.Name,
		TargetMetric: input.TargetMetric,
		TargetValue:  &input.TargetValue,
		Deadline:     &deadline,
	})
	if err != nil {
		return nil, goalOutput{}, fmt.Errorf("failed to add goal: %w", err)
	}

	return nil, goalOutput{
		ID:   g.ID[:8],
		Name: g.Name,
		Message: fmt.Sprintf("Added goal %q: %s %.2f by %s (ID: %s)",
			g.Name, g.TargetMetric, g.TargetValue, g.Deadline.Format("2006-01-02"), g.ID[:8]),
	}, nil
}

func (s *Server) handleListGoals(ctx context.Context, req *mcp.CallToolRequest, input listGoalsInput) (*mcp.CallToolResult, any, error) {
	goals, err := s.goals.GetAllGoals()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list goals: %w", err)
	}
	if len(goals) == 0 {
		return nil, map[string]interface{}{"message": "No goals found."}, nil
	}

	out := make([]goalProgressOutput, 0, len(goals))
	for _, g := range goals {
		report, err := s.goals.GetProgressReport(g.ID)
		if err != nil {
			continue
		}
		out = append(out, goalProgressOutput{
			ID:           g.ID[:8],
			Name:         g.Name,
			TargetMetric: string(g.TargetMetric),
			TargetValue:  g.TargetValue,
			CurrentValue: report.CurrentValue,
			Percentage:   report.Percentage,
			Status:       string(report.Status),
			Deadline:     g.Deadline.Format("2006-01-02"),
		})
	}

	return nil, out, nil
}

func (s *Server) handleGetGoalProgress(ctx context.Context, req *mcp.CallToolRequest, input goalIDInput) (*mcp.CallToolResult, any, error) {
	id, err := storage.ResolveGoalID(s.store, input.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("goal not found: %s", input.ID)
	}

	report, err := s.goals.GetProgressReport(id)
	if err != nil {
		return nil, nil, err
	}

	return nil, report, nil
}

func (s *Server) handleUpdateGoal(ctx context.Context, req *mcp.CallToolRequest, input updateGoalInput) (*mcp.CallToolResult, simpleOutput, error) {
	id, err := storage.ResolveGoalID(s.store, input.ID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("goal not found: %s", input.ID)
	}

	deadline, err := parseDate(input.Deadline)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	if _, err := s.goals.UpdateGoal(id, models.GoalInput{
		Name:         input.Name,
		TargetMetric: input.TargetMetric,
		TargetValue:  &input.TargetValue,
		Deadline:     &deadline,
	}); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to update goal: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Updated goal: %s", id[:8]),
	}, nil
}

func (s *Server) handleDeleteGoal(ctx context.Context, req *mcp.CallToolRequest, input goalIDInput) (*mcp.CallToolResult, simpleOutput, error) {
	id, err := storage.ResolveGoalID(s.store, input.ID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("goal not found: %s", input.ID)
	}

	if err := s.goals.DeleteGoal(id); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete goal: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted goal: %s", input.ID),
	}, nil
}

func (s *Server) handleGetStats(ctx context.Context, req *mcp.CallToolRequest, input getStatsInput) (*mcp.CallToolResult, any, error) {
	if (input.From == "") != (input.To == "") {
		return nil, nil, fmt.Errorf("custom periods need both from and to")
	}

	now := time.Now()
	var start, end time.Time
	switch {
	case input.From != "":
		var err error
		if start, err = parseDate(input.From); err != nil {
			return nil, nil, err
		}
		if end, err = parseDate(input.To); err != nil {
			return nil, nil, err
		}
	case input.Period == "month":
		start, end = now.Add(-30*24*time.Hour), now
	default:
		start, end = now.Add(-7*24*time.Hour), now
	}

	if input.ActivityType != "" {
		if !models.IsValidActivityType(input.ActivityType) {
			return nil, nil, fmt.Errorf("unknown activity type: %s", input.ActivityType)
		}
		return nil, s.analytics.StatsByType(models.ActivityType(input.ActivityType), start, end), nil
	}

	return nil, s.analytics.StatsByPeriod(start, end), nil
}

func (s *Server) handleGetAverageDuration(ctx context.Context, req *mcp.CallToolRequest, input averageDurationInput) (*mcp.CallToolResult, averageDurationOutput, error) {
	avg := s.analytics.AverageDuration()
	return nil, averageDurationOutput{
		AverageDurationMinutes: avg,
		Message:                fmt.Sprintf("Average activity duration: %.1f minutes", avg),
	}, nil
}
