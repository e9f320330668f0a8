// ABOUTME: Goal model, target metrics, and the derived goal-status rule.
// ABOUTME: Goals measure activities dated between createdAt and deadline against a target value.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TargetMetric represents the aggregate an activity goal measures.
type TargetMetric string

const (
	MetricTotalDistance TargetMetric = "total_distance"
	MetricTotalDuration TargetMetric = "total_duration"
	MetricTotalCalories TargetMetric = "total_calories"
	MetricWorkoutCount  TargetMetric = "workout_count"
)

// AllTargetMetrics returns all valid target metrics.
var AllTargetMetrics = []TargetMetric{
	MetricTotalDistance, MetricTotalDuration, MetricTotalCalories, MetricWorkoutCount,
}

// IsValidTargetMetric checks if a string is a valid target metric.
func IsValidTargetMetric(s string) bool {
	for _, tm := range AllTargetMetrics {
		if string(tm) == s {
			return true
		}
	}
	return false
}

// TargetMetricNames returns the valid metric names joined for messages.
func TargetMetricNames() string {
	names := make([]string, len(AllTargetMetrics))
	for i, tm := range AllTargetMetrics {
		names[i] = string(tm)
	}
	return strings.Join(names, ", ")
}

// GoalStatus is the derived state of a goal. It is computed on read and
// never persisted.
type GoalStatus string

const (
	StatusActive    GoalStatus = "active"
	StatusCompleted GoalStatus = "completed"
	StatusMissed    GoalStatus = "missed"
)

// GoalStatusFor derives a goal's status from its progress percentage and
// deadline. Completed is reachable on either side of the deadline; missed
// only after it; active only before it.
func GoalStatusFor(progress float64, now, deadline time.Time) GoalStatus {
	if !now.Before(deadline) {
		if progress >= 100 {
			return StatusCompleted
		}
		return StatusMissed
	}
	if progress >= 100 {
		return StatusCompleted
	}
	return StatusActive
}

// Goal represents a target over activities logged between its creation
// time and its deadline.
type Goal struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	TargetMetric TargetMetric `json:"targetMetric"`
	TargetValue  float64      `json:"targetValue"`
	Deadline     time.Time    `json:"deadline"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// GoalInput carries raw goal fields before validation.
type GoalInput struct {
	Name         string
	TargetMetric string
	TargetValue  *float64
	Deadline     *time.Time
}

// ValidateGoal checks every field rule in order and collects one error
// per violated rule. The deadline rule compares against the clock at the
// moment of validation. Returns nil when the input is valid.
func ValidateGoal(in GoalInput) *ValidationError {
	var verr ValidationError
	if strings.TrimSpace(in.Name) == "" {
		verr.add("name", "Goal name is required")
	}
	if !IsValidTargetMetric(in.TargetMetric) {
		verr.add("targetMetric", "Target metric must be one of: "+TargetMetricNames())
	}
	if in.TargetValue == nil || *in.TargetValue <= 0 {
		verr.add("targetValue", "Target value must be a positive number")
	}
	if in.Deadline == nil || in.Deadline.IsZero() || !in.Deadline.After(time.Now()) {
		verr.add("deadline", "Deadline must be a future date")
	}
	return verr.orNil()
}

// NewGoal builds a Goal from validated input with a generated id and
// createdAt stamped to the current time. Callers must validate first;
// construction from invalid input is a programming error and panics.
func NewGoal(in GoalInput) *Goal {
	if verr := ValidateGoal(in); verr != nil {
		panic(fmt.Sprintf("NewGoal called with invalid input: %v", verr))
	}
	return &Goal{
		ID:           uuid.NewString(),
		Name:         in.Name,
		TargetMetric: TargetMetric(in.TargetMetric),
		TargetValue:  *in.TargetValue,
		Deadline:     *in.Deadline,
		CreatedAt:    time.Now(),
	}
}
