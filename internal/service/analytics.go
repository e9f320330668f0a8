// ABOUTME: AnalyticsEngine aggregates activity statistics over time periods.
// ABOUTME: Degrades to zero-valued stats on storage failure instead of erroring.
package service

import (
	"time"

	"github.com/harperreed/fitlog/internal/models"
)

// TypeStats holds the four aggregate totals for one activity type.
type TypeStats struct {
	TotalDistance float64 `json:"totalDistance"`
	TotalDuration float64 `json:"totalDuration"`
	TotalCalories float64 `json:"totalCalories"`
	WorkoutCount  int     `json:"workoutCount"`
}

func (s *TypeStats) add(a *models.Activity) {
	s.TotalDistance += a.Distance
	s.TotalDuration += a.Duration
	s.TotalCalories += a.Calories
	s.WorkoutCount++
}

// Statistics holds aggregate totals for a period plus a per-type
// breakdown of the same totals.
type Statistics struct {
	TotalDistance   float64                            `json:"totalDistance"`
	TotalDuration   float64                            `json:"totalDuration"`
	TotalCalories   float64                            `json:"totalCalories"`
	WorkoutCount    int                                `json:"workoutCount"`
	BreakdownByType map[models.ActivityType]*TypeStats `json:"breakdownByType"`
}

func emptyStatistics() *Statistics {
	return &Statistics{BreakdownByType: make(map[models.ActivityType]*TypeStats)}
}

// AnalyticsEngine computes read-only statistics over activities. It
// never returns an error: when the underlying read fails, every method
// reports empty, zero-valued results instead.
type AnalyticsEngine struct {
	activities *ActivityManager
}

// NewAnalyticsEngine creates an AnalyticsEngine over the given
// ActivityManager.
func NewAnalyticsEngine(activities *ActivityManager) *AnalyticsEngine {
	return &AnalyticsEngine{activities: activities}
}

// WeeklyStats aggregates the last seven days, ending now.
func (e *AnalyticsEngine) WeeklyStats() *Statistics {
	now := time.Now()
	return e.StatsByPeriod(now.Add(-7*24*time.Hour), now)
}

// MonthlyStats aggregates the last thirty days, ending now.
func (e *AnalyticsEngine) MonthlyStats() *Statistics {
	now := time.Now()
	return e.StatsByPeriod(now.Add(-30*24*time.Hour), now)
}

// StatsByPeriod aggregates activities dated within [start, end],
// inclusive on both bounds.
func (e *AnalyticsEngine) StatsByPeriod(start, end time.Time) *Statistics {
	activities, err := e.activities.GetActivitiesByDateRange(start, end)
	if err != nil {
		return emptyStatistics()
	}
	stats := emptyStatistics()
	for _, a := range activities {
		stats.TotalDistance += a.Distance
		stats.TotalDuration += a.Duration
		stats.TotalCalories += a.Calories
		stats.WorkoutCount++

		ts, ok := stats.BreakdownByType[a.Type]
		if !ok {
			ts = &TypeStats{}
			stats.BreakdownByType[a.Type] = ts
		}
		ts.add(a)
	}
	return stats
}

// StatsByType aggregates only the given activity type within
// [start, end].
func (e *AnalyticsEngine) StatsByType(t models.ActivityType, start, end time.Time) *TypeStats {
	activities, err := e.activities.GetActivitiesByDateRange(start, end)
	if err != nil {
		return &TypeStats{}
	}
	stats := &TypeStats{}
	for _, a := range activities {
		if a.Type == t {
			stats.add(a)
		}
	}
	return stats
}

// AverageDuration returns the mean duration across every stored
// activity, or 0 when there are none.
func (e *AnalyticsEngine) AverageDuration() float64 {
	activities, err := e.activities.GetAllActivities()
	if err != nil || len(activities) == 0 {
		return 0
	}
	var total float64
	for _, a := range activities {
		total += a.Duration
	}
	return total / float64(len(activities))
}
