// ABOUTME: GoalTracker provides goal CRUD plus derived progress and status.
// ABOUTME: Progress scans activities dated inside the goal's measurement window.
package service

import (
	"time"

	"github.com/harperreed/fitlog/internal/models"
	"github.com/harperreed/fitlog/internal/storage"
)

// progressLoadFailure is the message reported when the activity scan
// behind a progress calculation fails.
const progressLoadFailure = "Failed to load activities for progress calculation"

// GoalTracker handles goal CRUD and computes progress and status on
// demand. Derived values are never persisted.
type GoalTracker struct {
	store      storage.Store
	activities *ActivityManager
}

// NewGoalTracker creates a GoalTracker over the given store, using the
// ActivityManager for the activity scans behind progress calculation.
func NewGoalTracker(store storage.Store, activities *ActivityManager) *GoalTracker {
	return &GoalTracker{store: store, activities: activities}
}

// CreateGoal validates the input, builds the record, and saves it.
func (t *GoalTracker) CreateGoal(in models.GoalInput) (*models.Goal, error) {
	if verr := models.ValidateGoal(in); verr != nil {
		return nil, verr
	}
	g := models.NewGoal(in)
	if err := t.store.SaveGoal(g); err != nil {
		return nil, err
	}
	return g, nil
}

// GetGoal loads one goal by id. A missing id yields a NotFoundError.
func (t *GoalTracker) GetGoal(id string) (*models.Goal, error) {
	g, err := t.store.LoadGoal(id)
	if err != nil {
		return nil, notFoundFromRead(err, "Goal", id)
	}
	return g, nil
}

// GetAllGoals returns every stored goal.
func (t *GoalTracker) GetAllGoals() ([]*models.Goal, error) {
	return t.store.LoadAllGoals()
}

// UpdateGoal replaces the record for id with a freshly-validated
// payload. The id and original creation time are kept; every other
// field comes from the input.
func (t *GoalTracker) UpdateGoal(id string, in models.GoalInput) (*models.Goal, error) {
	existing, err := t.GetGoal(id)
	if err != nil {
		return nil, err
	}
	if verr := models.ValidateGoal(in); verr != nil {
		return nil, verr
	}
	updated := models.NewGoal(in)
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	if err := t.store.UpdateGoal(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteGoal removes the goal with the given id.
func (t *GoalTracker) DeleteGoal(id string) error {
	if _, err := t.GetGoal(id); err != nil {
		return err
	}
	return t.store.DeleteGoal(id)
}

// CalculateProgress returns the percentage of the goal's target reached
// by activities dated inside [createdAt, deadline]. The result is capped
// at 100.
func (t *GoalTracker) CalculateProgress(goalID string) (float64, error) {
	g, err := t.GetGoal(goalID)
	if err != nil {
		return 0, err
	}
	activities, err := t.loadWindow(g)
	if err != nil {
		return 0, err
	}
	percentage := metricValue(g.TargetMetric, activities) / g.TargetValue * 100
	if percentage > 100 {
		percentage = 100
	}
	return percentage, nil
}

// CheckStatus derives the goal's current status from its progress and
// deadline. A goal is completed once progress reaches 100 on either
// side of the deadline, missed when the deadline passes short of that,
// and active otherwise.
func (t *GoalTracker) CheckStatus(goalID string) (models.GoalStatus, error) {
	progress, err := t.CalculateProgress(goalID)
	if err != nil {
		return "", err
	}
	g, err := t.GetGoal(goalID)
	if err != nil {
		return "", err
	}
	return models.GoalStatusFor(progress, time.Now(), g.Deadline), nil
}

// ProgressReport is a point-in-time snapshot of a goal and its derived
// progress.
type ProgressReport struct {
	Goal         *models.Goal      `json:"goal"`
	CurrentValue float64           `json:"currentValue"`
	TargetValue  float64           `json:"targetValue"`
	Percentage   float64           `json:"percentage"`
	Status       models.GoalStatus `json:"status"`
}

// GetProgressReport assembles a full progress snapshot for one goal. Any
// upstream failure short-circuits.
func (t *GoalTracker) GetProgressReport(goalID string) (*ProgressReport, error) {
	g, err := t.GetGoal(goalID)
	if err != nil {
		return nil, err
	}
	percentage, err := t.CalculateProgress(goalID)
	if err != nil {
		return nil, err
	}
	status, err := t.CheckStatus(goalID)
	if err != nil {
		return nil, err
	}
	activities, err := t.loadWindow(g)
	if err != nil {
		return nil, err
	}
	return &ProgressReport{
		Goal:         g,
		CurrentValue: metricValue(g.TargetMetric, activities),
		TargetValue:  g.TargetValue,
		Percentage:   percentage,
		Status:       status,
	}, nil
}

// loadWindow fetches the activities inside the goal's measurement
// window, wrapping any failure with the progress-calculation message.
func (t *GoalTracker) loadWindow(g *models.Goal) ([]*models.Activity, error) {
	activities, err := t.activities.GetActivitiesByDateRange(g.CreatedAt, g.Deadline)
	if err != nil {
		return nil, &storage.Error{
			Kind:    storage.KindRead,
			Message: progressLoadFailure,
			Err:     err,
		}
	}
	return activities, nil
}

// metricValue reduces a set of activities to a single number for the
// given target metric.
func metricValue(metric models.TargetMetric, activities []*models.Activity) float64 {
	var total float64
	switch metric {
	case models.MetricTotalDistance:
		for _, a := range activities {
			total += a.Distance
		}
	case models.MetricTotalDuration:
		for _, a := range activities {
			total += a.Duration
		}
	case models.MetricTotalCalories:
		for _, a := range activities {
			total += a.Calories
		}
	case models.MetricWorkoutCount:
		total = float64(len(activities))
	}
	return total
}
