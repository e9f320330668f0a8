// ABOUTME: ActivityManager provides CRUD and derived queries over activities.
// ABOUTME: Every read goes back to the Store; nothing is cached between calls.
package service

import (
	"sort"
	"time"

	"github.com/harperreed/fitlog/internal/models"
	"github.com/harperreed/fitlog/internal/storage"
)

// ActivityManager handles activity CRUD plus type and date-range queries.
// Errors are *models.ValidationError, *storage.Error, or *NotFoundError.
type ActivityManager struct {
	store storage.Store
}

// NewActivityManager creates an ActivityManager over the given store.
func NewActivityManager(store storage.Store) *ActivityManager {
	return &ActivityManager{store: store}
}

// CreateActivity validates the input, builds the record, and saves it.
func (m *ActivityManager) CreateActivity(in models.ActivityInput) (*models.Activity, error) {
	if verr := models.ValidateActivity(in); verr != nil {
		return nil, verr
	}
	a := models.NewActivity(in)
	if err := m.store.SaveActivity(a); err != nil {
		return nil, err
	}
	return a, nil
}

// GetActivity loads one activity by id. A missing id yields a
// NotFoundError.
func (m *ActivityManager) GetActivity(id string) (*models.Activity, error) {
	a, err := m.store.LoadActivity(id)
	if err != nil {
		return nil, notFoundFromRead(err, "Activity", id)
	}
	return a, nil
}

// GetAllActivities returns every activity sorted by date, most recent
// first. Equal dates keep no particular relative order.
func (m *ActivityManager) GetAllActivities() ([]*models.Activity, error) {
	activities, err := m.store.LoadAllActivities()
	if err != nil {
		return nil, err
	}
	sort.Slice(activities, func(i, j int) bool {
		return activities[i].Date.After(activities[j].Date)
	})
	return activities, nil
}

// GetActivitiesByType returns all activities of exactly the given type,
// most recent first.
func (m *ActivityManager) GetActivitiesByType(t models.ActivityType) ([]*models.Activity, error) {
	activities, err := m.GetAllActivities()
	if err != nil {
		return nil, err
	}
	filtered := make([]*models.Activity, 0, len(activities))
	for _, a := range activities {
		if a.Type == t {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

// GetActivitiesByDateRange returns activities dated within
// [start, end], inclusive on both bounds, most recent first.
func (m *ActivityManager) GetActivitiesByDateRange(start, end time.Time) ([]*models.Activity, error) {
	activities, err := m.GetAllActivities()
	if err != nil {
		return nil, err
	}
	filtered := make([]*models.Activity, 0, len(activities))
	for _, a := range activities {
		if !a.Date.Before(start) && !a.Date.After(end) {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}

// UpdateActivity replaces the record for id with a freshly-validated
// payload. The id is kept; every other field comes from the input.
func (m *ActivityManager) UpdateActivity(id string, in models.ActivityInput) (*models.Activity, error) {
	if _, err := m.GetActivity(id); err != nil {
		return nil, err
	}
	if verr := models.ValidateActivity(in); verr != nil {
		return nil, verr
	}
	updated := models.NewActivity(in)
	updated.ID = id
	if err := m.store.UpdateActivity(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteActivity removes the activity with the given id.
func (m *ActivityManager) DeleteActivity(id string) error {
	if _, err := m.GetActivity(id); err != nil {
		return err
	}
	return m.store.DeleteActivity(id)
}
