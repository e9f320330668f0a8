// ABOUTME: Shared fixtures for service tests.
// ABOUTME: stubStore is a map-backed Store with injectable failures.
package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/fitlog/internal/models"
	"github.com/harperreed/fitlog/internal/storage"
)

// stubStore implements storage.Store in memory. Error fields, when set,
// are returned by the matching operation instead of touching the maps.
type stubStore struct {
	activities map[string]*models.Activity
	goals      map[string]*models.Goal

	saveActivityErr      error
	loadAllActivitiesErr error
	saveGoalErr          error
}

func newStubStore() *stubStore {
	return &stubStore{
		activities: make(map[string]*models.Activity),
		goals:      make(map[string]*models.Goal),
	}
}

func (s *stubStore) SaveActivity(a *models.Activity) error {
	if s.saveActivityErr != nil {
		return s.saveActivityErr
	}
	s.activities[a.ID] = a
	return nil
}

func (s *stubStore) LoadActivity(id string) (*models.Activity, error) {
	a, ok := s.activities[id]
	if !ok {
		return nil, &storage.Error{Kind: storage.KindRead, Message: "not found: " + id}
	}
	return a, nil
}

func (s *stubStore) LoadAllActivities() ([]*models.Activity, error) {
	if s.loadAllActivitiesErr != nil {
		return nil, s.loadAllActivitiesErr
	}
	out := make([]*models.Activity, 0, len(s.activities))
	for _, a := range s.activities {
		out = append(out, a)
	}
	return out, nil
}

func (s *stubStore) UpdateActivity(a *models.Activity) error {
	s.activities[a.ID] = a
	return nil
}

func (s *stubStore) DeleteActivity(id string) error {
	if _, ok := s.activities[id]; !ok {
		return &storage.Error{Kind: storage.KindDelete, Message: "not found: " + id}
	}
	delete(s.activities, id)
	return nil
}

func (s *stubStore) SaveGoal(g *models.Goal) error {
	if s.saveGoalErr != nil {
		return s.saveGoalErr
	}
	s.goals[g.ID] = g
	return nil
}

func (s *stubStore) LoadGoal(id string) (*models.Goal, error) {
	g, ok := s.goals[id]
	if !ok {
		return nil, &storage.Error{Kind: storage.KindRead, Message: "not found: " + id}
	}
	return g, nil
}

func (s *stubStore) LoadAllGoals() ([]*models.Goal, error) {
	out := make([]*models.Goal, 0, len(s.goals))
	for _, g := range s.goals {
		out = append(out, g)
	}
	return out, nil
}

func (s *stubStore) UpdateGoal(g *models.Goal) error {
	s.goals[g.ID] = g
	return nil
}

func (s *stubStore) DeleteGoal(id string) error {
	if _, ok := s.goals[id]; !ok {
		return &storage.Error{Kind: storage.KindDelete, Message: "not found: " + id}
	}
	delete(s.goals, id)
	return nil
}

func (s *stubStore) Close() error { return nil }

// newFixture wires up a stub store with a full service stack on top.
func newFixture() (*stubStore, *ActivityManager, *GoalTracker, *AnalyticsEngine) {
	store := newStubStore()
	manager := NewActivityManager(store)
	tracker := NewGoalTracker(store, manager)
	engine := NewAnalyticsEngine(manager)
	return store, manager, tracker, engine
}

func fptr(v float64) *float64 { return &v }

func tptr(t time.Time) *time.Time { return &t }

// runInput is a valid running activity dated in January 2024.
func runInput(day int) models.ActivityInput {
	return models.ActivityInput{
		Type:     "running",
		Date:     tptr(time.Date(2024, 1, day, 7, 30, 0, 0, time.UTC)),
		Duration: fptr(30),
		Distance: fptr(5),
		Calories: fptr(300),
	}
}

// storedActivity bypasses validation to place a record directly in the
// store with full control over every field.
func storedActivity(store *stubStore, at models.ActivityType, date time.Time, duration, distance, calories float64) *models.Activity {
	a := &models.Activity{
		ID:       uuid.NewString(),
		Type:     at,
		Date:     date,
		Duration: duration,
		Distance: distance,
		Calories: calories,
	}
	store.activities[a.ID] = a
	return a
}

// storedGoal bypasses validation to place a goal directly in the store,
// allowing past deadlines and pinned creation times.
func storedGoal(store *stubStore, metric models.TargetMetric, target float64, createdAt, deadline time.Time) *models.Goal {
	g := &models.Goal{
		ID:           uuid.NewString(),
		Name:         "test goal",
		TargetMetric: metric,
		TargetValue:  target,
		Deadline:     deadline,
		CreatedAt:    createdAt,
	}
	store.goals[g.ID] = g
	return g
}
