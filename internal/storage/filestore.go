// ABOUTME: Plain-file Store implementation, the degraded fallback backend.
// ABOUTME: Each record is one pretty-printed JSON document under activities/ or goals/.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/fitlog/internal/models"
)

// FileStore implements Store with one JSON file per record. It trades
// performance for a data directory a user can read and edit by hand.
type FileStore struct {
	root string
}

var _ Store = (*FileStore)(nil)

// OpenFileStore creates the record directories under root if needed.
func OpenFileStore(root string) (*FileStore, error) {
	for _, dir := range []string{
		filepath.Join(root, "activities"),
		filepath.Join(root, "goals"),
	} {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}
	return &FileStore{root: root}, nil
}

// Close is a no-op; files are closed after every operation.
func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) activityPath(id string) string {
	return filepath.Join(s.root, "activities", id+".json")
}

func (s *FileStore) goalPath(id string) string {
	return filepath.Join(s.root, "goals", id+".json")
}

func (s *FileStore) SaveActivity(a *models.Activity) error {
	return writeRecord(s.activityPath(a.ID), a, fmt.Sprintf("save activity %s", a.ID))
}

func (s *FileStore) LoadActivity(id string) (*models.Activity, error) {
	var a models.Activity
	if err := readRecord(s.activityPath(id), &a, id, "activity"); err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *FileStore) LoadAllActivities() ([]*models.Activity, error) {
	dir := filepath.Join(s.root, "activities")
	files, err := recordFiles(dir, "load activities")
	if err != nil {
		return nil, err
	}
	activities := make([]*models.Activity, 0, len(files))
	for _, path := range files {
		var a models.Activity
		if err := readRecord(path, &a, recordID(path), "activity"); err != nil {
			return nil, err
		}
		activities = append(activities, &a)
	}
	return activities, nil
}

func (s *FileStore) UpdateActivity(a *models.Activity) error {
	return writeRecord(s.activityPath(a.ID), a, fmt.Sprintf("update activity %s", a.ID))
}

func (s *FileStore) DeleteActivity(id string) error {
	return deleteRecord(s.activityPath(id), id, "activity")
}

func (s *FileStore) SaveGoal(g *models.Goal) error {
	return writeRecord(s.goalPath(g.ID), g, fmt.Sprintf("save goal %s", g.ID))
}

func (s *FileStore) LoadGoal(id string) (*models.Goal, error) {
	var g models.Goal
	if err := readRecord(s.goalPath(id), &g, id, "goal"); err != nil {
		return nil, err
	}
	return &g, nil
}

func (s *FileStore) LoadAllGoals() ([]*models.Goal, error) {
	dir := filepath.Join(s.root, "goals")
	files, err := recordFiles(dir, "load goals")
	if err != nil {
		return nil, err
	}
	goals := make([]*models.Goal, 0, len(files))
	for _, path := range files {
		var g models.Goal
		if err := readRecord(path, &g, recordID(path), "goal"); err != nil {
			return nil, err
		}
		goals = append(goals, &g)
	}
	return goals, nil
}

func (s *FileStore) UpdateGoal(g *models.Goal) error {
	return writeRecord(s.goalPath(g.ID), g, fmt.Sprintf("update goal %s", g.ID))
}

func (s *FileStore) DeleteGoal(id string) error {
	return deleteRecord(s.goalPath(id), id, "goal")
}

func writeRecord(path string, v any, op string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return newError(KindSerialization, err, "%s", op)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return newError(KindWrite, err, "%s", op)
	}
	return nil
}

func readRecord(path string, v any, id, entity string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return newError(KindRead, nil, "not found: %s", id)
		}
		return newError(KindRead, err, "load %s %s", entity, id)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return newError(KindSerialization, err, "decode %s %s", entity, id)
	}
	return nil
}

func deleteRecord(path, id, entity string) error {
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return newError(KindDelete, nil, "not found: %s", id)
		}
		return newError(KindDelete, err, "delete %s %s", entity, id)
	}
	return nil
}

// recordFiles lists the JSON record paths in dir, skipping anything else
// a user may have dropped there.
func recordFiles(dir, op string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, newError(KindRead, err, "%s", op)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}

func recordID(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".json")
}
