// ABOUTME: Data migration between fitlog storage backends.
// ABOUTME: Copies activities and goals from a source Store to a destination Store.
package storage

import (
	"fmt"
	"os"
)

// MigrateSummary holds counts of migrated entities.
type MigrateSummary struct {
	Activities int
	Goals      int
}

// MigrateData copies all records from src to dst. Records keep their ids,
// so re-running against the same destination overwrites rather than
// duplicates. The destination should normally be empty.
func MigrateData(src, dst Store) (*MigrateSummary, error) {
	summary := &MigrateSummary{}

	activities, err := src.LoadAllActivities()
	if err != nil {
		return nil, fmt.Errorf("load source activities: %w", err)
	}
	for _, a := range activities {
		if err := dst.SaveActivity(a); err != nil {
			return nil, fmt.Errorf("save activity %s: %w", a.ID, err)
		}
		summary.Activities++
	}

	goals, err := src.LoadAllGoals()
	if err != nil {
		return nil, fmt.Errorf("load source goals: %w", err)
	}
	for _, g := range goals {
		if err := dst.SaveGoal(g); err != nil {
			return nil, fmt.Errorf("save goal %s: %w", g.ID, err)
		}
		summary.Goals++
	}

	return summary, nil
}

// IsDirNonEmpty checks whether a directory exists and contains anything.
// Returns false if the directory does not exist or is empty.
func IsDirNonEmpty(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read directory %q: %w", path, err)
	}
	return len(entries) > 0, nil
}
