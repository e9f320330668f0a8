// ABOUTME: SQLite-backed Store implementation using modernc.org/sqlite.
// ABOUTME: Pure Go driver, WAL mode, RFC3339 timestamp columns.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/harperreed/fitlog/internal/models"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store on a single-file SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

var _ Store = (*SQLiteStore)(nil)

// OpenSQLite opens or creates a SQLite database at the given path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &SQLiteStore{db: db, path: path}
	if err := s.configurePragmas(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := s.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) configurePragmas() error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := s.db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %s: %w", pragma, err)
		}
	}
	return nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS activities (
		id TEXT PRIMARY KEY,
		activity_type TEXT NOT NULL,
		activity_date DATETIME NOT NULL,
		duration_minutes REAL NOT NULL,
		distance_km REAL NOT NULL,
		calories REAL NOT NULL
	);

	CREATE TABLE IF NOT EXISTS goals (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		target_metric TEXT NOT NULL,
		target_value REAL NOT NULL,
		deadline DATETIME NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_activities_date ON activities(activity_date DESC);
	CREATE INDEX IF NOT EXISTS idx_activities_type ON activities(activity_type);
	CREATE INDEX IF NOT EXISTS idx_goals_deadline ON goals(deadline);
	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteStore) SaveActivity(a *models.Activity) error {
	return s.upsertActivity(a, "save")
}

func (s *SQLiteStore) UpdateActivity(a *models.Activity) error {
	return s.upsertActivity(a, "update")
}

func (s *SQLiteStore) upsertActivity(a *models.Activity, op string) error {
	query := `
		INSERT OR REPLACE INTO activities (id, activity_type, activity_date, duration_minutes, distance_km, calories)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.Exec(query,
		a.ID,
		string(a.Type),
		a.Date.Format(time.RFC3339Nano),
		a.Duration,
		a.Distance,
		a.Calories,
	)
	if err != nil {
		return newError(KindWrite, err, "%s activity %s", op, a.ID)
	}
	return nil
}

func (s *SQLiteStore) LoadActivity(id string) (*models.Activity, error) {
	query := `
		SELECT id, activity_type, activity_date, duration_minutes, distance_km, calories
		FROM activities
		WHERE id = ?
	`
	a, err := scanActivityRow(s.db.QueryRow(query, id))
	if err != nil {
		return nil, classifyReadErr(err, id, "load activity")
	}
	return a, nil
}

func (s *SQLiteStore) LoadAllActivities() ([]*models.Activity, error) {
	query := `
		SELECT id, activity_type, activity_date, duration_minutes, distance_km, calories
		FROM activities
	`
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, newError(KindRead, err, "load activities")
	}
	defer rows.Close()

	var activities []*models.Activity
	for rows.Next() {
		var a models.Activity
		var typ, date string
		if err := rows.Scan(&a.ID, &typ, &date, &a.Duration, &a.Distance, &a.Calories); err != nil {
			return nil, newError(KindRead, err, "scan activity")
		}
		a.Type = models.ActivityType(typ)
		parsed, err := time.Parse(time.RFC3339Nano, date)
		if err != nil {
			return nil, newError(KindSerialization, err, "parse activity date")
		}
		a.Date = parsed
		activities = append(activities, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, newError(KindRead, err, "load activities")
	}
	return activities, nil
}

func (s *SQLiteStore) DeleteActivity(id string) error {
	return s.deleteRow("activities", "activity", id)
}

func (s *SQLiteStore) SaveGoal(g *models.Goal) error {
	return s.upsertGoal(g, "save")
}

func (s *SQLiteStore) UpdateGoal(g *models.Goal) error {
	return s.upsertGoal(g, "update")
}

func (s *SQLiteStore) upsertGoal(g *models.Goal, op string) error {
	query := `
		INSERT OR REPLACE INTO goals (id, name, target_metric, target_value, deadline, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.Exec(query,
		g.ID,
		g.Name,
		string(g.TargetMetric),
		g.TargetValue,
		g.Deadline.Format(time.RFC3339Nano),
		g.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return newError(KindWrite, err, "%s goal %s", op, g.ID)
	}
	return nil
}

func (s *SQLiteStore) LoadGoal(id string) (*models.Goal, error) {
	query := `
		SELECT id, name, target_metric, target_value, deadline, created_at
		FROM goals
		WHERE id = ?
	`
	g, err := scanGoalRow(s.db.QueryRow(query, id))
	if err != nil {
		return nil, classifyReadErr(err, id, "load goal")
	}
	return g, nil
}

func (s *SQLiteStore) LoadAllGoals() ([]*models.Goal, error) {
	query := `
		SELECT id, name, target_metric, target_value, deadline, created_at
		FROM goals
	`
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, newError(KindRead, err, "load goals")
	}
	defer rows.Close()

	var goals []*models.Goal
	for rows.Next() {
		var g models.Goal
		var metric, deadline, createdAt string
		if err := rows.Scan(&g.ID, &g.Name, &metric, &g.TargetValue, &deadline, &createdAt); err != nil {
			return nil, newError(KindRead, err, "scan goal")
		}
		if err := applyGoalTimes(&g, metric, deadline, createdAt); err != nil {
			return nil, err
		}
		goals = append(goals, &g)
	}
	if err := rows.Err(); err != nil {
		return nil, newError(KindRead, err, "load goals")
	}
	return goals, nil
}

func (s *SQLiteStore) DeleteGoal(id string) error {
	return s.deleteRow("goals", "goal", id)
}

func (s *SQLiteStore) deleteRow(table, entity, id string) error {
	result, err := s.db.Exec("DELETE FROM "+table+" WHERE id = ?", id)
	if err != nil {
		return newError(KindDelete, err, "delete %s %s", entity, id)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return newError(KindDelete, err, "delete %s %s", entity, id)
	}
	if affected == 0 {
		return newError(KindDelete, nil, "not found: %s", id)
	}
	return nil
}

// classifyReadErr maps a by-id scan error onto the storage error
// taxonomy: missing rows are read failures, malformed values keep their
// serialization kind, everything else is a read failure with the cause.
func classifyReadErr(err error, id, op string) *Error {
	if errors.Is(err, sql.ErrNoRows) {
		return newError(KindRead, nil, "not found: %s", id)
	}
	var serr *Error
	if errors.As(err, &serr) {
		return serr
	}
	return newError(KindRead, err, "%s %s", op, id)
}

func scanActivityRow(row *sql.Row) (*models.Activity, error) {
	var a models.Activity
	var typ, date string
	if err := row.Scan(&a.ID, &typ, &date, &a.Duration, &a.Distance, &a.Calories); err != nil {
		return nil, err
	}
	a.Type = models.ActivityType(typ)
	parsed, err := time.Parse(time.RFC3339Nano, date)
	if err != nil {
		return nil, newError(KindSerialization, err, "parse activity date")
	}
	a.Date = parsed
	return &a, nil
}

func scanGoalRow(row *sql.Row) (*models.Goal, error) {
	var g models.Goal
	var metric, deadline, createdAt string
	if err := row.Scan(&g.ID, &g.Name, &metric, &g.TargetValue, &deadline, &createdAt); err != nil {
		return nil, err
	}
	if err := applyGoalTimes(&g, metric, deadline, createdAt); err != nil {
		return nil, err
	}
	return &g, nil
}

// applyGoalTimes fills the typed fields parsed from their column text.
func applyGoalTimes(g *models.Goal, metric, deadline, createdAt string) error {
	g.TargetMetric = models.TargetMetric(metric)

	parsedDeadline, err := time.Parse(time.RFC3339Nano, deadline)
	if err != nil {
		return newError(KindSerialization, err, "parse goal deadline")
	}
	g.Deadline = parsedDeadline

	parsedCreated, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return newError(KindSerialization, err, "parse goal created_at")
	}
	g.CreatedAt = parsedCreated
	return nil
}
