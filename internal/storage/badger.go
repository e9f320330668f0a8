// ABOUTME: Badger-backed Store implementation, the default backend.
// ABOUTME: Records are JSON values under activity:/goal: key prefixes.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	badger "github.com/dgraph-io/badger/v3"
	"github.com/harperreed/fitlog/internal/models"
)

const (
	ActivityPrefix = "activity:"
	GoalPrefix     = "goal:"
)

// BadgerConfig controls how the badger backend opens its database.
type BadgerConfig struct {
	Path       string
	InMemory   bool
	SyncWrites bool
	Logger     *slog.Logger
}

// BadgerStore implements Store on a local badger key-value database.
type BadgerStore struct {
	db *badger.DB
}

var _ Store = (*BadgerStore)(nil)

// OpenBadger opens or creates a badger database per cfg. InMemory mode
// keeps everything in RAM and needs no path.
func OpenBadger(cfg BadgerConfig) (*BadgerStore, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0750); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithLogger(newBadgerLogger(cfg.Logger))

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger database: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

// Close closes the underlying database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}

func activityKey(id string) string {
	return ActivityPrefix + id
}

func goalKey(id string) string {
	return GoalPrefix + id
}

func (s *BadgerStore) SaveActivity(a *models.Activity) error {
	return s.put(activityKey(a.ID), a, fmt.Sprintf("save activity %s", a.ID))
}

func (s *BadgerStore) LoadActivity(id string) (*models.Activity, error) {
	data, err := s.get(activityKey(id), id)
	if err != nil {
		return nil, err
	}
	var a models.Activity
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, newError(KindSerialization, err, "decode activity %s", id)
	}
	return &a, nil
}

func (s *BadgerStore) LoadAllActivities() ([]*models.Activity, error) {
	rows, err := s.listByPrefix(ActivityPrefix, "load activities")
	if err != nil {
		return nil, err
	}
	activities := make([]*models.Activity, 0, len(rows))
	for _, row := range rows {
		var a models.Activity
		if err := json.Unmarshal(row.value, &a); err != nil {
			return nil, newError(KindSerialization, err, "decode activity %s", row.id)
		}
		activities = append(activities, &a)
	}
	return activities, nil
}

func (s *BadgerStore) UpdateActivity(a *models.Activity) error {
	return s.put(activityKey(a.ID), a, fmt.Sprintf("update activity %s", a.ID))
}

func (s *BadgerStore) DeleteActivity(id string) error {
	return s.remove(activityKey(id), id, "activity")
}

func (s *BadgerStore) SaveGoal(g *models.Goal) error {
	return s.put(goalKey(g.ID), g, fmt.Sprintf("save goal %s", g.ID))
}

func (s *BadgerStore) LoadGoal(id string) (*models.Goal, error) {
	data, err := s.get(goalKey(id), id)
	if err != nil {
		return nil, err
	}
	var g models.Goal
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, newError(KindSerialization, err, "decode goal %s", id)
	}
	return &g, nil
}

func (s *BadgerStore) LoadAllGoals() ([]*models.Goal, error) {
	rows, err := s.listByPrefix(GoalPrefix, "load goals")
	if err != nil {
		return nil, err
	}
	goals := make([]*models.Goal, 0, len(rows))
	for _, row := range rows {
		var g models.Goal
		if err := json.Unmarshal(row.value, &g); err != nil {
			return nil, newError(KindSerialization, err, "decode goal %s", row.id)
		}
		goals = append(goals, &g)
	}
	return goals, nil
}

func (s *BadgerStore) UpdateGoal(g *models.Goal) error {
	return s.put(goalKey(g.ID), g, fmt.Sprintf("update goal %s", g.ID))
}

func (s *BadgerStore) DeleteGoal(id string) error {
	return s.remove(goalKey(id), id, "goal")
}

// put marshals v and writes it under key, overwriting any prior value.
func (s *BadgerStore) put(key string, v any, op string) error {
	data, err := json.Marshal(v)
	if err != nil {
		return newError(KindSerialization, err, "%s", op)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		return newError(KindWrite, err, "%s", op)
	}
	return nil
}

// get reads the raw value under key; a missing key is a read failure so
// callers can treat it as not-found.
func (s *BadgerStore) get(key, id string) ([]byte, error) {
	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, newError(KindRead, nil, "not found: %s", id)
		}
		return nil, newError(KindRead, err, "load %s", key)
	}
	return data, nil
}

type prefixRow struct {
	id    string
	value []byte
}

// listByPrefix collects every value whose key starts with prefix.
func (s *BadgerStore) listByPrefix(prefix, op string) ([]prefixRow, error) {
	var rows []prefixRow
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		p := []byte(prefix)
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			item := it.Item()
			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			rows = append(rows, prefixRow{
				id:    strings.TrimPrefix(string(item.Key()), prefix),
				value: value,
			})
		}
		return nil
	})
	if err != nil {
		return nil, newError(KindRead, err, "%s", op)
	}
	return rows, nil
}

// remove deletes key after checking it exists, so deleting a missing id
// fails instead of silently succeeding.
func (s *BadgerStore) remove(key, id, entity string) error {
	k := []byte(key)
	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(k); err != nil {
			return err
		}
		return txn.Delete(k)
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return newError(KindDelete, nil, "not found: %s", id)
		}
		return newError(KindDelete, err, "delete %s %s", entity, id)
	}
	return nil
}

// badgerLogger adapts slog onto badger's Logger interface so backend
// chatter flows through the application logger at debug level.
type badgerLogger struct {
	log *slog.Logger
}

func newBadgerLogger(log *slog.Logger) badgerLogger {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return badgerLogger{log: log}
}

func (l badgerLogger) Errorf(format string, args ...interface{}) {
	l.log.Error(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.log.Warn(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l badgerLogger) Infof(format string, args ...interface{}) {
	l.log.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l badgerLogger) Debugf(format string, args ...interface{}) {
	l.log.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}
