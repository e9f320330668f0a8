// ABOUTME: Store interface and tagged error type for fitlog persistence.
// ABOUTME: Implemented by BadgerStore (default), SQLiteStore, and FileStore.
package storage

import (
	"fmt"

	"github.com/harperreed/fitlog/internal/models"
)

// ErrorKind classifies a storage failure by the operation class that
// produced it.
type ErrorKind string

const (
	KindRead          ErrorKind = "read"
	KindWrite         ErrorKind = "write"
	KindDelete        ErrorKind = "delete"
	KindSerialization ErrorKind = "serialization"
)

// Error is the failure type every Store operation returns. Message is the
// complete human-readable text; Err keeps the backend cause reachable for
// errors.Is and errors.As.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// newError builds an Error whose message includes the cause when one is
// present.
func newError(kind ErrorKind, cause error, format string, args ...any) *Error {
	msg := fmt.Sprintf(format, args...)
	if cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, cause)
	}
	return &Error{Kind: kind, Message: msg, Err: cause}
}

// Store is the persistence contract the services depend on. Save and
// Update both fully overwrite the record for an id; Load of a missing id
// fails with kind read; Delete of a missing id fails with kind delete.
// Every failure is a *Error. Implementations make each call atomic for
// its own record but guarantee nothing across calls.
type Store interface {
	SaveActivity(a *models.Activity) error
	LoadActivity(id string) (*models.Activity, error)
	LoadAllActivities() ([]*models.Activity, error)
	UpdateActivity(a *models.Activity) error
	DeleteActivity(id string) error

	SaveGoal(g *models.Goal) error
	LoadGoal(id string) (*models.Goal, error)
	LoadAllGoals() ([]*models.Goal, error)
	UpdateGoal(g *models.Goal) error
	DeleteGoal(id string) error

	Close() error
}
