// ABOUTME: Service-level error types shared by the managers.
// ABOUTME: NotFoundError marks a by-id lookup that matched nothing.
package service

import (
	"errors"
	"fmt"

	"github.com/harperreed/fitlog/internal/storage"
)

// NotFoundError reports a by-id lookup for a record that does not exist.
// The managers synthesize it from a read failure on a by-id load; it is
// not a storage kind of its own.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Entity, e.ID)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// notFoundFromRead converts a read-kind storage failure on a by-id load
// into a NotFoundError; other failures pass through untouched.
func notFoundFromRead(err error, entity, id string) error {
	var serr *storage.Error
	if errors.As(err, &serr) && serr.Kind == storage.KindRead {
		return &NotFoundError{Entity: entity, ID: id}
	}
	return err
}
