package application

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an operation references an id with no row.
var ErrNotFound = errors.New("link not found")

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// PersistenceError wraps a storage failure. The attempted mutation did not
// apply; callers surface it and do not retry.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
