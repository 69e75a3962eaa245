package idea

import (
	"errors"
	"fmt"
)

// ErrNotFound means the service answered and the idea does not exist.
var ErrNotFound = errors.New("idea not found")

// ServiceError is a failure reported by the idea service itself.
type ServiceError struct {
	Op      string
	Status  int
	Message string
}

func (e *ServiceError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: service error (status %d): %s", e.Op, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: service error: %s", e.Op, e.Message)
}

// NetworkError means the service could not be reached.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ValidationError wraps a record that breaks the Idea invariants.
type ValidationError struct {
	Op  string
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: invalid idea: %v", e.Op, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err says the idea does not exist,
// as opposed to the service being unable to tell.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
