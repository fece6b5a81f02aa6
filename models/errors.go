package models

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound covers both "does not exist" and "owned by someone
	// else"; callers must not be able to tell the two apart.
	ErrNotFound = errors.New("resource not found")

	ErrDuplicateEmail = errors.New("email already registered")
)

// ValidationError lists every violated field in one error, so a bad
// request reports all problems at once.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Violations, ", ")
}
