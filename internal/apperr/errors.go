// Package apperr defines the error taxonomy shared by services and handlers.
// Three kinds exist: authorization failures, validation rejections, and
// not-found. Not-found deliberately reads the same as not-owned so callers
// cannot probe for the existence of other owners' records.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned when no owner identity is resolvable
	// for a write, or a referenced entity belongs to someone else.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound covers missing ids, soft-deleted rows, and rows owned
	// by a different user alike.
	ErrNotFound = errors.New("not found")
)

// ValidationError is a terminal rejection with a human-readable reason.
// Operations that return one must not have applied any side effects.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Validation builds a ValidationError.
func Validation(format string, args ...interface{}) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
