package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrCourseNotFound is returned when no course carries the requested id.
	ErrCourseNotFound = errors.New("course not found")
	// ErrContentNotFound is returned when a course has no content item with the requested id.
	ErrContentNotFound = errors.New("content not found")
	// ErrUnknownReward indicates a reward field name outside the four attempt ordinals.
	ErrUnknownReward = errors.New("unknown reward field")
	ErrUnknownColumn = errors.New("unknown report column")
)

// ValidationError reports a rejected field at the service boundary.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// IsValidation reports whether err wraps a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
