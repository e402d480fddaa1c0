package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports that a referenced entity does not exist
	ErrNotFound = errors.New("not found")
	// ErrInvalidTransition reports an idea lifecycle violation
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrValidation reports a field that is missing or out of range
	ErrValidation = errors.New("validation failed")
)

// ValidationError wraps ErrValidation with the offending field
func ValidationError(field, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s: %s", ErrValidation, field, fmt.Sprintf(format, args...))
}

// ValidateProgress checks the [0,100] progress range
func ValidateProgress(progress int) error {
	if progress < 0 || progress > 100 {
		return ValidationError("progress", "must be between 0 and 100, got %d", progress)
	}
	return nil
}
