package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks malformed engine input.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidState marks stored data that breaks an invariant, such as more
	// sold units than a lot holds.
	ErrInvalidState = errors.New("invalid state")
)

// ValidationError describes which input field was rejected and why.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Invalid builds a ValidationError with a formatted reason.
func Invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
