package services

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSurveyNotFound     = errors.New("survey response not found")
)

// ValidationError reports a single malformed or out-of-range input field.
// Uniqueness violations are not validation errors; they surface as the
// duplicate sentinels above.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func newValidationError(field string, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
