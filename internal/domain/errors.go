// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"strings"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when client input fails validation.
	// ValidationError values unwrap to it.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidDate is returned when a date string matches none of the accepted layouts.
	ErrInvalidDate = errors.New("invalid date")

	// ErrEmptyPatch is returned when a partial update carries no attributes.
	ErrEmptyPatch = errors.New("no attributes supplied")
)

// ValidationError carries one human-readable detail per invalid input.
// The API layer renders each detail as its own JSON:API error object.
type ValidationError struct {
	Details []string
}

// NewValidationError creates a ValidationError with the given details.
func NewValidationError(details ...string) *ValidationError {
	return &ValidationError{Details: details}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return ErrValidation.Error()
	}
	return ErrValidation.Error() + ": " + strings.Join(e.Details, "; ")
}

// Unwrap lets errors.Is(err, ErrValidation) match.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
