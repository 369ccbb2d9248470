package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrIntegrity is returned when the store holds data that breaks an
	// invariant the code relies on, such as more than one row for an id.
	ErrIntegrity = errors.New("expect a single object but got multiple results")

	// ErrInvalidEntity is returned when the database rejects a write because
	// of a constraint on the row itself (foreign key, check, not null, type).
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrConflict is returned when a delete is blocked because other rows
	// still reference the entity, or a write would duplicate a unique value.
	ErrConflict = errors.New("entity conflict")

	// Entity-specific "not found" errors

	// ErrDeveloperNotFound indicates that the requested developer does not exist.
	ErrDeveloperNotFound = fmt.Errorf("%w: developer", ErrNotFound)

	// ErrGameNotFound indicates that the requested game does not exist.
	ErrGameNotFound = fmt.Errorf("%w: game", ErrNotFound)

	// ErrReviewNotFound indicates that the requested review does not exist.
	ErrReviewNotFound = fmt.Errorf("%w: review", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "game", "review")
	Operation string // The operation that failed (e.g., "create", "update")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
