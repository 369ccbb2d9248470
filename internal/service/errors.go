package service

import (
	"errors"
	"fmt"

	"github.com/osu-mist/game-curator-api/internal/domain"
)

// ServiceError wraps errors from a resource service with context.
type ServiceError struct {
	// Resource is the resource the service manages (e.g., "game")
	Resource string
	// Operation is the operation that failed (e.g., "create", "list")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s failed: %s: %v", e.Resource, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s service %s failed: %s", e.Resource, e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
// Validation errors are returned directly without wrapping.
func NewServiceError(resource, operation, message string, err error) error {
	if err == nil {
		return nil
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr
	}

	return &ServiceError{
		Resource:  resource,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

func missingDependency(resource, name string) error {
	return &ServiceError{
		Resource:  resource,
		Operation: "create_service",
		Message:   name + " cannot be nil",
	}
}
