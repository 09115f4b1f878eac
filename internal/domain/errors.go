package domain

import (
	"errors"
	"fmt"
)

// Common domain errors returned by store operations and loaders.
var (
	// ErrUnknownField indicates that a judge field name is not one of
	// creativity, quality, or weight.
	ErrUnknownField = errors.New("unknown judge field")

	// ErrUnknownTier indicates that an audience pool tier is neither half nor full.
	ErrUnknownTier = errors.New("unknown audience tier")

	// ErrInvalidConfiguration indicates that configuration is invalid or incomplete.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// FieldError describes a store operation that named a field or tier the
// store does not know about.
type FieldError struct {
	// Operation is the store operation that was attempted.
	Operation string

	// Name is the offending field or tier name as supplied by the caller.
	Name string

	// Err is the underlying sentinel error.
	Err error
}

// Error implements the error interface for FieldError.
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %q: %v", e.Operation, e.Name, e.Err)
}

// Unwrap returns the underlying error, supporting Go 1.13+ error unwrapping.
func (e *FieldError) Unwrap() error { return e.Err }

// NewFieldError creates a new FieldError with the given details.
func NewFieldError(operation, name string, err error) *FieldError {
	return &FieldError{
		Operation: operation,
		Name:      name,
		Err:       err,
	}
}

// ValidationError represents an error that occurred during validation.
// It can contain multiple validation failures.
type ValidationError struct {
	// Entity is the name of the entity that failed validation.
	Entity string

	// Errors contains the list of validation error messages.
	Errors []string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation error for %s: %s", e.Entity, e.Errors[0])
	}
	return fmt.Sprintf("validation errors for %s: %v", e.Entity, e.Errors)
}

// AddError adds a new error message to the validation error.
func (e *ValidationError) AddError(msg string) { e.Errors = append(e.Errors, msg) }

// HasErrors returns true if there are any validation errors.
func (e *ValidationError) HasErrors() bool { return len(e.Errors) > 0 }

// NewValidationError creates a new ValidationError for the given entity.
func NewValidationError(entity string) *ValidationError {
	return &ValidationError{
		Entity: entity,
		Errors: make([]string, 0),
	}
}
