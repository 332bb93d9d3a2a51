package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrService       = errors.New("service error")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// InvalidParameterError reports a malformed path or query parameter.
type InvalidParameterError struct {
	Name  string
	Value string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %q", e.Name, e.Value)
}

func (e *InvalidParameterError) Unwrap() error { return ErrValidation }

// PartialError is a failure that happens after earlier writes of the same
// operation are already meant to stay. The request transaction commits them
// while the caller still sees a service error.
type PartialError struct {
	Op  string
	Err error
}

func (e *PartialError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PartialError) Unwrap() []error { return []error{ErrService, e.Err} }

// IsPartial reports whether err carries a PartialError.
func IsPartial(err error) bool {
	var pe *PartialError
	return errors.As(err, &pe)
}

// DetailError attaches a client-facing message to one of the sentinel errors.
type DetailError struct {
	Kind   error
	Detail string
}

func (e *DetailError) Error() string { return e.Detail }

func (e *DetailError) Unwrap() error { return e.Kind }

// WithDetail wraps kind with a message meant to be shown to API clients.
func WithDetail(kind error, detail string) error {
	return &DetailError{Kind: kind, Detail: detail}
}
