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
	ErrConflict      = errors.New("conflict")

	// ErrInvalidCode covers both an unknown invite code and one that is no
	// longer pending. Callers cannot tell the two apart.
	ErrInvalidCode    = errors.New("invalid or expired invitation code")
	ErrSelfRedemption = errors.New("cannot accept your own invitation")
	ErrNotLinked      = errors.New("not linked to a partner")
	ErrTransport      = errors.New("transport failure")
	ErrAnalysis       = errors.New("analysis failure")
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

// TransportError reports a failed store or network call. It matches both
// ErrTransport and the underlying cause with errors.Is.
type TransportError struct {
	Op  string
	Err error
}

// NewTransportError wraps err as a failure of the named operation.
func NewTransportError(op string, err error) *TransportError {
	return &TransportError{Op: op, Err: err}
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("could not %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() []error { return []error{ErrTransport, e.Err} }

// AnalysisError carries the upstream message of a failed sentiment request.
// StatusCode is 0 for network failures.
type AnalysisError struct {
	Message    string
	StatusCode int
}

func (e *AnalysisError) Error() string {
	return e.Message
}

func (e *AnalysisError) Unwrap() error { return ErrAnalysis }
