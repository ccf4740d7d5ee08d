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
)

// Workflow errors.
var (
	// ErrInvalidContact is returned when a contact would pair a user with themselves.
	ErrInvalidContact = errors.New("invalid contact: participants must differ")
	// ErrNotPayable is returned when a booking has no positive quoted price.
	ErrNotPayable = errors.New("booking is not payable")
	// ErrAlreadyPaid marks a booking whose succeeded payments already cover the quote.
	ErrAlreadyPaid = errors.New("booking is already fully paid")
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

// ProviderError is a failure reported by (or while talking to) a payment provider.
// It is recorded on the payment row instead of being propagated.
type ProviderError struct {
	Code string
	Err  error
}

func (e *ProviderError) Error() string {
	if e.Err == nil {
		return "provider: " + e.Code
	}
	return fmt.Sprintf("provider: %s: %v", e.Code, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }
