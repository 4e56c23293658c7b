// Package services contains business logic service layer implementations.
package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrAlreadyExists is returned when attempting to create a duplicate entity
	ErrAlreadyExists = errors.New("entity already exists")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError wraps field-specific validation errors
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StateConflictError is returned for requests that are well-formed but
// forbidden by the current state machine (e.g. approving a deployed
// proposal). The entity is left unchanged.
type StateConflictError struct {
	Entity string
	From   string
	Action string
}

func (e *StateConflictError) Error() string {
	return fmt.Sprintf("%s in status '%s' does not allow %s", e.Entity, e.From, e.Action)
}

// NewStateConflictError creates a new state conflict error.
func NewStateConflictError(entity, from, action string) error {
	return &StateConflictError{Entity: entity, From: from, Action: action}
}

// IsStateConflict checks if an error is a state conflict error.
func IsStateConflict(err error) bool {
	var sc *StateConflictError
	return errors.As(err, &sc)
}

// ExternalError wraps a failure of an external collaborator (controller
// RPC, LLM service). The message is safe to surface to callers; the
// wrapped cause is for logs only.
type ExternalError struct {
	System  string
	Message string
	cause   error
}

func (e *ExternalError) Error() string {
	return fmt.Sprintf("%s error: %s", e.System, e.Message)
}

// Unwrap returns the underlying cause.
func (e *ExternalError) Unwrap() error { return e.cause }

// NewExternalError creates a new external error with a sanitised message.
func NewExternalError(system, message string, cause error) error {
	return &ExternalError{System: system, Message: message, cause: cause}
}

// IsExternalError checks if an error is an external error.
func IsExternalError(err error) bool {
	var ee *ExternalError
	return errors.As(err, &ee)
}
