package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
// Callers check for them with errors.Is; the typed errors below unwrap to them.
var (
	// ErrValidation is returned when input is missing, blank or malformed.
	ErrValidation = errors.New("validation failed")

	// ErrConflict is returned when an operation would violate a uniqueness rule.
	ErrConflict = errors.New("conflict")

	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidID is returned when an identifier is not a positive integer.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidNumber is returned when a numeric field cannot be parsed.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrUnauthorized is returned when credentials are missing or wrong.
	ErrUnauthorized = errors.New("unauthorized operation")
)

// ValidationError describes a field that failed validation.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError for the given field.
// If err is nil the error unwraps to ErrValidation.
func NewValidationError(field, message string, err error) *ValidationError {
	if err == nil {
		err = ErrValidation
	}
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation failed: %s", e.Message)
	}
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Message)
}

// Unwrap exposes both the specific cause and ErrValidation.
func (e *ValidationError) Unwrap() []error {
	if e.Err == nil || e.Err == ErrValidation {
		return []error{ErrValidation}
	}
	return []error{e.Err, ErrValidation}
}

// ConflictError reports a uniqueness violation on an entity, or a delete
// blocked by rows that still reference it.
type ConflictError struct {
	Entity string
	Field  string
	Value  string
	Reason string
}

// NewConflictError creates a ConflictError.
func NewConflictError(entity, field, value string) *ConflictError {
	return &ConflictError{Entity: entity, Field: field, Value: value}
}

// NewReferencedError reports that entity id cannot be removed while other rows point at it.
func NewReferencedError(entity string, id int64) *ConflictError {
	return &ConflictError{
		Entity: entity,
		Field:  "id",
		Value:  fmt.Sprint(id),
		Reason: "is still referenced",
	}
}

func (e *ConflictError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s %s %s", e.Entity, e.Value, e.Reason)
	}
	return fmt.Sprintf("%s with %s %q already exists", e.Entity, e.Field, e.Value)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// NotFoundError reports an entity id that does not resolve.
type NotFoundError struct {
	Entity string
	ID     int64
}

// NewNotFoundError creates a NotFoundError.
func NewNotFoundError(entity string, id int64) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	if e.ID == 0 {
		return fmt.Sprintf("no %s found", e.Entity)
	}
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsConflict reports whether err is a uniqueness conflict.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsNotFound reports whether err is a missing-entity error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
