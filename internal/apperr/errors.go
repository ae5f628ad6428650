package apperr

import (
	"errors"
	"strings"
)

// ErrInvalid is returned when the input fails domain validation (HTTP 400).
var ErrInvalid = errors.New("invalid input")

// ErrConflict indicates a uniqueness conflict (HTTP 409).
var ErrConflict = errors.New("conflict")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError describes rejected input. Fields holds the JSON names of
// offending fields in declaration order.
type ValidationError struct {
	Fields  []string
	Message string
}

// Invalid builds a ValidationError with the given message and fields.
func Invalid(msg string, fields ...string) *ValidationError {
	return &ValidationError{Fields: fields, Message: msg}
}

// Required builds a ValidationError listing missing required fields.
func Required(fields ...string) *ValidationError {
	return &ValidationError{
		Fields:  fields,
		Message: strings.Join(fields, ", ") + " required",
	}
}

func (e *ValidationError) Error() string {
	if e.Message == "" {
		return ErrInvalid.Error()
	}
	return e.Message
}

// Is reports ErrInvalid as the error kind.
func (e *ValidationError) Is(target error) bool { return target == ErrInvalid }

// ConflictError reports a uniqueness violation. An empty Field means the
// violation was detected by a unique index and the field is unknown.
type ConflictError struct {
	Field string
}

// Conflict builds a ConflictError for field.
func Conflict(field string) *ConflictError { return &ConflictError{Field: field} }

func (e *ConflictError) Error() string {
	if e.Field == "" {
		return "unique constraint violation"
	}
	return e.Field + " already exists"
}

// Is reports ErrConflict as the error kind.
func (e *ConflictError) Is(target error) bool { return target == ErrConflict }
