// Package errors provides the typed errors surfaced at the engine boundary.
package errors

import "fmt"

// Type identifies the category of error.
type Type string

const (
	// TypeValidation indicates a client-input problem: a mandatory field was
	// absent, so computation was not attempted.
	TypeValidation Type = "VALIDATION_ERROR"

	// TypeComputation indicates an unexpected failure while calculating. The
	// underlying message is kept for diagnostics.
	TypeComputation Type = "COMPUTATION_ERROR"

	// TypeUpload indicates a rejected file attachment.
	TypeUpload Type = "UPLOAD_ERROR"

	// TypeConfig indicates a configuration problem at startup.
	TypeConfig Type = "CONFIG_ERROR"
)

// Error is a domain error with a category and optional cause.
type Error struct {
	Type    Type
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new error.
func New(errType Type, message string) *Error {
	return &Error{Type: errType, Message: message}
}

// Newf creates a new formatted error.
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{Type: errType, Message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an error with context.
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{Type: errType, Message: message, Cause: cause}
}

// IsType checks whether an error carries a specific type.
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// Validation creates a validation error.
func Validation(message string) *Error {
	return New(TypeValidation, message)
}

// Computation creates a computation error.
func Computation(message string, cause error) *Error {
	return Wrap(TypeComputation, message, cause)
}

// Upload creates an upload rejection error.
func Upload(message string) *Error {
	return New(TypeUpload, message)
}

// Config creates a configuration error.
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}
