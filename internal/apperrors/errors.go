// Package apperrors carries the error taxonomy shared by the request-facing
// services. Validation and storage failures are both client-fault at the
// HTTP boundary; anything unclassified is treated as unexpected and reduced
// to an opaque 500 by the handler.
package apperrors

import (
	"errors"
	"fmt"
)

// ValidationError marks malformed or missing required input. Its message is
// written verbatim into the JSON error response.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validation returns a ValidationError with the given message.
func Validation(msg string) error {
	return &ValidationError{Message: msg}
}

// Validationf returns a ValidationError with a formatted message.
func Validationf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StorageError marks a failed data-store operation. The underlying store
// message passes through to the caller unchanged.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return e.Err.Error() }

func (e *StorageError) Unwrap() error { return e.Err }

// Storage wraps err as a StorageError for the named operation.
func Storage(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// IsStorage reports whether err is (or wraps) a StorageError.
func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
