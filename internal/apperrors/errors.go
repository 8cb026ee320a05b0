package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrTooLarge indicates that an attachment or request body exceeds the configured size limit.
// It is always wrapped together with ErrValidation.
var ErrTooLarge = errors.New("payload too large")

// ErrStoreUnavailable indicates that the record store could not be reached.
// Callers must treat the collection as unknown, not as empty.
var ErrStoreUnavailable = errors.New("record store unavailable")

// ErrSave indicates that a create or update against the record store failed.
var ErrSave = errors.New("failed to save record")

// ErrDelete indicates that a delete against the record store failed.
var ErrDelete = errors.New("failed to delete record")

// ErrConfirmationRequired indicates that the operation needs an explicit yes/no decision first.
var ErrConfirmationRequired = errors.New("confirmation required")

// ErrBusy indicates that a previous operation on the same resource is still in flight.
var ErrBusy = errors.New("operation already in progress")

// AppError carries an HTTP-ish status code alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
