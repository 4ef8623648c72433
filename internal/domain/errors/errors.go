// Package errors defines the errors the API renders: each carries the HTTP
// status, a stable error code and a client-facing message.
package errors

import (
	"net/http"

	"callbell/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is an AppError with a fixed code. Errors derived from one through
// WithDetails still match it with errors.Is.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

func define(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{httpCode: httpCode, errorCode: errorCode, message: message}
}

// Predefined errors, keyed by error code.
var (
	ErrValidationFailed = define(http.StatusBadRequest, "validation_failed", "request validation failed")
	ErrUnauthorized     = define(http.StatusUnauthorized, "unauthorized", "missing or invalid station key")
	ErrCallNotFound     = define(http.StatusNotFound, "call_not_found", "call not found")
	ErrAlreadyTaken     = define(http.StatusConflict, "already_taken", "call already handled")

	ErrNotFound         = define(http.StatusNotFound, "not_found", "resource not found")
	ErrMethodNotAllowed = define(http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	ErrInternalError    = define(http.StatusInternalServerError, "internal_error", "internal server error")
)

func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && e.errorCode == t.errorCode
}

func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// WithDetails returns a copy of e describing the specific failure.
func (e *BaseError) WithDetails(details string) *BaseError {
	derived := *e
	derived.details = details

	return &derived
}

// NewValidationError returns a validation failure describing which input was rejected.
func NewValidationError(details string) *BaseError {
	return ErrValidationFailed.WithDetails(details)
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidationFailed)
}

// TransientError is a store failure. Callers may retry the operation; the API
// answers 500 store_unavailable.
type TransientError struct {
	err error
	op  string
}

// NewTransientError records that op failed against the store with err.
func NewTransientError(err error, op string) AppError {
	return &TransientError{err: err, op: op}
}

func (e *TransientError) Error() string {
	if e.err == nil {
		return "store unavailable: " + e.op
	}

	return "store unavailable: " + e.op + ": " + e.err.Error()
}

func (e *TransientError) Unwrap() error     { return e.err }
func (e *TransientError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *TransientError) ErrorCode() string { return "store_unavailable" }
func (e *TransientError) Message() string   { return "store unavailable" }
func (e *TransientError) Details() string   { return e.op }

// IsTransient reports whether err is a store failure worth retrying later.
func IsTransient(err error) bool {
	var transient *TransientError

	return errors.As(err, &transient)
}
