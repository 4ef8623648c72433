// Package response renders the flat JSON envelope used by every endpoint:
// a success flag and, on failure, a machine-readable error code.
package response

import (
	"net/http"

	domainerrors "callbell/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Status is the envelope shared by all responses.
type Status struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`   // Machine-readable error code, e.g. "validation_failed"
	Message string `json:"message,omitempty"` // Human-readable detail, omitted for 5xx
}

// SendCallResponse is returned by /send-call.
type SendCallResponse struct {
	Success            bool   `json:"success"`
	RequestID          string `json:"request_id"`
	Sent               int    `json:"sent"`
	DeactivatedInvalid int    `json:"deactivated_invalid"`
}

// ClaimCallResponse is returned by /claim-call for both the winner and the losers.
type ClaimCallResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
}

// OK returns {"success":true}.
func OK(c echo.Context) error {
	return c.JSON(http.StatusOK, Status{Success: true})
}

// JSON returns an endpoint-specific body.
func JSON(c echo.Context, statusCode int, body any) error {
	return c.JSON(statusCode, body)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode, message string) error {
	// Internal details never leave the server
	if statusCode >= http.StatusInternalServerError {
		message = ""
	}

	return c.JSON(statusCode, Status{
		Success: false,
		Error:   errorCode,
		Message: message,
	})
}

// BadRequest returns a 400 validation_failed error
func BadRequest(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, domainerrors.ErrValidationFailed.ErrorCode(), message)
}

// HandleAppError renders application errors, converting domain errors to appropriate HTTP responses.
// Anything else is returned for the centralized error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		message := appErr.Message()
		if appErr.Details() != "" {
			message = appErr.Details()
		}

		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), message)
	}

	return errors.WithStack(err)
}
