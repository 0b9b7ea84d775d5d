// Package errors provides custom error types for the Rentfolio API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized  = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrForbidden     = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
	ErrInvalidAPIKey = &AppError{Code: "INVALID_API_KEY", Message: "Invalid or missing API key", StatusCode: http.StatusUnauthorized}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Obligation errors.
var (
	ErrObligationNotFound  = &AppError{Code: "OBLIGATION_NOT_FOUND", Message: "Obligation not found", StatusCode: http.StatusNotFound}
	ErrInvalidKind         = &AppError{Code: "INVALID_KIND", Message: "Obligation kind must be 'expense' or 'income'", StatusCode: http.StatusBadRequest}
	ErrInvalidFrequency    = &AppError{Code: "INVALID_FREQUENCY", Message: "Unsupported recurrence frequency", StatusCode: http.StatusBadRequest}
	ErrInvalidInterval     = &AppError{Code: "INVALID_INTERVAL", Message: "Recurrence interval must be at least 1", StatusCode: http.StatusBadRequest}
	ErrInvalidEndDate      = &AppError{Code: "INVALID_END_DATE", Message: "Recurrence end date cannot precede the start date", StatusCode: http.StatusBadRequest}
	ErrNotRecurring        = &AppError{Code: "NOT_RECURRING", Message: "Obligation does not belong to a recurring series", StatusCode: http.StatusBadRequest}
	ErrInvalidAmortization = &AppError{Code: "INVALID_AMORTIZATION", Message: "Amortized obligations require amortization years and start date", StatusCode: http.StatusBadRequest}
	ErrNotAmortized        = &AppError{Code: "NOT_AMORTIZED", Message: "Obligation is not amortized", StatusCode: http.StatusBadRequest}
	ErrDateNotEditable     = &AppError{Code: "DATE_NOT_EDITABLE", Message: "The date of a series member cannot be changed", StatusCode: http.StatusBadRequest}
	ErrTemplateNotEditable = &AppError{Code: "TEMPLATE_NOT_EDITABLE", Message: "Recurrence settings can only be changed through the series root", StatusCode: http.StatusBadRequest}
)

// Series errors.
var (
	ErrInvalidScope     = &AppError{Code: "INVALID_SCOPE", Message: "Scope must be 'this', 'future', or 'all'", StatusCode: http.StatusBadRequest}
	ErrSeriesIntegrity  = &AppError{Code: "SERIES_INTEGRITY", Message: "The recurring series is in an inconsistent state", StatusCode: http.StatusConflict}
	ErrSeriesStalled    = &AppError{Code: "SERIES_STALLED", Message: "The recurrence schedule fails to advance", StatusCode: http.StatusUnprocessableEntity}
	ErrSweepInProgress  = &AppError{Code: "SWEEP_IN_PROGRESS", Message: "A sweep run is already in progress", StatusCode: http.StatusConflict}
	ErrSweepRunNotFound = &AppError{Code: "SWEEP_RUN_NOT_FOUND", Message: "Sweep run not found", StatusCode: http.StatusNotFound}
)

// Report errors.
var (
	ErrInvalidYear = &AppError{Code: "INVALID_YEAR", Message: "Year must be a four-digit calendar year", StatusCode: http.StatusBadRequest}
)
