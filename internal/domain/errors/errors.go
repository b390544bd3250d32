// Package errors defines application-level error types carrying both an HTTP
// status and a business error code, so the delivery layer can map failures to
// responses without inspecting infra details.
package errors

import (
	"net/http"

	"checkpoint/internal/errors"
)

// AppError is the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing error message
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message.
func (e *BaseError) Message() string {
	return e.message
}

// Predefined error types. Per-item geocoding failures are aggregated by the
// enrichment pipeline and never surface individually; each position error
// carries its own user-facing message.
var (
	ErrLocationNotFound = NewBaseError(
		http.StatusNotFound,
		"LOCATION_NOT_FOUND",
		"Testing center not found",
	)

	ErrGeocodeNoMatch = NewBaseError(
		http.StatusNotFound,
		"GEOCODE_NO_MATCH",
		"No coordinates found for this address",
	)

	ErrGeocodeProviderFailed = NewBaseError(
		http.StatusBadGateway,
		"GEOCODE_PROVIDER_FAILED",
		"The geocoding service is unreachable",
	)

	ErrCoordinatesPersistFailed = NewBaseError(
		http.StatusInternalServerError,
		"COORDINATES_PERSIST_FAILED",
		"Resolved coordinates could not be saved",
	)

	ErrPositionDenied = NewBaseError(
		http.StatusForbidden,
		"POSITION_DENIED",
		"Location permission was denied",
	)

	ErrPositionUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"POSITION_UNAVAILABLE",
		"Your position could not be determined",
	)

	ErrPositionTimeout = NewBaseError(
		http.StatusGatewayTimeout,
		"POSITION_TIMEOUT",
		"Finding your position took too long",
	)

	ErrStoreLoadFailed = NewBaseError(
		http.StatusInternalServerError,
		"STORE_LOAD_FAILED",
		"Testing centers could not be loaded",
	)
)
