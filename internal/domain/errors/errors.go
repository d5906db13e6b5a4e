package errors

import (
	"fmt"
	"net/http"

	"koerplan/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
// Two BaseErrors are equal under errors.Is when their error codes match, so a
// copy carrying a per-call message still matches the predefined value.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
	cause     error
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}

	return e.message
}

// Is matches any BaseError with the same error code
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Unwrap exposes the cause attached with WithCause
func (e *BaseError) Unwrap() error {
	return e.cause
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	if e.details == "" && e.cause != nil {
		return e.cause.Error()
	}

	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	c := e.clone()
	c.details = details

	return c
}

// WithMessagef replaces the user-facing message, keeping code and HTTP status
func (e *BaseError) WithMessagef(format string, args ...any) *BaseError {
	c := e.clone()
	c.message = fmt.Sprintf(format, args...)

	return c
}

// WithCause attaches the underlying error
func (e *BaseError) WithCause(cause error) *BaseError {
	c := e.clone()
	c.cause = cause

	return c
}

func (e *BaseError) clone() *BaseError {
	c := *e

	return &c
}

// Predefined error types
var (
	// Search errors
	ErrMissingAddresses = NewBaseError(
		http.StatusBadRequest,
		"MISSING_ADDRESSES",
		"Udfyld venligst Hjem og Destination",
		"",
	)

	ErrAddressNotFound = NewBaseError(
		http.StatusNotFound,
		"ADDRESS_NOT_FOUND",
		"Kunne ikke finde adressen",
		"",
	)

	ErrRouteNotFound = NewBaseError(
		http.StatusUnprocessableEntity,
		"ROUTE_NOT_FOUND",
		"Kunne ikke finde rute til destination",
		"",
	)

	ErrFerryRouteNotFound = NewBaseError(
		http.StatusUnprocessableEntity,
		"FERRY_ROUTE_NOT_FOUND",
		"Kunne ikke beregne rute via færgehavnene",
		"",
	)

	ErrServiceUnavailable = NewBaseError(
		http.StatusBadGateway,
		"SERVICE_UNAVAILABLE",
		"Tjenesten svarer ikke",
		"",
	)

	ErrStaleSearch = NewBaseError(
		http.StatusConflict,
		"STALE_SEARCH",
		"Søgningen blev erstattet af en nyere søgning",
		"",
	)

	// Ledger errors
	ErrNoTrip = NewBaseError(
		http.StatusConflict,
		"NO_TRIP",
		"Der er ingen rute at gemme",
		"",
	)

	ErrLedgerNotSelected = NewBaseError(
		http.StatusBadRequest,
		"LEDGER_NOT_SELECTED",
		"Vælg venligst en skabelon",
		"",
	)

	ErrLedgerTemplateMissing = NewBaseError(
		http.StatusNotFound,
		"LEDGER_TEMPLATE_MISSING",
		"Template-filen findes ikke",
		"",
	)

	ErrLedgerUnsupportedFormat = NewBaseError(
		http.StatusBadRequest,
		"LEDGER_UNSUPPORTED_FORMAT",
		"Skabelonen skal være en .xlsx-fil",
		"",
	)

	ErrLedgerLocked = NewBaseError(
		http.StatusLocked,
		"LEDGER_LOCKED",
		"Filen er åben i Excel. Luk den venligst ned og prøv igen.",
		"",
	)

	ErrLedgerFull = NewBaseError(
		http.StatusInsufficientStorage,
		"LEDGER_FULL",
		"Der er ingen ledige rækker i skemaet",
		"",
	)

	ErrLedgerWriteFailed = NewBaseError(
		http.StatusInternalServerError,
		"LEDGER_WRITE_FAILED",
		"Kunne ikke gemme",
		"",
	)

	ErrSaveInProgress = NewBaseError(
		http.StatusConflict,
		"SAVE_IN_PROGRESS",
		"Der gemmes allerede",
		"",
	)

	// Capture errors
	ErrCaptureFailed = NewBaseError(
		http.StatusInternalServerError,
		"CAPTURE_FAILED",
		"Kunne ikke gemme kortbillede",
		"",
	)

	// General errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Inputdata er ugyldige",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Der opstod en fejl",
		"",
	)
)
