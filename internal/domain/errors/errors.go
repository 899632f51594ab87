// Package errors defines the application error taxonomy. Collaborator
// failures are translated into these at the boundary and never propagate as
// raw SDK errors into view logic.
package errors

import (
	"net/http"

	"quickbite/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
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
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Is matches errors by business error code, so copies carrying details still
// compare equal to their sentinel under errors.Is.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Lifecycle errors
	ErrIllegalTransition = NewBaseError(
		http.StatusConflict,
		"ILLEGAL_TRANSITION",
		"The requested status change is not allowed",
		"",
	)

	ErrAssignmentConflict = NewBaseError(
		http.StatusConflict,
		"ASSIGNMENT_CONFLICT",
		"Another rider already claimed this order",
		"",
	)

	// Order creation errors
	ErrEmptyCart = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CART",
		"Cannot place an order with an empty cart",
		"",
	)

	ErrItemUnavailable = NewBaseError(
		http.StatusConflict,
		"ITEM_UNAVAILABLE",
		"One or more items in the cart are no longer available",
		"",
	)

	ErrInvalidQuantity = NewBaseError(
		http.StatusBadRequest,
		"INVALID_QUANTITY",
		"Item quantity must be at least 1",
		"",
	)

	// Store gateway errors
	ErrStoreUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"STORE_UNAVAILABLE",
		"The order store is temporarily unavailable",
		"",
	)

	ErrPermissionDenied = NewBaseError(
		http.StatusForbidden,
		"PERMISSION_DENIED",
		"The store rejected this operation",
		"",
	)

	// Auth collaborator errors
	ErrInvalidCode = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CODE",
		"The verification code is incorrect",
		"",
	)

	ErrCodeExpired = NewBaseError(
		http.StatusUnauthorized,
		"CODE_EXPIRED",
		"The verification code has expired",
		"",
	)

	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"Too many attempts, please try again later",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Invalid or expired token",
		"",
	)

	// Geolocation collaborator errors
	ErrReverseGeocodeUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"REVERSE_GEOCODE_UNAVAILABLE",
		"Reverse geocoding is temporarily unavailable",
		"",
	)

	// Lookup errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrMenuItemNotFound = NewBaseError(
		http.StatusNotFound,
		"MENU_ITEM_NOT_FOUND",
		"Menu item not found",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrChallengeNotFound = NewBaseError(
		http.StatusNotFound,
		"CHALLENGE_NOT_FOUND",
		"Verification challenge not found",
		"",
	)

	ErrLocationNotFound = NewBaseError(
		http.StatusNotFound,
		"LOCATION_NOT_FOUND",
		"Saved location not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)
