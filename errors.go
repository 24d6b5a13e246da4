package forumhub

import (
	"errors"
	"fmt"
)

// Error represents a forumhub error with categorization.
type Error struct {
	// Code is a machine-readable error code
	Code string

	// Message is a human-readable error message
	Message string

	// Err is the underlying error (if any)
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Error codes for forumhub operations.
const (
	// ErrCodeNoData indicates no data was found.
	ErrCodeNoData = "NO_DATA"

	// ErrCodeValidation indicates the input failed validation.
	ErrCodeValidation = "VALIDATION_ERROR"

	// ErrCodeDuplicate indicates a uniqueness rule was violated.
	ErrCodeDuplicate = "DUPLICATE"

	// ErrCodeUnauthorized indicates missing or invalid credentials.
	ErrCodeUnauthorized = "UNAUTHORIZED"

	// ErrCodeConfiguration indicates invalid configuration.
	ErrCodeConfiguration = "CONFIGURATION_ERROR"

	// ErrCodeDatabase indicates database operation failed.
	ErrCodeDatabase = "DATABASE_ERROR"
)

// Common errors.
var (
	// ErrNoData is returned when a lookup by id or key finds nothing.
	ErrNoData = &Error{
		Code:    ErrCodeNoData,
		Message: "no data found",
	}

	// ErrDuplicateTopic is returned when a topic with the same title and message exists.
	ErrDuplicateTopic = &Error{
		Code:    ErrCodeDuplicate,
		Message: "duplicate topic is not allowed",
	}

	// ErrDuplicateLogin is returned when a user with the same login exists.
	ErrDuplicateLogin = &Error{
		Code:    ErrCodeDuplicate,
		Message: "login is already taken",
	}

	// ErrUnauthorized is returned when credentials or the principal cannot be accepted.
	ErrUnauthorized = &Error{
		Code:    ErrCodeUnauthorized,
		Message: "invalid credentials",
	}
)

// NewError creates a new Error with the given code and message.
func NewError(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// NewErrorWithCause creates a new Error wrapping an underlying error.
func NewErrorWithCause(code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     cause,
	}
}

// NewValidationError wraps a validation failure (typically validation.Errors).
func NewValidationError(cause error) *Error {
	return NewErrorWithCause(ErrCodeValidation, "invalid input", cause)
}

// IsNoData checks if an error is ErrNoData.
func IsNoData(err error) bool {
	return hasCode(err, ErrCodeNoData)
}

// IsDuplicate checks if an error reports a uniqueness violation.
func IsDuplicate(err error) bool {
	return hasCode(err, ErrCodeDuplicate)
}

// IsValidation checks if an error reports invalid input.
func IsValidation(err error) bool {
	return hasCode(err, ErrCodeValidation)
}

// IsUnauthorized checks if an error reports rejected credentials.
func IsUnauthorized(err error) bool {
	return hasCode(err, ErrCodeUnauthorized)
}

func hasCode(err error, code string) bool {
	var fhErr *Error
	if errors.As(err, &fhErr) {
		return fhErr.Code == code
	}
	return false
}
