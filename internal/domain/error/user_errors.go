// Package error defines domain-specific errors for the Goals Manager application.
package error

import "errors"

// User domain errors.
var (
	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned when the requested username is already in use.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrMissingProviderIdentity is returned when provider or provider id is blank.
	ErrMissingProviderIdentity = errors.New("provider and provider id are required")

	// ErrMissingUsername is returned when the username is blank.
	ErrMissingUsername = errors.New("username is required")
)

// UserErrorCode defines error codes for user errors.
// Format: USR-XXYYYY where XX is category and YYYY is specific error.
type UserErrorCode string

const (
	ErrCodeUserNotFound            UserErrorCode = "USR-010001"
	ErrCodeUsernameTaken           UserErrorCode = "USR-010002"
	ErrCodeMissingProviderIdentity UserErrorCode = "USR-010003"
	ErrCodeMissingUsername         UserErrorCode = "USR-010004"
	ErrCodeMissingUserFields       UserErrorCode = "USR-010005"
)

// UserError represents a user error with code and message.
type UserError struct {
	Code    UserErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *UserError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new UserError with the given code and message.
func NewUserError(code UserErrorCode, message string, err error) *UserError {
	return &UserError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
