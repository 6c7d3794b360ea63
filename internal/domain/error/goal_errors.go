package error

import "errors"

// Goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal is not found in the system.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrGoalUserNotFound is returned when the owning user for a goal is not found.
	ErrGoalUserNotFound = errors.New("user not found")

	// ErrInvalidGoalDates is returned when the end date precedes the start date.
	ErrInvalidGoalDates = errors.New("end date must not precede start date")

	// ErrMissingGoalTitle is returned when the goal title is blank.
	ErrMissingGoalTitle = errors.New("title is required")

	// ErrInvalidGoalStatus is returned when the goal status is not a known value.
	ErrInvalidGoalStatus = errors.New("invalid goal status")
)

// GoalErrorCode defines error codes for goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	ErrCodeGoalNotFound      GoalErrorCode = "GOL-010001"
	ErrCodeGoalUserNotFound  GoalErrorCode = "GOL-010002"
	ErrCodeInvalidGoalDates  GoalErrorCode = "GOL-010003"
	ErrCodeMissingGoalTitle  GoalErrorCode = "GOL-010004"
	ErrCodeInvalidGoalStatus GoalErrorCode = "GOL-010005"
	ErrCodeMissingGoalFields GoalErrorCode = "GOL-010006"
)

// GoalError represents a goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
