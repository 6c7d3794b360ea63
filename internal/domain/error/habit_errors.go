package error

import "errors"

// Habit domain errors.
var (
	// ErrHabitNotFound is returned when a habit is not found in the system.
	ErrHabitNotFound = errors.New("habit not found")

	// ErrHabitGoalNotFound is returned when the owning goal for a habit is not found.
	ErrHabitGoalNotFound = errors.New("goal not found")

	// ErrHabitUserNotFound is returned when the owning user for a habit is not found.
	ErrHabitUserNotFound = errors.New("user not found")

	// ErrInvalidHabitDates is returned when the end date precedes the start date.
	ErrInvalidHabitDates = errors.New("end date must not precede start date")

	// ErrMissingHabitName is returned when the habit name is blank.
	ErrMissingHabitName = errors.New("name is required")
)

// HabitErrorCode defines error codes for habit errors.
// Format: HAB-XXYYYY where XX is category and YYYY is specific error.
type HabitErrorCode string

const (
	ErrCodeHabitNotFound      HabitErrorCode = "HAB-010001"
	ErrCodeHabitGoalNotFound  HabitErrorCode = "HAB-010002"
	ErrCodeHabitUserNotFound  HabitErrorCode = "HAB-010003"
	ErrCodeInvalidHabitDates  HabitErrorCode = "HAB-010004"
	ErrCodeMissingHabitName   HabitErrorCode = "HAB-010005"
	ErrCodeMissingHabitFields HabitErrorCode = "HAB-010006"
)

// HabitError represents a habit error with code and message.
type HabitError struct {
	Code    HabitErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HabitError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *HabitError) Unwrap() error {
	return e.Err
}

// NewHabitError creates a new HabitError with the given code and message.
func NewHabitError(code HabitErrorCode, message string, err error) *HabitError {
	return &HabitError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
