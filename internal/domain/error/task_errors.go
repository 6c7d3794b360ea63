package error

import "errors"

// Task domain errors.
var (
	// ErrTaskNotFound is returned when a task is not found in the system.
	ErrTaskNotFound = errors.New("task not found")

	// ErrTaskHabitNotFound is returned when the owning habit for a task is not found.
	ErrTaskHabitNotFound = errors.New("habit not found")

	// ErrTaskUserNotFound is returned when the owning user for a task is not found.
	ErrTaskUserNotFound = errors.New("user not found")

	// ErrMissingTaskName is returned when the task name is blank.
	ErrMissingTaskName = errors.New("name is required")

	// ErrInvalidTaskRange is returned when the requested range end precedes its start.
	ErrInvalidTaskRange = errors.New("range end must not precede range start")
)

// TaskErrorCode defines error codes for task errors.
// Format: TSK-XXYYYY where XX is category and YYYY is specific error.
type TaskErrorCode string

const (
	ErrCodeTaskNotFound      TaskErrorCode = "TSK-010001"
	ErrCodeTaskHabitNotFound TaskErrorCode = "TSK-010002"
	ErrCodeTaskUserNotFound  TaskErrorCode = "TSK-010003"
	ErrCodeMissingTaskName   TaskErrorCode = "TSK-010004"
	ErrCodeInvalidTaskRange  TaskErrorCode = "TSK-010005"
	ErrCodeMissingTaskFields TaskErrorCode = "TSK-010006"
)

// TaskError represents a task error with code and message.
type TaskError struct {
	Code    TaskErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TaskError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TaskError) Unwrap() error {
	return e.Err
}

// NewTaskError creates a new TaskError with the given code and message.
func NewTaskError(code TaskErrorCode, message string, err error) *TaskError {
	return &TaskError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
