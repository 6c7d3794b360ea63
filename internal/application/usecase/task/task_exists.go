package task

import (
	"context"
	"fmt"

	"github.com/goals-manager/backend/internal/application/adapter"
)

// TaskExistsInput represents the input for a task existence check.
type TaskExistsInput struct {
	TaskID uint
}

// TaskExistsOutput represents the output of a task existence check.
type TaskExistsOutput struct {
	Exists bool
}

// TaskExistsUseCase checks whether a task exists.
type TaskExistsUseCase struct {
	taskRepo adapter.TaskRepository
}

// NewTaskExistsUseCase creates a new TaskExistsUseCase instance.
func NewTaskExistsUseCase(taskRepo adapter.TaskRepository) *TaskExistsUseCase {
	return &TaskExistsUseCase{
		taskRepo: taskRepo,
	}
}

// Execute performs the existence check.
func (uc *TaskExistsUseCase) Execute(ctx context.Context, input TaskExistsInput) (*TaskExistsOutput, error) {
	exists, err := uc.taskRepo.ExistsByID(ctx, input.TaskID)
	if err != nil {
		return nil, fmt.Errorf("failed to check task existence: %w", err)
	}
	return &TaskExistsOutput{Exists: exists}, nil
}
