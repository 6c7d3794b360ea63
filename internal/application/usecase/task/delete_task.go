package task

import (
	"context"
	"fmt"

	"github.com/goals-manager/backend/internal/application/adapter"
	domainerror "github.com/goals-manager/backend/internal/domain/error"
)

// DeleteTaskInput represents the input for task deletion.
type DeleteTaskInput struct {
	TaskID uint
}

// DeleteTaskOutput represents the output of task deletion.
type DeleteTaskOutput struct{}

// DeleteTaskUseCase handles task deletion.
type DeleteTaskUseCase struct {
	taskRepo adapter.TaskRepository
}

// NewDeleteTaskUseCase creates a new DeleteTaskUseCase instance.
func NewDeleteTaskUseCase(taskRepo adapter.TaskRepository) *DeleteTaskUseCase {
	return &DeleteTaskUseCase{
		taskRepo: taskRepo,
	}
}

// Execute performs the task deletion.
func (uc *DeleteTaskUseCase) Execute(ctx context.Context, input DeleteTaskInput) (*DeleteTaskOutput, error) {
	exists, err := uc.taskRepo.ExistsByID(ctx, input.TaskID)
	if err != nil {
		return nil, fmt.Errorf("failed to check task existence: %w", err)
	}
	if !exists {
		return nil, domainerror.NewTaskError(
			domainerror.ErrCodeTaskNotFound,
			"task not found",
			domainerror.ErrTaskNotFound,
		)
	}

	if err := uc.taskRepo.Delete(ctx, input.TaskID); err != nil {
		return nil, fmt.Errorf("failed to delete task: %w", err)
	}

	return &DeleteTaskOutput{}, nil
}
