package task

import (
	"context"
	"errors"
	"fmt"

	"github.com/goals-manager/backend/internal/application/adapter"
	"github.com/goals-manager/backend/internal/domain/entity"
	domainerror "github.com/goals-manager/backend/internal/domain/error"
)

// GetTaskInput represents the input for retrieving a single task.
type GetTaskInput struct {
	TaskID uint
}

// GetTaskOutput represents the output of task retrieval.
type GetTaskOutput struct {
	Task       *entity.Task
	HabitName  string
	HabitColor string
	Username   string
}

// GetTaskUseCase handles single task retrieval.
type GetTaskUseCase struct {
	taskRepo  adapter.TaskRepository
	habitRepo adapter.HabitRepository
	userRepo  adapter.UserRepository
}

// NewGetTaskUseCase creates a new GetTaskUseCase instance.
func NewGetTaskUseCase(
	taskRepo adapter.TaskRepository,
	habitRepo adapter.HabitRepository,
	userRepo adapter.UserRepository,
) *GetTaskUseCase {
	return &GetTaskUseCase{
		taskRepo:  taskRepo,
		habitRepo: habitRepo,
		userRepo:  userRepo,
	}
}

// Execute retrieves the task with its habit and owner display fields.
func (uc *GetTaskUseCase) Execute(ctx context.Context, input GetTaskInput) (*GetTaskOutput, error) {
	task, err := uc.taskRepo.FindByID(ctx, input.TaskID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTaskNotFound) {
			return nil, domainerror.NewTaskError(
				domainerror.ErrCodeTaskNotFound,
				"task not found",
				domainerror.ErrTaskNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	habit, err := uc.habitRepo.FindByID(ctx, task.HabitID)
	if err != nil {
		return nil, fmt.Errorf("failed to load task habit: %w", err)
	}

	user, err := uc.userRepo.FindByID(ctx, task.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load task owner: %w", err)
	}

	return &GetTaskOutput{
		Task:       task,
		HabitName:  habit.Name,
		HabitColor: habit.Color,
		Username:   user.Username,
	}, nil
}
