package task

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goals-manager/backend/internal/application/adapter"
	"github.com/goals-manager/backend/internal/domain/entity"
	domainerror "github.com/goals-manager/backend/internal/domain/error"
)

// UpdateTaskInput represents the input for task update. Only non-nil fields
// overwrite the stored task. The owning habit is immutable after creation.
// Changing Completed through this path also recomputes the habit's streak.
type UpdateTaskInput struct {
	TaskID    uint
	Name      *string
	Date      *time.Time
	Completed *bool
}

// UpdateTaskOutput represents the output of task update.
type UpdateTaskOutput struct {
	Task       *entity.Task
	HabitName  string
	HabitColor string
	Username   string
}

// UpdateTaskUseCase handles partial task updates.
type UpdateTaskUseCase struct {
	taskRepo  adapter.TaskRepository
	habitRepo adapter.HabitRepository
	userRepo  adapter.UserRepository
	streak    *StreakCalculator
}

// NewUpdateTaskUseCase creates a new UpdateTaskUseCase instance.
func NewUpdateTaskUseCase(
	taskRepo adapter.TaskRepository,
	habitRepo adapter.HabitRepository,
	userRepo adapter.UserRepository,
	streak *StreakCalculator,
) *UpdateTaskUseCase {
	return &UpdateTaskUseCase{
		taskRepo:  taskRepo,
		habitRepo: habitRepo,
		userRepo:  userRepo,
		streak:    streak,
	}
}

// Execute performs the task update.
func (uc *UpdateTaskUseCase) Execute(ctx context.Context, input UpdateTaskInput) (*UpdateTaskOutput, error) {
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

	completionChanged := false
	if input.Name != nil {
		task.Name = *input.Name
	}
	if input.Date != nil {
		task.Date = entity.Day(*input.Date)
	}
	if input.Completed != nil && *input.Completed != task.Completed {
		task.Completed = *input.Completed
		completionChanged = true
	}

	task.UpdatedAt = time.Now().UTC()

	if err := uc.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	habit, err := uc.habitRepo.FindByID(ctx, task.HabitID)
	if err != nil {
		return nil, fmt.Errorf("failed to load task habit: %w", err)
	}

	if completionChanged {
		if err := uc.streak.Recompute(ctx, habit); err != nil {
			return nil, fmt.Errorf("failed to recompute streak: %w", err)
		}
	}

	user, err := uc.userRepo.FindByID(ctx, task.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load task owner: %w", err)
	}

	return &UpdateTaskOutput{
		Task:       task,
		HabitName:  habit.Name,
		HabitColor: habit.Color,
		Username:   user.Username,
	}, nil
}
