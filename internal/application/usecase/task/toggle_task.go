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

// ToggleTaskInput represents the input for a completion toggle.
type ToggleTaskInput struct {
	TaskID uint
}

// ToggleTaskOutput represents the output of a completion toggle.
type ToggleTaskOutput struct {
	Task       *entity.Task
	HabitName  string
	HabitColor string
	Username   string
}

// ToggleTaskUseCase flips a task's completed flag and synchronously
// recomputes the owning habit's streak.
type ToggleTaskUseCase struct {
	taskRepo  adapter.TaskRepository
	habitRepo adapter.HabitRepository
	userRepo  adapter.UserRepository
	streak    *StreakCalculator
}

// NewToggleTaskUseCase creates a new ToggleTaskUseCase instance.
func NewToggleTaskUseCase(
	taskRepo adapter.TaskRepository,
	habitRepo adapter.HabitRepository,
	userRepo adapter.UserRepository,
	streak *StreakCalculator,
) *ToggleTaskUseCase {
	return &ToggleTaskUseCase{
		taskRepo:  taskRepo,
		habitRepo: habitRepo,
		userRepo:  userRepo,
		streak:    streak,
	}
}

// Execute performs the toggle and streak recomputation.
func (uc *ToggleTaskUseCase) Execute(ctx context.Context, input ToggleTaskInput) (*ToggleTaskOutput, error) {
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

	task.Completed = !task.Completed
	task.UpdatedAt = time.Now().UTC()

	if err := uc.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	habit, err := uc.habitRepo.FindByID(ctx, task.HabitID)
	if err != nil {
		return nil, fmt.Errorf("failed to load task habit: %w", err)
	}

	if err := uc.streak.Recompute(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to recompute streak: %w", err)
	}

	user, err := uc.userRepo.FindByID(ctx, task.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load task owner: %w", err)
	}

	return &ToggleTaskOutput{
		Task:       task,
		HabitName:  habit.Name,
		HabitColor: habit.Color,
		Username:   user.Username,
	}, nil
}
