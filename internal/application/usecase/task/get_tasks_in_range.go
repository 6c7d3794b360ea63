package task

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/goals-manager/backend/internal/application/adapter"
	domainerror "github.com/goals-manager/backend/internal/domain/error"
)

// GetTasksInRangeInput represents the input for the date-range task listing.
type GetTasksInRangeInput struct {
	UserID    uint
	StartDate time.Time
	EndDate   time.Time
}

// GetTasksInRangeOutput represents the output of the date-range task listing.
type GetTasksInRangeOutput struct {
	Tasks []TaskWithRefs
}

// GetTasksInRangeUseCase returns a user's tasks inside a date window. This is
// a read with a write side effect: before querying, it lazily materializes
// any tasks the user's habit schedules imply for the window. The
// materialization is idempotent, so repeated calls over the same window
// return the same rows.
type GetTasksInRangeUseCase struct {
	taskRepo  adapter.TaskRepository
	habitRepo adapter.HabitRepository
	userRepo  adapter.UserRepository
	generator *Generator
}

// NewGetTasksInRangeUseCase creates a new GetTasksInRangeUseCase instance.
func NewGetTasksInRangeUseCase(
	taskRepo adapter.TaskRepository,
	habitRepo adapter.HabitRepository,
	userRepo adapter.UserRepository,
	generator *Generator,
) *GetTasksInRangeUseCase {
	return &GetTasksInRangeUseCase{
		taskRepo:  taskRepo,
		habitRepo: habitRepo,
		userRepo:  userRepo,
		generator: generator,
	}
}

// Execute generates missing tasks for every habit of the user over the window
// and returns all tasks in the window.
func (uc *GetTasksInRangeUseCase) Execute(ctx context.Context, input GetTasksInRangeInput) (*GetTasksInRangeOutput, error) {
	if input.EndDate.Before(input.StartDate) {
		return nil, domainerror.NewTaskError(
			domainerror.ErrCodeInvalidTaskRange,
			"end date must not precede start date",
			domainerror.ErrInvalidTaskRange,
		)
	}

	exists, err := uc.userRepo.ExistsByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check user existence: %w", err)
	}
	if !exists {
		return nil, domainerror.NewTaskError(
			domainerror.ErrCodeTaskUserNotFound,
			"user not found",
			domainerror.ErrTaskUserNotFound,
		)
	}

	habits, err := uc.habitRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user habits: %w", err)
	}

	created := 0
	for _, habit := range habits {
		n, err := uc.generator.GenerateForHabit(ctx, habit, input.StartDate, input.EndDate)
		if err != nil {
			return nil, fmt.Errorf("failed to generate tasks for habit %d: %w", habit.ID, err)
		}
		created += n
	}
	if created > 0 {
		slog.Debug("Materialized missing tasks for range query",
			"user_id", input.UserID,
			"created", created,
		)
	}

	tasks, err := uc.taskRepo.FindByUserIDAndDateBetween(ctx, input.UserID, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks in range: %w", err)
	}

	refs, err := resolveTaskRefs(ctx, uc.habitRepo, uc.userRepo, tasks)
	if err != nil {
		return nil, err
	}

	return &GetTasksInRangeOutput{Tasks: refs}, nil
}
