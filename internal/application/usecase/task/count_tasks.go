package task

import (
	"context"
	"fmt"

	"github.com/goals-manager/backend/internal/application/adapter"
	domainerror "github.com/goals-manager/backend/internal/domain/error"
)

// CountTasksInput represents the input for task counting. Exactly one of
// UserID and HabitID must be set.
type CountTasksInput struct {
	UserID  *uint
	HabitID *uint
}

// CountTasksOutput represents the output of task counting.
type CountTasksOutput struct {
	Count int64
}

// CountTasksUseCase counts tasks by user or by habit.
type CountTasksUseCase struct {
	taskRepo  adapter.TaskRepository
	habitRepo adapter.HabitRepository
	userRepo  adapter.UserRepository
}

// NewCountTasksUseCase creates a new CountTasksUseCase instance.
func NewCountTasksUseCase(
	taskRepo adapter.TaskRepository,
	habitRepo adapter.HabitRepository,
	userRepo adapter.UserRepository,
) *CountTasksUseCase {
	return &CountTasksUseCase{
		taskRepo:  taskRepo,
		habitRepo: habitRepo,
		userRepo:  userRepo,
	}
}

// Execute performs the count.
func (uc *CountTasksUseCase) Execute(ctx context.Context, input CountTasksInput) (*CountTasksOutput, error) {
	switch {
	case input.UserID != nil:
		exists, err := uc.userRepo.ExistsByID(ctx, *input.UserID)
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
		count, err := uc.taskRepo.CountByUserID(ctx, *input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to count tasks: %w", err)
		}
		return &CountTasksOutput{Count: count}, nil

	case input.HabitID != nil:
		exists, err := uc.habitRepo.ExistsByID(ctx, *input.HabitID)
		if err != nil {
			return nil, fmt.Errorf("failed to check habit existence: %w", err)
		}
		if !exists {
			return nil, domainerror.NewTaskError(
				domainerror.ErrCodeTaskHabitNotFound,
				"habit not found",
				domainerror.ErrTaskHabitNotFound,
			)
		}
		count, err := uc.taskRepo.CountByHabitID(ctx, *input.HabitID)
		if err != nil {
			return nil, fmt.Errorf("failed to count tasks: %w", err)
		}
		return &CountTasksOutput{Count: count}, nil

	default:
		return nil, domainerror.NewTaskError(
			domainerror.ErrCodeMissingTaskFields,
			"either userId or habitId must be provided",
			nil,
		)
	}
}
