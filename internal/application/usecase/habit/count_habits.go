package habit

import (
	"context"
	"fmt"

	"github.com/goals-manager/backend/internal/application/adapter"
	domainerror "github.com/goals-manager/backend/internal/domain/error"
)

// CountHabitsInput represents the input for habit counting. Exactly one of
// UserID and GoalID must be set.
type CountHabitsInput struct {
	UserID *uint
	GoalID *uint
}

// CountHabitsOutput represents the output of habit counting.
type CountHabitsOutput struct {
	Count int64
}

// CountHabitsUseCase counts habits by user or by goal.
type CountHabitsUseCase struct {
	habitRepo adapter.HabitRepository
	goalRepo  adapter.GoalRepository
	userRepo  adapter.UserRepository
}

// NewCountHabitsUseCase creates a new CountHabitsUseCase instance.
func NewCountHabitsUseCase(
	habitRepo adapter.HabitRepository,
	goalRepo adapter.GoalRepository,
	userRepo adapter.UserRepository,
) *CountHabitsUseCase {
	return &CountHabitsUseCase{
		habitRepo: habitRepo,
		goalRepo:  goalRepo,
		userRepo:  userRepo,
	}
}

// Execute performs the count.
func (uc *CountHabitsUseCase) Execute(ctx context.Context, input CountHabitsInput) (*CountHabitsOutput, error) {
	switch {
	case input.UserID != nil:
		exists, err := uc.userRepo.ExistsByID(ctx, *input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to check user existence: %w", err)
		}
		if !exists {
			return nil, domainerror.NewHabitError(
				domainerror.ErrCodeHabitUserNotFound,
				"user not found",
				domainerror.ErrHabitUserNotFound,
			)
		}
		count, err := uc.habitRepo.CountByUserID(ctx, *input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to count habits: %w", err)
		}
		return &CountHabitsOutput{Count: count}, nil

	case input.GoalID != nil:
		exists, err := uc.goalRepo.ExistsByID(ctx, *input.GoalID)
		if err != nil {
			return nil, fmt.Errorf("failed to check goal existence: %w", err)
		}
		if !exists {
			return nil, domainerror.NewHabitError(
				domainerror.ErrCodeHabitGoalNotFound,
				"goal not found",
				domainerror.ErrHabitGoalNotFound,
			)
		}
		count, err := uc.habitRepo.CountByGoalID(ctx, *input.GoalID)
		if err != nil {
			return nil, fmt.Errorf("failed to count habits: %w", err)
		}
		return &CountHabitsOutput{Count: count}, nil

	default:
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeMissingHabitFields,
			"either userId or goalId must be provided",
			nil,
		)
	}
}
