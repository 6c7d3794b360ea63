package habit

import (
	"context"
	"errors"
	"fmt"

	"github.com/goals-manager/backend/internal/application/adapter"
	"github.com/goals-manager/backend/internal/domain/entity"
	domainerror "github.com/goals-manager/backend/internal/domain/error"
)

// GetHabitInput represents the input for retrieving a single habit.
type GetHabitInput struct {
	HabitID uint
}

// GetHabitOutput represents the output of habit retrieval.
type GetHabitOutput struct {
	Habit     *entity.Habit
	GoalTitle string
	Username  string
}

// GetHabitUseCase handles single habit retrieval.
type GetHabitUseCase struct {
	habitRepo adapter.HabitRepository
	goalRepo  adapter.GoalRepository
	userRepo  adapter.UserRepository
}

// NewGetHabitUseCase creates a new GetHabitUseCase instance.
func NewGetHabitUseCase(
	habitRepo adapter.HabitRepository,
	goalRepo adapter.GoalRepository,
	userRepo adapter.UserRepository,
) *GetHabitUseCase {
	return &GetHabitUseCase{
		habitRepo: habitRepo,
		goalRepo:  goalRepo,
		userRepo:  userRepo,
	}
}

// Execute retrieves the habit with its goal title and owner username.
func (uc *GetHabitUseCase) Execute(ctx context.Context, input GetHabitInput) (*GetHabitOutput, error) {
	habit, err := uc.habitRepo.FindByID(ctx, input.HabitID)
	if err != nil {
		if errors.Is(err, domainerror.ErrHabitNotFound) {
			return nil, domainerror.NewHabitError(
				domainerror.ErrCodeHabitNotFound,
				"habit not found",
				domainerror.ErrHabitNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find habit: %w", err)
	}

	goal, err := uc.goalRepo.FindByID(ctx, habit.GoalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load habit goal: %w", err)
	}

	user, err := uc.userRepo.FindByID(ctx, habit.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load habit owner: %w", err)
	}

	return &GetHabitOutput{
		Habit:     habit,
		GoalTitle: goal.Title,
		Username:  user.Username,
	}, nil
}
