package habit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goals-manager/backend/internal/application/adapter"
	"github.com/goals-manager/backend/internal/domain/entity"
	domainerror "github.com/goals-manager/backend/internal/domain/error"
)

// UpdateHabitInput represents the input for habit update. Only non-nil fields
// overwrite the stored habit. The streak counter is not updatable here; it is
// owned by the streak recomputation.
type UpdateHabitInput struct {
	HabitID     uint
	Name        *string
	Description *string
	DaysOfWeek  *string
	StartDate   *time.Time
	EndDate     *time.Time
	Color       *string
}

// UpdateHabitOutput represents the output of habit update.
type UpdateHabitOutput struct {
	Habit     *entity.Habit
	GoalTitle string
	Username  string
}

// UpdateHabitUseCase handles partial habit updates.
type UpdateHabitUseCase struct {
	habitRepo adapter.HabitRepository
	goalRepo  adapter.GoalRepository
	userRepo  adapter.UserRepository
}

// NewUpdateHabitUseCase creates a new UpdateHabitUseCase instance.
func NewUpdateHabitUseCase(
	habitRepo adapter.HabitRepository,
	goalRepo adapter.GoalRepository,
	userRepo adapter.UserRepository,
) *UpdateHabitUseCase {
	return &UpdateHabitUseCase{
		habitRepo: habitRepo,
		goalRepo:  goalRepo,
		userRepo:  userRepo,
	}
}

// Execute performs the habit update.
func (uc *UpdateHabitUseCase) Execute(ctx context.Context, input UpdateHabitInput) (*UpdateHabitOutput, error) {
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

	if input.Name != nil {
		habit.Name = *input.Name
	}
	if input.Description != nil {
		habit.Description = *input.Description
	}
	if input.DaysOfWeek != nil {
		habit.DaysOfWeek = *input.DaysOfWeek
	}
	if input.StartDate != nil {
		habit.StartDate = entity.Day(*input.StartDate)
	}
	if input.EndDate != nil {
		habit.EndDate = entity.Day(*input.EndDate)
	}
	if input.Color != nil {
		habit.Color = *input.Color
	}

	// Re-validate date ordering over the merged state
	if err := validateHabitDates(habit.StartDate, habit.EndDate); err != nil {
		return nil, err
	}

	habit.UpdatedAt = time.Now().UTC()

	if err := uc.habitRepo.Update(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to update habit: %w", err)
	}

	goal, err := uc.goalRepo.FindByID(ctx, habit.GoalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load habit goal: %w", err)
	}

	user, err := uc.userRepo.FindByID(ctx, habit.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load habit owner: %w", err)
	}

	return &UpdateHabitOutput{
		Habit:     habit,
		GoalTitle: goal.Title,
		Username:  user.Username,
	}, nil
}
