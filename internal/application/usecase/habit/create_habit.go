// Package habit contains habit-related use cases.
package habit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goals-manager/backend/internal/application/adapter"
	"github.com/goals-manager/backend/internal/domain/entity"
	domainerror "github.com/goals-manager/backend/internal/domain/error"
)

// CreateHabitInput represents the input for habit creation.
type CreateHabitInput struct {
	GoalID      uint
	UserID      uint
	Name        string
	Description string
	DaysOfWeek  string
	StartDate   time.Time
	EndDate     time.Time
	Color       string
}

// CreateHabitOutput represents the output of habit creation.
type CreateHabitOutput struct {
	Habit     *entity.Habit
	GoalTitle string
	Username  string
}

// CreateHabitUseCase handles habit creation logic.
type CreateHabitUseCase struct {
	habitRepo adapter.HabitRepository
	goalRepo  adapter.GoalRepository
	userRepo  adapter.UserRepository
}

// NewCreateHabitUseCase creates a new CreateHabitUseCase instance.
func NewCreateHabitUseCase(
	habitRepo adapter.HabitRepository,
	goalRepo adapter.GoalRepository,
	userRepo adapter.UserRepository,
) *CreateHabitUseCase {
	return &CreateHabitUseCase{
		habitRepo: habitRepo,
		goalRepo:  goalRepo,
		userRepo:  userRepo,
	}
}

// Execute performs the habit creation.
func (uc *CreateHabitUseCase) Execute(ctx context.Context, input CreateHabitInput) (*CreateHabitOutput, error) {
	// Validate name
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeMissingHabitName,
			"name must not be blank",
			domainerror.ErrMissingHabitName,
		)
	}

	// Validate date ordering
	if err := validateHabitDates(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	// Validate goal exists
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeHabitGoalNotFound,
			"goal not found",
			domainerror.ErrHabitGoalNotFound,
		)
	}

	// Validate user exists
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeHabitUserNotFound,
			"user not found",
			domainerror.ErrHabitUserNotFound,
		)
	}

	// Create habit entity
	habit := entity.NewHabit(
		input.GoalID,
		input.UserID,
		input.Name,
		input.DaysOfWeek,
		entity.Day(input.StartDate),
		entity.Day(input.EndDate),
	)
	habit.Description = input.Description
	habit.Color = input.Color

	// Save habit to database
	if err := uc.habitRepo.Create(ctx, habit); err != nil {
		return nil, fmt.Errorf("failed to create habit: %w", err)
	}

	return &CreateHabitOutput{
		Habit:     habit,
		GoalTitle: goal.Title,
		Username:  user.Username,
	}, nil
}

// validateHabitDates validates that the end date does not precede the start date.
func validateHabitDates(startDate, endDate time.Time) error {
	if endDate.Before(startDate) {
		return domainerror.NewHabitError(
			domainerror.ErrCodeInvalidHabitDates,
			"end date must not precede start date",
			domainerror.ErrInvalidHabitDates,
		)
	}
	return nil
}
