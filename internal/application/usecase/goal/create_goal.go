// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goals-manager/backend/internal/application/adapter"
	"github.com/goals-manager/backend/internal/domain/entity"
	domainerror "github.com/goals-manager/backend/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID      uint
	Title       string
	Description string
	ImageURL    string
	Emoji       string
	StartDate   time.Time
	EndDate     time.Time
	Status      *entity.GoalStatus // Optional, defaults to NOT_STARTED
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal     *entity.Goal
	Username string
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
	userRepo adapter.UserRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository, userRepo adapter.UserRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
		userRepo: userRepo,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	// Validate title
	if strings.TrimSpace(input.Title) == "" {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalTitle,
			"title must not be blank",
			domainerror.ErrMissingGoalTitle,
		)
	}

	// Validate date ordering
	if err := validateGoalDates(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	// Validate user exists
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalUserNotFound,
			"user not found",
			domainerror.ErrGoalUserNotFound,
		)
	}

	// Create goal entity
	goal := entity.NewGoal(input.UserID, input.Title, entity.Day(input.StartDate), entity.Day(input.EndDate))
	goal.Description = input.Description
	goal.ImageURL = input.ImageURL
	goal.Emoji = input.Emoji

	// Apply status if provided
	if input.Status != nil {
		if !entity.IsValidGoalStatus(*input.Status) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalStatus,
				"status must be NOT_STARTED, IN_PROGRESS, COMPLETED, or CANCELLED",
				domainerror.ErrInvalidGoalStatus,
			)
		}
		goal.Status = *input.Status
	}

	// Save goal to database
	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{
		Goal:     goal,
		Username: user.Username,
	}, nil
}

// validateGoalDates validates that the end date does not precede the start date.
func validateGoalDates(startDate, endDate time.Time) error {
	if endDate.Before(startDate) {
		return domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalDates,
			"end date must not precede start date",
			domainerror.ErrInvalidGoalDates,
		)
	}
	return nil
}
