package goal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goals-manager/backend/internal/application/adapter"
	"github.com/goals-manager/backend/internal/domain/entity"
	domainerror "github.com/goals-manager/backend/internal/domain/error"
)

// UpdateGoalInput represents the input for goal update. Only non-nil fields
// overwrite the stored goal.
type UpdateGoalInput struct {
	GoalID      uint
	Title       *string
	Description *string
	ImageURL    *string
	Emoji       *string
	StartDate   *time.Time
	EndDate     *time.Time
	Status      *entity.GoalStatus
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal     *entity.Goal
	Username string
}

// UpdateGoalUseCase handles partial goal updates.
type UpdateGoalUseCase struct {
	goalRepo adapter.GoalRepository
	userRepo adapter.UserRepository
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(goalRepo adapter.GoalRepository, userRepo adapter.UserRepository) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		goalRepo: goalRepo,
		userRepo: userRepo,
	}
}

// Execute performs the goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	if input.Title != nil {
		goal.Title = *input.Title
	}
	if input.Description != nil {
		goal.Description = *input.Description
	}
	if input.ImageURL != nil {
		goal.ImageURL = *input.ImageURL
	}
	if input.Emoji != nil {
		goal.Emoji = *input.Emoji
	}
	if input.StartDate != nil {
		goal.StartDate = entity.Day(*input.StartDate)
	}
	if input.EndDate != nil {
		goal.EndDate = entity.Day(*input.EndDate)
	}
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

	// Re-validate date ordering over the merged state
	if err := validateGoalDates(goal.StartDate, goal.EndDate); err != nil {
		return nil, err
	}

	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	user, err := uc.userRepo.FindByID(ctx, goal.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load goal owner: %w", err)
	}

	return &UpdateGoalOutput{
		Goal:     goal,
		Username: user.Username,
	}, nil
}
