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

// UpdateGoalStatusInput represents the input for a status-only goal update.
type UpdateGoalStatusInput struct {
	GoalID uint
	Status entity.GoalStatus
}

// UpdateGoalStatusOutput represents the output of a status update.
type UpdateGoalStatusOutput struct {
	Goal     *entity.Goal
	Username string
}

// UpdateGoalStatusUseCase handles goal status transitions.
type UpdateGoalStatusUseCase struct {
	goalRepo adapter.GoalRepository
	userRepo adapter.UserRepository
}

// NewUpdateGoalStatusUseCase creates a new UpdateGoalStatusUseCase instance.
func NewUpdateGoalStatusUseCase(goalRepo adapter.GoalRepository, userRepo adapter.UserRepository) *UpdateGoalStatusUseCase {
	return &UpdateGoalStatusUseCase{
		goalRepo: goalRepo,
		userRepo: userRepo,
	}
}

// Execute sets the goal's status.
func (uc *UpdateGoalStatusUseCase) Execute(ctx context.Context, input UpdateGoalStatusInput) (*UpdateGoalStatusOutput, error) {
	if !entity.IsValidGoalStatus(input.Status) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalStatus,
			"status must be NOT_STARTED, IN_PROGRESS, COMPLETED, or CANCELLED",
			domainerror.ErrInvalidGoalStatus,
		)
	}

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

	goal.Status = input.Status
	goal.UpdatedAt = time.Now().UTC()

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to update goal status: %w", err)
	}

	user, err := uc.userRepo.FindByID(ctx, goal.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load goal owner: %w", err)
	}

	return &UpdateGoalStatusOutput{
		Goal:     goal,
		Username: user.Username,
	}, nil
}
