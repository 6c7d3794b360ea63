package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/goals-manager/backend/internal/application/adapter"
	"github.com/goals-manager/backend/internal/domain/entity"
	domainerror "github.com/goals-manager/backend/internal/domain/error"
)

// GetGoalInput represents the input for retrieving a single goal.
type GetGoalInput struct {
	GoalID uint
}

// GetGoalOutput represents the output of goal retrieval.
type GetGoalOutput struct {
	Goal     *entity.Goal
	Username string
}

// GetGoalUseCase handles single goal retrieval.
type GetGoalUseCase struct {
	goalRepo adapter.GoalRepository
	userRepo adapter.UserRepository
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(goalRepo adapter.GoalRepository, userRepo adapter.UserRepository) *GetGoalUseCase {
	return &GetGoalUseCase{
		goalRepo: goalRepo,
		userRepo: userRepo,
	}
}

// Execute retrieves the goal with its owner's username.
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*GetGoalOutput, error) {
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

	user, err := uc.userRepo.FindByID(ctx, goal.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load goal owner: %w", err)
	}

	return &GetGoalOutput{
		Goal:     goal,
		Username: user.Username,
	}, nil
}
