package goal

import (
	"context"
	"fmt"

	"github.com/goals-manager/backend/internal/application/adapter"
	domainerror "github.com/goals-manager/backend/internal/domain/error"
)

// DeleteGoalInput represents the input for goal deletion.
type DeleteGoalInput struct {
	GoalID uint
}

// DeleteGoalOutput represents the output of goal deletion.
type DeleteGoalOutput struct{}

// DeleteGoalUseCase handles goal deletion. The store cascades the delete to
// the goal's habits, their tasks, and the goal's notes.
type DeleteGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(goalRepo adapter.GoalRepository) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal deletion.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) (*DeleteGoalOutput, error) {
	exists, err := uc.goalRepo.ExistsByID(ctx, input.GoalID)
	if err != nil {
		return nil, fmt.Errorf("failed to check goal existence: %w", err)
	}
	if !exists {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}

	if err := uc.goalRepo.Delete(ctx, input.GoalID); err != nil {
		return nil, fmt.Errorf("failed to delete goal: %w", err)
	}

	return &DeleteGoalOutput{}, nil
}
