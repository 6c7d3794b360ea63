package goal

import (
	"context"
	"fmt"

	"github.com/goals-manager/backend/internal/application/adapter"
)

// GoalExistsInput represents the input for a goal existence check.
type GoalExistsInput struct {
	GoalID uint
}

// GoalExistsOutput represents the output of a goal existence check.
type GoalExistsOutput struct {
	Exists bool
}

// GoalExistsUseCase checks whether a goal exists.
type GoalExistsUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewGoalExistsUseCase creates a new GoalExistsUseCase instance.
func NewGoalExistsUseCase(goalRepo adapter.GoalRepository) *GoalExistsUseCase {
	return &GoalExistsUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the existence check.
func (uc *GoalExistsUseCase) Execute(ctx context.Context, input GoalExistsInput) (*GoalExistsOutput, error) {
	exists, err := uc.goalRepo.ExistsByID(ctx, input.GoalID)
	if err != nil {
		return nil, fmt.Errorf("failed to check goal existence: %w", err)
	}
	return &GoalExistsOutput{Exists: exists}, nil
}
