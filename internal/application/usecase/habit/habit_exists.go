package habit

import (
	"context"
	"fmt"

	"github.com/goals-manager/backend/internal/application/adapter"
)

// HabitExistsInput represents the input for a habit existence check.
type HabitExistsInput struct {
	HabitID uint
}

// HabitExistsOutput represents the output of a habit existence check.
type HabitExistsOutput struct {
	Exists bool
}

// HabitExistsUseCase checks whether a habit exists.
type HabitExistsUseCase struct {
	habitRepo adapter.HabitRepository
}

// NewHabitExistsUseCase creates a new HabitExistsUseCase instance.
func NewHabitExistsUseCase(habitRepo adapter.HabitRepository) *HabitExistsUseCase {
	return &HabitExistsUseCase{
		habitRepo: habitRepo,
	}
}

// Execute performs the existence check.
func (uc *HabitExistsUseCase) Execute(ctx context.Context, input HabitExistsInput) (*HabitExistsOutput, error) {
	exists, err := uc.habitRepo.ExistsByID(ctx, input.HabitID)
	if err != nil {
		return nil, fmt.Errorf("failed to check habit existence: %w", err)
	}
	return &HabitExistsOutput{Exists: exists}, nil
}
