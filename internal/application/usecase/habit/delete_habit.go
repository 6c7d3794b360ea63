package habit

import (
	"context"
	"fmt"

	"github.com/goals-manager/backend/internal/application/adapter"
	domainerror "github.com/goals-manager/backend/internal/domain/error"
)

// DeleteHabitInput represents the input for habit deletion.
type DeleteHabitInput struct {
	HabitID uint
}

// DeleteHabitOutput represents the output of habit deletion.
type DeleteHabitOutput struct{}

// DeleteHabitUseCase handles habit deletion. The store cascades the delete to
// the habit's tasks.
type DeleteHabitUseCase struct {
	habitRepo adapter.HabitRepository
}

// NewDeleteHabitUseCase creates a new DeleteHabitUseCase instance.
func NewDeleteHabitUseCase(habitRepo adapter.HabitRepository) *DeleteHabitUseCase {
	return &DeleteHabitUseCase{
		habitRepo: habitRepo,
	}
}

// Execute performs the habit deletion.
func (uc *DeleteHabitUseCase) Execute(ctx context.Context, input DeleteHabitInput) (*DeleteHabitOutput, error) {
	exists, err := uc.habitRepo.ExistsByID(ctx, input.HabitID)
	if err != nil {
		return nil, fmt.Errorf("failed to check habit existence: %w", err)
	}
	if !exists {
		return nil, domainerror.NewHabitError(
			domainerror.ErrCodeHabitNotFound,
			"habit not found",
			domainerror.ErrHabitNotFound,
		)
	}

	if err := uc.habitRepo.Delete(ctx, input.HabitID); err != nil {
		return nil, fmt.Errorf("failed to delete habit: %w", err)
	}

	return &DeleteHabitOutput{}, nil
}
