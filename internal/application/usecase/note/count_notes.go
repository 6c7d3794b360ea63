package note

import (
	"context"
	"fmt"

	"github.com/goals-manager/backend/internal/application/adapter"
	domainerror "github.com/goals-manager/backend/internal/domain/error"
)

// CountNotesInput represents the input for counting the notes of a goal.
type CountNotesInput struct {
	GoalID uint
}

// CountNotesOutput represents the output of note counting.
type CountNotesOutput struct {
	Count int64
}

// CountNotesUseCase counts notes attached to a goal.
type CountNotesUseCase struct {
	noteRepo adapter.NoteRepository
	goalRepo adapter.GoalRepository
}

// NewCountNotesUseCase creates a new CountNotesUseCase instance.
func NewCountNotesUseCase(noteRepo adapter.NoteRepository, goalRepo adapter.GoalRepository) *CountNotesUseCase {
	return &CountNotesUseCase{
		noteRepo: noteRepo,
		goalRepo: goalRepo,
	}
}

// Execute performs the count.
func (uc *CountNotesUseCase) Execute(ctx context.Context, input CountNotesInput) (*CountNotesOutput, error) {
	exists, err := uc.goalRepo.ExistsByID(ctx, input.GoalID)
	if err != nil {
		return nil, fmt.Errorf("failed to check goal existence: %w", err)
	}
	if !exists {
		return nil, domainerror.NewNoteError(
			domainerror.ErrCodeNoteGoalNotFound,
			"goal not found",
			domainerror.ErrNoteGoalNotFound,
		)
	}

	count, err := uc.noteRepo.CountByGoalID(ctx, input.GoalID)
	if err != nil {
		return nil, fmt.Errorf("failed to count notes: %w", err)
	}

	return &CountNotesOutput{Count: count}, nil
}
