package note

import (
	"context"
	"fmt"

	"github.com/goals-manager/backend/internal/application/adapter"
	"github.com/goals-manager/backend/internal/domain/entity"
	domainerror "github.com/goals-manager/backend/internal/domain/error"
)

// ListNotesInput represents the input for listing the notes of a goal.
type ListNotesInput struct {
	GoalID uint
}

// ListNotesOutput represents the output of note listing, newest first.
type ListNotesOutput struct {
	Notes []*entity.Note
}

// ListNotesUseCase handles note listing for a goal.
type ListNotesUseCase struct {
	noteRepo adapter.NoteRepository
	goalRepo adapter.GoalRepository
}

// NewListNotesUseCase creates a new ListNotesUseCase instance.
func NewListNotesUseCase(noteRepo adapter.NoteRepository, goalRepo adapter.GoalRepository) *ListNotesUseCase {
	return &ListNotesUseCase{
		noteRepo: noteRepo,
		goalRepo: goalRepo,
	}
}

// Execute lists the notes of the goal, newest first.
func (uc *ListNotesUseCase) Execute(ctx context.Context, input ListNotesInput) (*ListNotesOutput, error) {
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

	notes, err := uc.noteRepo.FindByGoalID(ctx, input.GoalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	return &ListNotesOutput{Notes: notes}, nil
}
