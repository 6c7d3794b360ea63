package note

import (
	"context"
	"fmt"

	"github.com/goals-manager/backend/internal/application/adapter"
	domainerror "github.com/goals-manager/backend/internal/domain/error"
)

// DeleteNoteInput represents the input for note deletion.
type DeleteNoteInput struct {
	NoteID uint
}

// DeleteNoteOutput represents the output of note deletion.
type DeleteNoteOutput struct{}

// DeleteNoteUseCase handles note deletion.
type DeleteNoteUseCase struct {
	noteRepo adapter.NoteRepository
}

// NewDeleteNoteUseCase creates a new DeleteNoteUseCase instance.
func NewDeleteNoteUseCase(noteRepo adapter.NoteRepository) *DeleteNoteUseCase {
	return &DeleteNoteUseCase{
		noteRepo: noteRepo,
	}
}

// Execute performs the note deletion.
func (uc *DeleteNoteUseCase) Execute(ctx context.Context, input DeleteNoteInput) (*DeleteNoteOutput, error) {
	exists, err := uc.noteRepo.ExistsByID(ctx, input.NoteID)
	if err != nil {
		return nil, fmt.Errorf("failed to check note existence: %w", err)
	}
	if !exists {
		return nil, domainerror.NewNoteError(
			domainerror.ErrCodeNoteNotFound,
			"note not found",
			domainerror.ErrNoteNotFound,
		)
	}

	if err := uc.noteRepo.Delete(ctx, input.NoteID); err != nil {
		return nil, fmt.Errorf("failed to delete note: %w", err)
	}

	return &DeleteNoteOutput{}, nil
}
