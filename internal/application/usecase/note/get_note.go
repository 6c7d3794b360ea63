package note

import (
	"context"
	"errors"
	"fmt"

	"github.com/goals-manager/backend/internal/application/adapter"
	"github.com/goals-manager/backend/internal/domain/entity"
	domainerror "github.com/goals-manager/backend/internal/domain/error"
)

// GetNoteInput represents the input for retrieving a single note.
type GetNoteInput struct {
	NoteID uint
}

// GetNoteOutput represents the output of note retrieval.
type GetNoteOutput struct {
	Note *entity.Note
}

// GetNoteUseCase handles single note retrieval.
type GetNoteUseCase struct {
	noteRepo adapter.NoteRepository
}

// NewGetNoteUseCase creates a new GetNoteUseCase instance.
func NewGetNoteUseCase(noteRepo adapter.NoteRepository) *GetNoteUseCase {
	return &GetNoteUseCase{
		noteRepo: noteRepo,
	}
}

// Execute retrieves the note.
func (uc *GetNoteUseCase) Execute(ctx context.Context, input GetNoteInput) (*GetNoteOutput, error) {
	note, err := uc.noteRepo.FindByID(ctx, input.NoteID)
	if err != nil {
		if errors.Is(err, domainerror.ErrNoteNotFound) {
			return nil, domainerror.NewNoteError(
				domainerror.ErrCodeNoteNotFound,
				"note not found",
				domainerror.ErrNoteNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find note: %w", err)
	}

	return &GetNoteOutput{Note: note}, nil
}
