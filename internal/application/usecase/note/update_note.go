package note

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goals-manager/backend/internal/application/adapter"
	"github.com/goals-manager/backend/internal/domain/entity"
	domainerror "github.com/goals-manager/backend/internal/domain/error"
)

// UpdateNoteInput represents the input for note update. A blank content is
// ignored and leaves the stored note untouched.
type UpdateNoteInput struct {
	NoteID  uint
	Content string
}

// UpdateNoteOutput represents the output of note update.
type UpdateNoteOutput struct {
	Note *entity.Note
}

// UpdateNoteUseCase handles note updates.
type UpdateNoteUseCase struct {
	noteRepo adapter.NoteRepository
}

// NewUpdateNoteUseCase creates a new UpdateNoteUseCase instance.
func NewUpdateNoteUseCase(noteRepo adapter.NoteRepository) *UpdateNoteUseCase {
	return &UpdateNoteUseCase{
		noteRepo: noteRepo,
	}
}

// Execute performs the note update.
func (uc *UpdateNoteUseCase) Execute(ctx context.Context, input UpdateNoteInput) (*UpdateNoteOutput, error) {
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

	if strings.TrimSpace(input.Content) == "" {
		return &UpdateNoteOutput{Note: note}, nil
	}

	note.Content = input.Content
	note.UpdatedAt = time.Now().UTC()

	if err := uc.noteRepo.Update(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return &UpdateNoteOutput{Note: note}, nil
}
