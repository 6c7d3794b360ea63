package note

import (
	"context"
	"fmt"
	"strings"

	"github.com/goals-manager/backend/internal/application/adapter"
	"github.com/goals-manager/backend/internal/domain/entity"
	domainerror "github.com/goals-manager/backend/internal/domain/error"
)

// CreateNoteInput represents the input for note creation.
type CreateNoteInput struct {
	GoalID  uint
	Content string
}

// CreateNoteOutput represents the output of note creation.
type CreateNoteOutput struct {
	Note *entity.Note
}

// CreateNoteUseCase handles note creation.
type CreateNoteUseCase struct {
	noteRepo adapter.NoteRepository
	goalRepo adapter.GoalRepository
}

// NewCreateNoteUseCase creates a new CreateNoteUseCase instance.
func NewCreateNoteUseCase(noteRepo adapter.NoteRepository, goalRepo adapter.GoalRepository) *CreateNoteUseCase {
	return &CreateNoteUseCase{
		noteRepo: noteRepo,
		goalRepo: goalRepo,
	}
}

// Execute performs the note creation.
func (uc *CreateNoteUseCase) Execute(ctx context.Context, input CreateNoteInput) (*CreateNoteOutput, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, domainerror.NewNoteError(
			domainerror.ErrCodeMissingNoteContent,
			"content must not be blank",
			domainerror.ErrMissingNoteContent,
		)
	}

	// Validate goal exists
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

	note := entity.NewNote(input.GoalID, input.Content)

	if err := uc.noteRepo.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	return &CreateNoteOutput{Note: note}, nil
}
