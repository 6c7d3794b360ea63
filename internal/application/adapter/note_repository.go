package adapter

import (
	"context"

	"github.com/goals-manager/backend/internal/domain/entity"
)

// NoteRepository defines the interface for note persistence operations.
type NoteRepository interface {
	// Create inserts a new note.
	Create(ctx context.Context, note *entity.Note) error

	// FindByID retrieves a note by its ID.
	FindByID(ctx context.Context, id uint) (*entity.Note, error)

	// FindByGoalID retrieves all notes for a goal, newest first.
	FindByGoalID(ctx context.Context, goalID uint) ([]*entity.Note, error)

	// Update updates an existing note.
	Update(ctx context.Context, note *entity.Note) error

	// Delete removes a note from the database.
	Delete(ctx context.Context, id uint) error

	// ExistsByID checks whether a note with the given ID exists.
	ExistsByID(ctx context.Context, id uint) (bool, error)

	// CountByGoalID counts the notes attached to a goal.
	CountByGoalID(ctx context.Context, goalID uint) (int64, error)
}
