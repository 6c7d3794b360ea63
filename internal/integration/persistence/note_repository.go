package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/goals-manager/backend/internal/application/adapter"
	"github.com/goals-manager/backend/internal/domain/entity"
	domainerror "github.com/goals-manager/backend/internal/domain/error"
	"github.com/goals-manager/backend/internal/integration/persistence/model"
)

// noteRepository implements the adapter.NoteRepository interface.
type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new note repository instance.
func NewNoteRepository(db *gorm.DB) adapter.NoteRepository {
	return &noteRepository{
		db: db,
	}
}

// Create creates a new note in the database.
func (r *noteRepository) Create(ctx context.Context, note *entity.Note) error {
	noteModel := model.NoteFromEntity(note)
	result := r.db.WithContext(ctx).Create(noteModel)
	if result.Error != nil {
		return result.Error
	}
	note.ID = noteModel.ID
	return nil
}

// FindByID retrieves a note by its ID.
func (r *noteRepository) FindByID(ctx context.Context, id uint) (*entity.Note, error) {
	var noteModel model.NoteModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&noteModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrNoteNotFound
		}
		return nil, result.Error
	}
	return noteModel.ToEntity(), nil
}

// FindByGoalID retrieves all notes for a goal, newest first.
func (r *noteRepository) FindByGoalID(ctx context.Context, goalID uint) ([]*entity.Note, error) {
	var noteModels []model.NoteModel
	result := r.db.WithContext(ctx).
		Where("goal_id = ?", goalID).
		Order("created_at DESC").
		Find(&noteModels)
	if result.Error != nil {
		return nil, result.Error
	}

	notes := make([]*entity.Note, len(noteModels))
	for i, nm := range noteModels {
		notes[i] = nm.ToEntity()
	}
	return notes, nil
}

// Update updates an existing note in the database.
func (r *noteRepository) Update(ctx context.Context, note *entity.Note) error {
	noteModel := model.NoteFromEntity(note)
	result := r.db.WithContext(ctx).Save(noteModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a note from the database.
func (r *noteRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&model.NoteModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// ExistsByID checks whether a note with the given ID exists.
func (r *noteRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.NoteModel{}).
		Where("id = ?", id).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// CountByGoalID counts the notes attached to a goal.
func (r *noteRepository) CountByGoalID(ctx context.Context, goalID uint) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.NoteModel{}).
		Where("goal_id = ?", goalID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
