package model

import (
	"time"

	"github.com/goals-manager/backend/internal/domain/entity"
)

// NoteModel represents the notes table in the database.
type NoteModel struct {
	ID        uint       `gorm:"primaryKey;autoIncrement"`
	Content   string     `gorm:"type:text;not null"`
	GoalID    uint       `gorm:"not null;index"`
	Goal      *GoalModel `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time  `gorm:"not null"`
	UpdatedAt time.Time  `gorm:"not null"`
}

// TableName returns the table name for the NoteModel.
func (NoteModel) TableName() string {
	return "notes"
}

// ToEntity converts a NoteModel to a domain Note entity.
func (m *NoteModel) ToEntity() *entity.Note {
	return &entity.Note{
		ID:        m.ID,
		Content:   m.Content,
		GoalID:    m.GoalID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// NoteFromEntity creates a NoteModel from a domain Note entity.
func NoteFromEntity(note *entity.Note) *NoteModel {
	return &NoteModel{
		ID:        note.ID,
		Content:   note.Content,
		GoalID:    note.GoalID,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}
