package entity

import "time"

// Note represents a free-text annotation attached to a goal. CreatedAt is
// immutable once set; notes are listed newest first.
type Note struct {
	ID        uint
	Content   string
	GoalID    uint
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewNote creates a new Note for the given goal.
func NewNote(goalID uint, content string) *Note {
	now := time.Now().UTC()
	return &Note{
		Content:   content,
		GoalID:    goalID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
