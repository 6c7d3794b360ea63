package dto

import (
	"time"

	"github.com/goals-manager/backend/internal/domain/entity"
)

// CreateNoteRequest represents the request body for note creation.
type CreateNoteRequest struct {
	GoalID  uint   `json:"goal_id" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// UpdateNoteRequest represents the request body for note update.
type UpdateNoteRequest struct {
	Content string `json:"content"`
}

// NoteResponse represents a single note in API responses.
type NoteResponse struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	GoalID    uint      `json:"goal_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NoteListResponse represents the response for listing notes.
type NoteListResponse struct {
	Notes []NoteResponse `json:"notes"`
}

// ToNoteResponse converts a domain Note entity to a NoteResponse DTO.
func ToNoteResponse(n *entity.Note) NoteResponse {
	return NoteResponse{
		ID:        n.ID,
		Content:   n.Content,
		GoalID:    n.GoalID,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

// ToNoteListResponse converts a list of notes to a NoteListResponse.
func ToNoteListResponse(notes []*entity.Note) NoteListResponse {
	responses := make([]NoteResponse, len(notes))
	for i, n := range notes {
		responses[i] = ToNoteResponse(n)
	}
	return NoteListResponse{
		Notes: responses,
	}
}
