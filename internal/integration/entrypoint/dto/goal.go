package dto

import (
	"time"

	"github.com/goals-manager/backend/internal/application/usecase/goal"
	"github.com/goals-manager/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	UserID      uint    `json:"user_id" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
	Emoji       string  `json:"emoji,omitempty"`
	StartDate   string  `json:"start_date" binding:"required"`
	EndDate     string  `json:"end_date" binding:"required"`
	Status      *string `json:"status,omitempty" binding:"omitempty,oneof=NOT_STARTED IN_PROGRESS COMPLETED CANCELLED"`
}

// UpdateGoalRequest represents the request body for goal update.
type UpdateGoalRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	Emoji       *string `json:"emoji,omitempty"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
	Status      *string `json:"status,omitempty" binding:"omitempty,oneof=NOT_STARTED IN_PROGRESS COMPLETED CANCELLED"`
}

// UpdateGoalStatusRequest represents the request body for a status change.
type UpdateGoalStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=NOT_STARTED IN_PROGRESS COMPLETED CANCELLED"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Emoji       string    `json:"emoji,omitempty"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Status      string    `json:"status"`
	UserID      uint      `json:"user_id"`
	Username    string    `json:"username,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal, username string) GoalResponse {
	return GoalResponse{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		ImageURL:    g.ImageURL,
		Emoji:       g.Emoji,
		StartDate:   FormatDate(g.StartDate),
		EndDate:     FormatDate(g.EndDate),
		Status:      string(g.Status),
		UserID:      g.UserID,
		Username:    username,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

// ToGoalListResponse converts listed goals to a GoalListResponse.
func ToGoalListResponse(goals []goal.GoalWithOwner) GoalListResponse {
	responses := make([]GoalResponse, len(goals))
	for i, g := range goals {
		responses[i] = ToGoalResponse(g.Goal, g.Username)
	}
	return GoalListResponse{
		Goals: responses,
	}
}
