package dto

import (
	"time"

	"github.com/goals-manager/backend/internal/application/usecase/habit"
	"github.com/goals-manager/backend/internal/domain/entity"
)

// CreateHabitRequest represents the request body for habit creation.
type CreateHabitRequest struct {
	GoalID      uint   `json:"goal_id" binding:"required"`
	UserID      uint   `json:"user_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description,omitempty"`
	DaysOfWeek  string `json:"days_of_week" binding:"required"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	Color       string `json:"color,omitempty"`
}

// UpdateHabitRequest represents the request body for habit update.
type UpdateHabitRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	DaysOfWeek  *string `json:"days_of_week,omitempty"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
	Color       *string `json:"color,omitempty"`
}

// HabitResponse represents a single habit in API responses.
type HabitResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	DaysOfWeek  string    `json:"days_of_week"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Streak      int       `json:"streak"`
	Color       string    `json:"color,omitempty"`
	GoalID      uint      `json:"goal_id"`
	GoalTitle   string    `json:"goal_title,omitempty"`
	UserID      uint      `json:"user_id"`
	Username    string    `json:"username,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HabitListResponse represents the response for listing habits.
type HabitListResponse struct {
	Habits []HabitResponse `json:"habits"`
}

// ToHabitResponse converts a domain Habit entity to a HabitResponse DTO.
func ToHabitResponse(h *entity.Habit, goalTitle, username string) HabitResponse {
	return HabitResponse{
		ID:          h.ID,
		Name:        h.Name,
		Description: h.Description,
		DaysOfWeek:  h.DaysOfWeek,
		StartDate:   FormatDate(h.StartDate),
		EndDate:     FormatDate(h.EndDate),
		Streak:      h.Streak,
		Color:       h.Color,
		GoalID:      h.GoalID,
		GoalTitle:   goalTitle,
		UserID:      h.UserID,
		Username:    username,
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
}

// ToHabitListResponse converts listed habits to a HabitListResponse.
func ToHabitListResponse(habits []habit.HabitWithRefs) HabitListResponse {
	responses := make([]HabitResponse, len(habits))
	for i, h := range habits {
		responses[i] = ToHabitResponse(h.Habit, h.GoalTitle, h.Username)
	}
	return HabitListResponse{
		Habits: responses,
	}
}
