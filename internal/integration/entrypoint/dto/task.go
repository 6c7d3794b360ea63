package dto

import (
	"time"

	"github.com/goals-manager/backend/internal/application/usecase/task"
	"github.com/goals-manager/backend/internal/domain/entity"
)

// CreateTaskRequest represents the request body for explicit task creation.
type CreateTaskRequest struct {
	HabitID uint   `json:"habit_id" binding:"required"`
	UserID  uint   `json:"user_id" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Date    string `json:"date" binding:"required"`
}

// UpdateTaskRequest represents the request body for task update.
type UpdateTaskRequest struct {
	Name      *string `json:"name,omitempty"`
	Date      *string `json:"date,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// TaskResponse represents a single task in API responses.
type TaskResponse struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Date       string    `json:"date"`
	Completed  bool      `json:"completed"`
	HabitID    uint      `json:"habit_id"`
	HabitName  string    `json:"habit_name,omitempty"`
	HabitColor string    `json:"habit_color,omitempty"`
	UserID     uint      `json:"user_id"`
	Username   string    `json:"username,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TaskListResponse represents the response for listing tasks.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

// ToTaskResponse converts a domain Task entity to a TaskResponse DTO.
func ToTaskResponse(t *entity.Task, habitName, habitColor, username string) TaskResponse {
	return TaskResponse{
		ID:         t.ID,
		Name:       t.Name,
		Date:       FormatDate(t.Date),
		Completed:  t.Completed,
		HabitID:    t.HabitID,
		HabitName:  habitName,
		HabitColor: habitColor,
		UserID:     t.UserID,
		Username:   username,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

// ToTaskListResponse converts listed tasks to a TaskListResponse.
func ToTaskListResponse(tasks []task.TaskWithRefs) TaskListResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		responses[i] = ToTaskResponse(t.Task, t.HabitName, t.HabitColor, t.Username)
	}
	return TaskListResponse{
		Tasks: responses,
	}
}
