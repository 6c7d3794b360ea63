package model

import (
	"time"

	"github.com/goals-manager/backend/internal/domain/entity"
)

// TaskModel represents the tasks table in the database. The unique index on
// (habit_id, date) guarantees at most one task per habit per day.
type TaskModel struct {
	ID        uint        `gorm:"primaryKey;autoIncrement"`
	Name      string      `gorm:"type:varchar(255);not null"`
	Date      time.Time   `gorm:"type:date;not null;uniqueIndex:idx_tasks_habit_date"`
	Completed bool        `gorm:"not null;default:false"`
	HabitID   uint        `gorm:"not null;index;uniqueIndex:idx_tasks_habit_date"`
	Habit     *HabitModel `gorm:"constraint:OnDelete:CASCADE"`
	UserID    uint        `gorm:"not null;index"`
	User      *UserModel  `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time   `gorm:"not null"`
	UpdatedAt time.Time   `gorm:"not null"`
}

// TableName returns the table name for the TaskModel.
func (TaskModel) TableName() string {
	return "tasks"
}

// ToEntity converts a TaskModel to a domain Task entity.
func (m *TaskModel) ToEntity() *entity.Task {
	return &entity.Task{
		ID:        m.ID,
		Name:      m.Name,
		Date:      m.Date,
		Completed: m.Completed,
		HabitID:   m.HabitID,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// TaskFromEntity creates a TaskModel from a domain Task entity.
func TaskFromEntity(task *entity.Task) *TaskModel {
	return &TaskModel{
		ID:        task.ID,
		Name:      task.Name,
		Date:      task.Date,
		Completed: task.Completed,
		HabitID:   task.HabitID,
		UserID:    task.UserID,
		CreatedAt: task.CreatedAt,
		UpdatedAt: task.UpdatedAt,
	}
}
