package model

import (
	"time"

	"github.com/goals-manager/backend/internal/domain/entity"
)

// HabitModel represents the habits table in the database.
type HabitModel struct {
	ID          uint       `gorm:"primaryKey;autoIncrement"`
	Name        string     `gorm:"type:varchar(255);not null"`
	Description string     `gorm:"type:text"`
	DaysOfWeek  string     `gorm:"type:varchar(100);not null"`
	StartDate   time.Time  `gorm:"type:date;not null"`
	EndDate     time.Time  `gorm:"type:date;not null"`
	Streak      int        `gorm:"not null;default:0"`
	Color       string     `gorm:"type:varchar(32)"`
	GoalID      uint       `gorm:"not null;index"`
	Goal        *GoalModel `gorm:"constraint:OnDelete:CASCADE"`
	UserID      uint       `gorm:"not null;index"`
	User        *UserModel `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time  `gorm:"not null"`
	UpdatedAt   time.Time  `gorm:"not null"`
}

// TableName returns the table name for the HabitModel.
func (HabitModel) TableName() string {
	return "habits"
}

// ToEntity converts a HabitModel to a domain Habit entity.
func (m *HabitModel) ToEntity() *entity.Habit {
	return &entity.Habit{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		DaysOfWeek:  m.DaysOfWeek,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		Streak:      m.Streak,
		Color:       m.Color,
		GoalID:      m.GoalID,
		UserID:      m.UserID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// HabitFromEntity creates a HabitModel from a domain Habit entity.
func HabitFromEntity(habit *entity.Habit) *HabitModel {
	return &HabitModel{
		ID:          habit.ID,
		Name:        habit.Name,
		Description: habit.Description,
		DaysOfWeek:  habit.DaysOfWeek,
		StartDate:   habit.StartDate,
		EndDate:     habit.EndDate,
		Streak:      habit.Streak,
		Color:       habit.Color,
		GoalID:      habit.GoalID,
		UserID:      habit.UserID,
		CreatedAt:   habit.CreatedAt,
		UpdatedAt:   habit.UpdatedAt,
	}
}
