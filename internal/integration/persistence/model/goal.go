package model

import (
	"time"

	"github.com/goals-manager/backend/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
type GoalModel struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	ImageURL    string    `gorm:"type:varchar(500)"`
	Emoji       string    `gorm:"type:varchar(16)"`
	StartDate   time.Time `gorm:"type:date;not null"`
	EndDate     time.Time `gorm:"type:date;not null"`
	Status      string    `gorm:"type:varchar(20);not null;default:'NOT_STARTED';index"`
	UserID      uint       `gorm:"not null;index"`
	User        *UserModel `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time  `gorm:"not null"`
	UpdatedAt   time.Time  `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	return &entity.Goal{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		ImageURL:    m.ImageURL,
		Emoji:       m.Emoji,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		Status:      entity.GoalStatus(m.Status),
		UserID:      m.UserID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	return &GoalModel{
		ID:          goal.ID,
		Title:       goal.Title,
		Description: goal.Description,
		ImageURL:    goal.ImageURL,
		Emoji:       goal.Emoji,
		StartDate:   goal.StartDate,
		EndDate:     goal.EndDate,
		Status:      string(goal.Status),
		UserID:      goal.UserID,
		CreatedAt:   goal.CreatedAt,
		UpdatedAt:   goal.UpdatedAt,
	}
}
