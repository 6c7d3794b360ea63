// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/goals-manager/backend/internal/domain/entity"
)

// UserModel represents the users table in the database.
type UserModel struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	Provider   string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_users_provider_identity"`
	ProviderID string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_users_provider_identity"`
	Username   string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Email      string    `gorm:"type:varchar(255)"`
	Name       string    `gorm:"type:varchar(255)"`
	AvatarURL  string    `gorm:"type:varchar(500)"`
	Bio        string    `gorm:"type:text"`
	Location   string    `gorm:"type:varchar(255)"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for the UserModel.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts a UserModel to a domain User entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:         m.ID,
		Provider:   m.Provider,
		ProviderID: m.ProviderID,
		Username:   m.Username,
		Email:      m.Email,
		Name:       m.Name,
		AvatarURL:  m.AvatarURL,
		Bio:        m.Bio,
		Location:   m.Location,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// UserFromEntity creates a UserModel from a domain User entity.
func UserFromEntity(user *entity.User) *UserModel {
	return &UserModel{
		ID:         user.ID,
		Provider:   user.Provider,
		ProviderID: user.ProviderID,
		Username:   user.Username,
		Email:      user.Email,
		Name:       user.Name,
		AvatarURL:  user.AvatarURL,
		Bio:        user.Bio,
		Location:   user.Location,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}
