package dto

import (
	"time"

	"github.com/goals-manager/backend/internal/domain/entity"
)

// UpsertUserRequest represents the request body for user synchronization.
type UpsertUserRequest struct {
	Provider   string  `json:"provider" binding:"required"`
	ProviderID string  `json:"provider_id" binding:"required"`
	Username   string  `json:"username" binding:"required"`
	Email      *string `json:"email,omitempty" binding:"omitempty,email"`
	Name       *string `json:"name,omitempty"`
	AvatarURL  *string `json:"avatar_url,omitempty"`
	Bio        *string `json:"bio,omitempty"`
	Location   *string `json:"location,omitempty"`
}

// UserResponse represents a single user in API responses.
type UserResponse struct {
	ID         uint      `json:"id"`
	Provider   string    `json:"provider"`
	ProviderID string    `json:"provider_id"`
	Username   string    `json:"username"`
	Email      string    `json:"email,omitempty"`
	Name       string    `json:"name,omitempty"`
	AvatarURL  string    `json:"avatar_url,omitempty"`
	Bio        string    `json:"bio,omitempty"`
	Location   string    `json:"location,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// UserListResponse represents the response for listing users.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// ToUserResponse converts a domain User entity to a UserResponse DTO.
func ToUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Provider:   u.Provider,
		ProviderID: u.ProviderID,
		Username:   u.Username,
		Email:      u.Email,
		Name:       u.Name,
		AvatarURL:  u.AvatarURL,
		Bio:        u.Bio,
		Location:   u.Location,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

// ToUserListResponse converts a list of users to a UserListResponse.
func ToUserListResponse(users []*entity.User) UserListResponse {
	responses := make([]UserResponse, len(users))
	for i, u := range users {
		responses[i] = ToUserResponse(u)
	}
	return UserListResponse{
		Users: responses,
	}
}
