// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// User represents an account synchronized from the external OAuth/JWT frontend.
// Identity is keyed on (Provider, ProviderID); the username must be globally unique.
type User struct {
	ID         uint
	Provider   string
	ProviderID string
	Username   string
	Email      string
	Name       string
	AvatarURL  string
	Bio        string
	Location   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewUser creates a new User for the given provider identity.
func NewUser(provider, providerID, username string) *User {
	now := time.Now().UTC()
	return &User{
		Provider:   provider,
		ProviderID: providerID,
		Username:   username,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
