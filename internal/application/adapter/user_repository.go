// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/goals-manager/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Save inserts the user when it has no ID yet and updates it otherwise.
	Save(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by its ID.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByProviderAndProviderID retrieves a user by its provider identity.
	// Returns (nil, nil) when no such user exists.
	FindByProviderAndProviderID(ctx context.Context, provider, providerID string) (*entity.User, error)

	// FindByUsername retrieves a user by username. Returns (nil, nil) when absent.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByEmail retrieves a user by email. Returns (nil, nil) when absent.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindAll retrieves every user.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// FindByProvider retrieves all users registered through the given provider.
	FindByProvider(ctx context.Context, provider string) ([]*entity.User, error)

	// Delete removes a user from the database.
	Delete(ctx context.Context, id uint) error

	// ExistsByID checks whether a user with the given ID exists.
	ExistsByID(ctx context.Context, id uint) (bool, error)

	// ExistsByProviderAndProviderID checks whether the provider identity is registered.
	ExistsByProviderAndProviderID(ctx context.Context, provider, providerID string) (bool, error)
}
