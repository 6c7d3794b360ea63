package user

import (
	"context"
	"fmt"

	"github.com/goals-manager/backend/internal/application/adapter"
	"github.com/goals-manager/backend/internal/domain/entity"
)

// ListUsersInput represents the input for user listing. With a nil Provider
// all users are returned.
type ListUsersInput struct {
	Provider *string
}

// ListUsersOutput represents the output of user listing.
type ListUsersOutput struct {
	Users []*entity.User
}

// ListUsersUseCase handles user listing.
type ListUsersUseCase struct {
	userRepo adapter.UserRepository
}

// NewListUsersUseCase creates a new ListUsersUseCase instance.
func NewListUsersUseCase(userRepo adapter.UserRepository) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
	}
}

// Execute lists users, optionally restricted to a provider.
func (uc *ListUsersUseCase) Execute(ctx context.Context, input ListUsersInput) (*ListUsersOutput, error) {
	if input.Provider != nil {
		users, err := uc.userRepo.FindByProvider(ctx, *input.Provider)
		if err != nil {
			return nil, fmt.Errorf("failed to list users: %w", err)
		}
		return &ListUsersOutput{Users: users}, nil
	}

	users, err := uc.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return &ListUsersOutput{Users: users}, nil
}
