package user

import (
	"context"
	"fmt"

	"github.com/goals-manager/backend/internal/application/adapter"
)

// UserExistsInput represents the input for a user existence check. With a
// non-nil Provider/ProviderID pair the check runs against the provider
// identity instead of the surrogate ID.
type UserExistsInput struct {
	UserID     *uint
	Provider   *string
	ProviderID *string
}

// UserExistsOutput represents the output of a user existence check.
type UserExistsOutput struct {
	Exists bool
}

// UserExistsUseCase checks whether a user exists.
type UserExistsUseCase struct {
	userRepo adapter.UserRepository
}

// NewUserExistsUseCase creates a new UserExistsUseCase instance.
func NewUserExistsUseCase(userRepo adapter.UserRepository) *UserExistsUseCase {
	return &UserExistsUseCase{
		userRepo: userRepo,
	}
}

// Execute performs the existence check.
func (uc *UserExistsUseCase) Execute(ctx context.Context, input UserExistsInput) (*UserExistsOutput, error) {
	if input.Provider != nil && input.ProviderID != nil {
		exists, err := uc.userRepo.ExistsByProviderAndProviderID(ctx, *input.Provider, *input.ProviderID)
		if err != nil {
			return nil, fmt.Errorf("failed to check user existence: %w", err)
		}
		return &UserExistsOutput{Exists: exists}, nil
	}

	if input.UserID == nil {
		return &UserExistsOutput{Exists: false}, nil
	}

	exists, err := uc.userRepo.ExistsByID(ctx, *input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check user existence: %w", err)
	}
	return &UserExistsOutput{Exists: exists}, nil
}
