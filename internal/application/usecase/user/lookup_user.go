package user

import (
	"context"
	"fmt"

	"github.com/goals-manager/backend/internal/application/adapter"
	"github.com/goals-manager/backend/internal/domain/entity"
	domainerror "github.com/goals-manager/backend/internal/domain/error"
)

// LookupUserInput represents the input for a user lookup. Exactly one key
// must be provided: Username, Email, or the Provider/ProviderID pair.
type LookupUserInput struct {
	Username   *string
	Email      *string
	Provider   *string
	ProviderID *string
}

// LookupUserOutput represents the output of a user lookup.
type LookupUserOutput struct {
	User *entity.User
}

// LookupUserUseCase resolves a user by one of its alternate keys.
type LookupUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewLookupUserUseCase creates a new LookupUserUseCase instance.
func NewLookupUserUseCase(userRepo adapter.UserRepository) *LookupUserUseCase {
	return &LookupUserUseCase{
		userRepo: userRepo,
	}
}

// Execute performs the lookup.
func (uc *LookupUserUseCase) Execute(ctx context.Context, input LookupUserInput) (*LookupUserOutput, error) {
	user, err := uc.find(ctx, input)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}
	return &LookupUserOutput{User: user}, nil
}

func (uc *LookupUserUseCase) find(ctx context.Context, input LookupUserInput) (*entity.User, error) {
	switch {
	case input.Username != nil:
		user, err := uc.userRepo.FindByUsername(ctx, *input.Username)
		if err != nil {
			return nil, fmt.Errorf("failed to look up user by username: %w", err)
		}
		return user, nil

	case input.Email != nil:
		user, err := uc.userRepo.FindByEmail(ctx, *input.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to look up user by email: %w", err)
		}
		return user, nil

	case input.Provider != nil && input.ProviderID != nil:
		user, err := uc.userRepo.FindByProviderAndProviderID(ctx, *input.Provider, *input.ProviderID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up user by provider identity: %w", err)
		}
		return user, nil

	default:
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeMissingUserFields,
			"username, email, or provider identity must be provided",
			nil,
		)
	}
}
