package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goals-manager/backend/internal/application/adapter"
	"github.com/goals-manager/backend/internal/domain/entity"
	domainerror "github.com/goals-manager/backend/internal/domain/error"
)

// UpsertUserInput represents the input for user synchronization. Identity is
// keyed on (Provider, ProviderID); profile fields are applied only when non-nil.
type UpsertUserInput struct {
	Provider   string
	ProviderID string
	Username   string
	Email      *string
	Name       *string
	AvatarURL  *string
	Bio        *string
	Location   *string
}

// UpsertUserOutput represents the output of user synchronization.
type UpsertUserOutput struct {
	User    *entity.User
	Created bool
}

// UpsertUserUseCase creates or refreshes a user from an external identity.
type UpsertUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewUpsertUserUseCase creates a new UpsertUserUseCase instance.
func NewUpsertUserUseCase(userRepo adapter.UserRepository) *UpsertUserUseCase {
	return &UpsertUserUseCase{
		userRepo: userRepo,
	}
}

// Execute performs the upsert.
func (uc *UpsertUserUseCase) Execute(ctx context.Context, input UpsertUserInput) (*UpsertUserOutput, error) {
	if strings.TrimSpace(input.Provider) == "" || strings.TrimSpace(input.ProviderID) == "" {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeMissingProviderIdentity,
			"provider and providerId must not be blank",
			domainerror.ErrMissingProviderIdentity,
		)
	}
	if strings.TrimSpace(input.Username) == "" {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeMissingUsername,
			"username must not be blank",
			domainerror.ErrMissingUsername,
		)
	}

	existing, err := uc.userRepo.FindByProviderAndProviderID(ctx, input.Provider, input.ProviderID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	// The username must stay unique across providers.
	byName, err := uc.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if byName != nil && (existing == nil || byName.ID != existing.ID) {
		return nil, domainerror.NewUserError(
			domainerror.ErrCodeUsernameTaken,
			"username already taken",
			domainerror.ErrUsernameTaken,
		)
	}

	created := false
	user := existing
	if user == nil {
		user = entity.NewUser(input.Provider, input.ProviderID, input.Username)
		created = true
	} else {
		user.Username = input.Username
	}

	applyProfile(user, input)
	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	return &UpsertUserOutput{User: user, Created: created}, nil
}

func applyProfile(user *entity.User, input UpsertUserInput) {
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.AvatarURL != nil {
		user.AvatarURL = *input.AvatarURL
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.Location != nil {
		user.Location = *input.Location
	}
}
