package goal

import (
	"context"
	"fmt"

	"github.com/goals-manager/backend/internal/application/adapter"
	"github.com/goals-manager/backend/internal/domain/entity"
	domainerror "github.com/goals-manager/backend/internal/domain/error"
)

// CountGoalsInput represents the input for counting a user's goals.
type CountGoalsInput struct {
	UserID uint
	Status *entity.GoalStatus // Optional status filter
}

// CountGoalsOutput represents the output of goal counting.
type CountGoalsOutput struct {
	Count int64
}

// CountGoalsUseCase counts a user's goals, optionally by status.
type CountGoalsUseCase struct {
	goalRepo adapter.GoalRepository
	userRepo adapter.UserRepository
}

// NewCountGoalsUseCase creates a new CountGoalsUseCase instance.
func NewCountGoalsUseCase(goalRepo adapter.GoalRepository, userRepo adapter.UserRepository) *CountGoalsUseCase {
	return &CountGoalsUseCase{
		goalRepo: goalRepo,
		userRepo: userRepo,
	}
}

// Execute performs the count.
func (uc *CountGoalsUseCase) Execute(ctx context.Context, input CountGoalsInput) (*CountGoalsOutput, error) {
	exists, err := uc.userRepo.ExistsByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to check user existence: %w", err)
	}
	if !exists {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalUserNotFound,
			"user not found",
			domainerror.ErrGoalUserNotFound,
		)
	}

	var count int64
	if input.Status != nil {
		if !entity.IsValidGoalStatus(*input.Status) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidGoalStatus,
				"status must be NOT_STARTED, IN_PROGRESS, COMPLETED, or CANCELLED",
				domainerror.ErrInvalidGoalStatus,
			)
		}
		count, err = uc.goalRepo.CountByUserIDAndStatus(ctx, input.UserID, *input.Status)
	} else {
		count, err = uc.goalRepo.CountByUserID(ctx, input.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to count goals: %w", err)
	}

	return &CountGoalsOutput{Count: count}, nil
}
