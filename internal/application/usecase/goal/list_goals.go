package goal

import (
	"context"
	"fmt"

	"github.com/goals-manager/backend/internal/application/adapter"
	"github.com/goals-manager/backend/internal/domain/entity"
	domainerror "github.com/goals-manager/backend/internal/domain/error"
)

// GoalScope narrows a goal listing relative to "today".
type GoalScope string

const (
	// ScopeAll applies no date-based filtering.
	ScopeAll GoalScope = "all"
	// ScopeActive keeps open goals whose end date has not passed.
	ScopeActive GoalScope = "active"
	// ScopeOverdue keeps open goals whose end date has passed.
	ScopeOverdue GoalScope = "overdue"
)

// ListGoalsInput represents the input for goal listing.
type ListGoalsInput struct {
	UserID *uint              // Optional, restricts to one user
	Status *entity.GoalStatus // Optional status filter
	Scope  GoalScope          // Defaults to ScopeAll when empty
}

// GoalWithOwner pairs a goal with its owner's username for display.
type GoalWithOwner struct {
	Goal     *entity.Goal
	Username string
}

// ListGoalsOutput represents the output of goal listing.
type ListGoalsOutput struct {
	Goals []GoalWithOwner
}

// ListGoalsUseCase handles goal listing with optional filters.
type ListGoalsUseCase struct {
	goalRepo adapter.GoalRepository
	userRepo adapter.UserRepository
	clock    adapter.Clock
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goalRepo adapter.GoalRepository, userRepo adapter.UserRepository, clock adapter.Clock) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo: goalRepo,
		userRepo: userRepo,
		clock:    clock,
	}
}

// Execute lists goals, optionally filtered by user, status, and scope.
func (uc *ListGoalsUseCase) Execute(ctx context.Context, input ListGoalsInput) (*ListGoalsOutput, error) {
	if input.Status != nil && !entity.IsValidGoalStatus(*input.Status) {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalStatus,
			"status must be NOT_STARTED, IN_PROGRESS, COMPLETED, or CANCELLED",
			domainerror.ErrInvalidGoalStatus,
		)
	}

	goals, err := uc.loadGoals(ctx, input)
	if err != nil {
		return nil, err
	}

	// Apply the date scope against the injected clock
	if input.Scope == ScopeActive || input.Scope == ScopeOverdue {
		today := entity.Day(uc.clock.Now())
		filtered := goals[:0]
		for _, g := range goals {
			if (input.Scope == ScopeActive && g.IsActive(today)) ||
				(input.Scope == ScopeOverdue && g.IsOverdue(today)) {
				filtered = append(filtered, g)
			}
		}
		goals = filtered
	}

	// Resolve owner usernames, fetching each user once
	usernames := make(map[uint]string)
	result := make([]GoalWithOwner, 0, len(goals))
	for _, g := range goals {
		username, ok := usernames[g.UserID]
		if !ok {
			user, err := uc.userRepo.FindByID(ctx, g.UserID)
			if err != nil {
				return nil, fmt.Errorf("failed to load goal owner: %w", err)
			}
			username = user.Username
			usernames[g.UserID] = username
		}
		result = append(result, GoalWithOwner{Goal: g, Username: username})
	}

	return &ListGoalsOutput{Goals: result}, nil
}

func (uc *ListGoalsUseCase) loadGoals(ctx context.Context, input ListGoalsInput) ([]*entity.Goal, error) {
	if input.UserID != nil {
		exists, err := uc.userRepo.ExistsByID(ctx, *input.UserID)
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

		if input.Status != nil {
			goals, err := uc.goalRepo.FindByUserIDAndStatus(ctx, *input.UserID, *input.Status)
			if err != nil {
				return nil, fmt.Errorf("failed to list goals: %w", err)
			}
			return goals, nil
		}
		goals, err := uc.goalRepo.FindByUserID(ctx, *input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to list goals: %w", err)
		}
		return goals, nil
	}

	if input.Status != nil {
		goals, err := uc.goalRepo.FindByStatus(ctx, *input.Status)
		if err != nil {
			return nil, fmt.Errorf("failed to list goals: %w", err)
		}
		return goals, nil
	}
	goals, err := uc.goalRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	return goals, nil
}
