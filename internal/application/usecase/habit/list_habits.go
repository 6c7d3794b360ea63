package habit

import (
	"context"
	"fmt"

	"github.com/goals-manager/backend/internal/application/adapter"
	"github.com/goals-manager/backend/internal/domain/entity"
	domainerror "github.com/goals-manager/backend/internal/domain/error"
)

// ListHabitsInput represents the input for habit listing. At most one of
// UserID and GoalID should be set; with neither, all habits are returned.
type ListHabitsInput struct {
	UserID *uint
	GoalID *uint
}

// HabitWithRefs pairs a habit with the display fields of its parents.
type HabitWithRefs struct {
	Habit     *entity.Habit
	GoalTitle string
	Username  string
}

// ListHabitsOutput represents the output of habit listing.
type ListHabitsOutput struct {
	Habits []HabitWithRefs
}

// ListHabitsUseCase handles habit listing.
type ListHabitsUseCase struct {
	habitRepo adapter.HabitRepository
	goalRepo  adapter.GoalRepository
	userRepo  adapter.UserRepository
}

// NewListHabitsUseCase creates a new ListHabitsUseCase instance.
func NewListHabitsUseCase(
	habitRepo adapter.HabitRepository,
	goalRepo adapter.GoalRepository,
	userRepo adapter.UserRepository,
) *ListHabitsUseCase {
	return &ListHabitsUseCase{
		habitRepo: habitRepo,
		goalRepo:  goalRepo,
		userRepo:  userRepo,
	}
}

// Execute lists habits, optionally restricted to a user or a goal.
func (uc *ListHabitsUseCase) Execute(ctx context.Context, input ListHabitsInput) (*ListHabitsOutput, error) {
	habits, err := uc.loadHabits(ctx, input)
	if err != nil {
		return nil, err
	}

	refs, err := uc.resolveRefs(ctx, habits)
	if err != nil {
		return nil, err
	}

	return &ListHabitsOutput{Habits: refs}, nil
}

func (uc *ListHabitsUseCase) loadHabits(ctx context.Context, input ListHabitsInput) ([]*entity.Habit, error) {
	switch {
	case input.UserID != nil:
		exists, err := uc.userRepo.ExistsByID(ctx, *input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to check user existence: %w", err)
		}
		if !exists {
			return nil, domainerror.NewHabitError(
				domainerror.ErrCodeHabitUserNotFound,
				"user not found",
				domainerror.ErrHabitUserNotFound,
			)
		}
		habits, err := uc.habitRepo.FindByUserID(ctx, *input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to list habits: %w", err)
		}
		return habits, nil

	case input.GoalID != nil:
		exists, err := uc.goalRepo.ExistsByID(ctx, *input.GoalID)
		if err != nil {
			return nil, fmt.Errorf("failed to check goal existence: %w", err)
		}
		if !exists {
			return nil, domainerror.NewHabitError(
				domainerror.ErrCodeHabitGoalNotFound,
				"goal not found",
				domainerror.ErrHabitGoalNotFound,
			)
		}
		habits, err := uc.habitRepo.FindByGoalID(ctx, *input.GoalID)
		if err != nil {
			return nil, fmt.Errorf("failed to list habits: %w", err)
		}
		return habits, nil

	default:
		habits, err := uc.habitRepo.FindAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list habits: %w", err)
		}
		return habits, nil
	}
}

// resolveRefs loads each referenced goal and user once and attaches their
// display fields.
func (uc *ListHabitsUseCase) resolveRefs(ctx context.Context, habits []*entity.Habit) ([]HabitWithRefs, error) {
	goalTitles := make(map[uint]string)
	usernames := make(map[uint]string)

	refs := make([]HabitWithRefs, 0, len(habits))
	for _, h := range habits {
		title, ok := goalTitles[h.GoalID]
		if !ok {
			goal, err := uc.goalRepo.FindByID(ctx, h.GoalID)
			if err != nil {
				return nil, fmt.Errorf("failed to load habit goal: %w", err)
			}
			title = goal.Title
			goalTitles[h.GoalID] = title
		}

		username, ok := usernames[h.UserID]
		if !ok {
			user, err := uc.userRepo.FindByID(ctx, h.UserID)
			if err != nil {
				return nil, fmt.Errorf("failed to load habit owner: %w", err)
			}
			username = user.Username
			usernames[h.UserID] = username
		}

		refs = append(refs, HabitWithRefs{Habit: h, GoalTitle: title, Username: username})
	}
	return refs, nil
}
