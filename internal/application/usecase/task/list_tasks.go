package task

import (
	"context"
	"fmt"

	"github.com/goals-manager/backend/internal/application/adapter"
	"github.com/goals-manager/backend/internal/domain/entity"
	domainerror "github.com/goals-manager/backend/internal/domain/error"
)

// ListTasksInput represents the input for task listing. At most one of UserID
// and HabitID should be set; with neither, all tasks are returned. Completed
// filters by completion state and only applies to user listings.
type ListTasksInput struct {
	UserID    *uint
	HabitID   *uint
	Completed *bool
}

// TaskWithRefs pairs a task with the display fields of its parents.
type TaskWithRefs struct {
	Task       *entity.Task
	HabitName  string
	HabitColor string
	Username   string
}

// ListTasksOutput represents the output of task listing.
type ListTasksOutput struct {
	Tasks []TaskWithRefs
}

// ListTasksUseCase handles task listing.
type ListTasksUseCase struct {
	taskRepo  adapter.TaskRepository
	habitRepo adapter.HabitRepository
	userRepo  adapter.UserRepository
}

// NewListTasksUseCase creates a new ListTasksUseCase instance.
func NewListTasksUseCase(
	taskRepo adapter.TaskRepository,
	habitRepo adapter.HabitRepository,
	userRepo adapter.UserRepository,
) *ListTasksUseCase {
	return &ListTasksUseCase{
		taskRepo:  taskRepo,
		habitRepo: habitRepo,
		userRepo:  userRepo,
	}
}

// Execute lists tasks, optionally restricted to a user or a habit.
func (uc *ListTasksUseCase) Execute(ctx context.Context, input ListTasksInput) (*ListTasksOutput, error) {
	tasks, err := uc.loadTasks(ctx, input)
	if err != nil {
		return nil, err
	}

	refs, err := resolveTaskRefs(ctx, uc.habitRepo, uc.userRepo, tasks)
	if err != nil {
		return nil, err
	}

	return &ListTasksOutput{Tasks: refs}, nil
}

func (uc *ListTasksUseCase) loadTasks(ctx context.Context, input ListTasksInput) ([]*entity.Task, error) {
	switch {
	case input.UserID != nil:
		exists, err := uc.userRepo.ExistsByID(ctx, *input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to check user existence: %w", err)
		}
		if !exists {
			return nil, domainerror.NewTaskError(
				domainerror.ErrCodeTaskUserNotFound,
				"user not found",
				domainerror.ErrTaskUserNotFound,
			)
		}
		if input.Completed != nil {
			tasks, err := uc.taskRepo.FindByUserIDAndCompleted(ctx, *input.UserID, *input.Completed)
			if err != nil {
				return nil, fmt.Errorf("failed to list tasks: %w", err)
			}
			return tasks, nil
		}
		tasks, err := uc.taskRepo.FindByUserID(ctx, *input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to list tasks: %w", err)
		}
		return tasks, nil

	case input.HabitID != nil:
		exists, err := uc.habitRepo.ExistsByID(ctx, *input.HabitID)
		if err != nil {
			return nil, fmt.Errorf("failed to check habit existence: %w", err)
		}
		if !exists {
			return nil, domainerror.NewTaskError(
				domainerror.ErrCodeTaskHabitNotFound,
				"habit not found",
				domainerror.ErrTaskHabitNotFound,
			)
		}
		tasks, err := uc.taskRepo.FindByHabitID(ctx, *input.HabitID)
		if err != nil {
			return nil, fmt.Errorf("failed to list tasks: %w", err)
		}
		return tasks, nil

	default:
		tasks, err := uc.taskRepo.FindAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list tasks: %w", err)
		}
		return tasks, nil
	}
}

// resolveTaskRefs loads each referenced habit and user once and attaches
// their display fields.
func resolveTaskRefs(
	ctx context.Context,
	habitRepo adapter.HabitRepository,
	userRepo adapter.UserRepository,
	tasks []*entity.Task,
) ([]TaskWithRefs, error) {
	habits := make(map[uint]*entity.Habit)
	usernames := make(map[uint]string)

	refs := make([]TaskWithRefs, 0, len(tasks))
	for _, t := range tasks {
		habit, ok := habits[t.HabitID]
		if !ok {
			var err error
			habit, err = habitRepo.FindByID(ctx, t.HabitID)
			if err != nil {
				return nil, fmt.Errorf("failed to load task habit: %w", err)
			}
			habits[t.HabitID] = habit
		}

		username, ok := usernames[t.UserID]
		if !ok {
			user, err := userRepo.FindByID(ctx, t.UserID)
			if err != nil {
				return nil, fmt.Errorf("failed to load task owner: %w", err)
			}
			username = user.Username
			usernames[t.UserID] = username
		}

		refs = append(refs, TaskWithRefs{
			Task:       t,
			HabitName:  habit.Name,
			HabitColor: habit.Color,
			Username:   username,
		})
	}
	return refs, nil
}
