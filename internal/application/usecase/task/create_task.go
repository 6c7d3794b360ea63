package task

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goals-manager/backend/internal/application/adapter"
	"github.com/goals-manager/backend/internal/domain/entity"
	domainerror "github.com/goals-manager/backend/internal/domain/error"
)

// CreateTaskInput represents the input for explicit task creation.
type CreateTaskInput struct {
	HabitID uint
	UserID  uint
	Name    string
	Date    time.Time
}

// CreateTaskOutput represents the output of task creation.
type CreateTaskOutput struct {
	Task       *entity.Task
	HabitName  string
	HabitColor string
	Username   string
}

// CreateTaskUseCase handles explicit task creation.
type CreateTaskUseCase struct {
	taskRepo  adapter.TaskRepository
	habitRepo adapter.HabitRepository
	userRepo  adapter.UserRepository
}

// NewCreateTaskUseCase creates a new CreateTaskUseCase instance.
func NewCreateTaskUseCase(
	taskRepo adapter.TaskRepository,
	habitRepo adapter.HabitRepository,
	userRepo adapter.UserRepository,
) *CreateTaskUseCase {
	return &CreateTaskUseCase{
		taskRepo:  taskRepo,
		habitRepo: habitRepo,
		userRepo:  userRepo,
	}
}

// Execute performs the task creation.
func (uc *CreateTaskUseCase) Execute(ctx context.Context, input CreateTaskInput) (*CreateTaskOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewTaskError(
			domainerror.ErrCodeMissingTaskName,
			"name must not be blank",
			domainerror.ErrMissingTaskName,
		)
	}

	// Validate habit exists
	habit, err := uc.habitRepo.FindByID(ctx, input.HabitID)
	if err != nil {
		return nil, domainerror.NewTaskError(
			domainerror.ErrCodeTaskHabitNotFound,
			"habit not found",
			domainerror.ErrTaskHabitNotFound,
		)
	}

	// Validate user exists
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewTaskError(
			domainerror.ErrCodeTaskUserNotFound,
			"user not found",
			domainerror.ErrTaskUserNotFound,
		)
	}

	task := entity.NewTask(input.HabitID, input.UserID, input.Name, input.Date)

	if err := uc.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return &CreateTaskOutput{
		Task:       task,
		HabitName:  habit.Name,
		HabitColor: habit.Color,
		Username:   user.Username,
	}, nil
}
