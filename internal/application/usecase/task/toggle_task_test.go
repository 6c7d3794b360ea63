package task

import (
	"context"
	"errors"
	"testing"

	"github.com/goals-manager/backend/internal/domain/entity"
	domainerror "github.com/goals-manager/backend/internal/domain/error"
)

func TestToggleTaskUseCase(t *testing.T) {
	ctx := context.Background()
	today := date(2025, 10, 24)

	setup := func(t *testing.T) (*fakeTaskRepo, *fakeHabitRepo, *fakeUserRepo, *ToggleTaskUseCase, *entity.Habit) {
		t.Helper()

		taskRepo := newFakeTaskRepo()
		habitRepo := newFakeHabitRepo()
		userRepo := newFakeUserRepo()
		calculator := NewStreakCalculator(taskRepo, habitRepo, fixedClock{now: today})
		useCase := NewToggleTaskUseCase(taskRepo, habitRepo, userRepo, calculator)

		owner := &entity.User{Provider: "github", ProviderID: "gh-1", Username: "alice"}
		if err := userRepo.Save(ctx, owner); err != nil {
			t.Fatalf("failed to seed user: %v", err)
		}

		habit := scheduledHabit("Mon,Wed,Fri", date(2025, 10, 1), date(2025, 10, 31))
		habit.ID = 0
		habit.UserID = owner.ID
		if err := habitRepo.Create(ctx, habit); err != nil {
			t.Fatalf("failed to seed habit: %v", err)
		}

		return taskRepo, habitRepo, userRepo, useCase, habit
	}

	t.Run("toggling to complete raises the streak", func(t *testing.T) {
		taskRepo, habitRepo, _, useCase, habit := setup(t)

		seedTask(taskRepo, habit, date(2025, 10, 22), true)
		task := entity.GeneratedTask(habit, date(2025, 10, 24))
		if err := taskRepo.Create(ctx, task); err != nil {
			t.Fatalf("failed to seed task: %v", err)
		}

		output, err := useCase.Execute(ctx, ToggleTaskInput{TaskID: task.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Task.Completed {
			t.Error("expected task to be completed")
		}
		if output.HabitName != habit.Name {
			t.Errorf("expected habit name %q, got %q", habit.Name, output.HabitName)
		}
		if output.Username != "alice" {
			t.Errorf("expected username alice, got %q", output.Username)
		}

		stored, _ := habitRepo.FindByID(ctx, habit.ID)
		if stored.Streak != 2 {
			t.Errorf("expected streak 2, got %d", stored.Streak)
		}
	})

	t.Run("toggling back to incomplete resets the streak", func(t *testing.T) {
		taskRepo, habitRepo, _, useCase, habit := setup(t)

		task := entity.GeneratedTask(habit, date(2025, 10, 24))
		task.Completed = true
		if err := taskRepo.Create(ctx, task); err != nil {
			t.Fatalf("failed to seed task: %v", err)
		}

		output, err := useCase.Execute(ctx, ToggleTaskInput{TaskID: task.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Task.Completed {
			t.Error("expected task to be incomplete")
		}

		stored, _ := habitRepo.FindByID(ctx, habit.ID)
		if stored.Streak != 0 {
			t.Errorf("expected streak 0, got %d", stored.Streak)
		}
	})

	t.Run("unknown task yields a coded not found error", func(t *testing.T) {
		_, _, _, useCase, _ := setup(t)

		_, err := useCase.Execute(ctx, ToggleTaskInput{TaskID: 9999})
		if err == nil {
			t.Fatal("expected an error")
		}

		var taskErr *domainerror.TaskError
		if !errors.As(err, &taskErr) {
			t.Fatalf("expected a TaskError, got %T", err)
		}
		if taskErr.Code != domainerror.ErrCodeTaskNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeTaskNotFound, taskErr.Code)
		}
	})
}
