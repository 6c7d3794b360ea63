package persistence

import (
	"context"
	"testing"

	"github.com/goals-manager/backend/internal/domain/entity"
	"github.com/goals-manager/backend/internal/integration/persistence/model"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("save inserts then updates in place", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewUserRepository(db)

		user := entity.NewUser("github", "gh-1", "alice")
		if err := repo.Save(ctx, user); err != nil {
			t.Fatalf("failed to save user: %v", err)
		}
		if user.ID == 0 {
			t.Fatal("expected a generated user ID")
		}

		user.Name = "Alice Smith"
		if err := repo.Save(ctx, user); err != nil {
			t.Fatalf("failed to update user: %v", err)
		}

		if n := tableCount(t, db, &model.UserModel{}); n != 1 {
			t.Fatalf("expected 1 user row, got %d", n)
		}
		found, err := repo.FindByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("failed to find user: %v", err)
		}
		if found.Name != "Alice Smith" {
			t.Errorf("expected updated name, got %q", found.Name)
		}
	})

	t.Run("lookups return nil without error when nothing matches", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewUserRepository(db)

		found, err := repo.FindByUsername(ctx, "ghost")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found != nil {
			t.Errorf("expected nil user, got %+v", found)
		}

		found, err = repo.FindByProviderAndProviderID(ctx, "github", "gh-ghost")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found != nil {
			t.Errorf("expected nil user, got %+v", found)
		}
	})

	t.Run("finds a user by provider identity", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewUserRepository(db)
		seedUser(t, db, "alice")

		found, err := repo.FindByProviderAndProviderID(ctx, "github", "gh-alice")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found == nil || found.Username != "alice" {
			t.Errorf("expected alice, got %+v", found)
		}
	})

	t.Run("deleting a user cascades to everything they own", func(t *testing.T) {
		db := newTestDB(t)
		user := seedUser(t, db, "alice")
		goal := seedGoal(t, db, user.ID, "Get fit")
		habit := seedHabit(t, db, goal.ID, user.ID, "Morning run")
		repo := NewUserRepository(db)

		taskRepo := NewTaskRepository(db)
		if err := taskRepo.Create(ctx, entity.GeneratedTask(habit, day(2026, 2, 2))); err != nil {
			t.Fatalf("failed to create task: %v", err)
		}

		if err := repo.Delete(ctx, user.ID); err != nil {
			t.Fatalf("failed to delete user: %v", err)
		}

		if n := tableCount(t, db, &model.GoalModel{}); n != 0 {
			t.Errorf("expected 0 goals after cascade, got %d", n)
		}
		if n := tableCount(t, db, &model.HabitModel{}); n != 0 {
			t.Errorf("expected 0 habits after cascade, got %d", n)
		}
		if n := tableCount(t, db, &model.TaskModel{}); n != 0 {
			t.Errorf("expected 0 tasks after cascade, got %d", n)
		}
	})
}
