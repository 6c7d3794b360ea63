package adapter

import (
	"context"

	"github.com/goals-manager/backend/internal/domain/entity"
)

// HabitRepository defines the interface for habit persistence operations.
// Deleting a habit cascades to its tasks at the store level.
type HabitRepository interface {
	// Create inserts a new habit.
	Create(ctx context.Context, habit *entity.Habit) error

	// FindByID retrieves a habit by its ID.
	FindByID(ctx context.Context, id uint) (*entity.Habit, error)

	// FindAll retrieves every habit.
	FindAll(ctx context.Context) ([]*entity.Habit, error)

	// FindByUserID retrieves all habits for a given user.
	FindByUserID(ctx context.Context, userID uint) ([]*entity.Habit, error)

	// FindByGoalID retrieves all habits attached to a goal.
	FindByGoalID(ctx context.Context, goalID uint) ([]*entity.Habit, error)

	// Update updates an existing habit, including its streak counter.
	Update(ctx context.Context, habit *entity.Habit) error

	// Delete removes a habit and, through store-level cascades, its tasks.
	Delete(ctx context.Context, id uint) error

	// ExistsByID checks whether a habit with the given ID exists.
	ExistsByID(ctx context.Context, id uint) (bool, error)

	// CountByUserID counts a user's habits.
	CountByUserID(ctx context.Context, userID uint) (int64, error)

	// CountByGoalID counts the habits attached to a goal.
	CountByGoalID(ctx context.Context, goalID uint) (int64, error)
}
