package adapter

import (
	"context"
	"time"

	"github.com/goals-manager/backend/internal/domain/entity"
)

// TaskRepository defines the interface for task persistence operations.
// The store enforces a unique index on (habit_id, date); CreateBatch surfaces
// a violation as an error rather than inserting duplicate rows.
type TaskRepository interface {
	// Create inserts a new task.
	Create(ctx context.Context, task *entity.Task) error

	// CreateBatch inserts the given tasks in one statement.
	CreateBatch(ctx context.Context, tasks []*entity.Task) error

	// FindByID retrieves a task by its ID.
	FindByID(ctx context.Context, id uint) (*entity.Task, error)

	// FindAll retrieves every task.
	FindAll(ctx context.Context) ([]*entity.Task, error)

	// FindByUserID retrieves all tasks for a given user.
	FindByUserID(ctx context.Context, userID uint) ([]*entity.Task, error)

	// FindByHabitID retrieves all tasks for a given habit.
	FindByHabitID(ctx context.Context, habitID uint) ([]*entity.Task, error)

	// FindByUserIDAndCompleted retrieves a user's tasks filtered by completion.
	FindByUserIDAndCompleted(ctx context.Context, userID uint, completed bool) ([]*entity.Task, error)

	// FindByUserIDAndDateBetween retrieves a user's tasks with dates inside
	// [start, end] inclusive.
	FindByUserIDAndDateBetween(ctx context.Context, userID uint, start, end time.Time) ([]*entity.Task, error)

	// FindDueByHabitID retrieves a habit's tasks dated on or before the given
	// day, ordered by date descending (most recent first).
	FindDueByHabitID(ctx context.Context, habitID uint, day time.Time) ([]*entity.Task, error)

	// ExistsByHabitIDAndDate checks whether a task already exists for the
	// habit on the given day.
	ExistsByHabitIDAndDate(ctx context.Context, habitID uint, day time.Time) (bool, error)

	// Update updates an existing task.
	Update(ctx context.Context, task *entity.Task) error

	// Delete removes a task from the database.
	Delete(ctx context.Context, id uint) error

	// ExistsByID checks whether a task with the given ID exists.
	ExistsByID(ctx context.Context, id uint) (bool, error)

	// CountByUserID counts a user's tasks.
	CountByUserID(ctx context.Context, userID uint) (int64, error)

	// CountByHabitID counts a habit's tasks.
	CountByHabitID(ctx context.Context, habitID uint) (int64, error)
}
