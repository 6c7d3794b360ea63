package adapter

import (
	"context"

	"github.com/goals-manager/backend/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
// Deleting a goal cascades to its habits (and their tasks) and notes at the
// store level.
type GoalRepository interface {
	// Create inserts a new goal.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal by its ID.
	FindByID(ctx context.Context, id uint) (*entity.Goal, error)

	// FindAll retrieves every goal.
	FindAll(ctx context.Context) ([]*entity.Goal, error)

	// FindByUserID retrieves all goals for a given user.
	FindByUserID(ctx context.Context, userID uint) ([]*entity.Goal, error)

	// FindByUserIDAndStatus retrieves a user's goals filtered by status.
	FindByUserIDAndStatus(ctx context.Context, userID uint, status entity.GoalStatus) ([]*entity.Goal, error)

	// FindByStatus retrieves all goals with the given status.
	FindByStatus(ctx context.Context, status entity.GoalStatus) ([]*entity.Goal, error)

	// Update updates an existing goal.
	Update(ctx context.Context, goal *entity.Goal) error

	// Delete removes a goal and, through store-level cascades, its children.
	Delete(ctx context.Context, id uint) error

	// ExistsByID checks whether a goal with the given ID exists.
	ExistsByID(ctx context.Context, id uint) (bool, error)

	// CountByUserID counts a user's goals.
	CountByUserID(ctx context.Context, userID uint) (int64, error)

	// CountByUserIDAndStatus counts a user's goals with the given status.
	CountByUserIDAndStatus(ctx context.Context, userID uint, status entity.GoalStatus) (int64, error)
}
