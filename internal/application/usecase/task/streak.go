package task

import (
	"context"
	"fmt"
	"time"

	"github.com/goals-manager/backend/internal/application/adapter"
	"github.com/goals-manager/backend/internal/domain/entity"
)

// StreakCalculator recomputes a habit's consecutive-completion streak from
// its task history. Only due tasks (dated on or before the clock's current
// day) participate; future-dated tasks are ignored entirely.
type StreakCalculator struct {
	taskRepo  adapter.TaskRepository
	habitRepo adapter.HabitRepository
	clock     adapter.Clock
}

// NewStreakCalculator creates a new StreakCalculator instance.
func NewStreakCalculator(taskRepo adapter.TaskRepository, habitRepo adapter.HabitRepository, clock adapter.Clock) *StreakCalculator {
	return &StreakCalculator{
		taskRepo:  taskRepo,
		habitRepo: habitRepo,
		clock:     clock,
	}
}

// Recompute walks the habit's due tasks from most recent backwards, counting
// consecutive completed tasks, and persists the result on the habit. The
// streak is zero when there are no due tasks or the most recent due task is
// incomplete.
func (c *StreakCalculator) Recompute(ctx context.Context, habit *entity.Habit) error {
	today := entity.Day(c.clock.Now())

	tasks, err := c.taskRepo.FindDueByHabitID(ctx, habit.ID, today)
	if err != nil {
		return fmt.Errorf("failed to load due tasks: %w", err)
	}

	streak := 0
	for _, t := range tasks {
		if !t.Completed {
			break
		}
		streak++
	}

	habit.Streak = streak
	habit.UpdatedAt = time.Now().UTC()

	if err := c.habitRepo.Update(ctx, habit); err != nil {
		return fmt.Errorf("failed to persist streak: %w", err)
	}
	return nil
}
