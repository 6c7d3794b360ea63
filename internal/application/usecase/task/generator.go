// Package task contains task-related use cases, including the lazy task
// generation and streak recomputation logic.
package task

import (
	"context"
	"fmt"
	"time"

	"github.com/goals-manager/backend/internal/application/adapter"
	"github.com/goals-manager/backend/internal/domain/entity"
)

// Generator materializes the tasks a habit's schedule implies over a date
// window. It only ever inserts rows: existing tasks, including their
// completed flags, are never touched, so running it twice over the same
// window is a no-op the second time. Concurrent generation for the same habit
// is resolved by the store's unique index on (habit_id, date).
type Generator struct {
	taskRepo adapter.TaskRepository
}

// NewGenerator creates a new Generator instance.
func NewGenerator(taskRepo adapter.TaskRepository) *Generator {
	return &Generator{
		taskRepo: taskRepo,
	}
}

// GenerateForHabit creates the missing tasks for the habit inside
// [rangeStart, rangeEnd], clamped to the habit's own active period. Returns
// the number of tasks created.
func (g *Generator) GenerateForHabit(ctx context.Context, habit *entity.Habit, rangeStart, rangeEnd time.Time) (int, error) {
	days := entity.ParseDaysOfWeek(habit.DaysOfWeek)
	if len(days) == 0 {
		return 0, nil
	}

	// Clamp the requested window to the habit's active period
	effectiveStart := entity.Day(rangeStart)
	if habit.StartDate.After(effectiveStart) {
		effectiveStart = habit.StartDate
	}
	effectiveEnd := entity.Day(rangeEnd)
	if habit.EndDate.Before(effectiveEnd) {
		effectiveEnd = habit.EndDate
	}
	if effectiveStart.After(effectiveEnd) {
		return 0, nil
	}

	var toCreate []*entity.Task
	for d := effectiveStart; !d.After(effectiveEnd); d = d.AddDate(0, 0, 1) {
		if !days[d.Weekday()] {
			continue
		}

		exists, err := g.taskRepo.ExistsByHabitIDAndDate(ctx, habit.ID, d)
		if err != nil {
			return 0, fmt.Errorf("failed to check task existence: %w", err)
		}
		if exists {
			continue
		}

		toCreate = append(toCreate, entity.GeneratedTask(habit, d))
	}

	if len(toCreate) == 0 {
		return 0, nil
	}

	if err := g.taskRepo.CreateBatch(ctx, toCreate); err != nil {
		return 0, fmt.Errorf("failed to create generated tasks: %w", err)
	}
	return len(toCreate), nil
}
