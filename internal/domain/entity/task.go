package entity

import "time"

// Task represents a single dated instance of a habit. At most one task exists
// per (HabitID, Date) pair; the persistence layer enforces this with a unique
// index.
type Task struct {
	ID        uint
	Name      string
	Date      time.Time
	Completed bool
	HabitID   uint
	UserID    uint
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTask creates a new incomplete Task.
func NewTask(habitID, userID uint, name string, date time.Time) *Task {
	now := time.Now().UTC()
	return &Task{
		Name:      name,
		Date:      Day(date),
		HabitID:   habitID,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// GeneratedTask creates the incomplete task the generator materializes for a
// habit on the given date. The task inherits the habit's name and user.
func GeneratedTask(habit *Habit, date time.Time) *Task {
	return NewTask(habit.ID, habit.UserID, habit.Name, date)
}

// Day normalizes a timestamp to midnight UTC so task dates compare as
// calendar days.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
