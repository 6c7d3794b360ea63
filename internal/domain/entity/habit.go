package entity

import "time"

// Habit represents a recurring activity attached to a goal. DaysOfWeek holds
// the raw comma-separated schedule ("Mon,Wed,Fri"); tasks are generated for
// matching dates inside [StartDate, EndDate]. Streak is written only by the
// streak recomputation and is never negative.
type Habit struct {
	ID          uint
	Name        string
	Description string
	DaysOfWeek  string
	StartDate   time.Time
	EndDate     time.Time
	Streak      int
	Color       string
	GoalID      uint
	UserID      uint
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewHabit creates a new Habit entity with a zero streak.
func NewHabit(goalID, userID uint, name, daysOfWeek string, startDate, endDate time.Time) *Habit {
	now := time.Now().UTC()
	return &Habit{
		Name:       name,
		DaysOfWeek: daysOfWeek,
		StartDate:  startDate,
		EndDate:    endDate,
		GoalID:     goalID,
		UserID:     userID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
