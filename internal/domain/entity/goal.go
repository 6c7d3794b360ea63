package entity

import "time"

// GoalStatus represents the lifecycle state of a goal.
type GoalStatus string

const (
	GoalStatusNotStarted GoalStatus = "NOT_STARTED"
	GoalStatusInProgress GoalStatus = "IN_PROGRESS"
	GoalStatusCompleted  GoalStatus = "COMPLETED"
	GoalStatusCancelled  GoalStatus = "CANCELLED"
)

// IsValidGoalStatus reports whether the given status is one of the known values.
func IsValidGoalStatus(status GoalStatus) bool {
	switch status {
	case GoalStatusNotStarted, GoalStatusInProgress, GoalStatusCompleted, GoalStatusCancelled:
		return true
	}
	return false
}

// Goal represents a long-running objective owned by a user. A goal owns its
// habits and notes; deleting a goal cascades to both.
type Goal struct {
	ID          uint
	Title       string
	Description string
	ImageURL    string
	Emoji       string
	StartDate   time.Time
	EndDate     time.Time
	Status      GoalStatus
	UserID      uint
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewGoal creates a new Goal entity with the NOT_STARTED status.
func NewGoal(userID uint, title string, startDate, endDate time.Time) *Goal {
	now := time.Now().UTC()
	return &Goal{
		Title:     title,
		StartDate: startDate,
		EndDate:   endDate,
		Status:    GoalStatusNotStarted,
		UserID:    userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsOverdue reports whether the goal's end date has passed without it being
// completed or cancelled.
func (g *Goal) IsOverdue(today time.Time) bool {
	return g.EndDate.Before(today) &&
		g.Status != GoalStatusCompleted &&
		g.Status != GoalStatusCancelled
}

// IsActive reports whether the goal is still open and its end date has not
// passed.
func (g *Goal) IsActive(today time.Time) bool {
	if g.Status != GoalStatusInProgress && g.Status != GoalStatusNotStarted {
		return false
	}
	return !g.EndDate.Before(today)
}
