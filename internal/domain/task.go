package domain

import "time"

// Task is a named piece of work that sessions can be logged against.
type Task struct {
	ID          string
	Title       string
	Importance  *int // optional 1-5 rating
	Planned     bool
	Completed   bool
	CompletedAt *time.Time
	DayPlanID   string // optional; empty when the task is not on a day plan
	CreatedAt   time.Time
}
