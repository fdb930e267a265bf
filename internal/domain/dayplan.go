package domain

import "time"

// DayPlan groups planned tasks for a single calendar day. Date is stored as
// the start of the day; at most one plan exists per day.
type DayPlan struct {
	ID        string
	Date      time.Time
	Notes     string
	CreatedAt time.Time
}
