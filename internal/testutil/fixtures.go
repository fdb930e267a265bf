package testutil

import (
	"time"

	"github.com/google/uuid"

	"focustrack/internal/domain"
)

// Session options
type SessionOption func(*domain.WorkSession)

func WithStart(t time.Time) SessionOption {
	return func(s *domain.WorkSession) {
		s.StartTime = t
		s.CreatedAt = t
	}
}

func WithEnd(t time.Time) SessionOption {
	return func(s *domain.WorkSession) {
		s.EndTime = &t
	}
}

func WithTaskID(id string) SessionOption {
	return func(s *domain.WorkSession) {
		s.TaskID = id
	}
}

// WithInterruption appends a closed interruption spanning [start, end).
func WithInterruption(start, end time.Time) SessionOption {
	return func(s *domain.WorkSession) {
		e := end
		s.Interruptions = append(s.Interruptions, domain.Interruption{
			ID:        uuid.New().String(),
			SessionID: s.ID,
			StartTime: start,
			EndTime:   &e,
		})
	}
}

// WithOpenInterruption appends an interruption that has not ended.
func WithOpenInterruption(start time.Time, reason string) SessionOption {
	return func(s *domain.WorkSession) {
		s.Interruptions = append(s.Interruptions, domain.Interruption{
			ID:        uuid.New().String(),
			SessionID: s.ID,
			StartTime: start,
			Reason:    reason,
		})
	}
}

func NewTestSession(opts ...SessionOption) *domain.WorkSession {
	now := time.Now().UTC()
	s := &domain.WorkSession{
		ID:        uuid.New().String(),
		StartTime: now,
		CreatedAt: now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Task options
type TaskOption func(*domain.Task)

func WithImportance(n int) TaskOption {
	return func(t *domain.Task) {
		t.Importance = &n
	}
}

func WithCompleted(at time.Time) TaskOption {
	return func(t *domain.Task) {
		t.Completed = true
		t.CompletedAt = &at
	}
}

func WithDayPlanID(id string) TaskOption {
	return func(t *domain.Task) {
		t.Planned = true
		t.DayPlanID = id
	}
}

func NewTestTask(title string, opts ...TaskOption) *domain.Task {
	t := &domain.Task{
		ID:        uuid.New().String(),
		Title:     title,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewTestDayPlan creates a plan for the calendar day of date.
func NewTestDayPlan(date time.Time) *domain.DayPlan {
	y, m, d := date.Date()
	return &domain.DayPlan{
		ID:        uuid.New().String(),
		Date:      time.Date(y, m, d, 0, 0, 0, 0, date.Location()),
		CreatedAt: time.Now().UTC(),
	}
}
