package repository

import (
	"context"
	"errors"
	"time"

	"focustrack/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("record not found")

// SessionRepo persists work sessions. Listing methods return sessions with
// their interruptions loaded, newest first.
type SessionRepo interface {
	Create(ctx context.Context, s *domain.WorkSession) error
	Update(ctx context.Context, s *domain.WorkSession) error
	GetByID(ctx context.Context, id string) (*domain.WorkSession, error)
	// GetActive returns the session with no end time, or ErrNotFound.
	GetActive(ctx context.Context) (*domain.WorkSession, error)
	List(ctx context.Context) ([]*domain.WorkSession, error)
	ListByDateRange(ctx context.Context, from, to time.Time) ([]*domain.WorkSession, error)
	ListByTask(ctx context.Context, taskID string) ([]*domain.WorkSession, error)
	// Delete removes a session; its interruptions cascade.
	Delete(ctx context.Context, id string) error
}

type InterruptionRepo interface {
	Create(ctx context.Context, i *domain.Interruption) error
	Update(ctx context.Context, i *domain.Interruption) error
	ListBySession(ctx context.Context, sessionID string) ([]domain.Interruption, error)
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, includeCompleted bool) ([]*domain.Task, error)
	ListByDayPlan(ctx context.Context, dayPlanID string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	// Delete removes a task; its sessions cascade.
	Delete(ctx context.Context, id string) error
}

type DayPlanRepo interface {
	Create(ctx context.Context, p *domain.DayPlan) error
	// GetByDate returns the plan whose date falls on the same calendar day,
	// or ErrNotFound.
	GetByDate(ctx context.Context, date time.Time) (*domain.DayPlan, error)
	Update(ctx context.Context, p *domain.DayPlan) error
}

// SettingsRepo stores the singleton settings row.
type SettingsRepo interface {
	// Get returns the settings row, creating it with defaults on first use.
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, s *domain.Settings) error
}
