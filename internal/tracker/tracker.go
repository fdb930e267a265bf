package tracker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"focustrack/internal/db"
	"focustrack/internal/domain"
	"focustrack/internal/repository"

	"github.com/google/uuid"
)

// ErrInvalidTransition is returned when an operation is requested from a
// state that does not permit it (for example starting a session while one
// is already running).
var ErrInvalidTransition = errors.New("invalid transition")

// ErrNoActiveEntity is returned when ending a session or interruption while
// none is current.
var ErrNoActiveEntity = errors.New("no active session or interruption")

// Tracker owns the current session and interruption pointers and the legal
// transitions between them. It enforces the two store-wide invariants: at
// most one active session, and within it at most one active interruption.
//
// All transitions take the single mutex, so there is exactly one logical
// mutator at a time. Persistence is best effort: a failed write is logged
// and the in-memory state stays authoritative until the next successful
// save. That policy is deliberate for a single-user local tool, not an
// accident; see persist.
type Tracker struct {
	mu            sync.Mutex
	sessions      repository.SessionRepo
	interruptions repository.InterruptionRepo
	uow           db.UnitOfWork
	logger        *slog.Logger
	now           func() time.Time

	current *domain.WorkSession
	subs    []chan Event
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock injects the time source, letting tests run on a fixed clock.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithLogger sets the logger used for persistence warnings and transition
// telemetry.
func WithLogger(l *slog.Logger) Option {
	return func(t *Tracker) { t.logger = l }
}

// New creates a Tracker. Call Restore before first use to recover state
// left behind by a previous process.
func New(sessions repository.SessionRepo, interruptions repository.InterruptionRepo, uow db.UnitOfWork, opts ...Option) *Tracker {
	t := &Tracker{
		sessions:      sessions,
		interruptions: interruptions,
		uow:           uow,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Restore loads any session left active by a previous run. A session with
// an open interruption recovers straight into Interrupted. The initial
// state is recovered, never assumed Idle.
func (t *Tracker) Restore(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, err := t.sessions.GetActive(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	}
	t.current = s
	t.logger.Info("resumed active session",
		"session_id", s.ID,
		"started_at", s.StartTime,
		"interrupted", s.ActiveInterruption() != nil,
	)
	return nil
}

// State derives the current state from the entity pointers.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stateLocked()
}

func (t *Tracker) stateLocked() State {
	if t.current == nil {
		return StateIdle
	}
	if t.current.ActiveInterruption() != nil {
		return StateInterrupted
	}
	return StateTracking
}

// Snapshot returns read-only copies of the current entities for display.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	snap := Snapshot{State: t.stateLocked(), At: t.now()}
	if t.current != nil {
		snap.Session = t.current.Clone()
		snap.Interruption = snap.Session.ActiveInterruption()
	}
	return snap
}

// StartSession begins a new work session, optionally linked to a task.
// Legal only from Idle.
func (t *Tracker) StartSession(ctx context.Context, taskID string) (*domain.WorkSession, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.current != nil {
		t.logger.Warn("start session ignored", "state", t.stateLocked())
		return nil, ErrInvalidTransition
	}

	now := t.now()
	s := &domain.WorkSession{
		ID:        uuid.New().String(),
		TaskID:    taskID,
		StartTime: now,
		CreatedAt: now,
	}
	t.current = s

	t.persist(ctx, "create session", func(ctx context.Context) error {
		return t.sessions.Create(ctx, s)
	})
	t.emitLocked(Event{Type: EventSessionStarted, State: StateTracking, Session: s.Clone(), At: now})
	return s.Clone(), nil
}

// StartInterruption records a break in the current session. Legal only from
// Tracking.
func (t *Tracker) StartInterruption(ctx context.Context, reason string) (*domain.Interruption, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.current == nil || t.current.ActiveInterruption() != nil {
		t.logger.Warn("start interruption ignored", "state", t.stateLocked())
		return nil, ErrInvalidTransition
	}

	now := t.now()
	i := domain.Interruption{
		ID:        uuid.New().String(),
		SessionID: t.current.ID,
		StartTime: now,
		Reason:    reason,
	}
	t.current.Interruptions = append(t.current.Interruptions, i)

	t.persist(ctx, "create interruption", func(ctx context.Context) error {
		return t.interruptions.Create(ctx, &i)
	})
	t.emitLocked(Event{Type: EventInterruptionStarted, State: StateInterrupted, Session: t.current.Clone(), Interruption: i.Clone(), At: now})
	return i.Clone(), nil
}

// EndInterruption closes the current interruption and returns to Tracking.
func (t *Tracker) EndInterruption(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	active := t.activeInterruptionLocked()
	if active == nil {
		t.logger.Warn("end interruption ignored", "state", t.stateLocked())
		return ErrNoActiveEntity
	}

	now := t.now()
	end := now
	active.EndTime = &end

	t.persist(ctx, "end interruption", func(ctx context.Context) error {
		return t.interruptions.Update(ctx, active)
	})
	t.emitLocked(Event{Type: EventInterruptionEnded, State: StateTracking, Session: t.current.Clone(), Interruption: active.Clone(), At: now})
	return nil
}

// EndSession closes the current session. Legal from Tracking or
// Interrupted; an open interruption is closed first so it is never left
// dangling.
func (t *Tracker) EndSession(ctx context.Context) (*domain.WorkSession, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.current == nil {
		t.logger.Warn("end session ignored: no active session")
		return nil, ErrNoActiveEntity
	}

	now := t.now()
	end := now
	session := t.current
	active := t.activeInterruptionLocked()
	if active != nil {
		active.EndTime = &end
		t.emitLocked(Event{Type: EventInterruptionEnded, State: StateTracking, Session: session.Clone(), Interruption: active.Clone(), At: now})
	}

	session.EndTime = &end
	t.current = nil

	// Both rows close in one transaction so a crash mid-write cannot leave
	// an interruption dangling past its session end.
	t.persist(ctx, "end session", func(ctx context.Context) error {
		return t.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			if active != nil {
				if err := repository.NewSQLiteInterruptionRepo(tx).Update(ctx, active); err != nil {
					return err
				}
			}
			return repository.NewSQLiteSessionRepo(tx).Update(ctx, session)
		})
	})
	t.emitLocked(Event{Type: EventSessionEnded, State: StateIdle, Session: session.Clone(), At: now})
	t.logger.Info("ended session", "session_id", session.ID, "duration", session.Duration(now))
	return session.Clone(), nil
}

// Toggle ends the session when one is active, otherwise starts one.
// Returns true when a session was started.
func (t *Tracker) Toggle(ctx context.Context) (bool, error) {
	if t.State() == StateIdle {
		_, err := t.StartSession(ctx, "")
		return true, err
	}
	_, err := t.EndSession(ctx)
	return false, err
}

// DeleteSession removes a session and, via cascade, its interruptions.
// Deletion is an explicit user action; it is the one operation allowed to
// touch a non-current session. Deleting the current session drops the
// tracker back to Idle.
func (t *Tracker) DeleteSession(ctx context.Context, id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.sessions.Delete(ctx, id); err != nil {
		return err
	}
	if t.current != nil && t.current.ID == id {
		t.current = nil
		t.logger.Info("deleted active session", "session_id", id)
	}
	return nil
}

// Subscribe registers an observer channel for transition events. Events are
// delivered best effort: a full channel drops the event rather than block
// the transition.
func (t *Tracker) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	t.mu.Lock()
	t.subs = append(t.subs, ch)
	t.mu.Unlock()
	return ch
}

// Close shuts down all subscriber channels.
func (t *Tracker) Close() {
	t.mu.Lock()
	subs := t.subs
	t.subs = nil
	t.mu.Unlock()
	for _, ch := range subs {
		close(ch)
	}
}

func (t *Tracker) activeInterruptionLocked() *domain.Interruption {
	if t.current == nil {
		return nil
	}
	return t.current.ActiveInterruption()
}

// persist runs a storage write and swallows its failure. The in-memory
// transition has already happened and is not rolled back; the error is
// surfaced only through the log.
func (t *Tracker) persist(ctx context.Context, op string, fn func(context.Context) error) {
	if err := fn(ctx); err != nil {
		t.logger.Warn("persistence failed, keeping in-memory state", "op", op, "error", err)
	}
}

func (t *Tracker) emitLocked(event Event) {
	for _, ch := range t.subs {
		select {
		case ch <- event:
		default:
		}
	}
}
