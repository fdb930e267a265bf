package tracker

import (
	"time"

	"focustrack/internal/domain"
)

// State is the tracker's position in the session lifecycle. Interrupted is
// a sub-state of an active session: it is only reachable from Tracking and
// always falls back to it.
type State string

const (
	StateIdle        State = "idle"
	StateTracking    State = "tracking"
	StateInterrupted State = "interrupted"
)

type EventType string

const (
	EventSessionStarted      EventType = "session_started"
	EventSessionEnded        EventType = "session_ended"
	EventInterruptionStarted EventType = "interruption_started"
	EventInterruptionEnded   EventType = "interruption_ended"
)

// Event is published to subscribers after every successful transition.
// Session and Interruption are deep copies; consumers may hold them freely.
type Event struct {
	Type         EventType
	State        State
	Session      *domain.WorkSession
	Interruption *domain.Interruption
	At           time.Time
}

// Snapshot is a read-only view of the tracker's current entities, handed to
// display consumers on demand.
type Snapshot struct {
	State        State
	Session      *domain.WorkSession
	Interruption *domain.Interruption
	At           time.Time
}
