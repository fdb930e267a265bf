package domain

import "time"

// WorkSession is a single span of focused work. A nil EndTime means the
// session is still running. Interruptions are held in insertion order,
// which is chronological because only one interruption can be open at a
// time.
type WorkSession struct {
	ID            string
	TaskID        string // optional; empty when the session is not tied to a task
	StartTime     time.Time
	EndTime       *time.Time
	Interruptions []Interruption
	CreatedAt     time.Time
}

// Active reports whether the session is still running.
func (s *WorkSession) Active() bool {
	return s.EndTime == nil
}

// Duration is the wall-clock span of the session. An open session extends
// to the given reference instant. Never cached: recomputed on every read so
// an active session's duration stays live.
func (s *WorkSession) Duration(now time.Time) time.Duration {
	end := now
	if s.EndTime != nil {
		end = *s.EndTime
	}
	return end.Sub(s.StartTime)
}

// ActiveInterruption returns the still-open interruption, or nil.
func (s *WorkSession) ActiveInterruption() *Interruption {
	for i := range s.Interruptions {
		if s.Interruptions[i].Active() {
			return &s.Interruptions[i]
		}
	}
	return nil
}

// InterruptionMinutes sums the durations of all interruptions, open ones
// extending to the reference instant.
func (s *WorkSession) InterruptionMinutes(now time.Time) float64 {
	var total time.Duration
	for i := range s.Interruptions {
		total += s.Interruptions[i].Duration(now)
	}
	return total.Minutes()
}

// Clone returns a deep copy, used for read-only snapshots handed to
// display consumers.
func (s *WorkSession) Clone() *WorkSession {
	if s == nil {
		return nil
	}
	out := *s
	if s.EndTime != nil {
		end := *s.EndTime
		out.EndTime = &end
	}
	out.Interruptions = make([]Interruption, len(s.Interruptions))
	for i := range s.Interruptions {
		out.Interruptions[i] = *s.Interruptions[i].Clone()
	}
	return &out
}
