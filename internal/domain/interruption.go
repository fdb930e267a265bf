package domain

import "time"

// Interruption is a break in focus inside one owning session. A nil EndTime
// means the interruption is still ongoing. Lifetime ends with the owning
// session's deletion.
type Interruption struct {
	ID        string
	SessionID string
	StartTime time.Time
	EndTime   *time.Time
	Reason    string
}

// Active reports whether the interruption is still ongoing.
func (i *Interruption) Active() bool {
	return i.EndTime == nil
}

// Duration is the span of the interruption; an open one extends to the
// given reference instant.
func (i *Interruption) Duration(now time.Time) time.Duration {
	end := now
	if i.EndTime != nil {
		end = *i.EndTime
	}
	return end.Sub(i.StartTime)
}

// Clone returns a copy safe to hand outside the tracker.
func (i *Interruption) Clone() *Interruption {
	if i == nil {
		return nil
	}
	out := *i
	if i.EndTime != nil {
		end := *i.EndTime
		out.EndTime = &end
	}
	return &out
}
