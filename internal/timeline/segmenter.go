// Package timeline reconstructs a session's span as an ordered list of
// typed, non-overlapping intervals: focused work, interruptions, and the
// recovery penalty that follows each ended interruption.
package timeline

import (
	"sort"
	"time"

	"focustrack/internal/domain"
)

// Kind tags a timeline segment.
type Kind string

const (
	KindFocus        Kind = "focus"
	KindInterruption Kind = "interruption"
	KindPenalty      Kind = "penalty"
)

// Segment is a half-open interval [Start, End) of one kind. Segments
// returned by Compute are contiguous, ordered by start time, and together
// cover the session span exactly.
type Segment struct {
	Kind  Kind
	Start time.Time
	End   time.Time
}

// Duration is the length of the segment.
func (s Segment) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// Compute segments one session's span. An interruption without an end time
// extends to now and schedules no recovery penalty; an ended interruption
// is followed by a penalty window of recoveryMinutes, truncated by the next
// interruption or the session end. Zero-length segments are never emitted.
//
// Interruptions are sorted here; callers are not trusted to have done it.
func Compute(session *domain.WorkSession, recoveryMinutes int, now time.Time) []Segment {
	sessionEnd := now
	if session.EndTime != nil {
		sessionEnd = *session.EndTime
	}
	recovery := time.Duration(recoveryMinutes) * time.Minute

	interruptions := make([]domain.Interruption, len(session.Interruptions))
	copy(interruptions, session.Interruptions)
	sort.SliceStable(interruptions, func(a, b int) bool {
		return interruptions[a].StartTime.Before(interruptions[b].StartTime)
	})

	var segments []Segment
	cursor := session.StartTime
	var penaltyUntil *time.Time

	for i := range interruptions {
		intStart := interruptions[i].StartTime

		// Classify the gap before this interruption: first any pending
		// recovery penalty, then focus.
		if cursor.Before(intStart) {
			cursor = fillGap(&segments, cursor, intStart, penaltyUntil)
		}

		intEnd := now
		if interruptions[i].EndTime != nil {
			intEnd = *interruptions[i].EndTime
		}
		if intEnd.After(intStart) {
			segments = append(segments, Segment{Kind: KindInterruption, Start: intStart, End: intEnd})
		}
		if intEnd.After(cursor) {
			cursor = intEnd
		}

		if interruptions[i].EndTime != nil {
			until := intEnd.Add(recovery)
			penaltyUntil = &until
		} else {
			// Still interrupted: no recovery scheduled yet.
			penaltyUntil = nil
		}
	}

	if cursor.Before(sessionEnd) {
		fillGap(&segments, cursor, sessionEnd, penaltyUntil)
	}

	return segments
}

// fillGap emits the penalty-then-focus segments covering [from, to) and
// returns the new cursor position.
func fillGap(segments *[]Segment, from, to time.Time, penaltyUntil *time.Time) time.Time {
	cursor := from
	if penaltyUntil != nil && cursor.Before(*penaltyUntil) {
		end := *penaltyUntil
		if to.Before(end) {
			end = to
		}
		if end.After(cursor) {
			*segments = append(*segments, Segment{Kind: KindPenalty, Start: cursor, End: end})
			cursor = end
		}
	}
	if cursor.Before(to) {
		*segments = append(*segments, Segment{Kind: KindFocus, Start: cursor, End: to})
		cursor = to
	}
	return cursor
}
