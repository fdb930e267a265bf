// Package metrics derives productivity scores from recorded sessions.
//
// The score follows Productivity = Focused / (Focused + Penalty) with
// Penalty = interruption count x a per-interruption minute charge. Focused
// time is the full wall-clock span of each session; the cost of being
// interrupted is carried entirely by the penalty term rather than also
// subtracted from the span.
package metrics

import (
	"time"

	"focustrack/internal/domain"
)

// Metrics is the summary computed over a set of sessions. All fields are
// recomputed on every call, never cached, so open sessions stay live.
type Metrics struct {
	FocusedMinutes      float64
	InterruptionCount   int
	InterruptionMinutes float64
	PenaltyMinutes      float64
	ProductivityScore   float64 // 0.0 to 1.0
	SessionCount        int
}

// Percentage is the score scaled to 0-100.
func (m Metrics) Percentage() float64 {
	return m.ProductivityScore * 100.0
}

// Grade maps the percentage to a letter grade.
func (m Metrics) Grade() string {
	p := m.Percentage()
	switch {
	case p >= 90:
		return "A+"
	case p >= 80:
		return "A"
	case p >= 70:
		return "B"
	case p >= 60:
		return "C"
	case p >= 50:
		return "D"
	default:
		return "F"
	}
}

// Calculate computes the metrics for a set of sessions. Sessions and
// interruptions still open extend to now.
func Calculate(sessions []*domain.WorkSession, penaltyMinutes int, now time.Time) Metrics {
	var m Metrics
	m.SessionCount = len(sessions)

	for _, s := range sessions {
		m.FocusedMinutes += s.Duration(now).Minutes()
		m.InterruptionCount += len(s.Interruptions)
		m.InterruptionMinutes += s.InterruptionMinutes(now)
	}

	m.PenaltyMinutes = float64(m.InterruptionCount * penaltyMinutes)

	if denom := m.FocusedMinutes + m.PenaltyMinutes; denom > 0 {
		m.ProductivityScore = clamp01(m.FocusedMinutes / denom)
	}
	return m
}

// CalculateForDate computes metrics over the sessions that started on the
// same calendar day as date.
func CalculateForDate(date time.Time, sessions []*domain.WorkSession, penaltyMinutes int, now time.Time) Metrics {
	var filtered []*domain.WorkSession
	for _, s := range sessions {
		if sameDay(s.StartTime, date) {
			filtered = append(filtered, s)
		}
	}
	return Calculate(filtered, penaltyMinutes, now)
}

// WeeklyAverage averages the per-day scores over the last 7 calendar days
// (today and the 6 preceding). Days with no sessions are excluded from the
// average, not counted as zero. Returns 0 when no day had sessions.
func WeeklyAverage(sessions []*domain.WorkSession, penaltyMinutes int, now time.Time) float64 {
	var sum float64
	var days int
	for offset := 0; offset < 7; offset++ {
		day := now.AddDate(0, 0, -offset)
		var daySessions []*domain.WorkSession
		for _, s := range sessions {
			if sameDay(s.StartTime, day) {
				daySessions = append(daySessions, s)
			}
		}
		if len(daySessions) == 0 {
			continue
		}
		sum += Calculate(daySessions, penaltyMinutes, now).ProductivityScore
		days++
	}
	if days == 0 {
		return 0
	}
	return sum / float64(days)
}

// sameDay reports whether a and b fall on the same calendar day, evaluated
// in b's location.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.In(b.Location()).Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
