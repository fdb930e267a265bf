package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"focustrack/internal/domain"
	"focustrack/internal/testutil"
)

var base = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func at(min int) time.Time {
	return base.Add(time.Duration(min) * time.Minute)
}

func TestCalculate_Empty(t *testing.T) {
	m := Calculate(nil, 15, base)

	assert.Zero(t, m.SessionCount)
	assert.Zero(t, m.FocusedMinutes)
	assert.Zero(t, m.ProductivityScore)
	assert.Equal(t, "F", m.Grade())
}

func TestCalculate_CleanSessionScoresFull(t *testing.T) {
	s := testutil.NewTestSession(testutil.WithStart(at(0)), testutil.WithEnd(at(60)))

	m := Calculate([]*domain.WorkSession{s}, 15, at(60))

	assert.InDelta(t, 60, m.FocusedMinutes, 0.001)
	assert.Equal(t, 0, m.InterruptionCount)
	assert.InDelta(t, 1.0, m.ProductivityScore, 0.001)
	assert.Equal(t, "A+", m.Grade())
}

func TestCalculate_PenaltyPerInterruption(t *testing.T) {
	// 60 focused minutes, one interruption: 60 / (60 + 15) = 0.8.
	s := testutil.NewTestSession(
		testutil.WithStart(at(0)),
		testutil.WithEnd(at(60)),
		testutil.WithInterruption(at(10), at(15)),
	)

	m := Calculate([]*domain.WorkSession{s}, 15, at(60))

	assert.InDelta(t, 60, m.FocusedMinutes, 0.001)
	assert.Equal(t, 1, m.InterruptionCount)
	assert.InDelta(t, 5, m.InterruptionMinutes, 0.001)
	assert.InDelta(t, 15, m.PenaltyMinutes, 0.001)
	assert.InDelta(t, 0.8, m.ProductivityScore, 0.001)
	assert.Equal(t, "A", m.Grade())
}

func TestCalculate_OpenSessionExtendsToNow(t *testing.T) {
	s := testutil.NewTestSession(testutil.WithStart(at(0)))

	m := Calculate([]*domain.WorkSession{s}, 15, at(30))

	assert.InDelta(t, 30, m.FocusedMinutes, 0.001)
}

func TestCalculate_MultipleSessionsAggregate(t *testing.T) {
	s1 := testutil.NewTestSession(
		testutil.WithStart(at(0)),
		testutil.WithEnd(at(30)),
		testutil.WithInterruption(at(5), at(10)),
	)
	s2 := testutil.NewTestSession(
		testutil.WithStart(at(60)),
		testutil.WithEnd(at(90)),
		testutil.WithInterruption(at(65), at(70)),
		testutil.WithInterruption(at(80), at(82)),
	)

	m := Calculate([]*domain.WorkSession{s1, s2}, 10, at(90))

	assert.Equal(t, 2, m.SessionCount)
	assert.Equal(t, 3, m.InterruptionCount)
	assert.InDelta(t, 60, m.FocusedMinutes, 0.001)
	assert.InDelta(t, 30, m.PenaltyMinutes, 0.001)
	assert.InDelta(t, 60.0/90.0, m.ProductivityScore, 0.001)
}

func TestGrade_Bands(t *testing.T) {
	cases := []struct {
		score float64
		grade string
	}{
		{0.95, "A+"},
		{0.90, "A+"},
		{0.85, "A"},
		{0.80, "A"},
		{0.75, "B"},
		{0.65, "C"},
		{0.55, "D"},
		{0.40, "F"},
		{0.0, "F"},
	}
	for _, tc := range cases {
		m := Metrics{ProductivityScore: tc.score}
		assert.Equal(t, tc.grade, m.Grade(), "score %v", tc.score)
	}
}

func TestCalculateForDate_FiltersByStartDay(t *testing.T) {
	today := testutil.NewTestSession(testutil.WithStart(at(0)), testutil.WithEnd(at(60)))
	yesterday := testutil.NewTestSession(
		testutil.WithStart(at(-24*60)),
		testutil.WithEnd(at(-24*60+30)),
	)

	m := CalculateForDate(base, []*domain.WorkSession{today, yesterday}, 15, at(60))

	assert.Equal(t, 1, m.SessionCount)
	assert.InDelta(t, 60, m.FocusedMinutes, 0.001)
}

func TestWeeklyAverage_SkipsEmptyDays(t *testing.T) {
	// A perfect day and a 0.8 day two days earlier; the five empty days
	// must not drag the average down.
	clean := testutil.NewTestSession(testutil.WithStart(at(0)), testutil.WithEnd(at(60)))
	interrupted := testutil.NewTestSession(
		testutil.WithStart(at(-2*24*60)),
		testutil.WithEnd(at(-2*24*60+60)),
		testutil.WithInterruption(at(-2*24*60+10), at(-2*24*60+15)),
	)

	avg := WeeklyAverage([]*domain.WorkSession{clean, interrupted}, 15, at(60))

	assert.InDelta(t, (1.0+0.8)/2, avg, 0.001)
}

func TestWeeklyAverage_NoSessions(t *testing.T) {
	assert.Zero(t, WeeklyAverage(nil, 15, base))
}

func TestWeeklyAverage_IgnoresSessionsOutsideWindow(t *testing.T) {
	old := testutil.NewTestSession(
		testutil.WithStart(at(-10*24*60)),
		testutil.WithEnd(at(-10*24*60+60)),
	)

	assert.Zero(t, WeeklyAverage([]*domain.WorkSession{old}, 15, base))
}
