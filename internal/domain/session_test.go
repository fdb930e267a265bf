package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkSession_DurationLiveWhileOpen(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	s := &WorkSession{ID: "s1", StartTime: start}

	assert.Equal(t, 10*time.Minute, s.Duration(start.Add(10*time.Minute)))
	assert.Equal(t, 25*time.Minute, s.Duration(start.Add(25*time.Minute)))

	end := start.Add(30 * time.Minute)
	s.EndTime = &end
	// Closed: the reference instant no longer matters.
	assert.Equal(t, 30*time.Minute, s.Duration(start.Add(2*time.Hour)))
}

func TestWorkSession_ActiveInterruption(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	closedEnd := start.Add(15 * time.Minute)
	s := &WorkSession{
		ID:        "s1",
		StartTime: start,
		Interruptions: []Interruption{
			{ID: "i1", StartTime: start.Add(10 * time.Minute), EndTime: &closedEnd},
			{ID: "i2", StartTime: start.Add(20 * time.Minute)},
		},
	}

	active := s.ActiveInterruption()
	require.NotNil(t, active)
	assert.Equal(t, "i2", active.ID)

	end := start.Add(25 * time.Minute)
	s.Interruptions[1].EndTime = &end
	assert.Nil(t, s.ActiveInterruption())
}

func TestWorkSession_InterruptionMinutes(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	closedEnd := start.Add(15 * time.Minute)
	s := &WorkSession{
		ID:        "s1",
		StartTime: start,
		Interruptions: []Interruption{
			{ID: "i1", StartTime: start.Add(10 * time.Minute), EndTime: &closedEnd},
			{ID: "i2", StartTime: start.Add(20 * time.Minute)},
		},
	}

	// 5 closed + 10 still running at the reference instant.
	assert.InDelta(t, 15, s.InterruptionMinutes(start.Add(30*time.Minute)), 0.001)
}

func TestWorkSession_CloneIsDeep(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	s := &WorkSession{
		ID:        "s1",
		StartTime: start,
		EndTime:   &end,
		Interruptions: []Interruption{
			{ID: "i1", StartTime: start.Add(10 * time.Minute)},
		},
	}

	c := s.Clone()
	c.Interruptions[0].Reason = "changed"
	*c.EndTime = end.Add(time.Hour)

	assert.Empty(t, s.Interruptions[0].Reason)
	assert.True(t, s.EndTime.Equal(end))
}

func TestWorkSession_CloneNil(t *testing.T) {
	var s *WorkSession
	assert.Nil(t, s.Clone())
}
