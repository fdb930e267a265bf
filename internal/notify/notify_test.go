package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"focustrack/internal/domain"
	"focustrack/internal/tracker"
)

type captureSink struct {
	got []Notification
}

func (c *captureSink) Notify(n Notification) { c.got = append(c.got, n) }

func TestForEvent_SessionEnded(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)
	s := &domain.WorkSession{ID: "s1", StartTime: start, EndTime: &end}

	n, ok := ForEvent(tracker.Event{Type: tracker.EventSessionEnded, Session: s, At: end})
	require.True(t, ok)
	assert.Equal(t, "Session ended", n.Title)
	assert.Contains(t, n.Body, "1h 30m")
}

func TestForEvent_InterruptionCarriesReason(t *testing.T) {
	i := &domain.Interruption{ID: "i1", Reason: "phone call", StartTime: time.Now()}

	n, ok := ForEvent(tracker.Event{Type: tracker.EventInterruptionStarted, Interruption: i, At: time.Now()})
	require.True(t, ok)
	assert.Equal(t, "Interrupted", n.Title)
	assert.Contains(t, n.Body, "phone call")
}

func TestForEvent_UnknownTypeSkipped(t *testing.T) {
	_, ok := ForEvent(tracker.Event{Type: tracker.EventType("bogus")})
	assert.False(t, ok)
}

func TestRelay_ForwardsUntilClosed(t *testing.T) {
	events := make(chan tracker.Event, 2)
	events <- tracker.Event{Type: tracker.EventSessionStarted, At: time.Now()}
	events <- tracker.Event{Type: tracker.EventType("bogus")}
	close(events)

	sink := &captureSink{}
	Relay(events, sink)

	require.Len(t, sink.got, 1)
	assert.Equal(t, "Session started", sink.got[0].Title)
}

func TestMultiSink_FansOut(t *testing.T) {
	a, b := &captureSink{}, &captureSink{}
	MultiSink{a, b}.Notify(Notification{Title: "t"})

	assert.Len(t, a.got, 1)
	assert.Len(t, b.got, 1)
}
