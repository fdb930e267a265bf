// Package notify maps tracker transitions to human-readable notifications.
// Delivery is pluggable; the default sink writes structured log lines, the
// OS-level delivery mechanism being outside this tool's scope.
package notify

import (
	"fmt"
	"log/slog"
	"time"

	"focustrack/internal/tracker"
)

// Notification is a (title, body) pair handed to sinks.
type Notification struct {
	Title string
	Body  string
}

// Sink receives notifications. Implementations must not block.
type Sink interface {
	Notify(n Notification)
}

// LogSink writes notifications to a structured logger.
type LogSink struct {
	Logger *slog.Logger
}

func (s LogSink) Notify(n Notification) {
	s.Logger.Info("notification", "title", n.Title, "body", n.Body)
}

// MultiSink fans a notification out to several sinks.
type MultiSink []Sink

func (m MultiSink) Notify(n Notification) {
	for _, s := range m {
		s.Notify(n)
	}
}

// ForEvent translates a tracker event into a notification. The second
// return is false for events that should not notify.
func ForEvent(e tracker.Event) (Notification, bool) {
	switch e.Type {
	case tracker.EventSessionStarted:
		return Notification{
			Title: "Session started",
			Body:  "Focus time. Interruptions will be tracked.",
		}, true
	case tracker.EventSessionEnded:
		if e.Session == nil {
			return Notification{}, false
		}
		return Notification{
			Title: "Session ended",
			Body:  fmt.Sprintf("You focused for %s.", humanDuration(e.Session.Duration(e.At))),
		}, true
	case tracker.EventInterruptionStarted:
		body := "Timer keeps running; end the interruption when you are back."
		if e.Interruption != nil && e.Interruption.Reason != "" {
			body = fmt.Sprintf("Reason: %s", e.Interruption.Reason)
		}
		return Notification{Title: "Interrupted", Body: body}, true
	case tracker.EventInterruptionEnded:
		if e.Interruption == nil {
			return Notification{}, false
		}
		return Notification{
			Title: "Back to work",
			Body:  fmt.Sprintf("Interruption lasted %s.", humanDuration(e.Interruption.Duration(e.At))),
		}, true
	}
	return Notification{}, false
}

func humanDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	if minutes >= 60 {
		return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%dm", minutes)
}

// Relay consumes tracker events and forwards them to the sink until the
// event channel closes. Run it in its own goroutine.
func Relay(events <-chan tracker.Event, sink Sink) {
	for e := range events {
		if n, ok := ForEvent(e); ok {
			sink.Notify(n)
		}
	}
}
