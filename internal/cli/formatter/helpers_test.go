package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHumanDuration(t *testing.T) {
	tests := []struct {
		name  string
		input time.Duration
		want  string
	}{
		{"minutes only", 12 * time.Minute, "12m"},
		{"zero", 0, "0m"},
		{"negative clamps", -5 * time.Minute, "0m"},
		{"hours and minutes", 2*time.Hour + 30*time.Minute, "2h 30m"},
		{"exact hour", time.Hour, "1h 0m"},
		{"sub-minute rounds down", 45 * time.Second, "0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HumanDuration(tt.input))
		})
	}
}

func TestHumanClock(t *testing.T) {
	assert.Equal(t, "0:00:00", HumanClock(0))
	assert.Equal(t, "0:05:09", HumanClock(5*time.Minute+9*time.Second))
	assert.Equal(t, "2:30:00", HumanClock(2*time.Hour+30*time.Minute))
	assert.Equal(t, "0:00:00", HumanClock(-time.Minute))
}

func TestTruncID(t *testing.T) {
	assert.Equal(t, "short", TruncID("short"))
	assert.Equal(t, "0123abcd", TruncID("0123abcd-ef01-2345-6789-abcdef012345"))
}

func TestRelativeDate(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input time.Time
		want  string
	}{
		{"today", now, "Today"},
		{"yesterday", now.Add(-24 * time.Hour), "Yesterday"},
		{"tomorrow", now.Add(24 * time.Hour), "Tomorrow"},
		{"3 days past", now.Add(-3 * 24 * time.Hour), "3d ago"},
		{"3 weeks past", now.Add(-21 * 24 * time.Hour), "3w ago"},
		{"3 days future", now.Add(3 * 24 * time.Hour), "In 3d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeDate(tt.input, now))
		})
	}
}
