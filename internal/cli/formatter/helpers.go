package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// HumanDuration formats a duration as "2h 30m" or "12m".
func HumanDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int(d.Minutes())
	if minutes >= 60 {
		return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%dm", minutes)
}

// HumanClock formats a duration as a live h:mm:ss counter.
func HumanClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%d:%02d:%02d", total/3600, (total/60)%60, total%60)
}

// HumanTimestamp formats a timestamp for table cells.
func HumanTimestamp(t time.Time) string {
	return t.Local().Format("Jan 02 15:04")
}

// TruncID shortens a UUID for display.
func TruncID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// RelativeDate returns a human-friendly relative date string from a
// reference time.
func RelativeDate(t time.Time, now time.Time) string {
	days := int(math.Round(t.Sub(now).Hours() / 24))
	switch {
	case days == 0:
		return "Today"
	case days == -1:
		return "Yesterday"
	case days < 0 && days > -14:
		return fmt.Sprintf("%dd ago", -days)
	case days < 0:
		return fmt.Sprintf("%dw ago", -days/7)
	case days == 1:
		return "Tomorrow"
	default:
		return fmt.Sprintf("In %dd", days)
	}
}
