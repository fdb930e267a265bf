package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"focustrack/internal/timeline"
	"focustrack/internal/tracker"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorOrange = lipgloss.Color("#fe8019")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleOrange = lipgloss.NewStyle().Foreground(ColorOrange)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StateIndicator returns a colored indicator string for the tracker state.
func StateIndicator(state tracker.State) string {
	switch state {
	case tracker.StateTracking:
		return StyleGreen.Render("● TRACKING")
	case tracker.StateInterrupted:
		return StyleYellow.Render("● INTERRUPTED")
	case tracker.StateIdle:
		return StyleDim.Render("○ IDLE")
	default:
		return StyleDim.Render("○ UNKNOWN")
	}
}

// SegmentStyle returns the style used to draw a timeline segment kind:
// blue for focus, orange for interruptions, purple for recovery penalty.
func SegmentStyle(kind timeline.Kind) lipgloss.Style {
	switch kind {
	case timeline.KindFocus:
		return StyleBlue
	case timeline.KindInterruption:
		return StyleOrange
	case timeline.KindPenalty:
		return StylePurple
	default:
		return StyleDim
	}
}

// GradeStyle colors a letter grade.
func GradeStyle(grade string) lipgloss.Style {
	switch grade {
	case "A+", "A":
		return StyleGreen
	case "B", "C":
		return StyleYellow
	default:
		return StyleRed
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
