package formatter

import (
	"fmt"
	"strings"

	"focustrack/internal/metrics"
	"focustrack/internal/timeline"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderTimeline draws a session's segments as one proportional bar:
// each segment's width is its share of the total span, colored by kind.
// Segments too narrow for the width are kept at one cell so short
// interruptions stay visible.
func RenderTimeline(segments []timeline.Segment, width int) string {
	if len(segments) == 0 {
		return StyleDim.Render(strings.Repeat(emptyBlock, max(width, 1)))
	}
	if width < len(segments) {
		width = len(segments)
	}

	var total float64
	for _, seg := range segments {
		total += seg.Duration().Seconds()
	}
	if total <= 0 {
		return StyleDim.Render(strings.Repeat(emptyBlock, width))
	}

	// First pass: proportional cells with a floor of one per segment.
	cells := make([]int, len(segments))
	used := 0
	for i, seg := range segments {
		c := int(seg.Duration().Seconds() / total * float64(width))
		if c < 1 {
			c = 1
		}
		cells[i] = c
		used += c
	}
	// Settle rounding against the widest segment.
	widest := 0
	for i := range cells {
		if cells[i] > cells[widest] {
			widest = i
		}
	}
	cells[widest] += width - used
	if cells[widest] < 1 {
		cells[widest] = 1
	}

	var b strings.Builder
	for i, seg := range segments {
		b.WriteString(SegmentStyle(seg.Kind).Render(strings.Repeat(filledBlock, cells[i])))
	}
	return b.String()
}

// TimelineLegend is the color key printed under a timeline bar.
func TimelineLegend() string {
	return fmt.Sprintf("%s Focused  %s Interruption  %s Recovery",
		StyleBlue.Render("■"),
		StyleOrange.Render("■"),
		StylePurple.Render("■"),
	)
}

// RenderScore draws the productivity score as a bar with percentage and
// letter grade, e.g. [███████░░░] 72% (B).
func RenderScore(m metrics.Metrics, width int) string {
	if width < 2 {
		width = 2
	}
	filled := int(m.ProductivityScore * float64(width))
	if filled > width {
		filled = width
	}

	style := StyleGreen
	if m.ProductivityScore < 0.5 {
		style = StyleRed
	} else if m.ProductivityScore < 0.8 {
		style = StyleYellow
	}

	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	grade := m.Grade()
	return fmt.Sprintf("[%s] %3.0f%% (%s)", style.Render(bar), m.Percentage(), GradeStyle(grade).Render(grade))
}
