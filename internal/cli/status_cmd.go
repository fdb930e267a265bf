package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"focustrack/internal/cli/formatter"
	"focustrack/internal/domain"
	"focustrack/internal/metrics"
	"focustrack/internal/timeline"
	"focustrack/internal/tracker"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current state and today's metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			fmt.Print(formatter.RenderBox("Status", renderStatus(ctx, app)))
			return nil
		},
	}
}

// renderStatus builds the status body; the watch TUI reuses it on every tick.
func renderStatus(ctx context.Context, app *App) string {
	now := app.now()
	snap := app.Tracker.Snapshot()
	settings := loadSettings(ctx, app)

	var b strings.Builder
	b.WriteString(formatter.StateIndicator(snap.State))
	b.WriteString("\n")

	if snap.Session != nil {
		b.WriteString(fmt.Sprintf("\n%s  %s", formatter.Dim("ELAPSED"),
			formatter.Bold(formatter.HumanClock(snap.Session.Duration(now)))))
		if snap.Interruption != nil {
			line := fmt.Sprintf("\n%s  %s", formatter.Dim("AWAY   "),
				formatter.HumanClock(snap.Interruption.Duration(now)))
			if snap.Interruption.Reason != "" {
				line += formatter.Dim(" (" + snap.Interruption.Reason + ")")
			}
			b.WriteString(line)
		}
		b.WriteString("\n\n")
		segments := timeline.Compute(snap.Session, settings.RecoveryMinutes, now)
		b.WriteString(formatter.RenderTimeline(segments, 40))
		b.WriteString("\n" + formatter.TimelineLegend())
		b.WriteString("\n")
	}

	b.WriteString("\n" + formatter.Header("Today"))
	b.WriteString("\n" + renderMetricsBody(todayMetrics(ctx, app, settings, now)))
	return b.String()
}

func todayMetrics(ctx context.Context, app *App, settings *domain.Settings, now time.Time) metrics.Metrics {
	from := startOfDay(now)
	sessions, err := app.Sessions.ListByDateRange(ctx, from, from.AddDate(0, 0, 1))
	if err != nil {
		return metrics.Metrics{}
	}
	return metrics.Calculate(sessions, settings.PenaltyPerInterruptionMinutes, now)
}

func renderMetricsBody(m metrics.Metrics) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s over %d sessions\n",
		formatter.Dim("FOCUSED"),
		formatter.Bold(formatter.HumanDuration(time.Duration(m.FocusedMinutes)*time.Minute)),
		m.SessionCount))
	b.WriteString(fmt.Sprintf("%s  %d (%s lost, %s penalty)\n",
		formatter.Dim("BREAKS "),
		m.InterruptionCount,
		formatter.HumanDuration(time.Duration(m.InterruptionMinutes)*time.Minute),
		formatter.HumanDuration(time.Duration(m.PenaltyMinutes)*time.Minute)))
	b.WriteString(fmt.Sprintf("%s  %s\n", formatter.Dim("SCORE  "), formatter.RenderScore(m, 20)))
	return b.String()
}

// loadSettings returns persisted settings, falling back to defaults when
// storage is unavailable (read-only display must not fail).
func loadSettings(ctx context.Context, app *App) *domain.Settings {
	s, err := app.Settings.Get(ctx)
	if err != nil {
		return domain.DefaultSettings()
	}
	return s
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// stateLabel is used in plain (non-styled) contexts such as watch titles.
func stateLabel(s tracker.State) string {
	switch s {
	case tracker.StateTracking:
		return "Tracking"
	case tracker.StateInterrupted:
		return "Interrupted"
	default:
		return "Idle"
	}
}
