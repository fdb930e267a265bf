package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"focustrack/internal/cli/formatter"
	"focustrack/internal/domain"
	"focustrack/internal/repository"
	"focustrack/internal/timeline"
)

func newTimelineCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "timeline [SESSION_ID]",
		Short: "Show a session's timeline of focus, interruptions and recovery",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			now := app.now()
			settings := loadSettings(ctx, app)

			var session *domain.WorkSession
			if len(args) == 1 {
				s, err := resolveSession(ctx, app, args[0])
				if err != nil {
					return err
				}
				session = s
			} else {
				snap := app.Tracker.Snapshot()
				if snap.Session == nil {
					fmt.Println("No session is running. Pass a session ID, see `focustrack history list`.")
					return nil
				}
				session = snap.Session
			}

			segments := timeline.Compute(session, settings.RecoveryMinutes, now)

			var b strings.Builder
			b.WriteString(fmt.Sprintf("%s %s, started %s\n\n",
				formatter.Dim("Session"),
				formatter.Bold(formatter.TruncID(session.ID)),
				formatter.HumanTimestamp(session.StartTime)))
			b.WriteString(formatter.RenderTimeline(segments, 50))
			b.WriteString("\n" + formatter.TimelineLegend() + "\n\n")

			rows := make([][]string, 0, len(segments))
			for _, seg := range segments {
				rows = append(rows, []string{
					formatter.SegmentStyle(seg.Kind).Render(string(seg.Kind)),
					seg.Start.Local().Format("15:04:05"),
					seg.End.Local().Format("15:04:05"),
					formatter.HumanDuration(seg.Duration()),
				})
			}
			b.WriteString(formatter.RenderTable([]string{"KIND", "FROM", "TO", "LENGTH"}, rows))

			fmt.Print(formatter.RenderBox("Timeline", b.String()))
			return nil
		},
	}
}

// resolveSession looks a session up by full or truncated ID.
func resolveSession(ctx context.Context, app *App, id string) (*domain.WorkSession, error) {
	s, err := app.Sessions.GetByID(ctx, id)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	all, err := app.Sessions.List(ctx)
	if err != nil {
		return nil, err
	}
	var match *domain.WorkSession
	for _, candidate := range all {
		if strings.HasPrefix(candidate.ID, id) {
			if match != nil {
				return nil, fmt.Errorf("session ID %q is ambiguous", id)
			}
			match = candidate
		}
	}
	if match == nil {
		return nil, fmt.Errorf("session %q: %w", id, repository.ErrNotFound)
	}
	return match, nil
}
