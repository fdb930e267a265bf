package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"focustrack/internal/cli/formatter"
	"focustrack/internal/domain"
	"focustrack/internal/metrics"
	"focustrack/internal/repository"
)

func newHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse and prune past sessions",
	}
	cmd.AddCommand(newHistoryListCmd(app), newHistoryRmCmd(app))
	return cmd
}

func newHistoryListCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded sessions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			now := app.now()
			settings := loadSettings(ctx, app)

			from := startOfDay(now).AddDate(0, 0, -(days - 1))
			sessions, err := app.Sessions.ListByDateRange(ctx, from, startOfDay(now).AddDate(0, 0, 1))
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Printf("No sessions in the last %d days.\n", days)
				return nil
			}

			rows := make([][]string, 0, len(sessions))
			for _, s := range sessions {
				state := formatter.Dim("done")
				if s.Active() {
					state = formatter.StyleGreen.Render("open")
				}
				m := metrics.Calculate([]*domain.WorkSession{s}, settings.PenaltyPerInterruptionMinutes, now)
				grade := m.Grade()
				rows = append(rows, []string{
					formatter.Bold(formatter.TruncID(s.ID)),
					formatter.RelativeDate(s.StartTime, now),
					s.StartTime.Local().Format("15:04"),
					formatter.HumanDuration(s.Duration(now)),
					fmt.Sprintf("%d", len(s.Interruptions)),
					fmt.Sprintf("%3.0f%% (%s)", m.Percentage(), formatter.GradeStyle(grade).Render(grade)),
					state,
				})
			}
			fmt.Print(formatter.RenderBox("History",
				formatter.RenderTable([]string{"ID", "DAY", "START", "LENGTH", "BREAKS", "SCORE", "STATE"}, rows)))
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "How many days back to list")
	return cmd
}

func newHistoryRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm SESSION_ID",
		Short: "Delete a session and its interruptions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			s, err := resolveSession(ctx, app, args[0])
			if errors.Is(err, repository.ErrNotFound) {
				fmt.Printf("No session matches %q.\n", args[0])
				return nil
			}
			if err != nil {
				return err
			}

			if err := app.Tracker.DeleteSession(ctx, s.ID); err != nil {
				return err
			}
			fmt.Printf("Deleted session %s (%s, %d interruptions)\n",
				formatter.TruncID(s.ID),
				formatter.HumanDuration(s.Duration(app.now())),
				len(s.Interruptions))
			return nil
		},
	}
}
