package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"focustrack/internal/cli/formatter"
	"focustrack/internal/metrics"
)

func newMetricsCmd(app *App) *cobra.Command {
	var dateFlag string
	var week bool

	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Show productivity metrics for a day or the last week",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			now := app.now()
			settings := loadSettings(ctx, app)

			date := now
			if dateFlag != "" {
				parsed, err := time.ParseInLocation("2006-01-02", dateFlag, now.Location())
				if err != nil {
					return fmt.Errorf("parsing --date: %w", err)
				}
				date = parsed
			}

			if week {
				from := startOfDay(now).AddDate(0, 0, -6)
				sessions, err := app.Sessions.ListByDateRange(ctx, from, startOfDay(now).AddDate(0, 0, 1))
				if err != nil {
					return err
				}

				var b strings.Builder
				rows := make([][]string, 0, 7)
				for offset := 6; offset >= 0; offset-- {
					day := now.AddDate(0, 0, -offset)
					m := metrics.CalculateForDate(day, sessions, settings.PenaltyPerInterruptionMinutes, now)
					score := formatter.Dim("-")
					if m.SessionCount > 0 {
						score = formatter.RenderScore(m, 10)
					}
					rows = append(rows, []string{
						day.Format("Mon Jan 02"),
						fmt.Sprintf("%d", m.SessionCount),
						formatter.HumanDuration(time.Duration(m.FocusedMinutes) * time.Minute),
						fmt.Sprintf("%d", m.InterruptionCount),
						score,
					})
				}
				b.WriteString(formatter.RenderTable(
					[]string{"DAY", "SESSIONS", "FOCUSED", "BREAKS", "SCORE"}, rows))

				avg := metrics.WeeklyAverage(sessions, settings.PenaltyPerInterruptionMinutes, now)
				b.WriteString(fmt.Sprintf("\n%s %3.0f%% %s\n",
					formatter.Dim("Weekly average:"), avg*100,
					formatter.Dim("(days without sessions excluded)")))

				fmt.Print(formatter.RenderBox("Last 7 days", b.String()))
				return nil
			}

			from := startOfDay(date)
			sessions, err := app.Sessions.ListByDateRange(ctx, from, from.AddDate(0, 0, 1))
			if err != nil {
				return err
			}
			m := metrics.Calculate(sessions, settings.PenaltyPerInterruptionMinutes, now)
			fmt.Print(formatter.RenderBox(formatter.RelativeDate(date, now), renderMetricsBody(m)))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Day to report on (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&week, "week", false, "Show a per-day breakdown of the last 7 days")
	return cmd
}
