package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"focustrack/internal/cli/formatter"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "View and edit today's day plan",
	}
	cmd.AddCommand(newPlanShowCmd(app), newPlanNoteCmd(app), newPlanAddTaskCmd(app))
	return cmd
}

func newPlanShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show today's plan and its tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			plan, err := todayPlan(ctx, app)
			if err != nil {
				return err
			}
			tasks, err := app.Tasks.ListByDayPlan(ctx, plan.ID)
			if err != nil {
				return err
			}

			var b strings.Builder
			if plan.Notes != "" {
				b.WriteString(plan.Notes + "\n\n")
			}
			if len(tasks) == 0 {
				b.WriteString(formatter.Dim("No tasks planned. Add one with `focustrack plan add-task`."))
				b.WriteString("\n")
			} else {
				done := 0
				rows := make([][]string, 0, len(tasks))
				for _, t := range tasks {
					mark := formatter.Dim("[ ]")
					if t.Completed {
						mark = formatter.StyleGreen.Render("[x]")
						done++
					}
					rows = append(rows, []string{mark, formatter.Bold(formatter.TruncID(t.ID)), t.Title})
				}
				b.WriteString(formatter.RenderTable([]string{"", "ID", "TITLE"}, rows))
				b.WriteString(fmt.Sprintf("\n%d of %d done", done, len(tasks)))

				// Day summary: time logged against the planned tasks.
				var focused time.Duration
				now := app.now()
				for _, task := range tasks {
					sessions, err := app.Sessions.ListByTask(ctx, task.ID)
					if err != nil {
						continue
					}
					for _, s := range sessions {
						focused += s.Duration(now)
					}
				}
				if focused > 0 {
					b.WriteString(formatter.Dim(", " + formatter.HumanDuration(focused) + " focused"))
				}
				b.WriteString("\n")
			}

			fmt.Print(formatter.RenderBox(plan.Date.Format("Mon Jan 02"), b.String()))
			return nil
		},
	}
}

func newPlanNoteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "note TEXT...",
		Short: "Set the note on today's plan",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			plan, err := todayPlan(ctx, app)
			if err != nil {
				return err
			}
			plan.Notes = strings.Join(args, " ")
			if err := app.Plans.Update(ctx, plan); err != nil {
				return err
			}
			fmt.Println("Note saved.")
			return nil
		},
	}
}

func newPlanAddTaskCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add-task TASK_ID",
		Short: "Put an existing task on today's plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			task, err := resolveTask(ctx, app, args[0])
			if err != nil {
				return err
			}
			plan, err := todayPlan(ctx, app)
			if err != nil {
				return err
			}

			task.Planned = true
			task.DayPlanID = plan.ID
			if err := app.Tasks.Update(ctx, task); err != nil {
				return err
			}
			fmt.Printf("Planned: %s\n", task.Title)
			return nil
		},
	}
}
