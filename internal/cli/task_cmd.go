package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"focustrack/internal/cli/formatter"
	"focustrack/internal/domain"
	"focustrack/internal/repository"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage the tasks sessions are logged against",
	}
	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskDoneCmd(app),
		newTaskRmCmd(app),
	)
	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var importance int
	var planned bool

	cmd := &cobra.Command{
		Use:   "add TITLE...",
		Short: "Create a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			task := &domain.Task{
				ID:        uuid.New().String(),
				Title:     strings.Join(args, " "),
				Planned:   planned,
				CreatedAt: app.now(),
			}
			if cmd.Flags().Changed("importance") {
				if importance < 1 || importance > 5 {
					return fmt.Errorf("importance must be between 1 and 5, got %d", importance)
				}
				task.Importance = &importance
			}
			if planned {
				plan, err := todayPlan(ctx, app)
				if err != nil {
					return err
				}
				task.DayPlanID = plan.ID
			}

			if err := app.Tasks.Create(ctx, task); err != nil {
				return err
			}
			fmt.Printf("Added task %s: %s\n", formatter.TruncID(task.ID), task.Title)
			return nil
		},
	}

	cmd.Flags().IntVar(&importance, "importance", 0, "Importance rating, 1 (low) to 5 (high)")
	cmd.Flags().BoolVar(&planned, "planned", false, "Put the task on today's day plan")
	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List open tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tasks, err := app.Tasks.List(ctx, all)
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Println("No tasks. Add one with `focustrack task add`.")
				return nil
			}

			now := app.now()
			rows := make([][]string, 0, len(tasks))
			for _, t := range tasks {
				state := formatter.StyleYellow.Render("open")
				if t.Completed {
					state = formatter.StyleGreen.Render("done")
				}
				importance := formatter.Dim("-")
				if t.Importance != nil {
					importance = strings.Repeat("★", *t.Importance)
				}
				focused, breaks := taskEffort(ctx, app, t.ID, now)
				rows = append(rows, []string{
					formatter.Bold(formatter.TruncID(t.ID)),
					t.Title,
					importance,
					focused,
					breaks,
					state,
				})
			}
			fmt.Print(formatter.RenderBox("Tasks",
				formatter.RenderTable([]string{"ID", "TITLE", "IMPORTANCE", "FOCUSED", "BREAKS", "STATE"}, rows)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include completed tasks")
	return cmd
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done TASK_ID",
		Short: "Mark a task as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			task, err := resolveTask(ctx, app, args[0])
			if errors.Is(err, repository.ErrNotFound) {
				fmt.Printf("No task matches %q.\n", args[0])
				return nil
			}
			if err != nil {
				return err
			}
			if task.Completed {
				fmt.Printf("Task %s is already done.\n", formatter.TruncID(task.ID))
				return nil
			}

			now := app.now()
			task.Completed = true
			task.CompletedAt = &now
			if err := app.Tasks.Update(ctx, task); err != nil {
				return err
			}
			fmt.Printf("Done: %s\n", task.Title)
			return nil
		},
	}
}

func newTaskRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm TASK_ID",
		Short: "Delete a task and the sessions logged against it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			task, err := resolveTask(ctx, app, args[0])
			if errors.Is(err, repository.ErrNotFound) {
				fmt.Printf("No task matches %q.\n", args[0])
				return nil
			}
			if err != nil {
				return err
			}

			if err := app.Tasks.Delete(ctx, task.ID); err != nil {
				return err
			}
			fmt.Printf("Deleted task %s: %s\n", formatter.TruncID(task.ID), task.Title)
			return nil
		},
	}
}

// taskEffort renders the focused time and interruption count logged against
// a task, or dashes when nothing was logged yet.
func taskEffort(ctx context.Context, app *App, taskID string, now time.Time) (string, string) {
	sessions, err := app.Sessions.ListByTask(ctx, taskID)
	if err != nil || len(sessions) == 0 {
		return formatter.Dim("-"), formatter.Dim("-")
	}
	var focused time.Duration
	var breaks int
	for _, s := range sessions {
		focused += s.Duration(now)
		breaks += len(s.Interruptions)
	}
	return formatter.HumanDuration(focused), fmt.Sprintf("%d", breaks)
}

// resolveTask looks a task up by full or truncated ID.
func resolveTask(ctx context.Context, app *App, id string) (*domain.Task, error) {
	t, err := app.Tasks.GetByID(ctx, id)
	if err == nil {
		return t, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	all, err := app.Tasks.List(ctx, true)
	if err != nil {
		return nil, err
	}
	var match *domain.Task
	for _, candidate := range all {
		if strings.HasPrefix(candidate.ID, id) {
			if match != nil {
				return nil, fmt.Errorf("task ID %q is ambiguous", id)
			}
			match = candidate
		}
	}
	if match == nil {
		return nil, fmt.Errorf("task %q: %w", id, repository.ErrNotFound)
	}
	return match, nil
}

// todayPlan returns today's day plan, creating it when absent.
func todayPlan(ctx context.Context, app *App) (*domain.DayPlan, error) {
	now := app.now()
	plan, err := app.Plans.GetByDate(ctx, now)
	if err == nil {
		return plan, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	plan = &domain.DayPlan{
		ID:        uuid.New().String(),
		Date:      startOfDay(now),
		CreatedAt: now,
	}
	if err := app.Plans.Create(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}
