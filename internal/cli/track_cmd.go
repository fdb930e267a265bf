package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"focustrack/internal/cli/formatter"
	"focustrack/internal/tracker"
)

func newStartCmd(app *App) *cobra.Command {
	var taskID string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a work session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if taskID != "" {
				if _, err := app.Tasks.GetByID(ctx, taskID); err != nil {
					return fmt.Errorf("resolving task %s: %w", taskID, err)
				}
			}

			s, err := app.Tracker.StartSession(ctx, taskID)
			if errors.Is(err, tracker.ErrInvalidTransition) {
				fmt.Println("A session is already running. Use `focustrack stop` to end it.")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Printf("Started session %s at %s\n", formatter.TruncID(s.ID), s.StartTime.Local().Format("15:04"))
			return nil
		},
	}

	cmd.Flags().StringVar(&taskID, "task", "", "Task ID to log this session against")
	return cmd
}

func newStopCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "End the current work session",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Tracker.EndSession(context.Background())
			if errors.Is(err, tracker.ErrNoActiveEntity) {
				fmt.Println("No session is running.")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Printf("Ended session after %s (%d interruptions)\n",
				formatter.HumanDuration(s.Duration(app.now())), len(s.Interruptions))
			return nil
		},
	}
}

func newInterruptCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interrupt [reason...]",
		Short: "Record the start of an interruption",
		RunE: func(cmd *cobra.Command, args []string) error {
			reason := strings.Join(args, " ")
			i, err := app.Tracker.StartInterruption(context.Background(), reason)
			if errors.Is(err, tracker.ErrInvalidTransition) {
				switch app.Tracker.State() {
				case tracker.StateIdle:
					fmt.Println("No session is running; nothing to interrupt.")
				default:
					fmt.Println("Already interrupted. Use `focustrack resume` first.")
				}
				return nil
			}
			if err != nil {
				return err
			}
			if i.Reason != "" {
				fmt.Printf("Interrupted: %s\n", i.Reason)
			} else {
				fmt.Println("Interrupted.")
			}
			return nil
		},
	}
	return cmd
}

func newResumeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "resume",
		Short: "End the current interruption and get back to work",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := app.Tracker.EndInterruption(context.Background())
			if errors.Is(err, tracker.ErrNoActiveEntity) {
				fmt.Println("No interruption is active.")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Println("Back to work.")
			return nil
		},
	}
}

func newToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Start a session if idle, otherwise open the end flow",
		Long: "Toggle is the hotkey entry point: one signal either starts a session " +
			"or, when one is running, ends it. On a terminal it opens a small menu " +
			"offering to end the session, record an interruption, or do nothing.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if app.Tracker.State() != tracker.StateIdle && app.interactive() {
				return runEndFlow(ctx, app)
			}

			started, err := app.Tracker.Toggle(ctx)
			if err != nil {
				return err
			}
			if started {
				fmt.Println("Started session.")
			} else {
				fmt.Println("Ended session.")
			}
			return nil
		},
	}
}
