package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"focustrack/internal/cli/formatter"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "View and change scoring settings",
	}
	cmd.AddCommand(newSettingsShowCmd(app), newSettingsSetCmd(app))
	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Settings.Get(context.Background())
			if err != nil {
				return err
			}

			var b strings.Builder
			b.WriteString(fmt.Sprintf("%s  %d minutes per interruption\n",
				formatter.Dim("penalty      "), s.PenaltyPerInterruptionMinutes))
			b.WriteString(fmt.Sprintf("%s  %d minutes after each interruption\n",
				formatter.Dim("recovery     "), s.RecoveryMinutes))
			b.WriteString(fmt.Sprintf("%s  %t\n",
				formatter.Dim("notifications"), s.EnableNotifications))
			fmt.Print(formatter.RenderBox("Settings", b.String()))
			return nil
		},
	}
}

func newSettingsSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Change a setting (penalty, recovery, notifications)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			s, err := app.Settings.Get(ctx)
			if err != nil {
				return err
			}

			key, value := args[0], args[1]
			switch key {
			case "penalty":
				n, err := strconv.Atoi(value)
				if err != nil || n < 0 {
					return fmt.Errorf("penalty must be a non-negative number of minutes, got %q", value)
				}
				s.PenaltyPerInterruptionMinutes = n
			case "recovery":
				n, err := strconv.Atoi(value)
				if err != nil || n < 0 {
					return fmt.Errorf("recovery must be a non-negative number of minutes, got %q", value)
				}
				s.RecoveryMinutes = n
			case "notifications":
				on, err := strconv.ParseBool(value)
				if err != nil {
					return fmt.Errorf("notifications must be true or false, got %q", value)
				}
				s.EnableNotifications = on
			default:
				return fmt.Errorf("unknown setting %q (penalty, recovery, notifications)", key)
			}

			s.LastModified = app.now()
			if err := app.Settings.Update(ctx, s); err != nil {
				return err
			}
			fmt.Printf("Set %s to %s\n", key, value)
			return nil
		},
	}
}
