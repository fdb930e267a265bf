package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"focustrack/internal/cli/formatter"
	"focustrack/internal/tracker"
)

// focustrackHuhTheme returns a huh theme matching the Gruvbox palette.
func focustrackHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// runEndFlow asks what to do with the running session: end it, record or
// finish an interruption, or leave it alone.
func runEndFlow(ctx context.Context, app *App) error {
	state := app.Tracker.State()

	options := []huh.Option[string]{
		huh.NewOption("End the session", "end"),
	}
	if state == tracker.StateTracking {
		options = append(options, huh.NewOption("Record an interruption", "interrupt"))
	}
	if state == tracker.StateInterrupted {
		options = append(options, huh.NewOption("End the interruption", "resume"))
	}
	options = append(options, huh.NewOption("Keep going", "cancel"))

	var choice string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Session is running").
				Options(options...).
				Value(&choice),
		),
	).WithTheme(focustrackHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	switch choice {
	case "end":
		s, err := app.Tracker.EndSession(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Ended session after %s\n", formatter.HumanDuration(s.Duration(app.now())))
	case "interrupt":
		reason, err := promptReason()
		if err != nil {
			return err
		}
		if _, err := app.Tracker.StartInterruption(ctx, reason); err != nil {
			return err
		}
		fmt.Println("Interrupted.")
	case "resume":
		if err := app.Tracker.EndInterruption(ctx); err != nil {
			return err
		}
		fmt.Println("Back to work.")
	}
	return nil
}

// promptReason collects an optional free-text interruption reason.
func promptReason() (string, error) {
	var reason string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What interrupted you? (optional)").
				Placeholder("meeting, phone call, ...").
				Value(&reason),
		),
	).WithTheme(focustrackHuhTheme()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return "", err
	}
	return reason, nil
}
