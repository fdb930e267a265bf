package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"focustrack/internal/cli/formatter"
	"focustrack/internal/tracker"
)

func newWatchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Live dashboard that redraws as the session progresses",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				fmt.Println("watch needs a terminal; use `focustrack status` instead.")
				return nil
			}

			events := app.Tracker.Subscribe(8)
			model := newWatchModel(app, events)
			_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}
}

type tickMsg time.Time

type trackerEventMsg tracker.Event

type eventsClosedMsg struct{}

type watchModel struct {
	app     *App
	events  <-chan tracker.Event
	spinner spinner.Model
}

func newWatchModel(app *App, events <-chan tracker.Event) watchModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	return watchModel{app: app, events: events, spinner: sp}
}

func (m watchModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tick(), m.waitForEvent())
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// waitForEvent forwards tracker transitions so the view updates the moment
// another process (or a hotkey) changes state, not just on the next tick.
func (m watchModel) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		e, ok := <-m.events
		if !ok {
			return eventsClosedMsg{}
		}
		return trackerEventMsg(e)
	}
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	case tickMsg:
		return m, tick()
	case trackerEventMsg:
		return m, m.waitForEvent()
	case eventsClosedMsg:
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m watchModel) View() string {
	header := fmt.Sprintf("%s %s", m.spinner.View(),
		formatter.Header("focustrack · "+stateLabel(m.app.Tracker.State())))
	body := renderStatus(context.Background(), m.app)
	footer := formatter.Dim("q to quit")
	return fmt.Sprintf("%s\n\n%s\n\n%s\n", header, body, footer)
}
