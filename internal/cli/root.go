package cli

import (
	"time"

	"github.com/spf13/cobra"

	"focustrack/internal/repository"
	"focustrack/internal/tracker"
)

// App holds the dependencies CLI commands run against.
type App struct {
	Tracker  *tracker.Tracker
	Sessions repository.SessionRepo
	Tasks    repository.TaskRepo
	Plans    repository.DayPlanRepo
	Settings repository.SettingsRepo

	// IsInteractive gates huh forms and the watch TUI to real terminals.
	IsInteractive func() bool
	// Now is the display clock; transitions use the tracker's own clock.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "focustrack" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "focustrack",
		Short: "Track focused work sessions and the interruptions that break them",
	}

	root.AddCommand(
		newStartCmd(app),
		newStopCmd(app),
		newInterruptCmd(app),
		newResumeCmd(app),
		newToggleCmd(app),
		newStatusCmd(app),
		newMetricsCmd(app),
		newTimelineCmd(app),
		newHistoryCmd(app),
		newTaskCmd(app),
		newPlanCmd(app),
		newSettingsCmd(app),
		newWatchCmd(app),
	)

	return root
}
