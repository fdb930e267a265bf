package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"focustrack/internal/cli"
	"focustrack/internal/config"
	"focustrack/internal/db"
	"focustrack/internal/notify"
	"focustrack/internal/repository"
	"focustrack/internal/tracker"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(config.SettingsFilePath())
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(),
	}))

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	sessionRepo := repository.NewSQLiteSessionRepo(database)
	interruptionRepo := repository.NewSQLiteInterruptionRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	planRepo := repository.NewSQLiteDayPlanRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database, cfg.Settings())
	uow := db.NewSQLiteUnitOfWork(database)

	trk := tracker.New(sessionRepo, interruptionRepo, uow,
		tracker.WithLogger(logger))
	defer trk.Close()

	// A session left running by a previous process is picked up here, so a
	// crash or reboot never silently discards tracked time.
	if err := trk.Restore(context.Background()); err != nil {
		return fmt.Errorf("restoring tracker state: %w", err)
	}

	if cfg.EnableNotifications {
		go notify.Relay(trk.Subscribe(8), notify.LogSink{Logger: logger})
	}

	app := &cli.App{
		Tracker:  trk,
		Sessions: sessionRepo,
		Tasks:    taskRepo,
		Plans:    planRepo,
		Settings: settingsRepo,
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}

// logLevel reads FOCUSTRACK_LOG; warnings and up are shown by default so
// persistence failures surface without drowning normal use in telemetry.
func logLevel() slog.Level {
	switch os.Getenv("FOCUSTRACK_LOG") {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}
