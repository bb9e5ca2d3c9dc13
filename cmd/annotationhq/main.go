package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/annotationhq/internal/cli"
	"github.com/alexanderramin/annotationhq/internal/config"
	"github.com/alexanderramin/annotationhq/internal/db"
	"github.com/alexanderramin/annotationhq/internal/metrics"
	"github.com/alexanderramin/annotationhq/internal/repository"
	"github.com/alexanderramin/annotationhq/internal/service"
	"github.com/alexanderramin/annotationhq/internal/slack"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Use-case and delivery records are Info; they only show with log_calls
	// or --verbose.
	logLevel := new(slog.LevelVar)
	logLevel.Set(slog.LevelWarn)
	if cfg.LogCalls {
		logLevel.Set(slog.LevelInfo)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	workLogRepo := repository.NewSQLiteWorkLogRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)
	observer := service.NewSlogUseCaseObserver(logger)
	m := metrics.New()
	notifier := slack.NewWebhookNotifier(cfg.SlackSettings(), slack.MultiObserver{slack.NewSlogObserver(logger), m})

	app := &cli.App{
		WorkLogs: service.NewWorkLogService(uow, observer, m),
		Reports:  service.NewReportService(workLogRepo, observer, m),
		Notifier: notifier,
		Config:   cfg,
		Metrics:  m,
		Logger:   logger,
		LogLevel: logLevel,
	}

	// Detect interactive terminal for the submission form.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
