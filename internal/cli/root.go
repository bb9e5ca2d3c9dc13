package cli

import (
	"log/slog"

	"github.com/alexanderramin/annotationhq/internal/config"
	"github.com/alexanderramin/annotationhq/internal/metrics"
	"github.com/alexanderramin/annotationhq/internal/service"
	"github.com/alexanderramin/annotationhq/internal/slack"
	"github.com/spf13/cobra"
)

// App holds references to all services used by CLI commands.
type App struct {
	WorkLogs service.WorkLogService
	Reports  service.ReportService
	Notifier slack.Notifier
	Config   *config.Config
	Metrics  *metrics.Metrics

	// Logger is shared with the HTTP server. LogLevel, when set, is raised to
	// Info by --verbose.
	Logger   *slog.Logger
	LogLevel *slog.LevelVar

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) taskTypes() []string {
	if a.Config == nil {
		return config.DefaultTaskTypes
	}
	return a.Config.TaskTypes
}

func (a *App) statuses() []string {
	if a.Config == nil {
		return config.DefaultStatuses
	}
	return a.Config.Statuses
}

// NewRootCmd creates the top-level "annotationhq" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "annotationhq",
		Short:         "Daily work log and reporting for annotation teams",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose && app.LogLevel != nil {
				app.LogLevel.Set(slog.LevelInfo)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log use cases and deliveries to stderr")

	root.AddCommand(
		newLogCmd(app),
		newDashboardCmd(app),
		newExportCmd(app),
		newSlackCmd(app),
		newFiltersCmd(app),
		newServeCmd(app),
	)

	return root
}
