package cli

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/annotationhq/internal/cli/formatter"
	"github.com/alexanderramin/annotationhq/internal/contract"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	var flags reportFlags
	var showLog, asJSON bool

	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"report"},
		Short:   "Show the daily summary, leaderboards and flagged entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Reports.DailyReport(cmd.Context(), flags.request())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(report.View())
			}

			fmt.Fprint(out, formatter.FormatDashboard(report))
			if showLog && len(report.Entries) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, formatter.Header("Full log"))
				fmt.Fprint(out, formatter.FormatLog(report.Entries))
			}
			return nil
		},
	}

	flags.bind(cmd.Flags())
	cmd.Flags().BoolVar(&showLog, "log", false, "Also list every entry")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")

	return cmd
}

func newFiltersCmd(app *App) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "filters",
		Short: "List projects, annotators and dates available for filtering",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := app.Reports.FilterOptions(cmd.Context(), contract.NewReportRequest(date).Date)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatFilterOptions(opts))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Date YYYY-MM-DD (default today)")

	return cmd
}
