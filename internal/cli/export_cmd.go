package cli

import (
	"fmt"

	"github.com/alexanderramin/annotationhq/internal/export"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var flags reportFlags
	var outPath string

	cmd := &cobra.Command{
		Use:       "export <csv|xlsx|json>",
		Short:     "Export the filtered log to a file",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"csv", "xlsx", "excel", "json"},
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := export.ParseFormat(args[0])
			if err != nil {
				return err
			}

			req := flags.request()
			entries, err := app.Reports.FullLog(cmd.Context(), req)
			if err != nil {
				return err
			}

			if outPath == "-" {
				return export.Write(cmd.OutOrStdout(), format, entries, req.Date)
			}
			if outPath == "" {
				outPath = export.Filename(req.Date, string(format))
			}
			if err := export.ToFile(outPath, format, entries, req.Date); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d entries to %s\n", len(entries), outPath)
			return nil
		},
	}

	flags.bind(cmd.Flags())
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output path, or - for stdout (default annotation_report_<date>.<ext>)")

	return cmd
}
