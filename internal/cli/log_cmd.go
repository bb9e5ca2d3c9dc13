package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/annotationhq/internal/cli/formatter"
	"github.com/alexanderramin/annotationhq/internal/contract"
	"github.com/alexanderramin/annotationhq/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// errRejected is returned after field errors have been printed.
var errRejected = errors.New("submission rejected")

func newLogCmd(app *App) *cobra.Command {
	var s domain.Submission
	var forceForm bool

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a day's annotation work",
		Long: "Log a day's annotation work. Without --annotator and --project on an\n" +
			"interactive terminal, a form is shown instead.",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if s.Date == "" {
				s.Date = contract.Today()
			}

			useForm := forceForm ||
				(app.interactive() && !cmd.Flags().Changed("annotator") && !cmd.Flags().Changed("project"))
			if useForm {
				form := submissionForm(&s, app.taskTypes(), app.statuses()).
					WithProgramOptions(tea.WithOutput(cmd.ErrOrStderr()))
				if err := form.Run(); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						fmt.Fprintln(out, "Cancelled.")
						return nil
					}
					return err
				}
			}

			entry, err := app.WorkLogs.Submit(cmd.Context(), s)
			if err != nil {
				var fe domain.FieldErrors
				if errors.As(err, &fe) {
					fmt.Fprint(out, formatter.FormatFieldErrors(fe))
					return errRejected
				}
				return err
			}

			fmt.Fprint(out, formatter.FormatEntry(entry))
			return nil
		},
	}

	cmd.Flags().StringVar(&s.Date, "date", "", "Work date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&s.AnnotatorName, "annotator", "", "Annotator name")
	cmd.Flags().StringVar(&s.ProjectName, "project", "", "Project name")
	cmd.Flags().StringVar(&s.TaskType, "task-type", "", "Task type")
	cmd.Flags().StringVar(&s.ImagesDone, "images", "", "Images done")
	cmd.Flags().StringVar(&s.HoursSpent, "hours", "", "Hours spent")
	cmd.Flags().StringVar(&s.Status, "status", "", "Status")
	cmd.Flags().StringVar(&s.Challenges, "challenges", "", "Challenges, one per line")
	cmd.Flags().StringVar(&s.Suggestions, "suggestions", "", "Suggestions, one per line")
	cmd.Flags().StringVar(&s.ExtraNotes, "notes", "", "Extra notes")
	cmd.Flags().BoolVar(&forceForm, "form", false, "Always use the interactive form")

	return cmd
}
