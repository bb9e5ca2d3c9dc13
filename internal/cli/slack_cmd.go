package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/annotationhq/internal/cli/formatter"
	"github.com/alexanderramin/annotationhq/internal/slack"
	"github.com/spf13/cobra"
)

func newSlackCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slack",
		Short: "Preview and post the daily report to Slack",
	}

	cmd.AddCommand(
		newSlackPreviewCmd(app),
		newSlackSendCmd(app),
		newSlackConfigCmd(app),
	)

	return cmd
}

// slackFlags are the report filters plus the free-text allocation section.
type slackFlags struct {
	reportFlags
	taskAllocation string
}

func (f *slackFlags) bind(cmd *cobra.Command) {
	f.reportFlags.bind(cmd.Flags())
	cmd.Flags().StringVar(&f.taskAllocation, "task-allocation", "", "Tomorrow's task allocation, one line per assignment")
}

func renderSlackMessage(cmd *cobra.Command, app *App, f *slackFlags) (string, error) {
	report, err := app.Reports.DailyReport(cmd.Context(), f.request())
	if err != nil {
		return "", err
	}
	return slack.RenderMessage(slack.InputFromReport(report, f.taskAllocation)), nil
}

func newSlackPreviewCmd(app *App) *cobra.Command {
	var flags slackFlags

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the message that send would post",
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := renderSlackMessage(cmd, app, &flags)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}

	flags.bind(cmd)
	return cmd
}

func newSlackSendCmd(app *App) *cobra.Command {
	var flags slackFlags
	var webhookURL string

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Post the daily report to the configured webhook",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Notifier == nil {
				return errors.New("slack notifier is not configured")
			}
			msg, err := renderSlackMessage(cmd, app, &flags)
			if err != nil {
				return err
			}

			stop := func() {}
			if app.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Sending to Slack")
			}
			res := app.Notifier.Send(cmd.Context(), msg, webhookURL)
			stop()

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDelivery(res))
			if !res.Success {
				return fmt.Errorf("slack delivery failed: %s", res.Reason)
			}
			return nil
		},
	}

	flags.bind(cmd)
	cmd.Flags().StringVar(&webhookURL, "webhook-url", "", "Post to this webhook instead of the configured one")
	return cmd
}

func newSlackConfigCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Report whether a webhook is configured",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if app.Notifier != nil && app.Notifier.Configured() {
				fmt.Fprintln(out, formatter.StyleGreen.Render("✔ Slack webhook configured"))
				return nil
			}
			fmt.Fprintln(out, formatter.StyleYellow.Render("Slack webhook not configured."))
			fmt.Fprintln(out, formatter.Dim("Set SLACK_WEBHOOK_URL or slack.webhook_url in the config file."))
			return nil
		},
	}
}
