package cli

import (
	"fmt"

	"github.com/alexanderramin/faqbot/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newLogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Review and import unanswered questions and feedback",
	}

	cmd.AddCommand(
		newLogUnansweredCmd(app),
		newLogFeedbackCmd(app),
		newLogImportCmd(app),
	)
	return cmd
}

func newLogUnansweredCmd(app *App) *cobra.Command {
	var limit int
	var recent bool

	cmd := &cobra.Command{
		Use:         "unanswered",
		Short:       "List questions the bot could not answer, most frequent first",
		Annotations: needsStore,
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if app.Reports == nil {
				return ErrNoStore
			}
			ctx := cmd.Context()

			if recent {
				rows, err := app.Reports.RecentUnanswered(ctx, limit)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecentUnanswered(rows, app.now()))
				return nil
			}

			rows, err := app.Reports.UnansweredSummary(ctx, limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatUnansweredSummary(rows, app.now()))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum rows to show (0 for all)")
	cmd.Flags().BoolVar(&recent, "recent", false, "List individual questions, newest first")
	return cmd
}

func newLogFeedbackCmd(app *App) *cobra.Command {
	var limit int
	var recent bool

	cmd := &cobra.Command{
		Use:         "feedback",
		Short:       "Summarize helpful votes per answer",
		Annotations: needsStore,
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if app.Reports == nil {
				return ErrNoStore
			}
			ctx := cmd.Context()

			if recent {
				rows, err := app.Reports.RecentFeedback(ctx, limit)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRecentFeedback(rows, app.now()))
				return nil
			}

			rows, err := app.Reports.FeedbackSummary(ctx)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatFeedbackSummary(rows))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum votes to show with --recent (0 for all)")
	cmd.Flags().BoolVar(&recent, "recent", false, "List individual votes, newest first")
	return cmd
}

func newLogImportCmd(app *App) *cobra.Command {
	var unansweredPath, feedbackPath string

	cmd := &cobra.Command{
		Use:         "import",
		Short:       "Import the text logs into the curation store in one transaction",
		Annotations: needsStore,
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if app.Import == nil {
				return ErrNoStore
			}
			if unansweredPath == "" {
				unansweredPath = app.Config.UnansweredLogPath
			}
			if feedbackPath == "" {
				feedbackPath = app.Config.FeedbackLogPath
			}

			res, err := app.Import.ImportLogs(cmd.Context(), unansweredPath, feedbackPath)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImportResult(res))
			return nil
		},
	}

	cmd.Flags().StringVar(&unansweredPath, "unanswered", "", "Unanswered log file (default from FAQBOT_UNANSWERED_LOG)")
	cmd.Flags().StringVar(&feedbackPath, "feedback", "", "Feedback log file (default from FAQBOT_FEEDBACK_LOG)")
	return cmd
}
