package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/faqbot/internal/cli/formatter"
	"github.com/alexanderramin/faqbot/internal/knowledge"
	"github.com/spf13/cobra"
)

func newKBCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kb",
		Short: "Inspect the knowledge base",
	}

	cmd.AddCommand(
		newKBValidateCmd(app),
		newKBExplainCmd(app),
	)
	return cmd
}

func newKBValidateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the knowledge base file and report problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := app.Config.KnowledgeBasePath
			src, err := knowledge.LoadSource(app.fs(), path)
			if err != nil {
				return fmt.Errorf("loading knowledge base: %w", err)
			}

			problems := knowledge.ValidateSource(src)
			keywords := 0
			for _, e := range src {
				keywords += len(e.Keywords)
			}
			fmt.Fprint(cmd.OutOrStdout(),
				formatter.FormatValidation(path, len(src), keywords, problems, knowledge.Warnings(src)))

			if len(problems) > 0 {
				return fmt.Errorf("%s: %d problem(s) found", path, len(problems))
			}
			return nil
		},
	}
}

func newKBExplainCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:         "explain <question>",
		Short:       "Show how a question scores against every entry",
		Annotations: needsConversation,
		Args:        cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ex := app.Conversation.Explain(strings.Join(args, " "))
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatExplanation(ex))
			return nil
		},
	}
}
