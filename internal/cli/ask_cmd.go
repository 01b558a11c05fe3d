package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alexanderramin/faqbot/internal/cli/formatter"
	"github.com/spf13/cobra"
)

type askOutput struct {
	Kind    string   `json:"kind"`
	Text    string   `json:"text"`
	Options []string `json:"options,omitempty"`
}

func newAskCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:         "ask <question>",
		Short:       "Answer a single question and exit",
		Example:     `  faqbot ask "what time do you open?"`,
		Annotations: needsConversation,
		Args:        cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reply := app.Conversation.Ask(cmd.Context(), strings.Join(args, " "))

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(askOutput{Kind: string(reply.Kind), Text: reply.Text, Options: reply.Options})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAskReply(reply))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the reply as JSON")
	return cmd
}
