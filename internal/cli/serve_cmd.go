package cli

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/faqbot/internal/httpapi"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:         "serve",
		Short:       "Serve the conversation over HTTP",
		Annotations: needsConversation,
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr == "" {
				addr = app.Config.HTTPAddr
			}
			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("listening on %s: %w", addr, err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Fprintf(cmd.OutOrStdout(), "Serving on http://%s (Ctrl+C to stop)\n", ln.Addr())
			return httpapi.Serve(ctx, ln, httpapi.NewRouter(app.Conversation, app.Metrics, app.Logger), app.Logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from FAQBOT_HTTP_ADDR)")
	return cmd
}
