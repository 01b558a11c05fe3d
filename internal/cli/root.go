// Package cli implements the faqbot command line: the chat loop, one-shot
// questions, knowledge base tooling, curation reports and the HTTP server.
package cli

import (
	"errors"
	"time"

	"github.com/alexanderramin/faqbot/internal/config"
	"github.com/alexanderramin/faqbot/internal/observability"
	"github.com/alexanderramin/faqbot/internal/service"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// ErrNoStore is returned by commands that need the curation store when
// none is configured.
var ErrNoStore = errors.New("no curation store configured: set FAQBOT_DB or pass --db")

// Needs tells Wire which services a command uses.
type Needs struct {
	Conversation bool
	Store        bool
}

const needsAnnotation = "faqbot/needs"

var (
	needsConversation = map[string]string{needsAnnotation: "conversation"}
	needsStore        = map[string]string{needsAnnotation: "store"}
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Config config.Config

	Conversation service.ConversationService
	// Reports and Import are nil without a curation store.
	Reports service.ReportService
	Import  service.ImportService

	Metrics *observability.Metrics
	Logger  *observability.Logger
	Fs      afero.Fs

	// IsInteractive reports whether stdin is a terminal. Nil means no.
	IsInteractive func() bool
	Now           func() time.Time

	// Wire builds the services above from Config once flags are parsed.
	// Tests leave it nil and set the services directly.
	Wire func(app *App, needs Needs) error

	closers []func() error
}

// OnClose registers a cleanup that runs after the command finishes.
func (a *App) OnClose(fn func() error) {
	a.closers = append(a.closers, fn)
}

// Close runs the registered cleanups in reverse order.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) fs() afero.Fs {
	if a.Fs == nil {
		return afero.NewOsFs()
	}
	return a.Fs
}

func (a *App) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "faqbot" command and registers all
// subcommands against the provided App. With no subcommand it chats.
func NewRootCmd(app *App) *cobra.Command {
	var tui bool

	root := &cobra.Command{
		Use:           "faqbot",
		Short:         "Answer common customer questions from a keyword knowledge base",
		Annotations:   needsConversation,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if app.Wire == nil {
				return nil
			}
			return app.Wire(app, needsOf(cmd))
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return app.Close()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChat(cmd, app, tui)
		},
	}

	app.Config.BindFlags(root.PersistentFlags())
	root.Flags().BoolVar(&tui, "tui", false, "Use the full-screen chat interface")

	root.AddCommand(
		newChatCmd(app),
		newAskCmd(app),
		newKBCmd(app),
		newLogCmd(app),
		newServeCmd(app),
	)

	return root
}

func needsOf(cmd *cobra.Command) Needs {
	switch cmd.Annotations[needsAnnotation] {
	case "conversation":
		return Needs{Conversation: true}
	case "store":
		return Needs{Store: true}
	default:
		return Needs{}
	}
}
