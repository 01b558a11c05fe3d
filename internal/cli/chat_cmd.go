package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/faqbot/internal/cli/formatter"
	"github.com/alexanderramin/faqbot/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newChatCmd(app *App) *cobra.Command {
	var tui bool

	cmd := &cobra.Command{
		Use:         "chat",
		Short:       "Start a conversation (the default command)",
		Annotations: needsConversation,
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChat(cmd, app, tui)
		},
	}
	cmd.Flags().BoolVar(&tui, "tui", false, "Use the full-screen chat interface")
	return cmd
}

func runChat(cmd *cobra.Command, app *App, tui bool) error {
	if tui {
		m := newChatModel(cmd.Context(), app.Conversation)
		_, err := tea.NewProgram(m, tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout())).Run()
		return err
	}

	s := &chatSession{
		conv: app.Conversation,
		in:   bufio.NewScanner(cmd.InOrStdin()),
		out:  cmd.OutOrStdout(),
	}
	if app.interactive() {
		s.vote = confirmVote
	} else {
		s.vote = s.lineVote
	}
	return s.run(cmd.Context())
}

// voteFunc asks whether the last answer helped. ok is false when the user
// gave no usable vote.
type voteFunc func() (helpful, ok bool, err error)

// errInputClosed ends the session when stdin runs out mid-prompt.
var errInputClosed = errors.New("input closed")

// chatSession is the line-oriented REPL.
type chatSession struct {
	conv service.ConversationService
	in   *bufio.Scanner
	out  io.Writer
	vote voteFunc
}

func (s *chatSession) run(ctx context.Context) error {
	fmt.Fprint(s.out, formatter.FormatBanner(s.conv.Greeting()))

	for {
		question, err := s.readLine(formatter.UserPrefix)
		if errors.Is(err, errInputClosed) {
			fmt.Fprint(s.out, "\n"+formatter.BotPrefix+s.conv.Farewell()+"\n")
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(question) == "" {
			continue
		}

		reply := s.conv.Ask(ctx, question)
		fmt.Fprint(s.out, formatter.FormatReply(reply))
		if reply.Ends() {
			return nil
		}
		if !reply.WantsFeedback() {
			continue
		}

		helpful, ok, err := s.vote()
		if errors.Is(err, errInputClosed) {
			fmt.Fprint(s.out, "\n"+formatter.BotPrefix+s.conv.Farewell()+"\n")
			return nil
		}
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(s.out, formatter.BotPrefix+formatter.FeedbackThanks)
			continue
		}
		err = s.conv.RecordFeedback(ctx, question, reply.Text, helpful)
		if err != nil && !errors.Is(err, service.ErrInvalidFeedback) {
			return fmt.Errorf("recording feedback: %w", err)
		}
	}
}

func (s *chatSession) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", errInputClosed
	}
	return s.in.Text(), nil
}

func (s *chatSession) lineVote() (bool, bool, error) {
	input, err := s.readLine(formatter.BotPrefix + formatter.FeedbackPrompt)
	if err != nil {
		return false, false, err
	}
	helpful, ok := service.ParseVote(input)
	return helpful, ok, nil
}

// confirmVote uses a huh confirm on a terminal. Escape skips the vote.
func confirmVote() (bool, bool, error) {
	var helpful bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Was this helpful?").
				Affirmative("Yes").
				Negative("No").
				Value(&helpful),
		),
	).WithTheme(faqbotHuhTheme()).WithShowHelp(false).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}
	return helpful, true, nil
}
