package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/faqbot/internal/cli/formatter"
	"github.com/alexanderramin/faqbot/internal/service"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// chatModel is the bubbletea Model behind "chat --tui": a scrolling
// transcript above a single input line.
type chatModel struct {
	ctx  context.Context
	conv service.ConversationService

	input      textinput.Model
	transcript viewport.Model
	lines      []string
	width      int

	// pending is the answer awaiting a y/n vote.
	pending  *service.Reply
	quitting bool
}

func newChatModel(ctx context.Context, conv service.ConversationService) chatModel {
	if ctx == nil {
		ctx = context.Background()
	}
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 500
	ti.Focus()

	m := chatModel{
		ctx:        ctx,
		conv:       conv,
		input:      ti,
		transcript: viewport.New(0, 0),
	}
	for _, l := range conv.Greeting() {
		m.lines = append(m.lines, formatter.StyleHeader.Render(l))
	}
	return m
}

func (m chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.transcript.Width = msg.Width
		m.transcript.Height = max(msg.Height-2, 1)
		m.input.Width = msg.Width - lipgloss.Width(m.prompt()) - 1
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m.quit(), tea.Quit
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.transcript, cmd = m.transcript.Update(msg)
			return m, cmd
		case tea.KeyEnter:
			value := m.input.Value()
			m.input.Reset()
			if m.pending != nil {
				return m.handleVote(value), nil
			}
			return m.handleQuestion(value)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) handleQuestion(question string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(question) == "" {
		return m, nil
	}
	m.say(formatter.StyleBlue.Render(formatter.UserPrefix) + question)

	reply := m.conv.Ask(m.ctx, question)
	m.say(formatter.KindStyle(reply.Kind).Render(formatter.BotPrefix) + reply.Text)

	if reply.Ends() {
		m.quitting = true
		m.refresh()
		return m, tea.Quit
	}
	if reply.WantsFeedback() {
		m.pending = &reply
	}
	m.refresh()
	return m, nil
}

func (m chatModel) handleVote(input string) chatModel {
	reply := m.pending
	m.pending = nil

	helpful, ok := service.ParseVote(input)
	if !ok {
		m.say(formatter.BotPrefix + formatter.FeedbackThanks)
		m.refresh()
		return m
	}
	// Sink failures are logged by the service; the chat carries on.
	_ = m.conv.RecordFeedback(m.ctx, reply.Question, reply.Text, helpful)
	verdict := "helpful"
	if !helpful {
		verdict = "not helpful"
	}
	m.say(formatter.Dim("(recorded: " + verdict + ")"))
	m.refresh()
	return m
}

func (m chatModel) quit() chatModel {
	m.quitting = true
	m.say(formatter.BotPrefix + m.conv.Farewell())
	m.refresh()
	return m
}

func (m *chatModel) say(line string) {
	m.lines = append(m.lines, line)
}

// refresh re-wraps the transcript to the current width and scrolls to the
// newest line.
func (m *chatModel) refresh() {
	content := strings.Join(m.lines, "\n")
	if m.width > 0 {
		content = lipgloss.NewStyle().Width(m.width).Render(content)
	}
	m.transcript.SetContent(content)
	m.transcript.GotoBottom()
}

func (m chatModel) prompt() string {
	if m.pending != nil {
		return formatter.StyleYellow.Render(formatter.FeedbackPrompt)
	}
	return formatter.StyleBlue.Render(formatter.UserPrefix)
}

func (m chatModel) View() string {
	if m.quitting {
		return strings.Join(m.lines, "\n") + "\n"
	}
	return m.transcript.View() + "\n" + m.prompt() + m.input.View()
}
