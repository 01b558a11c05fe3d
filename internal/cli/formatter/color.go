package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/faqbot/internal/service"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// KindStyle returns the style used for a reply of the given kind.
func KindStyle(kind service.ReplyKind) lipgloss.Style {
	switch kind {
	case service.ReplyAnswer:
		return StyleGreen
	case service.ReplyClarification:
		return StyleYellow
	case service.ReplyFallback:
		return StyleRed
	default:
		return StyleDim
	}
}

// KindBadge renders a short colored marker such as "● ANSWER".
func KindBadge(kind service.ReplyKind) string {
	return KindStyle(kind).Render("● " + strings.ToUpper(string(kind)))
}

// ScoreStyled colors a similarity score against the match threshold.
func ScoreStyled(score, matchThreshold int) string {
	text := fmt.Sprintf("%3d", score)
	switch {
	case score >= matchThreshold:
		return StyleGreen.Render(text)
	case score >= matchThreshold-20:
		return StyleYellow.Render(text)
	default:
		return StyleDim.Render(text)
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
