package components

import (
	"strings"

	"github.com/theirongolddev/greenscore/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left and
// the latest status message on the right. isErr colors the message red.
func RenderStatusBar(width int, hints, message string, isErr bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	msgStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	if isErr {
		msgStyle = msgStyle.Foreground(t.Red)
	}

	left := " " + hints
	right := ""
	if message != "" {
		right = msgStyle.Render(message + " ")
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return style.Render(left + strings.Repeat(" ", padding) + right)
}
