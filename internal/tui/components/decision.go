package components

import (
	"fmt"

	"github.com/theirongolddev/greenscore/internal/cli"
	"github.com/theirongolddev/greenscore/internal/model"
	"github.com/theirongolddev/greenscore/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// DecisionPanel renders the GO/NO-GO verdict bordered in the grade's color.
func DecisionPanel(r model.FootprintResult, outerWidth int) string {
	t := theme.Active
	color := t.Grade(r.Grade, r.ColorToken)

	contentWidth := outerWidth - 2
	if contentWidth < 20 {
		contentWidth = 20
	}

	panel := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(color).
		BorderBackground(t.Background).
		Background(t.Surface).
		Width(contentWidth).
		Align(lipgloss.Center)

	gradeStyle := lipgloss.NewStyle().
		Foreground(t.Background).
		Background(color).
		Bold(true).
		Padding(0, 1)

	labelStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	subStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	space := lipgloss.NewStyle().Background(t.Surface).Render("  ")

	line := gradeStyle.Render(string(r.Grade)) + space + labelStyle.Render(r.DecisionLabel)
	sub := subStyle.Render(fmt.Sprintf("%s kg CO2eq over the project lifetime", cli.FormatWhole(r.TotalCO2Kg)))
	return panel.Render(line + "\n" + sub)
}
