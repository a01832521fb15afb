package components

import (
	"fmt"

	"github.com/theirongolddev/greenscore/internal/cli"
	"github.com/theirongolddev/greenscore/internal/footprint"
	"github.com/theirongolddev/greenscore/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// TierPosition reports how far totalKg sits through its tier's band, in
// [0, 1]. The open top tier always reports 1.
func TierPosition(tiers []footprint.Tier, totalKg float64) float64 {
	for i, tier := range tiers {
		if totalKg >= tier.UpperBoundKg {
			continue
		}
		if tier.Open() {
			return 1
		}
		lo, hi := footprint.Range(tiers, i)
		if hi <= lo {
			return 1
		}
		pct := (totalKg - lo) / (hi - lo)
		if pct < 0 {
			pct = 0
		}
		return pct
	}
	return 1
}

// TierGauge renders a labeled bar showing progress through the current tier
// toward the next grade boundary.
func TierGauge(tiers []footprint.Tier, totalKg float64, labelW, barWidth int) string {
	t := theme.Active
	tier := footprint.Classify(tiers, totalKg)
	pct := TierPosition(tiers, totalKg)
	color := t.Grade(tier.Grade, tier.Color)

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	gradeStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	limitStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	limit := "no upper bound"
	if !tier.Open() {
		limit = fmt.Sprintf("next grade at %s kg", cli.FormatWhole(tier.UpperBoundKg))
	}

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, "Grade "+string(tier.Grade))) +
		spaceStyle.Render(" ") +
		bar.ViewAs(pct) +
		spaceStyle.Render(" ") +
		gradeStyle.Render(fmt.Sprintf("%3.0f%%", pct*100)) +
		spaceStyle.Render("  ") +
		limitStyle.Render(limit)
}
