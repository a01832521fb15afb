package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/greenscore/internal/cli"
	"github.com/theirongolddev/greenscore/internal/compare"
	"github.com/theirongolddev/greenscore/internal/footprint"
	"github.com/theirongolddev/greenscore/internal/model"
	"github.com/theirongolddev/greenscore/internal/tui/components"
	"github.com/theirongolddev/greenscore/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderEstimateTab(cw int) string {
	t := theme.Active
	r := a.result

	var b strings.Builder

	b.WriteString(components.MetricCardRow([]components.Metric{
		{Label: "Carbon", Value: cli.FormatWhole(r.TotalCO2Kg) + " kg CO2eq", Note: "Total Project", Color: t.Green},
		{Label: "Water", Value: cli.FormatLiters(r.TotalWaterLiters), Note: "Cooling", Color: t.Blue},
		{Label: "Car Equivalent", Value: cli.FormatKm(r.CarEquivalentKm), Note: "Thermal Engine", Color: t.Orange},
	}, cw))
	b.WriteString("\n")
	b.WriteString(components.DecisionPanel(r, cw))
	b.WriteString("\n")

	halves := components.LayoutRow(cw, 2)
	paramCard := components.ContentCard("Parameters · "+a.project, a.renderFieldList(components.CardInnerWidth(halves[0])), halves[0])

	inner := components.CardInnerWidth(halves[1])
	gauge := components.TierGauge(a.tiers, r.TotalCO2Kg, 8, inner/3)
	side := gauge + "\n\n" + components.HorizontalBars(breakdownBars(r.Breakdown), inner)
	if a.usage.UseMedia {
		warn := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface).Width(inner)
		side += "\n\n" + warn.Render(cli.MediaWarning)
	}
	b.WriteString(components.CardRow([]string{paramCard, components.ContentCard("Grade", side, halves[1])}))

	return b.String()
}

func (a App) renderFieldList(width int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selLabel := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceHover).Bold(true)
	selValue := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)

	labelW := 24
	valueW := width - labelW - 4
	if valueW < 8 {
		valueW = 8
	}

	fields := visibleFields(a.usage)
	lines := make([]string, len(fields))
	for i, f := range fields {
		label := fmt.Sprintf("%-*s", labelW, f.label())
		value := fmt.Sprintf("%-*s", valueW, fieldValue(a.usage, f))
		if i == a.cursor {
			lines[i] = selLabel.Render("▸ "+label) + selValue.Render("‹ "+value+"›")
		} else {
			lines[i] = labelStyle.Render("  "+label) + valueStyle.Render("  "+value+" ")
		}
	}
	return strings.Join(lines, "\n")
}

// breakdownBars returns the breakdown series, largest first, in theme colors.
func breakdownBars(b model.Breakdown) []components.Bar {
	t := theme.Active
	colors := map[string]lipgloss.Color{
		cli.SeriesText:     t.SeriesText,
		cli.SeriesTraining: t.SeriesTraining,
		cli.SeriesMedia:    t.SeriesMedia,
	}

	items := cli.BreakdownItems(b)
	bars := make([]components.Bar, len(items))
	for i, it := range items {
		bars[i] = components.Bar{Label: it.Label, Value: it.Kg, Color: colors[it.Label]}
	}
	return bars
}

func (a App) renderBreakdownTab(cw int) string {
	r := a.result
	halves := components.LayoutRow(cw, 2)

	chart := components.BarChart(breakdownBars(r.Breakdown), components.CardInnerWidth(halves[0]), 10)
	chartCard := components.ContentCard("Carbon by source (kg CO2eq)", chart, halves[0])

	water := r.TextWaterLiters + r.MediaWaterLiters
	rows := []struct{ label, value string }{
		{cli.SeriesText, cli.FormatKg(r.Breakdown.TextCO2Kg)},
		{cli.SeriesTraining, cli.FormatKg(r.Breakdown.TrainingCO2Kg)},
		{cli.SeriesMedia, cli.FormatKg(r.Breakdown.MediaCO2Kg)},
		{"", ""},
		{"Water: text", cli.FormatLiters(r.TextWaterLiters)},
		{"Water: multimodal", cli.FormatLiters(r.MediaWaterLiters)},
		{"Water: total", cli.FormatLiters(water)},
		{"", ""},
		{"Days", cli.FormatNumber(r.Volumes.TotalDays)},
		{"Tokens", cli.FormatTokens(r.Volumes.TotalTokens)},
		{"Images", cli.FormatNumber(r.Volumes.TotalImages)},
		{"Video seconds", cli.FormatNumber(r.Volumes.TotalVideoSeconds)},
	}
	detail := keyValueLines(rows, components.CardInnerWidth(halves[1]))
	detailCard := components.ContentCard("Details", detail, halves[1])

	return components.CardRow([]string{chartCard, detailCard})
}

func (a App) renderCompareTab(cw int) string {
	t := theme.Active
	rows := compare.Matrix(a.opts.Estimator, a.usage)

	colW := (components.CardInnerWidth(cw) - 22) / len(model.ModelTypes)
	if colW < 18 {
		colW = 18
	}

	headStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	cellStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	var b strings.Builder
	b.WriteString(headStyle.Render(fmt.Sprintf("%-22s", "Region")))
	for _, mt := range model.ModelTypes {
		b.WriteString(headStyle.Render(fmt.Sprintf("%-*s", colW, mt.Label())))
	}
	for _, region := range model.Regions {
		b.WriteString("\n")
		b.WriteString(cellStyle.Render(fmt.Sprintf("%-22s", region.Label())))
		for _, mt := range model.ModelTypes {
			for _, row := range rows {
				if row.Region != region || row.ModelType != mt {
					continue
				}
				grade := lipgloss.NewStyle().
					Foreground(t.Grade(row.Result.Grade, row.Result.ColorToken)).
					Background(t.Surface).
					Bold(row.Baseline).
					Render(string(row.Result.Grade))
				text := " " + cli.FormatKg(row.Result.TotalCO2Kg)
				if row.Baseline {
					text += " *"
				}
				b.WriteString(grade + cellStyle.Render(fmt.Sprintf("%-*s", colW-1, text)))
			}
		}
	}
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface).Render("* current configuration"))

	return components.ContentCard("Same usage across regions and model types", b.String(), cw)
}

func (a App) renderTiersTab(cw int) string {
	t := theme.Active
	current := footprint.Classify(a.tiers, a.result.TotalCO2Kg)

	var b strings.Builder
	for i, tier := range a.tiers {
		lo, hi := footprint.Range(a.tiers, i)
		band := fmt.Sprintf("%s – %s kg", cli.FormatWhole(lo), cli.FormatWhole(hi))
		if tier.Open() {
			band = fmt.Sprintf("≥ %s kg", cli.FormatWhole(lo))
		}

		marker := "  "
		if tier.Grade == current.Grade {
			marker = "▸ "
		}
		style := lipgloss.NewStyle().Foreground(t.Grade(tier.Grade, tier.Color)).Background(t.Surface)
		if tier.Grade == current.Grade {
			style = style.Bold(true)
		}
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%s  %-20s %s", marker, tier.Grade, band, tier.Label)))
	}

	return components.ContentCard("Grade tiers", b.String(), cw)
}

func keyValueLines(rows []struct{ label, value string }, width int) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)

	lines := make([]string, len(rows))
	for i, r := range rows {
		if r.label == "" {
			continue
		}
		gap := width - lipgloss.Width(r.label) - lipgloss.Width(r.value)
		if gap < 1 {
			gap = 1
		}
		lines[i] = labelStyle.Render(r.label+strings.Repeat(" ", gap)) + valueStyle.Render(r.value)
	}
	return strings.Join(lines, "\n")
}
