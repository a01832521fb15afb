package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/theirongolddev/greenscore/internal/model"
	"github.com/theirongolddev/greenscore/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Output palette, taken from the default dashboard theme.
var (
	ColorBorder    = theme.FlexokiDark.SurfaceHover
	ColorTextDim   = theme.FlexokiDark.TextDim
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = theme.FlexokiDark.TextPrimary
	ColorAccent    = theme.FlexokiDark.Accent
	ColorOrange    = theme.FlexokiDark.Orange
	ColorBlue      = theme.FlexokiDark.SeriesText
	ColorPurple    = theme.FlexokiDark.SeriesTraining
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	warnStyle = lipgloss.NewStyle().
			Foreground(ColorOrange)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	width := 55
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table with headers and rows.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	// Calculate column widths
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
	} else {
		for i, h := range t.Headers {
			if len(h) > widths[i] {
				widths[i] = len(h)
			}
		}
		for _, row := range t.Rows {
			for i, cell := range row {
				if i < numCols && len(cell) > widths[i] {
					widths[i] = len(cell)
				}
			}
		}
	}

	var b strings.Builder

	// Title above table if present
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	// Top border
	b.WriteString(dimStyle.Render("╭"))
	for i, w := range widths {
		b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
		if i < numCols-1 {
			b.WriteString(dimStyle.Render("┬"))
		}
	}
	b.WriteString(dimStyle.Render("╮"))
	b.WriteString("\n")

	// Header row
	if len(t.Headers) > 0 {
		b.WriteString(dimStyle.Render("│"))
		for i, h := range t.Headers {
			w := widths[i]
			padded := fmt.Sprintf(" %-*s ", w, h)
			b.WriteString(headerStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")

		// Header separator
		b.WriteString(dimStyle.Render("├"))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("┼"))
			}
		}
		b.WriteString(dimStyle.Render("┤"))
		b.WriteString("\n")
	}

	// Data rows
	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			// Separator row
			b.WriteString(dimStyle.Render("├"))
			for i, w := range widths {
				b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
				if i < numCols-1 {
					b.WriteString(dimStyle.Render("┼"))
				}
			}
			b.WriteString(dimStyle.Render("┤"))
			b.WriteString("\n")
			continue
		}

		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			w := widths[i]
			cell := ""
			if i < len(row) {
				cell = row[i]
			}

			// Right-align numeric columns (all except first)
			var padded string
			if i == 0 {
				padded = fmt.Sprintf(" %-*s ", w, cell)
			} else {
				padded = fmt.Sprintf(" %*s ", w, cell)
			}
			b.WriteString(valueStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
	}

	// Bottom border
	b.WriteString(dimStyle.Render("╰"))
	for i, w := range widths {
		b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
		if i < numCols-1 {
			b.WriteString(dimStyle.Render("┴"))
		}
	}
	b.WriteString(dimStyle.Render("╯"))
	b.WriteString("\n")

	return b.String()
}

// RenderHorizontalBar renders a horizontal bar chart entry.
func RenderHorizontalBar(label string, value, maxValue float64, maxWidth int, color lipgloss.Color) string {
	if maxValue <= 0 {
		return fmt.Sprintf("  %s", label)
	}
	barLen := int(value / maxValue * float64(maxWidth))
	if barLen < 0 {
		barLen = 0
	}
	if barLen > maxWidth {
		barLen = maxWidth
	}
	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", barLen))
	return fmt.Sprintf("  %s %s", label, bar)
}

// Series names used by every breakdown view.
const (
	SeriesText     = "Text (LLM)"
	SeriesTraining = "Training (Model)"
	SeriesMedia    = "Multimodal (Img/Vid)"
)

// MediaWarning is shown whenever multimodal generation is enabled.
const MediaWarning = "Note: generating images and video consumes far more energy per request than text."

// BreakdownItem is one labeled series of the carbon breakdown.
type BreakdownItem struct {
	Label string
	Kg    float64
	Color lipgloss.Color
}

// BreakdownItems returns the three breakdown series sorted by descending kg.
// Ties keep the text, training, media order.
func BreakdownItems(b model.Breakdown) []BreakdownItem {
	items := []BreakdownItem{
		{Label: SeriesText, Kg: b.TextCO2Kg, Color: ColorBlue},
		{Label: SeriesTraining, Kg: b.TrainingCO2Kg, Color: ColorPurple},
		{Label: SeriesMedia, Kg: b.MediaCO2Kg, Color: ColorOrange},
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Kg > items[j].Kg
	})
	return items
}

// RenderBreakdown renders the carbon breakdown as labeled horizontal bars.
func RenderBreakdown(b model.Breakdown, barWidth int) string {
	items := BreakdownItems(b)
	maxKg := items[0].Kg
	total := b.Sum()
	labelW := len(SeriesMedia)

	var sb strings.Builder
	sb.WriteString("  ")
	sb.WriteString(headerStyle.Render("Carbon Breakdown"))
	sb.WriteString("\n")
	for _, it := range items {
		label := fmt.Sprintf("%-*s", labelW, it.Label)
		sb.WriteString(RenderHorizontalBar(label, it.Kg, maxKg, barWidth, it.Color))
		sb.WriteString(" ")
		share := ""
		if total > 0 {
			share = "  " + FormatPercent(it.Kg/total)
		}
		sb.WriteString(mutedStyle.Render(FormatKg(it.Kg) + share))
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderDecision renders the GO/NO-GO panel in the grade's color.
func RenderDecision(r model.FootprintResult) string {
	color := lipgloss.Color(r.ColorToken)
	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	label := lipgloss.NewStyle().Bold(true).Foreground(color).Render(r.DecisionLabel)
	score := mutedStyle.Render(fmt.Sprintf("Score %s  ·  %s CO2eq", r.Grade, FormatKg(r.TotalCO2Kg)))
	return panel.Render(label + "\n" + score)
}

// RenderMetrics renders the three headline metrics as a table.
func RenderMetrics(r model.FootprintResult) string {
	return RenderTable(Table{
		Title:   "Key Metrics",
		Headers: []string{"Metric", "Value", "Context"},
		Rows: [][]string{
			{"Carbon", FormatWhole(r.TotalCO2Kg) + " kg CO2eq", "Total Project"},
			{"Water", FormatLiters(r.TotalWaterLiters), "Cooling"},
			{"Car Equivalent", FormatKm(r.CarEquivalentKm), "Thermal Engine"},
		},
	})
}

// RenderVolumes renders the raw usage volumes behind an estimate.
func RenderVolumes(v model.Volumes) string {
	return RenderTable(Table{
		Title:   "Volumes",
		Headers: []string{"Counter", "Total"},
		Rows: [][]string{
			{"Days", FormatNumber(v.TotalDays)},
			{"Tokens", FormatTokens(v.TotalTokens)},
			{"Images", FormatNumber(v.TotalImages)},
			{"Video seconds", FormatNumber(v.TotalVideoSeconds)},
		},
	})
}

// RenderWarning renders a muted caution line.
func RenderWarning(msg string) string {
	return "  " + warnStyle.Render(msg)
}

// RenderMuted renders secondary text.
func RenderMuted(msg string) string {
	return mutedStyle.Render(msg)
}
