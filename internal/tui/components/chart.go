package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/greenscore/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Bar is one labeled value in a bar chart.
type Bar struct {
	Label string
	Value float64
	Color lipgloss.Color
}

// HorizontalBars renders one labeled row per bar, scaled to the largest value.
func HorizontalBars(bars []Bar, width int) string {
	if len(bars) == 0 {
		return ""
	}
	t := theme.Active

	labelW := 0
	peak := 0.0
	for _, b := range bars {
		if w := lipgloss.Width(b.Label); w > labelW {
			labelW = w
		}
		if b.Value > peak {
			peak = b.Value
		}
	}

	valueW := 8
	barW := width - labelW - valueW - 3
	if barW < 5 {
		barW = 5
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	trackStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	space := lipgloss.NewStyle().Background(t.Surface).Render(" ")

	lines := make([]string, len(bars))
	for i, b := range bars {
		filled := 0
		if peak > 0 {
			filled = int(math.Round(b.Value / peak * float64(barW)))
		}
		if filled > barW {
			filled = barW
		}
		if filled < 0 {
			filled = 0
		}
		barStyle := lipgloss.NewStyle().Foreground(b.Color).Background(t.Surface)
		lines[i] = labelStyle.Render(fmt.Sprintf("%-*s", labelW, b.Label)) + space +
			barStyle.Render(strings.Repeat("█", filled)) +
			trackStyle.Render(strings.Repeat("░", barW-filled)) + space +
			valueStyle.Render(fmt.Sprintf("%*s", valueW, formatChartLabel(b.Value)))
	}
	return strings.Join(lines, "\n")
}

// BarChart renders vertical bars with a y-axis, one column group per bar.
func BarChart(bars []Bar, width, height int) string {
	if len(bars) == 0 {
		return ""
	}
	if width < 15 || height < 3 {
		return HorizontalBars(bars, width)
	}

	t := theme.Active

	maxVal := 0.0
	for _, b := range bars {
		if b.Value > maxVal {
			maxVal = b.Value
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	// Y-axis: compute tick step and ceiling
	tickStep := chartTickStep(maxVal)
	maxIntervals := height / 2
	if maxIntervals < 2 {
		maxIntervals = 2
	}
	for int(math.Ceil(maxVal/tickStep)) > maxIntervals {
		tickStep *= 2
	}
	ceiling := math.Ceil(maxVal/tickStep) * tickStep
	numIntervals := int(math.Round(ceiling / tickStep))
	if numIntervals < 1 {
		numIntervals = 1
	}

	rowsPerTick := height / numIntervals
	if rowsPerTick < 2 {
		rowsPerTick = 2
	}
	chartH := rowsPerTick * numIntervals

	yLabelW := len(formatChartLabel(ceiling)) + 1
	if yLabelW < 4 {
		yLabelW = 4
	}
	tickLabels := make(map[int]string)
	for i := 1; i <= numIntervals; i++ {
		tickLabels[i*rowsPerTick] = formatChartLabel(tickStep * float64(i))
	}

	chartW := width - yLabelW - 1
	n := len(bars)
	gap := 2
	barW := (chartW - (n-1)*gap) / n
	if barW < 2 {
		barW = 2
	}
	axisLen := n*barW + (n-1)*gap

	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	blank := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for row := chartH; row >= 1; row-- {
		rowTop := ceiling * float64(row) / float64(chartH)
		rowBottom := ceiling * float64(row-1) / float64(chartH)

		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, tickLabels[row])))
		b.WriteString(axisStyle.Render("│"))

		for i, bar := range bars {
			if i > 0 {
				b.WriteString(blank.Render(strings.Repeat(" ", gap)))
			}
			barStyle := lipgloss.NewStyle().Foreground(bar.Color).Background(t.Surface)
			switch {
			case bar.Value >= rowTop:
				b.WriteString(barStyle.Render(strings.Repeat("█", barW)))
			case bar.Value > rowBottom:
				idx := int((bar.Value - rowBottom) / (rowTop - rowBottom) * 8)
				if idx > 8 {
					idx = 8
				}
				if idx < 1 {
					idx = 1
				}
				b.WriteString(barStyle.Render(strings.Repeat(string(blocks[idx]), barW)))
			default:
				b.WriteString(blank.Render(strings.Repeat(" ", barW)))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("└" + strings.Repeat("─", axisLen)))
	b.WriteString("\n")

	// Labels centered under their bars, truncated to the bar width.
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	b.WriteString(blank.Render(strings.Repeat(" ", yLabelW+1)))
	for i, bar := range bars {
		if i > 0 {
			b.WriteString(blank.Render(strings.Repeat(" ", gap)))
		}
		lbl := bar.Label
		if len(lbl) > barW {
			lbl = lbl[:barW]
		}
		left := (barW - len(lbl)) / 2
		b.WriteString(labelStyle.Render(strings.Repeat(" ", left) + lbl + strings.Repeat(" ", barW-len(lbl)-left)))
	}

	return b.String()
}

// chartTickStep computes a nice tick interval targeting ~5 ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	exp := math.Floor(math.Log10(rough))
	base := math.Pow(10, exp)
	frac := rough / base

	switch {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

func formatChartLabel(v float64) string {
	switch {
	case v >= 1e9:
		if v == math.Trunc(v/1e9)*1e9 {
			return fmt.Sprintf("%.0fB", v/1e9)
		}
		return fmt.Sprintf("%.1fB", v/1e9)
	case v >= 1e6:
		if v == math.Trunc(v/1e6)*1e6 {
			return fmt.Sprintf("%.0fM", v/1e6)
		}
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		if v == math.Trunc(v/1e3)*1e3 {
			return fmt.Sprintf("%.0fk", v/1e3)
		}
		return fmt.Sprintf("%.1fk", v/1e3)
	case v >= 1:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
