package cli

import (
	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/greenscore/internal/model"
)

// RenderBreakdownChart draws the carbon breakdown as a vertical bar chart,
// largest series first.
func RenderBreakdownChart(b model.Breakdown, width, height int) string {
	if width < 30 {
		width = 30
	}
	if height < 6 {
		height = 6
	}

	bc := barchart.New(width, height)
	for _, it := range BreakdownItems(b) {
		bc.Push(barchart.BarData{
			Label: shortSeriesLabel(it.Label),
			Values: []barchart.BarValue{{
				Name:  it.Label,
				Value: it.Kg,
				Style: lipgloss.NewStyle().Foreground(it.Color),
			}},
		})
	}
	bc.Draw()
	return bc.View()
}

// shortSeriesLabel keeps axis labels narrow enough for three bars.
func shortSeriesLabel(label string) string {
	switch label {
	case SeriesText:
		return "Text"
	case SeriesTraining:
		return "Training"
	case SeriesMedia:
		return "Media"
	}
	return label
}
