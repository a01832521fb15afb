// Package compare evaluates one usage profile across every region and
// model type and renders the resulting matrix.
package compare

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/theirongolddev/greenscore/internal/cli"
	"github.com/theirongolddev/greenscore/internal/footprint"
	"github.com/theirongolddev/greenscore/internal/model"
)

// Output formats accepted by Render.
const (
	FormatTable    = "table"
	FormatMarkdown = "markdown"
	FormatCSV      = "csv"
)

// Row is one cell of the region x model type matrix.
type Row struct {
	Region    model.Region
	ModelType model.ModelType
	Result    model.FootprintResult
	Baseline  bool // matches the caller's own region and model type
}

// Matrix evaluates base under every region and model type, region-major.
func Matrix(est footprint.Estimator, base model.UsageParameters) []Row {
	rows := make([]Row, 0, len(model.Regions)*len(model.ModelTypes))
	for _, r := range model.Regions {
		for _, mt := range model.ModelTypes {
			p := base
			p.Region = r
			p.ModelType = mt
			rows = append(rows, Row{
				Region:    r,
				ModelType: mt,
				Result:    est.Evaluate(p),
				Baseline:  r == base.Region && mt == base.ModelType,
			})
		}
	}
	return rows
}

// Baseline returns the row flagged as the caller's own configuration.
func Baseline(rows []Row) (Row, bool) {
	for _, r := range rows {
		if r.Baseline {
			return r, true
		}
	}
	return Row{}, false
}

// Render writes rows to w in the requested format.
func Render(w io.Writer, rows []Row, format string) error {
	base, hasBase := Baseline(rows)
	colored := format == FormatTable

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"Region", "Model", "CO2 (kg)", "Water (L)", "Car (km)", "Grade", "Decision", "vs Current"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 8, Align: text.AlignRight},
	})

	for _, r := range rows {
		delta := "-"
		if hasBase && !r.Baseline {
			delta = cli.FormatDeltaKg(r.Result.TotalCO2Kg, base.Result.TotalCO2Kg)
		}
		region := r.Region.Label()
		if r.Baseline {
			region += " *"
		}
		grade := string(r.Result.Grade)
		if colored {
			grade = gradeColor(r.Result.Grade).Sprint(grade)
		}
		tw.AppendRow(table.Row{
			region,
			r.ModelType.Label(),
			cli.FormatWhole(r.Result.TotalCO2Kg),
			cli.FormatWhole(r.Result.TotalWaterLiters),
			cli.FormatWhole(r.Result.CarEquivalentKm),
			grade,
			r.Result.DecisionLabel,
			delta,
		})
	}

	switch format {
	case FormatTable, "":
		tw.SetTitle("Footprint by Region and Model")
		tw.SetStyle(table.StyleRounded)
		tw.Render()
	case FormatMarkdown:
		tw.RenderMarkdown()
	case FormatCSV:
		tw.RenderCSV()
	default:
		return fmt.Errorf("unknown compare format %q (want table, markdown, or csv)", format)
	}
	return nil
}

func gradeColor(g model.Grade) text.Colors {
	switch g {
	case model.GradeA, model.GradeB:
		return text.Colors{text.FgHiGreen}
	case model.GradeC:
		return text.Colors{text.FgHiYellow}
	default:
		return text.Colors{text.FgHiRed}
	}
}
