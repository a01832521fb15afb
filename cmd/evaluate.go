package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/theirongolddev/greenscore/internal/cli"
	"github.com/theirongolddev/greenscore/internal/model"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	flagFormat string
	flagChart  bool
)

var evaluateCmd = &cobra.Command{
	Use:     "evaluate",
	Aliases: []string{"eval"},
	Short:   "Estimate the footprint and grade for one parameter set",
	RunE:    runEvaluate,
}

func init() {
	for _, c := range []*cobra.Command{rootCmd, evaluateCmd} {
		c.Flags().StringVarP(&flagFormat, "format", "f", "", "Output format: text, json, yaml (default from config)")
		c.Flags().BoolVar(&flagChart, "chart", false, "Add a bar chart of the carbon breakdown")
	}
	rootCmd.AddCommand(evaluateCmd)
}

// evaluation is the machine-readable evaluate output.
type evaluation struct {
	Project string                `json:"project" yaml:"project"`
	Params  model.UsageParameters `json:"params" yaml:"params"`
	Result  model.FootprintResult `json:"result" yaml:"result"`
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	in, err := resolveInputs(cmd)
	if err != nil {
		return err
	}

	result := in.est.Evaluate(in.usage)

	format := flagFormat
	if format == "" {
		format = in.cfg.General.Format
	}

	ev := evaluation{Project: in.project, Params: in.usage, Result: result}
	return writeEvaluation(os.Stdout, ev, format, flagChart)
}

func writeEvaluation(w io.Writer, ev evaluation, format string, chart bool) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(ev); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(ev); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case "", "text":
		renderEvaluation(w, ev, chart)
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}
}

func renderEvaluation(w io.Writer, ev evaluation, chart bool) {
	r := ev.Result
	p := ev.Params

	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderTitle("GREENSCORE  "+ev.Project))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s · %s · %s users · %d months\n",
		p.ModelType.Label(), p.Region.Label(), cli.FormatNumber(int64(p.NumUsers)), p.ProjectDurationMonths)
	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderDecision(r))
	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderMetrics(r))
	fmt.Fprintln(w)
	fmt.Fprintln(w, cli.RenderBreakdown(r.Breakdown, 30))

	if chart {
		fmt.Fprintln(w)
		fmt.Fprintln(w, cli.RenderBreakdownChart(r.Breakdown, 60, 12))
	}

	if !flagQuiet {
		fmt.Fprintln(w)
		fmt.Fprintln(w, cli.RenderVolumes(r.Volumes))
	}

	if p.UseMedia {
		fmt.Fprintln(w)
		fmt.Fprintln(w, cli.RenderWarning(cli.MediaWarning))
	}
	fmt.Fprintln(w)
}
