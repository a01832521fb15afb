package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/theirongolddev/greenscore/internal/params"
	"github.com/theirongolddev/greenscore/internal/tui"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var flagFormSave string

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Enter parameters in an interactive form, then evaluate",
	RunE:  runForm,
}

func init() {
	formCmd.Flags().StringVar(&flagFormSave, "save", "", "Also save the answers as a YAML scenario file")
	rootCmd.AddCommand(formCmd)
}

func runForm(cmd *cobra.Command, _ []string) error {
	in, err := resolveInputs(cmd)
	if err != nil {
		return err
	}

	vals := tui.NewFormValues(in.project, in.usage)
	if err := tui.NewUsageForm(vals).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return fmt.Errorf("form: %w", err)
	}

	usage, err := vals.Usage()
	if err != nil {
		return err
	}
	project := strings.TrimSpace(vals.Project)
	if project == "" {
		project = params.DefaultProjectName
	}

	if flagFormSave != "" {
		if err := params.WriteScenario(flagFormSave, params.Scenario{Project: project, Usage: usage}); err != nil {
			return err
		}
		if !flagQuiet {
			fmt.Printf("  Saved scenario to %s\n", flagFormSave)
		}
	}

	ev := evaluation{Project: project, Params: usage, Result: in.est.Evaluate(usage)}
	return writeEvaluation(os.Stdout, ev, in.cfg.General.Format, false)
}
