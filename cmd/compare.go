package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/greenscore/internal/cli"
	"github.com/theirongolddev/greenscore/internal/compare"

	"github.com/spf13/cobra"
)

var flagCompareFormat string

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare every region and model type for the same usage",
	RunE:  runCompare,
}

func init() {
	compareCmd.Flags().StringVarP(&flagCompareFormat, "format", "f", compare.FormatTable, "Output format: table, markdown, csv")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, _ []string) error {
	in, err := resolveInputs(cmd)
	if err != nil {
		return err
	}

	rows := compare.Matrix(in.est, in.usage)

	if flagCompareFormat == compare.FormatTable {
		fmt.Println()
	}
	if err := compare.Render(os.Stdout, rows, flagCompareFormat); err != nil {
		return err
	}
	if flagCompareFormat == compare.FormatTable && !flagQuiet {
		fmt.Println("  " + cli.RenderMuted("* current configuration"))
		fmt.Println()
	}
	return nil
}
