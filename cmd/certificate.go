package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/theirongolddev/greenscore/internal/certificate"

	"github.com/spf13/cobra"
)

var flagCertOutput string

var certificateCmd = &cobra.Command{
	Use:     "certificate",
	Aliases: []string{"cert"},
	Short:   "Write a plain-text footprint certificate",
	RunE:    runCertificate,
}

func init() {
	certificateCmd.Flags().StringVarP(&flagCertOutput, "output", "o", "", "Output path, or - for stdout (default GreenScore_<project>.txt)")
	rootCmd.AddCommand(certificateCmd)
}

func runCertificate(cmd *cobra.Command, _ []string) error {
	in, err := resolveInputs(cmd)
	if err != nil {
		return err
	}

	result := in.est.Evaluate(in.usage)
	cert := certificate.New(in.project, in.usage, result, time.Now())

	if flagCertOutput == "-" {
		_, err := cert.WriteTo(os.Stdout)
		return err
	}

	path := flagCertOutput
	if path == "" {
		path = certificate.FileName(in.project)
	}

	//nolint:gosec // certificate is meant to be shared
	if err := os.WriteFile(path, []byte(cert.String()), 0o644); err != nil {
		return fmt.Errorf("writing certificate: %w", err)
	}

	if !flagQuiet {
		fmt.Printf("  Wrote %s (Score %s, %s)\n", path, result.Grade, result.DecisionLabel)
	}
	return nil
}
