package cmd

import (
	"fmt"

	"github.com/theirongolddev/greenscore/internal/tui"
	"github.com/theirongolddev/greenscore/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var flagCertDir string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive footprint dashboard",
	RunE:  runTUI,
}

func init() {
	tuiCmd.Flags().StringVar(&flagCertDir, "cert-dir", "", "Directory for certificates written with w (default working directory)")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	in, err := resolveInputs(cmd)
	if err != nil {
		return err
	}
	theme.SetActive(in.cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(tui.Options{
		Project:   in.project,
		Usage:     in.usage,
		Estimator: in.est,
		CertDir:   flagCertDir,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
