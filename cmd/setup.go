package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/greenscore/internal/config"
	"github.com/theirongolddev/greenscore/internal/params"
	"github.com/theirongolddev/greenscore/internal/tui"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Load existing config or defaults
	cfg, _ := loadConfig()

	defaults := params.Clamp(cfg.Defaults)
	fv := tui.NewFormValues(cfg.General.ProjectName, defaults)
	sv := tui.NewSetupValues(cfg)

	if err := tui.NewSetupForm(sv, fv).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup canceled, nothing saved.")
			return nil
		}
		return fmt.Errorf("setup: %w", err)
	}

	if err := tui.ApplySetup(&cfg, *sv, *fv); err != nil {
		return err
	}

	path := configPath()
	if err := config.SaveTo(path, cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", path)
	fmt.Println("  Run `greenscore` to evaluate your defaults, or `greenscore tui` for the dashboard.")
	fmt.Println()
	return nil
}
