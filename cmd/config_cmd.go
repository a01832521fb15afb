package cmd

import (
	"fmt"

	"github.com/theirongolddev/greenscore/internal/config"
	"github.com/theirongolddev/greenscore/internal/footprint"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(configPath())
	},
}

func init() {
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return config.Path()
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", configPath())
	if flagConfig != "" || config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Project name:   %s\n", cfg.General.ProjectName)
	fmt.Printf("    Output format:  %s\n", cfg.General.Format)
	fmt.Println()

	d := cfg.Defaults
	fmt.Println("  [Defaults]")
	fmt.Printf("    Model type:     %s\n", d.ModelType.Label())
	fmt.Printf("    Location:       %s\n", d.Region.Label())
	fmt.Printf("    Users:          %d\n", d.NumUsers)
	fmt.Printf("    Requests/day:   %d\n", d.RequestsPerDayPerUser)
	fmt.Printf("    Tokens/request: %d\n", d.AvgTokensPerRequest)
	fmt.Printf("    Multimodal:     %v\n", d.UseMedia)
	if d.UseMedia {
		fmt.Printf("    Images/day:     %d\n", d.ImagesPerDayPerUser)
		fmt.Printf("    Video sec/day:  %d\n", d.VideoSecondsPerDayPerUser)
	}
	fmt.Printf("    Duration:       %d months\n", d.ProjectDurationMonths)
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Server]")
	fmt.Printf("    Address:   %s\n", cfg.Server.Addr)
	fmt.Printf("    Log level: %s\n", cfg.Logging.Level)
	fmt.Println()

	fmt.Println("  [Calibration]")
	if cfg.Calibration.IsZero() {
		fmt.Println("    Reference values (no overrides)")
	} else {
		printCalibration(cfg.Estimator().Calibration())
	}
	fmt.Println()

	fmt.Println("  Run `greenscore setup` to reconfigure.")
	return nil
}

func printCalibration(c footprint.Calibration) {
	fmt.Printf("    CO2 per token:        %g g\n", c.CO2PerTokenG)
	fmt.Printf("    Water per token:      %g mL\n", c.WaterPerTokenML)
	fmt.Printf("    CO2 per image:        %g g\n", c.CO2PerImageG)
	fmt.Printf("    CO2 per video second: %g g\n", c.CO2PerVideoSecondG)
	fmt.Printf("    Water per media unit: %g mL\n", c.WaterPerMediaUnitML)
	fmt.Printf("    Training (scratch):   %g kg\n", c.TrainingFromScratchCO2Kg)
	fmt.Printf("    Training (fine-tune): %g kg\n", c.TrainingFineTuneCO2Kg)
	fmt.Printf("    Training (inference): %g kg\n", c.TrainingInferenceCO2Kg)
	fmt.Printf("    Region factors:       low %g · mixed %g · global %g\n",
		c.LowCarbonFactor, c.MixedMixFactor, c.GlobalAverageFactor)
	fmt.Printf("    Car emission:         %g kg/km\n", c.CarEmissionKgPerKm)
	fmt.Printf("    Days per month:       %d\n", c.DaysPerMonth)
}
