// Package cmd implements the greenscore CLI commands.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/theirongolddev/greenscore/internal/config"
	"github.com/theirongolddev/greenscore/internal/footprint"
	"github.com/theirongolddev/greenscore/internal/model"
	"github.com/theirongolddev/greenscore/internal/params"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X ...cmd.version=...".
var version = "dev"

var (
	flagConfig   string
	flagQuiet    bool
	flagLogLevel string

	flagScenario string
	flagProject  string
	flagModel    string
	flagRegion   string
	flagUsers    int
	flagRequests int
	flagTokens   int
	flagMedia    bool
	flagImages   int
	flagVideo    int
	flagMonths   int
)

var rootCmd = &cobra.Command{
	Use:           "greenscore",
	Short:         "AI project footprint estimator",
	Long:          "Estimate the carbon and water footprint of an AI project and grade it GO / NO-GO.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runEvaluate,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "  Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Config file (default "+config.Path()+")")
	pf.BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
	pf.StringVar(&flagLogLevel, "log-level", "", "Log level for serve/mcp (debug, info, warn, error)")

	pf.StringVarP(&flagScenario, "scenario", "s", "", "YAML or JSON scenario file")
	pf.StringVarP(&flagProject, "project", "p", "", "Project name")
	pf.StringVarP(&flagModel, "model", "m", "", "Model type (inference, fine-tuned, scratch)")
	pf.StringVarP(&flagRegion, "region", "r", "", "Server location (low-carbon, mixed-mix, global-average)")
	pf.IntVarP(&flagUsers, "users", "u", 0, "Number of users (10-5000)")
	pf.IntVar(&flagRequests, "requests", 0, "Requests per day per user (1-50)")
	pf.IntVar(&flagTokens, "tokens", 0, "Average tokens per request")
	pf.BoolVar(&flagMedia, "media", false, "Include image and video generation")
	pf.IntVar(&flagImages, "images", 0, "Images per day per user (0-50)")
	pf.IntVar(&flagVideo, "video", 0, "Video seconds per day per user (0-60)")
	pf.IntVar(&flagMonths, "months", 0, "Project duration in months (1-36)")
}

// inputs is everything a command needs to produce an estimate.
type inputs struct {
	cfg     config.Config
	project string
	usage   model.UsageParameters
	est     footprint.Estimator
}

func loadConfig() (config.Config, error) {
	if flagConfig != "" {
		return config.LoadFrom(flagConfig)
	}
	return config.Load()
}

// resolveInputs layers the parameter sources: config defaults, then the
// scenario file, then any flag the user set explicitly.
func resolveInputs(cmd *cobra.Command) (inputs, error) {
	cfg, err := loadConfig()
	if err != nil {
		return inputs{}, err
	}

	in := inputs{
		cfg:     cfg,
		project: cfg.General.ProjectName,
		usage:   cfg.Defaults,
		est:     cfg.Estimator(),
	}

	if flagScenario != "" {
		sc, err := params.LoadScenario(flagScenario, in.usage)
		if err != nil {
			return inputs{}, err
		}
		in.usage = sc.Usage
		if sc.Project != "" {
			in.project = sc.Project
		}
	}

	if err := applyUsageFlags(cmd, &in); err != nil {
		return inputs{}, err
	}

	if strings.TrimSpace(in.project) == "" {
		in.project = params.DefaultProjectName
	}

	if err := params.Validate(in.usage); err != nil {
		return inputs{}, err
	}
	return in, nil
}

func applyUsageFlags(cmd *cobra.Command, in *inputs) error {
	flags := cmd.Flags()
	p := &in.usage

	if flags.Changed("project") {
		in.project = flagProject
	}
	if flags.Changed("model") {
		mt, err := model.ParseModelType(flagModel)
		if err != nil {
			return fmt.Errorf("--model: %w", err)
		}
		p.ModelType = mt
	}
	if flags.Changed("region") {
		r, err := model.ParseRegion(flagRegion)
		if err != nil {
			return fmt.Errorf("--region: %w", err)
		}
		p.Region = r
	}

	ints := []struct {
		name string
		val  int
		dst  *int
	}{
		{"users", flagUsers, &p.NumUsers},
		{"requests", flagRequests, &p.RequestsPerDayPerUser},
		{"tokens", flagTokens, &p.AvgTokensPerRequest},
		{"images", flagImages, &p.ImagesPerDayPerUser},
		{"video", flagVideo, &p.VideoSecondsPerDayPerUser},
		{"months", flagMonths, &p.ProjectDurationMonths},
	}
	for _, f := range ints {
		if flags.Changed(f.name) {
			*f.dst = f.val
		}
	}

	if flags.Changed("media") {
		p.UseMedia = flagMedia
	}
	// Asking for image or video volume implies media generation.
	if !flags.Changed("media") && (flags.Changed("images") || flags.Changed("video")) {
		p.UseMedia = true
	}
	return nil
}

func logLevel(cfg config.Config) string {
	if flagLogLevel != "" {
		return flagLogLevel
	}
	return cfg.Logging.Level
}
