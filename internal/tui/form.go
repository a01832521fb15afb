package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/greenscore/internal/config"
	"github.com/theirongolddev/greenscore/internal/model"
	"github.com/theirongolddev/greenscore/internal/params"
	"github.com/theirongolddev/greenscore/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// FormValues backs the usage form. Numeric inputs are edited as text.
type FormValues struct {
	Project   string
	ModelType model.ModelType
	Region    model.Region
	Users     string
	Requests  string
	Tokens    string
	UseMedia  bool
	Images    string
	Video     string
	Months    string
}

// NewFormValues seeds form values from an existing parameter set.
func NewFormValues(project string, p model.UsageParameters) *FormValues {
	return &FormValues{
		Project:   project,
		ModelType: p.ModelType,
		Region:    p.Region,
		Users:     strconv.Itoa(p.NumUsers),
		Requests:  strconv.Itoa(p.RequestsPerDayPerUser),
		Tokens:    strconv.Itoa(p.AvgTokensPerRequest),
		UseMedia:  p.UseMedia,
		Images:    strconv.Itoa(p.ImagesPerDayPerUser),
		Video:     strconv.Itoa(p.VideoSecondsPerDayPerUser),
		Months:    strconv.Itoa(p.ProjectDurationMonths),
	}
}

// Usage converts the form values into validated parameters.
func (v FormValues) Usage() (model.UsageParameters, error) {
	p := model.UsageParameters{
		ModelType: v.ModelType,
		Region:    v.Region,
		UseMedia:  v.UseMedia,
	}
	ints := []struct {
		name string
		raw  string
		dst  *int
	}{
		{"num_users", v.Users, &p.NumUsers},
		{"requests_per_day_per_user", v.Requests, &p.RequestsPerDayPerUser},
		{"avg_tokens_per_request", v.Tokens, &p.AvgTokensPerRequest},
		{"images_per_day_per_user", v.Images, &p.ImagesPerDayPerUser},
		{"video_seconds_per_day_per_user", v.Video, &p.VideoSecondsPerDayPerUser},
		{"project_duration_months", v.Months, &p.ProjectDurationMonths},
	}
	for _, f := range ints {
		n, err := parseInt(f.raw)
		if err != nil {
			return p, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = n
	}
	return p, params.Validate(p)
}

func parseInt(s string) (int, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", s)
	}
	return n, nil
}

// inRange returns an input validator for an inclusive range.
func inRange(b params.Bounds) func(string) error {
	return func(s string) error {
		n, err := parseInt(s)
		if err != nil {
			return err
		}
		if !b.Contains(n) {
			return fmt.Errorf("must be between %d and %d", b.Min, b.Max)
		}
		return nil
	}
}

func nonNegative(s string) error {
	n, err := parseInt(s)
	if err != nil {
		return err
	}
	if n < 0 {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

func modelTypeOptions() []huh.Option[model.ModelType] {
	opts := make([]huh.Option[model.ModelType], len(model.ModelTypes))
	for i, mt := range model.ModelTypes {
		opts[i] = huh.NewOption(mt.Label(), mt)
	}
	return opts
}

func regionOptions() []huh.Option[model.Region] {
	opts := make([]huh.Option[model.Region], len(model.Regions))
	for i, r := range model.Regions {
		opts[i] = huh.NewOption(r.Label(), r)
	}
	return opts
}

// usageGroups builds the parameter pages shared by the usage and setup forms.
func usageGroups(v *FormValues) []*huh.Group {
	return []*huh.Group{
		huh.NewGroup(
			huh.NewSelect[model.ModelType]().
				Title("Model type").
				Options(modelTypeOptions()...).
				Value(&v.ModelType),
			huh.NewSelect[model.Region]().
				Title("Hosting region").
				Description("Sets the grid carbon multiplier").
				Options(regionOptions()...).
				Value(&v.Region),
		).Title("Infrastructure"),

		huh.NewGroup(
			huh.NewInput().
				Title("Active users").
				Description(fmt.Sprintf("%d to %d", params.UsersBounds.Min, params.UsersBounds.Max)).
				Value(&v.Users).
				Validate(inRange(params.UsersBounds)),
			huh.NewInput().
				Title("Requests per user per day").
				Description(fmt.Sprintf("%d to %d", params.RequestsBounds.Min, params.RequestsBounds.Max)).
				Value(&v.Requests).
				Validate(inRange(params.RequestsBounds)),
			huh.NewInput().
				Title("Average tokens per request").
				Description(fmt.Sprintf("Steps of %d", params.TokensStep)).
				Value(&v.Tokens).
				Validate(nonNegative),
			huh.NewInput().
				Title("Project duration (months)").
				Description(fmt.Sprintf("%d to %d", params.MonthsBounds.Min, params.MonthsBounds.Max)).
				Value(&v.Months).
				Validate(inRange(params.MonthsBounds)),
			huh.NewConfirm().
				Title("Generate images or video?").
				Affirmative("Yes").
				Negative("No").
				Value(&v.UseMedia),
		).Title("Usage"),

		huh.NewGroup(
			huh.NewInput().
				Title("Images per user per day").
				Description(fmt.Sprintf("%d to %d", params.ImagesBounds.Min, params.ImagesBounds.Max)).
				Value(&v.Images).
				Validate(inRange(params.ImagesBounds)),
			huh.NewInput().
				Title("Video seconds per user per day").
				Description(fmt.Sprintf("%d to %d", params.VideoBounds.Min, params.VideoBounds.Max)).
				Value(&v.Video).
				Validate(inRange(params.VideoBounds)),
		).Title("Multimodal").
			WithHideFunc(func() bool { return !v.UseMedia }),
	}
}

// NewUsageForm returns a form collecting a project name and its usage
// parameters.
func NewUsageForm(v *FormValues) *huh.Form {
	project := huh.NewGroup(
		huh.NewInput().
			Title("Project name").
			Value(&v.Project).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("project name is required")
				}
				return nil
			}),
	).Title("Project")

	groups := append([]*huh.Group{project}, usageGroups(v)...)
	return huh.NewForm(groups...).WithTheme(huh.ThemeCharm())
}

// SetupValues backs the setup wizard's non-usage settings.
type SetupValues struct {
	Theme    string
	Format   string
	Addr     string
	LogLevel string
}

// NewSetupValues seeds the wizard from an existing config.
func NewSetupValues(cfg config.Config) *SetupValues {
	return &SetupValues{
		Theme:    cfg.Appearance.Theme,
		Format:   cfg.General.Format,
		Addr:     cfg.Server.Addr,
		LogLevel: cfg.Logging.Level,
	}
}

// NewSetupForm returns the configuration wizard: default project and
// parameters, then output, appearance, and server settings.
func NewSetupForm(sv *SetupValues, fv *FormValues) *huh.Form {
	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewInput().
				Title("Default project name").
				Value(&fv.Project),
		).Title("Welcome to greenscore").
			Description("These answers become the defaults for every command."),
	}
	groups = append(groups, usageGroups(fv)...)
	groups = append(groups,
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Default output format").
				Options(huh.NewOptions("text", "json", "yaml")...).
				Value(&sv.Format),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(theme.Names()...)...).
				Value(&sv.Theme),
		).Title("Output"),
		huh.NewGroup(
			huh.NewInput().
				Title("API listen address").
				Value(&sv.Addr),
			huh.NewSelect[string]().
				Title("Log level").
				Options(huh.NewOptions("debug", "info", "warn", "error")...).
				Value(&sv.LogLevel),
		).Title("Server"),
	)
	return huh.NewForm(groups...).WithTheme(huh.ThemeCharm())
}

// ApplySetup writes the wizard answers into cfg.
func ApplySetup(cfg *config.Config, sv SetupValues, fv FormValues) error {
	usage, err := fv.Usage()
	if err != nil {
		return err
	}
	if strings.TrimSpace(fv.Project) != "" {
		cfg.General.ProjectName = strings.TrimSpace(fv.Project)
	}
	cfg.Defaults = usage
	cfg.General.Format = sv.Format
	cfg.Appearance.Theme = sv.Theme
	cfg.Server.Addr = sv.Addr
	cfg.Logging.Level = sv.LogLevel
	return nil
}
