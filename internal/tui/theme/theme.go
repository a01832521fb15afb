// Package theme defines color themes for the greenscore dashboard.
package theme

import (
	"github.com/theirongolddev/greenscore/internal/model"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name         string
	Background   lipgloss.Color // Main app background
	Surface      lipgloss.Color // Card/panel backgrounds
	SurfaceHover lipgloss.Color // Selected parameter row
	Border       lipgloss.Color // Card borders
	BorderAccent lipgloss.Color // Help overlay border
	TextDim      lipgloss.Color // Hints, empty gauge track
	TextMuted    lipgloss.Color // Labels, metadata
	TextPrimary  lipgloss.Color // Values
	Accent       lipgloss.Color // Active tab, headings
	AccentBright lipgloss.Color // Selected row label, titles

	// Metric card accents
	Green  lipgloss.Color
	Blue   lipgloss.Color
	Orange lipgloss.Color
	Red    lipgloss.Color

	// Breakdown series
	SeriesText     lipgloss.Color
	SeriesTraining lipgloss.Color
	SeriesMedia    lipgloss.Color

	// Grades overrides the result color tokens, indexed A..E.
	// Nil keeps the estimator's own hex colors.
	Grades []lipgloss.Color
}

// Grade returns the color to draw grade g with. token is the result's
// own color and is used unless the theme overrides grade colors.
func (t Theme) Grade(g model.Grade, token string) lipgloss.Color {
	if len(t.Grades) == 5 && len(g) == 1 && g[0] >= 'A' && g[0] <= 'E' {
		return t.Grades[g[0]-'A']
	}
	return lipgloss.Color(token)
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default theme - warm, paper-inspired dark theme.
var FlexokiDark = Theme{
	Name:           "flexoki-dark",
	Background:     lipgloss.Color("#100F0F"),
	Surface:        lipgloss.Color("#1C1B1A"),
	SurfaceHover:   lipgloss.Color("#282726"),
	Border:         lipgloss.Color("#403E3C"),
	BorderAccent:   lipgloss.Color("#3AA99F"),
	TextDim:        lipgloss.Color("#575653"),
	TextMuted:      lipgloss.Color("#878580"),
	TextPrimary:    lipgloss.Color("#FFFCF0"),
	Accent:         lipgloss.Color("#3AA99F"),
	AccentBright:   lipgloss.Color("#5BC8BE"),
	Green:          lipgloss.Color("#879A39"),
	Blue:           lipgloss.Color("#4385BE"),
	Orange:         lipgloss.Color("#DA702C"),
	Red:            lipgloss.Color("#D14D41"),
	SeriesText:     lipgloss.Color("#4385BE"),
	SeriesTraining: lipgloss.Color("#8B7EC8"),
	SeriesMedia:    lipgloss.Color("#DA702C"),
}

// CatppuccinMocha is a warm pastel theme with soft, soothing colors.
var CatppuccinMocha = Theme{
	Name:           "catppuccin-mocha",
	Background:     lipgloss.Color("#1E1E2E"),
	Surface:        lipgloss.Color("#313244"),
	SurfaceHover:   lipgloss.Color("#45475A"),
	Border:         lipgloss.Color("#585B70"),
	BorderAccent:   lipgloss.Color("#89B4FA"),
	TextDim:        lipgloss.Color("#6C7086"),
	TextMuted:      lipgloss.Color("#A6ADC8"),
	TextPrimary:    lipgloss.Color("#CDD6F4"),
	Accent:         lipgloss.Color("#89B4FA"),
	AccentBright:   lipgloss.Color("#B4D0FB"),
	Green:          lipgloss.Color("#A6E3A1"),
	Blue:           lipgloss.Color("#89B4FA"),
	Orange:         lipgloss.Color("#FAB387"),
	Red:            lipgloss.Color("#F38BA8"),
	SeriesText:     lipgloss.Color("#89B4FA"),
	SeriesTraining: lipgloss.Color("#CBA6F7"),
	SeriesMedia:    lipgloss.Color("#FAB387"),
}

// TokyoNight is a cool blue/purple theme inspired by Tokyo city lights.
var TokyoNight = Theme{
	Name:           "tokyo-night",
	Background:     lipgloss.Color("#1A1B26"),
	Surface:        lipgloss.Color("#24283B"),
	SurfaceHover:   lipgloss.Color("#343A52"),
	Border:         lipgloss.Color("#565F89"),
	BorderAccent:   lipgloss.Color("#7AA2F7"),
	TextDim:        lipgloss.Color("#565F89"),
	TextMuted:      lipgloss.Color("#A9B1D6"),
	TextPrimary:    lipgloss.Color("#C0CAF5"),
	Accent:         lipgloss.Color("#7AA2F7"),
	AccentBright:   lipgloss.Color("#A9C1FF"),
	Green:          lipgloss.Color("#9ECE6A"),
	Blue:           lipgloss.Color("#7AA2F7"),
	Orange:         lipgloss.Color("#FF9E64"),
	Red:            lipgloss.Color("#F7768E"),
	SeriesText:     lipgloss.Color("#7AA2F7"),
	SeriesTraining: lipgloss.Color("#BB9AF7"),
	SeriesMedia:    lipgloss.Color("#FF9E64"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility. Grades map
// to green, yellow and red instead of the hex tokens.
var Terminal = Theme{
	Name:           "terminal",
	Background:     lipgloss.Color("0"),
	Surface:        lipgloss.Color("0"),
	SurfaceHover:   lipgloss.Color("8"),
	Border:         lipgloss.Color("8"),
	BorderAccent:   lipgloss.Color("6"),
	TextDim:        lipgloss.Color("8"),
	TextMuted:      lipgloss.Color("7"),
	TextPrimary:    lipgloss.Color("15"),
	Accent:         lipgloss.Color("6"),
	AccentBright:   lipgloss.Color("14"),
	Green:          lipgloss.Color("2"),
	Blue:           lipgloss.Color("4"),
	Orange:         lipgloss.Color("3"),
	Red:            lipgloss.Color("1"),
	SeriesText:     lipgloss.Color("4"),
	SeriesTraining: lipgloss.Color("5"),
	SeriesMedia:    lipgloss.Color("3"),
	Grades: []lipgloss.Color{
		lipgloss.Color("2"),
		lipgloss.Color("10"),
		lipgloss.Color("3"),
		lipgloss.Color("9"),
		lipgloss.Color("1"),
	},
}

// All available themes.
var All = []Theme{FlexokiDark, CatppuccinMocha, TokyoNight, Terminal}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}

// Names returns the names of all themes in display order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}
