// Package tui provides the interactive Bubble Tea dashboard for greenscore.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/theirongolddev/greenscore/internal/certificate"
	"github.com/theirongolddev/greenscore/internal/footprint"
	"github.com/theirongolddev/greenscore/internal/model"
	"github.com/theirongolddev/greenscore/internal/params"
	"github.com/theirongolddev/greenscore/internal/tui/components"
	"github.com/theirongolddev/greenscore/internal/tui/theme"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Options configures a dashboard session.
type Options struct {
	Project   string
	Usage     model.UsageParameters
	Estimator footprint.Estimator
	CertDir   string // where `w` writes certificates; "" means the working directory
	Now       func() time.Time
}

// certWrittenMsg reports the outcome of a certificate write.
type certWrittenMsg struct {
	Path string
	Err  error
}

// App is the root Bubble Tea model.
type App struct {
	opts Options

	// Current estimate
	usage    model.UsageParameters
	defaults model.UsageParameters
	project  string
	result   model.FootprintResult
	tiers    []footprint.Tier

	// UI state
	width     int
	height    int
	activeTab int
	cursor    int
	keys      keyMap
	help      help.Model
	showHelp  bool
	status    string
	statusErr bool

	// Embedded parameter form
	form     *huh.Form
	formVals *FormValues
}

const (
	minTerminalWidth = 80
	maxContentWidth  = 140
	minContentHeight = 5
)

// NewApp creates a new TUI app model.
func NewApp(opts Options) App {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if len(opts.Estimator.Tiers()) == 0 {
		opts.Estimator = footprint.New(footprint.DefaultCalibration(), nil)
	}
	if opts.Project == "" {
		opts.Project = params.DefaultProjectName
	}

	usage := params.Clamp(opts.Usage)
	a := App{
		opts:     opts,
		usage:    usage,
		defaults: usage,
		project:  opts.Project,
		tiers:    opts.Estimator.Tiers(),
		keys:     newKeyMap(),
		help:     help.New(),
	}
	a.recompute()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.EnableMouseCellMotion
}

// Usage returns the parameters currently on screen.
func (a App) Usage() model.UsageParameters { return a.usage }

// Result returns the estimate for the parameters currently on screen.
func (a App) Result() model.FootprintResult { return a.result }

func (a *App) recompute() {
	a.result = a.opts.Estimator.Evaluate(a.usage)
}

func (a *App) setUsage(p model.UsageParameters) {
	a.usage = p
	if n := len(visibleFields(p)); a.cursor >= n {
		a.cursor = n - 1
	}
	a.recompute()
}

func (a App) currentField() field {
	fields := visibleFields(a.usage)
	return fields[a.cursor]
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		if a.form != nil {
			a.form = a.form.WithWidth(a.contentWidth()).WithHeight(a.height)
		}
		return a, nil

	case certWrittenMsg:
		if msg.Err != nil {
			a.status = fmt.Sprintf("certificate not written: %v", msg.Err)
			a.statusErr = true
		} else {
			a.status = "wrote " + msg.Path
			a.statusErr = false
		}
		return a, nil

	case tea.MouseMsg:
		if a.form != nil {
			return a.updateForm(msg)
		}
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && msg.Y == 0 {
			if tab := components.TabAtX(msg.X-a.leftMargin(), a.activeTab); tab >= 0 {
				a.activeTab = tab
			}
		}
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		// The embedded form intercepts all keys
		if a.form != nil {
			return a.updateForm(msg)
		}

		if key.Matches(msg, a.keys.Help) {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		return a.handleKey(msg)
	}

	if a.form != nil {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.NextTab):
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
	case key.Matches(msg, a.keys.PrevTab):
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(msg, a.keys.Down):
		if a.cursor < len(visibleFields(a.usage))-1 {
			a.cursor++
		}
	case key.Matches(msg, a.keys.Dec):
		a.setUsage(adjust(a.usage, a.currentField(), -1, false))
	case key.Matches(msg, a.keys.Inc):
		a.setUsage(adjust(a.usage, a.currentField(), 1, false))
	case key.Matches(msg, a.keys.DecBig):
		a.setUsage(adjust(a.usage, a.currentField(), -1, true))
	case key.Matches(msg, a.keys.IncBig):
		a.setUsage(adjust(a.usage, a.currentField(), 1, true))
	case key.Matches(msg, a.keys.Media):
		a.setUsage(adjust(a.usage, fieldMedia, 1, false))
	case key.Matches(msg, a.keys.Reset):
		a.setUsage(a.defaults)
		a.status, a.statusErr = "reset to defaults", false
	case key.Matches(msg, a.keys.Write):
		return a, a.writeCertificateCmd()
	case key.Matches(msg, a.keys.Edit):
		a.formVals = NewFormValues(a.project, a.usage)
		a.form = NewUsageForm(a.formVals)
		if a.width > 0 {
			a.form = a.form.WithWidth(a.contentWidth()).WithHeight(a.height)
		}
		return a, a.form.Init()
	default:
		if runes := msg.Runes; len(runes) == 1 {
			if tab := components.TabIdxByKey(runes[0]); tab >= 0 {
				a.activeTab = tab
			}
		}
	}
	return a, nil
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		usage, err := a.formVals.Usage()
		if err != nil {
			a.status, a.statusErr = err.Error(), true
		} else {
			a.project = strings.TrimSpace(a.formVals.Project)
			a.setUsage(usage)
			a.status, a.statusErr = "parameters updated", false
		}
		a.form, a.formVals = nil, nil
		return a, nil
	case huh.StateAborted:
		a.form, a.formVals = nil, nil
		return a, nil
	}
	return a, cmd
}

// certificatePath returns where the certificate for the current project goes.
func (a App) certificatePath() string {
	return filepath.Join(a.opts.CertDir, certificate.FileName(a.project))
}

func (a App) writeCertificateCmd() tea.Cmd {
	cert := certificate.New(a.project, a.usage, a.result, a.opts.Now())
	path := a.certificatePath()
	return func() tea.Msg {
		err := os.WriteFile(path, []byte(cert.String()), 0o644) //nolint:gosec // certificate is meant to be shared
		return certWrittenMsg{Path: path, Err: err}
	}
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// leftMargin is the blank column count left of centered content.
func (a App) leftMargin() int {
	return (a.width - a.contentWidth()) / 2
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.form != nil {
		return a.form.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  greenscore needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	h := a.help
	h.ShowAll = true

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")
	b.WriteString(h.View(a.keys))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("e b c t jump to a tab · press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, cw)
	statusBar := components.RenderStatusBar(w, a.help.View(a.keys), a.status, a.statusErr)

	contentH := h - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case 0:
		content = a.renderEstimateTab(cw)
	case 1:
		content = a.renderBreakdownTab(cw)
	case 2:
		content = a.renderCompareTab(cw)
	case 3:
		content = a.renderTiersTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)

	body := lipgloss.JoinVertical(lipgloss.Left, header, content)
	body = lipgloss.Place(w, h-lipgloss.Height(statusBar), lipgloss.Center, lipgloss.Top, body,
		lipgloss.WithWhitespaceBackground(t.Background))

	return lipgloss.JoinVertical(lipgloss.Left, body, statusBar)
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
