package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/theirongolddev/greenscore/internal/footprint"
	"github.com/theirongolddev/greenscore/internal/model"
)

func newTestApp(t *testing.T) App {
	t.Helper()
	a := NewApp(Options{
		Project: "Test Bot",
		Usage:   model.DefaultUsage(),
		CertDir: t.TempDir(),
		Now:     func() time.Time { return time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC) },
	})
	m, _ := a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m.(App)
}

func press(a App, keys ...string) App {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ := a.Update(msg)
		a = m.(App)
	}
	return a
}

func TestNewAppEvaluatesImmediately(t *testing.T) {
	a := newTestApp(t)
	if got := a.Result().TotalCO2Kg; got < 278.999 || got > 279.001 {
		t.Errorf("initial total = %v, want 279", got)
	}
	if a.Result().Grade != model.GradeA {
		t.Errorf("initial grade = %s, want A", a.Result().Grade)
	}
}

func TestAdjustingRecomputes(t *testing.T) {
	a := newTestApp(t)

	// Cursor starts on model type; one step right selects fine-tuned.
	a = press(a, "right")
	if a.Usage().ModelType != model.FineTuned {
		t.Fatalf("model type = %v, want fine-tuned", a.Usage().ModelType)
	}
	want := footprint.Evaluate(a.Usage())
	if a.Result() != want {
		t.Errorf("result not recomputed: got %+v, want %+v", a.Result(), want)
	}
	if a.Result().Grade != model.GradeB {
		t.Errorf("grade = %s, want B", a.Result().Grade)
	}

	// Down to region, then right to the mixed grid.
	a = press(a, "down", "right")
	if a.Usage().Region != model.MixedMix {
		t.Errorf("region = %v, want mixed-mix", a.Usage().Region)
	}
}

func TestMediaToggleAddsFieldsAndKeepsCursorInRange(t *testing.T) {
	a := newTestApp(t)
	a = press(a, "m")
	if !a.Usage().UseMedia {
		t.Fatal("media not enabled")
	}
	if a.Result().Breakdown.MediaCO2Kg <= 0 {
		t.Error("media emissions missing after enabling media")
	}

	// Move to the last field, then disable media; cursor must stay valid.
	a = press(a, "j", "j", "j", "j", "j", "j", "j", "j", "j", "j")
	a = press(a, "m")
	if a.cursor >= len(visibleFields(a.Usage())) {
		t.Errorf("cursor %d out of range", a.cursor)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	a := newTestApp(t)
	a = press(a, "down", "down", "L", "L")
	if a.Usage().NumUsers == 500 {
		t.Fatal("users did not change")
	}
	a = press(a, "r")
	if a.Usage() != model.DefaultUsage() {
		t.Errorf("usage after reset = %+v", a.Usage())
	}
}

func TestTabSwitching(t *testing.T) {
	a := newTestApp(t)
	a = press(a, "c")
	if a.activeTab != 2 {
		t.Errorf("activeTab after c = %d, want 2", a.activeTab)
	}
	a = press(a, "tab", "tab")
	if a.activeTab != 0 {
		t.Errorf("activeTab after two tabs = %d, want 0", a.activeTab)
	}
}

func TestHelpToggle(t *testing.T) {
	a := newTestApp(t)
	a = press(a, "?")
	if !a.showHelp {
		t.Fatal("help not shown")
	}
	if !strings.Contains(a.View(), "Keyboard Shortcuts") {
		t.Error("help view missing title")
	}
	a = press(a, "x")
	if a.showHelp {
		t.Error("any key should close help")
	}
}

func TestWriteCertificate(t *testing.T) {
	a := newTestApp(t)
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w")})
	if cmd == nil {
		t.Fatal("w returned no command")
	}
	msg, ok := cmd().(certWrittenMsg)
	if !ok {
		t.Fatalf("command returned %T", cmd())
	}
	if msg.Err != nil {
		t.Fatalf("write failed: %v", msg.Err)
	}
	if filepath.Base(msg.Path) != "GreenScore_Test_Bot.txt" {
		t.Errorf("path = %s", msg.Path)
	}

	data, err := os.ReadFile(msg.Path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Date: 2026-01-02 03:04") {
		t.Errorf("certificate missing date:\n%s", data)
	}

	m, _ := a.Update(msg)
	if !strings.Contains(m.(App).status, "GreenScore_Test_Bot.txt") {
		t.Errorf("status = %q", m.(App).status)
	}
}

func TestViewsRenderEveryTab(t *testing.T) {
	a := newTestApp(t)
	checks := map[string][]string{
		"e": {"Total Project", "Cooling", "Thermal Engine", "GO • SUSTAINABLE PROJECT"},
		"b": {"Text (LLM)", "Training (Model)", "Multimodal (Img/Vid)"},
		"c": {"Training from Scratch", "* current configuration"},
		"t": {"NO-GO • CRITICAL", "▸ A"},
	}
	for k, wants := range checks {
		view := press(a, k).View()
		for _, want := range wants {
			if !strings.Contains(view, want) {
				t.Errorf("tab %s view missing %q", k, want)
			}
		}
	}
}

func TestTooNarrow(t *testing.T) {
	a := newTestApp(t)
	m, _ := a.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	if !strings.Contains(m.(App).View(), "too narrow") {
		t.Error("expected narrow-terminal notice")
	}
}

func TestEnterOpensForm(t *testing.T) {
	a := newTestApp(t)
	m, _ := a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	a = m.(App)
	if a.form == nil {
		t.Fatal("enter did not open the form")
	}
	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if m.(App).form == nil {
		t.Error("keys should go to the form while it is open")
	}
}
