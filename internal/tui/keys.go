package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every dashboard binding. It implements help.KeyMap.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Dec     key.Binding
	Inc     key.Binding
	DecBig  key.Binding
	IncBig  key.Binding
	Media   key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Edit    key.Binding
	Write   key.Binding
	Reset   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "previous field")),
		Down:    key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "next field")),
		Dec:     key.NewBinding(key.WithKeys("h", "left", "-"), key.WithHelp("←/h", "decrease")),
		Inc:     key.NewBinding(key.WithKeys("l", "right", "+", "="), key.WithHelp("→/l", "increase")),
		DecBig:  key.NewBinding(key.WithKeys("H", "pgdown"), key.WithHelp("H", "decrease ×10")),
		IncBig:  key.NewBinding(key.WithKeys("L", "pgup"), key.WithHelp("L", "increase ×10")),
		Media:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "toggle multimodal")),
		NextTab: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous tab")),
		Edit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit in form")),
		Write:   key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "write certificate")),
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset to defaults")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Inc, k.Media, k.Write, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Dec, k.Inc, k.DecBig, k.IncBig},
		{k.Media, k.Edit, k.Reset, k.Write},
		{k.NextTab, k.PrevTab, k.Help, k.Quit},
	}
}
