package components

import (
	"strings"

	"github.com/theirongolddev/greenscore/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name string
	Key  rune // shortcut; always the first letter of Name
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Estimate", Key: 'e'},
	{Name: "Breakdown", Key: 'b'},
	{Name: "Compare", Key: 'c'},
	{Name: "Tiers", Key: 't'},
}

// tabPadding is the horizontal padding applied on each side of a tab name.
const tabPadding = 1

// TabWidth returns the rendered width of tab i: the name plus padding, and
// for inactive tabs the brackets around the shortcut letter.
func TabWidth(i, activeIdx int) int {
	w := len(Tabs[i].Name) + 2*tabPadding
	if i != activeIdx {
		w += 2 // "[" and "]"
	}
	return w
}

// RenderTabBar renders the tab bar with the given active index.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Bold(true).
		Padding(0, tabPadding)

	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	dimKeyStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	pad := inactiveStyle.Render(strings.Repeat(" ", tabPadding))
	sep := lipgloss.NewStyle().Foreground(t.Border).Background(t.Surface).Render("│")

	parts := make([]string, len(Tabs))
	for i, tab := range Tabs {
		if i == activeIdx {
			parts[i] = activeStyle.Render(tab.Name)
			continue
		}
		parts[i] = pad +
			dimKeyStyle.Render("[") + keyStyle.Render(tab.Name[:1]) + dimKeyStyle.Render("]") +
			inactiveStyle.Render(tab.Name[1:]) + pad
	}

	return lipgloss.NewStyle().Background(t.Surface).Width(width).Render(strings.Join(parts, sep))
}

// TabAtX returns the tab index at column x of the tab bar, or -1.
func TabAtX(x, activeIdx int) int {
	pos := 0
	for i := range Tabs {
		w := TabWidth(i, activeIdx)
		if x >= pos && x < pos+w {
			return i
		}
		pos += w + 1 // separator
	}
	return -1
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
