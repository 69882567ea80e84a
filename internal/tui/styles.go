package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/drills/internal/ui"
)

// Style variables for the carol viewer.
// Initialized from the ui theme system via initTUIStyles().
var (
	panelStyle     lipgloss.Style
	headerStyle    lipgloss.Style
	titleStyle     lipgloss.Style
	dayStyle       lipgloss.Style
	verseTitle     lipgloss.Style
	lyricStyle     lipgloss.Style
	newGiftStyle   lipgloss.Style
	separatorStyle lipgloss.Style
	dimStyle       lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all TUI styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text).
		Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	dayStyle = lipgloss.NewStyle().
		Foreground(t.Success)

	verseTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	lyricStyle = lipgloss.NewStyle().
		Foreground(t.Text)

	newGiftStyle = lipgloss.NewStyle().
		Foreground(t.Success).
		Bold(true)

	separatorStyle = lipgloss.NewStyle().
		Foreground(t.Dim)

	dimStyle = lipgloss.NewStyle().
		Foreground(t.Dim)
}
