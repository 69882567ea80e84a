package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/drills/internal/carol"
	"github.com/agbru/drills/internal/format"
)

// HeaderModel renders the top bar: title, current day, time spent reading.
type HeaderModel struct {
	startTime time.Time
	version   string
	width     int
}

// NewHeaderModel creates a new header.
func NewHeaderModel(version string) HeaderModel {
	return HeaderModel{
		startTime: time.Now(),
		version:   version,
	}
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// View renders the header for the given zero-based day.
func (h HeaderModel) View(day int) string {
	titleText := "Carol Viewer"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	title := titleStyle.Render(titleText)

	pipe := dimStyle.Render(" | ")
	position := dayStyle.Render(fmt.Sprintf("Day %d of %d", day+1, carol.NumDays))
	elapsed := dimStyle.Render(format.FormatExecutionDuration(time.Since(h.startTime).Truncate(time.Second)))

	leftPart := title + pipe + position
	gap := h.width - 2 - lipgloss.Width(leftPart) - lipgloss.Width(elapsed)

	return headerStyle.Width(h.width).Render(leftPart + spaces(gap) + elapsed)
}

// spaces returns a string of n space characters.
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
