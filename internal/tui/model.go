package tui

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/drills/internal/carol"
	apperrors "github.com/agbru/drills/internal/errors"
)

// ContextCancelledMsg is sent when the parent context is cancelled.
type ContextCancelledMsg struct {
	Err error
}

// Model is the root bubbletea model for the carol viewer.
type Model struct {
	header HeaderModel
	keymap KeyMap
	help   help.Model

	ctx      context.Context
	day      int
	width    int
	height   int
	exitCode int
}

// NewModel creates a viewer positioned on the given zero-based day.
// Out-of-range days are clamped.
func NewModel(ctx context.Context, version string, day int) Model {
	return Model{
		header:   NewHeaderModel(version),
		keymap:   DefaultKeyMap(),
		help:     help.New(),
		ctx:      ctx,
		day:      clampDay(day),
		exitCode: apperrors.ExitSuccess,
	}
}

// Day returns the zero-based day currently shown.
func (m Model) Day() int {
	return m.day
}

// ExitCode returns the exit code the viewer finished with.
func (m Model) ExitCode() int {
	return m.exitCode
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return watchContextCmd(m.ctx)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.header.SetWidth(msg.Width)
		m.help.Width = msg.Width
		return m, nil

	case ContextCancelledMsg:
		m.exitCode = apperrors.ExitErrorCanceled
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Next):
		m.day = clampDay(m.day + 1)
	case key.Matches(msg, m.keymap.Prev):
		m.day = clampDay(m.day - 1)
	case key.Matches(msg, m.keymap.First):
		m.day = 0
	case key.Matches(msg, m.keymap.Last):
		m.day = carol.NumDays - 1
	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// View renders the header, the current verse block and the key help.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(m.day),
		panelStyle.Width(m.width-2).Render(renderBlock(m.day)),
		m.help.View(m.keymap),
	)
}

// renderBlock styles one verse block: header, newest gift, older gifts, separator.
func renderBlock(day int) string {
	lines, err := carol.Block(day)
	if err != nil {
		return err.Error()
	}

	styled := make([]string, len(lines))
	last := len(lines) - 1
	for i, line := range lines {
		switch i {
		case 0:
			styled[i] = verseTitle.Render(line)
		case 1:
			styled[i] = newGiftStyle.Render(line)
		case last:
			styled[i] = separatorStyle.Render(line)
		default:
			styled[i] = lyricStyle.Render(line)
		}
	}
	return strings.Join(styled, "\n")
}

func clampDay(day int) int {
	if day < 0 {
		return 0
	}
	if day >= carol.NumDays {
		return carol.NumDays - 1
	}
	return day
}

// Options configures a viewer session.
type Options struct {
	Version string
	// Day is the zero-based day shown first.
	Day       int
	In        io.Reader
	Out       io.Writer
	AltScreen bool
}

// Run is the public entry point for the viewer.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, opts Options) int {
	// Rebuild styles from the current ui theme (set by the app via InitTheme).
	initTUIStyles()

	programOpts := []tea.ProgramOption{}
	if opts.In != nil {
		programOpts = append(programOpts, tea.WithInput(opts.In))
	}
	if opts.Out != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Out))
	}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	p := tea.NewProgram(NewModel(ctx, opts.Version, opts.Day), programOpts...)
	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}
	if m, ok := finalModel.(Model); ok {
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err()}
	}
}
