// Package app assembles the Bubble Tea program: the root model, the
// screen router, and the header/footer frame around the active screen.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mujeeb/quizdev/internal/llm"
	"github.com/mujeeb/quizdev/internal/quizgen"
	"github.com/mujeeb/quizdev/internal/router"
	"github.com/mujeeb/quizdev/internal/screen"
	"github.com/mujeeb/quizdev/internal/screens/setup"
	"github.com/mujeeb/quizdev/internal/session"
	"github.com/mujeeb/quizdev/internal/store"
	"github.com/mujeeb/quizdev/internal/ui/layout"
)

// Options carries the dependencies the TUI needs.
type Options struct {
	Generator quizgen.Generator
	Provider  llm.Provider
	EventRepo store.EventRepo
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	model  string
	width  int
	height int
}

// newAppModel starts the router on the setup screen. One session spans
// the whole run, so dedup history covers every quiz generated until the
// program exits.
func newAppModel(opts Options) AppModel {
	sess := session.New()

	model := ""
	if opts.Provider != nil {
		model = opts.Provider.ModelID()
	}

	return AppModel{
		router: router.New(setup.New(opts.Generator, opts.EventRepo, sess)),
		model:  model,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		// Ctrl+C quits from anywhere; everything else belongs to the
		// active screen.
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	return m, m.router.Update(msg)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	// The first WindowSizeMsg hasn't arrived yet.
	if m.width == 0 || m.height == 0 {
		return v
	}
	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}
	header := layout.RenderHeader(title, m.model, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hinter, ok := active.(screen.KeyHintProvider); ok {
		if hints := hinter.KeyHints(); len(hints) > 0 {
			footerHints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	if _, err := tea.NewProgram(newAppModel(opts)).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
