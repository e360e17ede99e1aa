// Package screen defines the contract every full-screen view of the
// application satisfies. The router owns a stack of these and the app
// model frames the active one with the shared header and footer.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/mujeeb/quizdev/internal/ui/layout"
)

// Screen is one view in the navigation stack.
type Screen interface {
	// Init runs when the screen becomes active for the first time.
	Init() tea.Cmd

	// Update reacts to a message and returns the screen to keep showing.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body only; the frame adds header and footer.
	View(width, height int) string

	// Title labels the screen in the header.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
