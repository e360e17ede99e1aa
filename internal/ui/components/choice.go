package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mujeeb/quizdev/internal/ui/theme"
)

// Choice is a radio-style answer selector. Unlike a submit-once widget
// the chosen option stays editable: picking again simply moves the mark.
type Choice struct {
	Options []string
	Cursor  int
	Chosen  int // index of the recorded answer, -1 for none
}

// NewChoice creates a selector over options with nothing chosen.
func NewChoice(options []string) Choice {
	return Choice{
		Options: options,
		Chosen:  -1,
	}
}

// SetChosen restores a previously recorded choice by option value.
// An unknown value clears the mark.
func (c *Choice) SetChosen(value string) {
	c.Chosen = -1
	for i, opt := range c.Options {
		if opt == value {
			c.Chosen = i
			return
		}
	}
}

// Value returns the chosen option, or "" when nothing is chosen.
func (c Choice) Value() string {
	if c.Chosen < 0 || c.Chosen >= len(c.Options) {
		return ""
	}
	return c.Options[c.Chosen]
}

// Update handles keyboard navigation and selection.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "enter", " ":
		c.Chosen = c.Cursor
	case "1", "2", "3", "4":
		i := int(key[0] - '1')
		if i < len(c.Options) {
			c.Cursor = i
			c.Chosen = i
		}
	}

	return c, nil
}

// View renders the selector.
func (c Choice) View() string {
	var s string
	labels := []string{"A", "B", "C", "D"}

	for i, opt := range c.Options {
		label := fmt.Sprintf("%d", i+1)
		if i < len(labels) {
			label = labels[i]
		}

		mark := "( )"
		if i == c.Chosen {
			mark = "(●)"
		}

		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, mark, label, opt)

		switch {
		case i == c.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		case i == c.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
