package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mujeeb/quizdev/internal/ui/theme"
)

// TextInput wraps bubbles/textinput for the wizard's free-text fields:
// the document path, the topic, and the numeric question count. An
// inline error line can be attached below the field.
type TextInput struct {
	Model       textinput.Model
	NumericOnly bool
	MaxWidth    int
	errText     string
}

// NewTextInput builds a focused input. With numericOnly, typed
// characters other than digits are swallowed. maxWidth > 0 caps the
// value length.
func NewTextInput(placeholder string, numericOnly bool, maxWidth int) TextInput {
	m := textinput.New()
	m.Placeholder = placeholder
	m.Focus()
	if maxWidth > 0 {
		m.CharLimit = maxWidth
	}

	return TextInput{
		Model:       m,
		NumericOnly: numericOnly,
		MaxWidth:    maxWidth,
	}
}

func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update forwards messages to the underlying input, dropping
// non-digit character keys when the field is numeric.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && t.NumericOnly {
		if key := kmsg.String(); len(key) == 1 && (key[0] < '0' || key[0] > '9') {
			return t, nil
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the field, with the error line under it when set.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.errText != "" {
		view += "\n" + lipgloss.NewStyle().Foreground(theme.Error).Render("  "+t.errText)
	}
	return view
}

// Value returns the raw text.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// NumericValue parses the text as an integer.
func (t TextInput) NumericValue() (int, error) {
	return strconv.Atoi(t.Model.Value())
}

// SetError sets the inline error line; empty clears it.
func (t *TextInput) SetError(text string) {
	t.errText = text
}
