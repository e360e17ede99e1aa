package setup

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mujeeb/quizdev/internal/content"
	"github.com/mujeeb/quizdev/internal/ui/theme"
)

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder

	title := func(text string) {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Primary).
			Bold(true).
			Render(text))
		b.WriteString("\n\n")
	}

	switch s.step {
	case stepSource:
		title("What should the quiz be about?")
		b.WriteString(s.sourceMenu.View())

	case stepDocument:
		title("Upload a document")
		b.WriteString(theme.Body.Render("  File path:"))
		b.WriteString("\n\n  ")
		b.WriteString(s.pathInput.View())

	case stepSubject:
		title("Pick a subject")
		b.WriteString(s.subjectMenu.View())

	case stepSubfield:
		title("Pick a sub-field")
		b.WriteString(s.subfieldMenu.View())

	case stepTopic:
		title("Name a topic")
		b.WriteString("  ")
		b.WriteString(s.topicInput.View())

	case stepParams:
		title("Quiz parameters")
		b.WriteString(theme.Hint.Render("  About: " + describeSubject(s.subject)))
		b.WriteString("\n\n")
		b.WriteString(s.renderForm())
		if s.errMsg != "" {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("  " + s.errMsg))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (s *SetupScreen) renderForm() string {
	var b strings.Builder

	field := func(idx int, label, body string) {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if s.form.focus == idx {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(style.Render("  " + label))
		b.WriteString("\n")
		b.WriteString(body)
		b.WriteString("\n")
	}

	field(fieldCount, "Number of questions", "  "+s.form.count.View())
	field(fieldKind, "Question type", s.form.kind.View())
	field(fieldDifficulty, "Difficulty", s.form.difficulty.View())
	field(fieldLanguage, "Language", s.form.language.View())

	button := "  [ Generate Quiz ]"
	if s.form.onGenerate() {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("▸" + button[1:]))
	} else {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(button))
	}
	b.WriteString("\n")

	return b.String()
}

func describeSubject(d content.Descriptor) string {
	switch v := d.(type) {
	case content.Document:
		return fmt.Sprintf("uploaded document (%d characters)", len(v.Text))
	case content.Taxonomy:
		return fmt.Sprintf("%s / %s", v.Subject, v.Subfield)
	case content.Topic:
		return v.Name
	default:
		return "nothing selected"
	}
}
