package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mujeeb/quizdev/internal/ui/components"
	"github.com/mujeeb/quizdev/internal/ui/theme"
)

func (q *QuizScreen) View(width, height int) string {
	if q.errMsg != "" {
		return renderError(width, height, q.errMsg)
	}
	if q.loading {
		return renderLoading(width, height)
	}
	if len(q.sess.Items) == 0 {
		return q.renderEmpty(width)
	}
	return q.renderQuestion(width)
}

func renderLoading(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Generating your quiz...")
}

func renderError(width, height int, msg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Error).
		Render(msg)
}

func (q *QuizScreen) renderEmpty(width int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Warning).
		Render("Every generated question was already asked in this session."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press G to request a fresh batch, or Esc to change the setup."))
	return b.String()
}

func (q *QuizScreen) renderQuestion(width int) string {
	var b strings.Builder
	total := len(q.sess.Items)
	item := q.sess.Items[q.index]

	// Position and progress.
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  Question %d of %d", q.index+1, total)))
	b.WriteString("\n")

	answered := q.answeredCount()
	bar := components.NewProgressBar(
		fmt.Sprintf("  Answered %d/%d", answered, total),
		float64(answered)/float64(total),
		false,
		min(width-4, 60),
	)
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	if q.shortfall > 0 {
		b.WriteString(theme.Advisory.Render(fmt.Sprintf(
			"  Heads up: %d of %d requested questions were repeats and were dropped.",
			q.shortfall, q.params.Count)))
		b.WriteString("\n\n")
	}

	// Question text.
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(width - 4).
		Render("  " + item.Question))
	b.WriteString("\n\n")

	// Answer selector.
	b.WriteString(q.choices[q.index].View())

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
