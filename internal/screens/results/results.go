package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mujeeb/quizdev/internal/router"
	"github.com/mujeeb/quizdev/internal/screen"
	"github.com/mujeeb/quizdev/internal/session"
	"github.com/mujeeb/quizdev/internal/ui/layout"
	"github.com/mujeeb/quizdev/internal/ui/theme"
)

// ResultsScreen shows the scored quiz: total plus a per-question
// breakdown with the correct answer and explanation.
type ResultsScreen struct {
	result session.Result
	offset int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a results screen for a submitted quiz.
func New(result session.Result) *ResultsScreen {
	return &ResultsScreen{result: result}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Enter", Description: "New quiz"},
		{Key: "Esc", Description: "New quiz"},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if r.offset > 0 {
			r.offset--
		}
	case "down", "j":
		if r.offset < len(r.result.Items)-1 {
			r.offset++
		}
	case "enter", "esc":
		return r, func() tea.Msg { return router.PopScreenMsg{} }
	}

	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	var b strings.Builder

	// Headline score.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("You scored %d out of %d", r.result.Score, r.result.Total)))
	b.WriteString("\n\n")

	if r.result.Total == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("There were no questions to score."))
		return b.String()
	}

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 72)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	// Per-question breakdown, scrolled by offset.
	bodyHeight := height - lipgloss.Height(b.String())
	lines := 0
	for i := r.offset; i < len(r.result.Items); i++ {
		block := r.renderItem(i, width)
		blockHeight := lipgloss.Height(block) + 1
		if lines+blockHeight > bodyHeight && lines > 0 {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  ..."))
			break
		}
		b.WriteString(block)
		b.WriteString("\n")
		lines += blockHeight
	}

	return b.String()
}

func (r *ResultsScreen) renderItem(i int, width int) string {
	item := r.result.Items[i]
	var b strings.Builder

	marker := theme.Incorrect.Render("✗")
	if item.Correct {
		marker = theme.Correct.Render("✓")
	}

	b.WriteString(fmt.Sprintf("  %s %s", marker, lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(width-8).
		Render(fmt.Sprintf("%d. %s", i+1, item.Question))))
	b.WriteString("\n")

	given := item.YourAnswer
	if given == session.Unanswered {
		given = "(not answered)"
	}

	if item.Correct {
		b.WriteString(theme.Correct.Render(fmt.Sprintf("      Your answer: %s", given)))
	} else {
		b.WriteString(theme.Incorrect.Render(fmt.Sprintf("      Your answer: %s", given)))
		b.WriteString("\n")
		b.WriteString(theme.Correct.Render(fmt.Sprintf("      Correct answer: %s", item.CorrectAnswer)))
	}
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(width - 10).
		Render("      " + item.Explanation))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
