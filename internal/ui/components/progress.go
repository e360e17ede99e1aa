package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mujeeb/quizdev/internal/ui/theme"
)

// ProgressBar is a horizontal fill bar, used on the quiz screen to
// show how many questions carry an answer.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int // total width including label and percent
}

// NewProgressBar builds a bar. Percent outside [0,1] is clamped.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the bar on one line: label, fill, optional percent.
func (p ProgressBar) View() string {
	var b strings.Builder

	if p.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label))
		b.WriteString("  ")
	}

	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6
	}
	barWidth := p.Width - lipgloss.Width(b.String()) - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth)*p.Percent + 0.5)
	switch {
	case filled < 0:
		filled = 0
	case filled > barWidth:
		filled = barWidth
	}

	b.WriteString(lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", filled)))
	b.WriteString(lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", barWidth-filled)))

	if p.ShowPercent {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(p.Percent*100))))
	}

	return b.String()
}
