// Package layout renders the chrome around the active screen: the
// header bar, the key-hint footer, and the too-small guard.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/mujeeb/quizdev/internal/ui/theme"
)

// Minimum terminal size the layout is designed for. Below this the
// frame is replaced by a resize prompt.
const (
	MinWidth  = 80
	MinHeight = 24
)

// KeyHint is one key binding advertised in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal is below the minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage fills the terminal with a resize prompt.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// RenderHeader draws the top bar: app name on the left, the screen
// title centered, and the active model on the right so the user always
// knows which service is generating.
func RenderHeader(title, model string, width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  Quizdev")

	center := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(title)

	right := ""
	if model != "" {
		right = lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render("⚡ " + model)
	}

	inner := width - 4 // border padding
	if inner < 0 {
		inner = 0
	}

	// Center the title against the full width, then fill the remainder.
	leftGap := (inner-lipgloss.Width(center))/2 - lipgloss.Width(left)
	if leftGap < 1 {
		leftGap = 1
	}
	rightGap := inner - lipgloss.Width(left) - leftGap - lipgloss.Width(center) - lipgloss.Width(right)
	if rightGap < 1 {
		rightGap = 1
	}

	content := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right
	return barStyle(width).Render(content)
}

// RenderFooter draws the bottom bar listing the active key hints.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts,
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key)+
				" "+
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description))
	}
	return barStyle(width).Render("  " + strings.Join(parts, "   "))
}

// RenderFrame stacks header, content, and footer to fill the terminal,
// padding the content region to push the footer to the bottom.
func RenderFrame(header, content, footer string, width, height int) string {
	bodyHeight := height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < 0 {
		bodyHeight = 0
	}

	body := lipgloss.NewStyle().
		Width(width).
		Height(bodyHeight).
		Render(content)

	return header + "\n" + body + "\n" + footer
}

func barStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}
