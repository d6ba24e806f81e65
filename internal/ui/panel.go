package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Panel draws a framed box around lines using the theme's border.
func Panel(t Theme, lines []string) string {
	border := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
	return border.Render(strings.Join(lines, "\n"))
}

// Truncate shortens s to width visible cells, ending with "...".
func Truncate(s string, width int) string {
	if width <= 3 || lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r)) > width-3 {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}
