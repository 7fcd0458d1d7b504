// Package divider renders the draggable gutter between two panels.
package divider

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	idleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	activeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("43")).
			Bold(true)
)

// Render returns a vertical gutter of the given size. The grip marker sits
// in the middle rows; active highlights it during a drag.
func Render(width, height int, active bool) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	style := idleStyle
	if active {
		style = activeStyle
	}

	gripStart := height/2 - 1
	gripEnd := height/2 + 1

	lines := make([]string, height)
	for i := range lines {
		char := "│"
		if i >= gripStart && i <= gripEnd {
			char = "┃"
		}
		pad := strings.Repeat(" ", width-1)
		lines[i] = style.Render(char) + pad
	}
	return strings.Join(lines, "\n")
}
