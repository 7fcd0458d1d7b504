// Package statusbar renders the single-line footer.
package statusbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/atelier-sh/atelier/internal/ui/render"
)

// Height is the fixed height of the status bar (single line).
const Height = 1

var (
	rootStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	focusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("43")).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))
)

// Render returns the status bar string for the given width.
// focused names the panel holding keyboard focus; narrow indicates the
// viewport dropped below the resize breakpoint.
func Render(root, focused string, narrow bool, width int) string {
	if width < 10 {
		return ""
	}

	left := rootStyle.Render(" " + render.Truncate(root, width/2))

	hint := "tab: focus · 1-4: panels · q: quit"
	if narrow {
		hint = "narrow · resize disabled"
	}
	right := focusStyle.Render(focused) + "  " + hintStyle.Render(hint) + " "

	return render.Row(left, right, width)
}
