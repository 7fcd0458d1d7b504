// Package help renders a scrollable keybinding reference popup.
package help

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/atelier-sh/atelier/internal/keymap"
	"github.com/atelier-sh/atelier/internal/ui"
	"github.com/atelier-sh/atelier/internal/ui/styles"
)

// sectionOrder defines the display order of binding contexts.
var sectionOrder = []string{
	"global",
	"layout",
	"navigator",
}

// sectionLabels maps context names to display labels.
var sectionLabels = map[string]string{
	"global":    "Global",
	"layout":    "Layout",
	"navigator": "Navigation",
}

// Model holds the state for the help popup.
type Model struct {
	ui.Base
	bindings []keymap.Binding
	offset   int
}

// New creates a help popup listing every registered binding.
func New() Model {
	var bindings []keymap.Binding
	for _, ctx := range sectionOrder {
		bindings = append(bindings, keymap.ByContext(ctx)...)
	}
	return Model{bindings: bindings}
}

// HandleKey processes a key while the popup is open and reports whether
// the popup should close.
func (m *Model) HandleKey(key string) bool {
	switch key {
	case "?", "esc", "q":
		m.offset = 0
		return true
	case "j", "down":
		if m.offset < m.maxScroll() {
			m.offset++
		}
	case "k", "up":
		if m.offset > 0 {
			m.offset--
		}
	}
	return false
}

// View renders the bordered popup.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	lines := strings.Split(m.buildContent(), "\n")

	// Width comes from the full content so scrolling never resizes the box.
	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}

	visible := m.visibleLines()
	start := min(m.offset, len(lines))
	end := min(start+visible, len(lines))
	window := lines[start:end]

	for i, line := range window {
		if w := lipgloss.Width(line); w < maxWidth {
			window[i] = line + strings.Repeat(" ", maxWidth-w)
		}
	}

	s := styles.T().S()
	var body strings.Builder
	body.WriteString(s.Title.Render("Help"))
	body.WriteString("\n\n")
	body.WriteString(strings.Join(window, "\n"))
	body.WriteString("\n\n")
	body.WriteString(s.Subtle.Render(m.footer()))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().BorderFocus).
		Padding(0, 2).
		Render(body.String())
}

func (m Model) buildContent() string {
	s := styles.T().S()
	keyStyle := s.Active
	sepStyle := s.Subtle
	headerStyle := lipgloss.NewStyle().Foreground(styles.T().Secondary).Bold(true)

	maxKeyWidth := 0
	for _, b := range m.bindings {
		if w := len(strings.Join(b.Keys, ", ")); w > maxKeyWidth {
			maxKeyWidth = w
		}
	}

	var sb strings.Builder
	currentContext := ""
	for _, b := range m.bindings {
		if b.Context != currentContext {
			if currentContext != "" {
				sb.WriteString("\n")
			}
			label := sectionLabels[b.Context]
			if label == "" {
				label = b.Context
			}
			sb.WriteString(headerStyle.Render(label))
			sb.WriteString("\n")
			sb.WriteString(sepStyle.Render(strings.Repeat("─", maxKeyWidth+24)))
			sb.WriteString("\n")
			currentContext = b.Context
		}

		keyStr := strings.Join(b.Keys, ", ")
		sb.WriteString(keyStyle.Render(keyStr + strings.Repeat(" ", maxKeyWidth-len(keyStr))))
		sb.WriteString("  ")
		sb.WriteString(s.Base.Render(b.Description))
		sb.WriteString("\n")
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

func (m Model) footer() string {
	if m.totalLines() <= m.visibleLines() {
		return "?/esc close"
	}
	return "j/k scroll · ?/esc close"
}

// visibleLines leaves room for the popup chrome (title, footer, border).
func (m Model) visibleLines() int {
	return max(m.Height()-8, 5)
}

func (m Model) totalLines() int {
	return strings.Count(m.buildContent(), "\n") + 1
}

func (m Model) maxScroll() int {
	total := m.totalLines()
	visible := m.visibleLines()
	if total <= visible {
		return 0
	}
	return total - visible
}
