// Package canvas implements the main content panel.
package canvas

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atelier-sh/atelier/internal/ui"
	"github.com/atelier-sh/atelier/internal/ui/render"
	"github.com/atelier-sh/atelier/internal/ui/styles"
)

// Model represents the canvas state.
type Model struct {
	ui.Base
	document string // active document name, empty when nothing open
	section  string // workspace section driving the canvas content
}

// New creates a new canvas model.
func New() Model {
	return Model{section: "Files"}
}

// SetDocument sets the active document name.
func (m *Model) SetDocument(name string) { m.document = name }

// Document returns the active document name.
func (m Model) Document() string { return m.document }

// SetSection sets the workspace section shown in the header.
func (m *Model) SetSection(section string) { m.section = section }

// Update handles canvas input. The canvas is display-only for now.
func (m Model) Update(_ tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

// View renders the canvas.
func (m Model) View() string {
	width, height := m.Size()
	if width < ui.MinRenderWidth || height == 0 {
		return ""
	}

	innerWidth := width - ui.BorderHeight

	title := m.section
	if m.document != "" {
		title += " · " + m.document
	}
	header := styles.T().S().Title.Render(render.TruncateAndPad(title, innerWidth))
	separator := render.Separator(innerWidth)

	body := m.renderBody(innerWidth, height-ui.PanelOverhead)

	content := header + "\n" + separator + "\n" + body

	return styles.PanelStyle(m.IsFocused()).
		Width(innerWidth).
		Render(content)
}

func (m Model) renderBody(width, height int) string {
	if height <= 0 {
		return ""
	}
	text := "nothing open"
	if m.document != "" {
		text = m.document
	}
	return lipgloss.Place(width, height,
		lipgloss.Center, lipgloss.Center,
		styles.T().S().Subtle.Render(text))
}
