// internal/app/view.go
package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/atelier-sh/atelier/internal/layout"
	"github.com/atelier-sh/atelier/internal/ui/divider"
	"github.com/atelier-sh/atelier/internal/ui/overlay"
	"github.com/atelier-sh/atelier/internal/ui/statusbar"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	cl := m.cellWidths()
	height := m.contentHeight()

	dragTarget, dragging := m.Engine.DragTarget()
	gutterActive := dragging && dragTarget == layout.PanelConversation

	parts := make([]string, 0, 5)
	if cl.Side > 0 {
		parts = append(parts, m.Sidebar.View())
	}
	if cl.Conversation > 0 {
		parts = append(parts, m.Chat.View())
	}
	parts = append(parts, divider.Render(cl.Divider, height, gutterActive))
	if cl.Main > 0 {
		parts = append(parts, m.Canvas.View())
	}
	if cl.Manager > 0 {
		parts = append(parts, m.Assets.View())
	}

	panels := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	status := statusbar.Render(m.WorkspaceRoot, m.Focus.String(), m.Engine.Narrow(), m.Width)

	view := lipgloss.JoinVertical(lipgloss.Left, panels, status)
	if m.ShowHelp {
		popup := overlay.Center(m.Help.View(), m.Width, height)
		view = overlay.Compose(view, popup, m.Width)
	}
	return view
}
