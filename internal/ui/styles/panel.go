package styles

import "github.com/charmbracelet/lipgloss"

var panelBase = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder())

// PanelStyle returns the bordered panel frame, tinted by focus state.
func PanelStyle(focused bool) lipgloss.Style {
	if focused {
		return panelBase.BorderForeground(T().BorderFocus)
	}
	return panelBase.BorderForeground(T().Border)
}
