// Package sidebar implements the left navigation panel.
package sidebar

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atelier-sh/atelier/internal/ui"
	"github.com/atelier-sh/atelier/internal/ui/list"
	"github.com/atelier-sh/atelier/internal/ui/render"
	"github.com/atelier-sh/atelier/internal/ui/styles"
)

// SectionSelectedMsg is sent when the user activates a section.
type SectionSelectedMsg struct {
	Section string
}

// Section is one navigation entry.
type Section struct {
	Name string
	Icon string // single-cell glyph shown in collapsed mode
}

// defaultSections are the workspace areas reachable from the sidebar.
var defaultSections = []Section{
	{"Files", "F"},
	{"Search", "/"},
	{"Sessions", "S"},
	{"History", "H"},
	{"Settings", "*"},
}

// Model represents the sidebar state.
type Model struct {
	list      list.Model[Section]
	collapsed bool
}

// New creates a new sidebar model.
func New() Model {
	l := list.New[Section](ui.ScrollMargin)
	l.SetItems(defaultSections)
	return Model{list: l}
}

func (m *Model) SetFocused(focused bool) { m.list.SetFocused(focused) }
func (m Model) IsFocused() bool          { return m.list.IsFocused() }

func (m *Model) SetSize(width, height int) { m.list.SetSize(width, height) }

// SetCollapsed switches between the full list and the icon strip.
func (m *Model) SetCollapsed(collapsed bool) { m.collapsed = collapsed }

// Selected returns the active section name.
func (m Model) Selected() string {
	s, ok := m.list.Selected()
	if !ok {
		return ""
	}
	return s.Name
}

// Update handles navigation within the sidebar.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.collapsed {
		return m, nil
	}
	result := m.list.Update(msg)
	if result.Action == list.ActionEnter {
		section := m.list.Items()[result.Index].Name
		return m, func() tea.Msg {
			return SectionSelectedMsg{Section: section}
		}
	}
	return m, nil
}

// View renders the sidebar.
func (m Model) View() string {
	width, height := m.list.Size()
	if width < ui.MinRenderWidth || height == 0 {
		return ""
	}

	innerWidth := width - ui.BorderHeight

	if m.collapsed {
		return m.viewCollapsed(innerWidth, height)
	}

	header := styles.T().S().Title.Render(render.TruncateAndPad("Atelier", innerWidth))
	separator := render.Separator(innerWidth)

	var b strings.Builder
	listHeight := m.list.ListHeight(ui.PanelOverhead)
	start, end := m.list.VisibleRange(ui.PanelOverhead)
	items := m.list.Items()
	for i := start; i < end; i++ {
		line := render.TruncateAndPad(" "+items[i].Name, innerWidth)
		if i == m.list.SelectedIndex() && m.list.IsFocused() {
			line = styles.T().S().Cursor.Render(line)
		} else {
			line = styles.T().S().Base.Render(line)
		}
		b.WriteString(line)
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	for i := end - start; i < listHeight; i++ {
		b.WriteString("\n")
		b.WriteString(render.EmptyLine(innerWidth))
	}

	content := header + "\n" + separator + "\n" + b.String()

	return styles.PanelStyle(m.list.IsFocused()).
		Width(innerWidth).
		Render(content)
}

// viewCollapsed renders one icon per section, selection highlighted.
func (m Model) viewCollapsed(innerWidth, height int) string {
	var b strings.Builder
	items := m.list.Items()
	for i, s := range items {
		line := render.TruncateAndPad(s.Icon, innerWidth)
		if i == m.list.SelectedIndex() {
			line = styles.T().S().Active.Render(line)
		} else {
			line = styles.T().S().Muted.Render(line)
		}
		b.WriteString(line)
		if i < len(items)-1 {
			b.WriteString("\n")
		}
	}
	for i := len(items); i < height-ui.BorderHeight; i++ {
		b.WriteString("\n")
		b.WriteString(render.EmptyLine(innerWidth))
	}

	return styles.PanelStyle(m.list.IsFocused()).
		Width(innerWidth).
		Render(b.String())
}
