// Package assets implements the right-hand asset manager panel.
package assets

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/atelier-sh/atelier/internal/ui"
	"github.com/atelier-sh/atelier/internal/ui/list"
	"github.com/atelier-sh/atelier/internal/ui/render"
	"github.com/atelier-sh/atelier/internal/ui/styles"
)

// OpenAssetMsg is sent when the user activates an asset.
type OpenAssetMsg struct {
	Name string
}

// Asset is one entry in the manager panel.
type Asset struct {
	Name string
	Kind string // "image", "data", "doc", ...
	Size uint64 // bytes
}

// Model represents the asset manager state.
type Model struct {
	list      list.Model[Asset]
	collapsed bool
}

// New creates a new asset manager model.
func New() Model {
	return Model{list: list.New[Asset](ui.ScrollMargin)}
}

func (m *Model) SetFocused(focused bool) { m.list.SetFocused(focused) }
func (m Model) IsFocused() bool          { return m.list.IsFocused() }

func (m *Model) SetSize(width, height int) { m.list.SetSize(width, height) }

// SetCollapsed switches between the full list and the count strip.
func (m *Model) SetCollapsed(collapsed bool) { m.collapsed = collapsed }

// SetAssets replaces the asset list.
func (m *Model) SetAssets(assets []Asset) { m.list.SetItems(assets) }

// Len returns the number of assets.
func (m Model) Len() int { return m.list.Len() }

// Update handles navigation within the asset list.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.collapsed {
		return m, nil
	}
	result := m.list.Update(msg)
	if result.Action == list.ActionEnter {
		name := m.list.Items()[result.Index].Name
		return m, func() tea.Msg {
			return OpenAssetMsg{Name: name}
		}
	}
	return m, nil
}

// View renders the asset manager.
func (m Model) View() string {
	width, height := m.list.Size()
	if width < ui.MinRenderWidth || height == 0 {
		return ""
	}

	innerWidth := width - ui.BorderHeight

	if m.collapsed {
		return m.viewCollapsed(innerWidth, height)
	}

	title := render.TruncateAndPad("Assets", innerWidth)
	header := styles.T().S().Title.Render(title)
	separator := render.Separator(innerWidth)

	var b strings.Builder
	listHeight := m.list.ListHeight(ui.PanelOverhead)
	start, end := m.list.VisibleRange(ui.PanelOverhead)
	items := m.list.Items()
	for i := start; i < end; i++ {
		b.WriteString(m.renderAsset(items[i], i, innerWidth))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	if m.list.Len() == 0 {
		b.WriteString(styles.T().S().Subtle.Render(render.TruncateAndPad(" no assets", innerWidth)))
	}
	for i := max(end-start, 1); i < listHeight; i++ {
		b.WriteString("\n")
		b.WriteString(render.EmptyLine(innerWidth))
	}

	content := header + "\n" + separator + "\n" + b.String()

	return styles.PanelStyle(m.list.IsFocused()).
		Width(innerWidth).
		Render(content)
}

// renderAsset formats one list row: name left, human-readable size right.
func (m Model) renderAsset(a Asset, index, innerWidth int) string {
	size := humanize.Bytes(a.Size)
	nameWidth := innerWidth - len(size) - 2
	row := render.Row(" "+render.Truncate(a.Name, nameWidth), size+" ", innerWidth)
	if index == m.list.SelectedIndex() && m.list.IsFocused() {
		return styles.T().S().Cursor.Render(row)
	}
	return styles.T().S().Base.Render(row)
}

// viewCollapsed renders just the asset count in the narrow strip.
func (m Model) viewCollapsed(innerWidth, height int) string {
	var b strings.Builder
	count := humanize.Comma(int64(m.list.Len()))
	b.WriteString(styles.T().S().Muted.Render(render.TruncateAndPad(count, innerWidth)))
	for i := 1; i < height-ui.BorderHeight; i++ {
		b.WriteString("\n")
		b.WriteString(render.EmptyLine(innerWidth))
	}

	return styles.PanelStyle(m.list.IsFocused()).
		Width(innerWidth).
		Render(b.String())
}
