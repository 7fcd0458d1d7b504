// internal/app/cells.go
package app

import (
	"github.com/atelier-sh/atelier/internal/layout"
	"github.com/atelier-sh/atelier/internal/ui/statusbar"
)

// cellLayout holds the column width of each region in terminal cells. The
// engine allocates in layout units; cells are derived by integer division
// with the main panel absorbing the rounding remainder.
type cellLayout struct {
	Side         int
	Conversation int
	Main         int
	Manager      int
	Divider      int
}

// cellWidths converts the current unit allocation into terminal columns.
func (m Model) cellWidths() cellLayout {
	if m.Width <= 0 {
		return cellLayout{}
	}

	a := m.Engine.Allocation()
	cl := cellLayout{
		Side:         a.Side / m.UnitsPerCell,
		Conversation: a.Conversation / m.UnitsPerCell,
		Manager:      a.Manager / m.UnitsPerCell,
		Divider:      max(a.Divider/m.UnitsPerCell, 1),
	}
	cl.Main = max(m.Width-cl.Side-cl.Conversation-cl.Manager-cl.Divider, 0)
	return cl
}

// contentHeight is the vertical space left for panels after the status bar.
func (m Model) contentHeight() int {
	return max(m.Height-statusbar.Height, 0)
}

// toUnits converts a cell coordinate to engine units.
func (m Model) toUnits(cells int) int {
	return cells * m.UnitsPerCell
}

// hitTarget maps a pointer column to the resize target whose edge it hits.
// The sidebar and manager panels are grabbed at their inner edge; the
// conversation panel owns the dedicated gutter between it and the canvas.
func (m Model) hitTarget(x int) (layout.Panel, bool) {
	cl := m.cellWidths()

	sideEdge := cl.Side
	if x == sideEdge-1 || x == sideEdge {
		return layout.PanelSide, true
	}

	gutterStart := cl.Side + cl.Conversation
	if x >= gutterStart && x < gutterStart+cl.Divider {
		return layout.PanelConversation, true
	}

	managerStart := m.Width - cl.Manager
	if x == managerStart-1 || x == managerStart {
		return layout.PanelManager, true
	}

	return 0, false
}

// syncPaneSizes pushes the current allocation into the pane models.
func (m *Model) syncPaneSizes() {
	cl := m.cellWidths()
	height := m.contentHeight()

	m.Sidebar.SetSize(cl.Side, height)
	m.Sidebar.SetCollapsed(m.Engine.Collapsed(layout.PanelSide))

	m.Chat.SetSize(cl.Conversation, height)

	m.Canvas.SetSize(cl.Main, height)

	m.Assets.SetSize(cl.Manager, height)
	m.Assets.SetCollapsed(m.Engine.Collapsed(layout.PanelManager))

	m.Help.SetSize(m.Width, height)
}
