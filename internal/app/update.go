// internal/app/update.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atelier-sh/atelier/internal/keymap"
	"github.com/atelier-sh/atelier/internal/layout"
	"github.com/atelier-sh/atelier/internal/ui/assets"
	"github.com/atelier-sh/atelier/internal/ui/sidebar"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case sidebar.SectionSelectedMsg:
		m.Canvas.SetSection(msg.Section)
		return m, nil

	case assets.OpenAssetMsg:
		m.Canvas.SetDocument(msg.Name)
		return m, nil
	}

	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m.Engine.SetContainerWidth(m.toUnits(msg.Width))
	m.syncPaneSizes()
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.ShowHelp {
		m.ShowHelp = !m.Help.HandleKey(msg.String())
		return m, nil
	}

	switch m.Resolver.Resolve(msg.String()) {
	case keymap.ActionQuit:
		m.saveWorkspace()
		return m, tea.Quit

	case keymap.ActionSwitchFocus:
		m.cycleFocus()
		return m, nil

	case keymap.ActionToggleSidebar:
		return m.togglePanel(layout.PanelSide)

	case keymap.ActionToggleConversation:
		return m.togglePanel(layout.PanelConversation)

	case keymap.ActionToggleMain:
		return m.togglePanel(layout.PanelMain)

	case keymap.ActionToggleManager:
		return m.togglePanel(layout.PanelManager)

	case keymap.ActionResetLayout:
		return m.resetLayout()

	case keymap.ActionHelp:
		m.ShowHelp = true
		return m, nil
	}

	// Unresolved keys go to the focused pane
	var cmd tea.Cmd
	switch m.Focus {
	case layout.PanelSide:
		m.Sidebar, cmd = m.Sidebar.Update(msg)
	case layout.PanelConversation:
		m.Chat, cmd = m.Chat.Update(msg)
	case layout.PanelMain:
		m.Canvas, cmd = m.Canvas.Update(msg)
	case layout.PanelManager:
		m.Assets, cmd = m.Assets.Update(msg)
	}
	return m, cmd
}

// togglePanel flips a panel's collapse flag and moves focus off it when it
// disappears under the focus.
func (m Model) togglePanel(p layout.Panel) (tea.Model, tea.Cmd) {
	m.Engine.Toggle(p)
	if m.Engine.Collapsed(p) && m.Focus == p {
		m.cycleFocus()
	}
	m.syncPaneSizes()
	return m, nil
}

// resetLayout wipes the persisted layout and rebuilds the engine from
// defaults.
func (m Model) resetLayout() (tea.Model, tea.Cmd) {
	_ = m.StateMgr.ClearLayout()
	m.Engine = layout.New(m.StateMgr)
	m.Engine.SetContainerWidth(m.toUnits(m.Width))
	m.syncPaneSizes()
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.MouseEnabled {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if target, ok := m.hitTarget(msg.X); ok {
			m.Engine.BeginResize(target, m.toUnits(msg.X))
		}

	case tea.MouseActionMotion:
		if m.Engine.Dragging() {
			m.Engine.Drag(m.toUnits(msg.X))
			m.syncPaneSizes()
		}

	case tea.MouseActionRelease:
		if m.Engine.Dragging() {
			m.Engine.EndResize()
			m.syncPaneSizes()
		}
	}

	return m, nil
}
