// internal/app/app.go
package app

import (
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atelier-sh/atelier/internal/config"
	"github.com/atelier-sh/atelier/internal/keymap"
	"github.com/atelier-sh/atelier/internal/layout"
	"github.com/atelier-sh/atelier/internal/state"
	"github.com/atelier-sh/atelier/internal/ui/assets"
	"github.com/atelier-sh/atelier/internal/ui/canvas"
	"github.com/atelier-sh/atelier/internal/ui/chat"
	"github.com/atelier-sh/atelier/internal/ui/help"
	"github.com/atelier-sh/atelier/internal/ui/sidebar"
)

// Model is the root application model containing all state.
type Model struct {
	Engine   *layout.Engine
	Sidebar  sidebar.Model
	Chat     chat.Model
	Canvas   canvas.Model
	Assets   assets.Model
	Help     help.Model
	ShowHelp bool
	Focus    layout.Panel
	StateMgr state.Interface
	Resolver *keymap.Resolver

	WorkspaceRoot string
	UnitsPerCell  int
	MouseEnabled  bool
	Width         int
	Height        int
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// New creates a new application model from configuration.
func New(cfg *config.Config, stateMgr state.Interface) (Model, error) {
	// Determine workspace root: saved state > config > cwd
	root := cfg.Workspace
	focus := layout.PanelMain

	if ws, err := stateMgr.GetWorkspace(); err == nil && ws != nil {
		if _, statErr := os.Stat(ws.Root); statErr == nil {
			root = ws.Root
		}
		if p, ok := panelByName(ws.FocusedPanel); ok {
			focus = p
		}
	}

	if root == "" {
		var err error
		root, err = os.Getwd()
		if err != nil {
			return Model{}, err
		}
	}

	m := Model{
		Engine:        layout.New(stateMgr),
		Sidebar:       sidebar.New(),
		Chat:          chat.New(),
		Canvas:        canvas.New(),
		Assets:        assets.New(),
		Help:          help.New(),
		Focus:         focus,
		StateMgr:      stateMgr,
		Resolver:      keymap.NewResolver(keymap.Bindings),
		WorkspaceRoot: root,
		UnitsPerCell:  cfg.GetUnitsPerCell(),
		MouseEnabled:  cfg.MouseEnabled(),
	}

	m.Assets.SetAssets(scanAssets(root))
	m.applyFocus()
	return m, nil
}

// panelByName maps a persisted panel name back to its identity.
func panelByName(name string) (layout.Panel, bool) {
	for _, p := range []layout.Panel{
		layout.PanelSide, layout.PanelConversation, layout.PanelMain, layout.PanelManager,
	} {
		if p.String() == name {
			return p, true
		}
	}
	return 0, false
}

// scanAssets lists the regular files at the workspace root.
func scanAssets(root string) []assets.Asset {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}

	var result []assets.Asset
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		result = append(result, assets.Asset{
			Name: e.Name(),
			Kind: strings.TrimPrefix(filepath.Ext(e.Name()), "."),
			Size: uint64(info.Size()),
		})
	}
	return result
}

// applyFocus propagates the focus target to every pane.
func (m *Model) applyFocus() {
	m.Sidebar.SetFocused(m.Focus == layout.PanelSide)
	m.Chat.SetFocused(m.Focus == layout.PanelConversation)
	m.Canvas.SetFocused(m.Focus == layout.PanelMain)
	m.Assets.SetFocused(m.Focus == layout.PanelManager)
}

// cycleFocus advances focus to the next expanded panel.
func (m *Model) cycleFocus() {
	order := []layout.Panel{
		layout.PanelSide, layout.PanelConversation, layout.PanelMain, layout.PanelManager,
	}
	start := 0
	for i, p := range order {
		if p == m.Focus {
			start = i
			break
		}
	}
	for i := 1; i <= len(order); i++ {
		next := order[(start+i)%len(order)]
		if !m.Engine.Collapsed(next) {
			m.Focus = next
			break
		}
	}
	m.applyFocus()
	m.saveWorkspace()
}

func (m *Model) saveWorkspace() {
	m.StateMgr.SaveWorkspace(state.WorkspaceState{
		Root:         m.WorkspaceRoot,
		FocusedPanel: m.Focus.String(),
	})
}
