// Package layout implements the adaptive multi-panel layout engine: panel
// widths, collapse flags, space allocation, drag-resize and persistence for
// the four-panel studio shell (sidebar, conversation, canvas, assets).
//
// All dimensions are in layout units. The shell maps terminal cells to units
// (see internal/app); the engine itself is unit-agnostic.
package layout

// Panel identifies one of the four layout regions.
type Panel int

const (
	// PanelSide is the left navigation panel.
	PanelSide Panel = iota
	// PanelConversation is the chat panel, left-anchored next to the sidebar.
	PanelConversation
	// PanelMain is the flexible canvas region. It has no stored width; it
	// always receives the remaining space.
	PanelMain
	// PanelManager is the right-anchored asset manager panel.
	PanelManager
)

// String returns the panel name used in logs and storage keys.
func (p Panel) String() string {
	switch p {
	case PanelSide:
		return "sidebar"
	case PanelConversation:
		return "conversation"
	case PanelMain:
		return "main"
	case PanelManager:
		return "manager"
	default:
		return "unknown"
	}
}

// Width ranges and defaults. These values are part of the persisted-state
// contract; changing them invalidates stored layouts.
const (
	SideMinWidth       = 240
	SideMaxWidth       = 420
	SideDefaultWidth   = 288
	SideCollapsedWidth = 72

	ConversationMinWidth     = 320
	ConversationMaxWidth     = 720
	ConversationDefaultWidth = 420

	MainMinWidth = 480

	ManagerMinWidth       = 320
	ManagerMaxWidth       = 600
	ManagerDefaultWidth   = 440
	ManagerCollapsedWidth = 72
)

const (
	// DividerWidth is the space reserved for one divider affordance.
	DividerWidth = 10

	// ActiveDividers is the number of draggable dividers that reserve space.
	// Currently only the conversation/main divider does.
	ActiveDividers = 1

	// NarrowBreakpoint is the container width below which the layout switches
	// to narrow mode. While narrow, drag-resize is disabled entirely.
	NarrowBreakpoint = 1024

	// CollapseThreshold is the distance from a panel's minimum width within
	// which a drag gesture snaps the panel to its collapsed state.
	CollapseThreshold = 40
)

// Durable storage keys, one per persisted field.
const (
	keySideWidth         = "sidebar_width"
	keyConversationWidth = "conversation_width"
	keyManagerWidth      = "manager_width"

	keySideCollapsed         = "sidebar_collapsed"
	keyConversationCollapsed = "conversation_collapsed"
	keyMainCollapsed         = "main_collapsed"
	keyManagerCollapsed      = "manager_collapsed"

	// keyConversationRestore holds the conversation width recorded just
	// before the main panel auto-collapsed. Cleared when the main panel
	// expands again.
	keyConversationRestore = "conversation_width_before_main_collapse"
)

// Style variable names published to the presentation layer.
const (
	VarSideWidth         = "side-width"
	VarConversationWidth = "conversation-width"
	VarMainWidth         = "main-width"
	VarManagerWidth      = "manager-width"

	VarSideCollapsedWidth    = "side-collapsed-width"
	VarManagerCollapsedWidth = "manager-collapsed-width"
)

// clamp constrains v to [lo, hi]. When hi < lo the lower bound wins: a
// shrinking container never pushes a panel below its minimum width.
func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
