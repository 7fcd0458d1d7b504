// Package keymap defines key bindings for the application.
package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "layout", "navigator"
}

// Bindings contains all key bindings, used for dispatch and help generation.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit application", "global"},
	{ActionSwitchFocus, []string{"tab"}, "Switch focus", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},

	// Layout
	{ActionToggleSidebar, []string{"1"}, "Toggle sidebar", "layout"},
	{ActionToggleConversation, []string{"2"}, "Toggle conversation panel", "layout"},
	{ActionToggleMain, []string{"3"}, "Toggle main panel", "layout"},
	{ActionToggleManager, []string{"4"}, "Toggle asset manager", "layout"},
	{ActionResetLayout, []string{"0"}, "Reset layout to defaults", "layout"},

	// Navigator
	{ActionMoveUp, []string{"k", "up"}, "Move up", "navigator"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "navigator"},
	{ActionJumpStart, []string{"g", "home"}, "First item", "navigator"},
	{ActionJumpEnd, []string{"G", "end"}, "Last item", "navigator"},
	{ActionPageUp, []string{"pgup"}, "Page up", "navigator"},
	{ActionPageDown, []string{"pgdown"}, "Page down", "navigator"},
	{ActionSelect, []string{"enter"}, "Open item", "navigator"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
