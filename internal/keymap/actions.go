// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit        Action = "quit"
	ActionSwitchFocus Action = "switch_focus"
	ActionHelp        Action = "help"

	// Panel actions
	ActionToggleSidebar      Action = "toggle_sidebar"
	ActionToggleConversation Action = "toggle_conversation"
	ActionToggleMain         Action = "toggle_main"
	ActionToggleManager      Action = "toggle_manager"
	ActionResetLayout        Action = "reset_layout"

	// Navigation actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionPageUp    Action = "page_up"
	ActionPageDown  Action = "page_down"

	// Selection/activation actions
	ActionSelect Action = "select" // enter - open/activate
)
