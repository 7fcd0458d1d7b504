package layout

import "strconv"

// Enforcer mirrors layout state to durable storage and corrects state that
// becomes invalid after a collapse toggle or a breakpoint crossing. Storage
// failures are swallowed: persistence is fire-and-forget and the in-memory
// state stays authoritative.
type Enforcer struct {
	storage Storage
	dims    *DimensionStore
	flags   *CollapseStore

	container func() int

	// conversationRestore holds the conversation width recorded just before
	// the main panel auto-collapsed. nil when no restore is pending.
	conversationRestore *int
}

// Restore loads the pending conversation-restore slot from storage so the
// collapse/restore cycle survives a process restart.
func (e *Enforcer) Restore() {
	if e.storage == nil {
		return
	}
	raw, err := e.storage.Get(keyConversationRestore)
	if err != nil || raw == "" {
		return
	}
	if w, parseErr := strconv.Atoi(raw); parseErr == nil {
		e.conversationRestore = &w
	}
}

// persistWidth mirrors the stored width of p to durable storage.
func (e *Enforcer) persistWidth(p Panel) {
	if e.storage == nil {
		return
	}
	key := e.dims.key(p)
	if key == "" {
		return
	}
	_ = e.storage.Set(key, strconv.Itoa(e.dims.Width(p)))
}

// persistFlag mirrors the collapse flag of p to durable storage.
func (e *Enforcer) persistFlag(p Panel) {
	if e.storage == nil {
		return
	}
	key := e.flags.key(p)
	if key == "" {
		return
	}
	_ = e.storage.Set(key, strconv.FormatBool(e.flags.Collapsed(p)))
}

// persistFlags mirrors all four collapse flags.
func (e *Enforcer) persistFlags() {
	for _, p := range []Panel{PanelSide, PanelConversation, PanelMain, PanelManager} {
		e.persistFlag(p)
	}
}

// saveConversationRestore records the conversation width about to be lost to
// a main-panel auto-collapse.
func (e *Enforcer) saveConversationRestore(w int) {
	e.conversationRestore = &w
	if e.storage != nil {
		_ = e.storage.Set(keyConversationRestore, strconv.Itoa(w))
	}
}

// restoreConversation puts the conversation panel back to its width from
// before the main panel collapsed, clamped against current container space,
// and clears the slot. Called whenever the main panel transitions from
// collapsed to expanded, whether by drag or by explicit toggle.
func (e *Enforcer) restoreConversation() (restored bool) {
	w := e.takeConversationRestore()
	if w == nil {
		return false
	}

	lo, hi := e.dims.Range(PanelConversation)
	target := *w
	if cw := e.container(); cw > 0 {
		a := Allocate(cw, e.dims.Widths(), e.flags.Flags())
		ceiling := cw - a.Side - a.Manager - a.Divider - MainMinWidth
		target = clamp(target, lo, min(hi, ceiling))
	} else {
		target = clamp(target, lo, hi)
	}

	e.dims.setWidth(PanelConversation, target)
	e.persistWidth(PanelConversation)
	return true
}

func (e *Enforcer) takeConversationRestore() *int {
	w := e.conversationRestore
	e.conversationRestore = nil
	if e.storage != nil {
		_ = e.storage.Remove(keyConversationRestore)
	}
	return w
}

// EnsureWithinBounds re-clamps the conversation, sidebar and manager widths
// against freshly computed availability ceilings. It runs when the sidebar
// or manager expands and when the viewport leaves narrow mode, and writes
// back only the widths that actually changed.
func (e *Enforcer) EnsureWithinBounds() {
	cw := e.container()
	if cw <= 0 {
		return
	}

	if !e.flags.Collapsed(PanelConversation) {
		a := Allocate(cw, e.dims.Widths(), e.flags.Flags())
		ceiling := cw - a.Side - a.Manager - a.Divider
		if !e.flags.Collapsed(PanelMain) {
			ceiling -= MainMinWidth
		}
		e.reclamp(PanelConversation, ceiling)
	}

	if !e.flags.Collapsed(PanelSide) {
		a := Allocate(cw, e.dims.Widths(), e.flags.Flags())
		ceiling := cw - a.Conversation - MainMinWidth - a.Manager - a.Divider
		e.reclamp(PanelSide, ceiling)
	}

	if !e.flags.Collapsed(PanelManager) {
		a := Allocate(cw, e.dims.Widths(), e.flags.Flags())
		ceiling := cw - a.Side - a.Conversation - MainMinWidth - a.Divider
		e.reclamp(PanelManager, ceiling)
	}
}

func (e *Enforcer) reclamp(p Panel, ceiling int) {
	lo, hi := e.dims.Range(p)
	cur := e.dims.Width(p)
	next := clamp(cur, lo, min(hi, ceiling))
	if next == cur {
		return
	}
	e.dims.setWidth(p, next)
	e.persistWidth(p)
}

// StyleVars publishes the current allocation as named style variables: one
// per panel's effective width plus the collapsed-width constants. The view
// layer consumes these instead of recomputing geometry.
func (e *Enforcer) StyleVars() map[string]int {
	a := Allocate(e.container(), e.dims.Widths(), e.flags.Flags())
	return map[string]int{
		VarSideWidth:             a.Side,
		VarConversationWidth:     a.Conversation,
		VarMainWidth:             a.Main,
		VarManagerWidth:          a.Manager,
		VarSideCollapsedWidth:    SideCollapsedWidth,
		VarManagerCollapsedWidth: ManagerCollapsedWidth,
	}
}
