package layout

// dragSession is the ephemeral state of one divider gesture. It exists from
// pointer-down on a divider until pointer-up or cancel. Only one session can
// be live at a time, which serializes all resize mutations by construction.
type dragSession struct {
	target Panel
	startX int
	start  Widths

	// finished marks a gesture whose target snapped to collapsed; further
	// moves are ignored but the session still owns the pointer until release.
	finished bool
}

// Controller converts pointer gestures into width mutations, including the
// cross-panel collapse/expand side effects and boundary clamping.
type Controller struct {
	engine  *Engine
	session *dragSession
}

// Begin starts a drag session for target at pointer position x. It reports
// whether a session was actually started: drags are refused while the
// viewport is narrow, while another session is live, when geometry is
// unknown, and for targets that are collapsed or not resizable (the main
// panel is the remainder and has no divider of its own).
func (c *Controller) Begin(target Panel, x int) bool {
	if c.session != nil || c.engine.Narrow() || c.engine.ContainerWidth() <= 0 {
		return false
	}
	if target != PanelSide && target != PanelConversation && target != PanelManager {
		return false
	}
	if c.engine.Collapsed(target) {
		// Collapsed panels are expanded via an explicit toggle, not by drag.
		return false
	}
	c.session = &dragSession{
		target: target,
		startX: x,
		start:  c.engine.dims.Widths(),
	}
	return true
}

// Active reports whether a drag session is live.
func (c *Controller) Active() bool {
	return c.session != nil
}

// Target returns the panel owning the live session.
func (c *Controller) Target() (Panel, bool) {
	if c.session == nil {
		return 0, false
	}
	return c.session.target, true
}

// Drag applies a pointer-move at position x to the live session.
func (c *Controller) Drag(x int) {
	sess := c.session
	if sess == nil || sess.finished {
		return
	}
	delta := x - sess.startX
	switch sess.target {
	case PanelSide:
		c.dragSide(sess, delta)
	case PanelConversation:
		c.dragConversation(sess, delta)
	case PanelManager:
		c.dragManager(sess, delta)
	}
}

// End tears the session down and writes the final state to durable storage.
// Pointer-cancel is handled identically so no session can outlive its
// gesture.
func (c *Controller) End() {
	sess := c.session
	if sess == nil {
		return
	}
	c.session = nil
	c.engine.enforcer.persistWidth(sess.target)
	c.engine.enforcer.persistFlags()
}

// Cancel aborts the live session without discarding widths already applied.
// It behaves exactly like End: a cancelled gesture keeps its last state.
func (c *Controller) Cancel() {
	c.End()
}

// dragSide resizes the left-anchored sidebar. The availability ceiling
// reserves the conversation panel's current space, the main panel's minimum,
// the manager panel's current (or collapsed) space and the divider, so the
// main panel never starves while the sidebar grows.
func (c *Controller) dragSide(sess *dragSession, delta int) {
	cw := c.engine.ContainerWidth()
	a := c.engine.Allocation()

	ceiling := cw - a.Conversation - MainMinWidth - a.Manager - a.Divider
	w := clamp(sess.start.Side+delta, SideMinWidth, min(SideMaxWidth, ceiling))
	c.engine.commitWidth(PanelSide, w)
}

// dragConversation resizes the conversation panel and carries the coupling
// with the main panel: dragging far enough right collapses the main panel
// and hands its space to the conversation; dragging back out expands it
// again once there is room.
func (c *Controller) dragConversation(sess *dragSession, delta int) {
	cw := c.engine.ContainerWidth()
	w := sess.start.Conversation + delta

	if w < CollapseThreshold {
		// Snap to collapsed without touching the stored width.
		c.engine.commitCollapsed(PanelConversation, true)
		sess.finished = true
		return
	}

	a := c.engine.Allocation()
	projectedMain := cw - a.Side - w - a.Manager - a.Divider
	mainCollapsed := c.engine.Collapsed(PanelMain)

	if !mainCollapsed && projectedMain < CollapseThreshold {
		// The main panel is about to starve: remember the conversation width
		// so it can be restored later, collapse main, and let the
		// conversation consume everything main vacates.
		c.engine.enforcer.saveConversationRestore(c.engine.dims.Width(PanelConversation))
		c.engine.commitCollapsed(PanelMain, true)
		c.engine.commitWidth(PanelConversation, cw-a.Side-a.Manager-a.Divider)
		return
	}

	if mainCollapsed && projectedMain >= MainMinWidth {
		// The user dragged back out past the point where the main panel
		// fits again. Expanding it triggers the conversation-width restore
		// in the bounds enforcer.
		c.engine.commitCollapsed(PanelMain, false)
		return
	}

	ceiling := cw - a.Side - a.Manager - a.Divider
	if !mainCollapsed {
		ceiling -= MainMinWidth
	}
	c.engine.commitWidth(PanelConversation, clamp(w, ConversationMinWidth, min(ConversationMaxWidth, ceiling)))
}

// dragManager resizes the right-anchored manager panel. The panel grows as
// the pointer moves toward it, so the delta sign is inverted.
func (c *Controller) dragManager(sess *dragSession, delta int) {
	cw := c.engine.ContainerWidth()
	w := sess.start.Manager - delta

	if w < ManagerMinWidth && w <= ManagerCollapsedWidth+CollapseThreshold {
		c.engine.commitCollapsed(PanelManager, true)
		sess.finished = true
		return
	}

	a := c.engine.Allocation()
	ceiling := cw - a.Side - a.Conversation - MainMinWidth - a.Divider
	c.engine.commitWidth(PanelManager, clamp(w, ManagerMinWidth, min(ManagerMaxWidth, ceiling)))
}
