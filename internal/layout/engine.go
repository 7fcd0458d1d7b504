package layout

// ChangeKind classifies a state change notification.
type ChangeKind int

const (
	// ChangeWidth means a stored panel width changed.
	ChangeWidth ChangeKind = iota
	// ChangeCollapse means a collapse flag flipped.
	ChangeCollapse
	// ChangeViewport means the container width or narrow mode changed.
	ChangeViewport
)

// Change describes one committed state change. Panel is meaningful for
// ChangeWidth and ChangeCollapse.
type Change struct {
	Kind  ChangeKind
	Panel Panel
}

// Engine composes the dimension and collapse stores, the space allocator,
// the resize controller and the bounds enforcer into one state surface for
// the view layer. All operations are synchronous; the engine is meant to be
// driven from a single event loop.
type Engine struct {
	dims       *DimensionStore
	flags      *CollapseStore
	enforcer   *Enforcer
	controller *Controller

	containerWidth int
	narrow         bool

	listeners []func(Change)
}

// New restores persisted layout state from st and returns a ready engine.
// st may be nil, in which case everything starts at defaults and persistence
// is disabled.
func New(st Storage) *Engine {
	e := &Engine{
		dims:  NewDimensionStore(),
		flags: NewCollapseStore(),
		// Container width is unknown until the first viewport measurement;
		// geometry-dependent operations no-op until then.
		narrow: true,
	}
	e.enforcer = &Enforcer{
		storage:   st,
		dims:      e.dims,
		flags:     e.flags,
		container: e.ContainerWidth,
	}
	e.controller = &Controller{engine: e}

	e.dims.Restore(st)
	e.flags.Restore(st)
	e.enforcer.Restore()
	return e
}

// Subscribe registers fn to be called after every committed change.
func (e *Engine) Subscribe(fn func(Change)) {
	e.listeners = append(e.listeners, fn)
}

func (e *Engine) notify(c Change) {
	for _, fn := range e.listeners {
		fn(c)
	}
}

// SetContainerWidth records a fresh viewport measurement and recomputes
// narrow mode. Leaving narrow mode triggers the corrective bounds pass;
// entering it cancels any live drag session.
func (e *Engine) SetContainerWidth(w int) {
	if w < 0 {
		w = 0
	}
	wasNarrow := e.narrow
	e.containerWidth = w
	e.narrow = w < NarrowBreakpoint

	if e.narrow && e.controller.Active() {
		e.controller.Cancel()
	}
	if wasNarrow && !e.narrow {
		e.enforcer.EnsureWithinBounds()
	}
	e.notify(Change{Kind: ChangeViewport})
}

// ContainerWidth returns the last viewport measurement, zero when unknown.
func (e *Engine) ContainerWidth() int {
	return e.containerWidth
}

// Narrow reports whether the viewport is below the narrow breakpoint.
// While narrow, drag-resize is disabled entirely.
func (e *Engine) Narrow() bool {
	return e.narrow
}

// Width returns the stored width of p (zero for the main panel).
func (e *Engine) Width(p Panel) int {
	return e.dims.Width(p)
}

// Collapsed reports whether p is collapsed.
func (e *Engine) Collapsed(p Panel) bool {
	return e.flags.Collapsed(p)
}

// Allocation derives the current space allocation.
func (e *Engine) Allocation() Allocation {
	return Allocate(e.containerWidth, e.dims.Widths(), e.flags.Flags())
}

// StyleVars publishes the presentation-layer variables.
func (e *Engine) StyleVars() map[string]int {
	return e.enforcer.StyleVars()
}

// Toggle flips the collapse flag of p.
func (e *Engine) Toggle(p Panel) {
	e.commitCollapsed(p, !e.flags.Collapsed(p))
}

// SetCollapsed sets the collapse flag of p explicitly.
func (e *Engine) SetCollapsed(p Panel, collapsed bool) {
	e.commitCollapsed(p, collapsed)
}

// BeginResize starts a drag session for target at pointer position x.
func (e *Engine) BeginResize(target Panel, x int) bool {
	return e.controller.Begin(target, x)
}

// Drag applies a pointer-move to the live drag session, if any.
func (e *Engine) Drag(x int) {
	e.controller.Drag(x)
}

// EndResize finishes the live drag session. Cancel notifications are
// delivered here too; they are handled identically to pointer-up.
func (e *Engine) EndResize() {
	e.controller.End()
}

// Dragging reports whether a drag session is live.
func (e *Engine) Dragging() bool {
	return e.controller.Active()
}

// DragTarget returns the panel owning the live drag session.
func (e *Engine) DragTarget() (Panel, bool) {
	return e.controller.Target()
}

// commitWidth writes an already-clamped width, mirrors it to storage and
// notifies listeners. No-op when the value is unchanged.
func (e *Engine) commitWidth(p Panel, w int) {
	if e.dims.Width(p) == w {
		return
	}
	e.dims.setWidth(p, w)
	e.enforcer.persistWidth(p)
	e.notify(Change{Kind: ChangeWidth, Panel: p})
}

// commitCollapsed flips a collapse flag and runs the coupled side effects:
// expanding the main panel restores the pre-collapse conversation width, and
// expanding the sidebar or manager re-runs the bounds pass since their full
// width re-enters the equation.
func (e *Engine) commitCollapsed(p Panel, collapsed bool) {
	if e.flags.Collapsed(p) == collapsed {
		return
	}
	e.flags.set(p, collapsed)
	e.enforcer.persistFlag(p)

	if !collapsed {
		switch p {
		case PanelMain:
			e.enforcer.restoreConversation()
		case PanelSide, PanelManager:
			e.enforcer.EnsureWithinBounds()
		}
	}
	e.notify(Change{Kind: ChangeCollapse, Panel: p})
}
