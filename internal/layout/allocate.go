package layout

// Allocation is the concrete space given to each region. The five fields
// always sum to the container width the allocation was derived from; Main
// absorbs the remainder and may go negative when the container is too small
// to honor the other panels.
type Allocation struct {
	Side         int
	Conversation int
	Main         int
	Manager      int
	Divider      int
}

// Allocate maps a container width plus the current widths and collapse flags
// to a concrete allocation. It is a pure function shared by rendering and by
// the resize-time clamping math, so both always agree.
//
// A container width of zero or less yields the zero allocation; geometry is
// unknown and every dependent computation becomes a no-op.
func Allocate(containerWidth int, w Widths, f Flags) Allocation {
	if containerWidth <= 0 {
		return Allocation{}
	}

	a := Allocation{Divider: DividerWidth * ActiveDividers}

	if f.Side {
		a.Side = SideCollapsedWidth
	} else {
		a.Side = w.Side
	}

	if !f.Conversation {
		a.Conversation = w.Conversation
	}

	if f.Manager {
		a.Manager = ManagerCollapsedWidth
	} else {
		a.Manager = w.Manager
	}

	a.Main = containerWidth - a.Side - a.Conversation - a.Manager - a.Divider
	return a
}

// Total returns the sum of all five regions.
func (a Allocation) Total() int {
	return a.Side + a.Conversation + a.Main + a.Manager + a.Divider
}
