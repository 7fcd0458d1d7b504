// Package cursor tracks a selection and scroll window over a list.
package cursor

// Cursor holds the selected index and the index of the first visible row.
// List length and viewport height are parameters on every call because both
// change as panels resize and items come and go.
type Cursor struct {
	sel    int
	top    int
	margin int // rows kept visible between the selection and the window edge
}

// New returns a cursor that keeps margin rows of context around the selection.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the selected index.
func (c Cursor) Pos() int {
	return c.sel
}

// Offset returns the index of the first visible row.
func (c Cursor) Offset() int {
	return c.top
}

// Move shifts the selection by delta rows and scrolls to keep it visible.
func (c *Cursor) Move(delta, n, height int) {
	if n == 0 {
		return
	}
	c.sel = min(max(c.sel+delta, 0), n-1)
	c.scrollIntoView(n, height)
}

// JumpEnd selects the last row.
func (c *Cursor) JumpEnd(n, height int) {
	if n == 0 {
		return
	}
	c.sel = n - 1
	c.scrollIntoView(n, height)
}

// Reset returns the cursor to the top of the list.
func (c *Cursor) Reset() {
	c.sel = 0
	c.top = 0
}

// EnsureVisible scrolls the window so the selection stays inside it, for use
// after the selection changed outside of Move.
func (c *Cursor) EnsureVisible(n, height int) {
	c.scrollIntoView(n, height)
}

func (c *Cursor) scrollIntoView(n, height int) {
	if n == 0 || height <= 0 {
		return
	}
	if c.sel-c.margin < c.top {
		c.top = max(c.sel-c.margin, 0)
	}
	if c.sel+c.margin >= c.top+height {
		c.top = c.sel + c.margin - height + 1
	}
	c.top = min(max(c.top, 0), max(n-height, 0))
}

// ClampToBounds pulls the selection back into range after the list shrank.
// It reports whether the cursor moved.
func (c *Cursor) ClampToBounds(n int) bool {
	if n == 0 {
		moved := c.sel != 0 || c.top != 0
		c.Reset()
		return moved
	}
	if c.sel > n-1 {
		c.sel = n - 1
		return true
	}
	return false
}

// VisibleRange returns the [start, end) row window to render.
func (c Cursor) VisibleRange(n, height int) (start, end int) {
	if n == 0 || height <= 0 {
		return 0, 0
	}
	return c.top, min(c.top+height, n)
}

// HandleKey applies a navigation key and reports whether it was consumed.
func (c *Cursor) HandleKey(key string, n, height int) bool {
	switch key {
	case "j", "down":
		c.Move(1, n, height)
	case "k", "up":
		c.Move(-1, n, height)
	case "g", "home":
		c.Reset()
	case "G", "end":
		c.JumpEnd(n, height)
	case "pgdown":
		c.Move(height, n, height)
	case "pgup":
		c.Move(-height, n, height)
	default:
		return false
	}
	return true
}
