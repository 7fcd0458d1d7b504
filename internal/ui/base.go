package ui

// Base carries the size and focus state every pane needs. Pane models embed
// it and inherit the setters the root model drives on resize and focus
// changes.
type Base struct {
	width   int
	height  int
	focused bool
}

// SetSize records the pane dimensions in terminal cells.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// SetFocused records whether the pane currently has input focus.
func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

// IsFocused reports whether the pane has input focus.
func (b Base) IsFocused() bool {
	return b.focused
}

// Width returns the pane width in cells.
func (b Base) Width() int {
	return b.width
}

// Height returns the pane height in cells.
func (b Base) Height() int {
	return b.height
}

// Size returns both pane dimensions.
func (b Base) Size() (width, height int) {
	return b.width, b.height
}

// ListHeight is the rows left for list content once overhead rows (border,
// header, separator) are subtracted.
func (b Base) ListHeight(overhead int) int {
	return b.height - overhead
}
