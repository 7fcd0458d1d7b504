// Package list implements the keyboard-driven selection model shared by the
// sidebar and asset manager panes.
package list

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atelier-sh/atelier/internal/ui"
	"github.com/atelier-sh/atelier/internal/ui/cursor"
)

// Action is what a key press did to the list.
type Action int

const (
	ActionNone Action = iota
	ActionEnter
)

// Result reports the outcome of Update. Index is -1 unless an action fired.
type Result struct {
	Action Action
	Index  int
}

// Model pairs a slice of items with a cursor. Rendering stays with the
// owning pane; the model only answers which rows are visible and selected.
type Model[T any] struct {
	ui.Base
	items []T
	cur   cursor.Cursor
}

// New returns an empty list keeping margin rows of scroll context.
func New[T any](margin int) Model[T] {
	return Model[T]{cur: cursor.New(margin)}
}

// SetItems replaces the items, pulling the selection back into range when
// the list shrank.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.cur.ClampToBounds(len(items))
}

// Items returns the current items.
func (m Model[T]) Items() []T {
	return m.items
}

// Len returns the item count.
func (m Model[T]) Len() int {
	return len(m.items)
}

// SelectedIndex returns the selected row.
func (m Model[T]) SelectedIndex() int {
	return m.cur.Pos()
}

// Selected returns the selected item, or false when the list is empty.
func (m Model[T]) Selected() (T, bool) {
	if i := m.cur.Pos(); i < len(m.items) {
		return m.items[i], true
	}
	var zero T
	return zero, false
}

// VisibleRange returns the [start, end) rows to draw given the pane's
// non-list overhead rows.
func (m Model[T]) VisibleRange(overhead int) (start, end int) {
	return m.cur.VisibleRange(len(m.items), m.ListHeight(overhead))
}

// Update consumes navigation keys when the list is focused.
func (m *Model[T]) Update(msg tea.Msg) Result {
	none := Result{Index: -1}

	key, ok := msg.(tea.KeyMsg)
	if !ok || !m.IsFocused() {
		return none
	}

	height := m.ListHeight(ui.PanelOverhead)
	if m.cur.HandleKey(key.String(), len(m.items), height) {
		return none
	}
	if key.String() == "enter" && len(m.items) > 0 {
		return Result{Action: ActionEnter, Index: m.cur.Pos()}
	}
	return none
}
