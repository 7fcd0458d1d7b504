package help

import (
	"strings"
	"testing"
)

func TestNewCollectsAllContexts(t *testing.T) {
	m := New()

	seen := map[string]bool{}
	for _, b := range m.bindings {
		seen[b.Context] = true
	}
	for _, ctx := range sectionOrder {
		if !seen[ctx] {
			t.Errorf("context %q missing from help content", ctx)
		}
	}
}

func TestHandleKeyClose(t *testing.T) {
	m := New()
	for _, key := range []string{"?", "esc", "q"} {
		if !m.HandleKey(key) {
			t.Errorf("HandleKey(%q) = false, want close", key)
		}
	}
	if m.HandleKey("j") {
		t.Error("scroll key must not close the popup")
	}
}

func TestScrollClamps(t *testing.T) {
	m := New()
	m.SetSize(80, 10)

	m.HandleKey("k")
	if m.offset != 0 {
		t.Errorf("offset = %d after scrolling up at the top, want 0", m.offset)
	}

	for range 100 {
		m.HandleKey("j")
	}
	if m.offset > m.maxScroll() {
		t.Errorf("offset = %d, exceeds max scroll %d", m.offset, m.maxScroll())
	}
}

func TestViewListsBindings(t *testing.T) {
	m := New()
	m.SetSize(80, 40)

	view := m.View()
	for _, want := range []string{"Help", "Global", "Layout", "Quit application", "Toggle sidebar"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestViewWithoutSize(t *testing.T) {
	m := New()
	if m.View() != "" {
		t.Error("unsized popup should render nothing")
	}
}
