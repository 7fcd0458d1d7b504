package layout

import (
	"math"
	"strconv"
)

// dimension holds one adjustable panel width together with its static range.
// The store never clamps on write; clamp policy lives with the callers
// (resize controller and bounds enforcer) so it stays centralized.
type dimension struct {
	value      int
	min, max   int
	defaultVal int
	key        string
}

// restore loads the persisted width. Absent, unparsable or non-finite values
// fall back to the default; whatever survives is clamped to [min,max].
func (d *dimension) restore(st Storage) {
	d.value = d.defaultVal
	if st == nil {
		return
	}
	raw, err := st.Get(d.key)
	if err == nil && raw != "" {
		if f, parseErr := strconv.ParseFloat(raw, 64); parseErr == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			d.value = int(f)
		}
	}
	d.value = clamp(d.value, d.min, d.max)
}

// Widths is a snapshot of the three stored panel widths. The main panel has
// no entry; it is always the remainder.
type Widths struct {
	Side         int
	Conversation int
	Manager      int
}

// DimensionStore holds the adjustable widths for the sidebar, conversation
// and manager panels.
type DimensionStore struct {
	side         dimension
	conversation dimension
	manager      dimension
}

// NewDimensionStore returns a store populated with the default widths.
func NewDimensionStore() *DimensionStore {
	return &DimensionStore{
		side: dimension{
			value: SideDefaultWidth, min: SideMinWidth, max: SideMaxWidth,
			defaultVal: SideDefaultWidth, key: keySideWidth,
		},
		conversation: dimension{
			value: ConversationDefaultWidth, min: ConversationMinWidth, max: ConversationMaxWidth,
			defaultVal: ConversationDefaultWidth, key: keyConversationWidth,
		},
		manager: dimension{
			value: ManagerDefaultWidth, min: ManagerMinWidth, max: ManagerMaxWidth,
			defaultVal: ManagerDefaultWidth, key: keyManagerWidth,
		},
	}
}

// Restore loads all three widths from storage, falling back to defaults.
func (s *DimensionStore) Restore(st Storage) {
	s.side.restore(st)
	s.conversation.restore(st)
	s.manager.restore(st)
}

// Width returns the stored width for p. PanelMain has no stored width and
// reports zero.
func (s *DimensionStore) Width(p Panel) int {
	if d := s.dim(p); d != nil {
		return d.value
	}
	return 0
}

// Range returns the static [min,max] range for p.
func (s *DimensionStore) Range(p Panel) (lo, hi int) {
	if d := s.dim(p); d != nil {
		return d.min, d.max
	}
	return 0, 0
}

// Widths returns a snapshot of all stored widths.
func (s *DimensionStore) Widths() Widths {
	return Widths{
		Side:         s.side.value,
		Conversation: s.conversation.value,
		Manager:      s.manager.value,
	}
}

// setWidth writes a width without clamping. Callers clamp first.
func (s *DimensionStore) setWidth(p Panel, w int) {
	if d := s.dim(p); d != nil {
		d.value = w
	}
}

func (s *DimensionStore) dim(p Panel) *dimension {
	switch p {
	case PanelSide:
		return &s.side
	case PanelConversation:
		return &s.conversation
	case PanelManager:
		return &s.manager
	default:
		return nil
	}
}

func (s *DimensionStore) key(p Panel) string {
	if d := s.dim(p); d != nil {
		return d.key
	}
	return ""
}
