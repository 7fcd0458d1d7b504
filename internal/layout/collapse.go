package layout

// collapsedToken is the persisted value that marks a panel as collapsed.
// Anything else restores to not-collapsed.
const collapsedToken = "true"

// Flags is a snapshot of the four collapse flags.
type Flags struct {
	Side         bool
	Conversation bool
	Main         bool
	Manager      bool
}

// CollapseStore holds the four independent collapse flags.
type CollapseStore struct {
	side         bool
	conversation bool
	main         bool
	manager      bool
}

// NewCollapseStore returns a store with every panel expanded.
func NewCollapseStore() *CollapseStore {
	return &CollapseStore{}
}

// Restore loads the flags from storage. Only the exact "true" token counts
// as collapsed.
func (s *CollapseStore) Restore(st Storage) {
	s.side = restoreFlag(st, keySideCollapsed)
	s.conversation = restoreFlag(st, keyConversationCollapsed)
	s.main = restoreFlag(st, keyMainCollapsed)
	s.manager = restoreFlag(st, keyManagerCollapsed)
}

func restoreFlag(st Storage, key string) bool {
	if st == nil {
		return false
	}
	raw, err := st.Get(key)
	return err == nil && raw == collapsedToken
}

// Collapsed reports whether p is collapsed.
func (s *CollapseStore) Collapsed(p Panel) bool {
	if f := s.flag(p); f != nil {
		return *f
	}
	return false
}

// Flags returns a snapshot of all four flags.
func (s *CollapseStore) Flags() Flags {
	return Flags{
		Side:         s.side,
		Conversation: s.conversation,
		Main:         s.main,
		Manager:      s.manager,
	}
}

func (s *CollapseStore) set(p Panel, collapsed bool) {
	if f := s.flag(p); f != nil {
		*f = collapsed
	}
}

func (s *CollapseStore) flag(p Panel) *bool {
	switch p {
	case PanelSide:
		return &s.side
	case PanelConversation:
		return &s.conversation
	case PanelMain:
		return &s.main
	case PanelManager:
		return &s.manager
	default:
		return nil
	}
}

func (s *CollapseStore) key(p Panel) string {
	switch p {
	case PanelSide:
		return keySideCollapsed
	case PanelConversation:
		return keyConversationCollapsed
	case PanelMain:
		return keyMainCollapsed
	case PanelManager:
		return keyManagerCollapsed
	default:
		return ""
	}
}
