package keymap

import "slices"

// Resolver answers key lookups against a fixed set of bindings.
type Resolver struct {
	byKey    map[string]Action
	bindings []Binding
}

// NewResolver indexes bindings by key. Later bindings never override earlier
// ones, so context ordering in the binding table decides conflicts.
func NewResolver(bindings []Binding) *Resolver {
	byKey := make(map[string]Action)
	for _, b := range bindings {
		for _, key := range b.Keys {
			if _, taken := byKey[key]; !taken {
				byKey[key] = b.Action
			}
		}
	}
	return &Resolver{byKey: byKey, bindings: bindings}
}

// Resolve returns the action bound to key, or the zero Action when unbound.
func (r *Resolver) Resolve(key string) Action {
	return r.byKey[key]
}

// KeysFor returns every key bound to action, without duplicates, in binding
// table order.
func (r *Resolver) KeysFor(action Action) []string {
	var keys []string
	for _, b := range r.bindings {
		if b.Action != action {
			continue
		}
		for _, key := range b.Keys {
			if !slices.Contains(keys, key) {
				keys = append(keys, key)
			}
		}
	}
	return keys
}
