package layout

// Storage is the durable key/value store the engine mirrors state to.
// internal/state provides the sqlite-backed implementation; tests use an
// in-memory one. A missing key is ("", nil), not an error.
//
// Writes are fire-and-forget from the engine's point of view: every error
// returned here is swallowed and the in-memory state stays authoritative.
type Storage interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
}
