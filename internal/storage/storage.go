package storage

// KV is the scoped key-value capability the screens depend on. Two
// lifetimes exist: a session scope that lives for one process run and a
// persistent scope backed by sqlite. Callers receive both as an injected
// pair rather than reaching for globals.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// Stores bundles the two lifetimes.
type Stores struct {
	Session    KV
	Persistent KV
}
