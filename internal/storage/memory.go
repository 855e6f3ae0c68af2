package storage

// MemoryKV is the session-scoped store: a plain map, discarded when the
// process exits. The client event loop is single-threaded, so no locking.
type MemoryKV struct {
	values map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

func (m *MemoryKV) Get(key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(key, value string) error {
	m.values[key] = value
	return nil
}

func (m *MemoryKV) Delete(key string) error {
	delete(m.values, key)
	return nil
}
