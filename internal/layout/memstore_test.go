package layout

import "errors"

var errStorageDown = errors.New("storage unavailable")

// memStorage is an in-memory Storage for tests. Setting failing simulates a
// disabled persistence layer; the engine must swallow every error.
type memStorage struct {
	values  map[string]string
	failing bool
}

func newMemStorage() *memStorage {
	return &memStorage{values: make(map[string]string)}
}

func (m *memStorage) Get(key string) (string, error) {
	if m.failing {
		return "", errStorageDown
	}
	return m.values[key], nil
}

func (m *memStorage) Set(key, value string) error {
	if m.failing {
		return errStorageDown
	}
	m.values[key] = value
	return nil
}

func (m *memStorage) Remove(key string) error {
	if m.failing {
		return errStorageDown
	}
	delete(m.values, key)
	return nil
}
