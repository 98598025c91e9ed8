package storage

import (
	"fmt"

	"github.com/vovakirdan/tui-memory/internal/core"
)

// Backend names accepted by OpenSaves.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// SaveBackend stores save slots and settings.
type SaveBackend interface {
	core.KVStore
	core.SettingsStore
	Keys(prefix string) ([]string, error)
	Close() error
}

// OpenSaves returns the save backend named by kind. For BackendSQLite the
// already open score store is reused (closing it is left to the caller, so
// the returned backend's Close is a no-op); db may be nil for other kinds.
func OpenSaves(kind string, db *Store, redisURL string) (SaveBackend, error) {
	switch kind {
	case "", BackendSQLite:
		if db == nil {
			return nil, fmt.Errorf("storage: sqlite save backend needs an open database")
		}
		return sharedStore{db}, nil
	case BackendRedis:
		return OpenRedis(redisURL)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("storage: unknown save backend %q", kind)
	}
}

// sharedStore exposes a Store whose lifetime is owned elsewhere.
type sharedStore struct {
	*Store
}

func (sharedStore) Close() error { return nil }
