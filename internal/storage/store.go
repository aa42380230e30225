package storage

import (
	"fmt"

	"github.com/mesh-intelligence/hbnb/pkg/types"
)

// Entry is one persisted key and its record.
type Entry struct {
	Key    string
	Record *types.Record
}

// Store persists the registry's full state. Load is only called by
// Registry.Reload and Store only by Registry.Save.
type Store interface {
	// Load returns every persisted entry in stored order. A store that has
	// never been written returns no entries and no error.
	Load() ([]Entry, error)

	// Store replaces the persisted state with entries.
	Store(entries []Entry) error

	// Location describes where the data lives, for logs and messages.
	Location() string

	// Close releases resources. Idempotent.
	Close() error
}

// Open returns the Store selected by cfg.
func Open(cfg types.Config) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Backend {
	case types.BackendJSON:
		return NewJSONFileStore(cfg.Path()), nil
	case types.BackendSQLite:
		return NewSQLiteStore(cfg.Path()), nil
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrBackendUnknown, cfg.Backend)
	}
}
