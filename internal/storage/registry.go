// Package storage holds the object registry: the in-memory mapping from
// "<Type>.<id>" keys to live entities, and the stores that persist it.
//
// The registry is not safe for concurrent use. It is built once per process
// and handed to the console.
package storage

import (
	"fmt"
	"log/slog"

	"github.com/mesh-intelligence/hbnb/pkg/types"
)

// Registry maps keys to entities and saves or reloads them through a Store.
// The store is read only by Reload and written only by Save.
type Registry struct {
	catalog *types.Catalog
	store   Store
	objects *Objects
	logger  *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for save and reload events.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// New returns an empty registry. Call Reload to populate it from store.
func New(catalog *types.Catalog, store Store, opts ...Option) *Registry {
	r := &Registry{
		catalog: catalog,
		store:   store,
		objects: newObjects(),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Catalog returns the type catalog the registry resolves names with.
func (r *Registry) Catalog() *types.Catalog {
	return r.catalog
}

// All returns the live mapping. Changes made through it, deletions in
// particular, are seen by later Save and All calls.
func (r *Registry) All() *Objects {
	return r.objects
}

// Register stores e under "<Type>.<id>", overwriting any previous entry.
func (r *Registry) Register(e types.Entity) {
	r.objects.Set(Key(e.TypeName(), e.ID()), e)
}

// Create constructs a fresh entity of typeName and registers it. Nothing is
// saved.
func (r *Registry) Create(typeName string) (types.Entity, error) {
	e, err := r.catalog.New(typeName)
	if err != nil {
		return nil, err
	}
	r.Register(e)
	return e, nil
}

// Get returns the entity registered as typeName and id.
func (r *Registry) Get(typeName, id string) (types.Entity, error) {
	key, err := r.key(typeName, id)
	if err != nil {
		return nil, err
	}
	e, ok := r.objects.Get(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", types.ErrUnknownID, key)
	}
	return e, nil
}

// Delete removes the entity registered as typeName and id. Nothing is saved.
func (r *Registry) Delete(typeName, id string) error {
	key, err := r.key(typeName, id)
	if err != nil {
		return err
	}
	if !r.objects.Delete(key) {
		return fmt.Errorf("%w: %s", types.ErrUnknownID, key)
	}
	return nil
}

// Fetch returns every entity of typeName in registry order, or every entity
// when typeName is empty.
func (r *Registry) Fetch(typeName string) ([]types.Entity, error) {
	if typeName != "" {
		if _, err := r.catalog.Lookup(typeName); err != nil {
			return nil, err
		}
	}
	var out []types.Entity
	for _, e := range r.objects.All() {
		if typeName == "" || e.TypeName() == typeName {
			out = append(out, e)
		}
	}
	return out, nil
}

// Count returns the number of entities of typeName.
func (r *Registry) Count(typeName string) (int, error) {
	if _, err := r.catalog.Lookup(typeName); err != nil {
		return 0, err
	}
	n := 0
	for _, e := range r.objects.All() {
		if e.TypeName() == typeName {
			n++
		}
	}
	return n, nil
}

// key validates typeName and id and builds their registry key.
func (r *Registry) key(typeName, id string) (string, error) {
	if _, err := r.catalog.Lookup(typeName); err != nil {
		return "", err
	}
	if id == "" {
		return "", types.ErrMissingID
	}
	return Key(typeName, id), nil
}

// Save exports every entity and overwrites the store. An empty registry
// writes an empty document.
func (r *Registry) Save() error {
	entries := make([]Entry, 0, r.objects.Len())
	for key, e := range r.objects.All() {
		entries = append(entries, Entry{Key: key, Record: e.Export()})
	}
	if err := r.store.Store(entries); err != nil {
		return fmt.Errorf("save %s: %w", r.store.Location(), err)
	}
	r.logger.Debug("registry saved", "objects", len(entries), "location", r.store.Location())
	return nil
}

// Reload replaces the registry's contents with the store's. A store that
// was never written leaves the registry empty. Every entry is rebuilt
// before anything is committed: on error the registry is unchanged.
func (r *Registry) Reload() error {
	entries, err := r.store.Load()
	if err != nil {
		return fmt.Errorf("reload %s: %w", r.store.Location(), err)
	}

	fresh := newObjects()
	for _, ent := range entries {
		e, err := r.reconstruct(ent)
		if err != nil {
			return fmt.Errorf("reload %s: %s: %w", r.store.Location(), ent.Key, err)
		}
		fresh.Set(ent.Key, e)
	}

	r.objects.replace(fresh)
	r.logger.Debug("registry reloaded", "objects", fresh.Len(), "location", r.store.Location())
	return nil
}

// reconstruct rebuilds one entity, dispatching on the key's type name.
func (r *Registry) reconstruct(ent Entry) (types.Entity, error) {
	typeName, id, err := SplitKey(ent.Key)
	if err != nil {
		return nil, err
	}
	if ent.Record == nil {
		return nil, fmt.Errorf("%w: missing record", types.ErrMalformedData)
	}
	if _, ok := ent.Record.Get(types.KeyClass); !ok {
		return nil, fmt.Errorf("%w: record has no %s", types.ErrMalformedData, types.KeyClass)
	}
	e, err := r.catalog.FromRecord(typeName, ent.Record)
	if err != nil {
		return nil, err
	}
	if e.ID() != id {
		return nil, fmt.Errorf("%w: record id %q does not match key", types.ErrMalformedData, e.ID())
	}
	return e, nil
}
