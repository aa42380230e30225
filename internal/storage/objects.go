package storage

import (
	"fmt"
	"iter"
	"strings"

	"github.com/mesh-intelligence/hbnb/pkg/types"
)

// Key returns the registry key "<typeName>.<id>".
func Key(typeName, id string) string {
	return typeName + "." + id
}

// SplitKey splits a registry key into type name and id. The key must hold
// exactly one dot with text on both sides.
func SplitKey(key string) (typeName, id string, err error) {
	if strings.Count(key, ".") != 1 {
		return "", "", fmt.Errorf("%w: key %q must be <type>.<id>", types.ErrMalformedData, key)
	}
	typeName, id, _ = strings.Cut(key, ".")
	if typeName == "" || id == "" {
		return "", "", fmt.Errorf("%w: key %q must be <type>.<id>", types.ErrMalformedData, key)
	}
	return typeName, id, nil
}

// Objects is the registry's ordered key to entity mapping. Iteration follows
// insertion order; overwriting a key keeps its position.
type Objects struct {
	keys  []string
	items map[string]types.Entity
}

func newObjects() *Objects {
	return &Objects{items: make(map[string]types.Entity)}
}

// Get returns the entity stored under key.
func (o *Objects) Get(key string) (types.Entity, bool) {
	e, ok := o.items[key]
	return e, ok
}

// Set stores e under key.
func (o *Objects) Set(key string, e types.Entity) {
	if _, ok := o.items[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.items[key] = e
}

// Delete removes key and reports whether it was present.
func (o *Objects) Delete(key string) bool {
	if _, ok := o.items[key]; !ok {
		return false
	}
	delete(o.items, key)
	for i, k := range o.keys {
		if k == key {
			o.keys = append(o.keys[:i], o.keys[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns a copy of the keys in order.
func (o *Objects) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Len returns the number of entities.
func (o *Objects) Len() int {
	return len(o.keys)
}

// All yields every key and entity in order.
func (o *Objects) All() iter.Seq2[string, types.Entity] {
	return func(yield func(string, types.Entity) bool) {
		for _, k := range o.Keys() {
			if !yield(k, o.items[k]) {
				return
			}
		}
	}
}

// replace swaps in the contents of other, keeping o's identity so that
// references handed out by Registry.All stay live.
func (o *Objects) replace(other *Objects) {
	o.keys = other.keys
	o.items = other.items
}
