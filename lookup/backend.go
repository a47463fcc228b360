package lookup

import (
	"fmt"

	"github.com/chordial/chordial/dictionary"
)

// Backend is the definitive pattern lookup behind the probabilistic
// prefilters. Every backend answers the same question over the same key set;
// they differ only in memory layout and probe cost, and are interchangeable
// at construction time.
type Backend interface {
	// Find returns the identity stored under a canonical pattern key
	Find(key string) (*dictionary.ChordIdentity, bool)
	// Len returns the number of stored keys
	Len() int
	// Kind names the backend for logs and benchmark output
	Kind() BackendKind
}

// BackendKind selects a backend implementation
type BackendKind string

const (
	BackendMap       BackendKind = "map"       // Go map baseline
	BackendRobinHood BackendKind = "robinhood" // open addressing, Robin Hood probing
	BackendPerfect   BackendKind = "perfect"   // minimal perfect hash over the static key set
	BackendEytzinger BackendKind = "eytzinger" // cache-friendly implicit search tree
)

// NewBackend builds a backend of the requested kind over a store's entries
func NewBackend(kind BackendKind, store *dictionary.Store) (Backend, error) {
	switch kind {
	case BackendMap, "":
		return newMapBackend(store), nil
	case BackendRobinHood:
		return newRobinHoodBackend(store), nil
	case BackendPerfect:
		return newPerfectBackend(store)
	case BackendEytzinger:
		return newEytzingerBackend(store), nil
	default:
		return nil, fmt.Errorf("unknown lookup backend %q", kind)
	}
}

// mapBackend is the baseline: a plain Go map. Every other backend must be
// observably identical to this one.
type mapBackend struct {
	entries map[string]*dictionary.ChordIdentity
}

func newMapBackend(store *dictionary.Store) *mapBackend {
	entries := make(map[string]*dictionary.ChordIdentity, store.Len())
	for _, ci := range store.All() {
		entries[ci.Key()] = ci
	}
	return &mapBackend{entries: entries}
}

func (b *mapBackend) Find(key string) (*dictionary.ChordIdentity, bool) {
	ci, ok := b.entries[key]
	return ci, ok
}

func (b *mapBackend) Len() int {
	return len(b.entries)
}

func (b *mapBackend) Kind() BackendKind {
	return BackendMap
}
