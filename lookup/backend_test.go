package lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chordial/chordial/dictionary"
)

var backendKinds = []BackendKind{BackendMap, BackendRobinHood, BackendPerfect, BackendEytzinger}

func TestAllBackendsAgreeOnStoredKeys(t *testing.T) {
	assert := assert.New(t)
	store := dictionary.NewStore()

	backends := make([]Backend, 0, len(backendKinds))
	for _, kind := range backendKinds {
		b, err := NewBackend(kind, store)
		assert.NoError(err, kind)
		assert.Equal(store.Len(), b.Len(), kind)
		backends = append(backends, b)
	}

	for _, key := range store.Keys() {
		expected, _ := store.FindKey(key)
		for _, b := range backends {
			ci, ok := b.Find(key)
			assert.True(ok, "backend %s key %s", b.Kind(), key)
			assert.Same(expected, ci, "backend %s key %s", b.Kind(), key)
		}
	}
}

func TestAllBackendsAgreeOnMisses(t *testing.T) {
	assert := assert.New(t)
	store := dictionary.NewStore()

	misses := []string{"", "0-1-2-3-4-5-6-7", "1-2-3", "0-4-7-10-11-13", "nonsense"}
	for _, kind := range backendKinds {
		b, err := NewBackend(kind, store)
		assert.NoError(err)
		for _, key := range misses {
			if _, stored := store.FindKey(key); stored {
				continue
			}
			_, ok := b.Find(key)
			assert.False(ok, "backend %s key %q", kind, key)
		}
	}
}

func TestUnknownBackendKind(t *testing.T) {
	_, err := NewBackend("btree", dictionary.NewStore())
	assert.Error(t, err)
}

func TestRobinHoodDeleteBackwardShift(t *testing.T) {
	assert := assert.New(t)
	store := dictionary.NewStore()
	b := newRobinHoodBackend(store)

	keys := store.Keys()
	removed := keys[:len(keys)/2]
	kept := keys[len(keys)/2:]

	for _, key := range removed {
		assert.True(b.delete(key), key)
	}
	assert.Equal(len(kept), b.Len())

	// deleted keys are gone, survivors still resolve through shifted chains
	for _, key := range removed {
		_, ok := b.Find(key)
		assert.False(ok, key)
	}
	for _, key := range kept {
		ci, ok := b.Find(key)
		assert.True(ok, key)
		assert.Equal(key, ci.Key())
	}

	// deleting twice reports false
	assert.False(b.delete(removed[0]))
}

func TestPerfectHashIsCollisionFree(t *testing.T) {
	assert := assert.New(t)
	store := dictionary.NewStore()

	b, err := newPerfectBackend(store)
	assert.NoError(err)

	seen := make(map[string]bool)
	for _, key := range b.keys {
		assert.False(seen[key], "slot reused for %s", key)
		seen[key] = true
	}
	assert.Len(seen, store.Len())
}
