package lookup

import (
	"sort"
	"strings"

	"github.com/chordial/chordial/dictionary"
)

// eytzingerBackend stores the sorted key set in Eytzinger (BFS) order, the
// layout a cache-oblivious search wants: the first few levels of the
// implicit tree share cache lines, so the hot part of every probe path
// stays resident.
type eytzingerBackend struct {
	keys   []string
	values []*dictionary.ChordIdentity
}

func newEytzingerBackend(store *dictionary.Store) *eytzingerBackend {
	identities := append([]*dictionary.ChordIdentity(nil), store.All()...)
	sort.Slice(identities, func(i, j int) bool {
		return identities[i].Key() < identities[j].Key()
	})

	n := len(identities)
	b := &eytzingerBackend{
		keys:   make([]string, n),
		values: make([]*dictionary.ChordIdentity, n),
	}
	pos := 0
	b.layout(identities, &pos, 0)
	return b
}

// layout places the sorted slice into BFS order via in-order traversal of
// the implicit tree
func (b *eytzingerBackend) layout(sorted []*dictionary.ChordIdentity, pos *int, i int) {
	if i >= len(sorted) {
		return
	}
	b.layout(sorted, pos, 2*i+1)
	b.keys[i] = sorted[*pos].Key()
	b.values[i] = sorted[*pos]
	*pos++
	b.layout(sorted, pos, 2*i+2)
}

func (b *eytzingerBackend) Find(key string) (*dictionary.ChordIdentity, bool) {
	i := 0
	for i < len(b.keys) {
		switch cmp := strings.Compare(key, b.keys[i]); {
		case cmp == 0:
			return b.values[i], true
		case cmp < 0:
			i = 2*i + 1
		default:
			i = 2*i + 2
		}
	}
	return nil, false
}

func (b *eytzingerBackend) Len() int {
	return len(b.keys)
}

func (b *eytzingerBackend) Kind() BackendKind {
	return BackendEytzinger
}
