package lookup

import (
	"fmt"
	"sort"

	"github.com/chordial/chordial/dictionary"
)

// perfectBackend is a minimal perfect hash over the store's static key set,
// built with hash-and-displace: keys are grouped into buckets by a first
// hash, then each bucket searches for a displacement seed under which its
// keys land in still-free slots of a table sized exactly to the key count.
// Lookups are two hashes and one key comparison, no probing.
type perfectBackend struct {
	seeds  []uint64
	keys   []string
	values []*dictionary.ChordIdentity
}

const phashMaxSeed = 1 << 16

// phash mixes a precomputed key hash with a displacement seed
func phash(seed, h uint64) uint64 {
	x := h ^ (seed * 0x9e3779b97f4a7c15)
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	return x
}

func newPerfectBackend(store *dictionary.Store) (*perfectBackend, error) {
	identities := store.All()
	n := uint64(len(identities))
	if n == 0 {
		return nil, fmt.Errorf("perfect hash requires a non-empty store")
	}

	type bucket struct {
		id   uint64
		keys []string
		vals []*dictionary.ChordIdentity
	}
	buckets := make(map[uint64]*bucket)
	for _, ci := range identities {
		key := ci.Key()
		id := fnv1a(key) % n
		bk, ok := buckets[id]
		if !ok {
			bk = &bucket{id: id}
			buckets[id] = bk
		}
		bk.keys = append(bk.keys, key)
		bk.vals = append(bk.vals, ci)
	}

	// largest buckets place first while the table is emptiest
	ordered := make([]*bucket, 0, len(buckets))
	for _, bk := range buckets {
		ordered = append(ordered, bk)
	}
	sort.Slice(ordered, func(i, j int) bool {
		if len(ordered[i].keys) != len(ordered[j].keys) {
			return len(ordered[i].keys) > len(ordered[j].keys)
		}
		return ordered[i].id < ordered[j].id
	})

	b := &perfectBackend{
		seeds:  make([]uint64, n),
		keys:   make([]string, n),
		values: make([]*dictionary.ChordIdentity, n),
	}
	occupied := make([]bool, n)

	for _, bk := range ordered {
		placed := false
		for seed := uint64(1); seed < phashMaxSeed; seed++ {
			slots := make([]uint64, 0, len(bk.keys))
			ok := true
			for _, key := range bk.keys {
				slot := phash(seed, fnv1a(key)) % n
				if occupied[slot] {
					ok = false
					break
				}
				collide := false
				for _, s := range slots {
					if s == slot {
						collide = true
						break
					}
				}
				if collide {
					ok = false
					break
				}
				slots = append(slots, slot)
			}
			if ok {
				for i, key := range bk.keys {
					occupied[slots[i]] = true
					b.keys[slots[i]] = key
					b.values[slots[i]] = bk.vals[i]
				}
				b.seeds[bk.id] = seed
				placed = true
				break
			}
		}
		if !placed {
			return nil, fmt.Errorf("perfect hash construction failed for bucket %d", bk.id)
		}
	}
	return b, nil
}

func (b *perfectBackend) Find(key string) (*dictionary.ChordIdentity, bool) {
	n := uint64(len(b.keys))
	h := fnv1a(key)
	seed := b.seeds[h%n]
	slot := phash(seed, h) % n
	if b.keys[slot] == key {
		return b.values[slot], true
	}
	return nil, false
}

func (b *perfectBackend) Len() int {
	return len(b.keys)
}

func (b *perfectBackend) Kind() BackendKind {
	return BackendPerfect
}
