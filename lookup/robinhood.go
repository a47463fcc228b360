package lookup

import (
	"github.com/chordial/chordial/dictionary"
)

// robinHoodBackend is an open-addressing hash table with Robin Hood
// probing: on insert, a key that has probed further than the resident key
// steals its slot, keeping probe-length variance low. Deletion uses
// backward shifting instead of tombstones so lookups never scan dead slots.
type robinHoodBackend struct {
	slots []rhSlot
	mask  uint64
	count int
}

type rhSlot struct {
	key   string
	value *dictionary.ChordIdentity
	dist  int16 // probe distance from home slot; -1 marks an empty slot
}

const rhMaxLoad = 0.7

// fnv1a is the 64-bit FNV-1a string hash
func fnv1a(key string) uint64 {
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)
	h := uint64(offset64)
	for i := 0; i < len(key); i++ {
		h ^= uint64(key[i])
		h *= prime64
	}
	return h
}

func newRobinHoodBackend(store *dictionary.Store) *robinHoodBackend {
	capacity := 16
	for float64(store.Len()) > rhMaxLoad*float64(capacity) {
		capacity *= 2
	}
	b := &robinHoodBackend{
		slots: make([]rhSlot, capacity),
		mask:  uint64(capacity - 1),
	}
	for i := range b.slots {
		b.slots[i].dist = -1
	}
	for _, ci := range store.All() {
		b.insert(ci.Key(), ci)
	}
	return b
}

func (b *robinHoodBackend) insert(key string, value *dictionary.ChordIdentity) {
	if float64(b.count+1) > rhMaxLoad*float64(len(b.slots)) {
		b.grow()
	}

	idx := fnv1a(key) & b.mask
	var dist int16
	for {
		slot := &b.slots[idx]
		if slot.dist < 0 {
			slot.key = key
			slot.value = value
			slot.dist = dist
			b.count++
			return
		}
		if slot.key == key {
			slot.value = value
			return
		}
		// Robin Hood: the poorer key takes the slot
		if slot.dist < dist {
			slot.key, key = key, slot.key
			slot.value, value = value, slot.value
			slot.dist, dist = dist, slot.dist
		}
		idx = (idx + 1) & b.mask
		dist++
	}
}

func (b *robinHoodBackend) grow() {
	old := b.slots
	b.slots = make([]rhSlot, len(old)*2)
	b.mask = uint64(len(b.slots) - 1)
	b.count = 0
	for i := range b.slots {
		b.slots[i].dist = -1
	}
	for i := range old {
		if old[i].dist >= 0 {
			b.insert(old[i].key, old[i].value)
		}
	}
}

func (b *robinHoodBackend) Find(key string) (*dictionary.ChordIdentity, bool) {
	idx := fnv1a(key) & b.mask
	var dist int16
	for {
		slot := &b.slots[idx]
		if slot.dist < 0 {
			return nil, false
		}
		// a resident closer to home than our probe distance means the key
		// cannot be further along the chain
		if slot.dist < dist {
			return nil, false
		}
		if slot.key == key {
			return slot.value, true
		}
		idx = (idx + 1) & b.mask
		dist++
	}
}

// delete removes a key using backward shifting: subsequent displaced slots
// move one step toward their home so probe chains stay contiguous
func (b *robinHoodBackend) delete(key string) bool {
	idx := fnv1a(key) & b.mask
	var dist int16
	for {
		slot := &b.slots[idx]
		if slot.dist < 0 || slot.dist < dist {
			return false
		}
		if slot.key == key {
			break
		}
		idx = (idx + 1) & b.mask
		dist++
	}

	for {
		next := (idx + 1) & b.mask
		if b.slots[next].dist <= 0 {
			b.slots[idx] = rhSlot{dist: -1}
			b.count--
			return true
		}
		b.slots[idx] = b.slots[next]
		b.slots[idx].dist--
		idx = next
	}
}

func (b *robinHoodBackend) Len() int {
	return b.count
}

func (b *robinHoodBackend) Kind() BackendKind {
	return BackendRobinHood
}
