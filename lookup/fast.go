package lookup

import (
	"github.com/chordial/chordial/dictionary"
	"github.com/chordial/chordial/theory"
)

// commonShapes are the handful of 3- and 4-note geometries that dominate
// real input. They are checked by direct comparison before any hashing.
var commonShapes = []theory.IntervalPattern{
	{0, 4, 7},     // major triad
	{0, 3, 7},     // minor triad
	{0, 4, 7, 10}, // dominant seventh
	{0, 3, 7, 10}, // minor seventh
	{0, 4, 7, 11}, // major seventh
	{0, 3, 6},     // diminished triad
	{0, 4, 8},     // augmented triad
	{0, 5, 7},     // suspended fourth
}

// fastTable resolves the common shapes against a store once at engine
// construction; shapes missing from the store (possible with external
// dictionaries) are simply absent.
type fastTable struct {
	patterns   []theory.IntervalPattern
	identities []*dictionary.ChordIdentity
}

func newFastTable(store *dictionary.Store) *fastTable {
	ft := &fastTable{}
	for _, p := range commonShapes {
		if ci, ok := store.Find(p); ok {
			ft.patterns = append(ft.patterns, p)
			ft.identities = append(ft.identities, ci)
		}
	}
	return ft
}

func (ft *fastTable) find(p theory.IntervalPattern) (*dictionary.ChordIdentity, bool) {
	for i, candidate := range ft.patterns {
		if len(candidate) != len(p) {
			continue
		}
		match := true
		for j := range candidate {
			if candidate[j] != p[j] {
				match = false
				break
			}
		}
		if match {
			return ft.identities[i], true
		}
	}
	return nil, false
}
