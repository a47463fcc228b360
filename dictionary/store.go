package dictionary

import (
	"fmt"

	"github.com/chordial/chordial/logging"
	"github.com/chordial/chordial/theory"
)

// RotationRef points a rotated (inverted) pattern back at its canonical
// root-position identity
type RotationRef struct {
	Name         string // canonical identity name
	Ordinal      int    // which chord tone is in the bass (1..k-1)
	BassInterval int    // interval of that tone above the root
}

// Store owns the authoritative pattern -> identity mapping. It is built
// once, validated, and read-only afterwards; every cache and lookup
// structure in the engine is derived from it and disposable.
type Store struct {
	entries map[string]*ChordIdentity
	byName  map[string]*ChordIdentity
	ordered []*ChordIdentity // registration order, duplicates excluded

	// rotations maps the canonical key of every non-root rotation of every
	// stored pattern back to its root-position identity. Keys that collide
	// with a stored pattern are omitted: a distinctly named shape beats an
	// inversion reading.
	rotations map[string]RotationRef

	aliases *AliasTable
	logger  logging.Logger
}

// NewStore builds a store from the compiled built-in table
func NewStore() *Store {
	s := newEmptyStore()
	for _, e := range compiledTable {
		s.register(theory.IntervalPattern(e.intervals).Canonical(), e.name, e.category, e.quality)
	}
	s.buildRotations()
	return s
}

func newEmptyStore() *Store {
	return &Store{
		entries:   make(map[string]*ChordIdentity),
		byName:    make(map[string]*ChordIdentity),
		rotations: make(map[string]RotationRef),
		aliases:   NewAliasTable(),
		logger:    logging.WithFields(logging.Fields{"component": "pattern_store"}),
	}
}

// register adds one pattern/name pair. Duplicate shapes resolve
// first-registered-wins: a later name for an existing shape only becomes an
// alias of the original identity.
func (s *Store) register(p theory.IntervalPattern, name string, category Category, quality float64) {
	if len(p) == 0 || name == "" {
		s.logger.Warn("skipping invalid pattern entry", logging.Fields{"name": name})
		return
	}
	key := p.Key()
	if existing, ok := s.entries[key]; ok {
		if existing.Name != name {
			s.aliases.Register(existing.Name, name)
			existing.Aliases = s.aliases.Aliases(existing.Name)
		}
		return
	}
	if category == "" {
		category = guessCategory(name, len(p))
	}
	if quality == 0 {
		quality = defaultQuality(name, category)
	}
	ci := &ChordIdentity{
		Name:      name,
		Category:  category,
		Aliases:   s.aliases.Aliases(name),
		Quality:   quality,
		Intervals: p,
	}
	s.entries[key] = ci
	if _, taken := s.byName[name]; !taken {
		s.byName[name] = ci
	}
	s.ordered = append(s.ordered, ci)
}

// buildRotations derives the inversion table: every non-root rotation of
// every stored pattern, mapped back to its canonical identity
func (s *Store) buildRotations() {
	for _, ci := range s.ordered {
		for k := 1; k < len(ci.Intervals); k++ {
			rot := ci.Intervals.Rotation(k)
			key := rot.Key()
			if _, stored := s.entries[key]; stored {
				continue
			}
			if _, taken := s.rotations[key]; taken {
				continue
			}
			s.rotations[key] = RotationRef{
				Name:         ci.Name,
				Ordinal:      k,
				BassInterval: ci.Intervals[k],
			}
		}
	}
}

// Find returns the identity stored for a canonical pattern
func (s *Store) Find(p theory.IntervalPattern) (*ChordIdentity, bool) {
	ci, ok := s.entries[p.Key()]
	return ci, ok
}

// FindKey returns the identity stored under a canonical pattern key
func (s *Store) FindKey(key string) (*ChordIdentity, bool) {
	ci, ok := s.entries[key]
	return ci, ok
}

// FindByName returns the identity with the given canonical name or alias
func (s *Store) FindByName(name string) (*ChordIdentity, bool) {
	canonical, ok := s.aliases.Canonical(name)
	if !ok {
		canonical = name
	}
	ci, ok := s.byName[canonical]
	return ci, ok
}

// FindRotation checks whether a pattern is a rotation of a stored pattern
func (s *Store) FindRotation(p theory.IntervalPattern) (RotationRef, bool) {
	ref, ok := s.rotations[p.Key()]
	return ref, ok
}

// All returns the stored identities in registration order
func (s *Store) All() []*ChordIdentity {
	return s.ordered
}

// Len returns the number of distinct stored patterns
func (s *Store) Len() int {
	return len(s.entries)
}

// Keys returns every stored canonical pattern key
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	return keys
}

// Aliases exposes the store's alias table
func (s *Store) Aliases() *AliasTable {
	return s.aliases
}

// Validate checks every stored entry and returns human-readable warnings.
// Problems are reported, never fatal: a store with warnings still serves
// lookups.
func (s *Store) Validate() []string {
	var warnings []string
	for key, ci := range s.entries {
		if len(ci.Intervals) == 0 {
			warnings = append(warnings, fmt.Sprintf("entry %q has empty pattern", ci.Name))
			continue
		}
		if !ci.Intervals.IsCanonical() {
			warnings = append(warnings, fmt.Sprintf("entry %q pattern %v is not canonical", ci.Name, ci.Intervals))
		}
		if ci.Name == "" {
			warnings = append(warnings, fmt.Sprintf("pattern %s has no identity name", key))
		}
		if ci.Quality < 0 || ci.Quality > 1 {
			warnings = append(warnings, fmt.Sprintf("entry %q quality %f out of range", ci.Name, ci.Quality))
		}
	}
	for _, w := range warnings {
		s.logger.Warn(w)
	}
	return warnings
}
