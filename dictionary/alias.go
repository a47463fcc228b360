package dictionary

import (
	"slices"
	"strings"
)

// AliasTable is a bidirectional mapping between canonical chord names and
// their common abbreviations. It is seeded with a fixed baseline at store
// construction and may be extended at runtime (Register is not safe for
// concurrent use with lookups).
type AliasTable struct {
	byCanonical map[string][]string
	byAlias     map[string]string
}

// baselineAliases are the abbreviations every store starts with
var baselineAliases = map[string][]string{
	"major-triad":             {"M", "maj"},
	"minor-triad":             {"m", "min", "-"},
	"diminished-triad":        {"dim", "°"},
	"augmented-triad":         {"aug", "+"},
	"suspended-second":        {"sus2"},
	"suspended-fourth":        {"sus4"},
	"power-chord":             {"5"},
	"dominant-seventh":        {"7", "dom7"},
	"major-seventh":           {"M7", "maj7"},
	"minor-seventh":           {"m7", "min7", "-7"},
	"minor-major-seventh":     {"mM7", "minmaj7"},
	"half-diminished-seventh": {"m7b5", "ø7"},
	"diminished-seventh":      {"dim7", "°7"},
	"augmented-seventh":       {"aug7", "+7"},
	"major-sixth":             {"6", "maj6"},
	"minor-sixth":             {"m6", "min6"},
	"six-nine":                {"6/9", "69"},
	"dominant-ninth":          {"9"},
	"major-ninth":             {"M9", "maj9"},
	"minor-ninth":             {"m9", "min9"},
	"added-ninth":             {"add9"},
	"dominant-eleventh":       {"11"},
	"dominant-thirteenth":     {"13"},
}

// NewAliasTable builds an alias table seeded with the fixed baseline
func NewAliasTable() *AliasTable {
	at := &AliasTable{
		byCanonical: make(map[string][]string),
		byAlias:     make(map[string]string),
	}
	for canonical, aliases := range baselineAliases {
		for _, a := range aliases {
			at.Register(canonical, a)
		}
	}
	return at
}

// Register adds an alias for a canonical name. The first canonical name to
// claim an alias keeps it.
func (at *AliasTable) Register(canonical, alias string) {
	alias = strings.TrimSpace(alias)
	if alias == "" {
		return
	}
	if _, taken := at.byAlias[alias]; taken {
		return
	}
	at.byAlias[alias] = canonical
	if !slices.Contains(at.byCanonical[canonical], alias) {
		at.byCanonical[canonical] = append(at.byCanonical[canonical], alias)
	}
}

// Canonical resolves an alias (or a canonical name itself) to the canonical
// chord name
func (at *AliasTable) Canonical(name string) (string, bool) {
	if canonical, ok := at.byAlias[name]; ok {
		return canonical, true
	}
	if _, ok := at.byCanonical[name]; ok {
		return name, true
	}
	return "", false
}

// Aliases returns all registered abbreviations for a canonical name
func (at *AliasTable) Aliases(canonical string) []string {
	return slices.Clone(at.byCanonical[canonical])
}

// Len returns the number of registered aliases
func (at *AliasTable) Len() int {
	return len(at.byAlias)
}
