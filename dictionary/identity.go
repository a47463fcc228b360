package dictionary

import (
	"strings"

	"github.com/chordial/chordial/theory"
)

// Category classifies a chord identity by structural family
type Category string

const (
	CategoryTriad    Category = "triad"
	CategorySeventh  Category = "seventh"
	CategoryExtended Category = "extended"
	CategoryScale    Category = "scale"
	CategoryInterval Category = "interval"
	CategoryOther    Category = "other"
)

// ChordIdentity is one entry of the pattern store: the musical identity
// behind a canonical interval pattern. Identities are built once at load
// time and never mutated during lookup.
type ChordIdentity struct {
	Name      string                 `json:"name"`     // canonical name, e.g. "dominant-seventh"
	Category  Category               `json:"category"`
	Aliases   []string               `json:"aliases,omitempty"`
	Quality   float64                `json:"quality"` // commonness heuristic in [0,1]
	Intervals theory.IntervalPattern `json:"intervals"`
}

// Key returns the canonical pattern key of the identity
func (ci *ChordIdentity) Key() string {
	return ci.Intervals.Key()
}

// guessCategory infers the structural family of a named pattern when the
// compiled table or dictionary file does not state one
func guessCategory(name string, size int) Category {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "scale") || strings.Contains(lower, "mode") ||
		strings.Contains(lower, "pentatonic") || strings.Contains(lower, "chromatic"):
		return CategoryScale
	case size <= 2:
		return CategoryInterval
	case strings.Contains(lower, "thirteenth") || strings.Contains(lower, "eleventh") ||
		strings.Contains(lower, "ninth") || strings.Contains(lower, "six-nine") ||
		strings.Contains(lower, "add"):
		return CategoryExtended
	case strings.Contains(lower, "seventh") || strings.Contains(lower, "sixth"):
		return CategorySeventh
	case size == 3 || strings.Contains(lower, "triad") || strings.Contains(lower, "sus"):
		return CategoryTriad
	default:
		return CategoryOther
	}
}

// defaultQuality is the commonness heuristic: plain triads score highest,
// exotic structures bottom out at 0.5 so fuzzy ranking still separates a
// direct hit from a reinterpretation
func defaultQuality(name string, category Category) float64 {
	lower := strings.ToLower(name)
	switch {
	case lower == "major-triad" || lower == "minor-triad":
		return 1.0
	case lower == "dominant-seventh" || lower == "major-seventh" || lower == "minor-seventh":
		return 0.95
	case category == CategoryTriad:
		return 0.9
	case category == CategorySeventh:
		return 0.85
	case category == CategoryInterval:
		return 0.7
	case category == CategoryExtended:
		return 0.7
	case category == CategoryScale:
		return 0.6
	default:
		return 0.5
	}
}
