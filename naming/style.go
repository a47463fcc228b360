package naming

import "strings"

// Style selects the chord-symbol vocabulary used when rendering names
type Style int

const (
	StyleJazz Style = iota
	StyleClassical
	StylePopular
	StyleMinimal
)

func (s Style) String() string {
	switch s {
	case StyleJazz:
		return "jazz"
	case StyleClassical:
		return "classical"
	case StylePopular:
		return "popular"
	case StyleMinimal:
		return "minimal"
	default:
		return "unknown"
	}
}

// ParseStyle maps a style name (as used in config files and CLI flags) to
// a Style, defaulting to jazz
func ParseStyle(name string) Style {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "classical":
		return StyleClassical
	case "popular", "pop":
		return StylePopular
	case "minimal":
		return StyleMinimal
	default:
		return StyleJazz
	}
}

// symbol tables per style, keyed by canonical chord name. Names absent
// from a table fall through to the best-effort parse in symbolFallback.
var jazzSymbols = map[string]string{
	"major-triad":             "",
	"minor-triad":             "m",
	"diminished-triad":        "°",
	"augmented-triad":         "+",
	"suspended-second":        "sus2",
	"suspended-fourth":        "sus4",
	"power-chord":             "5",
	"major-flat-five":         "(b5)",
	"minor-sharp-five":        "m(#5)",
	"dominant-seventh":        "7",
	"major-seventh":           "Δ7",
	"minor-seventh":           "m7",
	"minor-major-seventh":     "mΔ7",
	"half-diminished-seventh": "ø7",
	"diminished-seventh":      "°7",
	"augmented-seventh":       "+7",
	"augmented-major-seventh": "+Δ7",
	"major-sixth":             "6",
	"minor-sixth":             "m6",
	"six-nine":                "6/9",
	"minor-six-nine":          "m6/9",
	"added-ninth":             "add9",
	"minor-added-ninth":       "m(add9)",
	"dominant-ninth":          "9",
	"major-ninth":             "Δ9",
	"minor-ninth":             "m9",
	"dominant-seventh-flat-nine":  "7b9",
	"dominant-seventh-sharp-nine": "7#9",
	"dominant-seventh-sus-four":   "7sus4",
	"dominant-seventh-flat-five":  "7b5",
	"dominant-eleventh":           "11",
	"minor-eleventh":              "m11",
	"dominant-thirteenth":         "13",
	"major-thirteenth":            "Δ13",
	"minor-thirteenth":            "m13",
	"altered-dominant":            "7alt",
}

var classicalSymbols = map[string]string{
	"major-triad":             " major",
	"minor-triad":             " minor",
	"diminished-triad":        " diminished",
	"augmented-triad":         " augmented",
	"suspended-second":        " suspended 2nd",
	"suspended-fourth":        " suspended 4th",
	"dominant-seventh":        " dominant 7th",
	"major-seventh":           " major 7th",
	"minor-seventh":           " minor 7th",
	"minor-major-seventh":     " minor-major 7th",
	"half-diminished-seventh": " half-diminished 7th",
	"diminished-seventh":      " diminished 7th",
	"augmented-seventh":       " augmented 7th",
	"major-sixth":             " major 6th",
	"minor-sixth":             " minor 6th",
	"dominant-ninth":          " dominant 9th",
	"major-ninth":             " major 9th",
	"minor-ninth":             " minor 9th",
}

var popularSymbols = map[string]string{
	"major-triad":             "",
	"minor-triad":             "m",
	"diminished-triad":        "dim",
	"augmented-triad":         "aug",
	"suspended-second":        "sus2",
	"suspended-fourth":        "sus4",
	"power-chord":             "5",
	"dominant-seventh":        "7",
	"major-seventh":           "maj7",
	"minor-seventh":           "m7",
	"minor-major-seventh":     "m(maj7)",
	"half-diminished-seventh": "m7b5",
	"diminished-seventh":      "dim7",
	"augmented-seventh":       "aug7",
	"major-sixth":             "6",
	"minor-sixth":             "m6",
	"six-nine":                "6/9",
	"added-ninth":             "add9",
	"dominant-ninth":          "9",
	"major-ninth":             "maj9",
	"minor-ninth":             "m9",
	"dominant-eleventh":       "11",
	"dominant-thirteenth":     "13",
}

var minimalSymbols = map[string]string{
	"major-triad":             "M",
	"minor-triad":             "m",
	"diminished-triad":        "o",
	"augmented-triad":         "+",
	"dominant-seventh":        "7",
	"major-seventh":           "M7",
	"minor-seventh":           "m7",
	"half-diminished-seventh": "0",
	"diminished-seventh":      "o7",
	"major-sixth":             "6",
	"minor-sixth":             "m6",
}

func styleTable(s Style) map[string]string {
	switch s {
	case StyleClassical:
		return classicalSymbols
	case StylePopular:
		return popularSymbols
	case StyleMinimal:
		return minimalSymbols
	default:
		return jazzSymbols
	}
}

// SymbolFor returns the chord-symbol suffix for a canonical chord name in
// the given style. Unknown names get a best-effort suffix parsed from the
// name's substrings.
func SymbolFor(style Style, canonicalName string) string {
	if sym, ok := styleTable(style)[canonicalName]; ok {
		return sym
	}
	return symbolFallback(canonicalName)
}

// symbolFallback builds a usable suffix for names with no table entry by
// scanning for the structural words in the canonical name
func symbolFallback(name string) string {
	lower := strings.ToLower(name)
	var sb strings.Builder
	switch {
	case strings.Contains(lower, "minor"):
		sb.WriteString("m")
	case strings.Contains(lower, "diminished"):
		sb.WriteString("dim")
	case strings.Contains(lower, "augmented"):
		sb.WriteString("aug")
	}
	switch {
	case strings.Contains(lower, "thirteenth"):
		sb.WriteString("13")
	case strings.Contains(lower, "eleventh"):
		sb.WriteString("11")
	case strings.Contains(lower, "ninth"):
		sb.WriteString("9")
	case strings.Contains(lower, "seventh"):
		sb.WriteString("7")
	case strings.Contains(lower, "sixth"):
		sb.WriteString("6")
	}
	if sb.Len() == 0 && !strings.Contains(lower, "major") && !strings.Contains(lower, "triad") {
		// nothing recognizable: surface the raw name rather than
		// pretending it is a plain major chord
		return " " + name
	}
	return sb.String()
}
