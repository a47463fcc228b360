package dictionary

// compiledEntry is one row of the built-in chord table. Category and
// quality are optional; zero values fall back to the heuristics in
// identity.go.
type compiledEntry struct {
	intervals []int
	name      string
	category  Category
	quality   float64
}

// compiledTable is the built-in pattern dictionary, ordered most-common
// first. The same geometry may appear more than once under different
// musical spellings; the store resolves duplicates first-registered-wins,
// so ordering here decides the canonical reading of a shape.
var compiledTable = []compiledEntry{
	// --- triads ---
	{[]int{0, 4, 7}, "major-triad", CategoryTriad, 1.0},
	{[]int{0, 3, 7}, "minor-triad", CategoryTriad, 1.0},
	{[]int{0, 3, 6}, "diminished-triad", CategoryTriad, 0.9},
	{[]int{0, 4, 8}, "augmented-triad", CategoryTriad, 0.9},
	{[]int{0, 2, 7}, "suspended-second", CategoryTriad, 0.85},
	{[]int{0, 5, 7}, "suspended-fourth", CategoryTriad, 0.85},
	{[]int{0, 4, 6}, "major-flat-five", CategoryTriad, 0.6},
	{[]int{0, 3, 8}, "minor-sharp-five", CategoryTriad, 0.55},
	{[]int{0, 4, 7}, "major", CategoryTriad, 0}, // duplicate spelling, aliases the first entry

	// --- intervals / dyads ---
	{[]int{0}, "unison", CategoryInterval, 0.6},
	{[]int{0, 1}, "minor-second", CategoryInterval, 0},
	{[]int{0, 2}, "major-second", CategoryInterval, 0},
	{[]int{0, 3}, "minor-third", CategoryInterval, 0},
	{[]int{0, 4}, "major-third", CategoryInterval, 0},
	{[]int{0, 5}, "perfect-fourth", CategoryInterval, 0},
	{[]int{0, 6}, "tritone", CategoryInterval, 0},
	{[]int{0, 7}, "power-chord", CategoryInterval, 0.85},
	{[]int{0, 7}, "perfect-fifth", CategoryInterval, 0}, // duplicate spelling
	{[]int{0, 8}, "minor-sixth-interval", CategoryInterval, 0},
	{[]int{0, 9}, "major-sixth-interval", CategoryInterval, 0},
	{[]int{0, 10}, "minor-seventh-interval", CategoryInterval, 0},
	{[]int{0, 11}, "major-seventh-interval", CategoryInterval, 0},

	// --- sixth and seventh chords ---
	{[]int{0, 4, 7, 10}, "dominant-seventh", CategorySeventh, 0.95},
	{[]int{0, 4, 7, 11}, "major-seventh", CategorySeventh, 0.95},
	{[]int{0, 3, 7, 10}, "minor-seventh", CategorySeventh, 0.95},
	{[]int{0, 3, 7, 11}, "minor-major-seventh", CategorySeventh, 0.7},
	{[]int{0, 3, 6, 10}, "half-diminished-seventh", CategorySeventh, 0.85},
	{[]int{0, 3, 6, 9}, "diminished-seventh", CategorySeventh, 0.85},
	{[]int{0, 4, 8, 10}, "augmented-seventh", CategorySeventh, 0.7},
	{[]int{0, 4, 8, 10}, "dominant-seventh-sharp-five", CategorySeventh, 0}, // duplicate spelling
	{[]int{0, 4, 8, 11}, "augmented-major-seventh", CategorySeventh, 0.6},
	{[]int{0, 4, 6, 10}, "dominant-seventh-flat-five", CategorySeventh, 0.65},
	{[]int{0, 4, 6, 11}, "major-seventh-flat-five", CategorySeventh, 0.5},
	{[]int{0, 5, 7, 10}, "dominant-seventh-sus-four", CategorySeventh, 0.75},
	{[]int{0, 2, 7, 10}, "dominant-seventh-sus-two", CategorySeventh, 0.6},
	{[]int{0, 4, 7, 9}, "major-sixth", CategorySeventh, 0.9},
	{[]int{0, 3, 7, 9}, "minor-sixth", CategorySeventh, 0.85},
	{[]int{0, 4, 10}, "dominant-seventh-no-fifth", CategorySeventh, 0.7},
	{[]int{0, 4, 11}, "major-seventh-no-fifth", CategorySeventh, 0.65},
	{[]int{0, 3, 10}, "minor-seventh-no-fifth", CategorySeventh, 0.65},
	{[]int{0, 7, 10}, "dominant-seventh-no-third", CategorySeventh, 0.6},
	{[]int{0, 7, 11}, "major-seventh-no-third", CategorySeventh, 0.55},

	// --- added-note chords ---
	{[]int{0, 2, 4, 7}, "added-ninth", CategoryExtended, 0.85},
	{[]int{0, 2, 3, 7}, "minor-added-ninth", CategoryExtended, 0.75},
	{[]int{0, 4, 5, 7}, "added-fourth", CategoryExtended, 0.6},
	{[]int{0, 3, 5, 7}, "minor-added-fourth", CategoryExtended, 0.55},
	{[]int{0, 2, 4, 7, 9}, "six-nine", CategoryExtended, 0.8},
	{[]int{0, 2, 3, 7, 9}, "minor-six-nine", CategoryExtended, 0.65},

	// --- ninth chords ---
	{[]int{0, 2, 4, 7, 10}, "dominant-ninth", CategoryExtended, 0.85},
	{[]int{0, 2, 4, 7, 11}, "major-ninth", CategoryExtended, 0.8},
	{[]int{0, 2, 3, 7, 10}, "minor-ninth", CategoryExtended, 0.8},
	{[]int{0, 2, 3, 7, 11}, "minor-major-ninth", CategoryExtended, 0.55},
	{[]int{0, 1, 4, 7, 10}, "dominant-seventh-flat-nine", CategoryExtended, 0.7},
	{[]int{0, 3, 4, 7, 10}, "dominant-seventh-sharp-nine", CategoryExtended, 0.7},
	{[]int{0, 3, 4, 7, 10}, "hendrix-chord", CategoryExtended, 0}, // duplicate spelling
	{[]int{0, 2, 4, 10}, "dominant-ninth-no-fifth", CategoryExtended, 0.6},
	{[]int{0, 2, 4, 11}, "major-ninth-no-fifth", CategoryExtended, 0.55},
	{[]int{0, 2, 3, 10}, "minor-ninth-no-fifth", CategoryExtended, 0.55},
	{[]int{0, 2, 5, 7, 10}, "dominant-ninth-sus-four", CategoryExtended, 0.6},
	{[]int{0, 1, 3, 6, 9}, "diminished-flat-nine", CategoryExtended, 0.4},

	// --- eleventh chords ---
	{[]int{0, 2, 4, 5, 7, 10}, "dominant-eleventh", CategoryExtended, 0.7},
	{[]int{0, 2, 4, 5, 7, 11}, "major-eleventh", CategoryExtended, 0.6},
	{[]int{0, 2, 3, 5, 7, 10}, "minor-eleventh", CategoryExtended, 0.7},
	{[]int{0, 2, 4, 6, 7, 10}, "dominant-sharp-eleventh", CategoryExtended, 0.6},
	{[]int{0, 2, 4, 6, 7, 11}, "major-sharp-eleventh", CategoryExtended, 0.6},
	{[]int{0, 4, 5, 7, 10}, "dominant-eleventh-no-ninth", CategoryExtended, 0.5},
	{[]int{0, 3, 5, 7, 10}, "minor-eleventh-no-ninth", CategoryExtended, 0.5},

	// --- thirteenth chords ---
	{[]int{0, 2, 4, 5, 7, 9, 10}, "dominant-thirteenth", CategoryExtended, 0.65},
	{[]int{0, 2, 4, 5, 7, 9, 11}, "major-thirteenth", CategoryExtended, 0.55},
	{[]int{0, 2, 3, 5, 7, 9, 10}, "minor-thirteenth", CategoryExtended, 0.6},
	{[]int{0, 2, 4, 7, 9, 10}, "dominant-thirteenth-no-eleventh", CategoryExtended, 0.6},
	{[]int{0, 4, 7, 9, 10}, "dominant-thirteenth-no-ninth", CategoryExtended, 0.5},

	// --- altered dominants ---
	{[]int{0, 1, 4, 6, 10}, "dominant-seventh-flat-five-flat-nine", CategoryExtended, 0.45},
	{[]int{0, 3, 4, 6, 10}, "dominant-seventh-flat-five-sharp-nine", CategoryExtended, 0.45},
	{[]int{0, 1, 4, 8, 10}, "dominant-seventh-sharp-five-flat-nine", CategoryExtended, 0.45},
	{[]int{0, 3, 4, 8, 10}, "dominant-seventh-sharp-five-sharp-nine", CategoryExtended, 0.45},
	{[]int{0, 1, 3, 4, 6, 8, 10}, "altered-dominant", CategoryExtended, 0.4},

	// --- quartal and cluster structures ---
	{[]int{0, 5, 10}, "quartal-triad", CategoryOther, 0.6},
	{[]int{0, 3, 5, 10}, "quartal-tetrad", CategoryOther, 0.5},
	{[]int{0, 3, 5, 7, 10}, "so-what-chord", CategoryOther, 0.5},
	{[]int{0, 2, 5, 7}, "quartal-quintal", CategoryOther, 0.5},
	{[]int{0, 1, 2}, "chromatic-trichord", CategoryOther, 0.4},
	{[]int{0, 2, 4}, "whole-tone-trichord", CategoryOther, 0.4},
	{[]int{0, 1, 2, 3}, "chromatic-tetrachord", CategoryOther, 0.35},
	{[]int{0, 2, 4, 6}, "whole-tone-tetrachord", CategoryOther, 0.35},
	{[]int{0, 1, 6}, "viennese-trichord", CategoryOther, 0.35},
	{[]int{0, 6, 7}, "tritone-fifth-cluster", CategoryOther, 0.3},
	{[]int{0, 1, 5, 8}, "farben-chord", CategoryOther, 0.3},
	{[]int{0, 2, 6, 8}, "french-sixth", CategoryOther, 0.45},
	{[]int{0, 4, 7, 10, 11}, "major-minor-seventh-cluster", CategoryOther, 0.3},
	{[]int{0, 4, 6, 7}, "lydian-trichord-add", CategoryOther, 0.35},
	{[]int{0, 1, 4}, "phrygian-trichord", CategoryOther, 0.35},
	{[]int{0, 1, 5}, "minor-second-fourth", CategoryOther, 0.3},
	{[]int{0, 4, 5}, "major-third-fourth", CategoryOther, 0.3},
	{[]int{0, 5, 6}, "fourth-tritone-cluster", CategoryOther, 0.3},
	{[]int{0, 3, 5, 8, 10}, "fourths-stack-five", CategoryOther, 0.35},

	// --- pentatonic and hexatonic collections ---
	{[]int{0, 2, 4, 7, 9}, "major-pentatonic", CategoryScale, 0}, // duplicate of six-nine geometry
	{[]int{0, 3, 5, 7, 10}, "minor-pentatonic", CategoryScale, 0},
	{[]int{0, 3, 5, 6, 7, 10}, "blues-scale", CategoryScale, 0.65},
	{[]int{0, 2, 4, 6, 8, 10}, "whole-tone-scale", CategoryScale, 0.6},
	{[]int{0, 3, 4, 7, 8, 11}, "augmented-scale", CategoryScale, 0.45},
	{[]int{0, 1, 4, 5, 8, 9}, "hexatonic-scale", CategoryScale, 0.4},

	// --- seven-note scales ---
	{[]int{0, 2, 4, 5, 7, 9, 11}, "major-scale", CategoryScale, 0.7},
	{[]int{0, 2, 3, 5, 7, 8, 10}, "natural-minor-scale", CategoryScale, 0.7},
	{[]int{0, 2, 3, 5, 7, 8, 11}, "harmonic-minor-scale", CategoryScale, 0.6},
	{[]int{0, 2, 3, 5, 7, 9, 11}, "melodic-minor-scale", CategoryScale, 0.6},
	{[]int{0, 2, 3, 5, 7, 9, 10}, "dorian-mode", CategoryScale, 0.6},
	{[]int{0, 1, 3, 5, 7, 8, 10}, "phrygian-mode", CategoryScale, 0.55},
	{[]int{0, 2, 4, 6, 7, 9, 11}, "lydian-mode", CategoryScale, 0.55},
	{[]int{0, 2, 4, 5, 7, 9, 10}, "mixolydian-mode", CategoryScale, 0.6},
	{[]int{0, 1, 3, 5, 6, 8, 10}, "locrian-mode", CategoryScale, 0.5},
	{[]int{0, 1, 4, 5, 7, 8, 10}, "phrygian-dominant-scale", CategoryScale, 0.5},
	{[]int{0, 2, 4, 6, 8, 10, 11}, "leading-whole-tone-scale", CategoryScale, 0.35},
	{[]int{0, 1, 4, 6, 7, 8, 11}, "hungarian-minor-scale", CategoryScale, 0.4},

	// --- eight-note and larger collections ---
	{[]int{0, 2, 3, 5, 6, 8, 9, 11}, "diminished-scale", CategoryScale, 0.5},
	{[]int{0, 1, 3, 4, 6, 7, 9, 10}, "dominant-diminished-scale", CategoryScale, 0.5},
	{[]int{0, 2, 4, 5, 7, 9, 10, 11}, "bebop-dominant-scale", CategoryScale, 0.45},
	{[]int{0, 2, 4, 5, 7, 8, 9, 11}, "bebop-major-scale", CategoryScale, 0.45},
	{[]int{0, 1, 2, 3, 4, 5, 6, 7, 8}, "chromatic-nonachord", CategoryOther, 0.25},
	{[]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, "chromatic-decachord", CategoryOther, 0.25},
	{[]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, "chromatic-undecachord", CategoryOther, 0.25},
	{[]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, "chromatic-scale", CategoryScale, 0.5},

	// --- wide/compound voicings folded to one octave ---
	{[]int{0, 2, 4, 8, 10}, "augmented-ninth", CategoryExtended, 0.35},
	{[]int{0, 2, 6, 8, 10}, "whole-tone-dominant", CategoryExtended, 0.35},
	{[]int{0, 1, 4, 7}, "major-flat-nine-add", CategoryOther, 0.3},
	{[]int{0, 3, 6, 8}, "diminished-add-flat-six", CategoryOther, 0.3},
	{[]int{0, 3, 6, 11}, "diminished-major-seventh", CategorySeventh, 0.45},
	{[]int{0, 2, 3, 6, 9}, "diminished-add-nine", CategoryOther, 0.3},
	{[]int{0, 4, 7, 8}, "major-add-flat-six", CategoryOther, 0.3},
	{[]int{0, 3, 7, 8}, "minor-add-flat-six", CategoryOther, 0.3},
	{[]int{0, 2, 4, 7, 10, 11}, "dominant-major-seventh-cluster", CategoryOther, 0.25},
	{[]int{0, 2, 5, 10}, "sus-pile", CategoryOther, 0.25},
}
