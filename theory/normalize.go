package theory

import (
	"errors"
	"fmt"
	"slices"
)

// Validation errors shared by the normalizer and the identification façade
var (
	ErrEmptyInput     = errors.New("empty note input")
	ErrTooManyNotes   = errors.New("too many notes")
	ErrNoteOutOfRange = errors.New("MIDI note out of range")
	ErrInvalidBass    = errors.New("invalid bass note")
)

// InversionShape describes a recognized triad/seventh inversion geometry.
// The theoretical root sits RootOffset semitones above the sounding bass.
type InversionShape struct {
	Chord      string // canonical root-position chord name
	Ordinal    int    // 1 = first inversion, 2 = second, ...
	RootOffset int    // semitones from bass to theoretical root, mod 12
}

// inversionShapes maps canonical pattern keys to their inversion geometry.
// Only shapes with an unambiguous root reading are listed; anything else is
// resolved with bass = root downstream.
var inversionShapes = map[string]InversionShape{
	"0-3-8":    {Chord: "major-triad", Ordinal: 1, RootOffset: 8},
	"0-5-9":    {Chord: "major-triad", Ordinal: 2, RootOffset: 5},
	"0-4-9":    {Chord: "minor-triad", Ordinal: 1, RootOffset: 9},
	"0-5-8":    {Chord: "minor-triad", Ordinal: 2, RootOffset: 5},
	"0-3-6-8":  {Chord: "dominant-seventh", Ordinal: 1, RootOffset: 8},
	"0-3-5-9":  {Chord: "dominant-seventh", Ordinal: 2, RootOffset: 5},
	"0-2-6-9":  {Chord: "dominant-seventh", Ordinal: 3, RootOffset: 2},
}

// LookupInversionShape returns the inversion geometry for a canonical
// pattern, if the shape is one of the recognized triad/seventh inversions
func LookupInversionShape(p IntervalPattern) (InversionShape, bool) {
	shape, ok := inversionShapes[p.Key()]
	return shape, ok
}

// RootPosition rotates a recognized inversion shape back to root position.
// Unrecognized shapes are returned unchanged (bass is assumed to be the root).
func RootPosition(p IntervalPattern) IntervalPattern {
	shape, ok := LookupInversionShape(p)
	if !ok {
		return p.Clone()
	}
	for i, iv := range p {
		if iv == shape.RootOffset {
			return p.Rotation(i)
		}
	}
	return p.Clone()
}

// Inversion returns the k-th inversion of a root-position pattern: the k-th
// chord tone becomes the bass. k=0 returns the pattern itself.
func Inversion(p IntervalPattern, k int) IntervalPattern {
	if len(p) == 0 || k <= 0 {
		return p.Clone()
	}
	return p.Rotation(k % len(p))
}

// NoteAnalysis is the normalizer output: the canonical shape of a voicing
// plus the bass/root reading that downstream resolution starts from
type NoteAnalysis struct {
	Intervals     IntervalPattern `json:"intervals"`
	Notes         []int           `json:"notes"` // sorted, deduplicated input
	BassNote      int             `json:"bass_note"`
	RootNote      int             `json:"root_note"`
	HasInversion  bool            `json:"has_inversion"`
	InversionNum  int             `json:"inversion_num"`  // 0 = root position
	PedalBass     bool            `json:"pedal_bass"`     // bass reads as intentional (octave gap or 5th/octave relation)
	Warnings      []string        `json:"warnings,omitempty"`
}

// NormalizeNotes reduces a raw MIDI note set to its canonical interval
// pattern relative to the lowest sounding note, detecting inversion shapes
// and the theoretical root. Duplicate notes are dropped with a warning.
func NormalizeNotes(notes []int) (NoteAnalysis, error) {
	return normalize(notes, -1)
}

// NormalizeNotesWithBass is like NormalizeNotes but measures intervals from
// an explicitly specified bass note, which is added to the sounding set.
// Notes below the specified bass fold upward via positive-remainder modulo.
func NormalizeNotesWithBass(notes []int, bass int) (NoteAnalysis, error) {
	if !ValidNote(bass) {
		return NoteAnalysis{}, fmt.Errorf("%w: %d", ErrInvalidBass, bass)
	}
	return normalize(notes, bass)
}

func normalize(notes []int, explicitBass int) (NoteAnalysis, error) {
	var res NoteAnalysis

	if len(notes) == 0 {
		return res, ErrEmptyInput
	}
	if len(notes) > MaxChordSize {
		return res, fmt.Errorf("%w: %d > %d", ErrTooManyNotes, len(notes), MaxChordSize)
	}
	for _, n := range notes {
		if !ValidNote(n) {
			return res, fmt.Errorf("%w: %d", ErrNoteOutOfRange, n)
		}
	}

	sorted := slices.Clone(notes)
	if explicitBass >= 0 && !slices.Contains(sorted, explicitBass) {
		sorted = append(sorted, explicitBass)
		if len(sorted) > MaxChordSize {
			return res, fmt.Errorf("%w: %d > %d", ErrTooManyNotes, len(sorted), MaxChordSize)
		}
	}
	slices.Sort(sorted)
	deduped := slices.Compact(sorted)
	if len(deduped) < len(sorted) {
		res.Warnings = append(res.Warnings, "duplicate notes removed")
	}
	res.Notes = deduped

	bass := deduped[0]
	if explicitBass >= 0 {
		bass = explicitBass
	}
	res.BassNote = bass
	res.PedalBass = bassIsIntentional(deduped)

	if len(deduped) >= 4 {
		res.Intervals = computeIntervalsBatch(deduped, bass)
	} else {
		res.Intervals = computeIntervalsScalar(deduped, bass)
	}
	res.Intervals = res.Intervals.Canonical()

	res.RootNote = bass
	if shape, ok := LookupInversionShape(res.Intervals); ok {
		res.RootNote = bass + shape.RootOffset
		res.InversionNum = shape.Ordinal
	}
	res.HasInversion = PitchClass(res.RootNote) != PitchClass(res.BassNote)

	return res, nil
}

// bassIsIntentional reports whether the lowest note reads as a deliberate
// bass rather than just the lowest chord tone: separated from the next note
// by at least an octave, or sitting a perfect fifth/octave under an upper
// note
func bassIsIntentional(sorted []int) bool {
	if len(sorted) < 2 {
		return false
	}
	if sorted[1]-sorted[0] >= 12 {
		return true
	}
	for _, n := range sorted[1:] {
		iv := (n - sorted[0]) % 12
		if iv == 7 || iv == 0 {
			return true
		}
	}
	return false
}

// computeIntervalsScalar is the reference interval computation. The batch
// path must stay bit-identical to this.
func computeIntervalsScalar(notes []int, bass int) IntervalPattern {
	out := make(IntervalPattern, len(notes))
	for i, n := range notes {
		out[i] = (((n - bass) % 12) + 12) % 12
	}
	return out
}

// computeIntervalsBatch is a 4-wide unrolled variant of the scalar path,
// used for larger voicings where the loop body dominates
func computeIntervalsBatch(notes []int, bass int) IntervalPattern {
	out := make(IntervalPattern, len(notes))
	i := 0
	for ; i+4 <= len(notes); i += 4 {
		out[i] = (((notes[i] - bass) % 12) + 12) % 12
		out[i+1] = (((notes[i+1] - bass) % 12) + 12) % 12
		out[i+2] = (((notes[i+2] - bass) % 12) + 12) % 12
		out[i+3] = (((notes[i+3] - bass) % 12) + 12) % 12
	}
	for ; i < len(notes); i++ {
		out[i] = (((notes[i] - bass) % 12) + 12) % 12
	}
	return out
}
