package identify

import (
	"slices"

	"github.com/chordial/chordial/dictionary"
	"github.com/chordial/chordial/lookup"
	"github.com/chordial/chordial/theory"
)

// resolution is the root/bass reading of a matched chord
type resolution struct {
	rootMIDI         int
	bassMIDI         int
	isInversion      bool
	inversionOrdinal int
	isSlashChord     bool
}

// augmentedShape is inversion-symmetric: all three rotations are the same
// chord, so no rotation may claim slash notation
var augmentedShape = theory.IntervalPattern{0, 4, 8}

// resolveMatch determines the true root, inversion ordinal and slash
// notation for a matched pattern against the original voicing
func resolveMatch(m lookup.Match, na theory.NoteAnalysis) resolution {
	res := resolution{
		rootMIDI: na.BassNote,
		bassMIDI: na.BassNote,
	}

	// symmetric chords: pick the lowest pitch class present as the root so
	// every rotation renders identically, and never assert inversion or
	// slash notation
	if m.Identity.Intervals.Equal(augmentedShape) {
		res.rootMIDI = symmetricRoot(na.Notes)
		return res
	}

	switch {
	case m.IsInversion:
		// rotation-search match: bass is the chord tone m.BassInterval
		// above the root
		res.isInversion = true
		res.inversionOrdinal = m.InversionOrdinal
		res.rootMIDI = na.BassNote + (12-m.BassInterval)%12
	case na.InversionNum > 0 && !m.Identity.Intervals.Equal(na.Intervals):
		// normalizer recognized one of the fixed triad/seventh shapes; when
		// the match is the literal shape itself the bass stays the root
		res.isInversion = true
		res.inversionOrdinal = na.InversionNum
		res.rootMIDI = na.RootNote
	}

	res.isSlashChord = slashChord(m.Identity, res, na)
	return res
}

// symmetricRoot returns a MIDI value whose pitch class is the lowest pitch
// class sounding in the voicing
func symmetricRoot(notes []int) int {
	if len(notes) == 0 {
		return 0
	}
	lowest := 12
	for _, n := range notes {
		if pc := theory.PitchClass(n); pc < lowest {
			lowest = pc
		}
	}
	base := notes[0] - theory.PitchClass(notes[0])
	return base + lowest
}

// slashChord decides whether the display name carries a slash bass:
// recognized triad/seventh inversions take it by convention, genuine
// non-chord-tone basses always take it, and extended-chord inversions
// conservatively suppress it
func slashChord(identity *dictionary.ChordIdentity, res resolution, na theory.NoteAnalysis) bool {
	rootPC := theory.PitchClass(res.rootMIDI)
	bassPC := theory.PitchClass(res.bassMIDI)
	if rootPC == bassPC {
		return false
	}

	// a bass outside the chord tones is a true slash bass no matter the
	// chord family
	bassInterval := ((bassPC - rootPC) % 12 + 12) % 12
	if !slices.Contains(identity.Intervals, bassInterval) {
		return true
	}

	if res.isInversion {
		switch identity.Category {
		case dictionary.CategoryTriad, dictionary.CategorySeventh:
			return true
		default:
			// upper-structure voicings of 9th/11th/13th chords rarely
			// use slash notation for simple inversions
			return false
		}
	}
	return false
}
