package theory

import "fmt"

// MIDI note range and chord size limits
const (
	MinMIDINote  = 0
	MaxMIDINote  = 127
	MaxChordSize = 16
)

// AccidentalStyle selects how altered pitch classes are spelled
type AccidentalStyle int

const (
	AccidentalSharps AccidentalStyle = iota // C#, D#, F#, G#, A#
	AccidentalFlats                         // Db, Eb, Gb, Ab, Bb
	AccidentalMixed                         // sharps, except conventional flat spellings (Bb, Eb, Ab)
)

var sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var flatNames = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

// conventionalFlats are pitch classes that are spelled flat in mixed style
// regardless of key context: Eb (3), Ab (8), Bb (10)
var conventionalFlats = [12]bool{3: true, 8: true, 10: true}

// PitchClass reduces a MIDI note number to its pitch class (0=C .. 11=B)
func PitchClass(midi int) int {
	return ((midi % 12) + 12) % 12
}

// PitchClassName returns the name of a pitch class in the given style
func PitchClassName(pc int, style AccidentalStyle) string {
	pc = ((pc % 12) + 12) % 12
	switch style {
	case AccidentalFlats:
		return flatNames[pc]
	case AccidentalMixed:
		if conventionalFlats[pc] {
			return flatNames[pc]
		}
		return sharpNames[pc]
	default:
		return sharpNames[pc]
	}
}

// Octave returns the scientific pitch octave of a MIDI note (60 -> 4)
func Octave(midi int) int {
	return midi/12 - 1
}

// NoteName returns a scientific pitch name for a MIDI note, e.g. 60 -> "C4"
func NoteName(midi int, style AccidentalStyle) string {
	return fmt.Sprintf("%s%d", PitchClassName(PitchClass(midi), style), Octave(midi))
}

// ValidNote reports whether a value is a playable MIDI note number
func ValidNote(midi int) bool {
	return midi >= MinMIDINote && midi <= MaxMIDINote
}

// NoteNamer converts MIDI numbers and pitch classes to display names.
// The chord name renderer depends on this interface rather than on the
// standard spelling directly so embedders can substitute their own
// enharmonic conventions.
type NoteNamer interface {
	PitchClassName(pc int, style AccidentalStyle) string
	NoteName(midi int, style AccidentalStyle) string
}

// StandardNamer is the default NoteNamer using scientific pitch notation
type StandardNamer struct{}

func (StandardNamer) PitchClassName(pc int, style AccidentalStyle) string {
	return PitchClassName(pc, style)
}

func (StandardNamer) NoteName(midi int, style AccidentalStyle) string {
	return NoteName(midi, style)
}
