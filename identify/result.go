package identify

import (
	"time"

	"github.com/chordial/chordial/theory"
)

// Placeholder chord names for the two non-match outcomes. UNKNOWN is a
// successful identification that cleared no threshold; INVALID marks
// structurally bad input on the permissive API.
const (
	UnknownChordName = "UNKNOWN"
	InvalidChordName = "INVALID"
)

// Alternative is a lower-ranked candidate reading of the same notes
type Alternative struct {
	ChordName  string  `json:"chord_name"`
	Confidence float64 `json:"confidence"`
}

// Result is the full identification output consumed by CLI and
// serialization layers. A Result is always produced, even for unmatched or
// invalid input; Error is only set by the permissive API when validation
// failed.
type Result struct {
	ID string `json:"id"`

	ChordName       string `json:"chord_name"` // canonical name, UNKNOWN or INVALID
	RootNote        string `json:"root_note"`
	ChordSymbol     string `json:"chord_symbol"`
	BassNote        string `json:"bass_note"`
	FullDisplayName string `json:"full_display_name"`

	Confidence       float64 `json:"confidence"`
	IsInversion      bool    `json:"is_inversion"`
	InversionOrdinal int     `json:"inversion_ordinal"`
	IsSlashChord     bool    `json:"is_slash_chord"`

	Category string  `json:"category,omitempty"`
	Quality  float64 `json:"quality,omitempty"`

	Intervals theory.IntervalPattern `json:"intervals,omitempty"`
	Notes     []int                  `json:"notes,omitempty"`
	NoteNames []string               `json:"note_names,omitempty"`

	Alternatives []Alternative `json:"alternatives,omitempty"`

	ProcessingTime time.Duration `json:"processing_time_ns"`

	Warnings []string             `json:"warnings,omitempty"`
	Error    *IdentificationError `json:"error,omitempty"`
}

// Matched reports whether the result names an actual chord
func (r *Result) Matched() bool {
	return r.ChordName != UnknownChordName && r.ChordName != InvalidChordName && r.ChordName != ""
}
