package naming

import (
	"github.com/chordial/chordial/theory"
)

// Rendered is the display form of an identified chord
type Rendered struct {
	RootNote    string `json:"root_note"`    // e.g. "C"
	ChordSymbol string `json:"chord_symbol"` // e.g. "m7"
	BassNote    string `json:"bass_note"`    // e.g. "E"
	ChordName   string `json:"chord_name"`   // root + symbol, e.g. "Cm7"
	FullName    string `json:"full_name"`    // chord name plus slash bass when needed
}

// forcedFlats are spelled flat regardless of key context; nobody writes an
// A# dominant chord
var forcedFlats = [12]bool{10: true}

// Renderer turns resolved chord matches into display names under one
// naming style and key context
type Renderer struct {
	style Style
	key   KeyContext
	namer theory.NoteNamer
}

// NewRenderer creates a renderer with the default note namer
func NewRenderer(style Style, key KeyContext) *Renderer {
	return &Renderer{style: style, key: key, namer: theory.StandardNamer{}}
}

// NewRendererWithNamer creates a renderer with a custom note-naming
// collaborator
func NewRendererWithNamer(style Style, key KeyContext, namer theory.NoteNamer) *Renderer {
	return &Renderer{style: style, key: key, namer: namer}
}

// Style returns the renderer's naming style
func (r *Renderer) Style() Style {
	return r.style
}

// spell names a pitch class under the resolved accidental preference,
// honoring the forced-flat conventions
func (r *Renderer) spell(pc int, accidentals theory.AccidentalStyle) string {
	pc = ((pc % 12) + 12) % 12
	if forcedFlats[pc] {
		return r.namer.PitchClassName(pc, theory.AccidentalFlats)
	}
	return r.namer.PitchClassName(pc, accidentals)
}

// Render composes the display name for an identified chord. rootMIDI and
// bassMIDI are the resolved root and sounding bass; slash adds the bass
// suffix. pitchClasses is the full sounding content, used only when the
// key context auto-detects.
func (r *Renderer) Render(canonicalName string, rootMIDI, bassMIDI int, slash bool, pitchClasses []int) Rendered {
	accidentals := r.key.AccidentalsFor(pitchClasses)

	root := r.spell(theory.PitchClass(rootMIDI), accidentals)
	bass := r.spell(theory.PitchClass(bassMIDI), accidentals)
	symbol := SymbolFor(r.style, canonicalName)

	name := root + symbol
	full := name
	if slash && bass != root {
		full = name + "/" + bass
	}

	return Rendered{
		RootNote:    root,
		ChordSymbol: symbol,
		BassNote:    bass,
		ChordName:   name,
		FullName:    full,
	}
}

// NoteNames spells every note of a voicing under the renderer's key
// context, e.g. for result display
func (r *Renderer) NoteNames(notes []int) []string {
	pcs := make([]int, len(notes))
	for i, n := range notes {
		pcs[i] = theory.PitchClass(n)
	}
	accidentals := r.key.AccidentalsFor(pcs)

	out := make([]string, len(notes))
	for i, n := range notes {
		if forcedFlats[theory.PitchClass(n)] {
			out[i] = r.namer.NoteName(n, theory.AccidentalFlats)
		} else {
			out[i] = r.namer.NoteName(n, accidentals)
		}
	}
	return out
}
