package naming

import (
	"gonum.org/v1/gonum/stat"

	"github.com/chordial/chordial/theory"
)

// KeyContext supplies the key a chord is heard in, which decides the
// accidental spelling of its note names. The zero value auto-detects a
// representative key from the notes themselves.
type KeyContext struct {
	Tonic int  // pitch class of the major-key tonic
	Auto  bool // detect the tonic from the input notes
}

// AutoDetect is the key context that infers a key per identification
var AutoDetect = KeyContext{Auto: true}

// KeyOf fixes the key context to the major key on the given tonic pitch
// class
func KeyOf(tonic int) KeyContext {
	return KeyContext{Tonic: ((tonic % 12) + 12) % 12}
}

// majorProfile is the Krumhansl-Kessler major key profile: perceived
// stability of each scale degree relative to the tonic
var majorProfile = []float64{6.35, 2.23, 3.48, 2.33, 4.38, 4.09, 2.52, 5.19, 2.39, 3.66, 2.29, 2.88}

// sharpKeys and flatKeys partition the major-key tonics by signature.
// C (0) is in neither and keeps the mixed default spelling.
var sharpKeys = map[int]bool{7: true, 2: true, 9: true, 4: true, 11: true, 6: true}
var flatKeys = map[int]bool{5: true, 10: true, 3: true, 8: true, 1: true}

// DetectKey scores the pitch-class content of a note set against all 12
// transpositions of the major key profile and returns the best-correlated
// tonic with its correlation score. Ties resolve to the lowest tonic, so a
// neutral set lands on C.
func DetectKey(pitchClasses []int) (tonic int, score float64) {
	presence := make([]float64, 12)
	for _, pc := range pitchClasses {
		presence[((pc%12)+12)%12] = 1
	}

	best := -2.0
	tonic = 0
	for shift := 0; shift < 12; shift++ {
		rotated := make([]float64, 12)
		for i := range rotated {
			rotated[i] = majorProfile[((i-shift)%12+12)%12]
		}
		r := stat.Correlation(presence, rotated, nil)
		if r > best {
			best = r
			tonic = shift
		}
	}
	return tonic, best
}

// AccidentalsFor resolves the key context (auto-detecting if requested)
// into the accidental style used to spell the given notes
func (kc KeyContext) AccidentalsFor(pitchClasses []int) theory.AccidentalStyle {
	tonic := kc.Tonic
	if kc.Auto {
		tonic, _ = DetectKey(pitchClasses)
	}
	switch {
	case sharpKeys[tonic]:
		return theory.AccidentalSharps
	case flatKeys[tonic]:
		return theory.AccidentalFlats
	default:
		return theory.AccidentalMixed
	}
}
