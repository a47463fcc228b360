package theory

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMajorTriad(t *testing.T) {
	assert := assert.New(t)

	res, err := NormalizeNotes([]int{60, 64, 67})
	assert.NoError(err)
	assert.Equal(IntervalPattern{0, 4, 7}, res.Intervals)
	assert.Equal(60, res.BassNote)
	assert.Equal(60, res.RootNote)
	assert.False(res.HasInversion)
	assert.Equal(0, res.InversionNum)
}

func TestNormalizeFirstInversion(t *testing.T) {
	assert := assert.New(t)

	// E-G-C: C major first inversion
	res, err := NormalizeNotes([]int{64, 67, 72})
	assert.NoError(err)
	assert.Equal(IntervalPattern{0, 3, 8}, res.Intervals)
	assert.Equal(64, res.BassNote)
	assert.Equal(72, res.RootNote)
	assert.True(res.HasInversion)
	assert.Equal(1, res.InversionNum)
}

func TestNormalizeUnsortedInput(t *testing.T) {
	assert := assert.New(t)

	res, err := NormalizeNotes([]int{67, 60, 64})
	assert.NoError(err)
	assert.Equal(IntervalPattern{0, 4, 7}, res.Intervals)
	assert.Equal(60, res.BassNote)
}

func TestNormalizeDuplicatesWarn(t *testing.T) {
	assert := assert.New(t)

	res, err := NormalizeNotes([]int{60, 60, 64, 67})
	assert.NoError(err)
	assert.Equal(IntervalPattern{0, 4, 7}, res.Intervals)
	assert.NotEmpty(res.Warnings)
}

func TestNormalizeValidation(t *testing.T) {
	assert := assert.New(t)

	_, err := NormalizeNotes(nil)
	assert.ErrorIs(err, ErrEmptyInput)

	_, err = NormalizeNotes([]int{60, 128})
	assert.ErrorIs(err, ErrNoteOutOfRange)

	_, err = NormalizeNotes([]int{60, -1})
	assert.ErrorIs(err, ErrNoteOutOfRange)

	tooMany := make([]int, MaxChordSize+1)
	for i := range tooMany {
		tooMany[i] = 30 + i
	}
	_, err = NormalizeNotes(tooMany)
	assert.ErrorIs(err, ErrTooManyNotes)

	// an explicit bass outside the note set counts against the limit too
	atLimit := tooMany[:MaxChordSize]
	_, err = NormalizeNotesWithBass(atLimit, 20)
	assert.ErrorIs(err, ErrTooManyNotes)
	_, err = NormalizeNotesWithBass(atLimit, atLimit[0])
	assert.NoError(err)
}

func TestNormalizeWithExplicitBass(t *testing.T) {
	assert := assert.New(t)

	// bass below the chord, not among the notes
	res, err := NormalizeNotesWithBass([]int{64, 67, 72}, 48)
	assert.NoError(err)
	assert.Equal(48, res.BassNote)
	assert.Equal(IntervalPattern{0, 4, 7}, res.Intervals)

	_, err = NormalizeNotesWithBass([]int{60, 64, 67}, 200)
	assert.ErrorIs(err, ErrInvalidBass)
}

func TestNormalizeWithBassAboveNotes(t *testing.T) {
	assert := assert.New(t)

	// notes below the specified bass fold upward, never negative
	res, err := NormalizeNotesWithBass([]int{55, 59, 62}, 67)
	assert.NoError(err)
	for _, iv := range res.Intervals {
		assert.GreaterOrEqual(iv, 0)
		assert.LessOrEqual(iv, 11)
	}
	assert.Equal(0, res.Intervals[0])
}

func TestPedalBassDetection(t *testing.T) {
	assert := assert.New(t)

	// octave gap below the chord body
	res, _ := NormalizeNotes([]int{36, 60, 64, 67})
	assert.True(res.PedalBass)

	// close-position triad: lowest note is just a chord tone,
	// but the fifth relation still reads as intentional
	res, _ = NormalizeNotes([]int{60, 64, 67})
	assert.True(res.PedalBass)

	// cluster with no fifth/octave over the bass
	res, _ = NormalizeNotes([]int{60, 61, 62})
	assert.False(res.PedalBass)
}

func TestScalarAndBatchIntervalsIdentical(t *testing.T) {
	assert := assert.New(t)

	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 500; trial++ {
		n := 1 + rng.Intn(MaxChordSize)
		notes := make([]int, n)
		for i := range notes {
			notes[i] = rng.Intn(128)
		}
		bass := rng.Intn(128)
		assert.Equal(
			computeIntervalsScalar(notes, bass),
			computeIntervalsBatch(notes, bass),
			"notes=%v bass=%d", notes, bass,
		)
	}
}

func TestChromaticClusterIsStructurallyValid(t *testing.T) {
	assert := assert.New(t)

	notes := make([]int, 12)
	for i := range notes {
		notes[i] = 60 + i
	}
	res, err := NormalizeNotes(notes)
	assert.NoError(err)
	assert.Len(res.Intervals, 12)
	assert.True(res.Intervals.IsCanonical())
}
