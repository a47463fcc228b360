package identify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIdentifier(t *testing.T) *Identifier {
	t.Helper()
	id, err := New(DefaultConfig())
	require.NoError(t, err)
	return id
}

func TestIdentifyMajorTriad(t *testing.T) {
	assert := assert.New(t)
	id := newTestIdentifier(t)

	res := id.Identify([]int{60, 64, 67})
	assert.True(res.Matched())
	assert.Equal("major-triad", res.ChordName)
	assert.Equal("C", res.RootNote)
	assert.Equal("C", res.FullDisplayName)
	assert.GreaterOrEqual(res.Confidence, 0.9)
	assert.False(res.IsInversion)
	assert.False(res.IsSlashChord)
	assert.Nil(res.Error)
	assert.NotEmpty(res.ID)
	assert.Positive(res.ProcessingTime)
}

func TestIdentifyFirstInversion(t *testing.T) {
	assert := assert.New(t)
	id := newTestIdentifier(t)

	// E-G-C: C major with E in the bass
	res := id.Identify([]int{64, 67, 72})
	assert.Equal("major-triad", res.ChordName)
	assert.Equal("C", res.RootNote)
	assert.Equal("E", res.BassNote)
	assert.True(res.IsInversion)
	assert.Equal(1, res.InversionOrdinal)
	assert.True(res.IsSlashChord)
	assert.Equal("C/E", res.FullDisplayName)
	assert.InDelta(0.95, res.Confidence, 1e-9)
}

func TestIdentifyDominantSeventh(t *testing.T) {
	assert := assert.New(t)
	id := newTestIdentifier(t)

	res := id.Identify([]int{60, 64, 67, 70})
	assert.Equal("dominant-seventh", res.ChordName)
	assert.Equal("C7", res.FullDisplayName)
	assert.InDelta(1.0, res.Confidence, 1e-9)
	assert.False(res.IsSlashChord)
}

func TestAugmentedRotationsAgree(t *testing.T) {
	assert := assert.New(t)
	id := newTestIdentifier(t)

	// every rotation of the augmented shape is the same chord; the lowest
	// pitch class present names it and no voicing claims slash notation
	voicings := [][]int{
		{60, 64, 68},
		{64, 68, 72},
		{68, 72, 76},
	}
	for _, v := range voicings {
		res := id.Identify(v)
		assert.Equal("augmented-triad", res.ChordName, "voicing %v", v)
		assert.Equal("C+", res.FullDisplayName, "voicing %v", v)
		assert.False(res.IsInversion, "voicing %v", v)
		assert.False(res.IsSlashChord, "voicing %v", v)
	}
}

func TestIdentifyInvalidInput(t *testing.T) {
	assert := assert.New(t)
	id := newTestIdentifier(t)

	res := id.Identify(nil)
	assert.Equal(InvalidChordName, res.ChordName)
	assert.False(res.Matched())
	if assert.NotNil(res.Error) {
		assert.Equal(ErrCodeEmptyInput, res.Error.Code)
		assert.Equal(SeverityError, res.Error.Severity)
	}

	res = id.Identify([]int{60, 200})
	if assert.NotNil(res.Error) {
		assert.Equal(ErrCodeNoteOutOfRange, res.Error.Code)
	}
}

func TestIdentifySafeReturnsTaggedError(t *testing.T) {
	assert := assert.New(t)
	id := newTestIdentifier(t)

	_, err := id.IdentifySafe([]int{})
	assert.Error(err)
	var ierr *IdentificationError
	if assert.ErrorAs(err, &ierr) {
		assert.Equal(ErrCodeEmptyInput, ierr.Code)
	}

	res, err := id.IdentifySafe([]int{60, 64, 67})
	assert.NoError(err)
	assert.True(res.Matched())
}

func TestUnknownIsNotAnError(t *testing.T) {
	assert := assert.New(t)
	id := newTestIdentifier(t)

	// C-Db-Eb matches nothing under the default mode: no stored shape has
	// this geometry in any rotation
	res, err := id.IdentifySafe([]int{60, 61, 63})
	assert.NoError(err)
	assert.Equal(UnknownChordName, res.ChordName)
	assert.Equal(UnknownChordName, res.FullDisplayName)
	assert.Zero(res.Confidence)
	assert.False(res.Matched())
}

func TestModeDepth(t *testing.T) {
	assert := assert.New(t)
	id := newTestIdentifier(t)

	// C-D-Eb is no stored shape and no rotation of one, but reads as a
	// minor add-9 missing its fifth; only the deeper modes reach it
	notes := []int{60, 62, 63}

	res := id.IdentifyWithMode(notes, ModeFast)
	assert.Equal(UnknownChordName, res.ChordName)

	res = id.IdentifyWithMode(notes, ModeStandard)
	assert.Equal(UnknownChordName, res.ChordName)

	res = id.IdentifyWithMode(notes, ModeComprehensive)
	assert.Equal("minor-added-ninth", res.ChordName)
	assert.Less(res.Confidence, 0.9)
	assert.GreaterOrEqual(res.Confidence, 0.5)
}

func TestAnalyticalAlternatives(t *testing.T) {
	assert := assert.New(t)
	id := newTestIdentifier(t)

	res := id.IdentifyWithMode([]int{60, 62, 64, 67, 69}, ModeAnalytical)
	assert.Equal("six-nine", res.ChordName)
	assert.NotEmpty(res.Alternatives)
	assert.LessOrEqual(len(res.Alternatives), DefaultConfig().MaxAlternatives)
	for _, alt := range res.Alternatives {
		assert.NotEqual(res.ChordName, alt.ChordName)
		assert.LessOrEqual(alt.Confidence, res.Confidence)
		assert.GreaterOrEqual(alt.Confidence, ModeAnalytical.Threshold())
	}
}

func TestIdentifyWithBass(t *testing.T) {
	assert := assert.New(t)
	id := newTestIdentifier(t)

	// explicit bass an octave below the chord collapses onto the root
	res := id.IdentifyWithBass([]int{60, 64, 67}, 48)
	assert.Equal("major-triad", res.ChordName)
	assert.Equal("C", res.RootNote)
	assert.False(res.IsSlashChord)

	res = id.IdentifyWithBass([]int{60, 64, 67}, 300)
	if assert.NotNil(res.Error) {
		assert.Equal(ErrCodeInvalidBass, res.Error.Code)
	}
}

func TestDuplicateNotesWarn(t *testing.T) {
	assert := assert.New(t)
	id := newTestIdentifier(t)

	res := id.Identify([]int{60, 60, 64, 67})
	assert.Equal("major-triad", res.ChordName)
	assert.NotEmpty(res.Warnings)
}

func TestIdentifyBatchPreservesOrder(t *testing.T) {
	assert := assert.New(t)
	id := newTestIdentifier(t)

	batch := [][]int{
		{60, 64, 67},
		{60, 63, 67},
		{60, 64, 67, 70},
	}
	results := id.IdentifyBatch(batch)
	if assert.Len(results, 3) {
		assert.Equal("major-triad", results[0].ChordName)
		assert.Equal("minor-triad", results[1].ChordName)
		assert.Equal("dominant-seventh", results[2].ChordName)
	}
}

func TestStatsCountIdentifications(t *testing.T) {
	assert := assert.New(t)
	id := newTestIdentifier(t)

	for i := 0; i < 5; i++ {
		id.Identify([]int{60, 64, 67})
	}
	stats := id.Stats()
	assert.Equal(uint64(5), stats.Identifications)
	assert.Positive(stats.TotalTime)
	assert.GreaterOrEqual(stats.Engine.Lookups, uint64(1))
}

func TestComprehensiveRunsOneExactLookup(t *testing.T) {
	assert := assert.New(t)
	id := newTestIdentifier(t)

	// the deeper modes add the fuzzy scan but never repeat the exact stage
	id.IdentifyWithMode([]int{60, 64, 67}, ModeComprehensive)
	stats := id.Stats()
	assert.Equal(uint64(1), stats.Engine.Lookups)
	assert.Equal(uint64(1), stats.Engine.FuzzyScans)
}

func TestDisabledInversionDetection(t *testing.T) {
	assert := assert.New(t)
	cfg := DefaultConfig()
	cfg.DetectInversion = false
	id, err := New(cfg)
	assert.NoError(err)

	// the first-inversion shape must now match only as the literal pattern,
	// which the compiled table names in its own right
	res := id.Identify([]int{64, 67, 72})
	assert.False(res.IsInversion)
	assert.Equal("minor-sharp-five", res.ChordName)
}

func TestNewRequiresStore(t *testing.T) {
	assert := assert.New(t)

	_, err := NewWithStore(nil, DefaultConfig())
	assert.ErrorIs(err, ErrStoreNotReady)
}

func TestParseMode(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(ModeFast, ParseMode("fast"))
	assert.Equal(ModeAnalytical, ParseMode(" ANALYTICAL "))
	assert.Equal(ModeStandard, ParseMode("bogus"))
	assert.Greater(ModeFast.Threshold(), ModeStandard.Threshold())
	assert.Greater(ModeStandard.Threshold(), ModeComprehensive.Threshold())
	assert.Greater(ModeComprehensive.Threshold(), ModeAnalytical.Threshold())
}

func TestMinConfidenceOverride(t *testing.T) {
	assert := assert.New(t)
	cfg := DefaultConfig()
	cfg.MinConfidence = 0.99
	id, err := New(cfg)
	assert.NoError(err)

	// exact matches still clear a strict floor; inversions (0.95) do not
	res := id.Identify([]int{60, 64, 67})
	assert.True(res.Matched())
	res = id.Identify([]int{64, 67, 72})
	assert.Equal(UnknownChordName, res.ChordName)
}
