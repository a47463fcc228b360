package lookup

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chordial/chordial/dictionary"
	"github.com/chordial/chordial/theory"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(dictionary.NewStore(), DefaultConfig())
	assert.NoError(t, err)
	return e
}

func TestEngineRequiresLoadedStore(t *testing.T) {
	_, err := NewEngine(nil, DefaultConfig())
	assert.Error(t, err)
}

func TestFindExact(t *testing.T) {
	assert := assert.New(t)
	e := newTestEngine(t)

	m, ok := e.Find(theory.IntervalPattern{0, 4, 7})
	assert.True(ok)
	assert.Equal("major-triad", m.Identity.Name)
	assert.InDelta(1.0, m.Confidence, 1e-9)
	assert.False(m.IsInversion)
}

func TestFindUsesCacheOnRepeat(t *testing.T) {
	assert := assert.New(t)
	e := newTestEngine(t)

	p := theory.IntervalPattern{0, 4, 7, 10}
	_, ok := e.Find(p)
	assert.True(ok)

	m, ok := e.Find(p)
	assert.True(ok)
	assert.Equal(StageCache, m.Stage)
	assert.Equal(uint64(1), e.Stats().CacheHits)

	e.ClearCaches()
	m, ok = e.Find(p)
	assert.True(ok)
	assert.NotEqual(StageCache, m.Stage)
}

func TestFastTableServesCommonShapes(t *testing.T) {
	assert := assert.New(t)
	e := newTestEngine(t)
	e.ClearCaches()

	m, ok := e.Find(theory.IntervalPattern{0, 3, 7})
	assert.True(ok)
	assert.Equal(StageFast, m.Stage)
	assert.Equal("minor-triad", m.Identity.Name)
}

func TestCollapseRetryPenalty(t *testing.T) {
	assert := assert.New(t)
	e := newTestEngine(t)

	// wide voicing: octave-spread major triad folds to 0-4-7
	m, ok := e.Find(theory.IntervalPattern{0, 16, 31})
	assert.True(ok)
	assert.Equal("major-triad", m.Identity.Name)
	assert.InDelta(collapsePenalty, m.Confidence, 1e-9)
}

func TestBloomNeverRejectsStoredPatterns(t *testing.T) {
	assert := assert.New(t)
	store := dictionary.NewStore()
	e, err := NewEngine(store, DefaultConfig())
	assert.NoError(err)

	// soundness: no false negatives for anything the cascade can resolve
	for _, ci := range store.All() {
		assert.True(e.bloom.MayContain(ci.Key()), ci.Name)
		for _, rot := range ci.Intervals.Rotations() {
			assert.True(e.bloom.MayContain(rot.Key()), "%s rotation %v", ci.Name, rot)
		}
	}
}

func TestBloomNegativeMeansNoMatch(t *testing.T) {
	assert := assert.New(t)
	store := dictionary.NewStore()
	e, err := NewEngine(store, DefaultConfig())
	assert.NoError(err)

	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 200; trial++ {
		p := randomPattern(rng)
		if !e.bloom.MayContain(p.Key()) {
			_, stored := store.Find(p)
			_, rotated := store.FindRotation(p)
			assert.False(stored || rotated, "bloom false negative for %v", p)
		}
	}
}

func randomPattern(rng *rand.Rand) theory.IntervalPattern {
	n := 1 + rng.Intn(6)
	p := make(theory.IntervalPattern, n)
	for i := range p {
		p[i] = rng.Intn(12)
	}
	return p.Canonical()
}

func TestFindRotation(t *testing.T) {
	assert := assert.New(t)
	e := newTestEngine(t)

	// second inversion of the dominant seventh
	m, ok := e.FindRotation(theory.IntervalPattern{0, 3, 5, 9})
	assert.True(ok)
	assert.Equal("dominant-seventh", m.Identity.Name)
	assert.True(m.IsInversion)
	assert.Equal(2, m.InversionOrdinal)
	assert.Equal(7, m.BassInterval)
	assert.InDelta(rotationPenalty, m.Confidence, 1e-9)
}

func TestFindFuzzyAnnotatesMissingAndExtra(t *testing.T) {
	assert := assert.New(t)
	e := newTestEngine(t)

	// major triad with an added flat nine smudge: not stored exactly
	input := theory.IntervalPattern{0, 1, 7}
	matches := e.FindFuzzy(input, 0.4)
	assert.NotEmpty(matches)

	var power *Match
	for i := range matches {
		if matches[i].Identity.Name == "power-chord" {
			power = &matches[i]
		}
	}
	assert.NotNil(power)
	assert.True(power.IsFuzzy)
	assert.Empty(power.MissingNotes)
	assert.Equal([]int{1}, power.ExtraNotes)
}

func TestFindBestMatchesPrefersSpecificName(t *testing.T) {
	assert := assert.New(t)
	e := newTestEngine(t)

	// five-note six-nine set: the exact five-note name must outrank any
	// smaller generic reading offered by the fuzzy stage
	matches := e.FindBestMatches(theory.IntervalPattern{0, 2, 4, 7, 9}, 5, 0.4)
	assert.NotEmpty(matches)
	assert.Equal("six-nine", matches[0].Identity.Name)
}

func TestFindBestMatchesTruncates(t *testing.T) {
	assert := assert.New(t)
	e := newTestEngine(t)

	matches := e.FindBestMatches(theory.IntervalPattern{0, 2, 4, 7, 9}, 2, 0.2)
	assert.LessOrEqual(len(matches), 2)
}

func TestFindBestMatchesRankedDescending(t *testing.T) {
	assert := assert.New(t)
	e := newTestEngine(t)

	matches := e.FindBestMatches(theory.IntervalPattern{0, 1, 4, 7, 10}, 5, 0.3)
	assert.NotEmpty(matches)
	assert.Equal("dominant-seventh-flat-nine", matches[0].Identity.Name)
	// ranking is by specificity-adjusted confidence, so raw confidence may
	// only drift a little out of order
	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(matches[i-1].Confidence+0.2, matches[i].Confidence)
	}
}

func TestFindFuzzyRankedSkipsExactStage(t *testing.T) {
	assert := assert.New(t)
	e := newTestEngine(t)

	matches := e.FindFuzzyRanked(theory.IntervalPattern{0, 2, 4, 7, 9}, 3, 0.4)
	assert.NotEmpty(matches)
	assert.LessOrEqual(len(matches), 3)
	for _, m := range matches {
		assert.Equal(StageFuzzy, m.Stage)
	}

	s := e.Stats()
	assert.Equal(uint64(0), s.Lookups)
	assert.Equal(uint64(1), s.FuzzyScans)
}

func TestWarmupPrimesCache(t *testing.T) {
	assert := assert.New(t)
	e := newTestEngine(t)

	e.Warmup()
	before := e.Stats().CacheHits
	_, ok := e.Find(theory.IntervalPattern{0, 4, 7})
	assert.True(ok)
	assert.Greater(e.Stats().CacheHits, before)
}

func TestStatsCount(t *testing.T) {
	assert := assert.New(t)
	e := newTestEngine(t)

	e.Find(theory.IntervalPattern{0, 4, 7})
	e.Find(theory.IntervalPattern{0, 4, 7})
	e.FindFuzzy(theory.IntervalPattern{0, 1, 2, 6}, 0.5)

	s := e.Stats()
	assert.Equal(uint64(2), s.Lookups)
	assert.Equal(uint64(1), s.FuzzyScans)
}

func TestEnginesDoNotShareCaches(t *testing.T) {
	assert := assert.New(t)
	store := dictionary.NewStore()

	e1, err := NewEngine(store, DefaultConfig())
	assert.NoError(err)
	e2, err := NewEngine(store, DefaultConfig())
	assert.NoError(err)

	e1.Find(theory.IntervalPattern{0, 4, 7})
	e1.Find(theory.IntervalPattern{0, 4, 7})
	assert.Equal(uint64(1), e1.Stats().CacheHits)
	assert.Equal(uint64(0), e2.Stats().CacheHits)
}
