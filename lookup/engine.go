package lookup

import (
	"fmt"
	"math/bits"
	"sort"
	"sync/atomic"

	"github.com/chordial/chordial/dictionary"
	"github.com/chordial/chordial/logging"
	"github.com/chordial/chordial/theory"
)

// Stage records which cascade stage produced a match
type Stage string

const (
	StageCache    Stage = "cache"
	StageFast     Stage = "fast"
	StageBackend  Stage = "backend"
	StageCollapse Stage = "collapse"
	StageRotation Stage = "rotation"
	StageFuzzy    Stage = "fuzzy"
)

// confidence penalties for the fallback stages
const (
	collapsePenalty = 0.95
	rotationPenalty = 0.9
)

// Config holds construction-time options for a lookup engine
type Config struct {
	Backend                BackendKind `json:"backend"`
	CacheSize              int         `json:"cache_size"`
	BloomFalsePositiveRate float64     `json:"bloom_false_positive_rate"`
	MaxResults             int         `json:"max_results"`
}

// DefaultConfig returns the default engine configuration
func DefaultConfig() Config {
	return Config{
		Backend:                BackendMap,
		CacheSize:              defaultCacheSize,
		BloomFalsePositiveRate: 0.01,
		MaxResults:             5,
	}
}

// Match is one lookup result: an identity plus how (and how well) it
// matched. Matches are created fresh per call and never cached.
type Match struct {
	Identity         *dictionary.ChordIdentity `json:"identity"`
	Confidence       float64                   `json:"confidence"`
	Stage            Stage                     `json:"stage"`
	IsInversion      bool                      `json:"is_inversion"`
	InversionOrdinal int                       `json:"inversion_ordinal"` // 0 = root position
	BassInterval     int                       `json:"bass_interval"`    // chord tone in the bass, for inversions
	IsFuzzy          bool                      `json:"is_fuzzy"`
	MissingNotes     []int                     `json:"missing_notes,omitempty"` // in stored pattern, absent from input
	ExtraNotes       []int                     `json:"extra_notes,omitempty"`   // in input, absent from stored pattern
}

// Stats is a snapshot of the engine's running counters. Counters are
// atomics; under concurrent use the snapshot is eventually consistent.
type Stats struct {
	Lookups      uint64 `json:"lookups"`
	CacheHits    uint64 `json:"cache_hits"`
	BloomRejects uint64 `json:"bloom_rejects"`
	FuzzyScans   uint64 `json:"fuzzy_scans"`
}

// Engine runs the layered lookup cascade over a read-only pattern store:
// bloom-filter rejection, LRU cache, common-shape fast table, the
// configured definitive backend, then rotation and fuzzy fallbacks. Every
// derived structure is owned by the engine instance; separate engines over
// the same store never contend.
type Engine struct {
	store   *dictionary.Store
	cfg     Config
	backend Backend
	bloom   *negativeFilter
	cache   *matchCache
	fast    *fastTable
	logger  logging.Logger

	lookups      atomic.Uint64
	cacheHits    atomic.Uint64
	bloomRejects atomic.Uint64
	fuzzyScans   atomic.Uint64
}

// NewEngine builds a lookup engine over a store
func NewEngine(store *dictionary.Store, cfg Config) (*Engine, error) {
	if store == nil || store.Len() == 0 {
		return nil, fmt.Errorf("lookup engine requires a loaded pattern store")
	}
	backend, err := NewBackend(cfg.Backend, store)
	if err != nil {
		return nil, err
	}
	e := &Engine{
		store:   store,
		cfg:     cfg,
		backend: backend,
		bloom:   newNegativeFilter(store, cfg.BloomFalsePositiveRate),
		cache:   newMatchCache(cfg.CacheSize),
		fast:    newFastTable(store),
		logger: logging.WithFields(logging.Fields{
			"component": "lookup_engine",
			"backend":   string(backend.Kind()),
		}),
	}
	e.logger.Debug("engine ready", logging.Fields{"patterns": store.Len()})
	return e, nil
}

// Find runs the exact-match stages only: bloom rejection, cache, fast
// table, definitive backend, plus the collapse retry for non-canonical
// input. Rotations and fuzzy matching are separate stages.
func (e *Engine) Find(p theory.IntervalPattern) (Match, bool) {
	e.lookups.Add(1)

	penalty := 1.0
	if !p.IsCanonical() {
		p = p.Canonical()
		penalty = collapsePenalty
	}
	if len(p) == 0 {
		return Match{}, false
	}
	key := p.Key()

	if !e.bloom.MayContain(key) {
		e.bloomRejects.Add(1)
		return Match{}, false
	}

	if name, ok := e.cache.get(key); ok {
		if ci, found := e.store.FindByName(name); found {
			e.cacheHits.Add(1)
			return Match{Identity: ci, Confidence: penalty, Stage: StageCache}, true
		}
	}

	if ci, ok := e.fast.find(p); ok {
		e.cache.put(key, ci.Name)
		return Match{Identity: ci, Confidence: penalty, Stage: StageFast}, true
	}

	if ci, ok := e.backend.Find(key); ok {
		e.cache.put(key, ci.Name)
		stage := StageBackend
		if penalty < 1.0 {
			stage = StageCollapse
		}
		return Match{Identity: ci, Confidence: penalty, Stage: stage}, true
	}

	return Match{}, false
}

// FindRotation matches the pattern as an inversion of a stored pattern:
// the store's rotation table maps every rotation of every stored shape back
// to its root-position identity. The returned match records which chord
// tone sits in the bass.
func (e *Engine) FindRotation(p theory.IntervalPattern) (Match, bool) {
	p = p.Canonical()
	if len(p) == 0 {
		return Match{}, false
	}
	ref, ok := e.store.FindRotation(p)
	if !ok {
		return Match{}, false
	}
	ci, ok := e.store.FindByName(ref.Name)
	if !ok {
		return Match{}, false
	}
	return Match{
		Identity:         ci,
		Confidence:       rotationPenalty,
		Stage:            StageRotation,
		IsInversion:      true,
		InversionOrdinal: ref.Ordinal,
		BassInterval:     ref.BassInterval,
	}, true
}

// FindFuzzy scans the whole store for patterns whose Jaccard similarity to
// the input clears the threshold, annotating each candidate with the notes
// it is missing and the extra notes the input carries
func (e *Engine) FindFuzzy(p theory.IntervalPattern, threshold float64) []Match {
	e.fuzzyScans.Add(1)
	p = p.Canonical()
	if len(p) == 0 || threshold <= 0 {
		return nil
	}
	inputMask := patternMask(p)

	var matches []Match
	for _, ci := range e.store.All() {
		sim := jaccardMask(inputMask, patternMask(ci.Intervals))
		if sim < threshold || sim >= 1.0 {
			continue
		}
		matches = append(matches, Match{
			Identity:     ci,
			Confidence:   sim,
			Stage:        StageFuzzy,
			IsFuzzy:      true,
			MissingNotes: maskDiff(patternMask(ci.Intervals), inputMask),
			ExtraNotes:   maskDiff(inputMask, patternMask(ci.Intervals)),
		})
	}
	return matches
}

// FindBestMatches runs the full cascade and returns up to maxResults
// candidates ranked by adjusted confidence. fuzzyThreshold <= 0 disables
// the fuzzy stage.
func (e *Engine) FindBestMatches(p theory.IntervalPattern, maxResults int, fuzzyThreshold float64) []Match {
	if maxResults <= 0 {
		maxResults = e.cfg.MaxResults
	}
	canonical := p.Canonical()

	var matches []Match
	if exact, ok := e.Find(p); ok {
		matches = append(matches, exact)
	} else if rot, ok := e.FindRotation(canonical); ok {
		matches = append(matches, rot)
	}

	if fuzzyThreshold > 0 {
		seen := make(map[string]bool, len(matches))
		for _, m := range matches {
			seen[m.Identity.Name] = true
		}
		for _, fm := range e.FindFuzzy(canonical, fuzzyThreshold) {
			if !seen[fm.Identity.Name] {
				matches = append(matches, fm)
			}
		}
	}

	rankMatches(matches, len(canonical))
	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}
	return matches
}

// FindFuzzyRanked runs only the fuzzy stage and returns up to maxResults
// candidates ranked by adjusted confidence. Callers that already hold the
// exact-stage result use this instead of FindBestMatches so the exact
// lookup is not repeated.
func (e *Engine) FindFuzzyRanked(p theory.IntervalPattern, maxResults int, threshold float64) []Match {
	if maxResults <= 0 {
		maxResults = e.cfg.MaxResults
	}
	canonical := p.Canonical()
	matches := e.FindFuzzy(canonical, threshold)
	rankMatches(matches, len(canonical))
	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}
	return matches
}

// rankMatches sorts candidates by confidence adjusted for specificity:
// among names competing for the same notes, a pattern of the input's size
// beats a reinterpretation, and small generic shapes are penalized for
// claiming large inputs
func rankMatches(matches []Match, inputSize int) {
	adjusted := func(m Match) float64 {
		score := m.Confidence
		diff := inputSize - len(m.Identity.Intervals)
		if diff > 0 {
			// generic shape claiming a larger input
			score -= 0.05 * float64(diff)
		} else if diff < 0 {
			// stored pattern larger than the input (omission reading)
			score -= 0.02 * float64(-diff)
		}
		return score
	}
	sort.SliceStable(matches, func(i, j int) bool {
		si, sj := adjusted(matches[i]), adjusted(matches[j])
		if si != sj {
			return si > sj
		}
		if matches[i].Identity.Quality != matches[j].Identity.Quality {
			return matches[i].Identity.Quality > matches[j].Identity.Quality
		}
		return matches[i].Identity.Name < matches[j].Identity.Name
	})
}

// ClearCaches drops every disposable structure the engine has accumulated.
// Purely a performance reset: the next lookups rebuild state lazily.
func (e *Engine) ClearCaches() {
	e.cache.clear()
}

// Warmup primes the LRU with the common shapes so the first real lookups
// of a fresh engine do not pay backend cost
func (e *Engine) Warmup() {
	for _, p := range commonShapes {
		e.Find(p)
	}
}

// Stats returns a snapshot of the running counters
func (e *Engine) Stats() Stats {
	return Stats{
		Lookups:      e.lookups.Load(),
		CacheHits:    e.cacheHits.Load(),
		BloomRejects: e.bloomRejects.Load(),
		FuzzyScans:   e.fuzzyScans.Load(),
	}
}

// Backend exposes the configured definitive backend (for benchmarks)
func (e *Engine) Backend() Backend {
	return e.backend
}

// patternMask folds a canonical pattern into a 12-bit pitch-class mask
func patternMask(p theory.IntervalPattern) uint16 {
	var mask uint16
	for _, iv := range p {
		mask |= 1 << uint(iv%12)
	}
	return mask
}

// jaccardMask computes Jaccard similarity between two pitch-class masks
func jaccardMask(a, b uint16) float64 {
	union := bits.OnesCount16(a | b)
	if union == 0 {
		return 0
	}
	return float64(bits.OnesCount16(a&b)) / float64(union)
}

// maskDiff lists the pitch classes present in a but not in b
func maskDiff(a, b uint16) []int {
	var out []int
	for iv := 0; iv < 12; iv++ {
		if a&(1<<uint(iv)) != 0 && b&(1<<uint(iv)) == 0 {
			out = append(out, iv)
		}
	}
	return out
}
