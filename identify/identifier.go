package identify

import (
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/chordial/chordial/dictionary"
	"github.com/chordial/chordial/logging"
	"github.com/chordial/chordial/lookup"
	"github.com/chordial/chordial/naming"
	"github.com/chordial/chordial/theory"
)

// Mode selects how deep the lookup cascade goes and how much confidence a
// match needs to be reported
type Mode int

const (
	ModeFast          Mode = iota // exact match only
	ModeStandard                  // exact + inversion search
	ModeComprehensive             // adds tension/omission fuzzy fallback
	ModeAnalytical                // adds ranked alternatives, widest net
)

func (m Mode) String() string {
	switch m {
	case ModeFast:
		return "fast"
	case ModeStandard:
		return "standard"
	case ModeComprehensive:
		return "comprehensive"
	case ModeAnalytical:
		return "analytical"
	default:
		return "unknown"
	}
}

// Threshold returns the minimum confidence a candidate needs under this
// mode. Thresholds are strictly decreasing as modes get more permissive.
func (m Mode) Threshold() float64 {
	switch m {
	case ModeFast:
		return 0.9
	case ModeStandard:
		return 0.7
	case ModeComprehensive:
		return 0.5
	case ModeAnalytical:
		return 0.3
	default:
		return 0.7
	}
}

// ParseMode maps a mode name to a Mode, defaulting to standard
func ParseMode(name string) Mode {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fast":
		return ModeFast
	case "comprehensive":
		return ModeComprehensive
	case "analytical":
		return ModeAnalytical
	default:
		return ModeStandard
	}
}

// confidence applied to an inversion recognized by the normalizer's fixed
// shape table; higher than the generic rotation penalty because the shape
// carries an unambiguous root reading
const shapeInversionPenalty = 0.95

// Config holds the identification options
type Config struct {
	Mode            Mode              `json:"mode"`
	MinConfidence   float64           `json:"min_confidence"` // 0 means the mode's default; clamped to [0,1]
	Style           naming.Style      `json:"style"`
	Key             naming.KeyContext `json:"key"`
	DetectSlash     bool              `json:"detect_slash"`
	DetectInversion bool              `json:"detect_inversion"`
	TensionAnalysis bool              `json:"tension_analysis"` // allow fuzzy readings in the deeper modes
	MaxAlternatives int               `json:"max_alternatives"`
	Lookup          lookup.Config     `json:"lookup"`
}

// DefaultConfig returns the default identification configuration
func DefaultConfig() Config {
	return Config{
		Mode:            ModeStandard,
		Style:           naming.StyleJazz,
		Key:             naming.AutoDetect,
		DetectSlash:     true,
		DetectInversion: true,
		TensionAnalysis: true,
		MaxAlternatives: 5,
		Lookup:          lookup.DefaultConfig(),
	}
}

// Identifier is the identification façade: normalization, the lookup
// cascade, root/inversion resolution and name rendering behind one call.
// A shared Identifier is safe for concurrent use; the statistics counters
// are atomic and eventually consistent.
type Identifier struct {
	store    *dictionary.Store
	engine   *lookup.Engine
	renderer *naming.Renderer
	cfg      Config
	logger   logging.Logger

	identifications atomic.Uint64
	totalTimeNanos  atomic.Int64
}

// New builds an identifier over the compiled chord table
func New(cfg Config) (*Identifier, error) {
	return NewWithStore(dictionary.NewStore(), cfg)
}

// NewWithStore builds an identifier over a caller-provided pattern store
// (e.g. one loaded from a dictionary file)
func NewWithStore(store *dictionary.Store, cfg Config) (*Identifier, error) {
	if store == nil || store.Len() == 0 {
		return nil, ErrStoreNotReady
	}
	engine, err := lookup.NewEngine(store, cfg.Lookup)
	if err != nil {
		return nil, err
	}
	if cfg.MaxAlternatives <= 0 {
		cfg.MaxAlternatives = 5
	}
	id := &Identifier{
		store:    store,
		engine:   engine,
		renderer: naming.NewRenderer(cfg.Style, cfg.Key),
		cfg:      cfg,
		logger:   logging.WithFields(logging.Fields{"component": "identifier"}),
	}
	id.logger.Debug("identifier ready", logging.Fields{
		"patterns": store.Len(),
		"mode":     cfg.Mode.String(),
	})
	return id, nil
}

// threshold resolves the effective confidence floor for a mode
func (id *Identifier) threshold(mode Mode) float64 {
	t := id.cfg.MinConfidence
	if t <= 0 {
		return mode.Threshold()
	}
	return min(t, 1.0)
}

// Identify names a chord from MIDI notes using the configured mode. It
// always returns a result: unmatched input yields UNKNOWN, structurally
// invalid input yields INVALID with the validation error attached.
func (id *Identifier) Identify(notes []int) Result {
	return id.identify(notes, -1, id.cfg.Mode)
}

// IdentifyWithMode is Identify under an explicit mode
func (id *Identifier) IdentifyWithMode(notes []int, mode Mode) Result {
	return id.identify(notes, -1, mode)
}

// IdentifyWithBass measures the chord against an explicitly sounding bass
// note instead of the lowest input note
func (id *Identifier) IdentifyWithBass(notes []int, bass int) Result {
	return id.identify(notes, bass, id.cfg.Mode)
}

// IdentifySafe validates input strictly and returns a tagged error instead
// of a best-effort INVALID result. Duplicate notes remain a warning, not
// an error.
func (id *Identifier) IdentifySafe(notes []int) (Result, error) {
	res := id.identify(notes, -1, id.cfg.Mode)
	if res.Error != nil {
		return res, res.Error
	}
	return res, nil
}

// IdentifyBatch identifies a sequence of chords, one result per input in
// input order
func (id *Identifier) IdentifyBatch(batch [][]int) []Result {
	out := make([]Result, len(batch))
	for i, notes := range batch {
		out[i] = id.identify(notes, -1, id.cfg.Mode)
	}
	return out
}

func (id *Identifier) identify(notes []int, bass int, mode Mode) Result {
	start := time.Now()
	res := Result{
		ID:    uuid.NewString(),
		Notes: notes,
	}
	defer func() {
		id.identifications.Add(1)
		id.totalTimeNanos.Add(time.Since(start).Nanoseconds())
	}()

	var na theory.NoteAnalysis
	var err error
	if bass >= 0 {
		na, err = theory.NormalizeNotesWithBass(notes, bass)
	} else {
		na, err = theory.NormalizeNotes(notes)
	}
	if err != nil {
		res.ChordName = InvalidChordName
		res.Error = classify(err)
		res.ProcessingTime = time.Since(start)
		return res
	}

	res.Notes = na.Notes
	res.Intervals = na.Intervals
	res.Warnings = na.Warnings
	res.NoteNames = id.renderer.NoteNames(na.Notes)

	matches := id.gatherMatches(na, mode)
	threshold := id.threshold(mode)

	if len(matches) == 0 || matches[0].Confidence < threshold {
		res.ChordName = UnknownChordName
		res.FullDisplayName = UnknownChordName
		res.ProcessingTime = time.Since(start)
		return res
	}

	best := matches[0]
	id.fill(&res, best, na)

	if mode == ModeAnalytical {
		for _, m := range matches[1:] {
			if m.Confidence < threshold {
				continue
			}
			res.Alternatives = append(res.Alternatives, Alternative{
				ChordName:  m.Identity.Name,
				Confidence: m.Confidence,
			})
			if len(res.Alternatives) >= id.cfg.MaxAlternatives {
				break
			}
		}
	}

	res.ProcessingTime = time.Since(start)
	return res
}

// gatherMatches runs the mode-appropriate cascade depth and returns ranked
// candidates
func (id *Identifier) gatherMatches(na theory.NoteAnalysis, mode Mode) []lookup.Match {
	var matches []lookup.Match

	// a normalizer-recognized inversion shape resolves through its
	// root-position pattern, so E-G-C reads as C major over E rather than
	// as a distinct shape
	if na.InversionNum > 0 && id.cfg.DetectInversion {
		rootPos := theory.RootPosition(na.Intervals)
		if m, ok := id.engine.Find(rootPos); ok {
			// the resolver reads the root and ordinal off the analysis, so
			// the match itself stays a plain root-position hit
			m.Confidence *= shapeInversionPenalty
			matches = append(matches, m)
		}
	}

	if len(matches) == 0 {
		if m, ok := id.engine.Find(na.Intervals); ok {
			matches = append(matches, m)
		}
	}

	if len(matches) == 0 && mode >= ModeStandard && id.cfg.DetectInversion {
		if m, ok := id.engine.FindRotation(na.Intervals); ok {
			matches = append(matches, m)
		}
	}

	if mode >= ModeComprehensive && id.cfg.TensionAnalysis {
		// fuzzy stage only; the exact and rotation stages already ran above
		fuzzy := id.engine.FindFuzzyRanked(na.Intervals, id.cfg.MaxAlternatives+1, mode.Threshold())
		for _, fm := range fuzzy {
			if !containsName(matches, fm.Identity.Name) {
				matches = append(matches, fm)
			}
		}
	}
	return matches
}

func containsName(matches []lookup.Match, name string) bool {
	for _, m := range matches {
		if m.Identity.Name == name {
			return true
		}
	}
	return false
}

// fill populates the result from the winning match
func (id *Identifier) fill(res *Result, best lookup.Match, na theory.NoteAnalysis) {
	resolved := resolveMatch(best, na)
	if !id.cfg.DetectSlash {
		resolved.isSlashChord = false
	}
	if !id.cfg.DetectInversion {
		resolved.isInversion = false
		resolved.inversionOrdinal = 0
	}

	rendered := id.renderer.Render(
		best.Identity.Name,
		resolved.rootMIDI,
		resolved.bassMIDI,
		resolved.isSlashChord,
		pitchClasses(na.Notes),
	)

	res.ChordName = best.Identity.Name
	res.RootNote = rendered.RootNote
	res.ChordSymbol = rendered.ChordSymbol
	res.BassNote = rendered.BassNote
	res.FullDisplayName = rendered.FullName
	res.Confidence = best.Confidence
	res.IsInversion = resolved.isInversion
	res.InversionOrdinal = resolved.inversionOrdinal
	res.IsSlashChord = resolved.isSlashChord
	res.Category = string(best.Identity.Category)
	res.Quality = best.Identity.Quality
}

func pitchClasses(notes []int) []int {
	out := make([]int, len(notes))
	for i, n := range notes {
		out[i] = theory.PitchClass(n)
	}
	return out
}

// Stats is a snapshot of the identifier's running totals plus the
// underlying engine counters
type Stats struct {
	Identifications uint64        `json:"identifications"`
	TotalTime       time.Duration `json:"total_time_ns"`
	Engine          lookup.Stats  `json:"engine"`
}

// Stats returns the running totals. Counters are eventually consistent
// under concurrent use.
func (id *Identifier) Stats() Stats {
	return Stats{
		Identifications: id.identifications.Load(),
		TotalTime:       time.Duration(id.totalTimeNanos.Load()),
		Engine:          id.engine.Stats(),
	}
}

// ClearCaches drops the engine's derived caches; purely a performance
// reset
func (id *Identifier) ClearCaches() {
	id.engine.ClearCaches()
}

// Warmup primes the engine's caches with the most common shapes
func (id *Identifier) Warmup() {
	id.engine.Warmup()
}

// Store exposes the identifier's pattern store
func (id *Identifier) Store() *dictionary.Store {
	return id.store
}
