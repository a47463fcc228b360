package dictionary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chordial/chordial/theory"
)

func TestCompiledStoreFindsCoreChords(t *testing.T) {
	assert := assert.New(t)
	s := NewStore()

	cases := map[string]string{
		"0-4-7":    "major-triad",
		"0-3-7":    "minor-triad",
		"0-4-7-10": "dominant-seventh",
		"0-3-6-9":  "diminished-seventh",
		"0-4-8":    "augmented-triad",
	}
	for key, name := range cases {
		ci, ok := s.FindKey(key)
		assert.True(ok, key)
		assert.Equal(name, ci.Name, key)
	}
}

func TestDuplicateShapesResolveFirstRegistered(t *testing.T) {
	assert := assert.New(t)
	s := NewStore()

	// the compiled table lists "major-triad" before its duplicate
	// spelling "major"; the first entry owns the shape and the second
	// becomes an alias
	ci, ok := s.Find(theory.IntervalPattern{0, 4, 7})
	assert.True(ok)
	assert.Equal("major-triad", ci.Name)
	assert.Contains(ci.Aliases, "major")

	ci, ok = s.Find(theory.IntervalPattern{0, 7})
	assert.True(ok)
	assert.Equal("power-chord", ci.Name)
	assert.Contains(ci.Aliases, "perfect-fifth")
}

func TestQualityScores(t *testing.T) {
	assert := assert.New(t)
	s := NewStore()

	major, _ := s.Find(theory.IntervalPattern{0, 4, 7})
	assert.InDelta(1.0, major.Quality, 1e-9)

	for _, ci := range s.All() {
		assert.GreaterOrEqual(ci.Quality, 0.0, ci.Name)
		assert.LessOrEqual(ci.Quality, 1.0, ci.Name)
	}
}

func TestRotationTablePointsBackToRoot(t *testing.T) {
	assert := assert.New(t)
	s := NewStore()

	// second inversion of dominant-seventh: [0,3,5,9]
	ref, ok := s.FindRotation(theory.IntervalPattern{0, 3, 5, 9})
	assert.True(ok)
	assert.Equal("dominant-seventh", ref.Name)
	assert.Equal(2, ref.Ordinal)
	assert.Equal(7, ref.BassInterval)
}

func TestRotationTableDefersToStoredShapes(t *testing.T) {
	assert := assert.New(t)
	s := NewStore()

	// [0,3,8] is both the major-triad first inversion and the stored
	// minor-sharp-five; the stored shape wins in the rotation table
	_, ok := s.FindRotation(theory.IntervalPattern{0, 3, 8})
	assert.False(ok)
	ci, ok := s.Find(theory.IntervalPattern{0, 3, 8})
	assert.True(ok)
	assert.Equal("minor-sharp-five", ci.Name)
}

func TestRotationClosure(t *testing.T) {
	assert := assert.New(t)
	s := NewStore()

	// every rotation of every stored pattern resolves: either through the
	// rotation table or as a distinctly named stored pattern
	for _, ci := range s.All() {
		for k := 1; k < len(ci.Intervals); k++ {
			rot := ci.Intervals.Rotation(k)
			_, stored := s.Find(rot)
			_, rotated := s.FindRotation(rot)
			assert.True(stored || rotated, "rotation %d of %s (%v)", k, ci.Name, rot)
		}
	}
}

func TestValidateCompiledTable(t *testing.T) {
	s := NewStore()
	assert.Empty(t, s.Validate())
}

func TestAliasBaseline(t *testing.T) {
	assert := assert.New(t)
	at := NewAliasTable()

	canonical, ok := at.Canonical("m7")
	assert.True(ok)
	assert.Equal("minor-seventh", canonical)

	canonical, ok = at.Canonical("°")
	assert.True(ok)
	assert.Equal("diminished-triad", canonical)

	_, ok = at.Canonical("nonsense")
	assert.False(ok)
}

func TestAliasFirstClaimWins(t *testing.T) {
	assert := assert.New(t)
	at := NewAliasTable()

	at.Register("other-chord", "m7")
	canonical, _ := at.Canonical("m7")
	assert.Equal("minor-seventh", canonical)
}

func TestLoadDictionaryFile(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	dictPath := filepath.Join(dir, "chords.yaml")
	content := `
"[0,4,7]": major-triad
"[0,3,7]": minor-triad
"[0,x,7]": broken-entry
"[0,5,7]": ""
"[0,4,7,10]": dominant-seventh
`
	assert.NoError(os.WriteFile(dictPath, []byte(content), 0o644))

	s, err := NewStoreFromFile(dictPath)
	assert.NoError(err)
	assert.Equal(3, s.Len())

	ci, ok := s.Find(theory.IntervalPattern{0, 4, 7, 10})
	assert.True(ok)
	assert.Equal("dominant-seventh", ci.Name)
}

func TestLoadDictionaryFileErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := NewStoreFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(err)

	badPath := filepath.Join(t.TempDir(), "bad.yaml")
	assert.NoError(os.WriteFile(badPath, []byte("- just\n- a\n- list\n"), 0o644))
	_, err = NewStoreFromFile(badPath)
	assert.Error(err)
}

func TestLoadAliasesFile(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	aliasPath := filepath.Join(dir, "aliases.yaml")
	content := `
major-triad: [MA, majortriad]
`
	assert.NoError(os.WriteFile(aliasPath, []byte(content), 0o644))

	s := NewStore()
	assert.NoError(s.LoadAliases(aliasPath))

	canonical, ok := s.Aliases().Canonical("MA")
	assert.True(ok)
	assert.Equal("major-triad", canonical)

	ci, _ := s.Find(theory.IntervalPattern{0, 4, 7})
	assert.Contains(ci.Aliases, "MA")
}
