package dictionary

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/chordial/chordial/logging"
	"github.com/chordial/chordial/theory"
)

// NewStoreFromFile builds a store from an external dictionary file instead
// of the compiled table. The file is a YAML mapping of bracketed interval
// lists to chord names:
//
//	"[0,4,7]": major-triad
//	"[0,3,7]": minor-triad
//
// Individual malformed entries are skipped with a warning; the load only
// fails if the file itself cannot be opened or parsed as a mapping.
func NewStoreFromFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening dictionary %s: %w", path, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing dictionary %s: %w", path, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("dictionary %s contains no entries", path)
	}

	s := newEmptyStore()
	skipped := 0
	for patternStr, v := range raw {
		name, ok := v.(string)
		if !ok || name == "" {
			s.logger.Warn("skipping dictionary entry with non-string name", logging.Fields{"pattern": patternStr})
			skipped++
			continue
		}
		p, err := theory.ParsePattern(patternStr)
		if err != nil {
			s.logger.Warn("skipping malformed dictionary entry", logging.Fields{
				"pattern": patternStr,
				"error":   err.Error(),
			})
			skipped++
			continue
		}
		s.register(p, name, "", 0)
	}
	if len(s.ordered) == 0 {
		return nil, fmt.Errorf("dictionary %s: every entry was malformed", path)
	}
	s.buildRotations()

	s.logger.Info("dictionary loaded", logging.Fields{
		"path":    path,
		"entries": s.Len(),
		"skipped": skipped,
	})
	return s, nil
}

// LoadAliases merges a companion aliases file into the store's alias table.
// The file maps canonical names to alias lists:
//
//	minor-seventh: [m7, min7]
//
// Malformed values are skipped with a warning.
func (s *Store) LoadAliases(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("opening aliases %s: %w", path, err)
	}

	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing aliases %s: %w", path, err)
	}

	for canonical, aliases := range raw {
		for _, a := range aliases {
			s.aliases.Register(canonical, a)
		}
		if ci, ok := s.FindByName(canonical); ok {
			ci.Aliases = s.aliases.Aliases(canonical)
		}
	}
	return nil
}
