package theory

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// IntervalPattern is a sorted, deduplicated set of semitone distances from a
// reference note, folded into one octave (0-11). A canonical pattern always
// starts at 0; two voicings that reduce to the same pattern have the same
// chord shape.
type IntervalPattern []int

// Key returns the canonical string form of a pattern, e.g. "0-4-7".
// Used as the key for every derived lookup structure.
func (p IntervalPattern) Key() string {
	var sb strings.Builder
	for i, iv := range p {
		if i > 0 {
			sb.WriteByte('-')
		}
		sb.WriteString(strconv.Itoa(iv))
	}
	return sb.String()
}

// Equal reports element-wise equality
func (p IntervalPattern) Equal(other IntervalPattern) bool {
	return slices.Equal(p, other)
}

// Clone returns a copy of the pattern
func (p IntervalPattern) Clone() IntervalPattern {
	return slices.Clone(p)
}

// IsCanonical reports whether the pattern is sorted ascending, deduplicated,
// within [0,11] and anchored at 0
func (p IntervalPattern) IsCanonical() bool {
	if len(p) == 0 || p[0] != 0 {
		return false
	}
	for i, iv := range p {
		if iv < 0 || iv > 11 {
			return false
		}
		if i > 0 && iv <= p[i-1] {
			return false
		}
	}
	return true
}

// Canonical folds the pattern into [0,11], deduplicates, sorts and shifts so
// the lowest interval becomes 0. Canonical is idempotent: applying it to an
// already canonical pattern returns an equal pattern.
func (p IntervalPattern) Canonical() IntervalPattern {
	if len(p) == 0 {
		return IntervalPattern{}
	}
	seen := [12]bool{}
	for _, iv := range p {
		seen[((iv%12)+12)%12] = true
	}
	out := make(IntervalPattern, 0, len(p))
	for iv := 0; iv < 12; iv++ {
		if seen[iv] {
			out = append(out, iv)
		}
	}
	if out[0] != 0 {
		shift := out[0]
		for i := range out {
			out[i] -= shift
		}
	}
	return out
}

// Rotation returns the pattern re-rooted on its i-th element: every interval
// is measured from p[i] instead of p[0], then renormalized to canonical form.
// Rotation(0) of a canonical pattern is the pattern itself.
func (p IntervalPattern) Rotation(i int) IntervalPattern {
	if len(p) == 0 {
		return IntervalPattern{}
	}
	i = i % len(p)
	pivot := p[i]
	out := make(IntervalPattern, len(p))
	for j, iv := range p {
		out[j] = ((iv-pivot)%12 + 12) % 12
	}
	slices.Sort(out)
	return out
}

// Rotations returns all len(p) rotations of the pattern, index 0 being the
// pattern itself
func (p IntervalPattern) Rotations() []IntervalPattern {
	out := make([]IntervalPattern, len(p))
	for i := range p {
		out[i] = p.Rotation(i)
	}
	return out
}

// ParsePattern parses a bracketed interval list as found in dictionary
// files, e.g. "[0,4,7]" or "[0, 3, 7, 10]". The result is canonicalized.
func ParsePattern(s string) (IntervalPattern, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("empty interval list")
	}
	parts := strings.Split(s, ",")
	p := make(IntervalPattern, 0, len(parts))
	for _, part := range parts {
		iv, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid interval %q: %w", part, err)
		}
		p = append(p, iv)
	}
	return p.Canonical(), nil
}
