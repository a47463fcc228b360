package lookup

import (
	"github.com/bits-and-blooms/bloom/v3"

	"github.com/chordial/chordial/dictionary"
)

// negativeFilter front-runs the definitive lookup with a bloom filter.
// A negative answer is authoritative (the filter is loaded with every
// stored key and every rotation key, so no false negatives are possible);
// a positive answer always falls through to a definitive check.
type negativeFilter struct {
	filter *bloom.BloomFilter
}

func newNegativeFilter(store *dictionary.Store, falsePositiveRate float64) *negativeFilter {
	if falsePositiveRate <= 0 || falsePositiveRate >= 1 {
		falsePositiveRate = 0.01
	}
	// stored patterns plus every rotation of every pattern: the filter
	// must cover everything the cascade could possibly resolve
	n := store.Len()
	for _, ci := range store.All() {
		n += len(ci.Intervals)
	}
	f := bloom.NewWithEstimates(uint(n), falsePositiveRate)
	for _, ci := range store.All() {
		f.AddString(ci.Key())
		for _, rot := range ci.Intervals.Rotations() {
			f.AddString(rot.Key())
		}
	}
	return &negativeFilter{filter: f}
}

// MayContain reports whether a pattern key could resolve anywhere in the
// cascade. False means a definitive miss.
func (nf *negativeFilter) MayContain(key string) bool {
	return nf.filter.TestString(key)
}
