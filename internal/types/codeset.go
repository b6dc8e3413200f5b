package types

import "sort"

// CodeSet is a set of Unicode codepoints. Target sets and per-font coverage
// sets are CodeSets; membership is unique by construction and ordered output
// goes through Sorted.
type CodeSet map[rune]struct{}

// NewCodeSet returns a set containing the given codepoints.
func NewCodeSet(codepoints ...rune) CodeSet {
	s := make(CodeSet, len(codepoints))
	for _, cp := range codepoints {
		s[cp] = struct{}{}
	}
	return s
}

// Add inserts a single codepoint.
func (s CodeSet) Add(cp rune) {
	s[cp] = struct{}{}
}

// AddRange inserts the inclusive codepoint range [lo, hi].
func (s CodeSet) AddRange(lo, hi rune) {
	for cp := lo; cp <= hi; cp++ {
		s[cp] = struct{}{}
	}
}

// AddSet inserts every codepoint of other.
func (s CodeSet) AddSet(other CodeSet) {
	for cp := range other {
		s[cp] = struct{}{}
	}
}

// Has reports whether cp is in the set.
func (s CodeSet) Has(cp rune) bool {
	_, ok := s[cp]
	return ok
}

// Len returns the number of codepoints in the set.
func (s CodeSet) Len() int {
	return len(s)
}

// Sorted returns the codepoints in ascending numeric order. All iteration
// that affects output goes through this to keep runs reproducible.
func (s CodeSet) Sorted() []rune {
	out := make([]rune, 0, len(s))
	for cp := range s {
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
