package runeset

import (
	"cmp"
	"iter"
	"slices"
)

// Pair associates a value with a domain of codepoints.
type Pair[V comparable] struct {
	Domain Range
	Value  V
}

// Map is an immutable mapping from codepoints to values. It is stored as a
// sorted sequence of non-overlapping domains, each carrying one value.
//
// Unlike Set, a Map never merges adjacent domains, not even if they carry
// equal values: every domain handed to the constructor stays distinguishable.
// The zero value is the empty map.
type Map[V comparable] struct {
	ranges []Range
	values []V
}

// FromPairs builds a map from pairs given in any order.
//
// Pairs with an empty domain are dropped. A pair which repeats another pair
// exactly (same domain, same value) is dropped as a duplicate. Any other
// overlap between domains results in an *OverlapError.
func FromPairs[V comparable](pairs []Pair[V]) (Map[V], error) {
	sorted := make([]Pair[V], 0, len(pairs))
	for _, p := range pairs {
		if !p.Domain.IsEmpty() {
			sorted = append(sorted, p)
		}
	}
	slices.SortStableFunc(sorted, func(a, b Pair[V]) int {
		return cmp.Compare(a.Domain.low, b.Domain.low)
	})
	m := Map[V]{
		ranges: make([]Range, 0, len(sorted)),
		values: make([]V, 0, len(sorted)),
	}
	for _, p := range sorted {
		if n := len(m.ranges); n > 0 && p.Domain.low < m.ranges[n-1].end {
			if p.Domain == m.ranges[n-1] && p.Value == m.values[n-1] {
				continue
			}
			return Map[V]{}, &OverlapError{First: m.ranges[n-1], Second: p.Domain}
		}
		m.ranges = append(m.ranges, p.Domain)
		m.values = append(m.values, p.Value)
	}
	return m, nil
}

// MapFromRaw returns a view over ranges and values without copying them.
// ranges must be sorted and non-overlapping, and values must have the same
// length. It is intended for generated tables.
func MapFromRaw[V comparable](ranges []Range, values []V) Map[V] {
	invariant(len(ranges) == len(values), "map ranges and values differ in length")
	return Map[V]{ranges: ranges, values: values}
}

func (m Map[V]) search(c rune) (int, bool) {
	if !IsScalar(c) {
		return 0, false
	}
	return slices.BinarySearchFunc(m.ranges, c, Range.CmpChar)
}

// Get returns the value of the domain containing c.
func (m Map[V]) Get(c rune) (V, bool) {
	if i, ok := m.search(c); ok {
		return m.values[i], true
	}
	var zero V
	return zero, false
}

// Lookup returns the domain containing c together with its value.
func (m Map[V]) Lookup(c rune) (Range, V, bool) {
	if i, ok := m.search(c); ok {
		return m.ranges[i], m.values[i], true
	}
	var zero V
	return Range{}, zero, false
}

// Contains reports whether c lies in any domain of m.
func (m Map[V]) Contains(c rune) bool {
	_, ok := m.search(c)
	return ok
}

// Len returns the number of codepoints covered by m.
func (m Map[V]) Len() int {
	n := 0
	for _, r := range m.ranges {
		n += r.Len()
	}
	return n
}

// NumDomains returns the number of domains of m.
func (m Map[V]) NumDomains() int {
	return len(m.ranges)
}

// IsEmpty reports whether m has no domains.
func (m Map[V]) IsEmpty() bool {
	return len(m.ranges) == 0
}

// All yields the domains of m with their values, in domain order.
func (m Map[V]) All() iter.Seq2[Range, V] {
	return func(yield func(Range, V) bool) {
		for i, r := range m.ranges {
			if !yield(r, m.values[i]) {
				return
			}
		}
	}
}

// Domains yields the domains of m in ascending order.
func (m Map[V]) Domains() iter.Seq[Range] {
	return slices.Values(m.ranges)
}

// Runes yields every covered codepoint in ascending order.
func (m Map[V]) Runes() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range m.ranges {
			for c := range r.Runes() {
				if !yield(c) {
					return
				}
			}
		}
	}
}

// Domain returns the set of codepoints covered by m. Adjacent domains are
// merged in the result.
func (m Map[V]) Domain() Set {
	return FromRanges(m.ranges...)
}

// Split implements Splittable. A map with a single domain is divided by
// bisecting that domain; both halves keep its value.
func (m Map[V]) Split() (Splittable, Splittable, bool) {
	switch len(m.ranges) {
	case 0:
		return m, nil, false
	case 1:
		left, right, ok := m.ranges[0].Bisect()
		if !ok {
			return m, nil, false
		}
		return Map[V]{ranges: []Range{left}, values: m.values},
			Map[V]{ranges: []Range{right}, values: m.values}, true
	}
	mid := len(m.ranges) / 2
	return Map[V]{ranges: m.ranges[:mid:mid], values: m.values[:mid:mid]},
		Map[V]{ranges: m.ranges[mid:], values: m.values[mid:]}, true
}
