package runeset

import (
	"cmp"
	"iter"
	"slices"
	"strings"
	"unicode"
)

// Set is an immutable set of scalar values, stored as a canonical sequence
// of ranges: strictly increasing, pairwise non-overlapping and pairwise
// non-adjacent. Two sets are equal iff their range sequences are equal.
//
// A Set is a view; it never modifies its backing storage and may be shared
// between goroutines. The zero value is the empty set.
type Set struct {
	ranges []Range
}

// FromRanges returns the set of all scalar values covered by any of the
// given ranges. The input may be unsorted and may contain overlapping,
// adjacent or empty ranges; it is not modified.
func FromRanges(ranges ...Range) Set {
	buf := make([]Range, 0, len(ranges))
	for _, r := range ranges {
		if !r.IsEmpty() {
			buf = append(buf, r)
		}
	}
	slices.SortStableFunc(buf, func(a, b Range) int {
		return cmp.Compare(a.low, b.low)
	})
	return Set{ranges: coalesce(buf)}
}

// coalesce merges overlapping and adjacent neighbours of ranges, which must be
// sorted by lower bound. It works in place.
func coalesce(ranges []Range) []Range {
	if len(ranges) == 0 {
		return nil
	}
	out := ranges[:1]
	for _, r := range ranges[1:] {
		last := &out[len(out)-1]
		if touches(last.end, r.low) {
			last.end = max(last.end, r.end)
		} else {
			out = append(out, r)
		}
	}
	return out
}

// SetFromRaw returns a view over ranges without copying them. The caller
// guarantees that ranges are canonical (see Canonical) and must not modify
// them afterwards. It is intended for generated tables.
func SetFromRaw(ranges []Range) Set {
	return Set{ranges: ranges}
}

// FromRangeTable converts one of the standard library's Unicode tables.
func FromRangeTable(tab *unicode.RangeTable) Set {
	var rs []Range
	for _, r := range tab.R16 {
		rs = appendStrided(rs, rune(r.Lo), rune(r.Hi), rune(r.Stride))
	}
	for _, r := range tab.R32 {
		rs = appendStrided(rs, rune(r.Lo), rune(r.Hi), rune(r.Stride))
	}
	return FromRanges(rs...)
}

func appendStrided(rs []Range, lo, hi, stride rune) []Range {
	if stride == 1 {
		return append(rs, Closed(lo, hi))
	}
	for c := lo; c <= hi; c += stride {
		rs = append(rs, Single(c))
	}
	return rs
}

// Canonical checks that ranges are in canonical set order. If not, it
// returns the index of the first range which is empty, out of order,
// overlapping or adjacent to its predecessor.
func Canonical(ranges []Range) (bad int, ok bool) {
	for i, r := range ranges {
		if r.IsEmpty() {
			return i, false
		}
		if i > 0 && touches(ranges[i-1].end, r.low) {
			return i, false
		}
	}
	return -1, true
}

// Contains reports whether c is a member of s.
func (s Set) Contains(c rune) bool {
	if !IsScalar(c) {
		return false
	}
	_, found := s.search(c)
	return found
}

func (s Set) search(c rune) (int, bool) {
	return slices.BinarySearchFunc(s.ranges, c, Range.CmpChar)
}

// Len returns the number of scalar values in s.
func (s Set) Len() int {
	n := 0
	for _, r := range s.ranges {
		n += r.Len()
	}
	return n
}

// IsEmpty reports whether s has no members.
func (s Set) IsEmpty() bool {
	return len(s.ranges) == 0
}

// NumRanges returns the number of ranges s consists of.
func (s Set) NumRanges() int {
	return len(s.ranges)
}

// Equal reports whether s and other have the same members.
func (s Set) Equal(other Set) bool {
	return slices.Equal(s.ranges, other.ranges)
}

// Ranges yields the canonical ranges of s in ascending order.
func (s Set) Ranges() iter.Seq[Range] {
	return slices.Values(s.ranges)
}

// Runes yields the members of s in ascending order.
func (s Set) Runes() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range s.ranges {
			for c := range r.Runes() {
				if !yield(c) {
					return
				}
			}
		}
	}
}

// Backward yields the members of s in descending order.
func (s Set) Backward() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for _, r := range slices.Backward(s.ranges) {
			for c := range r.Backward() {
				if !yield(c) {
					return
				}
			}
		}
	}
}

// Split implements Splittable. Sets with more than one range are divided
// between ranges, a single range is bisected.
func (s Set) Split() (Splittable, Splittable, bool) {
	switch len(s.ranges) {
	case 0:
		return s, nil, false
	case 1:
		left, right, ok := s.ranges[0].Bisect()
		if !ok {
			return s, nil, false
		}
		return Set{ranges: []Range{left}}, Set{ranges: []Range{right}}, true
	}
	mid := len(s.ranges) / 2
	return Set{ranges: s.ranges[:mid:mid]}, Set{ranges: s.ranges[mid:]}, true
}

func (s Set) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, r := range s.ranges {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(r.String())
	}
	sb.WriteByte('}')
	return sb.String()
}
