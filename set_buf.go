package runeset

import (
	"slices"
	"sort"
)

// SetBuf is a growable set of scalar values. It maintains the canonical
// range invariant of Set after every mutation.
//
// A SetBuf is owned by a single writer; it performs no locking. Call Freeze
// to turn it into an immutable Set which may then be shared.
type SetBuf struct {
	ranges []Range
}

// NewSetBuf returns an empty buffer with room for capacity ranges.
func NewSetBuf(capacity int) *SetBuf {
	return &SetBuf{ranges: make([]Range, 0, capacity)}
}

// Insert adds c to the set. Non-scalar values are ignored.
func (b *SetBuf) Insert(c rune) {
	b.InsertRange(Single(c))
}

// InsertRange adds all members of r to the set, merging with every range
// it overlaps or touches.
func (b *SetBuf) InsertRange(r Range) {
	if r.IsEmpty() {
		return
	}
	// [i, j) is the window of ranges overlapping or adjacent to r
	i := sort.Search(len(b.ranges), func(k int) bool {
		return touches(b.ranges[k].end, r.low)
	})
	j := sort.Search(len(b.ranges), func(k int) bool {
		return !touches(r.end, b.ranges[k].low)
	})
	merged := r
	if i < j {
		merged.low = min(r.low, b.ranges[i].low)
		merged.end = max(r.end, b.ranges[j-1].end)
	}
	b.ranges = slices.Replace(b.ranges, i, j, merged)
}

// Extend adds all members of the given ranges.
func (b *SetBuf) Extend(ranges ...Range) {
	for _, r := range ranges {
		b.InsertRange(r)
	}
}

// Remove deletes c from the set.
func (b *SetBuf) Remove(c rune) {
	b.RemoveRange(Single(c))
}

// RemoveRange deletes all members of r from the set, splitting a range
// which extends beyond r on both sides.
func (b *SetBuf) RemoveRange(r Range) {
	if r.IsEmpty() {
		return
	}
	// [i, j) is the window of ranges sharing members with r
	i := sort.Search(len(b.ranges), func(k int) bool {
		return b.ranges[k].end > r.low
	})
	j := sort.Search(len(b.ranges), func(k int) bool {
		return b.ranges[k].low >= r.end
	})
	if i == j {
		return
	}
	rest := make([]Range, 0, 2)
	if left := span(b.ranges[i].low, r.low); !left.IsEmpty() {
		rest = append(rest, left)
	}
	if right := span(r.end, b.ranges[j-1].end); !right.IsEmpty() {
		rest = append(rest, right)
	}
	b.ranges = slices.Replace(b.ranges, i, j, rest...)
}

// Clear removes all members, keeping the allocated storage.
func (b *SetBuf) Clear() {
	b.ranges = b.ranges[:0]
}

// Contains reports whether c is a member of the set.
func (b *SetBuf) Contains(c rune) bool {
	return b.view().Contains(c)
}

// Len returns the number of scalar values in the set.
func (b *SetBuf) Len() int {
	return b.view().Len()
}

// NumRanges returns the number of canonical ranges of the set.
func (b *SetBuf) NumRanges() int {
	return len(b.ranges)
}

func (b *SetBuf) view() Set {
	return Set{ranges: b.ranges}
}

// Freeze hands the buffer's storage over to an immutable Set. The buffer is
// left empty and does not share storage with the returned set.
func (b *SetBuf) Freeze() Set {
	s := Set{ranges: slices.Clip(b.ranges)}
	if len(s.ranges) == 0 {
		s.ranges = nil
	}
	b.ranges = nil
	_, ok := Canonical(s.ranges)
	invariant(ok, "set buffer lost canonical order")
	return s
}
