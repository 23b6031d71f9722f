package runeset

import (
	"slices"
	"sort"
)

// MapBuf is a growable Map. Like SetBuf it is owned by a single writer
// until it is frozen.
type MapBuf[V comparable] struct {
	ranges []Range
	values []V
}

// NewMapBuf returns an empty buffer with room for capacity domains.
func NewMapBuf[V comparable](capacity int) *MapBuf[V] {
	return &MapBuf[V]{
		ranges: make([]Range, 0, capacity),
		values: make([]V, 0, capacity),
	}
}

// Insert adds domain r with value v. It follows the overlap policy of
// FromPairs: exact duplicates are ignored, other overlaps are rejected with
// an *OverlapError and leave the buffer unchanged.
func (b *MapBuf[V]) Insert(r Range, v V) error {
	if r.IsEmpty() {
		return nil
	}
	i := sort.Search(len(b.ranges), func(k int) bool {
		return b.ranges[k].end > r.low
	})
	if i < len(b.ranges) && b.ranges[i].low < r.end {
		if b.ranges[i] == r && b.values[i] == v {
			return nil
		}
		return &OverlapError{First: b.ranges[i], Second: r}
	}
	b.ranges = slices.Insert(b.ranges, i, r)
	b.values = slices.Insert(b.values, i, v)
	return nil
}

// Get returns the value of the domain containing c.
func (b *MapBuf[V]) Get(c rune) (V, bool) {
	return b.view().Get(c)
}

// NumDomains returns the number of domains inserted so far.
func (b *MapBuf[V]) NumDomains() int {
	return len(b.ranges)
}

func (b *MapBuf[V]) view() Map[V] {
	return Map[V]{ranges: b.ranges, values: b.values}
}

// Freeze hands the buffer's storage over to an immutable Map and leaves the
// buffer empty.
func (b *MapBuf[V]) Freeze() Map[V] {
	m := Map[V]{ranges: slices.Clip(b.ranges), values: slices.Clip(b.values)}
	b.ranges, b.values = nil, nil
	return m
}
