package runeset

import (
	"fmt"
	"iter"
	"unicode"
)

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
	gapSize      = surrogateMax - surrogateMin + 1
	domainEnd    = unicode.MaxRune + 1
)

// Range is a closed interval of Unicode scalar values.
//
// Internally a range is stored as a half-open interval [low, end). The zero
// value is the canonical empty range; all constructors map empty input to it,
// so two ranges are equal iff they compare equal with ==.
type Range struct {
	low, end rune
}

// Closed returns the range of all scalar values c with low ≤ c ≤ high.
//
// Bounds are clamped to the codepoint domain and surrogate bounds snap to the
// nearest scalar value inside the interval. If no scalar value remains, the
// empty range is returned. Use NewRange for strict validation.
func Closed(low, high rune) Range {
	if low < 0 {
		low = 0
	}
	if high > unicode.MaxRune {
		high = unicode.MaxRune
	}
	if isSurrogate(low) {
		low = surrogateMax + 1
	}
	if isSurrogate(high) {
		high = surrogateMin - 1
	}
	if low > high {
		return Range{}
	}
	return Range{low: low, end: high + 1}
}

// NewRange returns the range low..high, or a *ValidationError if either bound
// is not a scalar value or if the bounds are inverted.
func NewRange(low, high rune) (Range, error) {
	switch {
	case !IsScalar(low):
		return Range{}, &ValidationError{Low: low, High: high, Reason: "low bound is not a scalar value"}
	case !IsScalar(high):
		return Range{}, &ValidationError{Low: low, High: high, Reason: "high bound is not a scalar value"}
	case low > high:
		return Range{}, &ValidationError{Low: low, High: high, Reason: "inverted bounds"}
	}
	return Range{low: low, end: high + 1}, nil
}

// Single returns a range containing exactly c, or the empty range if c is not
// a scalar value.
func Single(c rune) Range {
	if !IsScalar(c) {
		return Range{}
	}
	return Range{low: c, end: c + 1}
}

// Full returns the range of all scalar values.
func Full() Range {
	return Range{low: 0, end: domainEnd}
}

// Empty returns the canonical empty range.
func Empty() Range {
	return Range{}
}

// IsScalar reports whether c is a Unicode scalar value.
func IsScalar(c rune) bool {
	return c >= 0 && c <= unicode.MaxRune && !isSurrogate(c)
}

func isSurrogate(c rune) bool {
	return c >= surrogateMin && c <= surrogateMax
}

// span builds a range from a half-open interval whose bounds may touch the
// surrogate gap.
func span(low, end rune) Range {
	if isSurrogate(low) {
		low = surrogateMax + 1
	}
	if end > surrogateMin && end <= surrogateMax+1 {
		end = surrogateMin
	}
	if low >= end {
		return Range{}
	}
	return Range{low: low, end: end}
}

// next returns the scalar value following c.
func next(c rune) rune {
	if c == surrogateMin-1 {
		return surrogateMax + 1
	}
	return c + 1
}

// prev returns the scalar value preceding c.
func prev(c rune) rune {
	if c == surrogateMax+1 {
		return surrogateMin - 1
	}
	return c - 1
}

// advance returns the n-th scalar value after c.
func advance(c rune, n int) rune {
	d := c + rune(n)
	if c < surrogateMin && d >= surrogateMin {
		d += gapSize
	}
	return d
}

// touches reports whether a range ending (exclusively) at end and a range
// starting at low overlap or are adjacent, i.e. no scalar value lies between
// them.
func touches(end, low rune) bool {
	return low <= end || (end == surrogateMin && low == surrogateMax+1)
}

// Low returns the lowest member of r. It is 0 for the empty range.
func (r Range) Low() rune {
	return r.low
}

// High returns the highest member of r. It is -1 for the empty range.
func (r Range) High() rune {
	return r.end - 1
}

// IsEmpty reports whether r has no members.
func (r Range) IsEmpty() bool {
	return r.low >= r.end
}

// Contains reports whether c is a member of r.
func (r Range) Contains(c rune) bool {
	return r.low <= c && c < r.end && !isSurrogate(c)
}

// CmpChar orders r relative to c: it is negative if r lies entirely below c,
// positive if r lies entirely above c and zero if c falls between the bounds
// of r. The empty range orders below every codepoint.
//
// CmpChar is the comparison function for binary searches over sorted ranges.
// It does not check whether c is a scalar value.
func (r Range) CmpChar(c rune) int {
	switch {
	case r.IsEmpty() || r.end <= c:
		return -1
	case r.low > c:
		return 1
	}
	return 0
}

// Len returns the number of scalar values in r.
func (r Range) Len() int {
	if r.IsEmpty() {
		return 0
	}
	n := int(r.end - r.low)
	if r.low < surrogateMin && r.end > surrogateMax {
		n -= gapSize
	}
	return n
}

// Iter returns a fresh iterator over r.
func (r Range) Iter() RangeIter {
	return RangeIter{rest: r}
}

// Runes yields the members of r in ascending order.
func (r Range) Runes() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for c := r.low; c < r.end; c = next(c) {
			if !yield(c) {
				return
			}
		}
	}
}

// Backward yields the members of r in descending order.
func (r Range) Backward() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for c := r.end - 1; c >= r.low; c = prev(c) {
			if !yield(c) {
				return
			}
		}
	}
}

// Bisect splits r into two non-empty halves of (nearly) equal length, the
// lower half being the shorter one for odd lengths. It returns false if r has
// fewer than two members.
func (r Range) Bisect() (Range, Range, bool) {
	n := r.Len()
	if n < 2 {
		return r, Range{}, false
	}
	mid := advance(r.low, n/2)
	return span(r.low, mid), Range{low: mid, end: r.end}, true
}

// Split implements Splittable.
func (r Range) Split() (Splittable, Splittable, bool) {
	left, right, ok := r.Bisect()
	if !ok {
		return r, nil, false
	}
	return left, right, true
}

func (r Range) String() string {
	if r.IsEmpty() {
		return "<empty>"
	}
	return fmt.Sprintf("%U..%U", r.low, r.end-1)
}
