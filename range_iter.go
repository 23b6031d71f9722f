package runeset

// RangeIter is a double-ended iterator over the members of a Range.
//
// It always knows the exact number of remaining members and may be split
// into two independent iterators for parallel consumption.
type RangeIter struct {
	rest Range
}

// Next returns the lowest remaining member.
func (it *RangeIter) Next() (rune, bool) {
	if it.rest.IsEmpty() {
		return 0, false
	}
	c := it.rest.low
	it.rest = span(next(c), it.rest.end)
	return c, true
}

// NextBack returns the highest remaining member.
func (it *RangeIter) NextBack() (rune, bool) {
	if it.rest.IsEmpty() {
		return 0, false
	}
	c := it.rest.end - 1
	it.rest = span(it.rest.low, prev(c)+1)
	return c, true
}

// Len returns the number of remaining members.
func (it *RangeIter) Len() int {
	return it.rest.Len()
}

// Remaining returns the range of members not yet consumed.
func (it *RangeIter) Remaining() Range {
	return it.rest
}

// Split divides the remaining members between two iterators. If fewer than
// two members remain, the second iterator is empty.
func (it *RangeIter) Split() (RangeIter, RangeIter) {
	left, right, ok := it.rest.Bisect()
	if !ok {
		return RangeIter{rest: it.rest}, RangeIter{}
	}
	return RangeIter{rest: left}, RangeIter{rest: right}
}
