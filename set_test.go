package runeset

import (
	"math/rand/v2"
	"slices"
	"testing"
	"unicode"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertCanonical(t *testing.T, ranges []Range) {
	t.Helper()
	for i, r := range ranges {
		require.False(t, r.IsEmpty(), "range #%d is empty", i)
		if i > 0 {
			p := ranges[i-1]
			require.Less(t, p.High(), r.Low(), "ranges #%d and #%d out of order", i-1, i)
			require.NotEqual(t, next(p.High()), r.Low(), "ranges #%d and #%d are adjacent", i-1, i)
		}
	}
	_, ok := Canonical(ranges)
	require.True(t, ok)
}

// randomRanges produces ranges clustered in a window around the surrogate gap.
func randomRanges(rnd *rand.Rand, n int) []Range {
	rs := make([]Range, n)
	for i := range rs {
		low := rune(0xD700 + rnd.IntN(0xA00))
		rs[i] = Closed(low, low+rune(rnd.IntN(40)))
	}
	return rs
}

// reference collects the scalar values covered by ranges into a bitset.
func reference(ranges []Range) *bitset.BitSet {
	bs := bitset.New(domainEnd)
	for _, r := range ranges {
		for c := range r.Runes() {
			bs.Set(uint(c))
		}
	}
	return bs
}

func TestFromRangesScenarios(t *testing.T) {
	tests := []struct {
		name  string
		input []Range
		want  []Range
	}{
		{"overlap", []Range{Closed('a', 'm'), Closed('k', 'z')}, []Range{Closed('a', 'z')}},
		{"gap", []Range{Closed('a', 'c'), Closed('e', 'g')}, []Range{Closed('a', 'c'), Closed('e', 'g')}},
		{"adjacent", []Range{Closed('a', 'c'), Closed('d', 'g')}, []Range{Closed('a', 'g')}},
		{"unsorted", []Range{Closed('x', 'z'), Closed('a', 'b'), Closed('c', 'd')}, []Range{Closed('a', 'd'), Closed('x', 'z')}},
		{"contained", []Range{Closed('a', 'z'), Closed('f', 'g')}, []Range{Closed('a', 'z')}},
		{"empties", []Range{Empty(), Closed('a', 'a'), Empty()}, []Range{Closed('a', 'a')}},
		{"surrogate gap", []Range{Closed(0xE000, 0xE010), Closed(0xD700, 0xD7FF)}, []Range{Closed(0xD700, 0xE010)}},
		{"nothing", nil, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := FromRanges(tt.input...)
			assert.Equal(t, tt.want, slices.Collect(s.Ranges()))
			assertCanonical(t, slices.Collect(s.Ranges()))
		})
	}
}

func TestFromRangesDoesNotModifyInput(t *testing.T) {
	input := []Range{Closed('x', 'z'), Closed('a', 'y')}
	FromRanges(input...)
	assert.Equal(t, []Range{Closed('x', 'z'), Closed('a', 'y')}, input)
}

func TestFromRangesRandom(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	for range 50 {
		input := randomRanges(rnd, 1+rnd.IntN(60))
		s := FromRanges(input...)
		ranges := slices.Collect(s.Ranges())
		assertCanonical(t, ranges)

		ref := reference(input)
		for c := rune(0xD600); c < 0xE300; c++ {
			require.Equal(t, ref.Test(uint(c)), s.Contains(c), "%#U", c)
		}
		assert.Equal(t, int(ref.Count()), s.Len())

		// idempotence
		assert.Equal(t, ranges, slices.Collect(FromRanges(ranges...).Ranges()))
		assert.True(t, s.Equal(FromRanges(ranges...)))
	}
}

func TestSetContainsEdges(t *testing.T) {
	s := FromRanges(Closed('a', 'c'), Closed(0xD000, 0xE100), Single(unicode.MaxRune))
	assert.True(t, s.Contains('a'))
	assert.True(t, s.Contains('c'))
	assert.False(t, s.Contains('d'))
	assert.False(t, s.Contains(0xD800), "surrogates are never members")
	assert.True(t, s.Contains(0xE000))
	assert.True(t, s.Contains(unicode.MaxRune))
	assert.False(t, s.Contains(unicode.MaxRune+1))
	assert.False(t, s.Contains(-1))

	var empty Set
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, 0, empty.Len())
	assert.False(t, empty.Contains('a'))
}

func TestSetIteration(t *testing.T) {
	s := FromRanges(Closed('x', 'z'), Closed('a', 'c'), Closed(surrogateMin-1, surrogateMax+1))
	want := []rune{'a', 'b', 'c', 'x', 'y', 'z', surrogateMin - 1, surrogateMax + 1}
	assert.Equal(t, want, slices.Collect(s.Runes()))
	backward := slices.Collect(s.Backward())
	slices.Reverse(backward)
	assert.Equal(t, want, backward)
	assert.Equal(t, len(want), s.Len())

	// early stop
	var first []rune
	for c := range s.Runes() {
		if c > 'b' {
			break
		}
		first = append(first, c)
	}
	assert.Equal(t, []rune{'a', 'b'}, first)
}

func TestSetSplit(t *testing.T) {
	s := FromRanges(Closed('a', 'c'), Closed('e', 'g'), Closed('x', 'z'))
	left, right, ok := s.Split()
	require.True(t, ok)
	assert.Equal(t, s.Len(), left.Len()+right.Len())
	got := append(slices.Collect(left.Runes()), slices.Collect(right.Runes())...)
	assert.Equal(t, slices.Collect(s.Runes()), got)

	single := FromRanges(Closed('a', 'z'))
	left, right, ok = single.Split()
	require.True(t, ok)
	assert.Equal(t, 13, left.Len())
	assert.Equal(t, 13, right.Len())

	_, _, ok = FromRanges(Single('a')).Split()
	assert.False(t, ok)
}

func TestSetFromRangeTable(t *testing.T) {
	for name, tab := range map[string]*unicode.RangeTable{
		"Letter": unicode.Letter,
		"Upper":  unicode.Upper,
		"Cs":     unicode.Cs,
		"Greek":  unicode.Greek,
	} {
		s := FromRangeTable(tab)
		assertCanonical(t, slices.Collect(s.Ranges()))
		for c := range Full().Runes() {
			if s.Contains(c) != unicode.Is(tab, c) {
				t.Fatalf("%s: membership of %#U differs", name, c)
			}
		}
	}
}

func TestSetString(t *testing.T) {
	s := FromRanges(Closed('a', 'c'), Single('x'))
	assert.Equal(t, "{U+0061..U+0063, U+0078..U+0078}", s.String())
	assert.Equal(t, "{}", Set{}.String())
}
