package runeset

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapFromPairs(t *testing.T) {
	m, err := FromPairs([]Pair[string]{
		{Closed('g', 'i'), "second"},
		{Closed('a', 'c'), "first"},
		{Closed('d', 'f'), "first"},
		{Empty(), "dropped"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, m.NumDomains(), "adjacent domains are never merged")
	assert.Equal(t, 9, m.Len())

	v, ok := m.Get('a')
	assert.True(t, ok)
	assert.Equal(t, "first", v)
	v, ok = m.Get('i')
	assert.True(t, ok)
	assert.Equal(t, "second", v)
	_, ok = m.Get('j')
	assert.False(t, ok)
	r, _, _ := m.Lookup('c')
	assert.Equal(t, Closed('a', 'c'), r)
	r, _, _ = m.Lookup('d')
	assert.Equal(t, Closed('d', 'f'), r, "adjacent domains keep their boundary")
	v, _ = m.Get('f')
	assert.Equal(t, "first", v)
	v, _ = m.Get('g')
	assert.Equal(t, "second", v)
	_, ok = m.Get(0xD800)
	assert.False(t, ok)

	r, v, ok = m.Lookup('e')
	assert.True(t, ok)
	assert.Equal(t, Closed('d', 'f'), r)
	assert.Equal(t, "first", v)

	var domains []Range
	var values []string
	for r, v := range m.All() {
		domains = append(domains, r)
		values = append(values, v)
	}
	assert.Equal(t, []Range{Closed('a', 'c'), Closed('d', 'f'), Closed('g', 'i')}, domains)
	assert.Equal(t, []string{"first", "first", "second"}, values)
	assert.Equal(t, domains, slices.Collect(m.Domains()))
	assert.Equal(t, trivial('a', 'i'), slices.Collect(m.Runes()))
	assert.Equal(t, []Range{Closed('a', 'i')}, slices.Collect(m.Domain().Ranges()))
}

func TestMapAdjacentAcrossSurrogates(t *testing.T) {
	m, err := FromPairs([]Pair[string]{
		{Closed(0xE000, 0xE0FF), "high"},
		{Closed(0xD700, 0xD7FF), "low"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, m.NumDomains())
	v, ok := m.Get(0xD7FF)
	assert.True(t, ok)
	assert.Equal(t, "low", v)
	v, ok = m.Get(0xE000)
	assert.True(t, ok)
	assert.Equal(t, "high", v)
	_, ok = m.Get(0xD800)
	assert.False(t, ok)
	r, _, _ := m.Lookup(0xE000)
	assert.Equal(t, Closed(0xE000, 0xE0FF), r)
	assert.Equal(t, []Range{Closed(0xD700, 0xE0FF)}, slices.Collect(m.Domain().Ranges()))
}

func TestMapOverlap(t *testing.T) {
	_, err := FromPairs([]Pair[int]{
		{Closed('a', 'f'), 1},
		{Closed('e', 'h'), 2},
	})
	var overlap *OverlapError
	require.True(t, errors.As(err, &overlap))
	assert.Equal(t, Closed('a', 'f'), overlap.First)
	assert.Equal(t, Closed('e', 'h'), overlap.Second)

	_, err = FromPairs([]Pair[int]{
		{Closed('a', 'f'), 1},
		{Closed('a', 'f'), 2},
	})
	assert.True(t, errors.As(err, &overlap), "same domain with different values")
}

func TestMapDuplicates(t *testing.T) {
	m, err := FromPairs([]Pair[int]{
		{Closed('a', 'f'), 1},
		{Closed('x', 'z'), 2},
		{Closed('a', 'f'), 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, m.NumDomains())
}

func TestMapZeroValue(t *testing.T) {
	var m Map[int]
	assert.True(t, m.IsEmpty())
	assert.False(t, m.Contains('a'))
	_, ok := m.Get('a')
	assert.False(t, ok)
	_, _, ok = m.Split()
	assert.False(t, ok)
}

func TestMapSplit(t *testing.T) {
	m, err := FromPairs([]Pair[int]{{Closed('a', 'z'), 7}})
	require.NoError(t, err)
	left, right, ok := m.Split()
	require.True(t, ok)
	assert.Equal(t, m.Len(), left.Len()+right.Len())
	lv, _ := left.(Map[int]).Get('a')
	rv, _ := right.(Map[int]).Get('z')
	assert.Equal(t, 7, lv)
	assert.Equal(t, 7, rv)
}

func TestMapBuf(t *testing.T) {
	b := NewMapBuf[string](2)
	require.NoError(t, b.Insert(Closed('m', 'p'), "mid"))
	require.NoError(t, b.Insert(Closed('a', 'c'), "low"))
	require.NoError(t, b.Insert(Closed('q', 'z'), "high"))
	require.NoError(t, b.Insert(Closed('a', 'c'), "low"))
	require.NoError(t, b.Insert(Empty(), "none"))
	assert.Equal(t, 3, b.NumDomains())

	var overlap *OverlapError
	err := b.Insert(Closed('c', 'd'), "bad")
	require.True(t, errors.As(err, &overlap))
	assert.Equal(t, Closed('a', 'c'), overlap.First)
	assert.Equal(t, 3, b.NumDomains(), "a rejected insert leaves the buffer unchanged")

	v, ok := b.Get('p')
	assert.True(t, ok)
	assert.Equal(t, "mid", v)

	m := b.Freeze()
	assert.Equal(t, 0, b.NumDomains())
	assert.Equal(t, []Range{Closed('a', 'c'), Closed('m', 'p'), Closed('q', 'z')}, slices.Collect(m.Domains()))
	v, _ = m.Get('q')
	assert.Equal(t, "high", v)
}

func TestMapFromRaw(t *testing.T) {
	m := MapFromRaw([]Range{Closed('a', 'b'), Closed('x', 'y')}, []bool{true, false})
	v, ok := m.Get('y')
	assert.True(t, ok)
	assert.False(t, v)
	assert.Panics(t, func() {
		MapFromRaw([]Range{Closed('a', 'b')}, []bool{})
	})
}
