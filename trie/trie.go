package trie

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/npillmayer/runeset"
)

// codeBits is the number of bits of a codepoint.
const codeBits = 21

// RangeLeaf flags a leaf reference pointing into Trie.Ranges.
const RangeLeaf = 1 << 31

// Trie is a frozen, compressed codepoint set.
//
// Levels:
//   - Widths[i] is the number of codepoint bits consumed at level i, root
//     first. The last entry is the width w of the leaves, which cover 1<<w
//     codepoints each. Widths sum up to 21.
//   - Index[i] holds the child tables of the nodes of interior level i. Level
//     0 has a single root node whose table covers the codepoint domain up to
//     0x10FFFF. Node n of level i > 0 owns entries [n<<Widths[i], (n+1)<<Widths[i]).
//     Entries are node ids of level i+1, or leaf ids for the last interior level.
//
// Leaves:
//   - Leaves[id] is a leaf reference. Without the RangeLeaf flag it is the offset
//     of the leaf's bitmap in Bitmaps, which spans 1<<(w-6) words, with bit k of
//     word j standing for codepoint base + 64*j + k.
//   - With the RangeLeaf flag set, the remaining bits are an offset into Ranges.
//     The record at this offset starts with the number n of ranges, followed
//     by n pairs (low, high) of inclusive bounds relative to the leaf base.
//     Pairs are sorted and non-adjacent.
//
// Fields are exported so that a Trie can be embedded as a composite literal.
// They must not be modified.
type Trie struct {
	Widths  []uint8
	Index   [][]uint16
	Leaves  []uint32
	Bitmaps []uint64
	Ranges  []uint16
}

// Contains reports whether c is a member of the set.
func (t *Trie) Contains(c rune) bool {
	if !runeset.IsScalar(c) {
		return false
	}
	cp := uint32(c)
	shift := uint(codeBits)
	var node uint32
	last := len(t.Widths) - 1
	for lvl := range last {
		w := uint(t.Widths[lvl])
		shift -= w
		node = uint32(t.Index[lvl][node<<w|(cp>>shift)&(1<<w-1)])
	}
	return t.leafContains(node, cp&(1<<shift-1))
}

func (t *Trie) leafContains(leaf, off uint32) bool {
	ref := t.Leaves[leaf]
	if ref&RangeLeaf == 0 {
		return t.Bitmaps[ref+off>>6]>>(off&63)&1 == 1
	}
	at := ref &^ RangeLeaf
	n := uint32(t.Ranges[at])
	pairs := t.Ranges[at+1 : at+1+2*n]
	for k := 0; k < len(pairs); k += 2 {
		if off < uint32(pairs[k]) {
			return false
		}
		if off <= uint32(pairs[k+1]) {
			return true
		}
	}
	return false
}

// Depth returns the number of levels, leaves included.
func (t *Trie) Depth() int {
	return len(t.Widths)
}

func (t *Trie) leafWidth() uint {
	return uint(t.Widths[len(t.Widths)-1])
}

// leafBitset decodes a leaf into a bitset of 1<<w bits.
func (t *Trie) leafBitset(leaf uint32) *bitset.BitSet {
	size := uint(1) << t.leafWidth()
	ref := t.Leaves[leaf]
	if ref&RangeLeaf == 0 {
		words := make([]uint64, size/64)
		copy(words, t.Bitmaps[ref:])
		return bitset.From(words)
	}
	bs := bitset.New(size)
	at := ref &^ RangeLeaf
	n := uint32(t.Ranges[at])
	for k := range n {
		lo, hi := uint(t.Ranges[at+1+2*k]), uint(t.Ranges[at+2+2*k])
		for i := lo; i <= hi; i++ {
			bs.Set(i)
		}
	}
	return bs
}

// eachLeaf calls fn for every leaf chunk of the codepoint domain, in
// ascending order, with the first codepoint the chunk covers.
func (t *Trie) eachLeaf(fn func(leaf uint32, base rune)) {
	last := len(t.Widths) - 1
	var walk func(lvl int, node uint32, base uint32, shift uint)
	walk = func(lvl int, node uint32, base uint32, shift uint) {
		if lvl == last {
			fn(node, rune(base))
			return
		}
		w := uint(t.Widths[lvl])
		shift -= w
		table := t.Index[lvl]
		fanout := uint32(1) << w
		if lvl == 0 {
			fanout = uint32(len(table))
		}
		for i := range fanout {
			walk(lvl+1, uint32(table[node<<w+i]), base+i<<shift, shift)
		}
	}
	walk(0, 0, 0, codeBits)
}

// Set decodes t into a canonical runeset.Set.
func (t *Trie) Set() runeset.Set {
	var rs []runeset.Range
	t.eachLeaf(func(leaf uint32, base rune) {
		for _, run := range runs(t.leafBitset(leaf)) {
			rs = append(rs, runeset.Closed(base+rune(run[0]), base+rune(run[1])))
		}
	})
	return runeset.FromRanges(rs...)
}

// runs returns the maximal runs of set bits of bs as inclusive bounds.
func runs(bs *bitset.BitSet) [][2]uint16 {
	var out [][2]uint16
	size := bs.Len()
	i, ok := bs.NextSet(0)
	for ok && i < size {
		j, found := bs.NextClear(i)
		if !found || j > size {
			j = size
		}
		out = append(out, [2]uint16{uint16(i), uint16(j - 1)})
		i, ok = bs.NextSet(j)
	}
	return out
}
