package trie

import (
	"fmt"
	"slices"
	"unicode"

	"github.com/bits-and-blooms/bitset"
	"github.com/npillmayer/runeset"
)

// LeafKind selects the representation of leaves.
type LeafKind int

const (
	// LeafAuto picks the smaller representation for every leaf.
	LeafAuto LeafKind = iota
	// LeafBitmap stores every leaf as a bitmap.
	LeafBitmap
	// LeafRanges stores every leaf as a list of ranges.
	LeafRanges
)

func (k LeafKind) String() string {
	switch k {
	case LeafAuto:
		return "auto"
	case LeafBitmap:
		return "bitmap"
	case LeafRanges:
		return "ranges"
	}
	return fmt.Sprintf("LeafKind(%d)", int(k))
}

// Options configures the layout of a generated trie.
//
// Widths lists the chunk width per level, root first and leaves last. Wider
// levels mean fewer levels to descend but larger (and less shareable) nodes.
// The widths must sum up to 21; the root needs at least 5 bits, the leaves
// between 6 and 12 bits and every level in between between 1 and 12 bits.
// If Widths is empty, DefaultWidths is used.
type Options struct {
	Widths []uint8
	Leaves LeafKind
}

// DefaultWidths returns the default layout: a root of 272 entries, one
// interior level of fan-out 64 and leaves of 64 codepoints.
func DefaultWidths() []uint8 {
	return []uint8{9, 6, 6}
}

const maxNodeID = 1<<16 - 1

// GenerateSet builds a trie for the members of s.
func GenerateSet(s runeset.Set, opts *Options) (*Trie, error) {
	return Generate(slices.Collect(s.Ranges()), opts)
}

// GenerateFunc builds a trie for all scalar values for which member
// returns true.
func GenerateFunc(member func(rune) bool, opts *Options) (*Trie, error) {
	var rs []runeset.Range
	open := false
	var lo, hi rune
	for c := range runeset.Full().Runes() {
		if member(c) {
			if !open {
				lo, open = c, true
			}
			hi = c
		} else if open {
			rs = append(rs, runeset.Closed(lo, hi))
			open = false
		}
	}
	if open {
		rs = append(rs, runeset.Closed(lo, hi))
	}
	return GenerateSet(runeset.FromRanges(rs...), opts)
}

// Generate builds a trie for the union of ranges.
//
// ranges must be normalized, i.e. sorted, non-empty, non-overlapping and
// non-adjacent, as produced by runeset.Set. Generate does not normalize its
// input; it fails with a *GenerationError instead.
func Generate(ranges []runeset.Range, opts *Options) (*Trie, error) {
	if bad, ok := runeset.Canonical(ranges); !ok {
		return nil, &GenerationError{
			Index:  bad,
			Range:  ranges[bad],
			Reason: "input ranges are not normalized",
		}
	}
	var o Options
	if opts != nil {
		o = *opts
	}
	if len(o.Widths) == 0 {
		o.Widths = DefaultWidths()
	}
	if err := checkWidths(o.Widths); err != nil {
		return nil, err
	}
	g := &generator{
		kind: o.Leaves,
		t: &Trie{
			Widths: slices.Clone(o.Widths),
			Index:  make([][]uint16, len(o.Widths)-1),
		},
	}
	ids, err := g.buildLeaves(ranges)
	if err != nil {
		return nil, err
	}
	for lvl := len(o.Widths) - 2; lvl > 0; lvl-- {
		if ids, err = g.buildLevel(lvl, ids); err != nil {
			return nil, err
		}
	}
	g.t.Index[0] = ids
	stats := g.t.Stats()
	tracer().Infof("trie generated: depth=%d nodes=%v leaves=%d (bitmap=%d, ranges=%d) bytes=%d",
		stats.Depth, stats.Nodes, stats.Leaves, stats.BitmapLeaves, stats.RangeLeaves, stats.Bytes)
	return g.t, nil
}

func checkWidths(widths []uint8) error {
	if len(widths) < 2 {
		return optionsError("a trie needs at least two levels, have %d", len(widths))
	}
	sum := 0
	for i, w := range widths {
		sum += int(w)
		switch {
		case i == 0 && w < 5:
			return optionsError("root level needs at least 5 bits, have %d", w)
		case i == len(widths)-1 && (w < 6 || w > 12):
			return optionsError("leaf level needs 6 to 12 bits, have %d", w)
		case i > 0 && i < len(widths)-1 && (w < 1 || w > 12):
			return optionsError("level %d needs 1 to 12 bits, have %d", i, w)
		}
	}
	if sum != codeBits {
		return optionsError("level widths must sum up to %d, have %d", codeBits, sum)
	}
	return nil
}

type generator struct {
	kind LeafKind
	t    *Trie
}

// buildLeaves partitions the codepoint domain into leaf chunks and returns
// the interned leaf id of every chunk.
func (g *generator) buildLeaves(ranges []runeset.Range) ([]uint16, error) {
	w := g.t.leafWidth()
	size := rune(1) << w
	chunks := rune(unicode.MaxRune+1) >> w
	leaves := newInterner()
	ids := make([]uint16, 0, chunks)
	bs := bitset.New(uint(size))
	ri := 0
	for k := range chunks {
		base := k << w
		end := base + size
		bs.ClearAll()
		for ri < len(ranges) && ranges[ri].Low() < end {
			r := ranges[ri]
			for c := max(r.Low(), base); c <= min(r.High(), end-1); c++ {
				if runeset.IsScalar(c) {
					bs.Set(uint(c - base))
				}
			}
			if r.High() >= end {
				break // r continues in the next chunk
			}
			ri++
		}
		id, fresh := leaves.intern(wordsKey(bs.Bytes()))
		if id > maxNodeID {
			return nil, &GenerationError{Index: -1, Reason: "too many distinct leaves"}
		}
		if fresh {
			if err := g.appendLeaf(bs); err != nil {
				return nil, err
			}
		}
		ids = append(ids, uint16(id))
	}
	tracer().Debugf("%d leaf chunks share %d distinct leaves", len(ids), len(g.t.Leaves))
	return ids, nil
}

// appendLeaf stores the content of bs as a new leaf.
func (g *generator) appendLeaf(bs *bitset.BitSet) error {
	words := bs.Bytes()
	rs := runs(bs)
	useRanges := g.kind == LeafRanges
	if g.kind == LeafAuto {
		useRanges = 2*(1+2*len(rs)) < 8*len(words)
	}
	if useRanges {
		ref := len(g.t.Ranges)
		if uint64(ref) >= RangeLeaf {
			return &GenerationError{Index: -1, Reason: "range table overflow"}
		}
		g.t.Leaves = append(g.t.Leaves, uint32(ref)|RangeLeaf)
		g.t.Ranges = append(g.t.Ranges, uint16(len(rs)))
		for _, run := range rs {
			g.t.Ranges = append(g.t.Ranges, run[0], run[1])
		}
		return nil
	}
	ref := len(g.t.Bitmaps)
	if uint64(ref) >= RangeLeaf {
		return &GenerationError{Index: -1, Reason: "bitmap table overflow"}
	}
	g.t.Leaves = append(g.t.Leaves, uint32(ref))
	g.t.Bitmaps = append(g.t.Bitmaps, words...)
	return nil
}

// buildLevel groups the ids of level lvl+1 into the nodes of level lvl,
// storing each distinct node once, and returns the node id of every group.
func (g *generator) buildLevel(lvl int, children []uint16) ([]uint16, error) {
	fanout := 1 << g.t.Widths[lvl]
	nodes := newInterner()
	ids := make([]uint16, 0, len(children)/fanout)
	for k := 0; k < len(children); k += fanout {
		group := children[k : k+fanout]
		id, fresh := nodes.intern(idsKey(group))
		if id > maxNodeID {
			return nil, &GenerationError{Index: -1, Reason: fmt.Sprintf("too many distinct nodes at level %d", lvl)}
		}
		if fresh {
			g.t.Index[lvl] = append(g.t.Index[lvl], group...)
		}
		ids = append(ids, uint16(id))
	}
	tracer().Debugf("level %d: %d groups share %d distinct nodes", lvl, len(ids), nodes.size())
	return ids, nil
}
