package trie

import (
	"fmt"
	"unicode"
)

// Stats reports size metrics of a trie.
type Stats struct {
	Depth        int   // number of levels, leaves included
	Nodes        []int // distinct nodes per interior level, root first
	Leaves       int   // distinct leaves
	BitmapLeaves int
	RangeLeaves  int
	Chunks       int // leaf chunks the codepoint domain is divided into
	Bytes        int // size of all tables
}

// SharingRatio is the number of distinct leaves per leaf chunk. The smaller,
// the more chunks share a leaf.
func (s Stats) SharingRatio() float64 {
	if s.Chunks == 0 {
		return 0
	}
	return float64(s.Leaves) / float64(s.Chunks)
}

func (s Stats) String() string {
	return fmt.Sprintf("Trie(depth=%d,nodes=%v,leaves=%d/%d,bytes=%d)",
		s.Depth, s.Nodes, s.Leaves, s.Chunks, s.Bytes)
}

// Stats returns size metrics of t.
func (t *Trie) Stats() Stats {
	s := Stats{
		Depth:  len(t.Widths),
		Leaves: len(t.Leaves),
	}
	if len(t.Widths) == 0 {
		return s
	}
	for lvl, table := range t.Index {
		n := 1
		if lvl > 0 {
			n = len(table) >> t.Widths[lvl]
		}
		s.Nodes = append(s.Nodes, n)
		s.Bytes += 2 * len(table)
	}
	for _, ref := range t.Leaves {
		if ref&RangeLeaf != 0 {
			s.RangeLeaves++
		} else {
			s.BitmapLeaves++
		}
	}
	s.Bytes += 4*len(t.Leaves) + 8*len(t.Bitmaps) + 2*len(t.Ranges)
	s.Chunks = int(unicode.MaxRune+1) >> t.leafWidth()
	return s
}
