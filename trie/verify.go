package trie

import (
	"fmt"
	"unicode"
)

// Verify checks the structural integrity of t: the layout is valid, every
// table entry points to an existing node or leaf, leaf records are well
// formed, and the trie is optimal, i.e. every node, leaf and table entry is
// referenced and no two nodes of a level (or two leaves) are identical.
//
// Tries produced by Generate always pass. Verify is meant for tables
// obtained elsewhere, and for tests.
func (t *Trie) Verify() error {
	if err := checkWidths(t.Widths); err != nil {
		return err
	}
	last := len(t.Widths) - 1
	if len(t.Index) != last {
		return corrupt("have %d interior levels, want %d", len(t.Index), last)
	}
	lower := codeBits - int(t.Widths[0])
	if want := int(unicode.MaxRune+1) >> lower; len(t.Index[0]) != want {
		return corrupt("root table has %d entries, want %d", len(t.Index[0]), want)
	}
	for lvl := range last {
		if err := t.verifyLevel(lvl); err != nil {
			return err
		}
	}
	return t.verifyLeaves()
}

func (t *Trie) verifyLevel(lvl int) error {
	table := t.Index[lvl]
	fanout := len(table)
	if lvl > 0 {
		fanout = 1 << t.Widths[lvl]
		if len(table)%fanout != 0 {
			return corrupt("level %d table length %d is not a multiple of %d", lvl, len(table), fanout)
		}
	}
	var children int
	if lvl+1 == len(t.Index) {
		children = len(t.Leaves)
	} else {
		children = len(t.Index[lvl+1]) >> t.Widths[lvl+1]
	}
	referenced := make([]bool, children)
	keys := make(map[string]int)
	for n := 0; n < len(table); n += fanout {
		group := table[n : n+fanout]
		if lvl > 0 {
			key := idsKey(group)
			if other, dup := keys[key]; dup {
				return corrupt("nodes %d and %d of level %d are identical", other, n/fanout, lvl)
			}
			keys[key] = n / fanout
		}
		for _, id := range group {
			if int(id) >= children {
				return corrupt("level %d references missing child %d", lvl, id)
			}
			referenced[id] = true
		}
	}
	for id, ok := range referenced {
		if !ok {
			return corrupt("child %d below level %d is never referenced", id, lvl)
		}
	}
	return nil
}

func (t *Trie) verifyLeaves() error {
	size := 1 << t.leafWidth()
	keys := make(map[string]int)
	// leaf records tile Bitmaps and Ranges in leaf order
	var nextBitmap, nextRange int
	for id, ref := range t.Leaves {
		if ref&RangeLeaf == 0 {
			if int(ref) != nextBitmap {
				return corrupt("bitmap of leaf %d starts at %d, want %d", id, ref, nextBitmap)
			}
			if nextBitmap += size / 64; nextBitmap > len(t.Bitmaps) {
				return corrupt("bitmap of leaf %d exceeds the bitmap table", id)
			}
		} else {
			at := int(ref &^ RangeLeaf)
			if at != nextRange {
				return corrupt("range list of leaf %d starts at %d, want %d", id, at, nextRange)
			}
			if at >= len(t.Ranges) {
				return corrupt("range list of leaf %d exceeds the range table", id)
			}
			n := int(t.Ranges[at])
			if nextRange = at + 1 + 2*n; nextRange > len(t.Ranges) {
				return corrupt("range list of leaf %d exceeds the range table", id)
			}
			prevHigh := -2
			for k := range n {
				lo, hi := int(t.Ranges[at+1+2*k]), int(t.Ranges[at+2+2*k])
				if lo > hi || hi >= size || lo <= prevHigh+1 {
					return corrupt("range list of leaf %d is not canonical", id)
				}
				prevHigh = hi
			}
		}
		key := wordsKey(t.leafBitset(uint32(id)).Bytes())
		if other, dup := keys[key]; dup {
			return corrupt("leaves %d and %d are identical", other, id)
		}
		keys[key] = id
	}
	if nextBitmap != len(t.Bitmaps) {
		return corrupt("%d bitmap words are not referenced by any leaf", len(t.Bitmaps)-nextBitmap)
	}
	if nextRange != len(t.Ranges) {
		return corrupt("%d range table entries are not referenced by any leaf", len(t.Ranges)-nextRange)
	}
	return nil
}

func corrupt(format string, args ...any) error {
	return &GenerationError{Index: -1, Reason: "corrupt table: " + fmt.Sprintf(format, args...)}
}
