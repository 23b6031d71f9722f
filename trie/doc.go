/*
Package trie implements a compressed, read-only trie for sets of Unicode
codepoints with wide and sparse coverage.

A Trie classifies a codepoint by descending one fixed-width chunk of the
codepoint's 21 bits per level. Interior levels are tables of child ids, the
lowest level consists of leaves which cover 1<<w consecutive codepoints each,
where w is the width of the leaf level. A leaf is either a bitmap or, if that
is smaller, a compact list of ranges. Structurally identical nodes are stored
only once, so the tables stay small even for large sets. A membership query
costs one table read per level, independent of the size of the set.

Tries are built ahead of time by Generate and written out as Go source with
WriteGoSource. The generated file holds a composite literal of type Trie, which
is static data of the consuming program: no construction happens at runtime,
and the tables are never modified.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package trie

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'runeset.trie'
func tracer() tracing.Trace {
	return tracing.Select("runeset.trie")
}
