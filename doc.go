/*
Package runeset provides compact, queryable sets of and mappings over Unicode
codepoints.

The building block is Range, a closed interval of Unicode scalar values. A Set
is a canonical sequence of ranges (sorted, non-overlapping and non-adjacent) and
answers membership queries by binary search. A Map associates a value with
each of a sorted sequence of non-overlapping domains. Sets and Maps come in two
flavours: an immutable view (Set, Map) and a growable owner (SetBuf, MapBuf)
which is frozen into a view once construction is done.

For wide, sparse sets which are known at build time, package trie generates a
compressed lookup table which answers membership queries in constant depth.

The codepoint domain of this package is the set of Unicode scalar values,
i.e. 0..0x10FFFF without the surrogates 0xD800..0xDFFF. Lengths, iteration and
splitting all skip the surrogate gap, and queries for runes outside the domain
answer "not contained".

Views are immutable and may be shared between goroutines freely. Buffers must
be owned by a single writer until they are frozen.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package runeset

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'runeset'
func tracer() tracing.Trace {
	return tracing.Select("runeset")
}

func invariant(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
