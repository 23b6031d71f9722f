package trie

import (
	"strconv"
	"strings"

	prefixtrie "github.com/derekparker/trie"
)

// interner assigns dense ids to node keys, handing out the same id for
// structurally identical nodes. Ids are assigned in order of first
// appearance, starting at 0.
type interner struct {
	keys  *prefixtrie.Trie
	count int
}

func newInterner() *interner {
	return &interner{keys: prefixtrie.New()}
}

// intern returns the id of key and whether key has not been seen before.
func (in *interner) intern(key string) (int, bool) {
	if node, ok := in.keys.Find(key); ok {
		return node.Meta().(int), false
	}
	id := in.count
	in.count++
	in.keys.Add(key, id)
	return id, true
}

func (in *interner) size() int {
	return in.count
}

// Keys are plain ASCII, as the prefix trie indexes keys by rune.

func wordsKey(words []uint64) string {
	var sb strings.Builder
	for i, w := range words {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(strconv.FormatUint(w, 16))
	}
	return sb.String()
}

func idsKey(ids []uint16) string {
	var sb strings.Builder
	for i, id := range ids {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(strconv.FormatUint(uint64(id), 16))
	}
	return sb.String()
}
