package trie

import (
	"fmt"

	"github.com/npillmayer/runeset"
)

// GenerationError is returned if a trie cannot be generated, or if a trie
// fails verification.
//
// For input which is not normalized, Index is the position of the first
// offending range and Range is that range. Otherwise Index is -1.
type GenerationError struct {
	Index  int
	Range  runeset.Range
	Reason string
}

func (e *GenerationError) Error() string {
	if e.Index < 0 {
		return "trie: " + e.Reason
	}
	return fmt.Sprintf("trie: input range #%d (%v): %s", e.Index, e.Range, e.Reason)
}

func optionsError(format string, args ...any) error {
	return &GenerationError{Index: -1, Reason: fmt.Sprintf(format, args...)}
}
