package runeset

import "iter"

// Sequence is implemented by every type which produces a finite, restartable
// sequence of codepoints in ascending order. Each call of Runes starts over.
type Sequence interface {
	Runes() iter.Seq[rune]
	Len() int
}

// Splittable is a Sequence which can be divided into two independent halves
// for parallel consumption. Split returns false if the sequence is too small
// to be divided; the halves together cover exactly the original sequence.
type Splittable interface {
	Sequence
	Split() (Splittable, Splittable, bool)
}

var (
	_ Splittable = Range{}
	_ Splittable = Set{}
	_ Splittable = Map[int]{}
)
