package runeset

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultGrain is the piece size below which Parallel stops splitting.
const DefaultGrain = 4096

// Parallel configures data-parallel iteration over a Splittable.
//
// The input is bisected recursively until every piece holds at most Grain
// codepoints; pieces are then handed to a pool of Workers goroutines. Within
// a piece codepoints are visited in ascending order, between pieces there is
// no ordering guarantee.
type Parallel struct {
	Workers int // number of worker goroutines; GOMAXPROCS if ≤ 0
	Grain   int // maximum piece size; DefaultGrain if ≤ 0
}

// ParallelEach calls fn for every codepoint of s using default settings.
func ParallelEach(ctx context.Context, s Splittable, fn func(rune) error) error {
	return Parallel{}.Each(ctx, s, fn)
}

// Each calls fn for every codepoint of s. fn must be safe for concurrent use.
//
// The first error returned by fn stops all workers and is returned. Canceling
// ctx stops the iteration as well; Each then returns ctx's error, unless all
// codepoints have been visited already.
func (p Parallel) Each(ctx context.Context, s Splittable, fn func(rune) error) error {
	grain := p.Grain
	if grain <= 0 {
		grain = DefaultGrain
	}
	workers := p.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	pieces := partition(s, grain, nil)
	tracer().Debugf("parallel iteration over %d codepoints in %d pieces", s.Len(), len(pieces))
	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	stopped := false
	for _, piece := range pieces {
		if egctx.Err() != nil {
			stopped = true
			break
		}
		eg.Go(func() error {
			n := 0
			for c := range piece.Runes() {
				if n++; n%256 == 0 {
					if err := egctx.Err(); err != nil {
						return err
					}
				}
				if err := fn(c); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	if stopped {
		return ctx.Err()
	}
	return nil
}

// partition bisects s until all pieces are at most grain codepoints long.
func partition(s Splittable, grain int, pieces []Splittable) []Splittable {
	if s.Len() == 0 {
		return pieces
	}
	if s.Len() <= grain {
		return append(pieces, s)
	}
	left, right, ok := s.Split()
	if !ok {
		return append(pieces, s)
	}
	pieces = partition(left, grain, pieces)
	return partition(right, grain, pieces)
}
