package kernel

import (
	"runtime"

	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"
)

// MinParallelTerms is the term count (bands * ngpown * ncouls) below which
// Parallel falls back to the fused sequential kernel. Spawning workers for
// fewer terms costs more than the reduction itself.
const MinParallelTerms = 1 << 20

// Parallel runs the reduction with bands partitioned into contiguous
// chunks, one worker per chunk. Every chunk accumulates into private
// per-frequency partial sums; the partials are combined in ascending chunk
// order after all workers finish, so the result is deterministic for a
// fixed worker count. The only shared mutable state is achRe/achIm, touched
// exclusively by the combining loop.
//
// workers <= 0 selects GOMAXPROCS.
func Parallel[T constraints.Float](in Input[T], workers int, achRe, achIm []T) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	if workers > in.NumBands {
		workers = in.NumBands
	}

	terms := in.NumBands * in.NGPown * in.NCouls
	if workers <= 1 || terms < MinParallelTerms {
		fusedRange(in, 0, in.NumBands, achRe, achIm)
		return
	}

	chunk := (in.NumBands + workers - 1) / workers

	partRe := make([][]T, workers)
	partIm := make([][]T, workers)

	var g errgroup.Group

	for c := 0; c < workers; c++ {
		lo := c * chunk
		hi := min(lo+chunk, in.NumBands)

		if lo >= hi {
			continue
		}

		re := make([]T, in.NW)
		im := make([]T, in.NW)
		partRe[c] = re
		partIm[c] = im

		g.Go(func() error {
			fusedRange(in, lo, hi, re, im)
			return nil
		})
	}

	// Workers never fail; Wait only fences the partial sums.
	_ = g.Wait()

	for c := 0; c < workers; c++ {
		if partRe[c] == nil {
			continue
		}

		for iw := 0; iw < in.NW; iw++ {
			achRe[iw] += partRe[c][iw]
			achIm[iw] += partIm[c][iw]
		}
	}
}
