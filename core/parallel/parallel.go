// Package parallel provides static fork-join helpers for splitting index
// ranges across goroutines.
//
// All helpers partition [0, n) into contiguous chunks assigned up front,
// with no dynamic rebalancing. Static partitioning keeps the overhead
// predictable for uniform numeric workloads, and exposing the worker index
// lets callers keep per-worker accumulators that are combined serially in
// a deterministic order after the join.
package parallel

import (
	"runtime"
	"sync"
)

// Range is a half-open index interval [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the number of indices covered by the range.
func (r Range) Len() int { return r.End - r.Start }

// Partition splits [0, n) into at most workers contiguous chunks of
// near-equal size. The first n%workers chunks are one element longer.
// Returns nil when n <= 0. The number of chunks never exceeds n, so no
// chunk is empty.
func Partition(n, workers int) []Range {
	if n <= 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}

	chunks := make([]Range, 0, workers)
	size := n / workers
	rem := n % workers
	start := 0
	for w := 0; w < workers; w++ {
		end := start + size
		if w < rem {
			end++
		}
		chunks = append(chunks, Range{Start: start, End: end})
		start = end
	}

	return chunks
}

// ParallelizeWorkers runs fn over a static partition of [0, n) using the
// given number of goroutines and waits for all of them to complete. The
// worker index passed to fn identifies the chunk, so callers can write
// partial results into per-worker slots without synchronization. fn is
// invoked at most workers times, each with a non-empty [start, end) range.
func ParallelizeWorkers(n, workers int, fn func(worker, start, end int)) {
	chunks := Partition(n, workers)
	if len(chunks) == 0 {
		return
	}
	if len(chunks) == 1 {
		fn(0, chunks[0].Start, chunks[0].End)
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(chunks))
	for w, c := range chunks {
		go func(w int, c Range) {
			defer wg.Done()
			fn(w, c.Start, c.End)
		}(w, c)
	}
	wg.Wait()
}

// Parallelize runs fn over a static partition of [0, n) using one chunk
// per available processing unit.
func Parallelize(n int, fn func(start, end int)) {
	ParallelizeWorkers(n, runtime.GOMAXPROCS(0), func(_, start, end int) {
		fn(start, end)
	})
}

// ParallelizeWithThreshold runs fn sequentially over [0, n) when n is below
// threshold, and in parallel otherwise. Goroutine startup costs more than
// the work itself for small inputs.
func ParallelizeWithThreshold(n, threshold int, fn func(start, end int)) {
	if n < threshold {
		if n > 0 {
			fn(0, n)
		}
		return
	}
	Parallelize(n, fn)
}
