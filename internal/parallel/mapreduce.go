package parallel

import "golang.org/x/sync/errgroup"

// Map applies f to every element of items, writing result i into output
// slot i. Each worker owns a disjoint, contiguous subrange of indices (via
// Partition), so there is no locking and no aliasing between workers; this
// covers both the spec's parallelMap and intoParallelMap, which differ
// only in whether the input is still needed afterward — a distinction Go's
// value semantics make moot. A panic inside f crosses the errgroup
// goroutine boundary and crashes the process, matching the "a panic in any
// worker propagates up through the scope join" requirement: internal
// invariant violations are fatal, never a soft error.
func Map[T, U any](items []T, f func(T) U) []U {
	out := make([]U, len(items))
	if len(items) == 0 {
		return out
	}

	var g errgroup.Group
	for _, r := range Partition(0, len(items), Workers()) {
		r := r
		g.Go(func() error {
			for i := r.Start; i < r.End; i++ {
				out[i] = f(items[i])
			}
			return nil
		})
	}
	_ = g.Wait() // f never returns an error; the g.Go bodies above always return nil.
	return out
}

// Reduce folds items into a single value with an associative (not
// necessarily commutative) binary operation op. Each worker folds its
// contiguous subrange left-to-right; a final single-threaded fold combines
// the per-worker partial results in range order, so the overall result is
// the same left-to-right fold a sequential reduce would produce. Returns
// the zero value and false for an empty slice.
func Reduce[T any](items []T, op func(a, b T) T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}

	ranges := Partition(0, len(items), Workers())
	partials := make([]T, len(ranges))

	var g errgroup.Group
	for idx, r := range ranges {
		idx, r := idx, r
		g.Go(func() error {
			acc := items[r.Start]
			for i := r.Start + 1; i < r.End; i++ {
				acc = op(acc, items[i])
			}
			partials[idx] = acc
			return nil
		})
	}
	_ = g.Wait()

	acc := partials[0]
	for i := 1; i < len(partials); i++ {
		acc = op(acc, partials[i])
	}
	return acc, true
}
