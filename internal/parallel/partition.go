// Package parallel provides the engine's fixed-worker-pool concurrency
// primitives: an index-range partitioner and parallel map/reduce built on
// golang.org/x/sync/errgroup, the way internal/evaluator's Monte Carlo
// sampler in the teacher repo fans out across a worker pool — except here
// the workers divide a known index range instead of a sample count, and a
// panic from any worker is never swallowed: it is not recovered, so it
// crashes the process, matching the fatal-on-invariant-violation policy of
// the rest of this engine.
package parallel

// Range is a half-open index range [Start, End).
type Range struct {
	Start, End int
}

// Len returns End - Start.
func (r Range) Len() int {
	return r.End - r.Start
}

// Partition splits the half-open range [a,b) into up to n non-empty
// contiguous subranges covering it exactly once. Let len = b-a, q =
// len/n, r = len%n: the first r subranges get length q+1, the rest get
// length q. If len < n, Partition returns len subranges of length 1 (one
// per index) rather than padding with empty ranges.
func Partition(a, b, n int) []Range {
	if n < 1 {
		n = 1
	}
	length := b - a
	if length <= 0 {
		return nil
	}
	if length < n {
		n = length
	}

	q := length / n
	r := length % n

	ranges := make([]Range, 0, n)
	start := a
	for i := 0; i < n; i++ {
		size := q
		if i < r {
			size++
		}
		ranges = append(ranges, Range{Start: start, End: start + size})
		start += size
	}
	return ranges
}
