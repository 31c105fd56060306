// Package stackvec implements a fixed-capacity, stack-resident vector used
// inside the hand evaluator's hot loop where heap allocation is
// unacceptable. Capacity is bounded at 7 (the largest hand the evaluator
// ever classifies); callers pick a logical capacity per use
// (suit partitions: 7, kickers: 5, pairs: 3, triples: 2).
package stackvec

// maxCapacity is the largest backing size any evaluator use needs: a full
// 7-card hand.
const maxCapacity = 7

// StackVec is a fixed-capacity vector of T backed by an array embedded in
// the struct, so passing it by value or by pointer never touches the heap.
// Push silently drops elements once the logical capacity is reached.
type StackVec[T any] struct {
	elems [maxCapacity]T
	cap   int
	len   int
}

// New returns a StackVec with the given logical capacity (must be <= 7).
func New[T any](capacity int) StackVec[T] {
	if capacity > maxCapacity {
		capacity = maxCapacity
	}
	return StackVec[T]{cap: capacity}
}

// Push appends v if the vector has not reached its capacity; otherwise it
// is a silent no-op.
func (s *StackVec[T]) Push(v T) {
	if s.len < s.cap {
		s.elems[s.len] = v
		s.len++
	}
}

// Len returns the number of elements currently held.
func (s *StackVec[T]) Len() int {
	return s.len
}

// IsEmpty reports whether the vector holds no elements.
func (s *StackVec[T]) IsEmpty() bool {
	return s.len == 0
}

// At returns the element at index i, which must be in [0, Len()).
func (s *StackVec[T]) At(i int) T {
	return s.elems[i]
}

// Slice returns a view over the live prefix of the vector. The returned
// slice aliases the StackVec's backing array and is only valid until the
// next mutation.
func (s *StackVec[T]) Slice() []T {
	return s.elems[:s.len]
}

// Reset empties the vector without changing its capacity.
func (s *StackVec[T]) Reset() {
	s.len = 0
}
