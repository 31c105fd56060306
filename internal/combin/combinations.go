package combin

import (
	"golang.org/x/sync/errgroup"

	"github.com/lox/pokerodds/card"
	"github.com/lox/pokerodds/internal/parallel"
)

// Combinations returns every k-subset of pool as a CardSet, in
// colexicographic order over pool's descending-rank enumeration (the order
// produced by nested ascending loops over that descending list). The
// output has exactly C(|pool|,k) elements; it is empty if |pool| < k, and
// the singleton [∅] if k == 0.
//
// Grounded on original_source's src/analysis/search_space.rs: output size
// is computed up front via Choose so the result buffer is allocated once,
// and the C(n,k) = C(n-1,k) + C(n-1,k-1) recursion statically assigns each
// first-card choice a disjoint, precomputed slice of the output — so
// workers never need to coordinate on where to write. original_source
// schedules this recursion across an MPMC work queue with raw pointer
// writes (required in Rust to share mutable state across threads without a
// lock); Go slices already let goroutines write disjoint index ranges
// safely, so the same disjointness argument is expressed here as an
// errgroup fanning out over the top-level card choices, bounded to the
// engine's fixed worker count.
func Combinations(pool card.CardSet, k int) []card.CardSet {
	if k < 0 {
		return nil
	}
	cards := pool.Cards()
	n := len(cards)
	if n < k {
		return nil
	}
	if k == 0 {
		return []card.CardSet{card.New()}
	}

	out := make([]card.CardSet, Choose(n, k))

	g := new(errgroup.Group)
	g.SetLimit(parallel.Workers())

	offset := 0
	for i := 0; i <= n-k; i++ {
		i := i
		amount := Choose(n-i-1, k-1)
		slot := out[offset : offset+amount]
		first := cards[i]
		rest := cards[i+1:]
		g.Go(func() error {
			fillCombinations(rest, card.New().Insert(first), k-1, slot)
			return nil
		})
		offset += amount
	}
	_ = g.Wait()

	return out
}

// fillCombinations writes every (k)-extension of accumulated drawn from
// cards into out, which must have exactly Choose(len(cards), k) slots.
func fillCombinations(cards []card.Card, accumulated card.CardSet, k int, out []card.CardSet) {
	if k == 0 {
		out[0] = accumulated
		return
	}
	n := len(cards)
	offset := 0
	for i := 0; i <= n-k; i++ {
		amount := Choose(n-i-1, k-1)
		fillCombinations(cards[i+1:], accumulated.Insert(cards[i]), k-1, out[offset:offset+amount])
		offset += amount
	}
}
