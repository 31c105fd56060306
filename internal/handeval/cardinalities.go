package handeval

import (
	"fmt"

	"github.com/lox/pokerodds/card"
	"github.com/lox/pokerodds/internal/stackvec"
)

// cardinalities classifies a hand's ranks by how many times each appears,
// walking from Ace down to Two so every bucket comes out pre-sorted
// descending. A rank histogram count outside [0,4] means the caller handed
// the evaluator a malformed CardSet (more than four cards of one rank is
// impossible in a standard deck); that is an internal invariant violation,
// not a recoverable error, so it panics.
type cardinalities struct {
	hasQuad  bool
	quad     card.Rank
	trips    stackvec.StackVec[card.Rank]
	pairs    stackvec.StackVec[card.Rank]
	kickers  stackvec.StackVec[card.Rank]
}

func newCardinalities(h rankHistogram) cardinalities {
	c := cardinalities{
		trips:   stackvec.New[card.Rank](2),
		pairs:   stackvec.New[card.Rank](3),
		kickers: stackvec.New[card.Rank](5),
	}
	for r := card.Ace; r >= card.Two; r-- {
		switch n := h.get(r); n {
		case 0:
		case 1:
			c.kickers.Push(r)
		case 2:
			c.pairs.Push(r)
		case 3:
			c.trips.Push(r)
		case 4:
			if c.hasQuad {
				panic(fmt.Sprintf("handeval: more than one quad rank in a single hand (rank %s)", r))
			}
			c.hasQuad = true
			c.quad = r
		default:
			panic(fmt.Sprintf("handeval: rank %s appears %d times, which cannot happen in a standard deck", r, n))
		}
	}
	return c
}
