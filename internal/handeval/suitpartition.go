package handeval

import (
	"github.com/lox/pokerodds/card"
	"github.com/lox/pokerodds/internal/stackvec"
)

// suitPartition groups a hand's ranks by suit, one stack vector per suit,
// each holding the ranks present in that suit in descending order (the
// iteration order of the source CardSet guarantees this). Used to detect
// flushes and same-suit straights.
type suitPartition [card.NumSuits]stackvec.StackVec[card.Rank]

func newSuitPartition(cs card.CardSet) suitPartition {
	var p suitPartition
	for i := range p {
		p[i] = stackvec.New[card.Rank](7)
	}
	cs.IterDescending(func(c card.Card) bool {
		p[c.Suit].Push(c.Rank)
		return true
	})
	return p
}
