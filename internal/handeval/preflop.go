package handeval

import (
	"errors"
	"fmt"

	"github.com/lox/pokerodds/card"
)

// PreflopTag distinguishes the two possible preflop classifications.
type PreflopTag int

const (
	PocketPair PreflopTag = iota
	HighCard2
)

// PreflopValue is the degenerate 2-card classification used before any
// board cards are known. Unlike HandValue it carries no ordering
// semantics; it is strictly a classification helper.
type PreflopValue struct {
	Tag        PreflopTag
	Rank       card.Rank // PocketPair: the pair's rank. HighCard2: the higher rank.
	SecondRank card.Rank // HighCard2: the lower rank. Unused for PocketPair.
}

// ErrNotAPocket is returned by EvaluatePreflop when the given set does not
// have exactly 2 cards.
var ErrNotAPocket = errors.New("handeval: a pocket must have exactly 2 cards")

// EvaluatePreflop classifies a 2-card pocket as a pair or two distinct
// ranks (reported high-then-low).
func EvaluatePreflop(cs card.CardSet) (PreflopValue, error) {
	if n := cs.Len(); n != 2 {
		return PreflopValue{}, fmt.Errorf("%w: got %d cards", ErrNotAPocket, n)
	}

	var ranks [2]card.Rank
	i := 0
	cs.IterDescending(func(c card.Card) bool {
		ranks[i] = c.Rank
		i++
		return true
	})

	if ranks[0] == ranks[1] {
		return PreflopValue{Tag: PocketPair, Rank: ranks[0]}, nil
	}
	return PreflopValue{Tag: HighCard2, Rank: ranks[0], SecondRank: ranks[1]}, nil
}
