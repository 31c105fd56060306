// Package handeval implements the Texas Hold'em hand evaluator: given a
// 5-7 card set, compute the totally ordered HandValue it represents. The
// evaluator is allocation-free (stackvec.StackVec backs the rank buckets and
// suit partitions; the few small scratch slices stay on the stack) so it can
// sit on the hot loop of the odds engine's runout enumeration.
package handeval

import (
	"errors"
	"fmt"

	"github.com/lox/pokerodds/card"
)

// ErrWrongSize is returned by Evaluate when the input set does not have
// between 5 and 7 cards.
var ErrWrongSize = errors.New("handeval: hand must have between 5 and 7 cards")

// Evaluate classifies a 5-7 card hand, trying each category in descending
// strength order and returning on the first match. A hand of legal size
// always matches at least HighCard, so the only error path is ErrWrongSize.
func Evaluate(cs card.CardSet) (HandValue, error) {
	n := cs.Len()
	if n < 5 || n > 7 {
		return HandValue{}, fmt.Errorf("%w: got %d cards", ErrWrongSize, n)
	}

	hist := newRankHistogram(cs)
	suits := newSuitPartition(cs)
	cc := newCardinalities(hist)

	if hv, ok := matchStraightFlush(suits); ok {
		return hv, nil
	}
	if hv, ok := matchQuads(cc); ok {
		return hv, nil
	}
	if hv, ok := matchFullHouse(cc); ok {
		return hv, nil
	}
	if hv, ok := matchFlush(suits); ok {
		return hv, nil
	}
	if hv, ok := matchStraight(cs); ok {
		return hv, nil
	}
	if hv, ok := matchTrips(cc); ok {
		return hv, nil
	}
	if hv, ok := matchTwoPair(cc); ok {
		return hv, nil
	}
	if hv, ok := matchPair(cc); ok {
		return hv, nil
	}
	return matchHighCard(cc), nil
}

func matchStraightFlush(suits suitPartition) (HandValue, bool) {
	for i := range suits {
		if suits[i].Len() < 5 {
			continue
		}
		if top, ok := straightHighRank(suits[i].Slice()); ok {
			return HandValue{Tag: StraightFlush, Ranks: [5]card.Rank{top}}, true
		}
	}
	return HandValue{}, false
}

func matchQuads(cc cardinalities) (HandValue, bool) {
	if !cc.hasQuad {
		return HandValue{}, false
	}
	var kicker card.Rank
	has := false
	consider := func(r card.Rank) {
		if !has || r > kicker {
			kicker = r
			has = true
		}
	}
	if cc.trips.Len() > 0 {
		consider(cc.trips.At(0))
	}
	if cc.pairs.Len() > 0 {
		consider(cc.pairs.At(0))
	}
	if cc.kickers.Len() > 0 {
		consider(cc.kickers.At(0))
	}
	return HandValue{Tag: Quads, Ranks: [5]card.Rank{cc.quad, kicker}}, true
}

func matchFullHouse(cc cardinalities) (HandValue, bool) {
	if cc.trips.Len() >= 2 {
		return HandValue{Tag: FullHouse, Ranks: [5]card.Rank{cc.trips.At(0), cc.trips.At(1)}}, true
	}
	if cc.trips.Len() == 1 && cc.pairs.Len() >= 1 {
		return HandValue{Tag: FullHouse, Ranks: [5]card.Rank{cc.trips.At(0), cc.pairs.At(0)}}, true
	}
	return HandValue{}, false
}

func matchFlush(suits suitPartition) (HandValue, bool) {
	for i := range suits {
		if suits[i].Len() < 5 {
			continue
		}
		var ranks [5]card.Rank
		copy(ranks[:], suits[i].Slice()[:5])
		return HandValue{Tag: Flush, Ranks: ranks}, true
	}
	return HandValue{}, false
}

func matchStraight(cs card.CardSet) (HandValue, bool) {
	ranks := make([]card.Rank, 0, 7)
	cs.IterDescending(func(c card.Card) bool {
		ranks = append(ranks, c.Rank)
		return true
	})
	if top, ok := straightHighRank(ranks); ok {
		return HandValue{Tag: Straight, Ranks: [5]card.Rank{top}}, true
	}
	return HandValue{}, false
}

// matchTrips reports Trips using the top triple plus, as kickers, the top
// two ranks drawn from singletons first and then the second triple's rank
// (once, not twice) if a second triple exists. This resolves the
// double-counted-kicker idiosyncrasy noted in spec.md's design notes:
// poker scores only the best 5 cards, so the second triple contributes its
// rank to the kicker pool exactly once.
func matchTrips(cc cardinalities) (HandValue, bool) {
	if cc.trips.Len() == 0 {
		return HandValue{}, false
	}
	// By the time control reaches here, matchFullHouse has already failed,
	// so a single triple can never coexist with a pair (that combination
	// is a full house); the kicker pool is singletons plus, when a second
	// triple exists, its rank once.
	pool := make([]card.Rank, 0, 6)
	pool = append(pool, cc.kickers.Slice()...)
	if cc.trips.Len() >= 2 {
		pool = append(pool, cc.trips.At(1))
	}
	sortDescending(pool)

	var kickers [2]card.Rank
	for i := 0; i < 2 && i < len(pool); i++ {
		kickers[i] = pool[i]
	}
	return HandValue{Tag: Trips, Ranks: [5]card.Rank{cc.trips.At(0), kickers[0], kickers[1]}}, true
}

// matchTwoPair reports TwoPair using the top two pairs; the kicker is the
// best available rank among the remaining pair (if a third pair exists)
// and the singletons.
func matchTwoPair(cc cardinalities) (HandValue, bool) {
	if cc.pairs.Len() < 2 {
		return HandValue{}, false
	}
	var kicker card.Rank
	has := false
	if cc.pairs.Len() >= 3 {
		kicker, has = cc.pairs.At(2), true
	}
	if cc.kickers.Len() > 0 && (!has || cc.kickers.At(0) > kicker) {
		kicker = cc.kickers.At(0)
	}
	return HandValue{Tag: TwoPair, Ranks: [5]card.Rank{cc.pairs.At(0), cc.pairs.At(1), kicker}}, true
}

func matchPair(cc cardinalities) (HandValue, bool) {
	if cc.pairs.Len() == 0 {
		return HandValue{}, false
	}
	var kickers [3]card.Rank
	for i := 0; i < 3 && i < cc.kickers.Len(); i++ {
		kickers[i] = cc.kickers.At(i)
	}
	return HandValue{Tag: Pair, Ranks: [5]card.Rank{cc.pairs.At(0), kickers[0], kickers[1], kickers[2]}}, true
}

func matchHighCard(cc cardinalities) HandValue {
	var kickers [4]card.Rank
	for i := 0; i < 4 && i+1 < cc.kickers.Len(); i++ {
		kickers[i] = cc.kickers.At(i + 1)
	}
	top := cc.kickers.At(0)
	return HandValue{Tag: HighCard, Ranks: [5]card.Rank{top, kickers[0], kickers[1], kickers[2], kickers[3]}}
}

// sortDescending is a tiny insertion sort: the pools it sorts never exceed
// 6 elements, so this beats the overhead of sort.Slice.
func sortDescending(ranks []card.Rank) {
	for i := 1; i < len(ranks); i++ {
		v := ranks[i]
		j := i - 1
		for j >= 0 && ranks[j] < v {
			ranks[j+1] = ranks[j]
			j--
		}
		ranks[j+1] = v
	}
}
