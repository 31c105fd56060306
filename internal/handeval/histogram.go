package handeval

import "github.com/lox/pokerodds/card"

// rankHistogram is a dense per-rank tally used to classify a hand's ranks
// into quad/triple/pair/singleton buckets. Zero value is the empty
// histogram.
type rankHistogram [card.NumRanks]int

func (h *rankHistogram) increment(r card.Rank) {
	h[r]++
}

func (h *rankHistogram) get(r card.Rank) int {
	return h[r]
}

func (h *rankHistogram) reset() {
	*h = rankHistogram{}
}

func newRankHistogram(cs card.CardSet) rankHistogram {
	var h rankHistogram
	cs.IterDescending(func(c card.Card) bool {
		h.increment(c.Rank)
		return true
	})
	return h
}
