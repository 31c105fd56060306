// Package odds implements the odds driver: it validates a showdown
// (pockets and a partial board), enumerates every legal runout, and
// returns each player's win/draw/loss outcome and hand-category
// distribution. This is the entry point spec.md calls "the odds driver";
// everything in internal/combin, internal/handeval, and internal/parallel
// exists to serve it.
package odds

import (
	"github.com/lox/pokerodds/card"
	"github.com/lox/pokerodds/internal/combin"
	"github.com/lox/pokerodds/internal/handeval"
	"github.com/lox/pokerodds/internal/parallel"
)

// PlayerOdds is one player's result: their pocket, the win/draw/loss
// Outcome across every runout, and the HandDistribution their best hand
// fell into across those same runouts.
type PlayerOdds struct {
	Pocket       card.CardSet
	Outcome      Outcome
	Distribution HandDistribution
}

// MinPlayers and MaxPlayers bound the number of pockets Calculate accepts.
const (
	MinPlayers = 2
	MaxPlayers = 23
)

// Calculate validates pockets and board, enumerates every legal completion
// of the board, and returns each player's result. pockets must each have
// exactly two cards, number between MinPlayers and MaxPlayers, and be
// pairwise disjoint from each other and from board; board must have at
// most 5 cards.
func Calculate(pockets []card.CardSet, board card.CardSet) ([]PlayerOdds, error) {
	n := len(pockets)

	for _, p := range pockets {
		if p.Len() != 2 {
			return nil, ErrPocketsMustHaveTwoCardsEach
		}
	}

	pocketsUnion, ok := card.UnionIfDisjoint(pockets...)
	if !ok {
		return nil, ErrDuplicateCards
	}
	if !board.Disjoint(pocketsUnion) {
		return nil, ErrDuplicateCards
	}

	if board.Len() > 5 {
		return nil, ErrBoardTooLarge
	}
	if n < MinPlayers {
		return nil, ErrTooFewPlayers
	}
	if n > MaxPlayers {
		return nil, ErrTooManyPlayers
	}

	dealt := board.Union(pocketsUnion)
	remaining := card.Universe().Difference(dealt)
	runouts := combin.Combinations(remaining, 5-board.Len())
	fullBoards := parallel.Map(runouts, func(r card.CardSet) card.CardSet {
		return r.Union(board)
	})

	distributions := make([]HandDistribution, n)
	for p := 0; p < n; p++ {
		pocket := pockets[p]
		perRunout := parallel.Map(fullBoards, func(b card.CardSet) HandDistribution {
			hv, err := handeval.Evaluate(pocket.Union(b))
			if err != nil {
				return Discarded1()
			}
			return SingleHand(hv)
		})
		dist, ok := parallel.Reduce(perRunout, HandDistribution.Add)
		if !ok {
			dist = HandDistribution{}
		}
		distributions[p] = dist
	}

	outcomes := EvaluateOutcomes(pockets, fullBoards)

	results := make([]PlayerOdds, n)
	for i := range results {
		results[i] = PlayerOdds{
			Pocket:       pockets[i],
			Outcome:      outcomes[i],
			Distribution: distributions[i],
		}
	}
	return results, nil
}
