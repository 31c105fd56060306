package odds

import (
	"fmt"
	"sort"

	"github.com/lox/pokerodds/card"
	"github.com/lox/pokerodds/internal/handeval"
	"github.com/lox/pokerodds/internal/parallel"
)

// Outcome tallies, for one player across a batch of runouts, how many
// runouts they lost and how many they tied (including outright wins,
// which are k-way ties of size 1). DrawsWith[k-1] counts runouts in which
// the player tied for the top hand in a group of exactly k players,
// so DrawsWith[0] is the outright-win channel. For every runout exactly
// one of Losses or some DrawsWith slot is incremented for each player;
// summed over all runouts, the sum of DrawsWith plus Losses equals the
// runout count. Outcome is an associative monoid under Add.
type Outcome struct {
	DrawsWith []uint64
	Losses    uint64
}

// NewOutcome returns a zeroed Outcome sized for a table of n players.
func NewOutcome(n int) Outcome {
	return Outcome{DrawsWith: make([]uint64, n)}
}

// Add returns the component-wise sum of two Outcomes. Both must have been
// built for the same player count.
func (o Outcome) Add(other Outcome) Outcome {
	if len(o.DrawsWith) != len(other.DrawsWith) {
		panic(fmt.Sprintf("odds: cannot add outcomes sized for %d and %d players", len(o.DrawsWith), len(other.DrawsWith)))
	}
	sum := NewOutcome(len(o.DrawsWith))
	for i := range sum.DrawsWith {
		sum.DrawsWith[i] = o.DrawsWith[i] + other.DrawsWith[i]
	}
	sum.Losses = o.Losses + other.Losses
	return sum
}

// Runouts returns the total number of runouts tallied (wins + draws +
// losses).
func (o Outcome) Runouts() uint64 {
	total := o.Losses
	for _, d := range o.DrawsWith {
		total += d
	}
	return total
}

// WinFraction returns the outright-win fraction (DrawsWith[0] over total
// runouts).
func (o Outcome) WinFraction() Fraction {
	if len(o.DrawsWith) == 0 {
		return Fraction{}
	}
	return Fraction{Satisfying: o.DrawsWith[0], Total: o.Runouts()}
}

// DrawFraction returns the fraction of runouts in which the player tied
// (any group size greater than 1).
func (o Outcome) DrawFraction() Fraction {
	var draws uint64
	for i := 1; i < len(o.DrawsWith); i++ {
		draws += o.DrawsWith[i]
	}
	return Fraction{Satisfying: draws, Total: o.Runouts()}
}

// LossFraction returns the loss fraction over total runouts.
func (o Outcome) LossFraction() Fraction {
	return Fraction{Satisfying: o.Losses, Total: o.Runouts()}
}

// evaluateOutcomesForBoard computes, for one fully-dealt board, each
// player's showdown hand, ranks them, and credits exactly one Outcome slot
// per player. Inputs are assumed already validated by the caller (odds
// driver): wrong-size hands reaching here are an internal invariant
// violation, not a recoverable error.
func evaluateOutcomesForBoard(pockets []card.CardSet, board card.CardSet) []Outcome {
	n := len(pockets)
	values := make([]handeval.HandValue, n)
	for i, p := range pockets {
		hv, err := handeval.Evaluate(p.Union(board))
		if err != nil {
			panic(fmt.Sprintf("odds: invalid showdown hand for player %d: %v", i, err))
		}
		values[i] = hv
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return handeval.Less(values[order[b]], values[order[a]])
	})

	group := 1
	for group < n && handeval.Compare(values[order[group]], values[order[0]]) == 0 {
		group++
	}

	out := make([]Outcome, n)
	for i := range out {
		out[i] = NewOutcome(n)
	}
	for i := 0; i < group; i++ {
		out[order[i]].DrawsWith[group-1] = 1
	}
	for i := group; i < n; i++ {
		out[order[i]].Losses = 1
	}
	return out
}

// EvaluateOutcomes ranks players[i] ∪ board for every board and accumulates
// each player's Outcome across all boards, in parallel. Callers must
// guarantee pockets are pairwise disjoint 2-card sets and each board is a
// disjoint 5-card completion; EvaluateOutcomes itself performs no
// validation (that is the odds driver's job, since it is the only place a
// typed user-facing error makes sense).
func EvaluateOutcomes(pockets []card.CardSet, boards []card.CardSet) []Outcome {
	n := len(pockets)
	perBoard := parallel.Map(boards, func(b card.CardSet) []Outcome {
		return evaluateOutcomesForBoard(pockets, b)
	})

	combined, ok := parallel.Reduce(perBoard, func(a, b []Outcome) []Outcome {
		sum := make([]Outcome, len(a))
		for i := range sum {
			sum[i] = a[i].Add(b[i])
		}
		return sum
	})
	if !ok {
		combined = make([]Outcome, n)
		for i := range combined {
			combined[i] = NewOutcome(n)
		}
	}
	return combined
}
