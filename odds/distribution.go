package odds

import "github.com/lox/pokerodds/internal/handeval"

// HandDistribution tallies, over some set of evaluated hands, how many
// fell into each of the nine standard poker hand categories, plus a tenth
// "discarded" counter for hands the evaluator could not classify (a
// WrongSize failure — never expected to be nonzero for hands produced by
// the odds driver itself, but tracked so a malformed caller input shows up
// in the report rather than silently vanishing). HandDistribution is an
// associative monoid under Add; its identity is the zero value.
type HandDistribution struct {
	StraightFlushes uint64
	Quads           uint64
	FullHouses      uint64
	Flushes         uint64
	Straights       uint64
	Trips           uint64
	TwoPairs        uint64
	Pairs           uint64
	HighCards       uint64
	Discarded       uint64
}

// SingleHand returns the distribution consisting of exactly one tally, for
// the category hv belongs to.
func SingleHand(hv handeval.HandValue) HandDistribution {
	var d HandDistribution
	switch hv.Tag {
	case handeval.StraightFlush:
		d.StraightFlushes = 1
	case handeval.Quads:
		d.Quads = 1
	case handeval.FullHouse:
		d.FullHouses = 1
	case handeval.Flush:
		d.Flushes = 1
	case handeval.Straight:
		d.Straights = 1
	case handeval.Trips:
		d.Trips = 1
	case handeval.TwoPair:
		d.TwoPairs = 1
	case handeval.Pair:
		d.Pairs = 1
	case handeval.HighCard:
		d.HighCards = 1
	}
	return d
}

// Discarded1 returns the distribution consisting of a single discarded
// tally, for a hand the evaluator rejected.
func Discarded1() HandDistribution {
	return HandDistribution{Discarded: 1}
}

// Add returns the component-wise sum of two distributions.
func (d HandDistribution) Add(o HandDistribution) HandDistribution {
	return HandDistribution{
		StraightFlushes: d.StraightFlushes + o.StraightFlushes,
		Quads:           d.Quads + o.Quads,
		FullHouses:      d.FullHouses + o.FullHouses,
		Flushes:         d.Flushes + o.Flushes,
		Straights:       d.Straights + o.Straights,
		Trips:           d.Trips + o.Trips,
		TwoPairs:        d.TwoPairs + o.TwoPairs,
		Pairs:           d.Pairs + o.Pairs,
		HighCards:       d.HighCards + o.HighCards,
		Discarded:       d.Discarded + o.Discarded,
	}
}

// Sum returns the total number of hands tallied across every category.
func (d HandDistribution) Sum() uint64 {
	return d.StraightFlushes + d.Quads + d.FullHouses + d.Flushes + d.Straights +
		d.Trips + d.TwoPairs + d.Pairs + d.HighCards + d.Discarded
}

// categoryFraction returns the given category's count over the distribution's
// total, for percentage reporting.
func (d HandDistribution) categoryFraction(count uint64) Fraction {
	return Fraction{Satisfying: count, Total: d.Sum()}
}

func (d HandDistribution) StraightFlushFraction() Fraction { return d.categoryFraction(d.StraightFlushes) }
func (d HandDistribution) QuadsFraction() Fraction         { return d.categoryFraction(d.Quads) }
func (d HandDistribution) FullHouseFraction() Fraction     { return d.categoryFraction(d.FullHouses) }
func (d HandDistribution) FlushFraction() Fraction         { return d.categoryFraction(d.Flushes) }
func (d HandDistribution) StraightFraction() Fraction      { return d.categoryFraction(d.Straights) }
func (d HandDistribution) TripsFraction() Fraction         { return d.categoryFraction(d.Trips) }
func (d HandDistribution) TwoPairFraction() Fraction       { return d.categoryFraction(d.TwoPairs) }
func (d HandDistribution) PairFraction() Fraction          { return d.categoryFraction(d.Pairs) }
func (d HandDistribution) HighCardFraction() Fraction      { return d.categoryFraction(d.HighCards) }
