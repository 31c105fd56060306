package handeval

import "github.com/lox/pokerodds/card"

// Tag identifies one of the nine standard poker hand categories. Tag order
// is the hand category order: a hand with a higher Tag always outranks one
// with a lower Tag, regardless of Ranks.
type Tag int

const (
	HighCard Tag = iota
	Pair
	TwoPair
	Trips
	Straight
	Flush
	FullHouse
	Quads
	StraightFlush
)

func (t Tag) String() string {
	switch t {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case Trips:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case Quads:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// HandValue is a totally ordered 5-card hand value: a 9-case tagged union
// represented as a Tag plus a fixed tie-break array. Only the leading
// fields of Ranks are meaningful for a given Tag (see the table
// below); the remainder are always zero so that two
// values of the same Tag can be compared by a plain lexicographic scan of
// the whole array.
//
//	HighCard:      Ranks[0]=rank,            Ranks[1:5]=kickers desc
//	Pair:          Ranks[0]=rank,            Ranks[1:4]=kickers desc
//	TwoPair:       Ranks[0]=higher, [1]=lower, [2]=kicker
//	Trips:         Ranks[0]=rank,            Ranks[1:3]=kickers desc
//	Straight:      Ranks[0]=topRank
//	Flush:         Ranks[0:5]=ranks desc
//	FullHouse:     Ranks[0]=tripleRank, [1]=pairRank
//	Quads:         Ranks[0]=rank, [1]=kicker
//	StraightFlush: Ranks[0]=topRank
type HandValue struct {
	Tag   Tag
	Ranks [5]card.Rank
}

// Compare returns -1, 0, or 1 as a is worse than, equal to, or better than
// b. This is the equity comparator: higher Tag always wins; within a Tag,
// Ranks compares lexicographically.
func Compare(a, b HandValue) int {
	if a.Tag != b.Tag {
		if a.Tag < b.Tag {
			return -1
		}
		return 1
	}
	for i := range a.Ranks {
		if a.Ranks[i] != b.Ranks[i] {
			if a.Ranks[i] < b.Ranks[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Less reports whether a is strictly worse than b.
func Less(a, b HandValue) bool {
	return Compare(a, b) < 0
}
