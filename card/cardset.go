package card

import "math/bits"

// CardSet is the 52-card universe encoded as a 52-bit mask in a 64-bit
// word. Bits 52-63 are always zero; every operation below preserves that
// invariant. CardSet is a plain value type copied by assignment.
type CardSet uint64

// universeMask has exactly bits 0-51 set.
const universeMask CardSet = (1 << 52) - 1

// New returns the empty CardSet.
func New() CardSet {
	return CardSet(0)
}

// Universe returns the CardSet containing all 52 cards.
func Universe() CardSet {
	return universeMask
}

func bitOf(c Card) CardSet {
	return CardSet(1) << uint(c.Index())
}

// Insert returns the set with c added.
func (s CardSet) Insert(c Card) CardSet {
	return s | bitOf(c)
}

// Remove returns the set with c removed.
func (s CardSet) Remove(c Card) CardSet {
	return s &^ bitOf(c)
}

// Contains reports whether c is a member of s.
func (s CardSet) Contains(c Card) bool {
	return s&bitOf(c) != 0
}

// Union returns the set union of s and o.
func (s CardSet) Union(o CardSet) CardSet {
	return s | o
}

// Intersect returns the set intersection of s and o.
func (s CardSet) Intersect(o CardSet) CardSet {
	return s & o
}

// Difference returns the cards in s that are not in o.
func (s CardSet) Difference(o CardSet) CardSet {
	return s &^ o
}

// Disjoint reports whether s and o share no cards.
func (s CardSet) Disjoint(o CardSet) bool {
	return s&o == 0
}

// Len returns the number of cards in s (popcount).
func (s CardSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// IsEmpty reports whether s has no cards.
func (s CardSet) IsEmpty() bool {
	return s == 0
}

// UnionIfDisjoint returns the union of sets if they are pairwise disjoint.
// The second return value is false if any two sets share a card, in which
// case the returned set is meaningless.
func UnionIfDisjoint(sets ...CardSet) (CardSet, bool) {
	var union CardSet
	for _, s := range sets {
		if !union.Disjoint(s) {
			return 0, false
		}
		union = union.Union(s)
	}
	return union, true
}

// IterDescending calls f for every card in s in strictly decreasing
// canonical-index order (Ace-spade first, two-club last), stopping early if
// f returns false.
func (s CardSet) IterDescending(f func(Card) bool) {
	for s != 0 {
		top := 63 - bits.LeadingZeros64(uint64(s))
		if !f(FromIndex(top)) {
			return
		}
		s &^= CardSet(1) << uint(top)
	}
}

// Cards materializes s as a slice of cards in descending canonical order.
func (s CardSet) Cards() []Card {
	out := make([]Card, 0, s.Len())
	s.IterDescending(func(c Card) bool {
		out = append(out, c)
		return true
	})
	return out
}

// FromCards builds a CardSet from a slice of cards; duplicate cards collapse
// silently (callers that must detect duplicates should use UnionIfDisjoint
// over single-card sets or compare Len() against the input length).
func FromCards(cards []Card) CardSet {
	var s CardSet
	for _, c := range cards {
		s = s.Insert(c)
	}
	return s
}

func (s CardSet) String() string {
	b := make([]byte, 0, 2*s.Len())
	s.IterDescending(func(c Card) bool {
		b = append(b, []byte(c.String())...)
		return true
	})
	return string(b)
}
