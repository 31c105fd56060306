package card

import "testing"

func TestCardSetInsertContains(t *testing.T) {
	s := New()
	ace := New(Ace, Spade)
	if s.Contains(ace) {
		t.Fatal("empty set should not contain any card")
	}
	s = s.Insert(ace)
	if !s.Contains(ace) {
		t.Fatal("expected set to contain inserted card")
	}
	if s.Len() != 1 {
		t.Fatalf("expected len 1, got %d", s.Len())
	}
}

func TestCardSetRemove(t *testing.T) {
	s := FromCards([]Card{New(Ace, Spade), New(King, Heart)})
	s = s.Remove(New(Ace, Spade))
	if s.Contains(New(Ace, Spade)) {
		t.Fatal("card should have been removed")
	}
	if !s.Contains(New(King, Heart)) {
		t.Fatal("unrelated card should remain")
	}
	if s.Len() != 1 {
		t.Fatalf("expected len 1, got %d", s.Len())
	}
}

func TestCardSetUniverse(t *testing.T) {
	u := Universe()
	if u.Len() != 52 {
		t.Fatalf("expected 52 cards in universe, got %d", u.Len())
	}
	if uint64(u)&^uint64(universeMask) != 0 {
		t.Fatal("universe must not set bits above 51")
	}
}

func TestCardSetIterDescending(t *testing.T) {
	s := FromCards([]Card{New(Two, Club), New(Ace, Spade), New(Ten, Heart)})
	var got []Card
	s.IterDescending(func(c Card) bool {
		got = append(got, c)
		return true
	})
	want := []Card{New(Ace, Spade), New(Ten, Heart), New(Two, Club)}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("at %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCardSetUnionIfDisjoint(t *testing.T) {
	a := FromCards([]Card{New(Ace, Spade)})
	b := FromCards([]Card{New(King, Heart)})
	union, ok := UnionIfDisjoint(a, b)
	if !ok {
		t.Fatal("expected disjoint sets to union cleanly")
	}
	if union.Len() != 2 {
		t.Fatalf("expected len 2, got %d", union.Len())
	}

	c := FromCards([]Card{New(Ace, Spade)})
	if _, ok := UnionIfDisjoint(a, c); ok {
		t.Fatal("expected overlapping sets to fail")
	}
}

func TestCardSetDisjointAndDifference(t *testing.T) {
	a := FromCards([]Card{New(Ace, Spade), New(King, Spade)})
	b := FromCards([]Card{New(King, Spade), New(Queen, Spade)})
	if a.Disjoint(b) {
		t.Fatal("expected sets to overlap on King of Spades")
	}
	diff := a.Difference(b)
	if diff.Len() != 1 || !diff.Contains(New(Ace, Spade)) {
		t.Fatalf("expected difference to be {AS}, got %v", diff)
	}
}

func TestCardIndexRoundTrip(t *testing.T) {
	for i := 0; i < 52; i++ {
		c := FromIndex(i)
		if c.Index() != i {
			t.Fatalf("index %d round-tripped to %d", i, c.Index())
		}
	}
}
