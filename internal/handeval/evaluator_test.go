package handeval

import (
	"testing"

	"github.com/lox/pokerodds/card"
)

func mustHand(t *testing.T, s string) card.CardSet {
	t.Helper()
	cards, err := card.ParseCards(s)
	if err != nil {
		t.Fatalf("failed to parse %q: %v", s, err)
	}
	return card.FromCards(cards)
}

func TestEvaluateStraightFlushWheel(t *testing.T) {
	hv, err := Evaluate(mustHand(t, "As2s3s4s5s9h8h"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hv.Tag != StraightFlush {
		t.Fatalf("expected StraightFlush, got %s", hv.Tag)
	}
	if hv.Ranks[0] != card.Five {
		t.Fatalf("expected wheel to report Five high, got %s", hv.Ranks[0])
	}
}

func TestEvaluateQuadsKickerSelection(t *testing.T) {
	hv, err := Evaluate(mustHand(t, "ThTsTcTd7h7cAh"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hv.Tag != Quads {
		t.Fatalf("expected Quads, got %s", hv.Tag)
	}
	if hv.Ranks[0] != card.Ten || hv.Ranks[1] != card.Ace {
		t.Fatalf("expected quad tens with ace kicker, got rank=%s kicker=%s", hv.Ranks[0], hv.Ranks[1])
	}
}

func TestEvaluateFullHouseFromTwoTriples(t *testing.T) {
	hv, err := Evaluate(mustHand(t, "ThTsTc7h7c7sKh"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hv.Tag != FullHouse {
		t.Fatalf("expected FullHouse, got %s", hv.Tag)
	}
	if hv.Ranks[0] != card.Ten || hv.Ranks[1] != card.Seven {
		t.Fatalf("expected tens full of sevens, got triple=%s pair=%s", hv.Ranks[0], hv.Ranks[1])
	}
}

func TestEvaluateFlushOfSevenMatching(t *testing.T) {
	hv, err := Evaluate(mustHand(t, "8c9cKc2cAcTc4c"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hv.Tag != Flush {
		t.Fatalf("expected Flush, got %s", hv.Tag)
	}
	want := [5]card.Rank{card.Ace, card.King, card.Ten, card.Nine, card.Eight}
	if hv.Ranks != want {
		t.Fatalf("expected ranks %v, got %v", want, hv.Ranks)
	}
}

func TestEvaluateStraightFlushBeatsNonStraightSameSuit(t *testing.T) {
	// 6-7-8-9-T-J all spades plus A spades: the straight flush reported
	// should be Jack-high, not the (non-existent) higher run using the ace.
	hv, err := Evaluate(mustHand(t, "6s7s8s9sTsJsAs"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hv.Tag != StraightFlush {
		t.Fatalf("expected StraightFlush, got %s", hv.Tag)
	}
	if hv.Ranks[0] != card.Jack {
		t.Fatalf("expected Jack-high straight flush, got %s-high", hv.Ranks[0])
	}
}

func TestEvaluateWrongSize(t *testing.T) {
	cs := mustHand(t, "AsKsQs")
	if _, err := Evaluate(cs); err == nil {
		t.Fatal("expected an error for a 3-card hand")
	}
}

func TestCompareOrdersAcrossCategories(t *testing.T) {
	pair, err := Evaluate(mustHand(t, "AsAh2c3d5h7s9s"))
	if err != nil {
		t.Fatal(err)
	}
	straight, err := Evaluate(mustHand(t, "2s3h4d5c6h9s9h"))
	if err != nil {
		t.Fatal(err)
	}
	if Compare(pair, straight) >= 0 {
		t.Fatal("expected a straight to outrank a pair")
	}
}

func TestCompareSameCategoryTieBreak(t *testing.T) {
	a, err := Evaluate(mustHand(t, "AsAh2c3d5h7s9s"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Evaluate(mustHand(t, "AdAc2h3s5d7h9h"))
	if err != nil {
		t.Fatal(err)
	}
	if Compare(a, b) != 0 {
		t.Fatal("expected two equivalent pair hands to compare equal")
	}
}

func TestEvaluateTwoPairSingletonKickerBeatsThirdPair(t *testing.T) {
	hv, err := Evaluate(mustHand(t, "AsAhKsKh2c2d9s"))
	if err != nil {
		t.Fatal(err)
	}
	if hv.Tag != TwoPair {
		t.Fatalf("expected TwoPair, got %s", hv.Tag)
	}
	want := [5]card.Rank{card.Ace, card.King, card.Nine}
	if hv.Ranks[0] != want[0] || hv.Ranks[1] != want[1] || hv.Ranks[2] != want[2] {
		t.Fatalf("expected aces up kings, 9 kicker; got %v", hv.Ranks)
	}
}

func TestEvaluateHighCardTop5(t *testing.T) {
	hv, err := Evaluate(mustHand(t, "Ah9s7c5d3h2sKd"))
	if err != nil {
		t.Fatal(err)
	}
	if hv.Tag != HighCard {
		t.Fatalf("expected HighCard, got %s", hv.Tag)
	}
	want := [5]card.Rank{card.Ace, card.King, card.Nine, card.Seven, card.Five}
	if hv.Ranks != want {
		t.Fatalf("expected %v, got %v", want, hv.Ranks)
	}
}

func TestEvaluatePreflopPocketPairAndHighCard(t *testing.T) {
	pp, err := EvaluatePreflop(mustHand(t, "AsAh"))
	if err != nil {
		t.Fatal(err)
	}
	if pp.Tag != PocketPair || pp.Rank != card.Ace {
		t.Fatalf("expected pocket pair of aces, got %+v", pp)
	}

	hc, err := EvaluatePreflop(mustHand(t, "KsAh"))
	if err != nil {
		t.Fatal(err)
	}
	if hc.Tag != HighCard2 || hc.Rank != card.Ace || hc.SecondRank != card.King {
		t.Fatalf("expected ace-king high card, got %+v", hc)
	}
}
