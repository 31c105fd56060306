package odds

import (
	"testing"

	"github.com/lox/pokerodds/card"
)

func TestOutcomeAddIsComponentWise(t *testing.T) {
	a := NewOutcome(3)
	a.DrawsWith[0] = 2
	a.Losses = 1
	b := NewOutcome(3)
	b.DrawsWith[1] = 1
	b.Losses = 4

	sum := a.Add(b)
	if sum.DrawsWith[0] != 2 || sum.DrawsWith[1] != 1 || sum.Losses != 5 {
		t.Fatalf("unexpected sum: %+v", sum)
	}
}

func TestEvaluateOutcomesHeadsUp(t *testing.T) {
	// AKs vs JJ across three explicit boards covering a win, a loss, and a
	// tie, grounded on original_source's outcomes.rs heads-up test.
	ak := pocket(t, "AsKs")
	jj := pocket(t, "JcJd")

	boards := []card.CardSet{
		board(t, "KhKd2c3d4h"), // AK makes trip kings, beats JJ's two pair.
		board(t, "2c3d4h9sJh"), // JJ makes trip jacks, beats AK's high card.
		board(t, "2h3h4h5hTh"), // board itself is the best hand for both: split pot.
	}

	outcomes := EvaluateOutcomes([]card.CardSet{ak, jj}, boards)
	if outcomes[0].DrawsWith[0] != 1 {
		t.Fatalf("expected AK to win the first board outright, got %+v", outcomes[0])
	}
	if outcomes[1].DrawsWith[0] != 1 {
		t.Fatalf("expected JJ to win the second board outright, got %+v", outcomes[1])
	}
	if outcomes[0].DrawsWith[1] != 1 || outcomes[1].DrawsWith[1] != 1 {
		t.Fatalf("expected both players to tie on the all-same-suit board, got %+v / %+v", outcomes[0], outcomes[1])
	}
	if outcomes[0].Runouts() != 3 || outcomes[1].Runouts() != 3 {
		t.Fatalf("expected both outcomes to cover all 3 boards")
	}
}

func TestHandDistributionAddAndSum(t *testing.T) {
	a := HandDistribution{Pairs: 2, HighCards: 1}
	b := HandDistribution{Pairs: 1, Flushes: 3}
	sum := a.Add(b)
	if sum.Pairs != 3 || sum.Flushes != 3 || sum.HighCards != 1 {
		t.Fatalf("unexpected sum: %+v", sum)
	}
	if sum.Sum() != 7 {
		t.Fatalf("expected total 7, got %d", sum.Sum())
	}
}
