package handeval

import "github.com/lox/pokerodds/card"

// straightHighRank is the shared straight-detection subroutine used for
// both same-suit (straight flush) and full-hand (straight) scans. ranks
// must be supplied in strictly descending order but may contain duplicate
// ranks (the plain-straight scan walks a 5-7 card hand where pairs are
// possible; the same-suit scan never has duplicates since a suit cannot
// repeat a rank).
//
// It tracks the current run's top rank and length plus the last distinct
// rank seen (to skip duplicates). A run extends when the next distinct
// rank is exactly one below where the run's low end currently sits;
// otherwise the run restarts at the new rank. The run succeeds at length
// 5, or at length 4 ending at Five when the very first rank scanned was
// Ace (the wheel, A-2-3-4-5, reported with a top rank of Five).
func straightHighRank(ranks []card.Rank) (card.Rank, bool) {
	if len(ranks) == 0 {
		return 0, false
	}

	first := ranks[0]
	var top card.Rank
	runLength := 0
	haveLast := false
	var last card.Rank

	for _, r := range ranks {
		if haveLast && r == last {
			continue
		}
		if runLength > 0 && int(r) == int(top)-runLength {
			runLength++
			if runLength == 5 {
				return top, true
			}
		} else {
			top = r
			runLength = 1
		}
		last = r
		haveLast = true
	}

	if runLength == 4 && top == card.Five && first == card.Ace {
		return card.Five, true
	}
	return 0, false
}
