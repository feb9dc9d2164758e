package poker

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// classifyFive ranks five cards by counting, independent of Evaluate.
func classifyFive(cards []PlayingCard) HandRank {
	counts := make(map[int]int)
	suits := make(map[Suit]int)
	for _, c := range cards {
		counts[c.Numeric()]++
		suits[c.Suit]++
	}
	shape := make([]int, 0, len(counts))
	values := make([]int, 0, len(counts))
	for v, n := range counts {
		shape = append(shape, n)
		values = append(values, v)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(shape)))
	sort.Ints(values)

	flush := len(suits) == 1
	straight := false
	if len(values) == 5 {
		straight = values[4]-values[0] == 4 ||
			cmp.Equal(values, []int{2, 3, 4, 5, 14})
	}
	switch {
	case straight && flush:
		return StraightFlush
	case shape[0] == 4:
		return FourOfAKind
	case shape[0] == 3 && shape[1] == 2:
		return FullHouse
	case flush:
		return Flush
	case straight:
		return Straight
	case shape[0] == 3:
		return ThreeOfAKind
	case shape[0] == 2 && shape[1] == 2:
		return TwoPair
	case shape[0] == 2:
		return OnePair
	}
	return HighCard
}

func TestEvaluateMatchesCountingOnRandomHands(t *testing.T) {
	rng := NewRandGen(2024)
	deck := BuildDeck(rng)
	histogram := make(map[HandRank]int)
	for i := 0; i < 20000; i++ {
		hand := Shuffle(deck, rng)[:MaxHandSize]
		eval, err := Evaluate(hand)
		if err != nil {
			t.Fatalf("%s: %v", CardsToString(hand), err)
		}
		expected := classifyFive(hand)
		if eval.Rank != expected {
			t.Fatalf("%s: got %s, expected %s", CardsToString(hand), eval.Rank, expected)
		}
		if eval.IsValid != (expected != HighCard) {
			t.Errorf("%s: valid = %v", CardsToString(hand), eval.IsValid)
		}
		histogram[eval.Rank]++
	}
	// the common ranks show up in any sample this size
	for _, rank := range []HandRank{HighCard, OnePair, TwoPair, ThreeOfAKind, Straight, Flush} {
		if histogram[rank] == 0 {
			t.Errorf("no %s in the sample", rank)
		}
	}
	if histogram[OnePair] < histogram[TwoPair] || histogram[TwoPair] < histogram[ThreeOfAKind] {
		t.Errorf("unexpected rank frequencies %v", histogram)
	}
}

func TestEvaluateEveryStraightAndFlushShape(t *testing.T) {
	for low := 0; low+4 < len(Values); low++ {
		for _, suit := range Suits {
			hand := make([]PlayingCard, 0, MaxHandSize)
			for i := 0; i < MaxHandSize; i++ {
				hand = append(hand, NewPlayingCard(Values[low+i], suit, 3, 1))
			}
			if eval, _ := Evaluate(hand); eval.Rank != StraightFlush {
				t.Errorf("%s: got %s", CardsToString(hand), eval.Rank)
			}
			// break the flush with a different suit on the top card
			hand[4] = NewPlayingCard(Values[low+4], Suits[(indexOfSuit(suit)+1)%len(Suits)], 3, 1)
			if eval, _ := Evaluate(hand); eval.Rank != Straight {
				t.Errorf("%s: got %s", CardsToString(hand), eval.Rank)
			}
		}
	}
	wheel := MustParseCards("Ah", "2h", "3h", "4h", "5h")
	if eval, _ := Evaluate(wheel); eval.Rank != StraightFlush {
		t.Errorf("wheel flush: got %s", eval.Rank)
	}
}

func indexOfSuit(s Suit) int {
	for i, suit := range Suits {
		if suit == s {
			return i
		}
	}
	return -1
}
