package poker

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEvaluateFiveCards(t *testing.T) {
	testCases := []struct {
		cards    []string
		expected HandRank
		valid    bool
	}{
		{cards: []string{"2s", "2h", "2d", "2c", "5s"}, expected: FourOfAKind, valid: true},
		{cards: []string{"3s", "3h", "3d", "7s", "7h"}, expected: FullHouse, valid: true},
		{cards: []string{"2s", "4s", "6s", "8s", "10s"}, expected: Flush, valid: true},
		{cards: []string{"As", "2h", "3d", "4c", "5s"}, expected: Straight, valid: true},
		{cards: []string{"10s", "Js", "Qs", "Ks", "As"}, expected: StraightFlush, valid: true},
		{cards: []string{"2s", "5h", "9d", "Jc", "Ks"}, expected: HighCard, valid: false},
		{cards: []string{"As", "2s", "3s", "4s", "5s"}, expected: StraightFlush, valid: true},
		{cards: []string{"9h", "10d", "Jc", "Qs", "Kh"}, expected: Straight, valid: true},
		{cards: []string{"Qh", "Kd", "Ac", "2s", "3h"}, expected: HighCard, valid: false},
		{cards: []string{"8h", "8d", "8c", "Qs", "2h"}, expected: ThreeOfAKind, valid: true},
		{cards: []string{"8h", "8d", "Qc", "Qs", "2h"}, expected: TwoPair, valid: true},
		{cards: []string{"8h", "8d", "Jc", "Qs", "2h"}, expected: OnePair, valid: true},
	}

	for _, tc := range testCases {
		eval, err := Evaluate(MustParseCards(tc.cards...))
		if err != nil {
			t.Fatalf("Evaluate(%v) returned error [%s]", tc.cards, err)
		}
		if eval.Rank != tc.expected {
			t.Errorf("Evaluate(%v) = %s, expected %s", tc.cards, eval.Rank, tc.expected)
		}
		if eval.IsValid != tc.valid {
			t.Errorf("Evaluate(%v).IsValid = %v, expected %v", tc.cards, eval.IsValid, tc.valid)
		}
	}
}

func TestEvaluatePartialHands(t *testing.T) {
	testCases := []struct {
		cards    []string
		expected HandRank
		valid    bool
	}{
		{cards: []string{"Ks"}, expected: SingleCard, valid: false},
		{cards: []string{"Ks", "Kh"}, expected: MiniPair, valid: true},
		{cards: []string{"Ks", "2h"}, expected: PartialHighCard, valid: false},
		{cards: []string{"3s", "4s"}, expected: PartialHighCard, valid: false},
		{cards: []string{"Ks", "Kh", "2d"}, expected: PairPlus, valid: true},
		{cards: []string{"Ks", "Kh", "2d", "9c"}, expected: StrongPair, valid: true},
		{cards: []string{"Ks", "Kh", "2d", "2c"}, expected: MiniTwoPair, valid: true},
		{cards: []string{"Ks", "Kh", "Kd"}, expected: MiniThreeOfAKind, valid: true},
		{cards: []string{"Ks", "Kh", "Kd", "4c"}, expected: MiniThreeOfAKind, valid: true},
		{cards: []string{"Ks", "Kh", "Kd", "Kc"}, expected: MiniFourOfAKind, valid: true},
		{cards: []string{"5h", "6h", "7h"}, expected: MiniStraightFlush, valid: true},
		{cards: []string{"5h", "6h", "7h", "8h"}, expected: MiniStraightFlush, valid: true},
		{cards: []string{"2h", "9h", "Kh"}, expected: MiniFlush, valid: true},
		{cards: []string{"5h", "6d", "7c"}, expected: MiniStraight, valid: true},
		{cards: []string{"Ah", "2d", "3c"}, expected: MiniStraight, valid: true},
		{cards: []string{"Ah", "2d", "3c", "4s"}, expected: MiniStraight, valid: true},
		{cards: []string{"Kh", "Ad", "2c"}, expected: PartialHighCard, valid: false},
		{cards: []string{"Jh", "Qd", "Kc", "As"}, expected: MiniStraight, valid: true},
		{cards: []string{"2h", "7d", "Kc"}, expected: PartialHighCard, valid: false},
	}

	for _, tc := range testCases {
		eval, err := Evaluate(MustParseCards(tc.cards...))
		if err != nil {
			t.Fatalf("Evaluate(%v) returned error [%s]", tc.cards, err)
		}
		if eval.Rank != tc.expected {
			t.Errorf("Evaluate(%v) = %s, expected %s", tc.cards, eval.Rank, tc.expected)
		}
		if eval.IsValid != tc.valid {
			t.Errorf("Evaluate(%v).IsValid = %v, expected %v", tc.cards, eval.IsValid, tc.valid)
		}
	}
}

func TestEvaluateInvalidSize(t *testing.T) {
	for _, cards := range [][]PlayingCard{
		nil,
		MustParseCards("2s", "3s", "4s", "5s", "6s", "7s"),
	} {
		_, err := Evaluate(cards)
		if _, ok := err.(*InvalidHandSizeError); !ok {
			t.Errorf("Evaluate with %d cards returned [%v], expected InvalidHandSizeError", len(cards), err)
		}
	}
}

func TestEvaluateDescription(t *testing.T) {
	testCases := []struct {
		cards    []string
		expected string
	}{
		{cards: []string{"Qd"}, expected: "High card of Q"},
		{cards: []string{"As", "2h", "3d", "4c", "5s"}, expected: "Straight to 5"},
		{cards: []string{"3s", "3h", "3d", "7s", "7h"}, expected: "Full House, 3s full of 7s"},
	}
	for _, tc := range testCases {
		eval, err := Evaluate(MustParseCards(tc.cards...))
		if err != nil {
			t.Fatal(err)
		}
		if !cmp.Equal(eval.Description, tc.expected) {
			t.Errorf("%v: %s != %s", tc.cards, eval.Description, tc.expected)
		}
	}
}

func TestParseHandRank(t *testing.T) {
	for _, rank := range AllHandRanks() {
		parsed, err := ParseHandRank(rank.String())
		if err != nil {
			t.Fatal(err)
		}
		if parsed != rank {
			t.Errorf("ParseHandRank(%s) = %s", rank, parsed)
		}
	}
	parsed, err := ParseHandRank("straight-flush")
	if err != nil || parsed != StraightFlush {
		t.Errorf("ParseHandRank(straight-flush) = %s, %v", parsed, err)
	}
	if _, err := ParseHandRank("royal"); err == nil {
		t.Error("Expected error for unknown rank")
	}
}
