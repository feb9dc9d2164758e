package poker

import (
	"fmt"
	"strings"
)

type HandRank int

// five card ranks
const (
	HighCard HandRank = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// ranks for hands of 1-4 cards
const (
	SingleCard HandRank = iota + 100
	PartialHighCard
	MiniPair
	PairPlus
	StrongPair
	MiniTwoPair
	MiniThreeOfAKind
	MiniStraight
	MiniFlush
	MiniFourOfAKind
	MiniStraightFlush
)

var rankToString = map[HandRank]string{
	HighCard:          "High Card",
	OnePair:           "One Pair",
	TwoPair:           "Two Pair",
	ThreeOfAKind:      "Three of a Kind",
	Straight:          "Straight",
	Flush:             "Flush",
	FullHouse:         "Full House",
	FourOfAKind:       "Four of a Kind",
	StraightFlush:     "Straight Flush",
	SingleCard:        "Single Card",
	PartialHighCard:   "Partial High Card",
	MiniPair:          "Mini Pair",
	PairPlus:          "Pair Plus",
	StrongPair:        "Strong Pair",
	MiniTwoPair:       "Mini Two Pair",
	MiniThreeOfAKind:  "Mini Three of a Kind",
	MiniStraight:      "Mini Straight",
	MiniFlush:         "Mini Flush",
	MiniFourOfAKind:   "Mini Four of a Kind",
	MiniStraightFlush: "Mini Straight Flush",
}

var fiveCardRanks = []HandRank{
	HighCard, OnePair, TwoPair, ThreeOfAKind, Straight, Flush, FullHouse, FourOfAKind, StraightFlush,
}

var partialRanks = []HandRank{
	SingleCard, PartialHighCard, MiniPair, PairPlus, StrongPair, MiniTwoPair,
	MiniThreeOfAKind, MiniStraight, MiniFlush, MiniFourOfAKind, MiniStraightFlush,
}

func (r HandRank) String() string {
	if s, ok := rankToString[r]; ok {
		return s
	}
	return fmt.Sprintf("HandRank(%d)", int(r))
}

// IsPartial is true for the ranks produced by hands of fewer than five cards.
func (r HandRank) IsPartial() bool {
	return r >= SingleCard
}

// IsValid is false for the failing ranks that cost the player health and points.
func (r HandRank) IsValid() bool {
	return r != HighCard && r != PartialHighCard && r != SingleCard
}

func (r HandRank) MarshalText() ([]byte, error) {
	if _, ok := rankToString[r]; !ok {
		return nil, fmt.Errorf("Invalid hand rank %d", int(r))
	}
	return []byte(r.String()), nil
}

func (r *HandRank) UnmarshalText(text []byte) error {
	rank, err := ParseHandRank(string(text))
	if err != nil {
		return err
	}
	*r = rank
	return nil
}

// ParseHandRank accepts the display name in any case, with spaces, dashes or underscores.
func ParseHandRank(s string) (HandRank, error) {
	normalized := normalizeRankName(s)
	for r, name := range rankToString {
		if normalizeRankName(name) == normalized {
			return r, nil
		}
	}
	return HighCard, fmt.Errorf("Invalid hand rank [%s]", s)
}

func normalizeRankName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// FiveCardRanks returns the standard poker ranks from weakest to strongest.
func FiveCardRanks() []HandRank {
	return append([]HandRank(nil), fiveCardRanks...)
}

func PartialRanks() []HandRank {
	return append([]HandRank(nil), partialRanks...)
}

// AllHandRanks returns every rank the evaluator can produce.
func AllHandRanks() []HandRank {
	return append(FiveCardRanks(), partialRanks...)
}
