package poker

import (
	"fmt"
	"sort"
)

const (
	MaxHandSize = 5
	MinHandSize = 1
)

type Evaluation struct {
	Rank        HandRank `json:"rank"`
	IsValid     bool     `json:"isValid"`
	Description string   `json:"description"`
}

// HandEvaluator maps 1 to 5 cards to a rank.
type HandEvaluator interface {
	Evaluate(cards []PlayingCard) (Evaluation, error)
}

type StandardEvaluator struct{}

func NewEvaluator() *StandardEvaluator {
	return &StandardEvaluator{}
}

func (e *StandardEvaluator) Evaluate(cards []PlayingCard) (Evaluation, error) {
	return Evaluate(cards)
}

type valueGroup struct {
	value int
	count int
}

type handShape struct {
	size   int
	groups []valueGroup // largest count first, then highest value
	flush  bool
	// highest card of a straight run, 5 for the wheel
	straightHigh int
}

func (s handShape) straight() bool {
	return s.straightHigh > 0
}

func (s handShape) countOf(n int) int {
	c := 0
	for _, g := range s.groups {
		if g.count == n {
			c++
		}
	}
	return c
}

func analyze(cards []PlayingCard) handShape {
	shape := handShape{size: len(cards)}

	counts := make(map[int]int)
	suits := make(map[Suit]struct{})
	for _, c := range cards {
		counts[c.Numeric()]++
		suits[c.Suit] = struct{}{}
	}
	for v, c := range counts {
		shape.groups = append(shape.groups, valueGroup{value: v, count: c})
	}
	sort.Slice(shape.groups, func(i, j int) bool {
		if shape.groups[i].count != shape.groups[j].count {
			return shape.groups[i].count > shape.groups[j].count
		}
		return shape.groups[i].value > shape.groups[j].value
	})

	shape.flush = len(suits) == 1
	if len(counts) == len(cards) {
		shape.straightHigh = straightHigh(counts, len(cards))
	}
	return shape
}

// straightHigh returns the top card of a run of n distinct values, or 0.
// The ace plays low only when the rest of the run starts at 2; runs never wrap.
func straightHigh(counts map[int]int, n int) int {
	values := make([]int, 0, len(counts))
	for v := range counts {
		values = append(values, v)
	}
	sort.Ints(values)
	if values[len(values)-1]-values[0] == n-1 {
		return values[len(values)-1]
	}
	if values[len(values)-1] == 14 {
		low := append([]int{1}, values[:len(values)-1]...)
		if low[len(low)-1]-low[0] == n-1 {
			return low[len(low)-1]
		}
	}
	return 0
}

// Evaluate assigns a rank to 1 to 5 cards. Multiples are checked before
// flush-type ranks, and flush-type ranks before straight-type ranks.
func Evaluate(cards []PlayingCard) (Evaluation, error) {
	n := len(cards)
	if n < MinHandSize || n > MaxHandSize {
		return Evaluation{}, &InvalidHandSizeError{Size: n}
	}
	shape := analyze(cards)
	var rank HandRank
	if n == MaxHandSize {
		rank = fiveCardRank(shape)
	} else {
		rank = partialRank(shape)
	}
	return Evaluation{
		Rank:        rank,
		IsValid:     rank.IsValid(),
		Description: describe(rank, shape),
	}, nil
}

func fiveCardRank(s handShape) HandRank {
	top := s.groups[0].count
	switch {
	case s.straight() && s.flush:
		return StraightFlush
	case top == 4:
		return FourOfAKind
	case top == 3 && s.countOf(2) == 1:
		return FullHouse
	case s.flush:
		return Flush
	case s.straight():
		return Straight
	case top == 3:
		return ThreeOfAKind
	case s.countOf(2) == 2:
		return TwoPair
	case top == 2:
		return OnePair
	}
	return HighCard
}

func partialRank(s handShape) HandRank {
	if s.size == 1 {
		return SingleCard
	}
	top := s.groups[0].count
	switch {
	case top == 4:
		return MiniFourOfAKind
	case top == 3:
		return MiniThreeOfAKind
	case s.countOf(2) == 2:
		return MiniTwoPair
	case top == 2:
		switch s.size {
		case 2:
			return MiniPair
		case 3:
			return PairPlus
		default:
			return StrongPair
		}
	}
	if s.size >= 3 {
		switch {
		case s.flush && s.straight():
			return MiniStraightFlush
		case s.flush:
			return MiniFlush
		case s.straight():
			return MiniStraight
		}
	}
	return PartialHighCard
}

var numericToName = map[int]string{
	1: "A", 2: "2", 3: "3", 4: "4", 5: "5", 6: "6", 7: "7", 8: "8",
	9: "9", 10: "10", 11: "J", 12: "Q", 13: "K", 14: "A",
}

func describe(rank HandRank, s handShape) string {
	high := numericToName[s.groups[0].value]
	switch rank {
	case SingleCard:
		return fmt.Sprintf("High card of %s", high)
	case HighCard, PartialHighCard:
		return fmt.Sprintf("%s, %s high", rank, high)
	case OnePair, MiniPair, PairPlus, StrongPair:
		return fmt.Sprintf("%s of %ss", rank, high)
	case TwoPair, MiniTwoPair:
		return fmt.Sprintf("%s, %ss and %ss", rank, high, numericToName[s.groups[1].value])
	case ThreeOfAKind, MiniThreeOfAKind, FourOfAKind, MiniFourOfAKind:
		return fmt.Sprintf("%s, %ss", rank, high)
	case FullHouse:
		return fmt.Sprintf("%s, %ss full of %ss", rank, high, numericToName[s.groups[1].value])
	case Straight, StraightFlush, MiniStraight, MiniStraightFlush:
		return fmt.Sprintf("%s to %s", rank, numericToName[s.straightHigh])
	}
	return rank.String()
}
