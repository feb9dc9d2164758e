package poker

import (
	crypto_rand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sort"
)

const (
	DeckSize        = 52
	MinMaxImprove   = 3
	MaxMaxImprove   = 5
	MinImproveBonus = 1
	MaxImproveBonus = 3
)

func newSeed() int64 {
	var b [8]byte
	_, err := crypto_rand.Read(b[:])
	if err != nil {
		panic("cannot seed math/rand package with cryptographically secure random number generator")
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

// NewRandGen returns a seeded generator. A zero seed picks a random one.
func NewRandGen(seed int64) *rand.Rand {
	if seed == 0 {
		seed = newSeed()
	}
	return rand.New(rand.NewSource(seed))
}

// BuildDeck returns the 52 suit x value cards in a fixed order with random upgrade limits.
func BuildDeck(rng *rand.Rand) []PlayingCard {
	cards := make([]PlayingCard, 0, DeckSize)
	for _, suit := range Suits {
		for _, value := range Values {
			maxLevel := MinMaxImprove + rng.Intn(MaxMaxImprove-MinMaxImprove+1)
			bonus := MinImproveBonus + rng.Intn(MaxImproveBonus-MinImproveBonus+1)
			cards = append(cards, NewPlayingCard(value, suit, maxLevel, bonus))
		}
	}
	return cards
}

// Shuffle returns a uniformly random permutation of cards. The input is not modified.
func Shuffle(cards []PlayingCard, rng *rand.Rand) []PlayingCard {
	shuffled := make([]PlayingCard, len(cards))
	copy(shuffled, cards)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// Deal takes the first n cards of the deck.
func Deal(deck []PlayingCard, n int) (hand []PlayingCard, rest []PlayingCard, err error) {
	if n < 0 || n > len(deck) {
		return nil, deck, &InsufficientDeckError{Requested: n, Available: len(deck)}
	}
	hand = make([]PlayingCard, n)
	copy(hand, deck[:n])
	rest = make([]PlayingCard, len(deck)-n)
	copy(rest, deck[n:])
	return hand, rest, nil
}

// Replenish draws up to count cards from the tail of the deck into the hand.
// It stops without error when the deck runs out.
func Replenish(deck []PlayingCard, hand []PlayingCard, count int) (newHand []PlayingCard, newDeck []PlayingCard) {
	newDeck = make([]PlayingCard, len(deck))
	copy(newDeck, deck)
	newHand = make([]PlayingCard, len(hand), len(hand)+count)
	copy(newHand, hand)
	for i := 0; i < count && len(newDeck) > 0; i++ {
		last := len(newDeck) - 1
		newHand = append(newHand, newDeck[last])
		newDeck = newDeck[:last]
	}
	return newHand, newDeck
}

type SortMethod string

const (
	SortNone  SortMethod = "none"
	SortValue SortMethod = "value"
	SortSuit  SortMethod = "suit"
	SortColor SortMethod = "color"
)

var suitOrder = map[Suit]int{Spades: 0, Hearts: 1, Diamonds: 2, Clubs: 3}

// SortCards returns a sorted copy for display.
func SortCards(cards []PlayingCard, method SortMethod) []PlayingCard {
	sorted := make([]PlayingCard, len(cards))
	copy(sorted, cards)
	byValue := func(a, b PlayingCard) bool {
		return a.Numeric() > b.Numeric()
	}
	switch method {
	case SortValue:
		sort.SliceStable(sorted, func(i, j int) bool {
			return byValue(sorted[i], sorted[j])
		})
	case SortSuit:
		sort.SliceStable(sorted, func(i, j int) bool {
			if sorted[i].Suit != sorted[j].Suit {
				return suitOrder[sorted[i].Suit] < suitOrder[sorted[j].Suit]
			}
			return byValue(sorted[i], sorted[j])
		})
	case SortColor:
		sort.SliceStable(sorted, func(i, j int) bool {
			ri, rj := sorted[i].Suit.IsRed(), sorted[j].Suit.IsRed()
			if ri != rj {
				return ri
			}
			return byValue(sorted[i], sorted[j])
		})
	}
	return sorted
}
