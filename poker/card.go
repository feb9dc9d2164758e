package poker

import (
	"fmt"
	"strings"
)

type Suit string

const (
	Spades   Suit = "♠"
	Hearts   Suit = "♥"
	Diamonds Suit = "♦"
	Clubs    Suit = "♣"
)

var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

var charSuitToSuit = map[uint8]Suit{
	's': Spades,
	'h': Hearts,
	'd': Diamonds,
	'c': Clubs,
}

func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

type Value string

const (
	Two   Value = "2"
	Three Value = "3"
	Four  Value = "4"
	Five  Value = "5"
	Six   Value = "6"
	Seven Value = "7"
	Eight Value = "8"
	Nine  Value = "9"
	Ten   Value = "10"
	Jack  Value = "J"
	Queen Value = "Q"
	King  Value = "K"
	Ace   Value = "A"
)

var Values = []Value{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

var valueToNumeric = map[Value]int{
	Two: 2, Three: 3, Four: 4, Five: 5, Six: 6, Seven: 7, Eight: 8,
	Nine: 9, Ten: 10, Jack: 11, Queen: 12, King: 13, Ace: 14,
}

// Numeric returns 2-10 for pip cards, 11-13 for faces and 14 for the ace.
func (v Value) Numeric() int {
	return valueToNumeric[v]
}

func (v Value) Valid() bool {
	_, ok := valueToNumeric[v]
	return ok
}

// CardKind discriminates the two card variants.
type CardKind int

const (
	KindPlaying CardKind = iota
	KindBonus
)

func (k CardKind) String() string {
	if k == KindBonus {
		return "bonus"
	}
	return "playing"
}

// Card is implemented by PlayingCard and BonusCard. Cards are always compared by ID.
type Card interface {
	CardID() string
	Kind() CardKind
}

type PlayingCard struct {
	ID                  string `json:"id"`
	Suit                Suit   `json:"suit"`
	Value               Value  `json:"value"`
	ImprovementLevel    int    `json:"improvementLevel"`
	MaxImprovementLevel int    `json:"maxImprovementLevel"`
	ImprovementBonus    int    `json:"improvementBonus"`
}

func CardID(value Value, suit Suit) string {
	return fmt.Sprintf("%s-%s", value, suit)
}

// NewPlayingCard creates an unimproved card.
func NewPlayingCard(value Value, suit Suit, maxLevel int, bonus int) PlayingCard {
	return PlayingCard{
		ID:                  CardID(value, suit),
		Suit:                suit,
		Value:               value,
		MaxImprovementLevel: maxLevel,
		ImprovementBonus:    bonus,
	}
}

// ParseCard parses the short notation used in scripts and tests ("As", "10h", "Td").
func ParseCard(s string) (PlayingCard, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return PlayingCard{}, fmt.Errorf("Invalid card [%s]", s)
	}
	suit, ok := charSuitToSuit[strings.ToLower(s[len(s)-1:])[0]]
	if !ok {
		return PlayingCard{}, fmt.Errorf("Invalid suit in card [%s]", s)
	}
	v := strings.ToUpper(s[:len(s)-1])
	if v == "T" {
		v = string(Ten)
	}
	value := Value(v)
	if !value.Valid() {
		return PlayingCard{}, fmt.Errorf("Invalid value in card [%s]", s)
	}
	return NewPlayingCard(value, suit, 3, 1), nil
}

// MustParseCards is a test helper that panics on bad input.
func MustParseCards(cards ...string) []PlayingCard {
	ret := make([]PlayingCard, 0, len(cards))
	for _, c := range cards {
		card, err := ParseCard(c)
		if err != nil {
			panic(err)
		}
		ret = append(ret, card)
	}
	return ret
}

func (c PlayingCard) CardID() string {
	return c.ID
}

func (c PlayingCard) Kind() CardKind {
	return KindPlaying
}

func (c PlayingCard) Numeric() int {
	return c.Value.Numeric()
}

// ImprovementPoints is the per-play bonus granted by upgrades.
func (c PlayingCard) ImprovementPoints() int {
	return c.ImprovementLevel * c.ImprovementBonus
}

func (c PlayingCard) IsMaxed() bool {
	return c.ImprovementLevel >= c.MaxImprovementLevel
}

func (c PlayingCard) String() string {
	if c.ImprovementLevel > 0 {
		return fmt.Sprintf("%s%s+%d", c.Value, c.Suit, c.ImprovementLevel)
	}
	return fmt.Sprintf("%s%s", c.Value, c.Suit)
}

func CardsToString(cards []PlayingCard) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// CardIDs returns the ids of the given cards in order.
func CardIDs(cards []PlayingCard) []string {
	ids := make([]string, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	return ids
}

func IndexOf(cards []PlayingCard, id string) int {
	for i, c := range cards {
		if c.ID == id {
			return i
		}
	}
	return -1
}
