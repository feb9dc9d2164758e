package poker

import (
	"fmt"
	"strings"
)

type Rarity int

const (
	Common Rarity = iota
	Rare
	Epic
	Legendary
)

var rarityToString = map[Rarity]string{
	Common:    "Common",
	Rare:      "Rare",
	Epic:      "Epic",
	Legendary: "Legendary",
}

func (r Rarity) String() string {
	if s, ok := rarityToString[r]; ok {
		return s
	}
	return fmt.Sprintf("Rarity(%d)", int(r))
}

func ParseRarity(s string) (Rarity, error) {
	for r, name := range rarityToString {
		if strings.EqualFold(name, s) {
			return r, nil
		}
	}
	return Common, fmt.Errorf("Invalid rarity [%s]", s)
}

type EffectType string

const (
	FlatBonus       EffectType = "flatBonus"
	HandBonus       EffectType = "handBonus"
	PointMultiplier EffectType = "pointMultiplier"
)

// BonusEffect describes how an equipped bonus card changes a score.
// Condition only applies to HandBonus effects.
type BonusEffect struct {
	Type      EffectType `json:"type"`
	Value     float64    `json:"value"`
	Condition *HandRank  `json:"condition,omitempty"`
}

// Applies reports whether the effect is active for a hand of the given rank.
func (e BonusEffect) Applies(rank HandRank) bool {
	if e.Type != HandBonus {
		return true
	}
	return e.Condition == nil || *e.Condition == rank
}

// BonusCard is bought in the shop and equipped. It carries a suit and value
// so five equipped cards can form a bonus poker hand.
type BonusCard struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Suit       Suit        `json:"suit"`
	Value      Value       `json:"value"`
	Rarity     Rarity      `json:"rarity"`
	EffectText string      `json:"effectText"`
	Effect     BonusEffect `json:"effect"`
	Points     int         `json:"points"`
	Family     string      `json:"family"`
	Cost       int         `json:"cost"`
}

func (b BonusCard) CardID() string {
	return b.ID
}

func (b BonusCard) Kind() CardKind {
	return KindBonus
}

// AsPlayingCard projects the bonus card onto the playing card model for evaluation.
func (b BonusCard) AsPlayingCard() PlayingCard {
	return PlayingCard{
		ID:    b.ID,
		Suit:  b.Suit,
		Value: b.Value,
	}
}

func (b BonusCard) String() string {
	return fmt.Sprintf("%s (%s %s%s)", b.Name, b.Rarity, b.Value, b.Suit)
}
