package shop

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"voyager.com/solorpg/poker"
)

const DefaultSize = 3

var families = []string{"Strategy", "Fortune", "Chance", "Skill", "Adventure"}

var familyNames = map[string][]string{
	"Strategy":  {"Tactic", "Strategy", "Plan", "Method"},
	"Fortune":   {"Fortune", "Wealth", "Prosperity", "Abundance"},
	"Chance":    {"Chance", "Destiny", "Hazard", "Opportunity"},
	"Skill":     {"Skill", "Talent", "Mastery", "Craft"},
	"Adventure": {"Adventure", "Quest", "Voyage", "Exploration"},
}

var rarityPrefixes = map[poker.Rarity][]string{
	poker.Common:    {"Simple", "Plain", "Ordinary"},
	poker.Rare:      {"Precious", "Refined", "Notable"},
	poker.Epic:      {"Glorious", "Mighty", "Magnificent"},
	poker.Legendary: {"Mythic", "Divine", "Ancestral"},
}

var effectSuffixes = map[poker.EffectType][]string{
	poker.PointMultiplier: {"of Amplification", "of Multiplication"},
	poker.FlatBonus:       {"of Reward", "of Advantage"},
	poker.HandBonus:       {"of Expertise", "of Technique"},
}

var handBonusTargets = []poker.HandRank{
	poker.OnePair, poker.ThreeOfAKind, poker.Straight, poker.Flush, poker.FullHouse,
}

var rarityCost = map[poker.Rarity]int{
	poker.Common:    100,
	poker.Rare:      250,
	poker.Epic:      500,
	poker.Legendary: 1000,
}

// point value of a card relative to its face value
var rarityPoints = map[poker.Rarity]float64{
	poker.Common:    1,
	poker.Rare:      1.5,
	poker.Epic:      2.5,
	poker.Legendary: 4,
}

// effect strength
var rarityScale = map[poker.Rarity]float64{
	poker.Common:    1,
	poker.Rare:      2,
	poker.Epic:      3.5,
	poker.Legendary: 5,
}

func pick(rng *rand.Rand, options []string) string {
	return options[rng.Intn(len(options))]
}

// RarityBoost grows 5% per shop rotation up to 30%.
func RarityBoost(rotations int) float64 {
	return math.Min(float64(rotations)*0.05, 0.3)
}

func RollRarity(roll float64) poker.Rarity {
	switch {
	case roll > 0.95:
		return poker.Legendary
	case roll > 0.85:
		return poker.Epic
	case roll > 0.65:
		return poker.Rare
	}
	return poker.Common
}

func Cost(rarity poker.Rarity) int {
	return rarityCost[rarity]
}

// RerollCost is the price of refreshing the shop after the given number of rotations.
func RerollCost(base int, increment int, rotations int) int {
	return base + rotations*increment
}

func generateEffect(rng *rand.Rand, rarity poker.Rarity) (poker.BonusEffect, string) {
	scale := rarityScale[rarity]
	switch rng.Intn(3) {
	case 0:
		v := math.Round((1+0.1*scale)*100) / 100
		return poker.BonusEffect{Type: poker.PointMultiplier, Value: v},
			fmt.Sprintf("Multiplies points by %.2f", v)
	case 1:
		v := math.Floor(10 * scale)
		return poker.BonusEffect{Type: poker.FlatBonus, Value: v},
			fmt.Sprintf("+%d points on every hand", int(v))
	default:
		v := math.Floor(15 * scale)
		target := handBonusTargets[rng.Intn(len(handBonusTargets))]
		return poker.BonusEffect{Type: poker.HandBonus, Value: v, Condition: &target},
			fmt.Sprintf("+%d points for every %s", int(v), target)
	}
}

// GenerateCard builds one bonus card. All randomness comes from rng.
func GenerateCard(rng *rand.Rand, rotations int) (poker.BonusCard, error) {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		return poker.BonusCard{}, errors.Wrap(err, "Unable to generate bonus card id")
	}
	suit := poker.Suits[rng.Intn(len(poker.Suits))]
	value := poker.Values[rng.Intn(len(poker.Values))]
	family := pick(rng, families)
	rarity := RollRarity(rng.Float64() + RarityBoost(rotations))
	effect, text := generateEffect(rng, rarity)
	name := fmt.Sprintf("%s %s %s",
		pick(rng, rarityPrefixes[rarity]),
		pick(rng, familyNames[family]),
		pick(rng, effectSuffixes[effect.Type]))

	return poker.BonusCard{
		ID:         id.String(),
		Name:       name,
		Suit:       suit,
		Value:      value,
		Rarity:     rarity,
		EffectText: text,
		Effect:     effect,
		Points:     int(math.Floor(float64(value.Numeric()) * rarityPoints[rarity])),
		Family:     family,
		Cost:       Cost(rarity),
	}, nil
}

// Generate returns count fresh shop cards.
func Generate(rng *rand.Rand, rotations int, count int) ([]poker.BonusCard, error) {
	cards := make([]poker.BonusCard, 0, count)
	for i := 0; i < count; i++ {
		card, err := GenerateCard(rng, rotations)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}
