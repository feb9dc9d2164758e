package bonus

import (
	"fmt"

	"voyager.com/solorpg/poker"
)

type Category string

const (
	HandCombination Category = "handCombination"
	RarityTarget    Category = "rarity"
	Improvement     Category = "improvement"
	CardValue       Category = "cardValue"
)

type EffectType string

const (
	PointMultiplier EffectType = "pointMultiplier"
	ExtraPoints     EffectType = "extraPoints"
)

type Effect struct {
	Type              EffectType `json:"type"`
	BaseValue         float64    `json:"baseValue"`
	IncrementPerLevel float64    `json:"incrementPerLevel"`
}

// PermanentBonus is a leveled modifier bought with points. The target fields
// that matter depend on Category.
type PermanentBonus struct {
	ID           string          `json:"id"`
	Category     Category        `json:"category"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Effect       Effect          `json:"effect"`
	CurrentLevel int             `json:"currentLevel"`
	MaxLevel     int             `json:"maxLevel"`
	TargetRank   *poker.HandRank `json:"targetRank,omitempty"`
	TargetRarity *poker.Rarity   `json:"targetRarity,omitempty"`
	TargetValue  *poker.Value    `json:"targetValue,omitempty"`
}

// Value is baseValue + level * increment.
func (b PermanentBonus) Value() float64 {
	return b.Effect.BaseValue + float64(b.CurrentLevel)*b.Effect.IncrementPerLevel
}

func (b PermanentBonus) IsMaxed() bool {
	return b.CurrentLevel >= b.MaxLevel
}

// UpgradeCost grows linearly with the current level.
func (b PermanentBonus) UpgradeCost(baseCost int) int {
	return (b.CurrentLevel + 1) * baseCost
}

func (b PermanentBonus) String() string {
	return fmt.Sprintf("%s Lv.%d/%d", b.Name, b.CurrentLevel, b.MaxLevel)
}

// Context is what a played hand exposes to permanent bonuses.
type Context struct {
	Rank         poker.HandRank
	Cards        []poker.PlayingCard
	ActiveRarity []poker.Rarity
}

// Matches counts how many times the bonus applies to a hand. Hand-combination
// bonuses apply once; the others apply once per matching card.
func (b PermanentBonus) Matches(ctx Context) int {
	switch b.Category {
	case HandCombination:
		if b.TargetRank != nil && *b.TargetRank == ctx.Rank {
			return 1
		}
	case RarityTarget:
		n := 0
		for _, r := range ctx.ActiveRarity {
			if b.TargetRarity != nil && *b.TargetRarity == r {
				n++
			}
		}
		return n
	case Improvement:
		n := 0
		for _, c := range ctx.Cards {
			if c.ImprovementLevel > 0 {
				n++
			}
		}
		if n > 0 {
			return 1
		}
	case CardValue:
		n := 0
		for _, c := range ctx.Cards {
			if b.TargetValue != nil && *b.TargetValue == c.Value {
				n++
			}
		}
		return n
	}
	return 0
}

// Totals folds all applicable bonuses into extra points and a multiplier product.
func Totals(bonuses []PermanentBonus, ctx Context) (extraPoints int, multiplier float64) {
	multiplier = 1
	for _, b := range bonuses {
		n := b.Matches(ctx)
		if n == 0 {
			continue
		}
		switch b.Effect.Type {
		case ExtraPoints:
			extraPoints += int(b.Value()) * n
		case PointMultiplier:
			// multiplier bonuses apply once however many cards match
			multiplier *= b.Value()
		}
	}
	return extraPoints, multiplier
}
