package bonus

import "voyager.com/solorpg/poker"

func rankPtr(r poker.HandRank) *poker.HandRank { return &r }
func rarityPtr(r poker.Rarity) *poker.Rarity   { return &r }
func valuePtr(v poker.Value) *poker.Value      { return &v }

// Templates returns fresh level-zero copies of every permanent bonus.
func Templates() []PermanentBonus {
	return []PermanentBonus{
		{
			ID:          "pair-master",
			Category:    HandCombination,
			Name:        "Pair Master",
			Description: "Multiplies points earned with One Pair",
			Effect:      Effect{Type: PointMultiplier, BaseValue: 1.1, IncrementPerLevel: 0.1},
			MaxLevel:    5,
			TargetRank:  rankPtr(poker.OnePair),
		},
		{
			ID:          "flush-adept",
			Category:    HandCombination,
			Name:        "Flush Adept",
			Description: "Extra points for every Flush",
			Effect:      Effect{Type: ExtraPoints, BaseValue: 20, IncrementPerLevel: 10},
			MaxLevel:    3,
			TargetRank:  rankPtr(poker.Flush),
		},
		{
			ID:           "collector",
			Category:     RarityTarget,
			Name:         "Collector",
			Description:  "Extra points for each equipped Legendary card",
			Effect:       Effect{Type: ExtraPoints, BaseValue: 10, IncrementPerLevel: 5},
			MaxLevel:     3,
			TargetRarity: rarityPtr(poker.Legendary),
		},
		{
			ID:          "craftsman",
			Category:    Improvement,
			Name:        "Craftsman",
			Description: "Multiplies points when an improved card is played",
			Effect:      Effect{Type: PointMultiplier, BaseValue: 1.05, IncrementPerLevel: 0.05},
			MaxLevel:    5,
		},
		{
			ID:          "high-roller",
			Category:    CardValue,
			Name:        "High Roller",
			Description: "Extra points for each Ace played",
			Effect:      Effect{Type: ExtraPoints, BaseValue: 5, IncrementPerLevel: 5},
			MaxLevel:    3,
			TargetValue: valuePtr(poker.Ace),
		},
	}
}

func Find(bonuses []PermanentBonus, id string) int {
	for i, b := range bonuses {
		if b.ID == id {
			return i
		}
	}
	return -1
}
