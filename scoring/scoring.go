package scoring

import (
	"math"

	"github.com/shopspring/decimal"
	"voyager.com/solorpg/bonus"
	"voyager.com/solorpg/poker"
	"voyager.com/solorpg/rules"
	"voyager.com/solorpg/util"
)

// Input is everything a played hand is scored against.
type Input struct {
	Cards            []poker.PlayingCard
	Evaluation       poker.Evaluation
	ActiveBonusCards []poker.BonusCard
	PermanentBonuses []bonus.PermanentBonus
	Health           int
	MaxHealth        int
	Points           int
	Streak           int
	Wager            rules.Wager
}

// Breakdown itemizes one scored hand.
type Breakdown struct {
	Rank        poker.HandRank `json:"rank"`
	IsValid     bool           `json:"isValid"`
	Description string         `json:"description"`

	BasePoints        int `json:"basePoints"`
	CardValuePoints   int `json:"cardValuePoints"`
	ImprovementPoints int `json:"improvementPoints"`
	PermanentPoints   int `json:"permanentPoints"`
	BonusCardPoints   int `json:"bonusCardPoints"`
	Additive          int `json:"additive"`

	RankMultiplier      float64         `json:"rankMultiplier"`
	CardCountFactor     float64         `json:"cardCountFactor"`
	PermanentMultiplier float64         `json:"permanentMultiplier"`
	BonusCardMultiplier float64         `json:"bonusCardMultiplier"`
	BonusHandRank       *poker.HandRank `json:"bonusHandRank,omitempty"`
	BonusHandMultiplier float64         `json:"bonusHandMultiplier"`
	HealthMultiplier    float64         `json:"healthMultiplier"`
	StreakMultiplier    float64         `json:"streakMultiplier"`

	HandPoints  int  `json:"handPoints"`
	WagerPlaced bool `json:"wagerPlaced"`
	WagerWon    bool `json:"wagerWon"`
	WagerPayout int  `json:"wagerPayout"`
	Penalty     int  `json:"penalty"`

	HealthDelta int `json:"healthDelta"`
	PointsDelta int `json:"pointsDelta"`
	NewHealth   int `json:"newHealth"`
	NewPoints   int `json:"newPoints"`
	NewStreak   int `json:"newStreak"`
}

// Damaged reports whether the hand cost health.
func (b Breakdown) Damaged() bool {
	return b.HealthDelta < 0
}

// ScaleHealthDelta dampens gains and amplifies losses when fewer than five cards are played.
func ScaleHealthDelta(delta int, factor float64) int {
	if delta >= 0 {
		return int(math.Round(float64(delta) * factor))
	}
	return int(math.Round(float64(delta) / factor))
}

// Score computes the point and health outcome of a hand. It has no side effects.
func Score(in Input, r *rules.Rules) Breakdown {
	rank := in.Evaluation.Rank
	table := r.RankTable(rank)
	b := Breakdown{
		Rank:                rank,
		IsValid:             in.Evaluation.IsValid,
		Description:         in.Evaluation.Description,
		BasePoints:          table.BasePoints,
		RankMultiplier:      table.Multiplier,
		CardCountFactor:     r.CardCountFactor(len(in.Cards)),
		BonusCardMultiplier: 1,
		BonusHandMultiplier: 1,
	}

	for _, c := range in.Cards {
		b.CardValuePoints += c.Numeric()
		b.ImprovementPoints += c.ImprovementPoints()
	}

	rarities := make([]poker.Rarity, 0, len(in.ActiveBonusCards))
	for _, bc := range in.ActiveBonusCards {
		rarities = append(rarities, bc.Rarity)
		b.BonusCardPoints += bc.Points
		switch bc.Effect.Type {
		case poker.FlatBonus:
			b.BonusCardPoints += int(bc.Effect.Value)
		case poker.HandBonus:
			if bc.Effect.Applies(rank) {
				b.BonusCardPoints += int(bc.Effect.Value)
			}
		case poker.PointMultiplier:
			if bc.Effect.Value > 0 {
				b.BonusCardMultiplier *= bc.Effect.Value
			}
		}
	}
	if bonusRank, ok := BonusHand(in.ActiveBonusCards); ok {
		b.BonusHandRank = &bonusRank
		b.BonusHandMultiplier = r.BonusHandMultiplier(bonusRank)
	}

	b.PermanentPoints, b.PermanentMultiplier = bonus.Totals(in.PermanentBonuses, bonus.Context{
		Rank:         rank,
		Cards:        in.Cards,
		ActiveRarity: rarities,
	})

	b.HealthDelta = ScaleHealthDelta(table.HealthDelta, b.CardCountFactor)
	b.NewHealth = util.Clamp(in.Health+b.HealthDelta, 0, in.MaxHealth)

	if b.Damaged() {
		b.NewStreak = 0
		b.StreakMultiplier = 1
	} else {
		b.NewStreak = in.Streak + 1
		b.StreakMultiplier = r.StreakMultiplier(b.NewStreak)
	}
	b.HealthMultiplier = r.HealthMultiplier(b.NewHealth, in.MaxHealth)

	b.Additive = b.BasePoints + b.CardValuePoints + b.ImprovementPoints + b.PermanentPoints + b.BonusCardPoints
	product := decimal.NewFromInt(int64(b.Additive))
	for _, m := range []float64{
		b.RankMultiplier,
		b.CardCountFactor,
		b.PermanentMultiplier,
		b.BonusCardMultiplier,
		b.BonusHandMultiplier,
		b.HealthMultiplier,
		b.StreakMultiplier,
	} {
		product = product.Mul(decimal.NewFromFloat(m))
	}
	b.HandPoints = int(product.Floor().IntPart())

	if in.Wager.Active() {
		b.WagerPlaced = true
		b.WagerWon = b.HealthDelta >= 0
		if b.WagerWon {
			b.WagerPayout = WagerPayout(in.Wager)
			b.NewHealth = util.Clamp(b.NewHealth+b.WagerPayout, 0, in.MaxHealth)
		}
	}

	if !b.IsValid {
		b.Penalty = int(decimal.NewFromInt(int64(in.Points)).Mul(decimal.NewFromFloat(r.FailingPenalty)).Floor().IntPart())
	}

	b.NewPoints = in.Points + b.HandPoints + b.WagerPayout - b.Penalty
	if b.NewPoints < 0 {
		b.NewPoints = 0
	}
	b.PointsDelta = b.NewPoints - in.Points
	return b
}

// WagerPayout is floor(amount * multiplier).
func WagerPayout(w rules.Wager) int {
	return int(decimal.NewFromInt(int64(w.Amount)).Mul(decimal.NewFromFloat(w.Multiplier)).Floor().IntPart())
}

// BonusHand evaluates a full set of five equipped bonus cards as a poker hand.
// ok is false unless exactly five cards form a valid rank.
func BonusHand(active []poker.BonusCard) (rank poker.HandRank, ok bool) {
	if len(active) != poker.MaxHandSize {
		return poker.HighCard, false
	}
	cards := make([]poker.PlayingCard, len(active))
	for i, bc := range active {
		cards[i] = bc.AsPlayingCard()
	}
	eval, err := poker.Evaluate(cards)
	if err != nil || !eval.IsValid {
		return poker.HighCard, false
	}
	return eval.Rank, true
}
