package rules

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"voyager.com/solorpg/poker"
)

// RankTable holds the fixed scoring entries for one hand rank.
type RankTable struct {
	BasePoints  int     `yaml:"base" json:"base"`
	Multiplier  float64 `yaml:"multiplier" json:"multiplier"`
	HealthDelta int     `yaml:"health" json:"health"`
}

// HealthThreshold grants Multiplier while health is strictly below Below (a fraction of max health).
type HealthThreshold struct {
	Below      float64 `yaml:"below" json:"below"`
	Multiplier float64 `yaml:"multiplier" json:"multiplier"`
}

type StreakRules struct {
	Threshold int     `yaml:"threshold" json:"threshold"`
	Step      float64 `yaml:"step" json:"step"`
	Cap       float64 `yaml:"cap" json:"cap"`
}

type WagerTier string

const (
	WagerSafe  WagerTier = "safe"
	WagerRisky WagerTier = "risky"
	WagerAllIn WagerTier = "all-in"
)

func ParseWagerTier(s string) (WagerTier, error) {
	switch WagerTier(strings.ToLower(strings.TrimSpace(s))) {
	case WagerSafe:
		return WagerSafe, nil
	case WagerRisky:
		return WagerRisky, nil
	case WagerAllIn, "allin", "all_in":
		return WagerAllIn, nil
	}
	return "", fmt.Errorf("Invalid wager tier [%s]", s)
}

type WagerTierRules struct {
	Tier          WagerTier `yaml:"tier" json:"tier"`
	StakeFraction float64   `yaml:"stake" json:"stake"`
	Multiplier    float64   `yaml:"multiplier" json:"multiplier"`
}

// Rules is the full set of tunables for a game.
type Rules struct {
	MaxRounds           int     `yaml:"max-rounds"`
	StartingHealth      int     `yaml:"starting-health"`
	InitialHandSize     int     `yaml:"initial-hand-size"`
	MaxSelection        int     `yaml:"max-selection"`
	MaxDiscards         int     `yaml:"max-discards"`
	DiscardCost         int     `yaml:"discard-cost"`
	BaseImprovementCost int     `yaml:"base-improvement-cost"`
	BaseUpgradeCost     int     `yaml:"base-upgrade-cost"`
	BonusSlotLimit      int     `yaml:"bonus-slot-limit"`
	ShopSize            int     `yaml:"shop-size"`
	ShopRerollCost      int     `yaml:"shop-reroll-cost"`
	ShopRerollIncrement int     `yaml:"shop-reroll-increment"`
	FailingPenalty      float64 `yaml:"failing-penalty"`
	MinCardCountFactor  float64 `yaml:"min-card-count-factor"`
	CardCountExponent   float64 `yaml:"card-count-exponent"`
	EndOnZeroHealth     bool    `yaml:"end-on-zero-health"`
	RecycleDiscards     bool    `yaml:"recycle-discards"`
	PersistBonuses      bool    `yaml:"persist-bonuses"`

	Streak            StreakRules       `yaml:"streak"`
	HealthMultipliers []HealthThreshold `yaml:"health-multipliers"`
	WagerTiers        []WagerTierRules  `yaml:"wager-tiers"`

	Ranks                map[poker.HandRank]RankTable `yaml:"-"`
	BonusHandMultipliers map[poker.HandRank]float64   `yaml:"-"`
}

func Default() *Rules {
	return &Rules{
		MaxRounds:           20,
		StartingHealth:      100,
		InitialHandSize:     8,
		MaxSelection:        poker.MaxHandSize,
		MaxDiscards:         4,
		DiscardCost:         50,
		BaseImprovementCost: 20,
		BaseUpgradeCost:     50,
		BonusSlotLimit:      5,
		ShopSize:            3,
		ShopRerollCost:      50,
		ShopRerollIncrement: 25,
		FailingPenalty:      0.1,
		MinCardCountFactor:  0.7,
		CardCountExponent:   0.7,
		EndOnZeroHealth:     false,
		RecycleDiscards:     true,
		PersistBonuses:      false,
		Streak: StreakRules{
			Threshold: 3,
			Step:      0.25,
			Cap:       3.0,
		},
		HealthMultipliers: []HealthThreshold{
			{Below: 0.25, Multiplier: 2.0},
			{Below: 0.50, Multiplier: 1.5},
			{Below: 0.75, Multiplier: 1.2},
		},
		WagerTiers: []WagerTierRules{
			{Tier: WagerSafe, StakeFraction: 0.10, Multiplier: 1.5},
			{Tier: WagerRisky, StakeFraction: 0.25, Multiplier: 2.5},
			{Tier: WagerAllIn, StakeFraction: 0.50, Multiplier: 4.0},
		},
		Ranks: map[poker.HandRank]RankTable{
			poker.HighCard:      {BasePoints: 0, Multiplier: 1, HealthDelta: -25},
			poker.OnePair:       {BasePoints: 10, Multiplier: 1.5, HealthDelta: -5},
			poker.TwoPair:       {BasePoints: 20, Multiplier: 2, HealthDelta: 0},
			poker.ThreeOfAKind:  {BasePoints: 30, Multiplier: 2.5, HealthDelta: 5},
			poker.Straight:      {BasePoints: 40, Multiplier: 3, HealthDelta: 8},
			poker.Flush:         {BasePoints: 50, Multiplier: 3.5, HealthDelta: 10},
			poker.FullHouse:     {BasePoints: 60, Multiplier: 4, HealthDelta: 12},
			poker.FourOfAKind:   {BasePoints: 80, Multiplier: 4.5, HealthDelta: 15},
			poker.StraightFlush: {BasePoints: 100, Multiplier: 5, HealthDelta: 20},

			poker.SingleCard:        {BasePoints: 0, Multiplier: 1, HealthDelta: -15},
			poker.PartialHighCard:   {BasePoints: 0, Multiplier: 1, HealthDelta: -20},
			poker.MiniPair:          {BasePoints: 5, Multiplier: 1.1, HealthDelta: -5},
			poker.PairPlus:          {BasePoints: 6, Multiplier: 1.2, HealthDelta: -4},
			poker.StrongPair:        {BasePoints: 8, Multiplier: 1.3, HealthDelta: -3},
			poker.MiniTwoPair:       {BasePoints: 15, Multiplier: 1.5, HealthDelta: 0},
			poker.MiniThreeOfAKind:  {BasePoints: 25, Multiplier: 2, HealthDelta: 3},
			poker.MiniStraight:      {BasePoints: 15, Multiplier: 1.4, HealthDelta: 1},
			poker.MiniFlush:         {BasePoints: 20, Multiplier: 1.5, HealthDelta: 2},
			poker.MiniFourOfAKind:   {BasePoints: 60, Multiplier: 3.5, HealthDelta: 10},
			poker.MiniStraightFlush: {BasePoints: 45, Multiplier: 3, HealthDelta: 8},
		},
		BonusHandMultipliers: map[poker.HandRank]float64{
			poker.OnePair:       1.2,
			poker.TwoPair:       1.5,
			poker.ThreeOfAKind:  2,
			poker.Straight:      2.5,
			poker.Flush:         3,
			poker.FullHouse:     3.5,
			poker.FourOfAKind:   4,
			poker.StraightFlush: 5,
		},
	}
}

// Clone returns a deep copy so callers can tweak a rule set without sharing maps.
func (r *Rules) Clone() *Rules {
	c := *r
	c.HealthMultipliers = append([]HealthThreshold(nil), r.HealthMultipliers...)
	c.WagerTiers = append([]WagerTierRules(nil), r.WagerTiers...)
	c.Ranks = make(map[poker.HandRank]RankTable, len(r.Ranks))
	for k, v := range r.Ranks {
		c.Ranks[k] = v
	}
	c.BonusHandMultipliers = make(map[poker.HandRank]float64, len(r.BonusHandMultipliers))
	for k, v := range r.BonusHandMultipliers {
		c.BonusHandMultipliers[k] = v
	}
	return &c
}

func (r *Rules) RankTable(rank poker.HandRank) RankTable {
	if t, ok := r.Ranks[rank]; ok {
		return t
	}
	return RankTable{Multiplier: 1}
}

// BonusHandMultiplier is 1 for ranks that do not pay out.
func (r *Rules) BonusHandMultiplier(rank poker.HandRank) float64 {
	if m, ok := r.BonusHandMultipliers[rank]; ok {
		return m
	}
	return 1
}

// CardCountFactor is (n/5)^exponent with a floor.
func (r *Rules) CardCountFactor(cardsPlayed int) float64 {
	f := math.Pow(float64(cardsPlayed)/float64(poker.MaxHandSize), r.CardCountExponent)
	if f < r.MinCardCountFactor {
		return r.MinCardCountFactor
	}
	return f
}

// HealthMultiplier uses the tightest threshold the health ratio falls under.
func (r *Rules) HealthMultiplier(health int, maxHealth int) float64 {
	if maxHealth <= 0 {
		return 1
	}
	ratio := float64(health) / float64(maxHealth)
	multiplier := 1.0
	tightest := math.Inf(1)
	for _, t := range r.HealthMultipliers {
		if ratio < t.Below && t.Below < tightest {
			tightest = t.Below
			multiplier = t.Multiplier
		}
	}
	return multiplier
}

func (r *Rules) StreakMultiplier(streak int) float64 {
	if streak < r.Streak.Threshold {
		return 1
	}
	m := 1 + float64(streak-r.Streak.Threshold+1)*r.Streak.Step
	return math.Min(r.Streak.Cap, m)
}

func (r *Rules) WagerTier(tier WagerTier) (WagerTierRules, bool) {
	for _, t := range r.WagerTiers {
		if t.Tier == tier {
			return t, true
		}
	}
	return WagerTierRules{}, false
}

// Validate checks that every producible rank has a table entry and the
// health multiplier never increases with health.
func (r *Rules) Validate() error {
	var problems []string
	if r.MaxRounds <= 0 {
		problems = append(problems, "max-rounds must be positive")
	}
	if r.StartingHealth <= 0 {
		problems = append(problems, "starting-health must be positive")
	}
	if r.InitialHandSize <= 0 {
		problems = append(problems, "initial-hand-size must be positive")
	}
	if r.MaxSelection < poker.MinHandSize || r.MaxSelection > poker.MaxHandSize {
		problems = append(problems, fmt.Sprintf("max-selection must be between %d and %d", poker.MinHandSize, poker.MaxHandSize))
	}
	if r.MaxDiscards < 0 || r.DiscardCost < 0 || r.BaseImprovementCost < 0 || r.BaseUpgradeCost < 0 {
		problems = append(problems, "discard, improvement and upgrade settings must not be negative")
	}
	if r.BonusSlotLimit <= 0 || r.BonusSlotLimit > poker.MaxHandSize {
		problems = append(problems, fmt.Sprintf("bonus-slot-limit must be between 1 and %d", poker.MaxHandSize))
	}
	if r.ShopSize < 0 || r.ShopRerollCost < 0 || r.ShopRerollIncrement < 0 {
		problems = append(problems, "shop settings must not be negative")
	}
	if r.FailingPenalty < 0 || r.FailingPenalty > 1 {
		problems = append(problems, "failing-penalty must be between 0 and 1")
	}
	for _, rank := range poker.AllHandRanks() {
		t, ok := r.Ranks[rank]
		if !ok {
			problems = append(problems, fmt.Sprintf("missing table entry for %s", rank))
			continue
		}
		if t.Multiplier <= 0 {
			problems = append(problems, fmt.Sprintf("multiplier for %s must be positive", rank))
		}
	}
	thresholds := append([]HealthThreshold(nil), r.HealthMultipliers...)
	sort.Slice(thresholds, func(i, j int) bool { return thresholds[i].Below < thresholds[j].Below })
	prev := math.Inf(1)
	for _, t := range thresholds {
		if t.Multiplier > prev || t.Multiplier < 1 {
			problems = append(problems, "health multipliers must not increase with health")
			break
		}
		prev = t.Multiplier
	}
	for _, t := range r.WagerTiers {
		if t.StakeFraction <= 0 || t.StakeFraction >= 1 || t.Multiplier < 1 {
			problems = append(problems, fmt.Sprintf("invalid wager tier %s", t.Tier))
		}
	}
	if len(problems) > 0 {
		return &InvalidRulesError{Problems: problems}
	}
	return nil
}

type InvalidRulesError struct {
	Problems []string
}

func (e *InvalidRulesError) Error() string {
	return fmt.Sprintf("Invalid rules: %s", strings.Join(e.Problems, "; "))
}

// Wager is a stake of health placed before a hand. The zero value means no wager.
type Wager struct {
	Amount     int       `json:"amount"`
	Tier       WagerTier `json:"tier,omitempty"`
	Multiplier float64   `json:"multiplier"`
}

func (w Wager) Active() bool {
	return w.Amount > 0
}
