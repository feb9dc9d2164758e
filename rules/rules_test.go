package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"voyager.com/solorpg/poker"
)

func TestDefaultRulesAreValid(t *testing.T) {
	r := Default()
	require.NoError(t, r.Validate())
	for _, rank := range poker.AllHandRanks() {
		_, ok := r.Ranks[rank]
		assert.True(t, ok, "no table entry for %s", rank)
	}
}

func TestValidateMissingRank(t *testing.T) {
	r := Default()
	delete(r.Ranks, poker.MiniFlush)
	err := r.Validate()
	require.Error(t, err)
	invalid, ok := err.(*InvalidRulesError)
	require.True(t, ok)
	assert.Contains(t, invalid.Problems, "missing table entry for Mini Flush")
}

func TestValidateHealthShape(t *testing.T) {
	r := Default()
	r.HealthMultipliers = []HealthThreshold{
		{Below: 0.25, Multiplier: 1.2},
		{Below: 0.5, Multiplier: 2.0},
	}
	assert.Error(t, r.Validate())
}

func TestValidateLimits(t *testing.T) {
	testCases := []struct {
		name    string
		yaml    string
		problem string
	}{
		{name: "six bonus slots", yaml: "bonus-slot-limit: 6", problem: "bonus-slot-limit must be between 1 and 5"},
		{name: "no bonus slots", yaml: "bonus-slot-limit: 0", problem: "bonus-slot-limit must be between 1 and 5"},
		{name: "negative shop size", yaml: "shop-size: -1", problem: "shop settings must not be negative"},
		{name: "negative reroll cost", yaml: "shop-reroll-cost: -5", problem: "shop settings must not be negative"},
		{name: "negative reroll increment", yaml: "shop-reroll-increment: -1", problem: "shop settings must not be negative"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			require.Error(t, err)
			invalid, ok := err.(*InvalidRulesError)
			require.True(t, ok, "unexpected error type %T", err)
			assert.Contains(t, invalid.Problems, tc.problem)
		})
	}

	r, err := Parse([]byte("bonus-slot-limit: 5\nshop-size: 0"))
	require.NoError(t, err)
	assert.Equal(t, 5, r.BonusSlotLimit)
	assert.Equal(t, 0, r.ShopSize)
}

func TestCardCountFactor(t *testing.T) {
	r := Default()
	assert.InDelta(t, 1.0, r.CardCountFactor(5), 1e-9)
	assert.InDelta(t, 0.8554, r.CardCountFactor(4), 1e-3)
	assert.InDelta(t, 0.7, r.CardCountFactor(2), 1e-9)
	assert.InDelta(t, 0.7, r.CardCountFactor(1), 1e-9)
}

func TestHealthMultiplier(t *testing.T) {
	r := Default()
	testCases := []struct {
		health   int
		expected float64
	}{
		{health: 0, expected: 2.0},
		{health: 24, expected: 2.0},
		{health: 25, expected: 1.5},
		{health: 49, expected: 1.5},
		{health: 50, expected: 1.2},
		{health: 74, expected: 1.2},
		{health: 75, expected: 1.0},
		{health: 100, expected: 1.0},
	}
	prev := 10.0
	for _, tc := range testCases {
		m := r.HealthMultiplier(tc.health, 100)
		assert.Equal(t, tc.expected, m, "health %d", tc.health)
		assert.LessOrEqual(t, m, prev)
		prev = m
	}
}

func TestStreakMultiplier(t *testing.T) {
	r := Default()
	assert.Equal(t, 1.0, r.StreakMultiplier(0))
	assert.Equal(t, 1.0, r.StreakMultiplier(2))
	assert.Equal(t, 1.25, r.StreakMultiplier(3))
	assert.Equal(t, 1.5, r.StreakMultiplier(4))
	assert.Equal(t, 3.0, r.StreakMultiplier(10))
	assert.Equal(t, 3.0, r.StreakMultiplier(50))
}

func TestLoadRulesFile(t *testing.T) {
	r, err := Load("testdata/hard.yaml")
	require.NoError(t, err)

	assert.Equal(t, 10, r.MaxRounds)
	assert.Equal(t, 80, r.StartingHealth)
	assert.True(t, r.EndOnZeroHealth)
	assert.Equal(t, 0.05, r.FailingPenalty)
	assert.Equal(t, 8, r.InitialHandSize)

	sf := r.RankTable(poker.StraightFlush)
	assert.Equal(t, 150, sf.BasePoints)
	assert.Equal(t, 5.0, sf.Multiplier)
	assert.Equal(t, -8, r.RankTable(poker.MiniPair).HealthDelta)
	assert.Equal(t, 3.25, r.BonusHandMultiplier(poker.Flush))
	assert.Equal(t, 1.0, r.BonusHandMultiplier(poker.HighCard))

	assert.Equal(t, 3.0, r.HealthMultiplier(10, 80))
	assert.Equal(t, 1.5, r.HealthMultiplier(40, 80))
	assert.Equal(t, 1.0, r.HealthMultiplier(60, 80))

	// defaults are untouched
	assert.Equal(t, 100, Default().RankTable(poker.StraightFlush).BasePoints)
}

func TestParseRejectsUnknownRank(t *testing.T) {
	_, err := Parse([]byte("ranks:\n  - rank: royal\n    base: 1\n"))
	assert.Error(t, err)
}

func TestParseWagerTier(t *testing.T) {
	tier, err := ParseWagerTier("ALL-IN")
	require.NoError(t, err)
	assert.Equal(t, WagerAllIn, tier)
	_, err = ParseWagerTier("huge")
	assert.Error(t, err)
}
