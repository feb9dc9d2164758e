package shop

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"voyager.com/solorpg/poker"
)

func TestGenerateIsDeterministic(t *testing.T) {
	a, err := Generate(rand.New(rand.NewSource(5)), 0, DefaultSize)
	require.NoError(t, err)
	b, err := Generate(rand.New(rand.NewSource(5)), 0, DefaultSize)
	require.NoError(t, err)
	if !cmp.Equal(a, b) {
		t.Errorf("same seed produced different shops: %s", cmp.Diff(a, b))
	}
	assert.Len(t, a, DefaultSize)
}

func TestGeneratedCards(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	cards, err := Generate(rng, 2, 200)
	require.NoError(t, err)
	ids := make(map[string]bool)
	for _, c := range cards {
		assert.False(t, ids[c.ID])
		ids[c.ID] = true
		assert.Equal(t, Cost(c.Rarity), c.Cost)
		assert.True(t, c.Value.Valid())
		assert.Contains(t, poker.Suits, c.Suit)
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.EffectText)
		assert.Greater(t, c.Points, 0)
		assert.Greater(t, c.Effect.Value, 0.0)
		if c.Effect.Type == poker.HandBonus {
			assert.NotNil(t, c.Effect.Condition)
		}
	}
}

func TestRarityRoll(t *testing.T) {
	assert.Equal(t, poker.Common, RollRarity(0.5))
	assert.Equal(t, poker.Rare, RollRarity(0.7))
	assert.Equal(t, poker.Epic, RollRarity(0.9))
	assert.Equal(t, poker.Legendary, RollRarity(0.99))
	assert.Equal(t, 0.0, RarityBoost(0))
	assert.InDelta(t, 0.15, RarityBoost(3), 1e-9)
	assert.Equal(t, 0.3, RarityBoost(20))
}

func TestRerollCost(t *testing.T) {
	assert.Equal(t, 50, RerollCost(50, 25, 0))
	assert.Equal(t, 125, RerollCost(50, 25, 3))
}
