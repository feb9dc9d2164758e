package bonus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"voyager.com/solorpg/poker"
)

func TestEffectValue(t *testing.T) {
	pm := Templates()[Find(Templates(), "pair-master")]
	assert.InDelta(t, 1.1, pm.Value(), 1e-9)
	pm.CurrentLevel = 3
	assert.InDelta(t, 1.4, pm.Value(), 1e-9)
	assert.Equal(t, 200, pm.UpgradeCost(50))
	assert.False(t, pm.IsMaxed())
	pm.CurrentLevel = pm.MaxLevel
	assert.True(t, pm.IsMaxed())
}

func TestUpgradeCostIsMonotonic(t *testing.T) {
	b := Templates()[0]
	prev := 0
	for lvl := 0; lvl <= b.MaxLevel; lvl++ {
		b.CurrentLevel = lvl
		cost := b.UpgradeCost(50)
		assert.Greater(t, cost, prev)
		prev = cost
	}
}

func TestTotals(t *testing.T) {
	bonuses := Templates()
	ctx := Context{
		Rank:         poker.OnePair,
		Cards:        poker.MustParseCards("As", "Ah", "3d"),
		ActiveRarity: []poker.Rarity{poker.Legendary, poker.Common, poker.Legendary},
	}
	extra, mult := Totals(bonuses, ctx)
	// collector 2 x 10, high-roller 2 x 5
	assert.Equal(t, 30, extra)
	assert.InDelta(t, 1.1, mult, 1e-9)

	ctx.Cards[0].ImprovementLevel = 1
	_, mult = Totals(bonuses, ctx)
	assert.InDelta(t, 1.1*1.05, mult, 1e-9)

	ctx.Rank = poker.Flush
	extra, _ = Totals(bonuses, ctx)
	assert.Equal(t, 50, extra)
}

func TestTemplatesAreFresh(t *testing.T) {
	a := Templates()
	a[0].CurrentLevel = 4
	*a[0].TargetRank = poker.Flush
	b := Templates()
	assert.Equal(t, 0, b[0].CurrentLevel)
	assert.Equal(t, poker.OnePair, *b[0].TargetRank)
}
