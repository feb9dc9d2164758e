package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"voyager.com/solorpg/poker"
	"voyager.com/solorpg/rules"
)

func TestCombinations(t *testing.T) {
	assert.Len(t, combinations(8, 5), 56)
	assert.Equal(t, [][]int{{0, 1}, {0, 2}, {1, 2}}, combinations(3, 2))
	assert.Nil(t, combinations(3, 4))
	assert.Nil(t, combinations(3, 0))
}

func TestSelections(t *testing.T) {
	// 8 + 28 + 56 + 70 + 56
	assert.Len(t, selections(8, 5), 218)
	assert.Equal(t, [][]int{{0}, {1}, {0, 1}}, selections(2, 5))
	assert.Nil(t, selections(0, 5))
}

func TestBestSelectionConsidersSmallerHands(t *testing.T) {
	r := rules.Default()
	// a pair pays far more than anything five cards can make
	r.Ranks[poker.MiniPair] = rules.RankTable{BasePoints: 5000, Multiplier: 1, HealthDelta: 0}
	e, _, _ := newTestEngine(t, r)
	s := dispatch(t, e, StartGame{})
	s = withHand(s, "2c", "9h", "Kd", "9d", "3s", "6h", "Jc", "4d")
	require.NoError(t, e.Replace(s))

	assert.Equal(t, cardIDs("9h", "9d"), NewAutoPlayer(e).BestSelection(e.Session()))
}

func TestBestSelectionFindsFlush(t *testing.T) {
	e, _, _ := newTestEngine(t, nil)
	s := dispatch(t, e, StartGame{})
	s = withHand(s, "2s", "4s", "Kd", "6s", "3h", "8s", "9c", "10s")
	require.NoError(t, e.Replace(s))

	player := NewAutoPlayer(e)
	assert.Equal(t, cardIDs("2s", "4s", "6s", "8s", "10s"), player.BestSelection(e.Session()))
}

func TestAutoPlayerFinishesGame(t *testing.T) {
	r := rules.Default()
	r.MaxRounds = 5
	e, _, reporter := newTestEngine(t, r)

	s, err := NewAutoPlayer(e).PlayGame()
	require.NoError(t, err)
	assert.Equal(t, StatusGameOver, s.Status)
	assert.Equal(t, 5, s.Round)
	assert.Equal(t, 1, s.GamesPlayed)
	require.Len(t, reporter.reports, 1)
	assert.GreaterOrEqual(t, reporter.reports[0].CardsPlayed, 5)
	assert.LessOrEqual(t, reporter.reports[0].CardsPlayed, 5*r.MaxSelection)
	assert.Greater(t, e.CachedEvaluations(), 0)
}

func TestAutoPlayerStopsRunawayGames(t *testing.T) {
	e, _, _ := newTestEngine(t, nil)
	player := NewAutoPlayer(e)
	player.MaxActions = 3

	_, err := player.PlayGame()
	require.Error(t, err)
}
