package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"voyager.com/solorpg/poker"
)

func TestXPForLevel(t *testing.T) {
	assert.Equal(t, 100, XPForLevel(1))
	assert.Equal(t, 150, XPForLevel(2))
	assert.Equal(t, 225, XPForLevel(3))
	assert.Equal(t, 337, XPForLevel(4))
}

func TestAddExperienceRollsOverLevels(t *testing.T) {
	s := NewState()
	s.AddExperience(260)
	assert.Equal(t, 3, s.PlayerLevel.Level)
	assert.Equal(t, 10, s.PlayerLevel.CurrentXP)
	assert.Equal(t, 225, s.PlayerLevel.XPToNextLevel)
	assert.Equal(t, 260, s.PlayerLevel.TotalXPEarned)
}

func TestGameXP(t *testing.T) {
	r := CompletionReport{
		Points:       420,
		IsWin:        true,
		RoundsPlayed: 20,
		HandsPlayed: map[string]int{
			poker.FullHouse.String(): 2,
			poker.OnePair.String():   5,
		},
	}
	// 10 + 42 + 10 + 15 + 25
	assert.Equal(t, 102, GameXP(r))
}

func TestApply(t *testing.T) {
	s := NewState()
	report := CompletionReport{
		Points:       1200,
		IsWin:        true,
		RoundsPlayed: 20,
		CardsPlayed:  85,
		HandsPlayed: map[string]int{
			poker.Flush.String():   3,
			poker.OnePair.String(): 4,
		},
		Improvements:              2,
		MaxCardLevel:              2,
		PointsSpentOnImprovements: 60,
	}
	next, unlocked := Apply(s, report)

	assert.Equal(t, 0, s.Statistics.GamesPlayed, "input state must not change")
	st := next.Statistics
	assert.Equal(t, 1, st.GamesPlayed)
	assert.Equal(t, 1, st.GamesWon)
	assert.Equal(t, 1200, st.HighestScore)
	assert.Equal(t, 1, st.CurrentWinStreak)
	assert.Equal(t, 3, st.HandsPlayed[poker.Flush.String()])
	assert.Equal(t, 1200.0, st.AveragePointsPerGame)
	assert.ElementsMatch(t, []string{"first_game", "points_1000", "first_flush", "first_improvement", "high_score_1000"}, unlocked)
	// game xp 10+120+15+25 = 170, achievements 50+150+75+50+250 = 575
	assert.Equal(t, 745, next.PlayerLevel.TotalXPEarned)

	loss := CompletionReport{Points: 100, RoundsPlayed: 20}
	next, unlocked = Apply(next, loss)
	assert.Empty(t, unlocked)
	assert.Equal(t, 0, next.Statistics.CurrentWinStreak)
	assert.Equal(t, 1, next.Statistics.LongestWinStreak)
	assert.Equal(t, 650.0, next.Statistics.AveragePointsPerGame)
}

func TestWinStreakAchievement(t *testing.T) {
	s := NewState()
	var unlocked []string
	for i := 0; i < 3; i++ {
		var u []string
		s, u = Apply(s, CompletionReport{Points: 10, IsWin: true, RoundsPlayed: 20})
		unlocked = append(unlocked, u...)
	}
	assert.Contains(t, unlocked, "win_streak_3")
	require.Equal(t, 3, s.Statistics.LongestWinStreak)
}
