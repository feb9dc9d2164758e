package progression

import (
	"math"

	"voyager.com/solorpg/poker"
)

const (
	baseXPPerLevel = 100
	xpGrowthFactor = 1.5
	fullGameRounds = 20
)

type PlayerLevel struct {
	Level         int `json:"level"`
	CurrentXP     int `json:"currentXP"`
	XPToNextLevel int `json:"xpToNextLevel"`
	TotalXPEarned int `json:"totalXPEarned"`
}

type Statistics struct {
	GamesPlayed               int            `json:"gamesPlayed"`
	GamesWon                  int            `json:"gamesWon"`
	TotalPoints               int            `json:"totalPoints"`
	HighestScore              int            `json:"highestScore"`
	TotalRoundsPlayed         int            `json:"totalRoundsPlayed"`
	TotalCardsPlayed          int            `json:"totalCardsPlayed"`
	HandsPlayed               map[string]int `json:"handsPlayed"`
	TotalImprovements         int            `json:"totalImprovements"`
	MaxCardLevel              int            `json:"maxCardLevel"`
	PointsSpentOnImprovements int            `json:"pointsSpentOnImprovements"`
	BonusCardsAcquired        int            `json:"bonusCardsAcquired"`
	PointsSpentOnBonusCards   int            `json:"pointsSpentOnBonusCards"`
	LongestWinStreak          int            `json:"longestWinStreak"`
	CurrentWinStreak          int            `json:"currentWinStreak"`
	AveragePointsPerGame      float64        `json:"averagePointsPerGame"`
}

type RewardType string

const (
	RewardXP        RewardType = "xp"
	RewardBonusCard RewardType = "bonusCard"
	RewardPoints    RewardType = "bonus"
)

type Achievement struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Requirement int        `json:"requirement"`
	Progress    int        `json:"progress"`
	Unlocked    bool       `json:"unlocked"`
	RewardType  RewardType `json:"rewardType"`
	RewardValue int        `json:"rewardValue"`
}

// State is one player's persistent progression.
type State struct {
	PlayerLevel  PlayerLevel   `json:"playerLevel"`
	Statistics   Statistics    `json:"statistics"`
	Achievements []Achievement `json:"achievements"`
}

// XPForLevel is floor(100 * 1.5^(level-1)).
func XPForLevel(level int) int {
	return int(math.Floor(baseXPPerLevel * math.Pow(xpGrowthFactor, float64(level-1))))
}

func NewState() *State {
	return &State{
		PlayerLevel: PlayerLevel{
			Level:         1,
			XPToNextLevel: XPForLevel(1),
		},
		Statistics: Statistics{
			HandsPlayed: make(map[string]int),
		},
		Achievements: achievements(),
	}
}

func achievements() []Achievement {
	return []Achievement{
		{ID: "first_game", Name: "Welcome to the Table", Description: "Play your first game", Category: "basics", Requirement: 1, RewardType: RewardXP, RewardValue: 50},
		{ID: "tenth_game", Name: "Regular", Description: "Play 10 games", Category: "basics", Requirement: 10, RewardType: RewardXP, RewardValue: 100},
		{ID: "points_1000", Name: "High Earner", Description: "Earn 1000 points in total", Category: "basics", Requirement: 1000, RewardType: RewardXP, RewardValue: 150},
		{ID: "first_flush", Name: "Perfect Color", Description: "Play your first Flush", Category: "combos", Requirement: 1, RewardType: RewardXP, RewardValue: 75},
		{ID: "first_straight_flush", Name: "Royal Hand", Description: "Play your first Straight Flush", Category: "combos", Requirement: 1, RewardType: RewardXP, RewardValue: 200},
		{ID: "combo_master", Name: "Combination Master", Description: "Play every five card rank at least once", Category: "combos", Requirement: 9, RewardType: RewardBonusCard, RewardValue: 1},
		{ID: "first_improvement", Name: "First Upgrade", Description: "Improve a card for the first time", Category: "cards", Requirement: 1, RewardType: RewardXP, RewardValue: 50},
		{ID: "max_card", Name: "Perfectionist", Description: "Improve a card to level 5", Category: "cards", Requirement: 1, RewardType: RewardXP, RewardValue: 150},
		{ID: "high_score_1000", Name: "Impressive Score", Description: "Score 1000 points in a single game", Category: "challenge", Requirement: 1000, RewardType: RewardXP, RewardValue: 250},
		{ID: "win_streak_3", Name: "On a Roll", Description: "Win 3 games in a row", Category: "challenge", Requirement: 3, RewardType: RewardPoints, RewardValue: 500},
		{ID: "reach_level_10", Name: "Veteran", Description: "Reach level 10", Category: "mastery", Requirement: 10, Progress: 1, RewardType: RewardBonusCard, RewardValue: 2},
		{ID: "play_100_games", Name: "Solo Poker Master", Description: "Play 100 games", Category: "mastery", Requirement: 100, RewardType: RewardXP, RewardValue: 500},
	}
}

// Clone deep copies the state.
func (s *State) Clone() *State {
	c := *s
	c.Statistics.HandsPlayed = make(map[string]int, len(s.Statistics.HandsPlayed))
	for k, v := range s.Statistics.HandsPlayed {
		c.Statistics.HandsPlayed[k] = v
	}
	c.Achievements = append([]Achievement(nil), s.Achievements...)
	return &c
}

// AddExperience adds xp and rolls over as many levels as it covers.
func (s *State) AddExperience(xp int) {
	l := &s.PlayerLevel
	l.CurrentXP += xp
	l.TotalXPEarned += xp
	for l.CurrentXP >= l.XPToNextLevel {
		l.CurrentXP -= l.XPToNextLevel
		l.Level++
		l.XPToNextLevel = XPForLevel(l.Level)
	}
}

func (s *State) applyStatistics(r CompletionReport) {
	st := &s.Statistics
	if st.HandsPlayed == nil {
		st.HandsPlayed = make(map[string]int)
	}
	st.GamesPlayed++
	st.TotalPoints += r.Points
	if r.Points > st.HighestScore {
		st.HighestScore = r.Points
	}
	st.TotalRoundsPlayed += r.RoundsPlayed
	st.TotalCardsPlayed += r.CardsPlayed
	if r.IsWin {
		st.GamesWon++
		st.CurrentWinStreak++
		if st.CurrentWinStreak > st.LongestWinStreak {
			st.LongestWinStreak = st.CurrentWinStreak
		}
	} else {
		st.CurrentWinStreak = 0
	}
	for rank, n := range r.HandsPlayed {
		st.HandsPlayed[rank] += n
	}
	st.TotalImprovements += r.Improvements
	if r.MaxCardLevel > st.MaxCardLevel {
		st.MaxCardLevel = r.MaxCardLevel
	}
	st.PointsSpentOnImprovements += r.PointsSpentOnImprovements
	st.BonusCardsAcquired += r.BonusCardsAcquired
	st.PointsSpentOnBonusCards += r.PointsSpentOnBonusCards
	st.AveragePointsPerGame = float64(st.TotalPoints) / float64(st.GamesPlayed)
}

func (s *State) progressFor(id string) int {
	st := s.Statistics
	switch id {
	case "first_game", "tenth_game", "play_100_games":
		return st.GamesPlayed
	case "points_1000":
		return st.TotalPoints
	case "first_flush":
		return st.HandsPlayed[poker.Flush.String()]
	case "first_straight_flush":
		return st.HandsPlayed[poker.StraightFlush.String()]
	case "combo_master":
		n := 0
		for _, rank := range poker.FiveCardRanks() {
			if st.HandsPlayed[rank.String()] > 0 {
				n++
			}
		}
		return n
	case "first_improvement":
		if st.TotalImprovements > 0 {
			return 1
		}
		return 0
	case "max_card":
		if st.MaxCardLevel >= poker.MaxMaxImprove {
			return 1
		}
		return 0
	case "high_score_1000":
		return st.HighestScore
	case "win_streak_3":
		return st.LongestWinStreak
	case "reach_level_10":
		return s.PlayerLevel.Level
	}
	return 0
}

// UpdateAchievements refreshes progress and returns the ids unlocked by this call.
// XP rewards are applied immediately.
func (s *State) UpdateAchievements() []string {
	var unlocked []string
	xp := 0
	for i := range s.Achievements {
		a := &s.Achievements[i]
		if a.Unlocked {
			continue
		}
		a.Progress = min(s.progressFor(a.ID), a.Requirement)
		if a.Progress >= a.Requirement {
			a.Unlocked = true
			unlocked = append(unlocked, a.ID)
			if a.RewardType == RewardXP {
				xp += a.RewardValue
			}
		}
	}
	if xp > 0 {
		s.AddExperience(xp)
	}
	return unlocked
}

// GameXP is the experience awarded for one finished game.
func GameXP(r CompletionReport) int {
	xp := 10 + r.Points/10
	strong := r.HandsPlayed[poker.FullHouse.String()] +
		r.HandsPlayed[poker.FourOfAKind.String()] +
		r.HandsPlayed[poker.StraightFlush.String()]
	xp += strong * 5
	if r.RoundsPlayed >= fullGameRounds {
		xp += 15
	}
	if r.IsWin {
		xp += 25
	}
	return xp
}

// Apply folds a report into a copy of the state.
func Apply(s *State, r CompletionReport) (*State, []string) {
	next := s.Clone()
	next.applyStatistics(r)
	next.AddExperience(GameXP(r))
	unlocked := next.UpdateAchievements()
	return next, unlocked
}
