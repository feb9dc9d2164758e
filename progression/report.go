package progression

// CompletionReport is what a finished game hands to progression.
type CompletionReport struct {
	SessionID                 string         `json:"sessionId"`
	Points                    int            `json:"points"`
	IsWin                     bool           `json:"isWin"`
	RoundsPlayed              int            `json:"roundsPlayed"`
	CardsPlayed               int            `json:"cardsPlayed"`
	HandsPlayed               map[string]int `json:"handsPlayed"`
	Improvements              int            `json:"improvements"`
	MaxCardLevel              int            `json:"maxCardLevel"`
	PointsSpentOnImprovements int            `json:"pointsSpentOnImprovements"`
	BonusCardsAcquired        int            `json:"bonusCardsAcquired"`
	PointsSpentOnBonusCards   int            `json:"pointsSpentOnBonusCards"`
}

// Reporter receives completion reports. Implementations must not block the caller.
type Reporter interface {
	Report(report CompletionReport)
}
