package game

import (
	"fmt"

	"voyager.com/solorpg/bonus"
	"voyager.com/solorpg/economy"
	"voyager.com/solorpg/poker"
	"voyager.com/solorpg/progression"
	"voyager.com/solorpg/rules"
	"voyager.com/solorpg/scoring"
)

type Status string

const (
	StatusIdle      Status = "idle"
	StatusSelecting Status = "selecting"
	StatusPlaying   Status = "playing"
	StatusGameOver  Status = "gameOver"
)

// Stats are the per-game counters that end up in the completion report.
type Stats struct {
	CardsPlayed               int            `json:"cardsPlayed"`
	HandsPlayed               map[string]int `json:"handsPlayed"`
	Improvements              int            `json:"improvements"`
	PointsSpentOnImprovements int            `json:"pointsSpentOnImprovements"`
	BonusCardsAcquired        int            `json:"bonusCardsAcquired"`
	PointsSpentOnBonusCards   int            `json:"pointsSpentOnBonusCards"`
	DiscardsUsed              int            `json:"discardsUsed"`
	WagersWon                 int            `json:"wagersWon"`
	WagersLost                int            `json:"wagersLost"`
}

// Session is the whole state of one game. It is only changed through Reduce.
type Session struct {
	ID     string `json:"id"`
	Status Status `json:"status"`

	Deck        []poker.PlayingCard `json:"deck"`
	Hand        []poker.PlayingCard `json:"hand"`
	Selected    []string            `json:"selected"`
	PlayedHand  []poker.PlayingCard `json:"playedHand"`
	DiscardPile []poker.PlayingCard `json:"discardPile"`

	Health            int         `json:"health"`
	MaxHealth         int         `json:"maxHealth"`
	Points            int         `json:"points"`
	Round             int         `json:"round"`
	MaxRounds         int         `json:"maxRounds"`
	DiscardsRemaining int         `json:"discardsRemaining"`
	Wager             rules.Wager `json:"wager"`
	Streak            int         `json:"streak"`
	StreakMultiplier  float64     `json:"streakMultiplier"`

	Shop             []poker.BonusCard      `json:"shop"`
	ShopRotations    int                    `json:"shopRotations"`
	OwnedBonusCards  []poker.BonusCard      `json:"ownedBonusCards"`
	ActiveBonusIDs   []string               `json:"activeBonusIds"`
	PermanentBonuses []bonus.PermanentBonus `json:"permanentBonuses"`

	Message   string                        `json:"message"`
	Rejected  bool                          `json:"rejected"`
	LastScore *scoring.Breakdown            `json:"lastScore,omitempty"`
	Report    *progression.CompletionReport `json:"report,omitempty"`

	Stats       Stats `json:"stats"`
	GamesPlayed int   `json:"gamesPlayed"`
	BestScore   int   `json:"bestScore"`
}

func copyCards(cards []poker.PlayingCard) []poker.PlayingCard {
	if cards == nil {
		return nil
	}
	return append([]poker.PlayingCard(nil), cards...)
}

func copyBonusCards(cards []poker.BonusCard) []poker.BonusCard {
	if cards == nil {
		return nil
	}
	return append([]poker.BonusCard(nil), cards...)
}

func copyStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}

// Clone returns a deep copy. Pointer targets inside bonuses are never mutated and are shared.
func (s Session) Clone() Session {
	c := s
	c.Deck = copyCards(s.Deck)
	c.Hand = copyCards(s.Hand)
	c.Selected = copyStrings(s.Selected)
	c.PlayedHand = copyCards(s.PlayedHand)
	c.DiscardPile = copyCards(s.DiscardPile)
	c.Shop = copyBonusCards(s.Shop)
	c.OwnedBonusCards = copyBonusCards(s.OwnedBonusCards)
	c.ActiveBonusIDs = copyStrings(s.ActiveBonusIDs)
	if s.PermanentBonuses != nil {
		c.PermanentBonuses = append([]bonus.PermanentBonus(nil), s.PermanentBonuses...)
	}
	if s.LastScore != nil {
		score := *s.LastScore
		c.LastScore = &score
	}
	if s.Report != nil {
		report := *s.Report
		report.HandsPlayed = copyCounts(s.Report.HandsPlayed)
		c.Report = &report
	}
	c.Stats.HandsPlayed = copyCounts(s.Stats.HandsPlayed)
	return c
}

func copyCounts(m map[string]int) map[string]int {
	if m == nil {
		return nil
	}
	c := make(map[string]int, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

// SelectedCards resolves the selection against the hand, in selection order.
func (s Session) SelectedCards() ([]poker.PlayingCard, error) {
	cards := make([]poker.PlayingCard, 0, len(s.Selected))
	for _, id := range s.Selected {
		i := poker.IndexOf(s.Hand, id)
		if i < 0 {
			return nil, &poker.CardNotInHandError{CardID: id}
		}
		cards = append(cards, s.Hand[i])
	}
	return cards, nil
}

func (s Session) ActiveBonusCards() []poker.BonusCard {
	return economy.ActiveCards(s.OwnedBonusCards, s.ActiveBonusIDs)
}

func (s Session) IsSelected(cardID string) bool {
	for _, id := range s.Selected {
		if id == cardID {
			return true
		}
	}
	return false
}

// AllCards returns every playing card the player owns wherever it currently is.
func (s Session) AllCards() []poker.PlayingCard {
	all := make([]poker.PlayingCard, 0, poker.DeckSize)
	all = append(all, s.Deck...)
	all = append(all, s.Hand...)
	all = append(all, s.PlayedHand...)
	all = append(all, s.DiscardPile...)
	return all
}

// FindCard looks a card up by id in the deck, hand, played hand and discard pile.
func (s Session) FindCard(cardID string) (poker.PlayingCard, bool) {
	for _, c := range s.AllCards() {
		if c.ID == cardID {
			return c, true
		}
	}
	return poker.PlayingCard{}, false
}

func (s Session) MaxCardLevel() int {
	max := 0
	for _, c := range s.AllCards() {
		if c.ImprovementLevel > max {
			max = c.ImprovementLevel
		}
	}
	return max
}

// InvalidSessionError is returned for sessions that break a structural invariant,
// typically a corrupted save.
type InvalidSessionError struct {
	Reason string
}

func (e *InvalidSessionError) Error() string {
	return fmt.Sprintf("Invalid session: %s", e.Reason)
}

// Validate checks the invariants a restored session must satisfy.
func (s Session) Validate() error {
	if s.ID == "" {
		return &InvalidSessionError{Reason: "missing id"}
	}
	if !s.Status.Valid() {
		return &InvalidSessionError{Reason: fmt.Sprintf("unknown status %q", s.Status)}
	}
	if s.MaxHealth <= 0 || s.Health < 0 || s.Health > s.MaxHealth {
		return &InvalidSessionError{Reason: fmt.Sprintf("health %d out of range [0, %d]", s.Health, s.MaxHealth)}
	}
	if s.Points < 0 {
		return &InvalidSessionError{Reason: "negative points"}
	}
	if s.DiscardsRemaining < 0 {
		return &InvalidSessionError{Reason: "negative discards"}
	}
	if s.Round < 1 || s.Round > s.MaxRounds {
		return &InvalidSessionError{Reason: fmt.Sprintf("round %d out of range [1, %d]", s.Round, s.MaxRounds)}
	}
	if len(s.Selected) > poker.MaxHandSize {
		return &InvalidSessionError{Reason: "too many selected cards"}
	}
	if _, err := s.SelectedCards(); err != nil {
		return &InvalidSessionError{Reason: err.Error()}
	}
	if len(s.ActiveBonusIDs) > poker.MaxHandSize {
		return &InvalidSessionError{Reason: "too many active bonus cards"}
	}
	if len(s.ActiveBonusCards()) != len(s.ActiveBonusIDs) {
		return &InvalidSessionError{Reason: "active bonus card is not owned"}
	}
	all := s.AllCards()
	if len(all) != poker.DeckSize {
		return &InvalidSessionError{Reason: fmt.Sprintf("%d cards in play, expected %d", len(all), poker.DeckSize)}
	}
	seen := make(map[string]bool, poker.DeckSize)
	for _, c := range all {
		if seen[c.ID] {
			return &InvalidSessionError{Reason: fmt.Sprintf("card %s appears twice", c.ID)}
		}
		if c.ImprovementLevel < 0 || c.ImprovementLevel > c.MaxImprovementLevel {
			return &InvalidSessionError{Reason: fmt.Sprintf("card %s has level %d", c.ID, c.ImprovementLevel)}
		}
		seen[c.ID] = true
	}
	for _, b := range s.PermanentBonuses {
		if b.CurrentLevel < 0 || b.CurrentLevel > b.MaxLevel {
			return &InvalidSessionError{Reason: fmt.Sprintf("bonus %s has level %d", b.ID, b.CurrentLevel)}
		}
	}
	return nil
}
