package game

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"voyager.com/solorpg/bonus"
	"voyager.com/solorpg/economy"
	"voyager.com/solorpg/poker"
	"voyager.com/solorpg/progression"
	"voyager.com/solorpg/rules"
	"voyager.com/solorpg/scoring"
	"voyager.com/solorpg/shop"
	"voyager.com/solorpg/util"
)

func initializeGame(next *Session, env Env) error {
	r := env.Rules
	prev := *next

	from := prev.Status
	if !from.Valid() {
		from = StatusIdle
	}
	status, err := transition(from, eventInitialize)
	if err != nil {
		return err
	}

	id, err := uuid.NewRandomFromReader(env.Rand)
	if err != nil {
		return errors.Wrap(err, "Unable to generate session id")
	}
	deck := poker.Shuffle(poker.BuildDeck(env.Rand), env.Rand)
	shopCards, err := shop.Generate(env.Rand, 0, r.ShopSize)
	if err != nil {
		return err
	}
	permanent := bonus.Templates()
	if r.PersistBonuses && len(prev.PermanentBonuses) > 0 {
		permanent = append([]bonus.PermanentBonus(nil), prev.PermanentBonuses...)
	}

	*next = Session{
		ID:                id.String(),
		Status:            status,
		Deck:              deck,
		Health:            r.StartingHealth,
		MaxHealth:         r.StartingHealth,
		Round:             1,
		MaxRounds:         r.MaxRounds,
		DiscardsRemaining: r.MaxDiscards,
		StreakMultiplier:  1,
		Shop:              shopCards,
		PermanentBonuses:  permanent,
		Stats:             Stats{HandsPlayed: make(map[string]int)},
		GamesPlayed:       prev.GamesPlayed,
		BestScore:         prev.BestScore,
		Message:           "New game ready. Start the game to deal your first hand.",
	}
	return nil
}

func startGame(next *Session, env Env) error {
	r := env.Rules
	hand, rest, err := poker.Deal(next.Deck, r.InitialHandSize)
	if err != nil {
		return err
	}
	status, err := transition(next.Status, eventStart)
	if err != nil {
		return err
	}
	next.Status = status
	next.Hand = hand
	next.Deck = rest
	next.Selected = nil
	next.PlayedHand = nil
	next.Message = fmt.Sprintf("Round %d of %d. Select up to %d cards to play.", next.Round, next.MaxRounds, r.MaxSelection)
	return nil
}

func selectCard(next *Session, cardID string, env Env) error {
	if poker.IndexOf(next.Hand, cardID) < 0 {
		return &poker.CardNotInHandError{CardID: cardID}
	}
	if next.IsSelected(cardID) {
		selected := make([]string, 0, len(next.Selected))
		for _, id := range next.Selected {
			if id != cardID {
				selected = append(selected, id)
			}
		}
		next.Selected = selected
		next.Message = fmt.Sprintf("%d cards selected", len(next.Selected))
		return nil
	}
	if len(next.Selected) >= env.Rules.MaxSelection {
		return reject("You can only select %d cards. Deselect one first.", env.Rules.MaxSelection)
	}
	next.Selected = append(next.Selected, cardID)
	next.Message = fmt.Sprintf("%d cards selected", len(next.Selected))
	return nil
}

func playHand(next *Session, env Env) error {
	r := env.Rules
	if len(next.Selected) == 0 {
		return reject("Select at least one card to play")
	}
	cards, err := next.SelectedCards()
	if err != nil {
		return err
	}
	eval, err := env.Evaluator.Evaluate(cards)
	if err != nil {
		return err
	}
	status, err := transition(next.Status, eventPlay)
	if err != nil {
		return err
	}

	b := scoring.Score(scoring.Input{
		Cards:            cards,
		Evaluation:       eval,
		ActiveBonusCards: next.ActiveBonusCards(),
		PermanentBonuses: next.PermanentBonuses,
		Health:           next.Health,
		MaxHealth:        next.MaxHealth,
		Points:           next.Points,
		Streak:           next.Streak,
		Wager:            next.Wager,
	}, r)

	next.Status = status
	next.Points = b.NewPoints
	next.Health = b.NewHealth
	next.Streak = b.NewStreak
	next.StreakMultiplier = b.StreakMultiplier
	next.Wager = rules.Wager{}
	next.LastScore = &b

	next.Stats.CardsPlayed += len(cards)
	if next.Stats.HandsPlayed == nil {
		next.Stats.HandsPlayed = make(map[string]int)
	}
	next.Stats.HandsPlayed[eval.Rank.String()]++
	if b.WagerPlaced {
		if b.WagerWon {
			next.Stats.WagersWon++
		} else {
			next.Stats.WagersLost++
		}
	}

	played := make(map[string]bool, len(cards))
	for _, c := range cards {
		played[c.ID] = true
	}
	hand := make([]poker.PlayingCard, 0, len(next.Hand))
	for _, c := range next.Hand {
		if !played[c.ID] {
			hand = append(hand, c)
		}
	}
	next.Hand = hand
	next.PlayedHand = cards
	next.Selected = nil

	next.ShopRotations++
	shopCards, err := shop.Generate(env.Rand, next.ShopRotations, r.ShopSize)
	if err != nil {
		return err
	}
	next.Shop = shopCards
	next.Message = playMessage(b)
	return nil
}

func playMessage(b scoring.Breakdown) string {
	var sb strings.Builder
	if b.IsValid {
		fmt.Fprintf(&sb, "%s! +%d points", b.Rank, b.HandPoints)
	} else {
		fmt.Fprintf(&sb, "%s. +%d points", b.Description, b.HandPoints)
	}
	if b.HealthDelta != 0 {
		fmt.Fprintf(&sb, ", %+d health", b.HealthDelta)
	}
	if b.StreakMultiplier > 1 {
		fmt.Fprintf(&sb, ", streak %d (x%.2f)", b.NewStreak, b.StreakMultiplier)
	}
	if b.WagerPlaced {
		if b.WagerWon {
			fmt.Fprintf(&sb, ". Wager won: +%d health and points", b.WagerPayout)
		} else {
			sb.WriteString(". Wager lost")
		}
	}
	if b.Penalty > 0 {
		fmt.Fprintf(&sb, ". Penalty -%d points", b.Penalty)
	}
	return sb.String()
}

func discardCards(next *Session, cardIDs []string) error {
	ids := cardIDs
	if len(ids) == 0 {
		ids = next.Selected
	}
	result, err := economy.Discard(next.Hand, next.Deck, ids, next.DiscardsRemaining)
	if err != nil {
		return err
	}
	next.Hand = result.Hand
	next.Deck = result.Deck
	next.DiscardPile = append(next.DiscardPile, result.Discarded...)
	next.DiscardsRemaining = result.DiscardsRemaining
	next.Selected = nil
	next.Stats.DiscardsUsed++
	next.Message = fmt.Sprintf("Discarded %d cards. %d discards left.", len(result.Discarded), next.DiscardsRemaining)
	return nil
}

// redraw ends the current round. The game finishes when the rounds are used up,
// when the deck is exhausted, or at zero health if the rules say so.
func redraw(next *Session, env Env) error {
	r := env.Rules
	next.DiscardPile = append(next.DiscardPile, next.Hand...)
	next.DiscardPile = append(next.DiscardPile, next.PlayedHand...)
	next.Hand = nil
	next.PlayedHand = nil
	next.Selected = nil

	if next.Round >= next.MaxRounds {
		return finish(next, "All rounds played")
	}
	if r.EndOnZeroHealth && next.Health <= 0 {
		return finish(next, "Out of health")
	}
	if len(next.Deck) < r.InitialHandSize && r.RecycleDiscards && len(next.DiscardPile) > 0 {
		next.Deck = append(next.Deck, poker.Shuffle(next.DiscardPile, env.Rand)...)
		next.DiscardPile = nil
	}
	if len(next.Deck) == 0 {
		return finish(next, "The deck is empty")
	}

	hand, rest, err := poker.Deal(next.Deck, util.MinInt(r.InitialHandSize, len(next.Deck)))
	if err != nil {
		return err
	}
	status, err := transition(next.Status, eventRedraw)
	if err != nil {
		return err
	}
	next.Status = status
	next.Hand = hand
	next.Deck = rest
	next.Round++
	next.Message = fmt.Sprintf("Round %d of %d. Select up to %d cards to play.", next.Round, next.MaxRounds, r.MaxSelection)
	return nil
}

func finish(next *Session, reason string) error {
	status, err := transition(next.Status, eventFinish)
	if err != nil {
		return err
	}
	next.Status = status
	next.Wager = rules.Wager{}
	report := completionReport(*next)
	next.Report = &report
	next.GamesPlayed++
	next.BestScore = util.MaxInt(next.BestScore, next.Points)
	next.Message = fmt.Sprintf("Game over. %s. Final score: %d points.", reason, next.Points)
	return nil
}

func completionReport(s Session) progression.CompletionReport {
	return progression.CompletionReport{
		SessionID:                 s.ID,
		Points:                    s.Points,
		IsWin:                     s.Round >= s.MaxRounds && s.Health > 0,
		RoundsPlayed:              s.Round,
		CardsPlayed:               s.Stats.CardsPlayed,
		HandsPlayed:               copyCounts(s.Stats.HandsPlayed),
		Improvements:              s.Stats.Improvements,
		MaxCardLevel:              s.MaxCardLevel(),
		PointsSpentOnImprovements: s.Stats.PointsSpentOnImprovements,
		BonusCardsAcquired:        s.Stats.BonusCardsAcquired,
		PointsSpentOnBonusCards:   s.Stats.PointsSpentOnBonusCards,
	}
}
