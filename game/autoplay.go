package game

import (
	"github.com/pkg/errors"
	"voyager.com/solorpg/poker"
	"voyager.com/solorpg/scoring"
)

// AutoPlayer drives an engine with a greedy strategy. It is used by the
// command line runner and by tests that need finished games.
type AutoPlayer struct {
	engine *Engine
	// stop after this many dispatched actions
	MaxActions int
	// a lost health point is weighed as this many points
	HealthWeight int
}

func NewAutoPlayer(engine *Engine) *AutoPlayer {
	return &AutoPlayer{engine: engine, MaxActions: 2000, HealthWeight: 5}
}

// PlayGame starts a game from idle and plays it until game over.
func (a *AutoPlayer) PlayGame() (Session, error) {
	actions := 0
	for {
		s := a.engine.Session()
		if s.Status == StatusGameOver {
			return s, nil
		}
		if actions >= a.MaxActions {
			return s, errors.Errorf("Game did not finish after %d actions", actions)
		}
		for _, action := range a.next(s) {
			if _, err := a.engine.Dispatch(action); err != nil {
				return a.engine.Session(), errors.Wrapf(err, "Autoplay action %s failed", action.Name())
			}
			actions++
		}
	}
}

func (a *AutoPlayer) next(s Session) []Action {
	switch s.Status {
	case StatusIdle:
		return []Action{StartGame{}}
	case StatusSelecting:
		actions := make([]Action, 0, len(s.Hand)+1)
		for _, id := range a.BestSelection(s) {
			actions = append(actions, SelectCard{CardID: id})
		}
		return append(actions, PlayHand{})
	case StatusPlaying:
		return append(a.shopping(s), Redraw{})
	}
	return []Action{InitializeGame{}}
}

// BestSelection picks the card combination of up to MaxSelection cards with
// the highest expected gain. Ties go to the larger selection.
func (a *AutoPlayer) BestSelection(s Session) []string {
	r := a.engine.env.Rules
	var best []string
	bestValue := 0
	for _, combo := range selections(len(s.Hand), r.MaxSelection) {
		cards := make([]poker.PlayingCard, len(combo))
		for i, idx := range combo {
			cards[i] = s.Hand[idx]
		}
		eval, err := a.engine.env.Evaluator.Evaluate(cards)
		if err != nil {
			continue
		}
		b := scoring.Score(scoring.Input{
			Cards:            cards,
			Evaluation:       eval,
			ActiveBonusCards: s.ActiveBonusCards(),
			PermanentBonuses: s.PermanentBonuses,
			Health:           s.Health,
			MaxHealth:        s.MaxHealth,
			Points:           s.Points,
			Streak:           s.Streak,
			Wager:            s.Wager,
		}, r)
		value := b.PointsDelta + a.HealthWeight*b.HealthDelta
		if best == nil || value > bestValue || (value == bestValue && len(cards) > len(best)) {
			best = poker.CardIDs(cards)
			bestValue = value
		}
	}
	return best
}

// shopping buys the first affordable shop card while points stay above its
// cost and equips it when a slot is free.
func (a *AutoPlayer) shopping(s Session) []Action {
	r := a.engine.env.Rules
	for i, card := range s.Shop {
		if s.Points < 2*card.Cost {
			continue
		}
		actions := []Action{BuyShopCard{Index: i}}
		if len(s.ActiveBonusIDs) < r.BonusSlotLimit {
			actions = append(actions, ToggleBonusCard{Index: len(s.OwnedBonusCards)})
		}
		return actions
	}
	return nil
}

// selections lists every non-empty subset of 0..n-1 with at most max elements,
// smallest subsets first.
func selections(n int, max int) [][]int {
	if max > n {
		max = n
	}
	var result [][]int
	for k := 1; k <= max; k++ {
		result = append(result, combinations(n, k)...)
	}
	return result
}

// combinations lists every k-element index subset of 0..n-1 in lexical order.
func combinations(n int, k int) [][]int {
	if k <= 0 || k > n {
		return nil
	}
	var result [][]int
	combo := make([]int, k)
	var fill func(start int, depth int)
	fill = func(start int, depth int) {
		if depth == k {
			result = append(result, append([]int(nil), combo...))
			return
		}
		for i := start; i <= n-(k-depth); i++ {
			combo[depth] = i
			fill(i+1, depth+1)
		}
	}
	fill(0, 0)
	return result
}
