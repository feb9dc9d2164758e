package game

import (
	"fmt"
	"math/rand"

	"github.com/pkg/errors"
	"voyager.com/solorpg/economy"
	"voyager.com/solorpg/poker"
	"voyager.com/solorpg/rules"
)

// Env carries the collaborators a transition may need. Rand is the only source of randomness.
type Env struct {
	Rules     *rules.Rules
	Rand      *rand.Rand
	Evaluator poker.HandEvaluator
}

func NewEnv(r *rules.Rules, rng *rand.Rand) Env {
	return Env{
		Rules:     r,
		Rand:      rng,
		Evaluator: poker.NewEvaluator(),
	}
}

func (e Env) validate() error {
	if e.Rules == nil {
		return errors.New("Rules are not set")
	}
	if e.Rand == nil {
		return errors.New("Random source is not set")
	}
	return nil
}

// statuses in which an action may run. initializeGame is allowed from anywhere.
var allowedStatuses = map[string][]Status{
	ActionStartGame:             {StatusIdle},
	ActionSelectCard:            {StatusSelecting},
	ActionPlayHand:              {StatusSelecting},
	ActionDiscardCards:          {StatusSelecting},
	ActionPlaceBet:              {StatusSelecting},
	ActionRedraw:                {StatusPlaying},
	ActionBuyExtraDiscard:       {StatusSelecting, StatusPlaying},
	ActionBuyShopCard:           {StatusSelecting, StatusPlaying},
	ActionRerollShop:            {StatusSelecting, StatusPlaying},
	ActionImproveCard:           {StatusSelecting, StatusPlaying},
	ActionToggleBonusCard:       {StatusSelecting, StatusPlaying},
	ActionUpgradePermanentBonus: {StatusSelecting, StatusPlaying},
	ActionSortHand:              {StatusSelecting, StatusPlaying},
}

func statusAllowed(status Status, allowed []Status) bool {
	for _, a := range allowed {
		if a == status {
			return true
		}
	}
	return false
}

func reject(format string, args ...interface{}) error {
	return &economy.Rejection{Message: fmt.Sprintf(format, args...)}
}

func rejected(s Session, message string) Session {
	next := s.Clone()
	next.Message = message
	next.Rejected = true
	return next
}

// Reduce applies a to s and returns the next session. s is never modified.
// Player mistakes come back as a session with Rejected set and only Message changed.
// Errors are reserved for caller bugs; the returned session is then s itself.
func Reduce(s Session, a Action, env Env) (Session, error) {
	if a == nil {
		return s, &UnknownActionError{}
	}
	if err := env.validate(); err != nil {
		return s, err
	}
	if env.Evaluator == nil {
		env.Evaluator = poker.NewEvaluator()
	}
	if allowed, ok := allowedStatuses[a.Name()]; ok && !statusAllowed(s.Status, allowed) {
		return rejected(s, fmt.Sprintf("Cannot %s while the game is %s", a.Name(), s.Status)), nil
	}

	next := s.Clone()
	next.Rejected = false
	var err error
	switch act := a.(type) {
	case InitializeGame:
		err = initializeGame(&next, env)
	case StartGame:
		err = startGame(&next, env)
	case SelectCard:
		err = selectCard(&next, act.CardID, env)
	case PlayHand:
		err = playHand(&next, env)
	case DiscardCards:
		err = discardCards(&next, act.CardIDs)
	case BuyExtraDiscard:
		err = buyExtraDiscard(&next, env)
	case Redraw:
		err = redraw(&next, env)
	case BuyShopCard:
		err = buyShopCard(&next, act.Index)
	case RerollShop:
		err = rerollShop(&next, env)
	case ImproveCard:
		err = improveCard(&next, act.CardID, env)
	case ToggleBonusCard:
		err = toggleBonusCard(&next, act.Index, env)
	case PlaceBet:
		err = placeBet(&next, act, env)
	case UpgradePermanentBonus:
		err = upgradePermanentBonus(&next, act.BonusID, env)
	case SortHand:
		err = sortHand(&next, act.Method)
	default:
		return s, &UnknownActionError{Action: a}
	}
	if err != nil {
		if r, ok := economy.IsRejection(err); ok {
			return rejected(s, r.Message), nil
		}
		return s, err
	}
	return next, nil
}
