package gamescript

import (
	"fmt"
	"io/ioutil"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"voyager.com/solorpg/game"
	"voyager.com/solorpg/poker"
	"voyager.com/solorpg/rules"
)

// Script contains game script YAML content.
type Script struct {
	Description string    `yaml:"description"`
	Disabled    bool      `yaml:"disabled"`
	Seed        int64     `yaml:"seed"`
	Rules       yaml.Node `yaml:"rules"`
	Steps       []Step    `yaml:"steps"`
}

// Step is one action, optionally preceded by a state setup and followed by verification.
type Step struct {
	Setup       *Setup  `yaml:"setup"`
	Action      *Action `yaml:"action"`
	ExpectError bool    `yaml:"expect-error"`
	Verify      *Verify `yaml:"verify"`
}

// Setup overwrites parts of the session before the step's action runs.
type Setup struct {
	Hand              []string `yaml:"hand"`
	Points            *int     `yaml:"points"`
	Health            *int     `yaml:"health"`
	DiscardsRemaining *int     `yaml:"discards-remaining"`
	Streak            *int     `yaml:"streak"`
	BonusCards        []string `yaml:"bonus-cards"`
}

// Verify lists the expected session values after the step. Unset fields are not checked.
type Verify struct {
	Status            *string  `yaml:"status"`
	Rank              *string  `yaml:"rank"`
	Rejected          *bool    `yaml:"rejected"`
	MessageContains   string   `yaml:"message-contains"`
	Points            *int     `yaml:"points"`
	PointsRange       *Range   `yaml:"points-range"`
	Health            *int     `yaml:"health"`
	Round             *int     `yaml:"round"`
	Streak            *int     `yaml:"streak"`
	DiscardsRemaining *int     `yaml:"discards-remaining"`
	HandSize          *int     `yaml:"hand-size"`
	Selected          []string `yaml:"selected"`
	Wager             *int     `yaml:"wager"`
	OwnedBonusCards   *int     `yaml:"owned-bonus-cards"`
	ActiveBonusCards  *int     `yaml:"active-bonus-cards"`
	ShopSize          *int     `yaml:"shop-size"`
	GamesPlayed       *int     `yaml:"games-played"`
	IsWin             *bool    `yaml:"is-win"`
}

type Range struct {
	Gte *int `yaml:"gte"`
	Lte *int `yaml:"lte"`
}

// Action is written as a comma-separated expression.
//   playHand
//   selectCard, As
//   discardCards, 2h, 3d
//   placeBet, risky
type Action struct {
	Name string
	Args []string
}

var validActions = mapset.NewSet(
	game.ActionInitializeGame,
	game.ActionStartGame,
	game.ActionSelectCard,
	game.ActionPlayHand,
	game.ActionDiscardCards,
	game.ActionBuyExtraDiscard,
	game.ActionRedraw,
	game.ActionBuyShopCard,
	game.ActionRerollShop,
	game.ActionImproveCard,
	game.ActionToggleBonusCard,
	game.ActionPlaceBet,
	game.ActionUpgradePermanentBonus,
	game.ActionSortHand,
)

// Custom unmarshaller for action expression.
func (a *Action) UnmarshalYAML(value *yaml.Node) error {
	var expr string
	if err := value.Decode(&expr); err != nil {
		return errors.Wrapf(err, "Cannot parse action expression at line %d", value.Line)
	}
	tokens := strings.Split(expr, ",")
	a.Name = strings.TrimSpace(tokens[0])
	a.Args = nil
	for _, token := range tokens[1:] {
		a.Args = append(a.Args, strings.TrimSpace(token))
	}
	if !validActions.Contains(a.Name) {
		return fmt.Errorf("Unknown action [%s] at line %d", a.Name, value.Line)
	}
	return nil
}

func (a Action) String() string {
	if len(a.Args) == 0 {
		return a.Name
	}
	return fmt.Sprintf("%s, %s", a.Name, strings.Join(a.Args, ", "))
}

func (a Action) arg(i int) (string, error) {
	if i >= len(a.Args) {
		return "", fmt.Errorf("Action [%s] needs %d argument(s)", a.Name, i+1)
	}
	return a.Args[i], nil
}

func (a Action) intArg(i int) (int, error) {
	s, err := a.arg(i)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(err, "Cannot convert argument [%s] of %s to a number", s, a.Name)
	}
	return n, nil
}

func cardIDsArg(args []string) ([]string, error) {
	ids := make([]string, 0, len(args))
	for _, arg := range args {
		card, err := poker.ParseCard(arg)
		if err != nil {
			return nil, err
		}
		ids = append(ids, card.ID)
	}
	return ids, nil
}

// GameAction converts the expression into an action for the game reducer.
func (a Action) GameAction() (game.Action, error) {
	switch a.Name {
	case game.ActionInitializeGame:
		return game.InitializeGame{}, nil
	case game.ActionStartGame:
		return game.StartGame{}, nil
	case game.ActionPlayHand:
		return game.PlayHand{}, nil
	case game.ActionBuyExtraDiscard:
		return game.BuyExtraDiscard{}, nil
	case game.ActionRedraw:
		return game.Redraw{}, nil
	case game.ActionRerollShop:
		return game.RerollShop{}, nil
	case game.ActionSelectCard, game.ActionImproveCard:
		ids, err := cardIDsArg(a.Args)
		if err != nil {
			return nil, err
		}
		if len(ids) != 1 {
			return nil, fmt.Errorf("Action [%s] takes exactly one card", a.Name)
		}
		if a.Name == game.ActionSelectCard {
			return game.SelectCard{CardID: ids[0]}, nil
		}
		return game.ImproveCard{CardID: ids[0]}, nil
	case game.ActionDiscardCards:
		ids, err := cardIDsArg(a.Args)
		if err != nil {
			return nil, err
		}
		return game.DiscardCards{CardIDs: ids}, nil
	case game.ActionBuyShopCard:
		index, err := a.intArg(0)
		if err != nil {
			return nil, err
		}
		return game.BuyShopCard{Index: index}, nil
	case game.ActionToggleBonusCard:
		index, err := a.intArg(0)
		if err != nil {
			return nil, err
		}
		return game.ToggleBonusCard{Index: index}, nil
	case game.ActionPlaceBet:
		s, err := a.arg(0)
		if err != nil {
			return nil, err
		}
		tier, err := rules.ParseWagerTier(s)
		if err != nil {
			return nil, err
		}
		bet := game.PlaceBet{Tier: tier}
		if len(a.Args) > 1 {
			if bet.Amount, err = a.intArg(1); err != nil {
				return nil, err
			}
		}
		return bet, nil
	case game.ActionUpgradePermanentBonus:
		id, err := a.arg(0)
		if err != nil {
			return nil, err
		}
		return game.UpgradePermanentBonus{BonusID: id}, nil
	case game.ActionSortHand:
		method, err := a.arg(0)
		if err != nil {
			return nil, err
		}
		return game.SortHand{Method: poker.SortMethod(method)}, nil
	}
	return nil, fmt.Errorf("Unknown action [%s]", a.Name)
}

// ReadGameScript reads game script yaml file.
func ReadGameScript(fileName string) (*Script, error) {
	bytes, err := ioutil.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "Error reading game script file [%s]", fileName)
	}
	script, err := ParseGameScript(bytes)
	if err != nil {
		return nil, errors.Wrapf(err, "Error in game script file [%s]", fileName)
	}
	return script, nil
}

func ParseGameScript(data []byte) (*Script, error) {
	var script Script
	err := yaml.Unmarshal(data, &script)
	if err != nil {
		return nil, errors.Wrap(err, "Error parsing YAML")
	}
	err = script.Validate()
	if err != nil {
		return nil, err
	}
	return &script, nil
}

// GameRules returns the default rules with the script's overrides applied.
func (s *Script) GameRules() (*rules.Rules, error) {
	if s.Rules.Kind == 0 {
		return rules.Default(), nil
	}
	data, err := yaml.Marshal(&s.Rules)
	if err != nil {
		return nil, errors.Wrap(err, "Cannot re-encode rules section")
	}
	return rules.Parse(data)
}

func (s *Script) Validate() error {
	for i, step := range s.Steps {
		stepNum := i + 1
		if step.Action == nil && step.Setup == nil && step.Verify == nil {
			return fmt.Errorf("Step %d is empty", stepNum)
		}
		if step.ExpectError && step.Action == nil {
			return fmt.Errorf("Step %d expects an error but has no action", stepNum)
		}
		if step.Action != nil {
			if _, err := step.Action.GameAction(); err != nil {
				return errors.Wrapf(err, "Step %d", stepNum)
			}
		}
		if step.Setup != nil {
			if err := step.Setup.validate(); err != nil {
				return errors.Wrapf(err, "Step %d setup", stepNum)
			}
		}
		if step.Verify != nil && step.Verify.Rank != nil {
			if _, err := poker.ParseHandRank(*step.Verify.Rank); err != nil {
				return errors.Wrapf(err, "Step %d verify", stepNum)
			}
		}
	}
	return nil
}

func (s *Setup) validate() error {
	cards := mapset.NewSet()
	for _, c := range s.Hand {
		card, err := poker.ParseCard(c)
		if err != nil {
			return err
		}
		if cards.Contains(card.ID) {
			return fmt.Errorf("Duplicate card [%s] in hand", c)
		}
		cards.Add(card.ID)
	}
	if len(s.BonusCards) > 0 {
		if _, err := s.bonusCards(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Setup) bonusCards() ([]poker.BonusCard, error) {
	cards := make([]poker.BonusCard, 0, len(s.BonusCards))
	for _, c := range s.BonusCards {
		card, err := poker.ParseCard(c)
		if err != nil {
			return nil, err
		}
		cards = append(cards, poker.BonusCard{
			ID:     fmt.Sprintf("bonus-%s", card.ID),
			Name:   fmt.Sprintf("Script Card %s", card),
			Suit:   card.Suit,
			Value:  card.Value,
			Rarity: poker.Common,
			Points: card.Numeric(),
			Family: "Script",
			Cost:   100,
		})
	}
	return cards, nil
}

// Apply writes the setup into a copy of s. Hand cards are taken out of the deck
// and discard pile so card identities stay unique.
func (s *Setup) Apply(session game.Session) (game.Session, error) {
	next := session.Clone()
	if len(s.Hand) > 0 {
		hand := make([]poker.PlayingCard, 0, len(s.Hand))
		used := make(map[string]bool, len(s.Hand))
		for _, c := range s.Hand {
			parsed, err := poker.ParseCard(c)
			if err != nil {
				return session, err
			}
			if existing, ok := next.FindCard(parsed.ID); ok {
				parsed = existing
			}
			hand = append(hand, parsed)
			used[parsed.ID] = true
		}
		var deck []poker.PlayingCard
		for _, c := range append(next.Deck, next.Hand...) {
			if !used[c.ID] {
				deck = append(deck, c)
			}
		}
		next.Deck = deck
		next.DiscardPile = without(next.DiscardPile, used)
		next.PlayedHand = without(next.PlayedHand, used)
		next.Hand = hand
		next.Selected = nil
	}
	if s.Points != nil {
		next.Points = *s.Points
	}
	if s.Health != nil {
		next.Health = *s.Health
	}
	if s.DiscardsRemaining != nil {
		next.DiscardsRemaining = *s.DiscardsRemaining
	}
	if s.Streak != nil {
		next.Streak = *s.Streak
	}
	if len(s.BonusCards) > 0 {
		cards, err := s.bonusCards()
		if err != nil {
			return session, err
		}
		next.OwnedBonusCards = append(next.OwnedBonusCards, cards...)
	}
	return next, nil
}

func without(cards []poker.PlayingCard, used map[string]bool) []poker.PlayingCard {
	var kept []poker.PlayingCard
	for _, c := range cards {
		if !used[c.ID] {
			kept = append(kept, c)
		}
	}
	return kept
}
