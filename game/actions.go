package game

import (
	"fmt"

	"voyager.com/solorpg/poker"
	"voyager.com/solorpg/rules"
)

// Action is a player command applied by Reduce.
type Action interface {
	Name() string
}

type InitializeGame struct{}

type StartGame struct{}

type SelectCard struct {
	CardID string
}

type PlayHand struct{}

type DiscardCards struct {
	CardIDs []string
}

type BuyExtraDiscard struct{}

type Redraw struct{}

type BuyShopCard struct {
	Index int
}

type RerollShop struct{}

type ImproveCard struct {
	CardID string
}

type ToggleBonusCard struct {
	Index int
}

// PlaceBet stakes health on the next hand. Amount may be 0 to use the tier's stake.
type PlaceBet struct {
	Amount int
	Tier   rules.WagerTier
}

type UpgradePermanentBonus struct {
	BonusID string
}

type SortHand struct {
	Method poker.SortMethod
}

const (
	ActionInitializeGame        = "initializeGame"
	ActionStartGame             = "startGame"
	ActionSelectCard            = "selectCard"
	ActionPlayHand              = "playHand"
	ActionDiscardCards          = "discardCards"
	ActionBuyExtraDiscard       = "buyExtraDiscard"
	ActionRedraw                = "redraw"
	ActionBuyShopCard           = "buyShopCard"
	ActionRerollShop            = "rerollShop"
	ActionImproveCard           = "improveCard"
	ActionToggleBonusCard       = "toggleBonusCard"
	ActionPlaceBet              = "placeBet"
	ActionUpgradePermanentBonus = "upgradePermanentBonus"
	ActionSortHand              = "sortHand"
)

func (InitializeGame) Name() string        { return ActionInitializeGame }
func (StartGame) Name() string             { return ActionStartGame }
func (SelectCard) Name() string            { return ActionSelectCard }
func (PlayHand) Name() string              { return ActionPlayHand }
func (DiscardCards) Name() string          { return ActionDiscardCards }
func (BuyExtraDiscard) Name() string       { return ActionBuyExtraDiscard }
func (Redraw) Name() string                { return ActionRedraw }
func (BuyShopCard) Name() string           { return ActionBuyShopCard }
func (RerollShop) Name() string            { return ActionRerollShop }
func (ImproveCard) Name() string           { return ActionImproveCard }
func (ToggleBonusCard) Name() string       { return ActionToggleBonusCard }
func (PlaceBet) Name() string              { return ActionPlaceBet }
func (UpgradePermanentBonus) Name() string { return ActionUpgradePermanentBonus }
func (SortHand) Name() string              { return ActionSortHand }

type UnknownActionError struct {
	Action Action
}

func (e *UnknownActionError) Error() string {
	if e.Action == nil {
		return "Action is nil"
	}
	return fmt.Sprintf("Unknown action %T", e.Action)
}
