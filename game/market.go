package game

import (
	"fmt"

	"voyager.com/solorpg/economy"
	"voyager.com/solorpg/poker"
	"voyager.com/solorpg/shop"
)

func buyExtraDiscard(next *Session, env Env) error {
	points, discards, err := economy.BuyExtraDiscard(next.Points, next.DiscardsRemaining, env.Rules.DiscardCost)
	if err != nil {
		return err
	}
	next.Points = points
	next.DiscardsRemaining = discards
	next.Message = fmt.Sprintf("Bought an extra discard. %d discards left.", discards)
	return nil
}

func buyShopCard(next *Session, index int) error {
	p, err := economy.BuyShopCard(next.Points, next.Shop, next.OwnedBonusCards, index)
	if err != nil {
		return err
	}
	next.Stats.BonusCardsAcquired++
	next.Stats.PointsSpentOnBonusCards += next.Points - p.Points
	next.Points = p.Points
	next.Shop = p.Shop
	next.OwnedBonusCards = p.Owned
	next.Message = fmt.Sprintf("Bought %s for %d points", p.Card.Name, p.Card.Cost)
	return nil
}

func rerollShop(next *Session, env Env) error {
	r := env.Rules
	cost := shop.RerollCost(r.ShopRerollCost, r.ShopRerollIncrement, next.ShopRotations)
	if next.Points < cost {
		return reject("Not enough points to refresh the shop (need %d, have %d)", cost, next.Points)
	}
	cards, err := shop.Generate(env.Rand, next.ShopRotations+1, r.ShopSize)
	if err != nil {
		return err
	}
	next.ShopRotations++
	next.Points -= cost
	next.Shop = cards
	next.Message = fmt.Sprintf("Shop refreshed for %d points", cost)
	return nil
}

// improveCard levels up the card wherever it currently lives.
func improveCard(next *Session, cardID string, env Env) error {
	card, ok := next.FindCard(cardID)
	if !ok {
		return &economy.NotFoundError{Kind: "card", ID: cardID}
	}
	improved, points, err := economy.Improve(card, next.Points, env.Rules.BaseImprovementCost)
	if err != nil {
		return err
	}
	next.Stats.Improvements++
	next.Stats.PointsSpentOnImprovements += next.Points - points
	next.Points = points
	next.Deck = replaceCard(next.Deck, improved)
	next.Hand = replaceCard(next.Hand, improved)
	next.PlayedHand = replaceCard(next.PlayedHand, improved)
	next.DiscardPile = replaceCard(next.DiscardPile, improved)
	next.Message = fmt.Sprintf("%s improved to level %d/%d", improved, improved.ImprovementLevel, improved.MaxImprovementLevel)
	return nil
}

func replaceCard(cards []poker.PlayingCard, card poker.PlayingCard) []poker.PlayingCard {
	if i := poker.IndexOf(cards, card.ID); i >= 0 {
		cards[i] = card
	}
	return cards
}

func toggleBonusCard(next *Session, index int, env Env) error {
	t, err := economy.ToggleBonusCard(next.OwnedBonusCards, next.ActiveBonusIDs, index, env.Rules.BonusSlotLimit)
	if err != nil {
		return err
	}
	next.ActiveBonusIDs = t.Active
	if !t.Activated {
		next.Message = fmt.Sprintf("%s unequipped", t.Card.Name)
		return nil
	}
	next.Message = fmt.Sprintf("%s equipped (%d/%d)", t.Card.Name, len(t.Active), env.Rules.BonusSlotLimit)
	if t.BonusHand != nil {
		next.Message += fmt.Sprintf(". Bonus hand %s: x%.1f multiplier", *t.BonusHand, env.Rules.BonusHandMultiplier(*t.BonusHand))
	}
	return nil
}

func placeBet(next *Session, bet PlaceBet, env Env) error {
	w, health, err := economy.PlaceWager(env.Rules, next.Wager, bet.Tier, bet.Amount, next.Health)
	if err != nil {
		return err
	}
	next.Wager = w
	next.Health = health
	next.Message = fmt.Sprintf("Wagered %d health (%s). A winning hand pays x%.1f.", w.Amount, w.Tier, w.Multiplier)
	return nil
}

func upgradePermanentBonus(next *Session, bonusID string, env Env) error {
	upgraded, points, err := economy.UpgradePermanentBonus(next.PermanentBonuses, bonusID, next.Points, env.Rules.BaseUpgradeCost)
	if err != nil {
		return err
	}
	next.Points = points
	next.PermanentBonuses = upgraded
	for _, b := range upgraded {
		if b.ID == bonusID {
			next.Message = fmt.Sprintf("%s upgraded to level %d/%d", b.Name, b.CurrentLevel, b.MaxLevel)
		}
	}
	return nil
}

func sortHand(next *Session, method poker.SortMethod) error {
	switch method {
	case poker.SortNone, poker.SortValue, poker.SortSuit, poker.SortColor:
	default:
		return reject("Unknown sort method %s", method)
	}
	next.Hand = poker.SortCards(next.Hand, method)
	next.Message = fmt.Sprintf("Hand sorted by %s", method)
	return nil
}
