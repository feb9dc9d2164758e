package economy

import (
	"fmt"

	"github.com/shopspring/decimal"
	"voyager.com/solorpg/bonus"
	"voyager.com/solorpg/poker"
	"voyager.com/solorpg/rules"
	"voyager.com/solorpg/scoring"
)

// Rejection is a player mistake. The caller reports Message and leaves state unchanged.
type Rejection struct {
	Message string
}

func (r *Rejection) Error() string {
	return r.Message
}

func reject(format string, args ...interface{}) error {
	return &Rejection{Message: fmt.Sprintf(format, args...)}
}

// IsRejection reports whether err is a player-facing rejection.
func IsRejection(err error) (*Rejection, bool) {
	r, ok := err.(*Rejection)
	return r, ok
}

// NotFoundError means the caller referenced something that does not exist.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

type Purchase struct {
	Card   poker.BonusCard
	Points int
	Shop   []poker.BonusCard
	Owned  []poker.BonusCard
}

// BuyShopCard moves the card at index from the shop to the owned pool.
// The emptied shop slot is not refilled.
func BuyShopCard(points int, shop []poker.BonusCard, owned []poker.BonusCard, index int) (Purchase, error) {
	if index < 0 || index >= len(shop) {
		return Purchase{}, &NotFoundError{Kind: "shop slot", ID: fmt.Sprint(index)}
	}
	card := shop[index]
	if points < card.Cost {
		return Purchase{}, reject("Not enough points to buy %s (need %d, have %d)", card.Name, card.Cost, points)
	}
	newShop := make([]poker.BonusCard, 0, len(shop)-1)
	newShop = append(newShop, shop[:index]...)
	newShop = append(newShop, shop[index+1:]...)
	newOwned := make([]poker.BonusCard, len(owned), len(owned)+1)
	copy(newOwned, owned)
	newOwned = append(newOwned, card)
	return Purchase{
		Card:   card,
		Points: points - card.Cost,
		Shop:   newShop,
		Owned:  newOwned,
	}, nil
}

// ImprovementCost is (level+1) * base.
func ImprovementCost(card poker.PlayingCard, baseCost int) int {
	return (card.ImprovementLevel + 1) * baseCost
}

func CanImprove(card poker.PlayingCard, points int, baseCost int) error {
	if card.IsMaxed() {
		return reject("%s is already at max level", card)
	}
	cost := ImprovementCost(card, baseCost)
	if points < cost {
		return reject("Not enough points to improve %s (need %d, have %d)", card, cost, points)
	}
	return nil
}

// Improve returns the card one level higher and the points left.
func Improve(card poker.PlayingCard, points int, baseCost int) (poker.PlayingCard, int, error) {
	if err := CanImprove(card, points, baseCost); err != nil {
		return card, points, err
	}
	cost := ImprovementCost(card, baseCost)
	card.ImprovementLevel++
	return card, points - cost, nil
}

type Toggle struct {
	Active    []string
	Card      poker.BonusCard
	Activated bool
	// set when this toggle filled the last slot and the five cards form a valid hand
	BonusHand *poker.HandRank
}

// ToggleBonusCard equips or unequips the owned card at index. Unequipping is never blocked.
func ToggleBonusCard(owned []poker.BonusCard, active []string, index int, slotLimit int) (Toggle, error) {
	if index < 0 || index >= len(owned) {
		return Toggle{}, &NotFoundError{Kind: "owned bonus card", ID: fmt.Sprint(index)}
	}
	card := owned[index]
	newActive := make([]string, 0, len(active)+1)
	wasActive := false
	for _, id := range active {
		if id == card.ID {
			wasActive = true
			continue
		}
		newActive = append(newActive, id)
	}
	if wasActive {
		return Toggle{Active: newActive, Card: card}, nil
	}
	if len(active) >= slotLimit {
		return Toggle{}, reject("All %d bonus slots are in use", slotLimit)
	}
	newActive = append(newActive, card.ID)
	t := Toggle{Active: newActive, Card: card, Activated: true}
	if len(newActive) == poker.MaxHandSize {
		if rank, ok := scoring.BonusHand(ActiveCards(owned, newActive)); ok {
			t.BonusHand = &rank
		}
	}
	return t, nil
}

// ActiveCards resolves active ids against the owned pool, in active order.
func ActiveCards(owned []poker.BonusCard, active []string) []poker.BonusCard {
	byID := make(map[string]poker.BonusCard, len(owned))
	for _, c := range owned {
		byID[c.ID] = c
	}
	cards := make([]poker.BonusCard, 0, len(active))
	for _, id := range active {
		if c, ok := byID[id]; ok {
			cards = append(cards, c)
		}
	}
	return cards
}

type DiscardResult struct {
	Hand              []poker.PlayingCard
	Deck              []poker.PlayingCard
	Discarded         []poker.PlayingCard
	DiscardsRemaining int
}

// Discard removes the cards from the hand and draws replacements from the deck tail.
// The budget drops by one per call however many cards go.
func Discard(hand []poker.PlayingCard, deck []poker.PlayingCard, ids []string, discardsRemaining int) (DiscardResult, error) {
	if discardsRemaining <= 0 {
		return DiscardResult{}, reject("No discards remaining")
	}
	if len(ids) == 0 {
		return DiscardResult{}, reject("Select cards to discard")
	}
	remove := make(map[string]bool, len(ids))
	for _, id := range ids {
		if poker.IndexOf(hand, id) < 0 {
			return DiscardResult{}, &poker.CardNotInHandError{CardID: id}
		}
		remove[id] = true
	}
	kept := make([]poker.PlayingCard, 0, len(hand))
	discarded := make([]poker.PlayingCard, 0, len(remove))
	for _, c := range hand {
		if remove[c.ID] {
			discarded = append(discarded, c)
		} else {
			kept = append(kept, c)
		}
	}
	newHand, newDeck := poker.Replenish(deck, kept, len(discarded))
	return DiscardResult{
		Hand:              newHand,
		Deck:              newDeck,
		Discarded:         discarded,
		DiscardsRemaining: discardsRemaining - 1,
	}, nil
}

func BuyExtraDiscard(points int, discardsRemaining int, cost int) (int, int, error) {
	if points < cost {
		return points, discardsRemaining, reject("Not enough points for an extra discard (need %d, have %d)", cost, points)
	}
	return points - cost, discardsRemaining + 1, nil
}

// UpgradePermanentBonus levels up the bonus with the given id on a copy of bonuses.
func UpgradePermanentBonus(bonuses []bonus.PermanentBonus, id string, points int, baseCost int) ([]bonus.PermanentBonus, int, error) {
	i := bonus.Find(bonuses, id)
	if i < 0 {
		return bonuses, points, &NotFoundError{Kind: "permanent bonus", ID: id}
	}
	b := bonuses[i]
	if b.IsMaxed() {
		return bonuses, points, reject("%s is already at max level", b.Name)
	}
	cost := b.UpgradeCost(baseCost)
	if points < cost {
		return bonuses, points, reject("Not enough points to upgrade %s (need %d, have %d)", b.Name, cost, points)
	}
	upgraded := make([]bonus.PermanentBonus, len(bonuses))
	copy(upgraded, bonuses)
	upgraded[i].CurrentLevel++
	return upgraded, points - cost, nil
}

// WagerStake is the tier's fraction of current health, floored.
func WagerStake(tier rules.WagerTierRules, health int) int {
	return int(decimal.NewFromInt(int64(health)).Mul(decimal.NewFromFloat(tier.StakeFraction)).Floor().IntPart())
}

// PlaceWager deducts the stake from health. A zero amount means the tier's stake;
// any other amount has to match it.
func PlaceWager(r *rules.Rules, current rules.Wager, tier rules.WagerTier, amount int, health int) (rules.Wager, int, error) {
	if current.Active() {
		return current, health, reject("A wager of %d is already placed", current.Amount)
	}
	tierRules, ok := r.WagerTier(tier)
	if !ok {
		return current, health, reject("Unknown wager tier %s", tier)
	}
	stake := WagerStake(tierRules, health)
	if stake < 1 {
		return current, health, reject("Not enough health to wager")
	}
	if amount != 0 && amount != stake {
		return current, health, reject("A %s wager stakes %d health", tier, stake)
	}
	if stake >= health {
		return current, health, reject("Cannot wager all remaining health")
	}
	w := rules.Wager{Amount: stake, Tier: tier, Multiplier: tierRules.Multiplier}
	return w, health - stake, nil
}
