package gamescript

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"voyager.com/solorpg/game"
	"voyager.com/solorpg/poker"
	"voyager.com/solorpg/rules"
)

func getIntPointer(v int) *int {
	return &v
}

func getStringPointer(v string) *string {
	return &v
}

func TestReadGameScript(t *testing.T) {
	script, err := ReadGameScript("test_scripts/script1.yaml")
	if err != nil {
		t.Fatalf("ReadGameScript returned error [%s]", err)
	}
	if script == nil {
		t.Fatal("ReadGameScript returned nil data")
	}

	if script.Description != "Flush with a safe wager" {
		t.Errorf("Description = %q", script.Description)
	}
	if script.Seed != 11 {
		t.Errorf("Seed = %d, expected 11", script.Seed)
	}
	if len(script.Steps) != 8 {
		t.Fatalf("Expected 8 steps, got %d", len(script.Steps))
	}

	second := script.Steps[1]
	expectedSetup := &Setup{
		Hand:   []string{"2s", "4s", "6s", "8s", "10s", "Kd", "3h", "9c"},
		Points: getIntPointer(100),
	}
	if !cmp.Equal(second.Setup, expectedSetup) {
		t.Errorf("Setup mismatch: %s", cmp.Diff(expectedSetup, second.Setup))
	}
	expectedAction := &Action{Name: "placeBet", Args: []string{"safe"}}
	if !cmp.Equal(second.Action, expectedAction) {
		t.Errorf("Action mismatch: %s", cmp.Diff(expectedAction, second.Action))
	}
	expectedVerify := &Verify{Health: getIntPointer(90), Wager: getIntPointer(10)}
	if !cmp.Equal(second.Verify, expectedVerify) {
		t.Errorf("Verify mismatch: %s", cmp.Diff(expectedVerify, second.Verify))
	}

	last := script.Steps[7]
	if !cmp.Equal(last.Verify.Rank, getStringPointer("Flush")) {
		t.Errorf("Rank = %v", last.Verify.Rank)
	}
	if last.Verify.PointsRange == nil || !cmp.Equal(last.Verify.PointsRange.Gte, getIntPointer(115)) {
		t.Errorf("points-range not parsed: %+v", last.Verify.PointsRange)
	}
}

func TestGameRules(t *testing.T) {
	script, err := ReadGameScript("test_scripts/script1.yaml")
	if err != nil {
		t.Fatal(err)
	}
	r, err := script.GameRules()
	if err != nil {
		t.Fatal(err)
	}
	if r.MaxRounds != 2 || r.DiscardCost != 40 {
		t.Errorf("overrides not applied: max-rounds %d discard-cost %d", r.MaxRounds, r.DiscardCost)
	}
	if r.StartingHealth != rules.Default().StartingHealth {
		t.Errorf("defaults not kept: starting-health %d", r.StartingHealth)
	}

	empty, err := ParseGameScript([]byte("steps:\n  - action: startGame\n"))
	if err != nil {
		t.Fatal(err)
	}
	r, err = empty.GameRules()
	if err != nil {
		t.Fatal(err)
	}
	if !cmp.Equal(r.MaxRounds, 20) {
		t.Errorf("MaxRounds = %d, expected default", r.MaxRounds)
	}
}

func TestActionExpressions(t *testing.T) {
	testCases := []struct {
		yaml     string
		expected game.Action
	}{
		{yaml: "action: playHand", expected: game.PlayHand{}},
		{yaml: "action: selectCard, As", expected: game.SelectCard{CardID: poker.CardID(poker.Ace, poker.Spades)}},
		{yaml: "action: discardCards, 2h, Td", expected: game.DiscardCards{CardIDs: []string{
			poker.CardID(poker.Two, poker.Hearts),
			poker.CardID(poker.Ten, poker.Diamonds),
		}}},
		{yaml: "action: buyShopCard, 2", expected: game.BuyShopCard{Index: 2}},
		{yaml: "action: toggleBonusCard, 0", expected: game.ToggleBonusCard{Index: 0}},
		{yaml: "action: placeBet, all-in", expected: game.PlaceBet{Tier: rules.WagerAllIn}},
		{yaml: "action: placeBet, risky, 25", expected: game.PlaceBet{Tier: rules.WagerRisky, Amount: 25}},
		{yaml: "action: upgradePermanentBonus, pair-master", expected: game.UpgradePermanentBonus{BonusID: "pair-master"}},
		{yaml: "action: sortHand, suit", expected: game.SortHand{Method: poker.SortSuit}},
		{yaml: "action: improveCard, Qc", expected: game.ImproveCard{CardID: poker.CardID(poker.Queen, poker.Clubs)}},
	}
	for _, tc := range testCases {
		script, err := ParseGameScript([]byte("steps:\n  - " + tc.yaml + "\n"))
		if err != nil {
			t.Errorf("%s: %s", tc.yaml, err)
			continue
		}
		actual, err := script.Steps[0].Action.GameAction()
		if err != nil {
			t.Errorf("%s: %s", tc.yaml, err)
			continue
		}
		if !cmp.Equal(actual, tc.expected) {
			t.Errorf("%s: %s", tc.yaml, cmp.Diff(tc.expected, actual))
		}
	}
}

func TestInvalidScripts(t *testing.T) {
	testCases := []string{
		"steps:\n  - action: fold\n",
		"steps:\n  - action: selectCard\n",
		"steps:\n  - action: selectCard, Zz\n",
		"steps:\n  - action: buyShopCard, first\n",
		"steps:\n  - action: placeBet, huge\n",
		"steps:\n  - setup:\n      hand: [As, As]\n",
		"steps:\n  - verify:\n      rank: Royal Mess\n",
		"steps:\n  - expect-error: true\n",
		"steps:\n  - {}\n",
	}
	for _, tc := range testCases {
		if _, err := ParseGameScript([]byte(tc)); err == nil {
			t.Errorf("expected an error for script:\n%s", tc)
		}
	}
}

func TestSetupApply(t *testing.T) {
	env := game.NewEnv(rules.Default(), poker.NewRandGen(3))
	s, err := game.Reduce(game.Session{}, game.InitializeGame{}, env)
	if err != nil {
		t.Fatal(err)
	}
	s, err = game.Reduce(s, game.StartGame{}, env)
	if err != nil {
		t.Fatal(err)
	}

	setup := Setup{
		Hand:       []string{"As", "Ks", "Qs"},
		Health:     getIntPointer(40),
		BonusCards: []string{"2h", "3h"},
	}
	next, err := setup.Apply(s)
	if err != nil {
		t.Fatal(err)
	}
	if !cmp.Equal(poker.CardIDs(next.Hand), poker.CardIDs(poker.MustParseCards("As", "Ks", "Qs"))) {
		t.Errorf("hand = %v", poker.CardsToString(next.Hand))
	}
	if len(next.AllCards()) != poker.DeckSize {
		t.Errorf("cards in play = %d, expected %d", len(next.AllCards()), poker.DeckSize)
	}
	if next.Health != 40 || len(next.OwnedBonusCards) != 2 {
		t.Errorf("health %d owned %d", next.Health, len(next.OwnedBonusCards))
	}
	if err := next.Validate(); err != nil {
		t.Error(err)
	}
	if s.Health != 100 {
		t.Error("Apply modified its input")
	}
}
