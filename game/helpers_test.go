package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"voyager.com/solorpg/poker"
	"voyager.com/solorpg/progression"
	"voyager.com/solorpg/rules"
)

func testEnv(r *rules.Rules) Env {
	if r == nil {
		r = rules.Default()
	}
	return NewEnv(r, poker.NewRandGen(42))
}

func reduce(t *testing.T, s Session, a Action, env Env) Session {
	t.Helper()
	next, err := Reduce(s, a, env)
	require.NoError(t, err)
	return next
}

func newGame(t *testing.T, env Env) Session {
	t.Helper()
	s := reduce(t, Session{}, InitializeGame{}, env)
	return reduce(t, s, StartGame{}, env)
}

// withHand replaces the hand with the given cards and takes them out of the deck.
func withHand(s Session, cards ...string) Session {
	hand := poker.MustParseCards(cards...)
	remove := make(map[string]bool, len(hand))
	for _, c := range hand {
		remove[c.ID] = true
	}
	var deck []poker.PlayingCard
	for _, c := range append(s.Deck, s.Hand...) {
		if !remove[c.ID] {
			deck = append(deck, c)
		}
	}
	s.Deck = deck
	s.Hand = hand
	s.Selected = nil
	return s
}

func selectAll(t *testing.T, s Session, env Env, ids ...string) Session {
	t.Helper()
	for _, id := range ids {
		s = reduce(t, s, SelectCard{CardID: id}, env)
		require.False(t, s.Rejected, s.Message)
	}
	return s
}

func cardIDs(cards ...string) []string {
	return poker.CardIDs(poker.MustParseCards(cards...))
}

type countingReporter struct {
	reports []progression.CompletionReport
}

func (c *countingReporter) Report(report progression.CompletionReport) {
	c.reports = append(c.reports, report)
}
