package test

import (
	"fmt"
	"strings"

	"github.com/google/go-cmp/cmp"
	"voyager.com/solorpg/game"
	"voyager.com/solorpg/gamescript"
	"voyager.com/solorpg/poker"
	"voyager.com/solorpg/progression"
)

type reportCollector struct {
	reports []progression.CompletionReport
}

func (r *reportCollector) Report(report progression.CompletionReport) {
	r.reports = append(r.reports, report)
}

type TestGameScript struct {
	script   *gamescript.Script
	filename string
	result   *ScriptTestResult
	engine   *game.Engine
	reports  *reportCollector
}

func (g *TestGameScript) run() error {
	err := g.configure()
	if err != nil {
		return err
	}
	for i, step := range g.script.Steps {
		err = g.runStep(i+1, step)
		if err != nil {
			return err
		}
	}
	return nil
}

func (g *TestGameScript) configure() error {
	r, err := g.script.GameRules()
	if err != nil {
		return err
	}
	g.reports = &reportCollector{}
	g.engine, err = game.NewEngine(game.EngineConfig{
		Rules:    r,
		Seed:     g.script.Seed,
		Store:    game.NewMemorySessionStore(),
		Reporter: g.reports,
	})
	return err
}

// runStep stops the script on setup or dispatch problems. Verification failures
// are collected so one run reports all of them.
func (g *TestGameScript) runStep(stepNum int, step gamescript.Step) error {
	if step.Setup != nil {
		s, err := step.Setup.Apply(g.engine.Session())
		if err != nil {
			return fmt.Errorf("[step %d] setup failed: %v", stepNum, err)
		}
		if err := g.engine.Replace(s); err != nil {
			return fmt.Errorf("[step %d] setup produced an invalid session: %v", stepNum, err)
		}
	}
	if step.Action != nil {
		action, err := step.Action.GameAction()
		if err != nil {
			return fmt.Errorf("[step %d] %v", stepNum, err)
		}
		_, err = g.engine.Dispatch(action)
		if step.ExpectError && err == nil {
			g.result.addError(fmt.Errorf("[step %d] %s: expected an error", stepNum, step.Action))
		} else if !step.ExpectError && err != nil {
			return fmt.Errorf("[step %d] %s failed: %v", stepNum, step.Action, err)
		}
	}
	if step.Verify != nil {
		g.verify(stepNum, step.Verify)
	}
	return nil
}

func (g *TestGameScript) verify(stepNum int, v *gamescript.Verify) {
	s := g.engine.Session()
	where := fmt.Sprintf("step %d", stepNum)

	checkInt := func(name string, expected *int, actual int) {
		if expected != nil && *expected != actual {
			g.result.addError(fmt.Errorf("[%s] Expected %s %d, actual %d", where, name, *expected, actual))
		}
	}
	checkBool := func(name string, expected *bool, actual bool) {
		if expected != nil && *expected != actual {
			g.result.addError(fmt.Errorf("[%s] Expected %s %v, actual %v", where, name, *expected, actual))
		}
	}

	if v.Status != nil && *v.Status != string(s.Status) {
		g.result.addError(fmt.Errorf("[%s] Expected status %s, actual %s", where, *v.Status, s.Status))
	}
	if v.Rank != nil {
		expected, _ := poker.ParseHandRank(*v.Rank)
		if s.LastScore == nil {
			g.result.addError(fmt.Errorf("[%s] Expected rank %s, but no hand was scored", where, expected))
		} else if s.LastScore.Rank != expected {
			g.result.addError(fmt.Errorf("[%s] Expected rank %s, actual %s", where, expected, s.LastScore.Rank))
		}
	}
	if v.MessageContains != "" && !strings.Contains(s.Message, v.MessageContains) {
		g.result.addError(fmt.Errorf("[%s] Expected message to contain %q, actual %q", where, v.MessageContains, s.Message))
	}
	if v.PointsRange != nil {
		if v.PointsRange.Gte != nil && s.Points < *v.PointsRange.Gte {
			g.result.addError(fmt.Errorf("[%s] Expected points >= %d, actual %d", where, *v.PointsRange.Gte, s.Points))
		}
		if v.PointsRange.Lte != nil && s.Points > *v.PointsRange.Lte {
			g.result.addError(fmt.Errorf("[%s] Expected points <= %d, actual %d", where, *v.PointsRange.Lte, s.Points))
		}
	}
	if v.Selected != nil {
		expected := poker.CardIDs(poker.MustParseCards(v.Selected...))
		if !cmp.Equal(expected, s.Selected) {
			g.result.addError(fmt.Errorf("[%s] Selected cards mismatch: %s", where, cmp.Diff(expected, s.Selected)))
		}
	}

	checkBool("rejected", v.Rejected, s.Rejected)
	checkInt("points", v.Points, s.Points)
	checkInt("health", v.Health, s.Health)
	checkInt("round", v.Round, s.Round)
	checkInt("streak", v.Streak, s.Streak)
	checkInt("discards remaining", v.DiscardsRemaining, s.DiscardsRemaining)
	checkInt("hand size", v.HandSize, len(s.Hand))
	checkInt("wager", v.Wager, s.Wager.Amount)
	checkInt("owned bonus cards", v.OwnedBonusCards, len(s.OwnedBonusCards))
	checkInt("active bonus cards", v.ActiveBonusCards, len(s.ActiveBonusIDs))
	checkInt("shop size", v.ShopSize, len(s.Shop))
	checkInt("games played", v.GamesPlayed, s.GamesPlayed)
	if v.IsWin != nil {
		if len(g.reports.reports) == 0 {
			g.result.addError(fmt.Errorf("[%s] Expected a completion report", where))
		} else {
			last := g.reports.reports[len(g.reports.reports)-1]
			checkBool("is-win", v.IsWin, last.IsWin)
		}
	}
}
