package main

import (
	"fmt"
	"sort"

	"github.com/pterm/pterm"
	"voyager.com/solorpg/game"
	"voyager.com/solorpg/progression"
)

func printGames(results []game.Session) {
	pterm.DefaultSection.Println("Games")
	if len(results) == 0 {
		pterm.Warning.Println("No game finished")
		return
	}
	data := pterm.TableData{{"Game", "Result", "Points", "Health", "Rounds", "Cards", "Best hand"}}
	for i, s := range results {
		result := pterm.LightRed("Lost")
		if s.Report != nil && s.Report.IsWin {
			result = pterm.LightGreen("Won")
		}
		data = append(data, []string{
			fmt.Sprint(i + 1),
			result,
			fmt.Sprint(s.Points),
			fmt.Sprintf("%d/%d", s.Health, s.MaxHealth),
			fmt.Sprint(s.Round),
			fmt.Sprint(s.Stats.CardsPlayed),
			mostPlayed(s.Stats.HandsPlayed),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		mainLogger.Warn().Err(err).Msg("Could not render the games table")
	}
}

func mostPlayed(counts map[string]int) string {
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})
	if len(names) == 0 {
		return "-"
	}
	return fmt.Sprintf("%s x%d", names[0], counts[names[0]])
}

func printProgression(state *progression.State, unlocked []string) {
	pterm.DefaultSection.Println("Progression")
	level := state.PlayerLevel
	stats := state.Statistics
	box := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	box.WithTitle(pterm.LightYellow("|PLAYER|")).WithTitleTopCenter().Println(
		pterm.Sprintf("Level %d (%d/%d xp)\nGames %d, won %d\nHighest score %d\nAverage points %.1f",
			level.Level, level.CurrentXP, level.XPToNextLevel,
			stats.GamesPlayed, stats.GamesWon,
			stats.HighestScore,
			stats.AveragePointsPerGame))
	for _, id := range unlocked {
		pterm.Success.Printfln("Achievement unlocked: %s", id)
	}
}

func printLeaderboard(entries []progression.LeaderboardEntry) {
	pterm.DefaultSection.Println("Leaderboard")
	data := pterm.TableData{{"Player", "Level", "Highest score", "Games"}}
	for _, e := range entries {
		data = append(data, []string{e.PlayerID, fmt.Sprint(e.Level), fmt.Sprint(e.HighestScore), fmt.Sprint(e.GamesPlayed)})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		mainLogger.Warn().Err(err).Msg("Could not render the leaderboard")
	}
}
