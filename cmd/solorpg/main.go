package main

import (
	"context"
	"flag"
	"os"

	"github.com/rs/zerolog/log"
	"voyager.com/solorpg/game"
	"voyager.com/solorpg/logging"
	"voyager.com/solorpg/progression"
	"voyager.com/solorpg/rules"
	"voyager.com/solorpg/test"
	"voyager.com/solorpg/util"
)

var (
	cmdArgs    arg
	mainLogger = log.With().Str("logger_name", "main::main").Logger()
)

type arg struct {
	gameScript string
	testName   string
	rulesFile  string
	seed       int64
	games      int
	resume     string
}

func init() {
	flag.StringVar(&cmdArgs.gameScript, "game-script", "", "Runs the game script file or every script under the directory")
	flag.StringVar(&cmdArgs.testName, "testname", "", "Runs only the scripts whose file name contains this")
	flag.StringVar(&cmdArgs.rulesFile, "rules", "", "Rules YAML file. Defaults to RULES_FILE or the built-in rules.")
	flag.Int64Var(&cmdArgs.seed, "seed", 0, "Random seed. Defaults to GAME_SEED or a random seed.")
	flag.IntVar(&cmdArgs.games, "games", 1, "Number of games to autoplay")
	flag.StringVar(&cmdArgs.resume, "resume", "", "Session id to resume before autoplaying")
	flag.Parse()
}

func main() {
	os.Exit(run())
}

func run() int {
	logging.SetGlobalLevel(util.GameEnvironment.GetLogLevel())

	if cmdArgs.gameScript != "" {
		if err := test.RunGameScriptTests(cmdArgs.gameScript, cmdArgs.testName); err != nil {
			mainLogger.Error().Err(err).Msg("Game scripts failed")
			return 1
		}
		return 0
	}

	r, err := loadRules()
	if err != nil {
		mainLogger.Error().Err(err).Msg("Unable to load rules")
		return 1
	}
	seed := cmdArgs.seed
	if seed == 0 {
		seed = util.GameEnvironment.GetGameSeed()
	}

	stores, err := openStores(util.GameEnvironment.GetPersistMethod())
	if err != nil {
		mainLogger.Error().Err(err).Msg("Unable to open stores")
		return 1
	}
	defer stores.Close()

	ctx := context.Background()
	playerID := util.GameEnvironment.GetPlayerID()
	tracker := progression.NewTracker(stores.progression, playerID, util.MaxInt(cmdArgs.games, 1))
	tracker.Start(ctx)

	engine, err := game.NewEngine(game.EngineConfig{
		Rules:    r,
		Seed:     seed,
		Store:    stores.sessions,
		Reporter: tracker,
	})
	if err != nil {
		mainLogger.Error().Err(err).Msg("Unable to create the game engine")
		tracker.Close()
		return 1
	}
	if cmdArgs.resume != "" {
		if _, restored := engine.Restore(ctx, cmdArgs.resume); restored {
			mainLogger.Info().Str(logging.SessionIDKey, cmdArgs.resume).Msg("Resuming saved session")
		}
	}

	player := game.NewAutoPlayer(engine)
	results := make([]game.Session, 0, cmdArgs.games)
	for i := 0; i < cmdArgs.games; i++ {
		if i > 0 {
			if _, err := engine.Dispatch(game.InitializeGame{}); err != nil {
				mainLogger.Error().Err(err).Msg("Unable to start the next game")
				break
			}
		}
		s, err := player.PlayGame()
		if err != nil {
			mainLogger.Error().Err(err).Int("game", i+1).Msg("Autoplay failed")
			break
		}
		results = append(results, s)
		if err := engine.Save(ctx); err != nil {
			mainLogger.Warn().Err(err).Msg("Could not save the session")
		}
	}
	tracker.Close()

	printGames(results)
	printProgression(tracker.State(), tracker.Unlocked())
	if stores.leaderboard != nil {
		entries, err := stores.leaderboard.Leaderboard(ctx, 10)
		if err != nil {
			mainLogger.Warn().Err(err).Msg("Could not read the leaderboard")
		} else {
			printLeaderboard(entries)
		}
	}
	if len(results) < cmdArgs.games {
		return 1
	}
	return 0
}

func loadRules() (*rules.Rules, error) {
	path := cmdArgs.rulesFile
	if path == "" {
		path = util.GameEnvironment.GetRulesFile()
	}
	if path == "" {
		return rules.Default(), nil
	}
	return rules.Load(path)
}
