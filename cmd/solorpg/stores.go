package main

import (
	"github.com/pkg/errors"
	"voyager.com/solorpg/game"
	"voyager.com/solorpg/progression"
	"voyager.com/solorpg/util"
)

type stores struct {
	sessions    game.SessionStore
	progression progression.Store
	// set only for the sql backends
	leaderboard *progression.SQLStore
}

func (s *stores) Close() {
	if s.leaderboard != nil {
		if err := s.leaderboard.Close(); err != nil {
			mainLogger.Warn().Err(err).Msg("Could not close the database")
		}
	}
}

// openStores builds the session and progression stores for PERSIST_METHOD.
// The sql backends keep sessions in memory.
func openStores(method string) (*stores, error) {
	env := util.GameEnvironment
	mainLogger.Info().Str("persist", method).Msg("Opening stores")
	switch method {
	case util.PersistRedis:
		return &stores{
			sessions:    game.NewRedisSessionStore(env.GetRedisAddr(), env.GetRedisPW(), env.GetRedisDB()),
			progression: progression.NewRedisStore(env.GetRedisAddr(), env.GetRedisPW(), env.GetRedisDB()),
		}, nil
	case util.PersistSQLite, util.PersistPostgres:
		driver, dsn := progression.DriverSQLite, env.GetSQLitePath()
		if method == util.PersistPostgres {
			driver, dsn = progression.DriverPostgres, env.GetPostgresConnStr()
		}
		sqlStore, err := progression.NewSQLStore(driver, dsn)
		if err != nil {
			return nil, errors.Wrapf(err, "Unable to open %s progression store", method)
		}
		return &stores{
			sessions:    game.NewMemorySessionStore(),
			progression: sqlStore,
			leaderboard: sqlStore,
		}, nil
	}
	return &stores{
		sessions:    game.NewMemorySessionStore(),
		progression: progression.NewMemoryStore(),
	}, nil
}
