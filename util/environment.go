package util

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

var environmentLogger = log.With().Str("logger_name", "util::environment").Logger()

type gameEnvironment struct {
	PersistMethod string
	RedisHost     string
	RedisPort     string
	RedisPW       string
	RedisDB       string
	SQLitePath    string
	PostgresHost  string
	PostgresPort  string
	PostgresUser  string
	PostgresPW    string
	PostgresDB    string
	PlayerID      string
	GameSeed      string
	RulesFile     string
	LogLevel      string
}

// GameEnvironment is a helper object for accessing environment variables.
var GameEnvironment = &gameEnvironment{
	PersistMethod: "PERSIST_METHOD",
	RedisHost:     "REDIS_HOST",
	RedisPort:     "REDIS_PORT",
	RedisPW:       "REDIS_PW",
	RedisDB:       "REDIS_DB",
	SQLitePath:    "SQLITE_PATH",
	PostgresHost:  "POSTGRES_HOST",
	PostgresPort:  "POSTGRES_PORT",
	PostgresUser:  "POSTGRES_USER",
	PostgresPW:    "POSTGRES_PASSWORD",
	PostgresDB:    "POSTGRES_DB",
	PlayerID:      "PLAYER_ID",
	GameSeed:      "GAME_SEED",
	RulesFile:     "RULES_FILE",
	LogLevel:      "LOG_LEVEL",
}

const (
	PersistMemory   = "memory"
	PersistRedis    = "redis"
	PersistSQLite   = "sqlite"
	PersistPostgres = "postgres"
)

func (g *gameEnvironment) GetPersistMethod() string {
	v := strings.ToLower(os.Getenv(g.PersistMethod))
	switch v {
	case "":
		return PersistMemory
	case PersistMemory, PersistRedis, PersistSQLite, PersistPostgres:
		return v
	}
	msg := fmt.Sprintf("Invalid %s: %s", g.PersistMethod, v)
	environmentLogger.Error().Msg(msg)
	panic(msg)
}

func (g *gameEnvironment) GetRedisHost() string {
	host := os.Getenv(g.RedisHost)
	if host == "" {
		return "localhost"
	}
	return host
}

func (g *gameEnvironment) GetRedisPort() int {
	return g.getInt(g.RedisPort, 6379)
}

func (g *gameEnvironment) GetRedisPW() string {
	return os.Getenv(g.RedisPW)
}

func (g *gameEnvironment) GetRedisDB() int {
	return g.getInt(g.RedisDB, 0)
}

func (g *gameEnvironment) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", g.GetRedisHost(), g.GetRedisPort())
}

func (g *gameEnvironment) GetSQLitePath() string {
	path := os.Getenv(g.SQLitePath)
	if path == "" {
		return "solorpg.db"
	}
	return path
}

func (g *gameEnvironment) GetPostgresConnStr() string {
	host := os.Getenv(g.PostgresHost)
	if host == "" {
		host = "localhost"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		host,
		g.getInt(g.PostgresPort, 5432),
		os.Getenv(g.PostgresUser),
		os.Getenv(g.PostgresPW),
		os.Getenv(g.PostgresDB),
	)
}

func (g *gameEnvironment) GetPlayerID() string {
	id := os.Getenv(g.PlayerID)
	if id == "" {
		return "local"
	}
	return id
}

// GetGameSeed returns 0 when unset, meaning a random seed.
func (g *gameEnvironment) GetGameSeed() int64 {
	v := os.Getenv(g.GameSeed)
	if v == "" {
		return 0
	}
	seed, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		msg := fmt.Sprintf("Invalid %s %s", g.GameSeed, v)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return seed
}

func (g *gameEnvironment) GetRulesFile() string {
	return os.Getenv(g.RulesFile)
}

func (g *gameEnvironment) GetLogLevel() string {
	v := os.Getenv(g.LogLevel)
	if v == "" {
		return "info"
	}
	return strings.ToLower(v)
}

func (g *gameEnvironment) getInt(name string, defaultValue int) int {
	v := os.Getenv(name)
	if v == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		msg := fmt.Sprintf("Invalid %s %s", name, v)
		environmentLogger.Error().Msg(msg)
		panic(msg)
	}
	return n
}
