package util

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvironmentDefaults(t *testing.T) {
	for _, name := range []string{"PERSIST_METHOD", "REDIS_HOST", "REDIS_PORT", "GAME_SEED", "LOG_LEVEL"} {
		os.Unsetenv(name)
	}
	assert.Equal(t, PersistMemory, GameEnvironment.GetPersistMethod())
	assert.Equal(t, "localhost:6379", GameEnvironment.GetRedisAddr())
	assert.Equal(t, int64(0), GameEnvironment.GetGameSeed())
	assert.Equal(t, "info", GameEnvironment.GetLogLevel())
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("PERSIST_METHOD", "SQLite")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("GAME_SEED", "42")
	assert.Equal(t, PersistSQLite, GameEnvironment.GetPersistMethod())
	assert.Equal(t, 6380, GameEnvironment.GetRedisPort())
	assert.Equal(t, int64(42), GameEnvironment.GetGameSeed())

	t.Setenv("PERSIST_METHOD", "floppy")
	assert.Panics(t, func() { GameEnvironment.GetPersistMethod() })
}
