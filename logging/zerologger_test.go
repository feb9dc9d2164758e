package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestGetZeroLogger(t *testing.T) {
	t.Setenv("COLORIZE_LOG", "false")
	var buf bytes.Buffer
	logger := GetZeroLogger("game::engine", &buf)
	logger.Info().Str(SessionIDKey, "abc").Msg("started")
	assert.Contains(t, buf.String(), "started")
	assert.Contains(t, buf.String(), "sessionID=abc")
	assert.Contains(t, buf.String(), "game::engine")
}

func TestSetGlobalLevel(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.DebugLevel)
	assert.Equal(t, zerolog.DebugLevel, SetGlobalLevel("DEBUG"))
	assert.Equal(t, zerolog.InfoLevel, SetGlobalLevel("loud"))
}
