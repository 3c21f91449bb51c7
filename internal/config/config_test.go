package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"PORT", "LOG_LEVEL", "MAX_GUESSES", "WORDS_SOLUTIONS_FILE",
		"WORDS_GUESSES_FILE", "TOKEN_SECRET", "TOKEN_TTL", "CLIENT_ORIGIN", "SHUTDOWN_TIMEOUT",
		"SESSION_IDLE_TTL", "SESSION_SWEEP"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5175", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8, cfg.MaxGuesses)
	assert.Empty(t, cfg.SolutionsFile)
	assert.Empty(t, cfg.GuessesFile)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 30*time.Minute, cfg.SessionIdleTTL)
	assert.Equal(t, time.Minute, cfg.SessionSweep)
	assert.Equal(t, "http://localhost:5173", cfg.ClientOrigin)
	assert.True(t, cfg.DevSecret())
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("MAX_GUESSES", "6")
	t.Setenv("TOKEN_SECRET", "s3cret")
	t.Setenv("TOKEN_TTL", "90m")
	t.Setenv("WORDS_SOLUTIONS_FILE", "/tmp/sol.txt")
	t.Setenv("SESSION_IDLE_TTL", "2h")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 6, cfg.MaxGuesses)
	assert.Equal(t, 90*time.Minute, cfg.TokenTTL)
	assert.Equal(t, "/tmp/sol.txt", cfg.SolutionsFile)
	assert.Equal(t, 2*time.Hour, cfg.SessionIdleTTL)
	assert.False(t, cfg.DevSecret())
}

func TestLoad_Errors(t *testing.T) {
	cases := map[string]string{
		"MAX_GUESSES":      "eight",
		"TOKEN_TTL":        "soon",
		"SHUTDOWN_TIMEOUT": "10",
		"SESSION_IDLE_TTL": "0s",
		"SESSION_SWEEP":    "-1m",
	}
	for k, v := range cases {
		t.Run(k, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(k, v)
			_, err := Load()
			assert.Error(t, err)
		})
	}

	clearEnv(t)
	t.Setenv("MAX_GUESSES", "0")
	_, err := Load()
	assert.ErrorContains(t, err, "MAX_GUESSES")
}
