// internal/config/config.go
//
// Environment configuration shared by every command.
// .env files are loaded by main (godotenv) before Load runs.
//
// Environment variables:
//   PORT                  HTTP port                       (5175)
//   LOG_LEVEL             zerolog level                   (info)
//   MAX_GUESSES           guess budget per game, >= 1     (8)
//   WORDS_SOLUTIONS_FILE  solution list path              (embedded)
//   WORDS_GUESSES_FILE    extra guesses path              (embedded)
//   TOKEN_SECRET          HS256 key for session tokens    (dev_secret_change_me)
//   TOKEN_TTL             session token lifetime          (24h)
//   CLIENT_ORIGIN         CORS origin                     (http://localhost:5173)
//   SHUTDOWN_TIMEOUT      graceful shutdown bound         (10s)
//   SESSION_IDLE_TTL      evict games idle this long      (30m)
//   SESSION_SWEEP         idle sweep interval             (1m)

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const defaultTokenSecret = "dev_secret_change_me"

// Config holds resolved settings.
type Config struct {
	Port            string
	LogLevel        string
	MaxGuesses      int
	SolutionsFile   string
	GuessesFile     string
	TokenSecret     string
	TokenTTL        time.Duration
	ClientOrigin    string
	ShutdownTimeout time.Duration
	SessionIdleTTL  time.Duration
	SessionSweep    time.Duration
}

// Load reads the environment, applying defaults for unset keys.
func Load() (Config, error) {
	cfg := Config{
		Port:          getEnv("PORT", "5175"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		SolutionsFile: os.Getenv("WORDS_SOLUTIONS_FILE"),
		GuessesFile:   os.Getenv("WORDS_GUESSES_FILE"),
		TokenSecret:   getEnv("TOKEN_SECRET", defaultTokenSecret),
		ClientOrigin:  getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
	}

	var err error
	if cfg.MaxGuesses, err = envInt("MAX_GUESSES", 8); err != nil {
		return Config{}, err
	}
	if cfg.TokenTTL, err = envDuration("TOKEN_TTL", 24*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownTimeout, err = envDuration("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.SessionIdleTTL, err = envDuration("SESSION_IDLE_TTL", 30*time.Minute); err != nil {
		return Config{}, err
	}
	if cfg.SessionSweep, err = envDuration("SESSION_SWEEP", time.Minute); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// Validate checks cross-field constraints. Commands call it again after
// applying flag overrides.
func (c Config) Validate() error {
	if c.MaxGuesses < 1 {
		return fmt.Errorf("config: MAX_GUESSES must be at least 1, got %d", c.MaxGuesses)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("config: TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}
	if c.SessionIdleTTL <= 0 || c.SessionSweep <= 0 {
		return fmt.Errorf("config: SESSION_IDLE_TTL and SESSION_SWEEP must be positive, got %s and %s",
			c.SessionIdleTTL, c.SessionSweep)
	}
	return nil
}

// DevSecret reports whether the token secret is the built-in default.
func (c Config) DevSecret() bool { return c.TokenSecret == defaultTokenSecret }

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", k, err)
	}
	return n, nil
}

func envDuration(k string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", k, err)
	}
	return d, nil
}
