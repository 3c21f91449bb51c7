// main.go
//
// absurdle command line.
//   - serve:     HTTP API for adversarial game sessions
//   - play:      terminal game
//   - partition: run the engine once and print the buckets
//
// Environment is read from .env (godotenv) and internal/config before any
// command runs. Logs go to stderr through the global zerolog logger.

package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/absurdle/internal/config"
	"github.com/robalobadob/absurdle/internal/words"
)

// cfg is resolved once per invocation in setup.
var cfg config.Config

var (
	flagSolutions string
	flagGuesses   string
	flagLogLevel  string
)

var rootCmd = &cobra.Command{
	Use:               "absurdle",
	Short:             "Adversarial Wordle: the answer dodges every guess",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagSolutions, "solutions", "",
		"solution word list (overrides WORDS_SOLUTIONS_FILE)")
	rootCmd.PersistentFlags().StringVar(&flagGuesses, "guesses", "",
		"extra guess word list (overrides WORDS_GUESSES_FILE)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "",
		"zerolog level (overrides LOG_LEVEL)")
}

func main() {
	_ = godotenv.Load()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("absurdle exited")
	}
}

// setup resolves configuration and the logger for every subcommand.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfg, err = config.Load(); err != nil {
		return err
	}
	if flagSolutions != "" {
		cfg.SolutionsFile = flagSolutions
	}
	if flagGuesses != "" {
		cfg.GuessesFile = flagGuesses
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}

	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	} else {
		log.Warn().Str("level", cfg.LogLevel).Msg("unknown log level, keeping default")
	}
	return nil
}

// loadVocabulary loads the configured word lists.
func loadVocabulary() (*words.Vocabulary, error) {
	v, err := words.Load(cfg.SolutionsFile, cfg.GuessesFile)
	if err != nil {
		return nil, err
	}
	sol, allowed := v.Stats()
	log.Debug().
		Int("solutions", sol).
		Int("allowed", allowed).
		Int("length", v.Length()).
		Str("fingerprint", v.Fingerprint()).
		Msg("word lists loaded")
	return v, nil
}
