package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/absurdle/internal/httpserver"
	"github.com/robalobadob/absurdle/internal/store"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Serves game sessions and the stateless partition endpoint.

Endpoints:
  POST /game/new     start a game
  POST /game/guess   submit a guess (token required)
  GET  /game/{id}    read a held game (Bearer token required)
  POST /partition    partition a candidate list for one guess
  GET  /health, /metrics, /debug/words`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "listen port (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	if servePort != "" {
		cfg.Port = servePort
	}
	vocab, err := loadVocabulary()
	if err != nil {
		return err
	}
	if cfg.DevSecret() {
		log.Warn().Msg("TOKEN_SECRET not set, using the development secret")
	}

	games := store.NewMemoryStore()
	srv := httpserver.New(httpserver.Options{
		Store:        games,
		Vocabulary:   vocab,
		MaxGuesses:   cfg.MaxGuesses,
		TokenSecret:  cfg.TokenSecret,
		TokenTTL:     cfg.TokenTTL,
		ClientOrigin: cfg.ClientOrigin,
	})
	httpSrv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Int("solutions", len(vocab.Solutions())).Msg("starting absurdle server")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return store.RunJanitor(gctx, games, cfg.SessionSweep, cfg.SessionIdleTTL)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Dur("timeout", cfg.ShutdownTimeout).Msg("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return httpSrv.Shutdown(sctx)
	})
	return g.Wait()
}
