// internal/httpserver/routes_game.go
//
// HTTP routes for adversarial game sessions.
//   - POST /game/new   → start a game over the full solution list
//   - POST /game/guess → submit a guess; the engine keeps the largest bucket
//   - GET  /game/{id}  → current state of a held game (Authorization: Bearer)
//
// Every response carries a fresh session token, and every call must present
// a valid token whose subject is the game ID; the ID alone grants nothing.
// When the store does not know a game (restart, idle eviction) the token's
// guess history is replayed to rebuild it. Finished games are dropped from
// the store; their tokens still answer with 409.

package httpserver

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/absurdle/internal/absurdle"
	"github.com/robalobadob/absurdle/internal/game"
	"github.com/robalobadob/absurdle/internal/store"
)

// mountGame registers all /game routes.
func (s *Server) mountGame(r chi.Router) {
	r.Route("/game", func(r chi.Router) {
		r.Post("/new", s.handleNewGame)
		r.Post("/guess", s.handleGuess)
		r.Get("/{id}", s.handleGetGame)
	})
}

// -----------------------------------------------------------------------------
// /game/new

type newGameReq struct {
	MaxGuesses int `json:"maxGuesses" validate:"omitempty,min=1,max=64"`
}

type newGameRes struct {
	GameID     string `json:"gameId"`
	Token      string `json:"token"`
	WordLength int    `json:"wordLength"`
	MaxGuesses int    `json:"maxGuesses"`
	Remaining  int    `json:"remaining"`
}

// handleNewGame creates a game, stores it and returns its first token.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	budget := req.MaxGuesses
	if budget == 0 {
		budget = s.maxGuesses
	}

	g, err := game.New(s.vocab, budget)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		writeError(w, err)
		return
	}
	tok, err := s.tokens.issue(g)
	if err != nil {
		writeError(w, err)
		return
	}
	gamesStarted.Inc()
	log.Info().Str("gameId", g.ID).Int("maxGuesses", budget).Msg("game started")

	writeJSON(w, http.StatusOK, newGameRes{
		GameID:     g.ID,
		Token:      tok,
		WordLength: g.Cols,
		MaxGuesses: g.MaxGuesses,
		Remaining:  len(g.Candidates),
	})
}

// -----------------------------------------------------------------------------
// /game/guess

type guessReq struct {
	GameID string `json:"gameId" validate:"required"`
	Token  string `json:"token" validate:"required"`
	Guess  string `json:"guess" validate:"required"`
}

type guessRes struct {
	Guess       string           `json:"guess"`
	Pattern     absurdle.Pattern `json:"pattern"`
	State       game.State       `json:"state"` // playing | won | lost
	Remaining   int              `json:"remaining"`
	GuessesLeft int              `json:"guessesLeft"`
	Reveal      string           `json:"reveal,omitempty"`
	Token       string           `json:"token"`
}

// handleGuess applies a guess to a stored (or restored) game.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}
	claims, err := s.tokens.parseFor(req.Token, req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}

	var res guessRes
	apply := func(g *game.Game) error {
		start := time.Now()
		round, state, err := g.ApplyGuess(req.Guess)
		if err != nil {
			return err
		}
		partitionTotal.WithLabelValues("game").Inc()
		partitionDuration.WithLabelValues("game").Observe(time.Since(start).Seconds())
		keptBucketSize.Observe(float64(round.Remaining))

		tok, err := s.tokens.issue(g)
		if err != nil {
			return err
		}
		res = guessRes{
			Guess:       round.Guess,
			Pattern:     round.Pattern,
			State:       state,
			Remaining:   round.Remaining,
			GuessesLeft: g.GuessesLeft(),
			Reveal:      g.Reveal,
			Token:       tok,
		}
		return nil
	}

	err = s.store.Update(r.Context(), req.GameID, apply)
	if errors.Is(err, store.ErrNotFound) {
		err = s.restore(r, claims)
		if err == nil {
			err = s.store.Update(r.Context(), req.GameID, apply)
		}
	}
	if err != nil {
		log.Debug().Err(err).Str("gameId", req.GameID).Str("guess", req.Guess).Msg("guess rejected")
		writeError(w, err)
		return
	}

	log.Info().
		Str("gameId", req.GameID).
		Str("guess", res.Guess).
		Str("pattern", res.Pattern.String()).
		Int("remaining", res.Remaining).
		Str("state", string(res.State)).
		Msg("guess")

	if res.State != game.StatePlaying {
		gamesFinished.WithLabelValues(string(res.State)).Inc()
		if err := s.store.Delete(r.Context(), req.GameID); err != nil {
			log.Warn().Err(err).Str("gameId", req.GameID).Msg("drop finished game")
		}
	}
	writeJSON(w, http.StatusOK, res)
}

// restore rebuilds a game from verified claims and puts it back in the store.
func (s *Server) restore(r *http.Request, claims *gameClaims) error {
	gameID := claims.Subject
	g, err := game.Restore(gameID, s.vocab, claims.Vocabulary, claims.MaxGuesses, claims.Guesses)
	if err != nil {
		return err
	}
	if g.Finished {
		return game.ErrFinished
	}
	sessionsRestored.Inc()
	log.Info().Str("gameId", gameID).Int("rounds", len(g.Rounds)).Msg("game restored from token")
	return s.store.Save(r.Context(), g)
}

// -----------------------------------------------------------------------------
// GET /game/{id}

type roundRes struct {
	Guess     string           `json:"guess"`
	Pattern   absurdle.Pattern `json:"pattern"`
	Remaining int              `json:"remaining"`
}

type gameRes struct {
	GameID      string     `json:"gameId"`
	State       game.State `json:"state"`
	WordLength  int        `json:"wordLength"`
	MaxGuesses  int        `json:"maxGuesses"`
	GuessesLeft int        `json:"guessesLeft"`
	Remaining   int        `json:"remaining"`
	Rounds      []roundRes `json:"rounds"`
}

// handleGetGame reports a held game. The bearer token must name the game.
// Games that are not held (finished, evicted) answer 404; the next guess
// with a valid token rebuilds an evicted one.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := s.tokens.parseFor(bearerToken(r), id); err != nil {
		writeError(w, err)
		return
	}
	var res gameRes
	// Read under Update so a concurrent guess cannot interleave.
	err := s.store.Update(r.Context(), id, func(g *game.Game) error {
		res = gameRes{
			GameID:      g.ID,
			State:       g.State(),
			WordLength:  g.Cols,
			MaxGuesses:  g.MaxGuesses,
			GuessesLeft: g.GuessesLeft(),
			Remaining:   len(g.Candidates),
			Rounds:      make([]roundRes, 0, len(g.Rounds)),
		}
		for _, rd := range g.Rounds {
			res.Rounds = append(res.Rounds, roundRes{Guess: rd.Guess, Pattern: rd.Pattern, Remaining: rd.Remaining})
		}
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// bearerToken extracts the token from an "Authorization: Bearer" header.
func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}
