// internal/httpserver/server.go
//
// HTTP server wiring for the absurdle backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs,
//     request logging).
//   - Public endpoints: "/", "/health", "/metrics", "/debug/words".
//   - Game endpoints: POST /game/new, POST /game/guess, GET /game/{id}
//     (routes_game.go).
//   - Stateless engine endpoint: POST /partition (routes_partition.go).
//
// Notes:
//   - Sessions live in the store; the signed token returned with every
//     response lets a game be rebuilt when the store no longer has it.
//   - Errors are JSON bodies {"error": "..."}; statusFor maps domain errors.

package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/absurdle/internal/absurdle"
	"github.com/robalobadob/absurdle/internal/game"
	"github.com/robalobadob/absurdle/internal/store"
	"github.com/robalobadob/absurdle/internal/words"
)

// Options configures a Server.
type Options struct {
	Store        store.Store
	Vocabulary   *words.Vocabulary
	MaxGuesses   int           // default budget for new games
	TokenSecret  string        // HS256 key for session tokens
	TokenTTL     time.Duration // session token lifetime
	ClientOrigin string        // CORS origin
}

// Server bundles router, game store, vocabulary and token issuer.
type Server struct {
	r          *chi.Mux
	store      store.Store
	vocab      *words.Vocabulary
	maxGuesses int
	tokens     *tokenIssuer
}

// validate checks request payloads.
var validate = validator.New()

// New constructs a Server, installs middleware, and registers routes.
func New(opts Options) *Server {
	s := &Server{
		r:          chi.NewRouter(),
		store:      opts.Store,
		vocab:      opts.Vocabulary,
		maxGuesses: opts.MaxGuesses,
		tokens:     newTokenIssuer(opts.TokenSecret, opts.TokenTTL),
	}
	if s.maxGuesses < 1 {
		s.maxGuesses = game.DefaultMaxGuesses
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)                   // zerolog access log
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(opts.ClientOrigin))         // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"absurdle","endpoints":["/health","/metrics","POST /game/new","POST /game/guess","GET /game/{id}","POST /partition"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Handle("/metrics", promhttp.Handler())

	// Debug: word list counts
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		sol, allowed := s.vocab.Stats()
		writeJSON(w, http.StatusOK, map[string]any{
			"solutions":   sol,
			"allowed":     allowed,
			"length":      s.vocab.Length(),
			"fingerprint": s.vocab.Fingerprint(),
		})
	})

	s.mountGame(s.r)
	s.mountPartition(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Router exposes the internal router (mounted by the serve command and tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requestLogger writes one debug line per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Str("requestId", chimw.GetReqID(r.Context())).
			Msg("request")
	})
}

// ------------------------------- helpers -----------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps err to a status code and writes {"error": "..."}.
// Unexpected errors are logged and hidden behind a generic message.
func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Msg("request failed")
		msg = "internal_error"
	}
	writeJSON(w, status, map[string]string{"error": msg})
}

// errBadRequest wraps payload decoding and validation failures.
var errBadRequest = errors.New("bad request")

func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, game.ErrInvalidGuess),
		errors.Is(err, game.ErrNotInWordList),
		errors.Is(err, game.ErrBadBudget),
		errors.Is(err, absurdle.ErrLengthMismatch),
		errors.Is(err, absurdle.ErrEmptyCandidates):
		return http.StatusBadRequest
	case errors.Is(err, errBadToken):
		return http.StatusUnauthorized
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, game.ErrFinished), errors.Is(err, game.ErrVocabularyChanged):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// decode reads a JSON body into v and validates it. An empty body leaves v
// at its zero value.
func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}
