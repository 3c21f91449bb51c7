// internal/game/engine.go
//
// Game loop for a single adversarial session.
// Responsibilities:
//   - Create games over a dictionary with a configurable guess budget.
//   - Validate guesses (finished, length, a–z, allowed list).
//   - Narrow the candidate set through absurdle.Partition each round.
//   - Track state transitions: playing → won/lost.
//   - Rebuild a session from its guess history (Restore).
//
// Win: the kept pattern is all green, so the set is exactly {guess}.
// Loss: the budget is spent first; Reveal is the first remaining candidate.

package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/robalobadob/absurdle/internal/absurdle"
	"github.com/robalobadob/absurdle/internal/words"
)

// DefaultMaxGuesses is the guess budget when none is configured.
const DefaultMaxGuesses = 8

var (
	ErrFinished          = errors.New("game finished")
	ErrInvalidGuess      = errors.New("invalid guess")
	ErrNotInWordList     = errors.New("not in word list")
	ErrBadBudget         = errors.New("max guesses must be at least 1")
	ErrVocabularyChanged = errors.New("word list changed since the game started")
)

// New constructs a game with a fresh ID over the full solution list.
func New(dict Dictionary, maxGuesses int) (*Game, error) {
	return NewWithID(uuid.NewString(), dict, maxGuesses)
}

// NewWithID is New with a caller-chosen ID.
func NewWithID(id string, dict Dictionary, maxGuesses int) (*Game, error) {
	if maxGuesses < 1 {
		return nil, ErrBadBudget
	}
	return &Game{
		ID:         id,
		Vocabulary: dict.Fingerprint(),
		MaxGuesses: maxGuesses,
		Cols:       dict.Length(),
		Candidates: dict.Solutions(),
		Rounds:     []Round{},
		dict:       dict,
	}, nil
}

// Restore rebuilds a game by replaying guesses in order. The fingerprint
// must match dict, otherwise replay could pick different buckets.
func Restore(id string, dict Dictionary, fingerprint string, maxGuesses int, guesses []string) (*Game, error) {
	if fingerprint != dict.Fingerprint() {
		return nil, ErrVocabularyChanged
	}
	g, err := NewWithID(id, dict, maxGuesses)
	if err != nil {
		return nil, err
	}
	for i, w := range guesses {
		if _, _, err := g.ApplyGuess(w); err != nil {
			return nil, fmt.Errorf("replay guess %d (%q): %w", i+1, w, err)
		}
	}
	return g, nil
}

// ApplyGuess validates a guess, narrows the candidates and updates state.
// Returns the round, the new state, or an error; a rejected guess leaves
// the game untouched.
func (g *Game) ApplyGuess(guess string) (Round, State, error) {
	if g.Finished {
		return Round{}, g.State(), ErrFinished
	}
	guess = strings.ToLower(strings.TrimSpace(guess))
	if len(guess) != g.Cols || !words.IsAlpha(guess) {
		return Round{}, g.State(), fmt.Errorf("%w: want %d letters a-z", ErrInvalidGuess, g.Cols)
	}
	if !g.dict.IsAllowed(guess) {
		return Round{}, g.State(), ErrNotInWordList
	}

	pattern, next, err := absurdle.Partition(guess, g.Candidates)
	if err != nil {
		return Round{}, g.State(), fmt.Errorf("partition %q: %w", guess, err)
	}

	g.Candidates = next
	round := Round{Guess: guess, Pattern: pattern, Remaining: len(next)}
	g.Rounds = append(g.Rounds, round)

	if pattern.Solved() {
		g.Finished, g.Won = true, true
	} else if len(g.Rounds) >= g.MaxGuesses {
		g.Finished = true
		g.Reveal = next[0]
	}
	return round, g.State(), nil
}

// State reports the coarse state of the game.
func (g *Game) State() State {
	if g.Finished {
		if g.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// Guesses lists the accepted guesses in order.
func (g *Game) Guesses() []string {
	out := make([]string, len(g.Rounds))
	for i, r := range g.Rounds {
		out[i] = r.Guess
	}
	return out
}

// GuessesLeft is the remaining budget.
func (g *Game) GuessesLeft() int {
	return g.MaxGuesses - len(g.Rounds)
}
