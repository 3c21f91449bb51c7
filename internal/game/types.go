// internal/game/types.go
//
// Core type definitions for one adversarial game session.
// Defines:
//   - State: coarse game state (playing/won/lost).
//   - Round: one accepted guess and the feedback chosen for it.
//   - Dictionary: what a session needs from the word lists.
//   - Game: state for a single in-progress or finished game.

package game

import "github.com/robalobadob/absurdle/internal/absurdle"

// State is the coarse state of a game.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Round records one accepted guess.
type Round struct {
	Guess     string           // lowercased guess
	Pattern   absurdle.Pattern // feedback kept by the engine
	Remaining int              // candidates left after this round
}

// Dictionary is the vocabulary a game is played against.
// *words.Vocabulary satisfies it.
type Dictionary interface {
	Solutions() []string
	IsAllowed(w string) bool
	Length() int
	Fingerprint() string
}

// Game holds the state of a single session. The candidate set is owned by
// the game and replaced wholesale every round.
type Game struct {
	ID         string   // unique game identifier
	Vocabulary string   // fingerprint of the dictionary the game started on
	MaxGuesses int      // guess budget
	Cols       int      // letters per word
	Candidates []string // solutions still consistent with every round
	Rounds     []Round  // accepted guesses, oldest first
	Finished   bool     // true once won or lost
	Won        bool     // true if finished with a win
	Reveal     string   // a remaining candidate, set on loss

	dict Dictionary
}
