// internal/console/console.go
//
// Line-oriented terminal game loop.
// One guess per line; after each accepted guess the round and the keyboard
// are printed. A finished game waits for enter before dealing a new one.
// EOF on input ends the session cleanly.

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/absurdle/internal/display"
	"github.com/robalobadob/absurdle/internal/game"
)

// Options configures a console session.
type Options struct {
	MaxGuesses int  // guess budget per game; 0 means game.DefaultMaxGuesses
	Plain      bool // uncolored g/y/- output
	Keyboard   bool // print the letter keyboard after every round
}

// Session plays games against one dictionary over a reader/writer pair.
type Session struct {
	dict   game.Dictionary
	in     *bufio.Scanner
	out    io.Writer
	opts   Options
	render *display.Renderer
	keys   *display.Keyboard
}

// New builds a console session.
func New(dict game.Dictionary, in io.Reader, out io.Writer, opts Options) *Session {
	if opts.MaxGuesses == 0 {
		opts.MaxGuesses = game.DefaultMaxGuesses
	}
	return &Session{
		dict:   dict,
		in:     bufio.NewScanner(in),
		out:    out,
		opts:   opts,
		render: display.New(opts.Plain),
		keys:   display.NewKeyboard(),
	}
}

// Run plays games until input ends or ctx is cancelled. It returns nil on
// EOF and ctx.Err() on cancellation.
func (s *Session) Run(ctx context.Context) error {
	for {
		done, err := s.playOne(ctx)
		if err != nil || done {
			return err
		}
		s.printf("%s\n", s.render.Muted("press enter to play again"))
		if _, ok := s.readLine(); !ok {
			return s.in.Err()
		}
	}
}

// playOne runs a single game. done reports that input ended.
func (s *Session) playOne(ctx context.Context) (done bool, err error) {
	g, err := game.New(s.dict, s.opts.MaxGuesses)
	if err != nil {
		return true, err
	}
	s.keys.Reset()
	log.Debug().Str("gameId", g.ID).Int("maxGuesses", g.MaxGuesses).Msg("console game started")

	s.printf("%s\n", s.render.Message(fmt.Sprintf(
		"Absurdle: %d guesses, %d letters, %d possible words.", g.MaxGuesses, g.Cols, len(g.Candidates))))

	for {
		if err := ctx.Err(); err != nil {
			return true, err
		}
		s.printf("Guess %d/%d: ", len(g.Rounds)+1, g.MaxGuesses)
		line, ok := s.readLine()
		if !ok {
			s.printf("\n")
			return true, s.in.Err()
		}

		round, state, err := g.ApplyGuess(line)
		switch {
		case errors.Is(err, game.ErrInvalidGuess):
			s.printf("%s\n", s.render.Message(fmt.Sprintf("guesses are %d letters a-z", g.Cols)))
			continue
		case errors.Is(err, game.ErrNotInWordList):
			s.printf("%s\n", s.render.Message("not in word list"))
			continue
		case err != nil:
			return true, err
		}

		s.keys.Record(round.Guess, round.Pattern)
		s.printf("%s  %s\n", s.render.Row(round.Guess, round.Pattern),
			s.render.Muted(fmt.Sprintf("%d remaining", round.Remaining)))
		if s.opts.Keyboard {
			s.printf("%s\n", s.render.Keyboard(s.keys))
		}

		switch state {
		case game.StateWon:
			s.printf("%s\n", s.render.Message(fmt.Sprintf("You win! Solved in %d guesses.", len(g.Rounds))))
			return false, nil
		case game.StateLost:
			s.printf("%s\n", s.render.Message(fmt.Sprintf("Out of guesses. The word was %s.", g.Reveal)))
			return false, nil
		}
	}
}

func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return s.in.Text(), true
}

func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}
