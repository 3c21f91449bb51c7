// internal/words/words.go
//
// Word list management for the engine's callers.
//
// Responsibilities:
//   - Load the solution vocabulary (initial candidate set) and the guess
//     vocabulary from files, or fall back to the embedded defaults in assets/.
//   - Keep lookup sets for guess validation (solutions ∪ guesses).
//   - Fingerprint a vocabulary so session tokens can be bound to it.
//
// Load resolution (mirrors the env-driven setup in config):
//   1. solutions and guesses paths both set: read each file.
//   2. only the solutions path set: solutions are the only allowed guesses.
//   3. only the guesses path set: that file serves as both lists.
//   4. neither set: embedded assets.
//
// Lists are normalized to lowercase; blank lines, '#' comments and
// non-alphabetic entries are skipped, duplicates keep their first position.
// The order of the solution list is preserved because it is the engine's
// scan order.

package words

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/robalobadob/absurdle/assets"
)

var (
	ErrEmptySolutions = errors.New("words: solutions list is empty")
	ErrMixedLength    = errors.New("words: words of different lengths")
)

// Vocabulary is an immutable pair of word lists.
type Vocabulary struct {
	solutions   []string            // initial candidate set, in file order
	solutionSet map[string]struct{} // solutions only
	allowedSet  map[string]struct{} // solutions ∪ guesses
	length      int
	fingerprint string
}

// New builds a vocabulary from in-memory lists. Every solution is also an
// allowed guess.
func New(solutions, guesses []string) (*Vocabulary, error) {
	sol := Normalize(solutions)
	if len(sol) == 0 {
		return nil, ErrEmptySolutions
	}
	extra := Normalize(guesses)

	n := len(sol[0])
	for _, list := range [][]string{sol, extra} {
		for _, w := range list {
			if len(w) != n {
				return nil, fmt.Errorf("%w: %q has %d letters, expected %d", ErrMixedLength, w, len(w), n)
			}
		}
	}

	v := &Vocabulary{
		solutions:   sol,
		solutionSet: toSet(sol),
		allowedSet:  toSet(sol),
		length:      n,
	}
	for _, w := range extra {
		v.allowedSet[w] = struct{}{}
	}
	v.fingerprint = v.computeFingerprint()
	return v, nil
}

// Load reads the vocabulary from files, or from the embedded defaults when
// both paths are empty.
func Load(solutionsPath, guessesPath string) (*Vocabulary, error) {
	var sol, guesses []string
	var err error

	switch {
	case solutionsPath != "" && guessesPath != "":
		if sol, err = readWordFile(solutionsPath); err != nil {
			return nil, err
		}
		if guesses, err = readWordFile(guessesPath); err != nil {
			return nil, err
		}

	case solutionsPath != "":
		if sol, err = readWordFile(solutionsPath); err != nil {
			return nil, err
		}

	// Only the guess list: it doubles as the solution list.
	case guessesPath != "":
		if sol, err = readWordFile(guessesPath); err != nil {
			return nil, err
		}

	default:
		if sol, err = assets.SolutionsList(); err != nil {
			return nil, fmt.Errorf("embedded solutions: %w", err)
		}
		if guesses, err = assets.GuessesList(); err != nil {
			return nil, fmt.Errorf("embedded guesses: %w", err)
		}
	}
	return New(sol, guesses)
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	out, err := readWords(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return out, nil
}

func readWords(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out, sc.Err()
}

// Normalize lowercases and trims entries, drops blanks, comments and
// non-alphabetic words, and removes duplicates keeping the first occurrence.
func Normalize(list []string) []string {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, line := range list {
		w := strings.ToLower(strings.TrimSpace(line))
		if w == "" || strings.HasPrefix(w, "#") || !IsAlpha(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// IsAlpha reports whether s is all lowercase ASCII letters.
func IsAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// computeFingerprint hashes the word length, the ordered solutions and the
// sorted extra guesses with BLAKE2b-256.
func (v *Vocabulary) computeFingerprint() string {
	h, _ := blake2b.New256(nil)
	fmt.Fprintf(h, "%d\n", v.length)
	for _, w := range v.solutions {
		io.WriteString(h, w)
		io.WriteString(h, "\n")
	}
	io.WriteString(h, "--\n")

	extra := make([]string, 0, len(v.allowedSet)-len(v.solutionSet))
	for w := range v.allowedSet {
		if _, ok := v.solutionSet[w]; !ok {
			extra = append(extra, w)
		}
	}
	sort.Strings(extra)
	for _, w := range extra {
		io.WriteString(h, w)
		io.WriteString(h, "\n")
	}
	return hex.EncodeToString(h.Sum(nil)[:8])
}

// Solutions returns a copy of the solution list in its original order.
func (v *Vocabulary) Solutions() []string {
	return append([]string(nil), v.solutions...)
}

// Length is the number of letters in every word.
func (v *Vocabulary) Length() int { return v.length }

// Fingerprint identifies the vocabulary contents (16 hex chars).
func (v *Vocabulary) Fingerprint() string { return v.fingerprint }

// IsAllowed reports whether w is a valid guess (solutions ∪ guesses).
func (v *Vocabulary) IsAllowed(w string) bool {
	_, ok := v.allowedSet[strings.ToLower(w)]
	return ok
}

// Stats returns counts of loaded words: (solutions, allowed).
func (v *Vocabulary) Stats() (solutionsCount int, allowedCount int) {
	return len(v.solutions), len(v.allowedSet)
}
