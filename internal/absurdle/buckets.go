// internal/absurdle/buckets.go
//
// Partitioning a candidate set by pattern and picking the bucket to keep.
//
// Selection rules, applied in order:
//   1. the bucket with the most candidates,
//   2. then fewer greens in its pattern,
//   3. then fewer yellows,
//   4. then the pattern produced first while scanning the candidates.
//
// Rule 4 depends on the caller's candidate order; pass candidates in a stable
// order (e.g. the original word-list order) to keep results reproducible.

package absurdle

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyCandidates means Partition was called with no candidates. A game
	// loop that stops on a singleton set never triggers it.
	ErrEmptyCandidates = errors.New("absurdle: empty candidate set")

	// ErrLengthMismatch means a guess and a candidate differ in length.
	ErrLengthMismatch = errors.New("absurdle: length mismatch")
)

// BucketTable maps patterns to buckets, remembering the order in which each
// pattern was first produced. It is built per guess and discarded after use.
type BucketTable struct {
	guess   string
	order   []Pattern
	buckets map[Pattern]*Bucket
	total   int
}

// Buckets matches guess against every candidate, in order, and groups the
// candidates by pattern. Lengths are not checked here; see Partition.
func Buckets(guess string, candidates []string) *BucketTable {
	t := &BucketTable{
		guess:   guess,
		buckets: make(map[Pattern]*Bucket),
	}
	for _, c := range candidates {
		t.add(Match(guess, c), c)
	}
	return t
}

func (t *BucketTable) add(p Pattern, word string) {
	b, ok := t.buckets[p]
	if !ok {
		b = &Bucket{Pattern: p}
		t.buckets[p] = b
		t.order = append(t.order, p)
	}
	b.Members = append(b.Members, word)
	t.total++
}

// Guess returns the guess the table was built for.
func (t *BucketTable) Guess() string { return t.guess }

// Len is the number of distinct patterns.
func (t *BucketTable) Len() int { return len(t.order) }

// Total is the number of candidates across all buckets.
func (t *BucketTable) Total() int { return t.total }

// Patterns lists patterns in first-production order.
func (t *BucketTable) Patterns() []Pattern {
	return append([]Pattern(nil), t.order...)
}

// Bucket looks up the bucket for p. The returned Members slice is a copy.
func (t *BucketTable) Bucket(p Pattern) (Bucket, bool) {
	b, ok := t.buckets[p]
	if !ok {
		return Bucket{}, false
	}
	return Bucket{Pattern: b.Pattern, Members: append([]string(nil), b.Members...)}, true
}

// Sizes returns the size of every bucket keyed by pattern.
func (t *BucketTable) Sizes() map[Pattern]int {
	out := make(map[Pattern]int, len(t.buckets))
	for p, b := range t.buckets {
		out[p] = len(b.Members)
	}
	return out
}

// Largest selects the bucket to keep. It returns the zero Bucket for an
// empty table.
func (t *BucketTable) Largest() Bucket {
	if len(t.order) == 0 {
		return Bucket{}
	}
	best := t.buckets[t.order[0]]
	for _, p := range t.order[1:] {
		if b := t.buckets[p]; beats(b, best) {
			best = b
		}
	}
	return Bucket{Pattern: best.Pattern, Members: append([]string(nil), best.Members...)}
}

// beats reports whether a is preferred over b. Equal buckets never beat the
// incumbent, which leaves the earlier pattern in place.
func beats(a, b *Bucket) bool {
	if len(a.Members) != len(b.Members) {
		return len(a.Members) > len(b.Members)
	}
	if ag, bg := a.Pattern.Greens(), b.Pattern.Greens(); ag != bg {
		return ag < bg
	}
	return a.Pattern.Yellows() < b.Pattern.Yellows()
}

// Partition narrows candidates to the largest bucket for guess.
//
// The guess is lower-cased first. An empty guess maps every candidate to the
// empty pattern and keeps the whole set. The input slice is not modified; the
// returned members are a fresh slice in candidate order.
func Partition(guess string, candidates []string) (Pattern, []string, error) {
	t, err := Analyze(guess, candidates)
	if err != nil {
		return "", nil, err
	}
	best := t.Largest()
	return best.Pattern, best.Members, nil
}

// Analyze checks inputs the way Partition does and returns the whole bucket
// table, for callers that want every cell and not just the kept one.
func Analyze(guess string, candidates []string) (*BucketTable, error) {
	if len(candidates) == 0 {
		return nil, ErrEmptyCandidates
	}
	guess = strings.ToLower(guess)
	if err := checkLengths(guess, candidates); err != nil {
		return nil, err
	}
	return Buckets(guess, candidates), nil
}

// checkLengths rejects candidates whose length differs from a non-empty guess.
// An empty guess matches any length, but the candidates must still agree.
func checkLengths(guess string, candidates []string) error {
	if guess == "" {
		want := len(candidates[0])
		for _, c := range candidates[1:] {
			if len(c) != want {
				return fmt.Errorf("%w: candidate %q has %d letters, %q has %d",
					ErrLengthMismatch, candidates[0], want, c, len(c))
			}
		}
		return nil
	}
	for _, c := range candidates {
		if len(c) != len(guess) {
			return fmt.Errorf("%w: guess %q has %d letters, candidate %q has %d",
				ErrLengthMismatch, guess, len(guess), c, len(c))
		}
	}
	return nil
}
