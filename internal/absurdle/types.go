// internal/absurdle/types.go
//
// Core type definitions for the adversarial engine.
// Defines:
//   - Mark: per-letter feedback symbol (green/yellow/grey).
//   - Pattern: the feedback for one guess against one candidate.
//   - Bucket: a pattern plus the candidates that produce it.

package absurdle

import (
	"fmt"
	"strings"
)

// Mark is the feedback for a single letter of a guess.
// The byte values are the display encoding every renderer must honor:
//   - 'g': letter is in the candidate at this position.
//   - 'y': letter is in the candidate at another position.
//   - '-': letter is not in the candidate (or all copies are accounted for).
type Mark byte

const (
	Green  Mark = 'g'
	Yellow Mark = 'y'
	Grey   Mark = '-'
)

func (m Mark) String() string { return string(m) }

// Pattern is an ordered sequence of marks, one per guess letter,
// stored in its display encoding (e.g. "-y-gg").
type Pattern string

// ParsePattern validates a display string over {g, y, -}.
func ParsePattern(s string) (Pattern, error) {
	s = strings.ToLower(s)
	for i := 0; i < len(s); i++ {
		switch Mark(s[i]) {
		case Green, Yellow, Grey:
		default:
			return "", fmt.Errorf("absurdle: invalid mark %q at position %d", s[i], i)
		}
	}
	return Pattern(s), nil
}

// Marks returns the pattern as a slice of marks.
func (p Pattern) Marks() []Mark {
	out := make([]Mark, len(p))
	for i := 0; i < len(p); i++ {
		out[i] = Mark(p[i])
	}
	return out
}

// Greens counts green marks.
func (p Pattern) Greens() int { return p.count(Green) }

// Yellows counts yellow marks.
func (p Pattern) Yellows() int { return p.count(Yellow) }

// Solved reports whether every mark is green. The empty pattern is not solved.
func (p Pattern) Solved() bool {
	return len(p) > 0 && p.Greens() == len(p)
}

func (p Pattern) String() string { return string(p) }

func (p Pattern) count(m Mark) int {
	n := 0
	for i := 0; i < len(p); i++ {
		if Mark(p[i]) == m {
			n++
		}
	}
	return n
}

// Bucket is one partition cell for a guess: every candidate in Members
// produces Pattern when matched against that guess.
type Bucket struct {
	Pattern Pattern
	Members []string
}

// Size is the number of candidates in the bucket.
func (b Bucket) Size() int { return len(b.Members) }
