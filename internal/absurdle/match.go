// internal/absurdle/match.go
//
// Single guess vs. single candidate feedback.
//
// Match is the classic two-pass Wordle scorer:
//   Pass 1: mark exact matches green and count the candidate letters left over.
//   Pass 2: for each other position, mark yellow while a leftover copy of the
//           letter remains, otherwise grey.
//
// Greens are resolved before any yellow so repeated letters never earn more
// green+yellow marks than the candidate holds.

package absurdle

import "fmt"

// Match computes the pattern for guess against candidate.
//
// Both words must have the same length; a non-empty guess of a different
// length is a caller bug and panics. An empty guess yields the empty pattern.
// Inputs are compared byte by byte, so callers pass lowercase ASCII words.
func Match(guess, candidate string) Pattern {
	n := len(guess)
	if n == 0 {
		return ""
	}
	if len(candidate) != n {
		panic(fmt.Sprintf("absurdle: match %q against %q: %v", guess, candidate, ErrLengthMismatch))
	}

	res := make([]byte, n)

	// Leftover candidate letters, scoped to this call.
	var remaining [256]int

	// First pass: greens, and counts of the candidate letters they did not use.
	for i := 0; i < n; i++ {
		if guess[i] == candidate[i] {
			res[i] = byte(Green)
		} else {
			remaining[candidate[i]]++
		}
	}

	// Second pass: yellows and greys for the rest.
	for i := 0; i < n; i++ {
		if res[i] == byte(Green) {
			continue
		}
		c := guess[i]
		if remaining[c] > 0 {
			res[i] = byte(Yellow)
			remaining[c]--
		} else {
			res[i] = byte(Grey)
		}
	}
	return Pattern(res)
}
