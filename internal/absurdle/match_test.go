package absurdle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	cases := []struct {
		guess, candidate string
		want             Pattern
	}{
		{"offal", "offal", "ggggg"},
		{"loyal", "offal", "-y-gg"},
		{"mambo", "offal", "-y--y"},
		{"mambo", "jazzy", "-g---"},
		{"terns", "crane", "-yyg-"},
		{"crane", "react", "yyg-y"},
		{"speed", "abide", "--y-y"},
		{"aabbb", "about", "g-y--"},
		{"aabbb", "cabal", "ygg--"},
		{"eerie", "level", "yg---"},
		{"llama", "hello", "yy---"},
		{"geese", "eagle", "yy--g"},
		{"ab", "ba", "yy"},
		{"", "offal", ""},
	}
	for _, tc := range cases {
		t.Run(tc.guess+"/"+tc.candidate, func(t *testing.T) {
			assert.Equal(t, tc.want, Match(tc.guess, tc.candidate))
		})
	}
}

func TestMatch_SelfIsAllGreen(t *testing.T) {
	for _, w := range loadScenario(t) {
		p := Match(w, w)
		assert.True(t, p.Solved(), "Match(%q,%q) = %q", w, w, p)
	}
}

func TestMatch_LengthAndMultiplicity(t *testing.T) {
	words := loadScenario(t)
	for _, g := range words {
		for _, c := range words {
			p := Match(g, c)
			require.Len(t, p, len(g))

			marked := map[byte]int{}
			for i := 0; i < len(p); i++ {
				if Mark(p[i]) != Grey {
					marked[g[i]]++
				}
			}
			for letter, n := range marked {
				assert.LessOrEqual(t, n, countByte(c, letter),
					"Match(%q,%q)=%q marks %q too often", g, c, p, letter)
			}
		}
	}
}

func TestMatch_GreensBeforeYellows(t *testing.T) {
	// One 'a' in the candidate, at position 1: the green must claim it, so the
	// leading 'a' of the guess stays grey.
	assert.Equal(t, Pattern("-g---"), Match("aabbb", "xaxxx"))
}

func TestMatch_LengthMismatchPanics(t *testing.T) {
	assert.Panics(t, func() { Match("abc", "abcd") })
}

func TestParsePattern(t *testing.T) {
	p, err := ParsePattern("-Y-gG")
	require.NoError(t, err)
	assert.Equal(t, Pattern("-y-gg"), p)
	assert.Equal(t, 2, p.Greens())
	assert.Equal(t, 1, p.Yellows())
	assert.Equal(t, []Mark{Grey, Yellow, Grey, Green, Green}, p.Marks())
	assert.False(t, p.Solved())

	p, err = ParsePattern("g-ygg")
	require.NoError(t, err)
	assert.Equal(t, 3, p.Greens())
	assert.Equal(t, 1, p.Yellows())

	p, err = ParsePattern("GGGGG")
	require.NoError(t, err)
	assert.True(t, p.Solved())

	_, err = ParsePattern("gy-x-")
	assert.Error(t, err)

	empty, err := ParsePattern("")
	require.NoError(t, err)
	assert.False(t, empty.Solved())
}

func countByte(s string, b byte) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			n++
		}
	}
	return n
}
