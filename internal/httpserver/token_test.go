package httpserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/absurdle/internal/game"
	"github.com/robalobadob/absurdle/internal/words"
)

func TestTokenIssuer(t *testing.T) {
	v, err := words.New(scenarioWords, nil)
	require.NoError(t, err)
	g, err := game.New(v, 8)
	require.NoError(t, err)
	_, _, err = g.ApplyGuess("terns")
	require.NoError(t, err)

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	ti := newTokenIssuer("k1", time.Hour)
	ti.now = func() time.Time { return now }

	tok, err := ti.issue(g)
	require.NoError(t, err)

	claims, err := ti.parse(tok)
	require.NoError(t, err)
	assert.Equal(t, g.ID, claims.Subject)
	assert.Equal(t, []string{"terns"}, claims.Guesses)
	assert.Equal(t, 8, claims.MaxGuesses)
	assert.Equal(t, v.Fingerprint(), claims.Vocabulary)

	t.Run("wrong secret", func(t *testing.T) {
		other := newTokenIssuer("k2", time.Hour)
		other.now = ti.now
		_, err := other.parse(tok)
		assert.ErrorIs(t, err, errBadToken)
	})

	t.Run("expired", func(t *testing.T) {
		later := newTokenIssuer("k1", time.Hour)
		later.now = func() time.Time { return now.Add(2 * time.Hour) }
		_, err := later.parse(tok)
		assert.ErrorIs(t, err, errBadToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ti.parse("not.a.token")
		assert.ErrorIs(t, err, errBadToken)
	})
}
