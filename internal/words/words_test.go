package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeList(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoad_Embedded(t *testing.T) {
	v, err := Load("", "")
	require.NoError(t, err)

	sol, allowed := v.Stats()
	assert.Greater(t, sol, 2000)
	assert.Greater(t, allowed, sol)
	assert.Equal(t, 5, v.Length())

	assert.Contains(t, v.Solutions(), "offal")
	assert.True(t, v.IsAllowed("offal"))
	assert.True(t, v.IsAllowed("TERNS"))
	assert.NotContains(t, v.Solutions(), "terns")
	assert.False(t, v.IsAllowed("zzzzz"))

	first := v.Solutions()
	assert.Equal(t, "aback", first[0])
}

func TestLoad_BothFiles(t *testing.T) {
	sol := writeList(t, "sol.txt", "# comment\nOffal\n\nloyal\noffal\n")
	gs := writeList(t, "guesses.txt", "terns\naphid\n12345\n")

	v, err := Load(sol, gs)
	require.NoError(t, err)
	assert.Equal(t, []string{"offal", "loyal"}, v.Solutions())
	assert.True(t, v.IsAllowed("aphid"))
	assert.True(t, v.IsAllowed("loyal"))
	assert.NotContains(t, v.Solutions(), "aphid")
}

func TestLoad_GuessesOnly(t *testing.T) {
	gs := writeList(t, "guesses.txt", "terns\naphid\n")
	v, err := Load("", gs)
	require.NoError(t, err)
	assert.Equal(t, []string{"terns", "aphid"}, v.Solutions())
}

func TestLoad_SolutionsOnly(t *testing.T) {
	sol := writeList(t, "sol.txt", "terns\n")
	v, err := Load(sol, "")
	require.NoError(t, err)
	_, allowed := v.Stats()
	assert.Equal(t, 1, allowed)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"), "")
	assert.Error(t, err)
}

func TestNew_Errors(t *testing.T) {
	_, err := New(nil, nil)
	assert.ErrorIs(t, err, ErrEmptySolutions)

	_, err = New([]string{"# only a comment"}, nil)
	assert.ErrorIs(t, err, ErrEmptySolutions)

	_, err = New([]string{"offal", "loyal", "ox"}, nil)
	assert.ErrorIs(t, err, ErrMixedLength)

	_, err = New([]string{"offal"}, []string{"ox"})
	assert.ErrorIs(t, err, ErrMixedLength)
}

func TestFingerprint(t *testing.T) {
	a, err := New([]string{"offal", "loyal"}, []string{"terns"})
	require.NoError(t, err)
	b, err := New([]string{"OFFAL", "loyal", "offal"}, []string{"terns"})
	require.NoError(t, err)
	c, err := New([]string{"loyal", "offal"}, []string{"terns"})
	require.NoError(t, err)
	d, err := New([]string{"offal", "loyal"}, nil)
	require.NoError(t, err)

	assert.Len(t, a.Fingerprint(), 16)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint(), "solution order is part of the fingerprint")
	assert.NotEqual(t, a.Fingerprint(), d.Fingerprint())
}

func TestSolutions_ReturnsCopy(t *testing.T) {
	v, err := New([]string{"offal", "loyal"}, nil)
	require.NoError(t, err)
	s := v.Solutions()
	s[0] = "zzzzz"
	assert.Equal(t, []string{"offal", "loyal"}, v.Solutions())
}
