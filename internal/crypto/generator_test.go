package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordAlphabet(t *testing.T) {
	assert.Len(t, PasswordAlphabet, 90)

	seen := make(map[rune]bool)
	for _, r := range PasswordAlphabet {
		assert.False(t, seen[r], "duplicate character %q", r)
		seen[r] = true
	}
}

func TestGenerate_LengthAndAlphabet(t *testing.T) {
	g := NewSecretGenerator()

	for _, n := range []int{1, 8, 16, 64, 512} {
		pw, err := g.Generate(n)
		require.NoError(t, err)
		assert.Len(t, pw, n)
		for _, r := range pw {
			assert.True(t, strings.ContainsRune(PasswordAlphabet, r), "unexpected character %q", r)
		}
	}
}

func TestGenerate_ZeroLength(t *testing.T) {
	pw, err := NewSecretGenerator().Generate(0)
	require.NoError(t, err)
	assert.Equal(t, "", pw)
}

func TestGenerate_NegativeLength(t *testing.T) {
	pw, err := NewSecretGenerator().Generate(-1)
	require.Error(t, err)
	assert.Empty(t, pw)
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestGenerate_SuccessiveCallsDiffer(t *testing.T) {
	g := NewSecretGenerator()

	a, err := g.Generate(16)
	require.NoError(t, err)
	b, err := g.Generate(16)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestGenerate_CoversAlphabet(t *testing.T) {
	// 20k draws over 90 symbols: the chance of missing any one is negligible.
	pw, err := NewSecretGenerator().Generate(20000)
	require.NoError(t, err)

	for _, r := range PasswordAlphabet {
		assert.True(t, strings.ContainsRune(pw, r), "character %q never drawn", r)
	}
}

func TestGenerate_EntropyFailure(t *testing.T) {
	g := &secretGenerator{random: failingReader{}}

	pw, err := g.Generate(8)
	require.Error(t, err)
	assert.Empty(t, pw)
	assert.ErrorIs(t, err, ErrGeneration)
}
