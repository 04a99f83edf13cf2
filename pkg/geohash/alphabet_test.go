package geohash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphabetRoundTrip(t *testing.T) {
	require.Len(t, Alphabet, 32)

	for i := 0; i < len(Alphabet); i++ {
		d, err := charToDigit(Alphabet[i])
		require.NoError(t, err)
		assert.Equal(t, i, d)
	}
}

func TestCharToDigitRejectsNonAlphabet(t *testing.T) {
	// a, i, l, o are deliberately absent from the alphabet; upper case is
	// rejected too because callers lower-case before lookup.
	for _, c := range []byte{'a', 'i', 'l', 'o', 'A', 'Z', ' ', '-'} {
		_, err := charToDigit(c)
		assert.ErrorIs(t, err, ErrInvalidCharacter, "char %q", c)
	}
}
