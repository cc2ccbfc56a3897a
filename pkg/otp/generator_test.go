package otp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomCodeFixedWidth(t *testing.T) {
	g := NewCryptoGenerator()

	for i := 0; i < 1000; i++ {
		code, err := g.RandomCode(6)
		require.NoError(t, err)
		require.Len(t, code, 6)
		for _, r := range code {
			require.True(t, r >= '0' && r <= '9', "code %q contains non-digit", code)
		}
	}
}

func TestRandomCodeLengths(t *testing.T) {
	g := NewCryptoGenerator()

	for _, length := range []int{1, 4, 6, 8} {
		code, err := g.RandomCode(length)
		require.NoError(t, err)
		require.Len(t, code, length)
	}
}

func TestRandomCodeInvalidLength(t *testing.T) {
	g := NewCryptoGenerator()

	_, err := g.RandomCode(0)
	require.Error(t, err)

	_, err = g.RandomCode(19)
	require.Error(t, err)
}
