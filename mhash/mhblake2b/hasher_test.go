package mhblake2b_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thomaspmurphy/merkling/mhash"
	"github.com/thomaspmurphy/merkling/mhash/mhashtest"
	"github.com/thomaspmurphy/merkling/mhash/mhblake2b"
	"golang.org/x/crypto/blake2b"
)

func TestCompliance(t *testing.T) {
	t.Parallel()

	mhashtest.TestHasherCompliance(t, func() (mhash.Hasher, int) {
		return mhblake2b.Hasher{}, mhblake2b.HashSize
	})
}

func TestMatchesPlainBLAKE2b(t *testing.T) {
	t.Parallel()

	var h mhblake2b.Hasher

	leaf := make([]byte, mhblake2b.HashSize)
	h.Leaf([]byte("some block"), leaf[:0])

	exp := blake2b.Sum256([]byte("some block"))
	require.Equal(t, exp[:], leaf)
}
