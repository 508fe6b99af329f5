package vault

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey(t *testing.T) {
	salt, err := generateSalt()
	require.NoError(t, err)

	key := deriveKey([]byte("hunter2"), salt, testParams)
	assert.Len(t, key, keySize)

	t.Run("Deterministic", func(t *testing.T) {
		again := deriveKey([]byte("hunter2"), salt, testParams)
		assert.Equal(t, key, again)
	})

	t.Run("SaltChangesKey", func(t *testing.T) {
		other, err := generateSalt()
		require.NoError(t, err)
		assert.NotEqual(t, key, deriveKey([]byte("hunter2"), other, testParams))
	})

	t.Run("PassphraseChangesKey", func(t *testing.T) {
		assert.NotEqual(t, key, deriveKey([]byte("hunter3"), salt, testParams))
	})
}

func TestLegacyKey(t *testing.T) {
	key := legacyKey([]byte("hunter2"))
	assert.Len(t, key, keySize)

	// The legacy derivation is exactly one SHA-256 pass, no salt
	sum := sha256.Sum256([]byte("hunter2"))
	assert.Equal(t, sum[:], key)
}

func TestSealOpen(t *testing.T) {
	salt, err := generateSalt()
	require.NoError(t, err)
	key := deriveKey([]byte("hunter2"), salt, testParams)

	nonce, err := generateNonce()
	require.NoError(t, err)

	plaintext := []byte(`{"passwords":{"email":"s3cr3t"}}`)

	sealed, err := seal(key, nonce, plaintext)
	require.NoError(t, err)
	assert.Len(t, sealed, len(plaintext)+tagSize)

	t.Run("RoundTrip", func(t *testing.T) {
		opened, err := open(key, nonce, sealed)
		require.NoError(t, err)
		assert.Equal(t, plaintext, opened)
	})

	t.Run("RoundTripEmpty", func(t *testing.T) {
		sealedEmpty, err := seal(key, nonce, []byte{})
		require.NoError(t, err)
		opened, err := open(key, nonce, sealedEmpty)
		require.NoError(t, err)
		assert.Empty(t, opened)
	})

	t.Run("WrongKey", func(t *testing.T) {
		wrong := deriveKey([]byte("wrong"), salt, testParams)
		_, err := open(wrong, nonce, sealed)
		assert.ErrorIs(t, err, ErrAuthFailed)
	})

	t.Run("WrongNonce", func(t *testing.T) {
		other, err := generateNonce()
		require.NoError(t, err)
		_, err = open(key, other, sealed)
		assert.ErrorIs(t, err, ErrAuthFailed)
	})

	t.Run("BitFlip", func(t *testing.T) {
		for _, i := range []int{0, len(sealed) / 2, len(sealed) - 1} {
			tampered := make([]byte, len(sealed))
			copy(tampered, sealed)
			tampered[i] ^= 0x01

			_, err := open(key, nonce, tampered)
			assert.ErrorIs(t, err, ErrAuthFailed, "flipped bit at offset %d", i)
		}
	})

	t.Run("Truncated", func(t *testing.T) {
		_, err := open(key, nonce, sealed[:tagSize-1])
		assert.ErrorIs(t, err, ErrAuthFailed)
	})

	t.Run("InvalidKeySize", func(t *testing.T) {
		_, err := seal([]byte("shortkey"), nonce, plaintext)
		assert.Error(t, err)
	})
}

func TestGenerateSalt(t *testing.T) {
	a, err := generateSalt()
	require.NoError(t, err)
	b, err := generateSalt()
	require.NoError(t, err)

	assert.Len(t, a, saltSize)
	assert.NotEqual(t, a, b)
}

func TestGenerateNonce(t *testing.T) {
	a, err := generateNonce()
	require.NoError(t, err)
	b, err := generateNonce()
	require.NoError(t, err)

	assert.Len(t, a, nonceSize)
	assert.NotEqual(t, a, b)
}
