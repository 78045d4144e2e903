package envelope_test

import (
	"testing"

	"github.com/goabstract/gitcrypt/envelope"
	"github.com/goabstract/gitcrypt/keyfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateKeyFile(t *testing.T) *keyfile.KeyFile {
	t.Helper()
	kf, err := keyfile.Generate("")
	require.NoError(t, err)
	return kf
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	t.Parallel()

	kf := generateKeyFile(t)
	entry, err := kf.Latest()
	require.NoError(t, err)

	testCases := []string{"", "a", "hello, world", string(make([]byte, 4096))}
	for _, plaintext := range testCases {
		plaintext := plaintext
		t.Run(plaintext, func(t *testing.T) {
			t.Parallel()

			sealed, err := envelope.Encrypt(entry, []byte(plaintext))
			require.NoError(t, err)
			assert.True(t, envelope.HasMagic(sealed))

			opened, err := envelope.Decrypt(kf, sealed)
			require.NoError(t, err)
			assert.Equal(t, []byte(plaintext), opened)
		})
	}
}

func TestEncryptIsConvergent(t *testing.T) {
	t.Parallel()

	kf := generateKeyFile(t)
	entry, err := kf.Latest()
	require.NoError(t, err)

	a, err := envelope.Encrypt(entry, []byte("convergent"))
	require.NoError(t, err)
	b, err := envelope.Encrypt(entry, []byte("convergent"))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEncryptEmptyPlaintextLength(t *testing.T) {
	t.Parallel()

	kf := generateKeyFile(t)
	entry, err := kf.Latest()
	require.NoError(t, err)

	sealed, err := envelope.Encrypt(entry, nil)
	require.NoError(t, err)
	assert.Len(t, sealed, envelope.HeaderLen)

	opened, err := envelope.Decrypt(kf, sealed)
	require.NoError(t, err)
	assert.Empty(t, opened)
}

func TestDecryptFallsThroughOnNoMagic(t *testing.T) {
	t.Parallel()

	assert.False(t, envelope.HasMagic([]byte("hello")))

	kf := generateKeyFile(t)
	_, err := envelope.Decrypt(kf, []byte("hello"))
	assert.ErrorIs(t, err, envelope.ErrNotAnEnvelope)
}

func TestDecryptKeyUnavailable(t *testing.T) {
	t.Parallel()

	sealingKey := generateKeyFile(t)
	entry, err := sealingKey.Latest()
	require.NoError(t, err)
	sealed, err := envelope.Encrypt(entry, []byte("secret"))
	require.NoError(t, err)

	wrongKey := generateKeyFile(t)
	_, err = envelope.Decrypt(wrongKey, sealed)
	assert.ErrorIs(t, err, envelope.ErrKeyUnavailable)
}

func TestDecryptResolvesAcrossRotatedKeys(t *testing.T) {
	t.Parallel()

	kf := generateKeyFile(t)
	oldEntry, err := kf.Latest()
	require.NoError(t, err)
	sealed, err := envelope.Encrypt(oldEntry, []byte("sealed under the old key"))
	require.NoError(t, err)

	_, err = kf.Rotate()
	require.NoError(t, err)

	opened, err := envelope.Decrypt(kf, sealed)
	require.NoError(t, err)
	assert.Equal(t, "sealed under the old key", string(opened))
}
