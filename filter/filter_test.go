package filter_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/goabstract/gitcrypt/envelope"
	"github.com/goabstract/gitcrypt/filter"
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

func TestCleanThenSmudgeRoundTrip(t *testing.T) {
	t.Parallel()

	kf := generateKeyFile(t)
	entry, err := kf.Latest()
	require.NoError(t, err)

	plaintext := []byte("the quick brown fox")
	var sealed bytes.Buffer
	require.NoError(t, filter.Clean(&sealed, bytes.NewReader(plaintext), entry))
	assert.True(t, envelope.HasMagic(sealed.Bytes()))

	var opened bytes.Buffer
	require.NoError(t, filter.Smudge(&opened, bytes.NewReader(sealed.Bytes()), kf))
	assert.Equal(t, plaintext, opened.Bytes())
}

func TestCleanEmptyInput(t *testing.T) {
	t.Parallel()

	kf := generateKeyFile(t)
	entry, err := kf.Latest()
	require.NoError(t, err)

	var sealed bytes.Buffer
	require.NoError(t, filter.Clean(&sealed, bytes.NewReader(nil), entry))
	assert.Len(t, sealed.Bytes(), envelope.HeaderLen)
}

func TestSmudgeFallsThroughOnPlainInput(t *testing.T) {
	t.Parallel()

	kf := generateKeyFile(t)
	var out bytes.Buffer
	require.NoError(t, filter.Smudge(&out, bytes.NewReader([]byte("hello")), kf))
	assert.Equal(t, "hello", out.String())
}

func TestSmudgeKeyUnavailable(t *testing.T) {
	t.Parallel()

	sealingKey := generateKeyFile(t)
	entry, err := sealingKey.Latest()
	require.NoError(t, err)

	var sealed bytes.Buffer
	require.NoError(t, filter.Clean(&sealed, bytes.NewReader([]byte("secret")), entry))

	wrongKey := generateKeyFile(t)
	var out bytes.Buffer
	err = filter.Smudge(&out, bytes.NewReader(sealed.Bytes()), wrongKey)
	assert.ErrorIs(t, err, filter.ErrKeyUnavailable)
}

func TestDiffFallsThroughWhenKeyUnavailable(t *testing.T) {
	t.Parallel()

	sealingKey := generateKeyFile(t)
	entry, err := sealingKey.Latest()
	require.NoError(t, err)

	var sealed bytes.Buffer
	require.NoError(t, filter.Clean(&sealed, bytes.NewReader([]byte("secret")), entry))

	dir := t.TempDir()
	path := filepath.Join(dir, "ciphertext")
	require.NoError(t, os.WriteFile(path, sealed.Bytes(), 0o600))

	wrongKey := generateKeyFile(t)
	var out bytes.Buffer
	require.NoError(t, filter.Diff(&out, path, wrongKey))
	assert.Equal(t, sealed.Bytes(), out.Bytes())
}

func TestDiffDecryptsWhenKeyAvailable(t *testing.T) {
	t.Parallel()

	kf := generateKeyFile(t)
	entry, err := kf.Latest()
	require.NoError(t, err)

	var sealed bytes.Buffer
	require.NoError(t, filter.Clean(&sealed, bytes.NewReader([]byte("secret")), entry))

	dir := t.TempDir()
	path := filepath.Join(dir, "ciphertext")
	require.NoError(t, os.WriteFile(path, sealed.Bytes(), 0o600))

	var out bytes.Buffer
	require.NoError(t, filter.Diff(&out, path, kf))
	assert.Equal(t, "secret", out.String())
}

func TestCleanSpillsLargeInputToDisk(t *testing.T) {
	t.Parallel()

	kf := generateKeyFile(t)
	entry, err := kf.Latest()
	require.NoError(t, err)

	large := bytes.Repeat([]byte("x"), 33<<20)
	var sealed bytes.Buffer
	require.NoError(t, filter.Clean(&sealed, bytes.NewReader(large), entry))

	var opened bytes.Buffer
	require.NoError(t, filter.Smudge(&opened, bytes.NewReader(sealed.Bytes()), kf))
	assert.Equal(t, large, opened.Bytes())
}
