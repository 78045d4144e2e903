package gitproc_test

import (
	"context"
	"testing"

	"github.com/goabstract/gitcrypt/gitproc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamRoundTripThroughCat(t *testing.T) {
	t.Parallel()

	ch := gitproc.New("cat")
	s, err := ch.Start(context.Background())
	require.NoError(t, err)

	chunks := [][]byte{[]byte("first\x00"), []byte("second\x00"), []byte("third\x00")}
	for _, c := range chunks {
		_, err := s.Write(c)
		require.NoError(t, err)
	}
	require.NoError(t, s.CloseStdin())

	out, err := s.Wait()
	require.NoError(t, err)
	assert.Equal(t, "first\x00second\x00third\x00", string(out))
}

func TestStreamNonZeroExit(t *testing.T) {
	t.Parallel()

	ch := gitproc.New("sh", "-c", "cat >/dev/null; exit 3")
	s, err := ch.Start(context.Background())
	require.NoError(t, err)
	require.NoError(t, s.CloseStdin())

	_, err = s.Wait()
	assert.ErrorIs(t, err, gitproc.ErrHostVcsFailure)
}
