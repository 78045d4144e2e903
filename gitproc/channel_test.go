package gitproc_test

import (
	"context"
	"testing"
	"time"

	"github.com/goabstract/gitcrypt/gitproc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunEchoesStdinThroughCat(t *testing.T) {
	t.Parallel()

	ch := gitproc.New("cat")
	out, err := ch.Run(context.Background(), []byte("hello, world"))
	require.NoError(t, err)
	assert.Equal(t, "hello, world", string(out))
}

func TestRunNonZeroExit(t *testing.T) {
	t.Parallel()

	ch := gitproc.New("sh", "-c", "exit 1")
	_, err := ch.Run(context.Background(), nil)
	assert.ErrorIs(t, err, gitproc.ErrHostVcsFailure)
}

func TestRunLargeStdinDoesNotDeadlock(t *testing.T) {
	t.Parallel()

	payload := make([]byte, 4<<20)
	for i := range payload {
		payload[i] = byte(i)
	}

	ch := gitproc.New("cat")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	out, err := ch.Run(ctx, payload)
	require.NoError(t, err)
	assert.Equal(t, payload, out)
}

func TestRunCancellation(t *testing.T) {
	t.Parallel()

	ch := gitproc.New("sleep", "30")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ch.Run(ctx, nil)
	assert.Error(t, err)
}
