package gitproc

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"sync"

	"github.com/pkg/errors"
)

// Stream is a running child process whose stdin a caller writes to
// incrementally while its stdout is drained in the background. It is
// used for the batch attribute query, so that writing a long request
// can't block on a child whose stdout pipe is full. Everything the
// child writes to stdout is accumulated in memory until Wait.
type Stream struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout bytes.Buffer
	mu     sync.Mutex
	drain  sync.WaitGroup
	stderr bytes.Buffer
}

// Start launches the command and begins draining its stdout
// concurrently. The caller writes to the returned Stream via Write,
// then calls CloseStdin once done, then Wait to collect the result.
func (c *Channel) Start(ctx context.Context) (*Stream, error) {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...) //nolint:gosec // Name/Args are this program's own fixed invocations
	cmd.Dir = c.Dir

	s := &Stream{cmd: cmd}

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("gitproc: creating stdin pipe: %w", err)
	}
	s.stdin = stdin

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("gitproc: creating stdout pipe: %w", err)
	}
	cmd.Stderr = &s.stderr

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("gitproc: starting %s: %w", c.Name, err)
	}

	s.drain.Add(1)
	go func() {
		defer s.drain.Done()
		buf := make([]byte, 32*1024)
		for {
			n, rerr := stdout.Read(buf)
			if n > 0 {
				s.mu.Lock()
				s.stdout.Write(buf[:n])
				s.mu.Unlock()
			}
			if rerr != nil {
				return
			}
		}
	}()

	return s, nil
}

// Write sends p to the child's stdin.
func (s *Stream) Write(p []byte) (int, error) {
	return s.stdin.Write(p)
}

// CloseStdin closes the child's stdin, signalling that no more input
// is coming. Most children that stream output per-request (such as
// `git check-attr --stdin`) only finish once stdin is closed.
func (s *Stream) CloseStdin() error {
	return s.stdin.Close()
}

// Wait blocks until the child exits and the stdout drain goroutine has
// finished, then returns everything the child wrote to stdout.
func (s *Stream) Wait() ([]byte, error) {
	// the drain must reach EOF before cmd.Wait, which closes the stdout
	// pipe and would discard anything not yet read
	s.drain.Wait()
	waitErr := s.cmd.Wait()

	s.mu.Lock()
	out := append([]byte(nil), s.stdout.Bytes()...)
	s.mu.Unlock()

	if waitErr != nil {
		return out, errors.Wrapf(ErrHostVcsFailure, "%s %v: %s", s.cmd.Path, s.cmd.Args, s.stderr.String())
	}
	return out, nil
}
