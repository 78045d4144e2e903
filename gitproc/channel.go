// Package gitproc runs the host VCS as a child process. It exists so
// the rest of this repository never shells out directly: every
// invocation goes through one place that drains the child's output
// concurrently with writing its input (so a large payload on either
// stream can't deadlock on a full pipe buffer) and that tears the
// child down cleanly when its context is cancelled.
package gitproc

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"github.com/pkg/errors"
)

// Channel describes one external command this program can invoke.
// A Channel is immutable and safe to reuse across invocations; each
// Run or Start call spawns an independent child process.
type Channel struct {
	// Name is the executable to run, typically "git".
	Name string
	// Args are the arguments passed to Name on every invocation.
	Args []string
	// Dir, if set, is the child's working directory.
	Dir string
}

// New returns a Channel for name with the given fixed arguments.
func New(name string, args ...string) *Channel {
	return &Channel{Name: name, Args: args}
}

// Run executes the command once, writing stdin to the child and
// returning everything the child wrote to stdout. The child's stderr
// is captured and folded into the returned error if the command exits
// non-zero, so a caller sees why the host VCS failed.
//
// ctx governs cancellation: if ctx is done before the child exits,
// the child is killed and Run returns ctx.Err() without blocking.
func (c *Channel) Run(ctx context.Context, stdin []byte) ([]byte, error) {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...) //nolint:gosec // Name/Args are this program's own fixed invocations, never user-supplied shell text
	cmd.Dir = c.Dir

	stdinPipe, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("gitproc: creating stdin pipe: %w", err)
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("gitproc: starting %s: %w", c.Name, err)
	}

	// Writing stdin happens on its own goroutine so that a child which
	// starts producing stdout before it has consumed all of stdin (or
	// vice versa) can't deadlock either side against a full pipe buffer.
	writeErrCh := make(chan error, 1)
	go func() {
		_, werr := stdinPipe.Write(stdin)
		closeErr := stdinPipe.Close()
		if werr == nil {
			werr = closeErr
		}
		writeErrCh <- werr
	}()

	waitErr := cmd.Wait()
	writeErr := <-writeErrCh

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if writeErr != nil && waitErr == nil {
		return nil, fmt.Errorf("gitproc: writing stdin to %s: %w", c.Name, writeErr)
	}
	if waitErr != nil {
		return stdout.Bytes(), errors.Wrapf(ErrHostVcsFailure, "%s %v: %s", c.Name, c.Args, stderr.String())
	}

	return stdout.Bytes(), nil
}

// RunText is a convenience wrapper over Run for commands invoked with
// no stdin, returning stdout as a string.
func (c *Channel) RunText(ctx context.Context) (string, error) {
	out, err := c.Run(ctx, nil)
	return string(out), err
}
