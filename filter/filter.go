// Package filter implements the three host-VCS filter-driver
// operations clean, smudge, and diff on top of package envelope.
package filter

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goabstract/gitcrypt/envelope"
	"github.com/goabstract/gitcrypt/internal/errutil"
	"github.com/goabstract/gitcrypt/keyfile"
)

// Clean reads plaintext from r and writes its encrypted envelope to w,
// sealed under entry. The whole input is read into memory before
// anything is written, since the envelope's nonce is a function of the
// complete plaintext; large input passes through a temporary file on
// the way (see bufferInput).
func Clean(w io.Writer, r io.Reader, entry *keyfile.Entry) error {
	plaintext, cleanup, err := bufferInput(r)
	defer cleanup()
	if err != nil {
		return fmt.Errorf("filter: clean: reading input: %w", err)
	}

	sealed, err := envelope.Encrypt(entry, plaintext)
	if err != nil {
		return fmt.Errorf("filter: clean: sealing input: %w", err)
	}

	if _, err := w.Write(sealed); err != nil {
		return fmt.Errorf("filter: clean: writing output: %w", err)
	}
	return nil
}

// Smudge reads an envelope from r and writes its plaintext to w. If r
// doesn't begin with the envelope magic tag, its bytes are copied to w
// unchanged: this is the fall-through that lets checkout succeed on
// files that were never actually encrypted (for instance while a
// repository is locked). A magic tag with no key that can open it is
// reported as ErrKeyUnavailable.
func Smudge(w io.Writer, r io.Reader, kf *keyfile.KeyFile) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("filter: smudge: reading input: %w", err)
	}

	plaintext, err := envelope.Decrypt(kf, data)
	switch {
	case errors.Is(err, envelope.ErrNotAnEnvelope):
		plaintext = data
	case errors.Is(err, envelope.ErrKeyUnavailable):
		return ErrKeyUnavailable
	case err != nil:
		return fmt.Errorf("filter: smudge: opening envelope: %w", err)
	}

	if _, err := w.Write(plaintext); err != nil {
		return fmt.Errorf("filter: smudge: writing output: %w", err)
	}
	return nil
}

// Diff opens the file at path and writes its plaintext to w if it's
// in encrypted form and the key is available; otherwise it writes the
// file's contents unchanged, including when the file is encrypted but
// no matching key is installed. This is best-effort, matching the
// host VCS's textconv contract, which has no way to fail a single file
// out of a larger diff — unlike Smudge, a missing key here is not an
// error.
func Diff(w io.Writer, path string, kf *keyfile.KeyFile) (err error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the host VCS, not untrusted user input
	if err != nil {
		return fmt.Errorf("filter: diff: opening %s: %w", path, err)
	}
	defer errutil.Close(f, &err)

	data, err := io.ReadAll(f)
	if err != nil {
		return fmt.Errorf("filter: diff: reading %s: %w", path, err)
	}

	plaintext, err := envelope.Decrypt(kf, data)
	switch {
	case errors.Is(err, envelope.ErrNotAnEnvelope), errors.Is(err, envelope.ErrKeyUnavailable):
		plaintext = data
	case err != nil:
		return fmt.Errorf("filter: diff: opening envelope in %s: %w", path, err)
	}

	if _, err := w.Write(plaintext); err != nil {
		return fmt.Errorf("filter: diff: writing output: %w", err)
	}
	return nil
}
