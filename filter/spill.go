package filter

import (
	"io"
	"os"

	"github.com/google/uuid"
)

// spillThreshold is the input size at which bufferInput stops reading
// into its fixed in-memory buffer and passes the input through a
// temporary file. Below it, the simpler in-memory path avoids the cost
// of a filesystem round trip for the common case of small tracked
// files.
const spillThreshold = 32 << 20 // 32 MiB

// bufferInput reads all of r. Input shorter than spillThreshold is
// returned from an in-memory buffer; input of spillThreshold bytes or
// more is written to a uniquely-named temporary file (mode 0o600) and
// then read back whole, so the returned slice holds the complete input
// in memory either way. It also returns a cleanup function the caller
// must defer; cleanup removes the temporary file, if any, on every
// exit path including error returns, so a failed clean never leaves
// plaintext behind on disk.
func bufferInput(r io.Reader) (_ []byte, cleanup func(), err error) {
	cleanup = func() {}

	head := make([]byte, spillThreshold)
	n, readErr := io.ReadFull(r, head)
	switch {
	case readErr == io.ErrUnexpectedEOF || readErr == io.EOF:
		return head[:n], cleanup, nil
	case readErr != nil:
		return nil, cleanup, readErr
	}

	// input reached the threshold: write it and the rest of r to disk,
	// then read the whole file back
	tmp, err := os.CreateTemp("", "git-crypt-clean-"+uuid.NewString()+"-*")
	if err != nil {
		return nil, cleanup, err
	}
	path := tmp.Name()
	cleanup = func() { os.Remove(path) } //nolint:errcheck // best-effort cleanup

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close() //nolint:errcheck
		return nil, cleanup, err
	}
	if _, err := tmp.Write(head); err != nil {
		tmp.Close() //nolint:errcheck
		return nil, cleanup, err
	}
	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close() //nolint:errcheck
		return nil, cleanup, err
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close() //nolint:errcheck
		return nil, cleanup, err
	}
	data, err := io.ReadAll(tmp)
	tmp.Close() //nolint:errcheck
	if err != nil {
		return nil, cleanup, err
	}
	return data, cleanup, nil
}
