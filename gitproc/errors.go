package gitproc

import "errors"

// ErrHostVcsFailure is returned when a child process invoked through
// this package exits non-zero.
var ErrHostVcsFailure = errors.New("gitproc: host VCS command failed")
