package filter

import "errors"

// ErrKeyUnavailable is returned by Smudge when the input begins with
// the envelope magic tag but no installed key decrypts it.
var ErrKeyUnavailable = errors.New("filter: key unavailable to decrypt this file")
