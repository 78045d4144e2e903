package keyfile

import "errors"

var (
	// ErrMalformed is returned when a key-file octet stream is
	// structurally invalid: bad magic, an oversized field, or a
	// truncated entry
	ErrMalformed = errors.New("keyfile: malformed key file")
	// ErrIncompatible is returned when a key file uses a critical
	// unknown field or an unsupported format version
	ErrIncompatible = errors.New("keyfile: incompatible key file, please upgrade")
	// ErrInvalidName is returned when a key name violates the
	// character rules
	ErrInvalidName = errors.New("keyfile: invalid key name")
	// ErrVersionExists is returned by Add when an entry already exists
	// at the given version
	ErrVersionExists = errors.New("keyfile: entry version already exists")
	// ErrNoEntries is returned by Latest when the key file holds no
	// entries
	ErrNoEntries = errors.New("keyfile: key file has no entries")
)
