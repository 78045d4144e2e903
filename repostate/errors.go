package repostate

import "errors"

var (
	// ErrAlreadyInitialized is returned by Init when a key file already
	// exists for the requested key name.
	ErrAlreadyInitialized = errors.New("repostate: repository is already initialized for this key")
	// ErrNotInitialized is returned when an operation needs an installed
	// key that isn't there.
	ErrNotInitialized = errors.New("repostate: no key installed under this name")
	// ErrWorkingDirectoryDirty is returned by Init, Unlock, Lock and
	// Status when the working tree has staged or unstaged changes.
	ErrWorkingDirectoryDirty = errors.New("repostate: working directory has uncommitted changes")
	// ErrAsymmetricUnlockUnsupported is returned by Unlock when called
	// with no key files: the original asymmetric-key-wrapping unlock
	// path (decrypting an installed collaborator's GPG-wrapped key) is
	// out of scope for this implementation.
	ErrAsymmetricUnlockUnsupported = errors.New("repostate: unlock with no key file requires asymmetric-key support, which isn't implemented")
)
