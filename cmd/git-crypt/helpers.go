package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/goabstract/gitcrypt/repostate"
	"github.com/spf13/afero"
)

// usageError marks an error as a command-line usage mistake rather
// than a failure of the underlying operation, so the process exits
// with code 2 instead of 1.
type usageError struct {
	err error
}

func newUsageError(format string, a ...interface{}) error {
	return &usageError{err: fmt.Errorf(format, a...)}
}

func (u *usageError) Error() string { return u.err.Error() }
func (u *usageError) Unwrap() error { return u.err }

// exitCodeFor maps a returned error to the process exit code spec'd
// for this program: 0 success, 1 operation error, 2 usage error.
func exitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	var ue *usageError
	if errors.As(err, &ue) {
		return 2
	}
	return 1
}

// openRepo resolves the git-crypt-managed repository containing the
// current working directory.
func openRepo() (*repostate.Repo, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	return repostate.Open(afero.NewOsFs(), wd)
}

// thisExecutable returns the absolute path to the running binary, so
// a filter driver entry can be installed that re-invokes it.
func thisExecutable() (string, error) {
	path, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating this executable: %w", err)
	}
	return path, nil
}
