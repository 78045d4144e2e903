// Package pathutil contains helpers to locate paths relevant to a
// working tree.
package pathutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goabstract/gitcrypt/internal/gitpath"
)

// ErrNoRepo is returned when no repository could be found starting
// from the given path and walking up to the root
var ErrNoRepo = errors.New("not a git repository (or any of the parent directories)")

// RepoRoot returns the absolute path to the root of the working tree
// containing the current directory
func RepoRoot() (path string, err error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("could not get current working directory: %w", err)
	}
	return RepoRootFromPath(wd)
}

// RepoRootFromPath returns the absolute path to the root of the
// working tree containing p, by walking up the directory tree until
// a ".git" directory is found
func RepoRootFromPath(p string) (path string, err error) {
	p, err = filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("could not resolve absolute path: %w", err)
	}

	prev := ""
	for p != prev {
		info, statErr := os.Stat(filepath.Join(p, gitpath.DotGitPath))
		if statErr == nil && info.IsDir() {
			return p, nil
		}

		prev = p
		p = filepath.Dir(p)
	}
	return "", ErrNoRepo
}
