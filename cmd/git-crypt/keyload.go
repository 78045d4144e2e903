package main

import (
	"fmt"
	"os"

	"github.com/goabstract/gitcrypt/internal/env"
	"github.com/goabstract/gitcrypt/internal/gitconfig"
	"github.com/goabstract/gitcrypt/internal/gitpath"
	"github.com/goabstract/gitcrypt/keyfile"
	"github.com/spf13/afero"
)

// loadInstalledKeyFile reads and parses the key file installed under
// keyName in the repository containing the current working
// directory, for use by the clean/smudge/diff filter invocations.
func loadInstalledKeyFile(keyName string) (*keyfile.KeyFile, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}
	paths, err := gitconfig.Resolve(env.NewFromOs(), wd)
	if err != nil {
		return nil, fmt.Errorf("resolving repository: %w", err)
	}

	keyPath := gitpath.InternalKeyPath(paths.GitDirPath, keyName)
	data, err := afero.ReadFile(afero.NewOsFs(), keyPath)
	if err != nil {
		return nil, fmt.Errorf("reading installed key %s: %w", keyPath, err)
	}
	return keyfile.Parse(data)
}
