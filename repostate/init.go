package repostate

import (
	"context"
	"fmt"

	"github.com/goabstract/gitcrypt/internal/gitconfig"
	"github.com/goabstract/gitcrypt/internal/gitpath"
	"github.com/goabstract/gitcrypt/keyfile"
)

// Init generates a fresh key file for keyName (the empty string for
// the default key), installs it into the control directory, and
// configures the host VCS's filter driver to invoke exePath for
// clean/smudge/diff on paths bound to this key.
//
// It fails with ErrAlreadyInitialized if a key is already installed
// under keyName, and with ErrWorkingDirectoryDirty if the working
// tree isn't clean.
func (r *Repo) Init(ctx context.Context, keyName, exePath string) error {
	if err := keyfile.ValidateName(keyName); err != nil {
		return err
	}
	if err := r.requireClean(ctx); err != nil {
		return err
	}

	keyPath := gitpath.InternalKeyPath(r.Paths.GitDirPath, keyName)
	if exists, err := fileExists(r.FS, keyPath); err != nil {
		return err
	} else if exists {
		return ErrAlreadyInitialized
	}

	kf, err := keyfile.Generate(keyName)
	if err != nil {
		return fmt.Errorf("repostate: generating key: %w", err)
	}
	defer kf.Destroy()

	if err := writeKeyFile(r.FS, keyPath, kf); err != nil {
		return err
	}

	return r.installFilter(keyName, exePath)
}

// installFilter registers the filter/diff driver for keyName in the
// repository's local config.
func (r *Repo) installFilter(keyName, exePath string) error {
	cfgPath := r.Paths.ConfigFilePath()
	lc, err := gitconfig.LoadLocalConfig(r.FS, cfgPath)
	if err != nil {
		return err
	}
	if err := lc.InstallFilter(keyName, exePath); err != nil {
		return fmt.Errorf("repostate: installing filter driver: %w", err)
	}
	return lc.Save()
}
