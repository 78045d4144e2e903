package repostate

import (
	"fmt"

	"github.com/goabstract/gitcrypt/internal/gitpath"
	"github.com/spf13/afero"
)

// ExportKey writes the installed key file for keyName, verbatim, to
// path. It fails with ErrNotInitialized if no key is installed under
// keyName. It does not check whether the working directory is clean.
func (r *Repo) ExportKey(keyName, path string) error {
	keyPath := gitpath.InternalKeyPath(r.Paths.GitDirPath, keyName)
	exists, err := fileExists(r.FS, keyPath)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotInitialized
	}

	data, err := afero.ReadFile(r.FS, keyPath)
	if err != nil {
		return fmt.Errorf("repostate: reading installed key %s: %w", keyPath, err)
	}
	if err := afero.WriteFile(r.FS, path, data, 0o600); err != nil {
		return fmt.Errorf("repostate: exporting key to %s: %w", path, err)
	}
	return nil
}
