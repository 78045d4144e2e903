package repostate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goabstract/gitcrypt/keyfile"
	"github.com/spf13/afero"
)

// fileExists reports whether path exists on fs.
func fileExists(fs afero.Fs, path string) (bool, error) {
	_, err := fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("repostate: checking %s: %w", path, err)
}

// writeKeyFile serializes kf and writes it to path on fs with 0o600
// permissions, as spec.md §4.7 requires for every key file this
// program writes to its own internal key directory.
func writeKeyFile(fs afero.Fs, path string, kf *keyfile.KeyFile) error {
	if err := fs.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("repostate: creating key directory for %s: %w", path, err)
	}
	if err := afero.WriteFile(fs, path, kf.Serialize(), 0o600); err != nil {
		return fmt.Errorf("repostate: writing key file %s: %w", path, err)
	}
	return nil
}

// readKeyFile loads and parses the key file at path on fs.
func readKeyFile(fs afero.Fs, path string) (*keyfile.KeyFile, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("repostate: reading key file %s: %w", path, err)
	}
	kf, err := keyfile.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("repostate: parsing key file %s: %w", path, err)
	}
	return kf, nil
}
