package repostate

import (
	"fmt"

	"github.com/goabstract/gitcrypt/keyfile"
	"github.com/spf13/afero"
)

// Keygen generates a fresh, unnamed key file and writes it to path on
// fs. Unlike the other lifecycle operations, it neither reads nor
// writes any repository state.
func Keygen(fs afero.Fs, path string) error {
	kf, err := keyfile.Generate("")
	if err != nil {
		return fmt.Errorf("repostate: generating key: %w", err)
	}
	defer kf.Destroy()

	if err := afero.WriteFile(fs, path, kf.Serialize(), 0o600); err != nil {
		return fmt.Errorf("repostate: writing key file %s: %w", path, err)
	}
	return nil
}
