package repostate

import (
	"context"
	"fmt"

	"github.com/goabstract/gitcrypt/attrquery"
	"github.com/goabstract/gitcrypt/internal/gitpath"
	"github.com/goabstract/gitcrypt/keyfile"
	"github.com/spf13/afero"
)

// Unlock installs every key file named in keyFilePaths (parsed in
// either the current tagged-field format or the legacy 96-byte
// format), registers the filter driver for each under its embedded
// name, and re-checks-out every path bound to one of those keys so
// the working tree shows decrypted content.
//
// Keys are installed in the order given; if a later key fails to
// parse or install, earlier keys remain installed (spec.md §7:
// lifecycle operations don't roll back on partial failure).
//
// Calling Unlock with no key files is the asymmetric-key unlock path,
// which this implementation doesn't support; it returns
// ErrAsymmetricUnlockUnsupported.
func (r *Repo) Unlock(ctx context.Context, exePath string, keyFilePaths []string) error {
	if len(keyFilePaths) == 0 {
		return ErrAsymmetricUnlockUnsupported
	}
	if err := r.requireClean(ctx); err != nil {
		return err
	}

	version, err := attrquery.VCSVersion(ctx)
	if err != nil {
		return fmt.Errorf("repostate: unlock: %w", err)
	}
	useBatch := attrquery.SupportsBatchAttrQuery(version)

	seen := make(map[string]bool)
	var toCheckout []string

	for _, kp := range keyFilePaths {
		data, err := afero.ReadFile(r.FS, kp)
		if err != nil {
			return fmt.Errorf("repostate: unlock: reading key file %s: %w", kp, err)
		}
		kf, err := keyfile.Parse(data)
		if err != nil {
			return fmt.Errorf("repostate: unlock: parsing key file %s: %w", kp, err)
		}

		internalPath := gitpath.InternalKeyPath(r.Paths.GitDirPath, kf.Name)
		if err := writeKeyFile(r.FS, internalPath, kf); err != nil {
			return err
		}
		if err := r.installFilter(kf.Name, exePath); err != nil {
			return err
		}

		bound, err := attrquery.PathsBoundTo(ctx, r.Paths.WorkTreePath, kf.Name, useBatch)
		if err != nil {
			return fmt.Errorf("repostate: unlock: resolving paths bound to key %q: %w", kf.Name, err)
		}
		for _, p := range bound {
			if !seen[p] {
				seen[p] = true
				toCheckout = append(toCheckout, p)
			}
		}
	}

	return r.touchAndCheckout(ctx, toCheckout)
}
