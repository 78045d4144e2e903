package repostate

import (
	"context"
	"fmt"

	"github.com/goabstract/gitcrypt/attrquery"
	"github.com/goabstract/gitcrypt/internal/gitconfig"
	"github.com/goabstract/gitcrypt/internal/gitpath"
)

// Lock removes the installed key for keyName, un-installs its filter
// driver, and re-checks-out every path bound to that key so the
// working tree shows encrypted content again.
//
// It fails with ErrNotInitialized if no key is installed under
// keyName.
func (r *Repo) Lock(ctx context.Context, keyName string) error {
	if err := r.requireClean(ctx); err != nil {
		return err
	}

	keyPath := gitpath.InternalKeyPath(r.Paths.GitDirPath, keyName)
	exists, err := fileExists(r.FS, keyPath)
	if err != nil {
		return err
	}
	if !exists {
		return ErrNotInitialized
	}

	version, err := attrquery.VCSVersion(ctx)
	if err != nil {
		return fmt.Errorf("repostate: lock: %w", err)
	}
	useBatch := attrquery.SupportsBatchAttrQuery(version)

	bound, err := attrquery.PathsBoundTo(ctx, r.Paths.WorkTreePath, keyName, useBatch)
	if err != nil {
		return fmt.Errorf("repostate: lock: resolving paths bound to key %q: %w", keyName, err)
	}

	if err := r.FS.Remove(keyPath); err != nil {
		return fmt.Errorf("repostate: lock: removing key file %s: %w", keyPath, err)
	}

	cfgPath := r.Paths.ConfigFilePath()
	lc, err := gitconfig.LoadLocalConfig(r.FS, cfgPath)
	if err != nil {
		return err
	}
	lc.RemoveFilter(keyName)
	if err := lc.Save(); err != nil {
		return err
	}

	return r.touchAndCheckout(ctx, bound)
}
