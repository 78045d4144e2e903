// Package repostate implements the repository lifecycle operations:
// init, keygen, export-key, unlock, lock, and status. Init, Unlock,
// Lock and Status require a clean working directory; Keygen and
// ExportKey do not check the working directory.
package repostate

import (
	"context"
	"fmt"
	"strings"

	"github.com/goabstract/gitcrypt/gitproc"
	"github.com/goabstract/gitcrypt/internal/env"
	"github.com/goabstract/gitcrypt/internal/gitconfig"
	"github.com/spf13/afero"
)

// Repo is a handle onto one repository's control directory and
// working tree, through which every lifecycle operation is performed.
type Repo struct {
	FS    afero.Fs
	Paths *gitconfig.Paths
}

// Open resolves the repository containing workingDir and returns a
// Repo for it. fs is the filesystem used for every file this program
// manages itself (key files, the local config); the working tree's
// tracked content is always read and written through the host VCS.
func Open(fs afero.Fs, workingDir string) (*Repo, error) {
	paths, err := gitconfig.Resolve(env.NewFromOs(), workingDir)
	if err != nil {
		return nil, fmt.Errorf("repostate: opening repository: %w", err)
	}
	return &Repo{FS: fs, Paths: paths}, nil
}

// requireClean fails with ErrWorkingDirectoryDirty if the working tree
// has any staged or unstaged modification relative to HEAD.
func (r *Repo) requireClean(ctx context.Context) error {
	out, err := gitproc.New("git", "-C", r.Paths.WorkTreePath, "status", "--porcelain").RunText(ctx)
	if err != nil {
		return fmt.Errorf("repostate: checking working directory status: %w", err)
	}
	if strings.TrimSpace(out) != "" {
		return ErrWorkingDirectoryDirty
	}
	return nil
}
