// Package gitconfig resolves a repository's control-directory paths
// from the environment and reads/writes its local config file, the
// same way the host VCS itself would.
package gitconfig

import (
	"fmt"
	"path/filepath"

	"github.com/goabstract/gitcrypt/internal/env"
	"github.com/goabstract/gitcrypt/internal/gitpath"
	"github.com/goabstract/gitcrypt/internal/pathutil"
)

// Paths holds the resolved locations this program cares about: the
// control directory and the working tree it belongs to.
type Paths struct {
	// GitDirPath is the control directory, e.g. ".git".
	GitDirPath string
	// WorkTreePath is the root of the working tree.
	WorkTreePath string
}

// Resolve determines a repository's control-directory and work-tree
// paths, honoring $GIT_DIR/$GIT_WORK_TREE when set and otherwise
// walking up from workingDir to find a ".git" directory, the same
// precedence the host VCS itself applies.
func Resolve(e *env.Env, workingDir string) (*Paths, error) {
	p := &Paths{
		GitDirPath:   e.Get("GIT_DIR"),
		WorkTreePath: e.Get("GIT_WORK_TREE"),
	}

	if p.GitDirPath == "" {
		root, err := pathutil.RepoRootFromPath(workingDir)
		if err != nil {
			return nil, fmt.Errorf("gitconfig: resolving repository root: %w", err)
		}
		p.WorkTreePath = root
		p.GitDirPath = filepath.Join(root, gitpath.DotGitPath)
	} else if !filepath.IsAbs(p.GitDirPath) {
		p.GitDirPath = filepath.Join(workingDir, p.GitDirPath)
	}

	if p.WorkTreePath == "" {
		p.WorkTreePath = filepath.Dir(p.GitDirPath)
	} else if !filepath.IsAbs(p.WorkTreePath) {
		p.WorkTreePath = filepath.Join(workingDir, p.WorkTreePath)
	}

	return p, nil
}

// ConfigFilePath returns the path to p's local config file.
func (p *Paths) ConfigFilePath() string {
	return gitpath.ConfigFilePath(p.GitDirPath)
}
