package gitconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goabstract/gitcrypt/internal/env"
	"github.com/goabstract/gitcrypt/internal/gitconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkGitDir(root string) error {
	return os.MkdirAll(filepath.Join(root, ".git"), 0o755)
}

func TestResolveViaEnv(t *testing.T) {
	t.Parallel()

	e := env.NewFromKVList([]string{"GIT_DIR=/repo/.git", "GIT_WORK_TREE=/repo"})
	p, err := gitconfig.Resolve(e, "/somewhere/else")
	require.NoError(t, err)
	assert.Equal(t, "/repo/.git", p.GitDirPath)
	assert.Equal(t, "/repo", p.WorkTreePath)
}

func TestResolveByWalkingUp(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, mkGitDir(root))
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	e := env.NewFromKVList(nil)
	p, err := gitconfig.Resolve(e, nested)
	require.NoError(t, err)
	assert.Equal(t, root, p.WorkTreePath)
	assert.Equal(t, filepath.Join(root, ".git"), p.GitDirPath)
}
