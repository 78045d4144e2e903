package repostate_test

import (
	"context"
	"testing"

	"github.com/goabstract/gitcrypt/internal/gitconfig"
	"github.com/goabstract/gitcrypt/repostate"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestInitGeneratesKeyAndInstallsFilter(t *testing.T) {
	t.Parallel()

	dir := initRepo(t)
	r, err := repostate.Open(afero.NewOsFs(), dir)
	require.NoError(t, err)

	require.NoError(t, r.Init(context.Background(), "", "/usr/bin/git-crypt"))

	lc, err := gitconfig.LoadLocalConfig(afero.NewOsFs(), r.Paths.ConfigFilePath())
	require.NoError(t, err)
	require.True(t, lc.HasFilter(""))
}

func TestInitRejectsInvalidKeyName(t *testing.T) {
	t.Parallel()

	dir := initRepo(t)
	r, err := repostate.Open(afero.NewOsFs(), dir)
	require.NoError(t, err)

	err = r.Init(context.Background(), "bad/name", "/usr/bin/git-crypt")
	require.Error(t, err)
	require.NotErrorIs(t, err, repostate.ErrAlreadyInitialized)
}

func TestInitFailsWhenAlreadyInitialized(t *testing.T) {
	t.Parallel()

	dir := initRepo(t)
	r, err := repostate.Open(afero.NewOsFs(), dir)
	require.NoError(t, err)

	require.NoError(t, r.Init(context.Background(), "team", "/usr/bin/git-crypt"))
	err = r.Init(context.Background(), "team", "/usr/bin/git-crypt")
	require.ErrorIs(t, err, repostate.ErrAlreadyInitialized)
}
