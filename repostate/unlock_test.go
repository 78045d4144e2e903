package repostate_test

import (
	"context"
	"testing"

	"github.com/goabstract/gitcrypt/internal/gitconfig"
	"github.com/goabstract/gitcrypt/repostate"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func TestUnlockWithNoKeyFilesReturnsAsymmetricUnsupported(t *testing.T) {
	t.Parallel()

	dir := initRepo(t)
	r, err := repostate.Open(afero.NewOsFs(), dir)
	require.NoError(t, err)

	err = r.Unlock(context.Background(), "/usr/bin/git-crypt", nil)
	require.ErrorIs(t, err, repostate.ErrAsymmetricUnlockUnsupported)
}

func TestUnlockInstallsKeyAndFilterFromExportedFile(t *testing.T) {
	t.Parallel()

	source := initRepo(t)
	srcRepo, err := repostate.Open(afero.NewOsFs(), source)
	require.NoError(t, err)
	require.NoError(t, srcRepo.Init(context.Background(), "", "/usr/bin/git-crypt"))

	exportPath := source + "/out.key"
	require.NoError(t, srcRepo.ExportKey("", exportPath))

	// Unlock a separate, un-initialized clone of the same repository
	// content using the exported key file. Since no paths are bound
	// to the git-crypt filter via .gitattributes here, re-checkout
	// never invokes the (unbuilt) filter executable.
	dir := initRepo(t)
	r, err := repostate.Open(afero.NewOsFs(), dir)
	require.NoError(t, err)

	require.NoError(t, r.Unlock(context.Background(), "/usr/bin/git-crypt", []string{exportPath}))

	lc, err := gitconfig.LoadLocalConfig(afero.NewOsFs(), r.Paths.ConfigFilePath())
	require.NoError(t, err)
	require.True(t, lc.HasFilter(""))

	installed, err := afero.Exists(afero.NewOsFs(), r.Paths.GitDirPath+"/git-crypt/keys/default")
	require.NoError(t, err)
	require.True(t, installed)
}
