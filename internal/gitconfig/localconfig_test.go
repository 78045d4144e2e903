package gitconfig_test

import (
	"testing"

	"github.com/goabstract/gitcrypt/internal/gitconfig"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallAndRemoveFilter(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	path := "/repo/.git/config"

	lc, err := gitconfig.LoadLocalConfig(fs, path)
	require.NoError(t, err)
	assert.False(t, lc.HasFilter(""))

	require.NoError(t, lc.InstallFilter("", "/usr/bin/git-crypt"))
	assert.True(t, lc.HasFilter(""))
	require.NoError(t, lc.Save())

	reloaded, err := gitconfig.LoadLocalConfig(fs, path)
	require.NoError(t, err)
	assert.True(t, reloaded.HasFilter(""))

	reloaded.RemoveFilter("")
	assert.False(t, reloaded.HasFilter(""))
}

func TestInstallFilterNamedKey(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	lc, err := gitconfig.LoadLocalConfig(fs, "/repo/.git/config")
	require.NoError(t, err)

	require.NoError(t, lc.InstallFilter("work", "/usr/bin/git-crypt"))
	assert.True(t, lc.HasFilter("work"))
	assert.False(t, lc.HasFilter(""))
}

func TestLoadLocalConfigMissingFileStartsEmpty(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	lc, err := gitconfig.LoadLocalConfig(fs, "/repo/.git/config")
	require.NoError(t, err)
	assert.False(t, lc.HasFilter(""))
}
