package attrquery_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/goabstract/gitcrypt/attrquery"
	"github.com/goabstract/gitcrypt/internal/testhelper"
	"github.com/goabstract/gitcrypt/internal/testhelper/exe"
	"github.com/stretchr/testify/require"
)

// gitTestEnv pins author/committer identity so fixture commits don't
// depend on the machine's global git config.
var gitTestEnv = []string{ //nolint:gochecknoglobals // test fixture constant
	"GIT_AUTHOR_NAME=test", "GIT_AUTHOR_EMAIL=test@example.com",
	"GIT_COMMITTER_NAME=test", "GIT_COMMITTER_EMAIL=test@example.com",
}

// runGit shells out to the real git binary to build a fixture
// repository; it's the most direct way to exercise attrquery against
// on-disk state shaped exactly like what the host VCS produces.
func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	out, err := exe.RunIn(dir, gitTestEnv, "git", args...)
	require.NoErrorf(t, err, "git %v: %s", args, out)
}

func TestListTrackedFilesAndAttrQuery(t *testing.T) {
	dir, cleanup := testhelper.TempDir(t)
	defer cleanup()

	runGit(t, dir, "init", "-q")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "secret.txt"), []byte("top secret"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "plain.txt"), []byte("public"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitattributes"), []byte("secret.txt filter=git-crypt\n"), 0o644))
	runGit(t, dir, "add", ".")
	runGit(t, dir, "commit", "-q", "-m", "initial")

	ctx := context.Background()
	tracked, err := attrquery.ListTrackedFiles(ctx, dir)
	require.NoError(t, err)
	names := make(map[string]bool, len(tracked))
	for _, f := range tracked {
		names[f.Path] = true
	}
	require.True(t, names["secret.txt"])
	require.True(t, names["plain.txt"])

	version, err := attrquery.VCSVersion(ctx)
	require.NoError(t, err)
	useBatch := attrquery.SupportsBatchAttrQuery(version)

	bound, err := attrquery.PathsBoundTo(ctx, dir, "", useBatch)
	require.NoError(t, err)
	require.Equal(t, []string{"secret.txt"}, bound)
}
