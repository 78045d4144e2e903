package repostate

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/goabstract/gitcrypt/gitproc"
)

// checkoutBatchSize is the maximum number of paths passed to a single
// `git checkout` invocation, per spec.md §4.7's fixed batch-size
// policy.
const checkoutBatchSize = 100

// touchAndCheckout updates the modification time of every path in
// paths (so the host VCS's mtime-based staleness cache doesn't skip
// re-running the filter driver on them) and re-checks them out in
// batches, forcing the filter driver to run again with the
// now-installed or now-removed key.
func (r *Repo) touchAndCheckout(ctx context.Context, paths []string) error {
	now := time.Now()
	for _, p := range paths {
		full := filepath.Join(r.Paths.WorkTreePath, p)
		if err := r.FS.Chtimes(full, now, now); err != nil {
			return fmt.Errorf("repostate: updating modification time of %s: %w", p, err)
		}
	}

	for start := 0; start < len(paths); start += checkoutBatchSize {
		end := start + checkoutBatchSize
		if end > len(paths) {
			end = len(paths)
		}
		batch := paths[start:end]

		args := append([]string{"-C", r.Paths.WorkTreePath, "checkout", "--"}, batch...)
		if _, err := gitproc.New("git", args...).Run(ctx, nil); err != nil {
			return fmt.Errorf("repostate: checking out batch starting at %s: %w", batch[0], err)
		}
	}
	return nil
}
