package repostate

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/goabstract/gitcrypt/attrquery"
	"github.com/goabstract/gitcrypt/envelope"
	"github.com/goabstract/gitcrypt/internal/errutil"
)

// PathStatus describes one tracked path's encryption state.
type PathStatus struct {
	Path string
	// KeyName is the key this path's filter attribute names, or "" if
	// the path has no git-crypt binding at all.
	KeyName string
	// Bound reports whether the path has a git-crypt filter binding.
	Bound bool
	// EncryptedOnDisk reports whether the file's current working-tree
	// content begins with the envelope magic tag. This can disagree
	// with Bound: a bound path looks like plaintext right after
	// `lock` removes its key but before the next checkout, and an
	// unbound path can still hold old ciphertext if its attribute
	// binding was removed without re-checking it out.
	EncryptedOnDisk bool
}

// Status enumerates every tracked path and reports its encryption
// state. When encryptedOnly is true, only paths with a git-crypt
// binding are returned. It fails with ErrWorkingDirectoryDirty if the
// working tree isn't clean.
func (r *Repo) Status(ctx context.Context, encryptedOnly bool) ([]PathStatus, error) {
	if err := r.requireClean(ctx); err != nil {
		return nil, err
	}

	tracked, err := attrquery.ListTrackedFiles(ctx, r.Paths.WorkTreePath)
	if err != nil {
		return nil, fmt.Errorf("repostate: status: %w", err)
	}
	paths := make([]string, len(tracked))
	for i, f := range tracked {
		paths[i] = f.Path
	}

	version, err := attrquery.VCSVersion(ctx)
	if err != nil {
		return nil, fmt.Errorf("repostate: status: %w", err)
	}

	var values map[string]string
	if attrquery.SupportsBatchAttrQuery(version) {
		values, err = attrquery.BatchAttrQuery(ctx, r.Paths.WorkTreePath, paths)
	} else {
		values, err = attrquery.IndividualAttrQuery(ctx, r.Paths.WorkTreePath, paths)
	}
	if err != nil {
		return nil, fmt.Errorf("repostate: status: %w", err)
	}

	var out []PathStatus
	for _, p := range paths {
		keyName, bound := bindingFromAttrValue(values[p])
		if encryptedOnly && !bound {
			continue
		}

		encrypted, err := r.isEncryptedOnDisk(p)
		if err != nil {
			return nil, err
		}

		out = append(out, PathStatus{
			Path:            p,
			KeyName:         keyName,
			Bound:           bound,
			EncryptedOnDisk: encrypted,
		})
	}
	return out, nil
}

// bindingFromAttrValue interprets a path's "filter" attribute value,
// returning the key name it's bound to (empty for the default key)
// and whether it's bound at all.
func bindingFromAttrValue(value string) (keyName string, bound bool) {
	switch value {
	case "", "unspecified", "unset", "set":
		return "", false
	case "git-crypt":
		return "", true
	default:
		const prefix = "git-crypt-"
		if len(value) > len(prefix) && value[:len(prefix)] == prefix {
			return value[len(prefix):], true
		}
		return "", false
	}
}

// isEncryptedOnDisk peeks at the first bytes of path's current
// working-tree content to check for the envelope magic tag.
func (r *Repo) isEncryptedOnDisk(path string) (_ bool, err error) {
	f, err := r.FS.Open(filepath.Join(r.Paths.WorkTreePath, path))
	if err != nil {
		return false, fmt.Errorf("repostate: status: opening %s: %w", path, err)
	}
	defer errutil.Close(f, &err)

	head := make([]byte, envelope.MagicLen)
	n, err := f.Read(head)
	if err != nil && n == 0 {
		return false, nil
	}
	return envelope.HasMagic(head[:n]), nil
}
