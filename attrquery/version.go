// Package attrquery queries the host VCS to find out which tracked
// paths are bound, via the filter attribute, to which git-crypt key.
package attrquery

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goabstract/gitcrypt/gitproc"
)

// Version is a host VCS version, parsed from `git --version`.
type Version struct {
	Major, Minor, Patch int
}

var versionPattern = regexp.MustCompile(`(\d+)\.(\d+)\.(\d+)`)

// VCSVersion runs `git --version` and parses the result.
func VCSVersion(ctx context.Context) (Version, error) {
	out, err := gitproc.New("git", "--version").RunText(ctx)
	if err != nil {
		return Version{}, fmt.Errorf("attrquery: querying git version: %w", err)
	}

	m := versionPattern.FindStringSubmatch(out)
	if m == nil {
		return Version{}, fmt.Errorf("attrquery: could not parse git version from %q", out)
	}
	major, _ := strconv.Atoi(m[1])
	minor, _ := strconv.Atoi(m[2])
	patch, _ := strconv.Atoi(m[3])
	return Version{Major: major, Minor: minor, Patch: patch}, nil
}

// SupportsBatchAttrQuery reports whether v is recent enough to
// support `git check-attr --stdin -z` (introduced in 1.8.5). Older
// versions must be queried one path at a time.
func SupportsBatchAttrQuery(v Version) bool {
	switch {
	case v.Major != 1:
		return v.Major > 1
	case v.Minor != 8:
		return v.Minor > 8
	default:
		return v.Patch >= 5
	}
}
