package attrquery

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/goabstract/gitcrypt/gitproc"
)

// regularFileModes are the index modes `ls-files --stage` reports for
// ordinary tracked content (plain files and symlinks). Anything else
// (gitlinks, or a mode that fails to parse) is not something this
// program's filter driver ever touches.
var regularFileModes = map[string]bool{
	"100644": true,
	"100755": true,
	"120000": true,
}

// TrackedFile is one entry from the host VCS's index.
type TrackedFile struct {
	Mode string
	OID  string
	// Stage is 0 for a normally-merged entry, 1-3 during a conflict.
	Stage int
	Path  string
}

// ListTrackedFiles runs `git ls-files --stage -z` in repoDir and
// returns every tracked regular-file entry, skipping anything whose
// mode isn't an ordinary file or symlink.
func ListTrackedFiles(ctx context.Context, repoDir string) ([]TrackedFile, error) {
	ch := gitproc.New("git", "-C", repoDir, "ls-files", "--stage", "-z")
	out, err := ch.Run(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("attrquery: listing tracked files: %w", err)
	}

	var files []TrackedFile
	for _, record := range bytes.Split(out, []byte{0}) {
		if len(record) == 0 {
			continue
		}
		entry, ok, err := parseStageEntry(string(record))
		if err != nil {
			return nil, fmt.Errorf("attrquery: parsing index entry %q: %w", record, err)
		}
		if !ok {
			continue
		}
		files = append(files, entry)
	}
	return files, nil
}

// parseStageEntry parses one "<mode> <oid> <stage>\t<path>" record.
// ok is false for a well-formed entry this program doesn't care about
// (not a regular file or symlink).
func parseStageEntry(record string) (entry TrackedFile, ok bool, err error) {
	tab := strings.IndexByte(record, '\t')
	if tab < 0 {
		return TrackedFile{}, false, fmt.Errorf("missing path separator")
	}
	fields := strings.Fields(record[:tab])
	if len(fields) != 3 {
		return TrackedFile{}, false, fmt.Errorf("expected mode, oid, stage")
	}
	mode, oid, stageStr := fields[0], fields[1], fields[2]
	stage, err := strconv.Atoi(stageStr)
	if err != nil {
		return TrackedFile{}, false, fmt.Errorf("invalid stage %q: %w", stageStr, err)
	}
	if !regularFileModes[mode] {
		return TrackedFile{}, false, nil
	}
	return TrackedFile{Mode: mode, OID: oid, Stage: stage, Path: record[tab+1:]}, true, nil
}
