package attrquery

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goabstract/gitcrypt/gitproc"
)

// attributeName is the single git attribute this program inspects: a
// path is bound to a key if and only if its "filter" attribute names
// that key's filter driver.
const attributeName = "filter"

// unboundValues are filter-attribute values that mean "this path has
// no binding", per the host VCS's own attribute semantics.
var unboundValues = map[string]bool{
	"":            true,
	"unspecified": true,
	"unset":       true,
	"set":         true,
}

// BatchAttrQuery resolves the filter attribute for every path in
// paths using a single `git check-attr --stdin -z` invocation,
// streaming paths in on stdin while draining the NUL-framed
// (path, attribute, value) triples it writes back. This requires a
// host VCS new enough to support --stdin (see SupportsBatchAttrQuery).
func BatchAttrQuery(ctx context.Context, repoDir string, paths []string) (map[string]string, error) {
	ch := gitproc.New("git", "-C", repoDir, "check-attr", "--stdin", "-z", attributeName)
	s, err := ch.Start(ctx)
	if err != nil {
		return nil, fmt.Errorf("attrquery: starting batch check-attr: %w", err)
	}

	var stdin bytes.Buffer
	for _, p := range paths {
		stdin.WriteString(p)
		stdin.WriteByte(0)
	}
	if _, err := s.Write(stdin.Bytes()); err != nil {
		return nil, fmt.Errorf("attrquery: writing batch check-attr input: %w", err)
	}
	if err := s.CloseStdin(); err != nil {
		return nil, fmt.Errorf("attrquery: closing batch check-attr input: %w", err)
	}

	out, err := s.Wait()
	if err != nil {
		return nil, fmt.Errorf("attrquery: running batch check-attr: %w", err)
	}

	fields := bytes.Split(out, []byte{0})
	// the stream is NUL-terminated, so the split leaves one trailing
	// empty field
	if len(fields) > 0 && len(fields[len(fields)-1]) == 0 {
		fields = fields[:len(fields)-1]
	}
	if len(fields)%3 != 0 {
		return nil, fmt.Errorf("attrquery: malformed batch check-attr output (%d fields)", len(fields))
	}

	result := make(map[string]string, len(paths))
	for i := 0; i < len(fields); i += 3 {
		path := string(fields[i])
		value := string(fields[i+2])
		result[path] = value
	}
	return result, nil
}

// IndividualAttrQuery resolves the filter attribute one path at a
// time, for host VCS versions too old to support batch mode.
func IndividualAttrQuery(ctx context.Context, repoDir string, paths []string) (map[string]string, error) {
	result := make(map[string]string, len(paths))
	for _, p := range paths {
		args := []string{"-C", repoDir, "check-attr", attributeName, "--", p}
		out, err := gitproc.New("git", args...).RunText(ctx)
		if err != nil {
			return nil, fmt.Errorf("attrquery: querying attribute for %s: %w", p, err)
		}
		result[p] = parseSingleAttrLine(out)
	}
	return result, nil
}

// parseSingleAttrLine extracts the value from one line of
// `git check-attr <attr> -- <path>` output, which has the form
// "path: attr: value". A trailing line terminator is not part of the
// value.
func parseSingleAttrLine(line string) string {
	line = strings.TrimRight(line, "\r\n")
	idx := bytes.LastIndex([]byte(line), []byte(": "))
	if idx < 0 {
		return ""
	}
	return line[idx+2:]
}

// keyAttributeValue returns the filter-attribute value that marks a
// path as bound to keyName: "git-crypt" for the default key,
// "git-crypt-NAME" otherwise.
func keyAttributeValue(keyName string) string {
	if keyName == "" {
		return "git-crypt"
	}
	return "git-crypt-" + keyName
}

// PathsBoundTo queries attribute bindings for every tracked file in
// repoDir and returns the subset bound to keyName. It uses batch mode
// when useBatch is true, falling back to one query per path
// otherwise — see SupportsBatchAttrQuery for the version policy that
// decides useBatch.
func PathsBoundTo(ctx context.Context, repoDir, keyName string, useBatch bool) ([]string, error) {
	tracked, err := ListTrackedFiles(ctx, repoDir)
	if err != nil {
		return nil, err
	}
	paths := make([]string, len(tracked))
	for i, f := range tracked {
		paths[i] = f.Path
	}

	var values map[string]string
	if useBatch {
		values, err = BatchAttrQuery(ctx, repoDir, paths)
	} else {
		values, err = IndividualAttrQuery(ctx, repoDir, paths)
	}
	if err != nil {
		return nil, err
	}

	want := keyAttributeValue(keyName)
	var bound []string
	for _, p := range paths {
		v := values[p]
		if unboundValues[v] {
			continue
		}
		if v == want {
			bound = append(bound, p)
		}
	}
	return bound, nil
}
