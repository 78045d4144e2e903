package gitconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goabstract/gitcrypt/internal/errutil"
	"github.com/spf13/afero"
	"gopkg.in/ini.v1"
)

// loadOptions mirrors the teacher's config-parsing tolerance: a
// config file with lines this program doesn't understand shouldn't
// become unreadable.
var loadOptions = ini.LoadOptions{ //nolint:gochecknoglobals // treated as a const; never mutated
	SkipUnrecognizableLines: true,
}

// LocalConfig is the repository's local config file (".git/config"),
// opened for both reading existing filter-driver bindings and writing
// new ones.
type LocalConfig struct {
	fs   afero.Fs
	path string
	file *ini.File
}

// LoadLocalConfig opens the local config file at path on fs, creating
// an empty one in memory if it doesn't exist yet.
func LoadLocalConfig(fs afero.Fs, path string) (_ *LocalConfig, err error) {
	f, err := fs.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &LocalConfig{fs: fs, path: path, file: ini.Empty(loadOptions)}, nil
		}
		return nil, fmt.Errorf("gitconfig: opening %s: %w", path, err)
	}
	defer errutil.Close(f, &err)

	file, err := ini.LoadSources(loadOptions, f)
	if err != nil {
		return nil, fmt.Errorf("gitconfig: parsing %s: %w", path, err)
	}
	return &LocalConfig{fs: fs, path: path, file: file}, nil
}

// Save writes the config back to its file, creating parent
// directories as needed.
func (c *LocalConfig) Save() (err error) {
	if err := c.fs.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("gitconfig: creating directory for %s: %w", c.path, err)
	}
	f, err := c.fs.OpenFile(c.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("gitconfig: opening %s for write: %w", c.path, err)
	}
	defer errutil.Close(f, &err)

	if _, err := c.file.WriteTo(f); err != nil {
		return fmt.Errorf("gitconfig: writing %s: %w", c.path, err)
	}
	return nil
}

// filterSectionName returns the name of the filter section for a
// key: "git-crypt" for the default key, "git-crypt-NAME" otherwise.
func filterSectionName(keyName string) string {
	if keyName == "" {
		return "git-crypt"
	}
	return "git-crypt-" + keyName
}

// InstallFilter registers a filter driver under keyName that invokes
// exePath with clean/smudge/diff subcommands, and marks it required
// so the host VCS refuses to check out content it can't decrypt.
func (c *LocalConfig) InstallFilter(keyName, exePath string) error {
	section := "filter \"" + filterSectionName(keyName) + "\""
	args := "--key-name=" + keyName

	sec, err := c.file.NewSection(section)
	if err != nil {
		return fmt.Errorf("gitconfig: creating section %s: %w", section, err)
	}
	if _, err := sec.NewKey("smudge", fmt.Sprintf("%q smudge %s", exePath, args)); err != nil {
		return fmt.Errorf("gitconfig: setting smudge command: %w", err)
	}
	if _, err := sec.NewKey("clean", fmt.Sprintf("%q clean %s", exePath, args)); err != nil {
		return fmt.Errorf("gitconfig: setting clean command: %w", err)
	}
	if _, err := sec.NewKey("required", "true"); err != nil {
		return fmt.Errorf("gitconfig: setting required flag: %w", err)
	}

	diffSection := "diff \"" + filterSectionName(keyName) + "\""
	diffSec, err := c.file.NewSection(diffSection)
	if err != nil {
		return fmt.Errorf("gitconfig: creating section %s: %w", diffSection, err)
	}
	if _, err := diffSec.NewKey("textconv", fmt.Sprintf("%q diff %s", exePath, args)); err != nil {
		return fmt.Errorf("gitconfig: setting textconv command: %w", err)
	}

	return nil
}

// RemoveFilter un-installs the filter and diff sections for keyName,
// if present.
func (c *LocalConfig) RemoveFilter(keyName string) {
	c.file.DeleteSection("filter \"" + filterSectionName(keyName) + "\"")
	c.file.DeleteSection("diff \"" + filterSectionName(keyName) + "\"")
}

// HasFilter reports whether a filter driver is installed for keyName.
func (c *LocalConfig) HasFilter(keyName string) bool {
	return c.file.HasSection("filter \"" + filterSectionName(keyName) + "\"")
}
