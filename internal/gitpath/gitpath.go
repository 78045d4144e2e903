// Package gitpath contains path constants for locating the host VCS's
// control directory and the git-crypt state kept inside it.
package gitpath

import "path/filepath"

// Well-known paths inside a working tree and its control directory
const (
	// DotGitPath is the name of the control directory at the root of
	// a working tree
	DotGitPath = ".git"
	// ConfigPath is the name of the control directory's local config
	// file
	ConfigPath = "config"
	// AttributesPath is the name of the attributes file at the root of
	// the working tree
	AttributesPath = ".gitattributes"

	// CryptDirName is the name of the directory, inside the control
	// directory, that holds all git-crypt state
	CryptDirName = "git-crypt"
	// KeysDirName is the name of the directory, inside CryptDirName,
	// that holds the installed key files
	KeysDirName = "keys"
	// DefaultKeyName is the name used on disk for the unnamed/default key
	DefaultKeyName = "default"
)

// CryptDir returns the path to the git-crypt state directory inside
// the given control directory
func CryptDir(gitDir string) string {
	return filepath.Join(gitDir, CryptDirName)
}

// KeysDir returns the path to the directory holding installed key
// files inside the given control directory
func KeysDir(gitDir string) string {
	return filepath.Join(CryptDir(gitDir), KeysDirName)
}

// InternalKeyPath returns the path that the internal key file for
// name should be stored at. An empty name maps to the default key.
func InternalKeyPath(gitDir, name string) string {
	if name == "" {
		name = DefaultKeyName
	}
	return filepath.Join(KeysDir(gitDir), name)
}

// ConfigFilePath returns the path to the control directory's local
// config file
func ConfigFilePath(gitDir string) string {
	return filepath.Join(gitDir, ConfigPath)
}
