// Package keyfile implements the key-file binary format: a small,
// forward-compatible container for one or more generations of cipher
// and MAC keys, addressed by version number.
//
// Two formats are understood. The current format opens with a 12-byte
// magic preamble and a format version, followed by a tagged-field
// header and a sequence of tagged-field entries; unrecognized fields
// are skipped if their field_id is even, and rejected if odd, which
// lets newer writers extend the format without breaking older
// readers. The legacy format is a bare 96-byte blob (a 32-byte cipher
// key followed by a 64-byte MAC key) and is accepted, read-only, as an
// implicit single entry at version 0.
package keyfile

import (
	"sort"
)

// CurrentFormatVersion is the format version written by this package.
const CurrentFormatVersion uint32 = 2

// maxNameLen bounds a key file's display name.
const maxNameLen = 128

// KeyFile holds every generation of keys tracked under one key name.
// The zero value is not usable; construct one with New or Generate.
type KeyFile struct {
	// Name is the key's name, or "" for the default (unnamed) key.
	Name string

	entries map[uint32]*Entry
}

// New returns an empty key file with the given name. The name must
// satisfy ValidateName.
func New(name string) (*KeyFile, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	return &KeyFile{Name: name, entries: make(map[uint32]*Entry)}, nil
}

// Generate returns a new key file with the given name, seeded with one
// freshly generated entry at version 0.
func Generate(name string) (*KeyFile, error) {
	kf, err := New(name)
	if err != nil {
		return nil, err
	}
	entry, err := generateEntry(0)
	if err != nil {
		return nil, err
	}
	kf.entries[0] = entry
	return kf, nil
}

// ValidateName reports whether name is a legal key name: at most
// maxNameLen bytes, with no control characters and none of '/', '\',
// or ':' (all of which would be unsafe as a path component or
// git-config section name). The empty string is the default key and
// is always valid.
func ValidateName(name string) error {
	if name == "" {
		return nil
	}
	if len(name) > maxNameLen {
		return ErrInvalidName
	}
	for _, r := range name {
		switch {
		case r <= 0x1F || r == 0x7F:
			return ErrInvalidName
		case r == '/' || r == '\\' || r == ':':
			return ErrInvalidName
		}
	}
	return nil
}

// Add inserts entry into the key file. It fails if an entry already
// exists at entry.Version.
func (kf *KeyFile) Add(entry *Entry) error {
	if _, exists := kf.entries[entry.Version]; exists {
		return ErrVersionExists
	}
	kf.entries[entry.Version] = entry
	return nil
}

// Rotate generates a fresh entry at one past the highest existing
// version and adds it to the key file, returning the new entry. An
// empty key file (as returned by New) rotates to version 0.
func (kf *KeyFile) Rotate() (*Entry, error) {
	next := uint32(0)
	if len(kf.entries) > 0 {
		latest, err := kf.Latest()
		if err != nil {
			return nil, err
		}
		next = latest.Version + 1
	}
	entry, err := generateEntry(next)
	if err != nil {
		return nil, err
	}
	kf.entries[next] = entry
	return entry, nil
}

// Get returns the entry at the given version, or false if none exists.
func (kf *KeyFile) Get(version uint32) (*Entry, bool) {
	e, ok := kf.entries[version]
	return e, ok
}

// Latest returns the entry with the highest version number.
func (kf *KeyFile) Latest() (*Entry, error) {
	if len(kf.entries) == 0 {
		return nil, ErrNoEntries
	}
	var best *Entry
	for _, e := range kf.entries {
		if best == nil || e.Version > best.Version {
			best = e
		}
	}
	return best, nil
}

// IsFilled reports whether the key file holds at least one entry.
func (kf *KeyFile) IsFilled() bool {
	return len(kf.entries) > 0
}

// Entries returns every entry in the key file, sorted by descending
// version (newest first). This is also the order entries are written
// to disk.
func (kf *KeyFile) Entries() []*Entry {
	out := make([]*Entry, 0, len(kf.entries))
	for _, e := range kf.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Version > out[j].Version
	})
	return out
}

// Destroy wipes every entry's key material. The key file must not be
// used afterwards.
func (kf *KeyFile) Destroy() {
	for _, e := range kf.entries {
		e.Destroy()
	}
}
