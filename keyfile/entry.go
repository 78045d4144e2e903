package keyfile

import (
	"crypto/rand"

	"github.com/goabstract/gitcrypt/internal/secbuf"
	"github.com/goabstract/gitcrypt/internal/streamcrypto"
)

// Entry is one (cipher key, MAC key, version) triple. Both key slices
// are always exactly their full length; no partial entry is ever
// constructed.
type Entry struct {
	// Version identifies this entry within its key file. Versions are
	// unique and monotonically increasing as new entries are added.
	Version uint32
	// CipherKey is the 32-byte key used with internal/streamcrypto's
	// block cipher
	CipherKey []byte
	// MACKey is the 64-byte key used to derive a file's nonce
	MACKey []byte
}

// generateEntry creates a new entry at version with cryptographically
// random keys.
func generateEntry(version uint32) (*Entry, error) {
	cipherKey := make([]byte, streamcrypto.KeySize)
	if _, err := rand.Read(cipherKey); err != nil {
		return nil, err
	}
	macKey := make([]byte, streamcrypto.MACKeySize)
	if _, err := rand.Read(macKey); err != nil {
		return nil, err
	}
	return &Entry{
		Version:   version,
		CipherKey: cipherKey,
		MACKey:    macKey,
	}, nil
}

// Destroy wipes the entry's secret key material. The entry must not be
// used afterwards.
func (e *Entry) Destroy() {
	secbuf.Wipe(e.CipherKey)
	secbuf.Wipe(e.MACKey)
}
