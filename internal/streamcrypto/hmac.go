package streamcrypto

import (
	"crypto/hmac"
	"crypto/sha1" //nolint:gosec // HMAC-SHA1 is the nonce-derivation primitive this format is defined in terms of, not used for collision resistance
	"hash"
)

const (
	// MACKeySize is the required length, in bytes, of a MAC key. It
	// matches HMAC-SHA1's internal block size exactly, so the key fills
	// one block with no padding.
	MACKeySize = 64
	// TagSize is the length, in bytes, of a finalized MAC tag
	TagSize = sha1.Size
)

// MAC is an incremental HMAC-SHA1 accumulator. Update may be called
// any number of times; Finalize consumes the accumulated state and may
// only be called once.
type MAC struct {
	h hash.Hash
}

// NewMAC returns a MAC keyed with key, which must be exactly
// MACKeySize octets.
func NewMAC(key []byte) (*MAC, error) {
	if len(key) != MACKeySize {
		return nil, ErrInvalidKeySize
	}
	return &MAC{h: hmac.New(sha1.New, key)}, nil
}

// Update feeds more data into the MAC.
func (m *MAC) Update(p []byte) {
	m.h.Write(p) //nolint:errcheck // hash.Hash.Write never returns an error
}

// Finalize returns the TagSize-octet tag for everything written so
// far.
func (m *MAC) Finalize() []byte {
	return m.h.Sum(nil)
}

// Sum computes the HMAC-SHA1 tag of data under key in one call.
func Sum(key, data []byte) ([]byte, error) {
	m, err := NewMAC(key)
	if err != nil {
		return nil, err
	}
	m.Update(data)
	return m.Finalize(), nil
}
