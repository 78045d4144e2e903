package envelope

import (
	"encoding/hex"

	"github.com/goabstract/gitcrypt/internal/streamcrypto"
)

// Nonce is the 12-octet value embedded in an envelope's header. It's
// also the first NonceLen octets of the HMAC tag computed over a
// file's plaintext, which is what makes encryption convergent.
type Nonce [NonceLen]byte

// Bytes returns n as a slice.
func (n Nonce) Bytes() []byte { return n[:] }

// String renders n as lowercase hex.
func (n Nonce) String() string { return hex.EncodeToString(n[:]) }

// IsZero reports whether n is the zero value.
func (n Nonce) IsZero() bool { return n == Nonce{} }

// Tag is the full HMAC-SHA1 output nonce derivation is computed from.
// Only its first NonceLen octets ever appear on disk; the rest exists
// solely so re-verifying a candidate decryption means recomputing the
// same tag and comparing prefixes.
type Tag [streamcrypto.TagSize]byte

// Bytes returns t as a slice.
func (t Tag) Bytes() []byte { return t[:] }

// String renders t as lowercase hex.
func (t Tag) String() string { return hex.EncodeToString(t[:]) }

// Nonce returns the leading NonceLen octets of t.
func (t Tag) Nonce() Nonce {
	var n Nonce
	copy(n[:], t[:NonceLen])
	return n
}
