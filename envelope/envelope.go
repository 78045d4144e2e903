// Package envelope implements the on-disk encrypted-file format: a
// fixed magic tag, a deterministically-derived nonce, and an AES-CTR
// ciphertext body. Encryption is convergent — the same plaintext under
// the same MAC key always produces the same envelope — because the
// nonce is derived from the plaintext itself rather than chosen at
// random.
package envelope

import (
	"bytes"
	"errors"
)

// Magic is the fixed byte sequence that opens every envelope. It lets
// a reader tell encrypted content from plaintext without consulting
// any key.
var Magic = []byte("\x00GITCRYPT\x00")

// MagicLen is len(Magic).
const MagicLen = 10

// NonceLen is the length of the envelope's embedded nonce, also the
// length of internal/streamcrypto's nonce.
const NonceLen = 12

// HeaderLen is the combined length of the magic tag and nonce that
// precede an envelope's ciphertext body.
const HeaderLen = MagicLen + NonceLen

// ErrKeyUnavailable is returned by Decrypt when the envelope's magic
// matches but none of the supplied entries' keys verify against it.
var ErrKeyUnavailable = errors.New("envelope: key unavailable for this file")

// HasMagic reports whether data begins with the envelope magic tag.
func HasMagic(data []byte) bool {
	return bytes.HasPrefix(data, Magic)
}
