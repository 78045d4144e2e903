package envelope

import (
	"errors"

	"github.com/goabstract/gitcrypt/internal/streamcrypto"
	"github.com/goabstract/gitcrypt/keyfile"
)

// ErrNotAnEnvelope is returned by Decrypt when data doesn't begin with
// the envelope magic tag. Callers implementing smudge/diff's
// fall-through behavior check for this and copy the input verbatim
// instead of treating it as a failure.
var ErrNotAnEnvelope = errors.New("envelope: data does not begin with the envelope magic tag")

// Decrypt recovers the plaintext sealed in data, trying kf's entries
// to find the one that produced it.
//
// The envelope carries no key-version field, so resolution is by
// trial: the latest entry is tried first (the common case, since most
// files were sealed under the newest key), then every other entry in
// descending version order. An entry is accepted only once its
// candidate plaintext re-hashes, under that entry's MAC key, to the
// exact nonce embedded in the envelope — this is what lets Decrypt
// tell "wrong key, garbage plaintext" apart from "right key".
//
// Decrypt returns ErrKeyUnavailable if data has a valid magic tag but
// no entry in kf verifies.
func Decrypt(kf *keyfile.KeyFile, data []byte) ([]byte, error) {
	if !HasMagic(data) {
		return nil, ErrNotAnEnvelope
	}
	if len(data) < HeaderLen {
		return nil, streamcrypto.ErrInvalidNonceSize
	}
	var nonce Nonce
	copy(nonce[:], data[MagicLen:HeaderLen])
	ciphertext := data[HeaderLen:]

	for _, entry := range kf.Entries() {
		plaintext, err := streamcrypto.XORKeyStream(entry.CipherKey, nonce.Bytes(), ciphertext)
		if err != nil {
			continue
		}
		ok, err := nonceMatches(entry, plaintext, nonce)
		if err != nil {
			continue
		}
		if ok {
			return plaintext, nil
		}
	}
	return nil, ErrKeyUnavailable
}
