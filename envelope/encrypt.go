package envelope

import (
	"github.com/goabstract/gitcrypt/internal/secbuf"
	"github.com/goabstract/gitcrypt/internal/streamcrypto"
	"github.com/goabstract/gitcrypt/keyfile"
)

// tagOf computes the HMAC tag for plaintext under entry's MAC key.
func tagOf(entry *keyfile.Entry, plaintext []byte) (Tag, error) {
	var t Tag
	sum, err := streamcrypto.Sum(entry.MACKey, plaintext)
	if err != nil {
		return t, err
	}
	copy(t[:], sum)
	return t, nil
}

// Encrypt produces the envelope for plaintext under entry. The nonce
// is derived as the first NonceLen octets of HMAC-SHA1(entry.MACKey,
// plaintext), so encrypting the same plaintext under the same entry
// always yields byte-identical output.
func Encrypt(entry *keyfile.Entry, plaintext []byte) ([]byte, error) {
	if err := streamcrypto.CheckLength(uint64(len(plaintext))); err != nil {
		return nil, err
	}

	tag, err := tagOf(entry, plaintext)
	if err != nil {
		return nil, err
	}
	nonce := tag.Nonce()

	ciphertext, err := streamcrypto.XORKeyStream(entry.CipherKey, nonce.Bytes(), plaintext)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, HeaderLen+len(ciphertext))
	out = append(out, Magic...)
	out = append(out, nonce.Bytes()...)
	out = append(out, ciphertext...)
	return out, nil
}

// nonceMatches reports whether plaintext re-hashes, under entry's MAC
// key, to exactly nonce. Decrypt uses this to confirm which key-file
// entry produced a given envelope.
func nonceMatches(entry *keyfile.Entry, plaintext []byte, nonce Nonce) (bool, error) {
	tag, err := tagOf(entry, plaintext)
	if err != nil {
		return false, err
	}
	return secbuf.ConstantTimeEqual(tag.Nonce().Bytes(), nonce.Bytes()), nil
}
