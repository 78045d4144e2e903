// Package streamcrypto implements the two building blocks the
// encrypted-file envelope is built from: a block cipher running in
// counter mode over an arbitrary-length byte stream, and an
// incremental MAC used to derive that stream's nonce.
package streamcrypto

import (
	"crypto/aes"
	"crypto/cipher"
)

const (
	// KeySize is the required length, in bytes, of a cipher key
	KeySize = 32
	// NonceSize is the required length, in bytes, of the nonce half of
	// the counter-mode initial counter
	NonceSize = 12
	// counterSize is the length, in bytes, of the big-endian block
	// index that makes up the other half of the initial counter
	counterSize = aes.BlockSize - NonceSize

	// maxBlocks is the number of distinct block indices a 4-byte
	// big-endian counter can address. Processing more than this many
	// blocks under a single (key, nonce) pair would wrap the counter
	// and reuse a keystream block, which breaks CTR mode's security.
	maxBlocks = uint64(1) << (8 * counterSize)
)

// MaxPlaintextLen is the largest number of octets that may safely be
// processed under a single (key, nonce) pair.
func MaxPlaintextLen() uint64 {
	return maxBlocks * aes.BlockSize
}

// blocksNeeded returns the number of cipher blocks required to hold n
// octets.
func blocksNeeded(n uint64) uint64 {
	return (n + aes.BlockSize - 1) / aes.BlockSize
}

// CheckLength reports ErrBlockLimitExceeded if processing n octets
// under a single (key, nonce) pair would require more blocks than the
// counter can address. It performs no allocation, so it's safe to call
// before reading n octets into memory.
func CheckLength(n uint64) error {
	if blocksNeeded(n) > maxBlocks {
		return ErrBlockLimitExceeded
	}
	return nil
}

// initialCounter builds the 16-octet initial counter for CTR mode:
// the nonce followed by a zero block index.
func initialCounter(nonce []byte) []byte {
	counter := make([]byte, aes.BlockSize)
	copy(counter, nonce)
	return counter
}

// XORKeyStream encrypts (or, symmetrically, decrypts) data with
// AES-256 in counter mode, keyed by key and starting from the initial
// counter nonce||0x00000000. It returns a new slice; data is never
// modified in place.
func XORKeyStream(key, nonce, data []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKeySize
	}
	if len(nonce) != NonceSize {
		return nil, ErrInvalidNonceSize
	}
	if err := CheckLength(uint64(len(data))); err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	stream := cipher.NewCTR(block, initialCounter(nonce))

	out := make([]byte, len(data))
	stream.XORKeyStream(out, data)
	return out, nil
}
