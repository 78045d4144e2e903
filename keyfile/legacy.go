package keyfile

import "github.com/goabstract/gitcrypt/internal/streamcrypto"

// legacySize is the exact length of a legacy key file: a bare
// concatenation of the cipher key and the MAC key, with no framing at
// all. Anything else that isn't the new format's magic preamble is
// malformed.
const legacySize = streamcrypto.KeySize + streamcrypto.MACKeySize

// parseLegacy decodes a 96-byte legacy key file into a single version-0
// entry. data must be exactly legacySize bytes; callers check this
// before calling.
func parseLegacy(data []byte) (*KeyFile, error) {
	if len(data) != legacySize {
		return nil, ErrMalformed
	}
	cipherKey := make([]byte, streamcrypto.KeySize)
	copy(cipherKey, data[:streamcrypto.KeySize])
	macKey := make([]byte, streamcrypto.MACKeySize)
	copy(macKey, data[streamcrypto.KeySize:])

	return &KeyFile{
		entries: map[uint32]*Entry{
			0: {Version: 0, CipherKey: cipherKey, MACKey: macKey},
		},
	}, nil
}
