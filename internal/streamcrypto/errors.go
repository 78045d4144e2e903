package streamcrypto

import "errors"

var (
	// ErrInvalidKeySize is returned when a cipher key isn't the
	// expected length
	ErrInvalidKeySize = errors.New("streamcrypto: invalid key size")
	// ErrInvalidNonceSize is returned when a counter/nonce isn't the
	// expected length
	ErrInvalidNonceSize = errors.New("streamcrypto: invalid nonce size")
	// ErrBlockLimitExceeded is returned when a stream would need more
	// than 2^32 blocks under the same (key, nonce) pair, which would
	// wrap the counter and reuse a keystream block
	ErrBlockLimitExceeded = errors.New("streamcrypto: input exceeds safe length for a single nonce")
)
