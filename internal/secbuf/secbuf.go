// Package secbuf contains the small set of byte-level primitives that
// the key and cipher types build on: big-endian integer framing,
// constant-time comparison, and memory wiping. It exists as its own
// package so these invariants are implemented exactly once.
package secbuf

import "crypto/subtle"

// PutUint32 writes v into b (which must be at least 4 bytes long) in
// big-endian order.
func PutUint32(b []byte, v uint32) {
	_ = b[3] // bounds check hint
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}

// Uint32 reads a big-endian 32-bit unsigned integer from b, which must
// be at least 4 bytes long.
func Uint32(b []byte) uint32 {
	_ = b[3] // bounds check hint
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// ConstantTimeEqual reports whether a and b hold the same bytes. It
// runs in time dependent only on len(a), never on where a and b first
// differ, so it's safe to use on secret data.
//
// Two slices of different length are never equal, and that check is
// the one place this function's timing does depend on the inputs; the
// key and nonce sizes used throughout this module are themselves fixed
// constants, not secrets, so this doesn't leak anything sensitive.
func ConstantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}

// Wipe overwrites every byte of buf with zero. It is used to destroy
// key material as soon as it's no longer needed.
//
//go:noinline
func Wipe(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
