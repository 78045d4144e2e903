package keyfile

import (
	"bytes"

	"github.com/goabstract/gitcrypt/internal/secbuf"
	"github.com/goabstract/gitcrypt/internal/streamcrypto"
)

// preamble is the fixed byte string that opens every current-format
// key file, before the format version.
var preamble = []byte("\x00GITCRYPTKEY")

const preambleLen = 12

// Header field IDs. All are odd (critical): a reader that doesn't
// understand one of these can't safely interpret the rest of the
// file.
const (
	headerFieldKeyName uint32 = 1
)

// Entry field IDs. All are odd (critical) for the same reason: these
// carry the key material itself.
const (
	entryFieldVersion   uint32 = 1
	entryFieldCipherKey uint32 = 3
	entryFieldMACKey    uint32 = 5
)

var knownHeaderFields = map[uint32]bool{
	headerFieldKeyName: true,
}

var knownEntryFields = map[uint32]bool{
	entryFieldVersion:   true,
	entryFieldCipherKey: true,
	entryFieldMACKey:    true,
}

// Parse decodes a key file from its on-disk byte representation. It
// accepts both the current tagged-field format and the 96-byte legacy
// format.
func Parse(data []byte) (*KeyFile, error) {
	if len(data) == legacySize && !bytes.HasPrefix(data, preamble) {
		return parseLegacy(data)
	}
	if len(data) < preambleLen+4 || !bytes.Equal(data[:preambleLen], preamble) {
		return nil, ErrMalformed
	}
	version := secbuf.Uint32(data[preambleLen : preambleLen+4])
	if version != CurrentFormatVersion {
		return nil, ErrIncompatible
	}

	r := bytes.NewReader(data[preambleLen+4:])

	headerFields, err := readFields(r)
	if err != nil {
		return nil, err
	}
	kf := &KeyFile{entries: make(map[uint32]*Entry)}
	for _, f := range headerFields {
		switch classifyField(f.id, knownHeaderFields) {
		case fieldCriticalUnknown:
			return nil, ErrIncompatible
		case fieldSkippableUnknown:
			continue
		case fieldRecognized:
		}
		switch f.id {
		case headerFieldKeyName:
			kf.Name = string(f.payload)
		}
	}

	for r.Len() > 0 {
		entryFields, err := readFields(r)
		if err != nil {
			return nil, err
		}
		entry := &Entry{}
		haveVersion, haveCipherKey, haveMACKey := false, false, false
		for _, f := range entryFields {
			switch classifyField(f.id, knownEntryFields) {
			case fieldCriticalUnknown:
				return nil, ErrIncompatible
			case fieldSkippableUnknown:
				continue
			case fieldRecognized:
			}
			switch f.id {
			case entryFieldVersion:
				if len(f.payload) != 4 {
					return nil, ErrMalformed
				}
				entry.Version = secbuf.Uint32(f.payload)
				haveVersion = true
			case entryFieldCipherKey:
				if len(f.payload) != streamcrypto.KeySize {
					return nil, ErrMalformed
				}
				entry.CipherKey = f.payload
				haveCipherKey = true
			case entryFieldMACKey:
				if len(f.payload) != streamcrypto.MACKeySize {
					return nil, ErrMalformed
				}
				entry.MACKey = f.payload
				haveMACKey = true
			}
		}
		if !haveVersion || !haveCipherKey || !haveMACKey {
			return nil, ErrMalformed
		}
		if _, exists := kf.entries[entry.Version]; exists {
			return nil, ErrMalformed
		}
		kf.entries[entry.Version] = entry
	}

	return kf, nil
}

// Serialize encodes the key file into its current-format on-disk byte
// representation. Entries are written in descending version order.
func (kf *KeyFile) Serialize() []byte {
	var buf bytes.Buffer
	buf.Write(preamble)
	writeUint32(&buf, CurrentFormatVersion)

	if kf.Name != "" {
		writeField(&buf, headerFieldKeyName, []byte(kf.Name))
	}
	writeFieldsTerminator(&buf)

	for _, e := range kf.Entries() {
		var versionBytes [4]byte
		secbuf.PutUint32(versionBytes[:], e.Version)
		writeField(&buf, entryFieldVersion, versionBytes[:])
		writeField(&buf, entryFieldCipherKey, e.CipherKey)
		writeField(&buf, entryFieldMACKey, e.MACKey)
		writeFieldsTerminator(&buf)
	}

	return buf.Bytes()
}
