package keyfile

import (
	"bytes"
	"io"

	"github.com/goabstract/gitcrypt/internal/secbuf"
)

// maxFieldLen is the cap on any single field's payload length. It
// exists so a corrupt or malicious length prefix can't make a parser
// try to allocate an unbounded buffer.
const maxFieldLen = 1 << 20

// field is one (field_id, payload) record read from a tagged-field
// sequence.
type field struct {
	id      uint32
	payload []byte
}

// fieldKind classifies an unrecognized field_id so a decoder can tell
// a forward-compatible extension from a breaking one.
type fieldKind int

const (
	// fieldRecognized means the field_id is one this decoder knows how
	// to interpret
	fieldRecognized fieldKind = iota
	// fieldSkippableUnknown means the field_id is unrecognized but even,
	// and may be safely skipped
	fieldSkippableUnknown
	// fieldCriticalUnknown means the field_id is unrecognized and odd,
	// and parsing must fail
	fieldCriticalUnknown
)

// classifyField reports how an unrecognized field should be treated.
// known lists the field IDs this decoder recognizes.
func classifyField(id uint32, known map[uint32]bool) fieldKind {
	if known[id] {
		return fieldRecognized
	}
	if id%2 == 0 {
		return fieldSkippableUnknown
	}
	return fieldCriticalUnknown
}

// readFields reads a terminated sequence of (field_id:u32, field_len:u32,
// payload) records from r, stopping at (and consuming) a record whose
// field_id is 0. It never returns a partial sequence: on any error, the
// returned slice is nil.
func readFields(r *bytes.Reader) ([]field, error) {
	var fields []field
	for {
		id, err := readUint32(r)
		if err != nil {
			return nil, ErrMalformed
		}
		length, err := readUint32(r)
		if err != nil {
			return nil, ErrMalformed
		}
		if id == 0 {
			if length != 0 {
				return nil, ErrMalformed
			}
			return fields, nil
		}
		if length > maxFieldLen {
			return nil, ErrMalformed
		}
		payload := make([]byte, length)
		if _, err := io.ReadFull(r, payload); err != nil {
			return nil, ErrMalformed
		}
		fields = append(fields, field{id: id, payload: payload})
	}
}

// writeField appends one (field_id, field_len, payload) record to buf.
func writeField(buf *bytes.Buffer, id uint32, payload []byte) {
	writeUint32(buf, id)
	writeUint32(buf, uint32(len(payload))) //nolint:gosec // payloads are bounded well below 2^32 by this format's own fields
	buf.Write(payload)
}

// writeFieldsTerminator appends the field_id==0 terminator record.
func writeFieldsTerminator(buf *bytes.Buffer) {
	writeUint32(buf, 0)
	writeUint32(buf, 0)
}

func readUint32(r *bytes.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return secbuf.Uint32(b[:]), nil
}

func writeUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	secbuf.PutUint32(b[:], v)
	buf.Write(b[:])
}
