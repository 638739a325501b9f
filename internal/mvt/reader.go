package mvt

// reader.go - protobuf message field walker
// Wire primitives come from protowire. A fresh reader is constructed
// for every message decoded, so no cursor state is ever shared between
// decode calls.

import (
	"google.golang.org/protobuf/encoding/protowire"
)

// reader walks the fields of a single protobuf message.
type reader struct {
	buf []byte
	pos int
}

func newReader(buf []byte) *reader {
	return &reader{buf: buf}
}

// done reports whether the whole message has been consumed.
func (r *reader) done() bool {
	return r.pos >= len(r.buf)
}

// tag reads the next field number and wire type.
func (r *reader) tag() (protowire.Number, protowire.Type, error) {
	num, typ, n := protowire.ConsumeTag(r.buf[r.pos:])
	if n < 0 {
		return 0, 0, r.malformed(protowire.ParseError(n))
	}
	r.pos += n
	return num, typ, nil
}

// varint reads a varint value.
func (r *reader) varint() (uint64, error) {
	v, n := protowire.ConsumeVarint(r.buf[r.pos:])
	if n < 0 {
		return 0, r.malformed(protowire.ParseError(n))
	}
	r.pos += n
	return v, nil
}

// fixed32 reads a 32-bit little-endian value.
func (r *reader) fixed32() (uint32, error) {
	v, n := protowire.ConsumeFixed32(r.buf[r.pos:])
	if n < 0 {
		return 0, r.malformed(protowire.ParseError(n))
	}
	r.pos += n
	return v, nil
}

// fixed64 reads a 64-bit little-endian value.
func (r *reader) fixed64() (uint64, error) {
	v, n := protowire.ConsumeFixed64(r.buf[r.pos:])
	if n < 0 {
		return 0, r.malformed(protowire.ParseError(n))
	}
	r.pos += n
	return v, nil
}

// bytes reads a length-delimited value as a sub-slice of the underlying
// buffer. No copy is made; the result aliases the input bytes.
func (r *reader) bytes() ([]byte, error) {
	b, n := protowire.ConsumeBytes(r.buf[r.pos:])
	if n < 0 {
		return nil, r.malformed(protowire.ParseError(n))
	}
	r.pos += n
	return b, nil
}

// skip discards one field value of the given wire type.
func (r *reader) skip(num protowire.Number, typ protowire.Type) error {
	n := protowire.ConsumeFieldValue(num, typ, r.buf[r.pos:])
	if n < 0 {
		return r.malformed(protowire.ParseError(n))
	}
	r.pos += n
	return nil
}

func (r *reader) malformed(err error) error {
	return &ErrMalformedBuffer{Offset: r.pos, Err: err}
}
