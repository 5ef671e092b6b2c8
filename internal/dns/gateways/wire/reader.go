package wire

import "encoding/binary"

// Reader is a forward-only cursor over a received message. Every read is
// bounds checked and reports ok=false instead of slicing past the end, and
// a failed read leaves the cursor where it was.
type Reader struct {
	buf []byte
	off int
}

// NewReader returns a Reader positioned at the start of buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int {
	return r.off
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.off
}

// Skip advances the cursor by n bytes.
func (r *Reader) Skip(n int) bool {
	if n < 0 || n > r.Remaining() {
		return false
	}
	r.off += n
	return true
}

// Peek returns the next n bytes without consuming them.
func (r *Reader) Peek(n int) ([]byte, bool) {
	if n < 0 || n > r.Remaining() {
		return nil, false
	}
	return r.buf[r.off : r.off+n], true
}

// Bytes consumes n bytes and returns a copy of them.
func (r *Reader) Bytes(n int) ([]byte, bool) {
	b, ok := r.Peek(n)
	if !ok {
		return nil, false
	}
	out := make([]byte, n)
	copy(out, b)
	r.off += n
	return out, true
}

// Uint8 consumes one byte.
func (r *Reader) Uint8() (uint8, bool) {
	b, ok := r.Peek(1)
	if !ok {
		return 0, false
	}
	r.off++
	return b[0], true
}

// Uint16 consumes a big-endian 16-bit value.
func (r *Reader) Uint16() (uint16, bool) {
	b, ok := r.Peek(2)
	if !ok {
		return 0, false
	}
	r.off += 2
	return binary.BigEndian.Uint16(b), true
}

// Uint32 consumes a big-endian 32-bit value.
func (r *Reader) Uint32() (uint32, bool) {
	b, ok := r.Peek(4)
	if !ok {
		return 0, false
	}
	r.off += 4
	return binary.BigEndian.Uint32(b), true
}
