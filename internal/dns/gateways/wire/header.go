package wire

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"github.com/haukened/rr-lookup/internal/dns/domain"
)

// IDSource yields message IDs. Implementations must be safe for concurrent use.
type IDSource func() domain.MessageID

// RandomID returns a message ID drawn uniformly from 0..65535.
// The math/rand/v2 top-level source is safe for concurrent use.
func RandomID() domain.MessageID {
	//gosec:disable G404 -- IDs only correlate datagrams.
	return domain.MessageID(rand.Uint32() >> 16)
}

// PackHeader writes h in wire order: ID, flags, QDCOUNT, ANCOUNT, NSCOUNT, ARCOUNT.
func PackHeader(h domain.Header) []byte {
	b := make([]byte, domain.HeaderSize)
	binary.BigEndian.PutUint16(b[0:2], h.ID)
	binary.BigEndian.PutUint16(b[2:4], h.Flags.Pack())
	binary.BigEndian.PutUint16(b[4:6], h.QDCount)
	binary.BigEndian.PutUint16(b[6:8], h.ANCount)
	binary.BigEndian.PutUint16(b[8:10], h.NSCount)
	binary.BigEndian.PutUint16(b[10:12], h.ARCount)
	return b
}

// BuildHeader returns a fresh query header with an ID taken from next, or from
// RandomID when next is nil, along with the ID used.
func BuildHeader(next IDSource) ([]byte, domain.MessageID) {
	if next == nil {
		next = RandomID
	}
	id := next()
	return PackHeader(domain.NewQueryHeader(id)), id
}

// ParseHeader unpacks the first 12 bytes of b.
func ParseHeader(b []byte) (domain.Header, error) {
	return readHeader(NewReader(b))
}

func readHeader(r *Reader) (domain.Header, error) {
	if r.Remaining() < domain.HeaderSize {
		return domain.Header{}, fmt.Errorf("%w: need %d bytes, have %d", domain.ErrMalformedHeader, domain.HeaderSize, r.Remaining())
	}
	id, _ := r.Uint16()
	flags, _ := r.Uint16()
	qd, _ := r.Uint16()
	an, _ := r.Uint16()
	ns, _ := r.Uint16()
	ar, _ := r.Uint16()
	return domain.Header{
		ID:      id,
		Flags:   domain.UnpackFlags(flags),
		QDCount: qd,
		ANCount: an,
		NSCount: ns,
		ARCount: ar,
	}, nil
}
