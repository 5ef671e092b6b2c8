package domain

import "time"

// ResourceRecord is an answer decoded from a response. It only ever comes
// from parsing a received buffer and is never persisted.
type ResourceRecord struct {
	// Owner is the record's name. When OwnerCompressed is set the wire
	// carried a pointer back to the question and Owner is the question name.
	Owner           string
	OwnerCompressed bool

	Type     RRType
	Class    RRClass
	TTL      uint32
	RDLength uint16
	RData    []byte

	// Address is the dotted-quad form of RData, set only for A records
	// carrying exactly four bytes.
	Address string
}

// TTLDuration returns the record TTL as a duration.
func (rr ResourceRecord) TTLDuration() time.Duration {
	return time.Duration(rr.TTL) * time.Second
}

// IsAddress reports whether the record carries a decoded IPv4 address.
func (rr ResourceRecord) IsAddress() bool {
	return rr.Type == RRTypeA && rr.Address != ""
}
