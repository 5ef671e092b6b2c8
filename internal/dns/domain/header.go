package domain

// HeaderSize is the fixed size of a DNS header in bytes.
const HeaderSize = 12

// MessageID correlates a query with its response.
type MessageID = uint16

// Header represents a DNS message header (RFC 1035 Section 4.1.1).
// All fields are carried as big-endian 16-bit values in the order
// ID, flags, QDCOUNT, ANCOUNT, NSCOUNT, ARCOUNT.
type Header struct {
	ID      MessageID
	Flags   HeaderFlags
	QDCount uint16
	ANCount uint16
	NSCount uint16
	ARCount uint16
}

// NewQueryHeader returns the header of a single-question query with the given ID.
func NewQueryHeader(id MessageID) Header {
	return Header{
		ID:      id,
		Flags:   QueryFlags(),
		QDCount: 1,
	}
}
