package wire

import (
	"encoding/binary"
	"fmt"
	"net/netip"

	"github.com/haukened/rr-lookup/internal/dns/domain"
)

const (
	// questionNamePointer is the compression pointer to offset 12, where the
	// QNAME of a single-question message begins.
	questionNamePointer uint16 = 0xC000 | domain.HeaderSize

	// fixedAnswerSize covers TYPE, CLASS, TTL and RDLENGTH.
	fixedAnswerSize = 10

	ipv4Length = 4
)

// ResolveOwnerName consumes the owner name of an answer record. A pointer back
// to the question name is reported as compressed without any name being read.
// A literal name is decoded inline. Any other pointer fails with
// domain.ErrUnsupportedNameEncoding.
func ResolveOwnerName(r *Reader) (name string, compressed bool, err error) {
	first, ok := r.Peek(1)
	if !ok {
		return "", false, fmt.Errorf("%w: missing owner name", domain.ErrTruncatedAnswer)
	}
	if first[0]&pointerMask != pointerMask {
		name, err := readName(r)
		if err != nil {
			return "", false, err
		}
		return name, false, nil
	}

	ptr, ok := r.Peek(2)
	if !ok {
		return "", false, fmt.Errorf("%w: compression pointer cut short", domain.ErrTruncatedAnswer)
	}
	if target := binary.BigEndian.Uint16(ptr); target != questionNamePointer {
		return "", false, fmt.Errorf("%w: pointer to offset %d", domain.ErrUnsupportedNameEncoding, target&^(pointerMask<<8))
	}
	_, _ = r.Uint16()
	return "", true, nil
}

// ParseAnswer reads one answer record from r. questionName stands in for a
// compressed owner name. RDATA is decoded to a dotted quad only for A records
// of exactly four bytes; every other record keeps its RDATA opaque.
func ParseAnswer(r *Reader, questionName string) (domain.ResourceRecord, error) {
	owner, compressed, err := ResolveOwnerName(r)
	if err != nil {
		return domain.ResourceRecord{}, err
	}
	if compressed {
		owner = questionName
	}

	if r.Remaining() < fixedAnswerSize {
		return domain.ResourceRecord{}, fmt.Errorf("%w: need %d bytes for record fields, have %d", domain.ErrTruncatedAnswer, fixedAnswerSize, r.Remaining())
	}
	rrtype, _ := r.Uint16()
	class, _ := r.Uint16()
	ttl, _ := r.Uint32()
	rdlen, _ := r.Uint16()

	rdata, ok := r.Bytes(int(rdlen))
	if !ok {
		return domain.ResourceRecord{}, fmt.Errorf("%w: RDLENGTH %d exceeds remaining %d bytes", domain.ErrTruncatedAnswer, rdlen, r.Remaining())
	}

	rr := domain.ResourceRecord{
		Owner:           owner,
		OwnerCompressed: compressed,
		Type:            domain.RRType(rrtype),
		Class:           domain.RRClass(class),
		TTL:             ttl,
		RDLength:        rdlen,
		RData:           rdata,
	}
	if rr.Type == domain.RRTypeA && len(rdata) == ipv4Length {
		rr.Address = netip.AddrFrom4([ipv4Length]byte(rdata)).String()
	}
	return rr, nil
}
