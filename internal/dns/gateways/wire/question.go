package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/haukened/rr-lookup/internal/dns/domain"
)

// PackQuestion encodes q as QNAME, QTYPE, QCLASS.
func PackQuestion(q domain.Question) ([]byte, error) {
	qname, err := EncodeName(q.Name)
	if err != nil {
		return nil, err
	}
	b := make([]byte, len(qname), len(qname)+4)
	copy(b, qname)
	b = binary.BigEndian.AppendUint16(b, uint16(q.Type))
	b = binary.BigEndian.AppendUint16(b, uint16(q.Class))
	return b, nil
}

// BuildQuestion encodes an A/IN question for name.
func BuildQuestion(name string) ([]byte, error) {
	return PackQuestion(domain.Question{Name: name, Type: domain.RRTypeA, Class: domain.RRClassIN})
}

// ParseQuestion decodes a question section produced by PackQuestion.
func ParseQuestion(b []byte) (domain.Question, error) {
	r := NewReader(b)
	name, err := readName(r)
	if err != nil {
		return domain.Question{}, err
	}
	qtype, ok := r.Uint16()
	if !ok {
		return domain.Question{}, fmt.Errorf("%w: question missing QTYPE", domain.ErrTruncatedAnswer)
	}
	qclass, ok := r.Uint16()
	if !ok {
		return domain.Question{}, fmt.Errorf("%w: question missing QCLASS", domain.ErrTruncatedAnswer)
	}
	return domain.Question{Name: name, Type: domain.RRType(qtype), Class: domain.RRClass(qclass)}, nil
}

// SkipQuestion returns the offset of the answer section in buf, assuming the
// responder echoed question verbatim right after the header. The echo is not
// compared byte for byte; a responder that rewrites the question (for example
// by changing its case) is still skipped correctly, one that changes its
// length is not.
func SkipQuestion(buf, question []byte) (int, error) {
	end := domain.HeaderSize + len(question)
	if len(buf) < end {
		return 0, fmt.Errorf("%w: question section needs %d bytes, message has %d", domain.ErrTruncatedAnswer, end, len(buf))
	}
	return end, nil
}

// BuildQuery returns a complete A/IN query for name along with its message ID.
// Apart from the ID the output is fully determined by name.
func BuildQuery(name string, next IDSource) ([]byte, domain.MessageID, error) {
	question, err := BuildQuestion(name)
	if err != nil {
		return nil, 0, err
	}
	header, id := BuildHeader(next)
	return append(header, question...), id, nil
}
