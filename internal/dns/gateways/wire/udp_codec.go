package wire

import (
	"encoding/binary"
	"fmt"

	"github.com/haukened/rr-lookup/internal/dns/common/log"
	"github.com/haukened/rr-lookup/internal/dns/domain"
)

// udpCodec implements the DNSCodec interface for standard DNS over UDP messages.
type udpCodec struct {
	logger log.Logger
	nextID IDSource
}

// NewUDPCodec creates and returns a new instance of udpCodec using the provided logger.
// Message IDs are drawn from RandomID.
func NewUDPCodec(logger log.Logger) *udpCodec {
	return &udpCodec{
		logger: logger,
		nextID: RandomID,
	}
}

// EncodeQuery serializes a Question into a query message with a fresh ID.
func (c *udpCodec) EncodeQuery(q domain.Question) (Query, error) {
	question, err := PackQuestion(q)
	if err != nil {
		return Query{}, err
	}
	header, id := BuildHeader(c.nextID)

	data := make([]byte, 0, len(header)+len(question))
	data = append(data, header...)
	data = append(data, question...)

	c.logger.Debug(map[string]any{
		"id":    id,
		"name":  q.Name,
		"type":  q.Type.String(),
		"class": q.Class.String(),
		"size":  len(data),
		"raw":   fmt.Sprintf("%x", data),
	}, "Encoded DNS query")

	return Query{
		ID:           id,
		Question:     q,
		Data:         data,
		QuestionData: question,
	}, nil
}

// DecodeResponse parses a reply to query. The header is always decoded; the
// answer section is decoded only when ANCOUNT is non-zero, and only its first
// record is read.
func (c *udpCodec) DecodeResponse(data []byte, query Query) (domain.Response, error) {
	r := NewReader(data)

	header, err := readHeader(r)
	if err != nil {
		return domain.Response{}, err
	}
	c.logger.Debug(map[string]any{
		"step":     "header",
		"id":       header.ID,
		"rcode":    header.Flags.RCode.String(),
		"qd":       header.QDCount,
		"an":       header.ANCount,
		"tc":       header.Flags.TC,
		"opcode":   header.Flags.Opcode.String(),
		"reserved": domain.ReservedBits(binary.BigEndian.Uint16(data[2:4])),
	}, "Decoded DNS response header")

	resp := domain.Response{Header: header, Question: query.Question}
	if header.ANCount == 0 {
		return resp, nil
	}

	offset, err := SkipQuestion(data, query.QuestionData)
	if err != nil {
		return domain.Response{}, err
	}
	_ = r.Skip(offset - r.Offset())

	answer, err := ParseAnswer(r, query.Question.Name)
	if err != nil {
		return domain.Response{}, fmt.Errorf("failed to parse answer record: %w", err)
	}
	c.logger.Debug(map[string]any{
		"step":       "answer",
		"owner":      answer.Owner,
		"compressed": answer.OwnerCompressed,
		"type":       answer.Type.String(),
		"class":      answer.Class.String(),
		"ttl":        answer.TTL,
		"rdlen":      answer.RDLength,
	}, "Decoded answer record")

	resp.Answer = &answer
	return resp, nil
}

var _ DNSCodec = &udpCodec{}
