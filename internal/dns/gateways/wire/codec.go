// Package wire encodes A queries and decodes single-answer responses in the
// DNS wire format of RFC 1035.
//
// The decoder only accepts the shapes an A query can provoke: one echoed
// question followed by at most one answer whose owner name is either literal
// or a compression pointer back to the question name.
package wire

import (
	"github.com/haukened/rr-lookup/internal/dns/domain"
)

// Query is an encoded query together with what is needed to decode its reply.
type Query struct {
	ID       domain.MessageID
	Question domain.Question
	// Data is the full message to send.
	Data []byte
	// QuestionData is the encoded question section, used to skip its echo.
	QuestionData []byte
}

// DNSCodec turns questions into datagrams and datagrams into responses.
type DNSCodec interface {
	EncodeQuery(q domain.Question) (Query, error)
	DecodeResponse(data []byte, query Query) (domain.Response, error)
}
