package wire

import (
	"net"
	"testing"

	"github.com/bassosimone/runtimex"
	"github.com/miekg/dns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/haukened/rr-lookup/internal/dns/common/log"
	"github.com/haukened/rr-lookup/internal/dns/domain"
)

func newTestCodec(id domain.MessageID) *udpCodec {
	return &udpCodec{
		logger: log.NewNoopLogger(),
		nextID: fixedID(id),
	}
}

func mustQuestion(t *testing.T, name string) domain.Question {
	t.Helper()
	q, err := domain.NewAddressQuestion(name)
	require.NoError(t, err)
	return q
}

// syntheticResponse hand-assembles the reply a resolver sends for an A query.
func syntheticResponse(query Query, flags uint16, answer []byte) []byte {
	h := PackHeader(domain.Header{ID: query.ID, QDCount: 1, ANCount: 1})
	h[2], h[3] = byte(flags>>8), byte(flags)
	if answer == nil {
		h[7] = 0
	}
	b := append(h, query.QuestionData...)
	return append(b, answer...)
}

func TestUdpCodec_EncodeQuery(t *testing.T) {
	codec := newTestCodec(12345)

	query, err := codec.EncodeQuery(mustQuestion(t, "example.com"))
	require.NoError(t, err)
	assert.Equal(t, domain.MessageID(12345), query.ID)
	assert.Equal(t, "example.com", query.Question.Name)
	assert.Len(t, query.Data, 12+17)
	assert.Equal(t, query.QuestionData, query.Data[12:])

	h, err := ParseHeader(query.Data)
	require.NoError(t, err)
	assert.Equal(t, domain.NewQueryHeader(12345), h)
}

func TestUdpCodec_EncodeQuery_Errors(t *testing.T) {
	codec := NewUDPCodec(log.NewNoopLogger())
	_, err := codec.EncodeQuery(domain.Question{
		Name:  "this-is-a-very-long-label-that-exceeds-the-maximum-allowed-length-of-63-characters-for-dns-labels.com.",
		Type:  domain.RRTypeA,
		Class: domain.RRClassIN,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEncoding)
	assert.Contains(t, err.Error(), "label too long")
}

func TestUdpCodec_DecodeResponse_Synthetic(t *testing.T) {
	codec := newTestCodec(0x4D2)
	query, err := codec.EncodeQuery(mustQuestion(t, "example.com"))
	require.NoError(t, err)

	data := syntheticResponse(query, 0x8100, answerBytes(questionPointer, domain.RRTypeA, 300, 4, []byte{93, 184, 216, 34}))

	resp, err := codec.DecodeResponse(data, query)
	require.NoError(t, err)
	assert.Equal(t, domain.MessageID(0x4D2), resp.Header.ID)
	assert.Equal(t, domain.QRResponse, resp.Header.Flags.QR)
	assert.Equal(t, domain.RCodeNoError, resp.RCode())
	assert.Equal(t, uint16(1), resp.Header.ANCount)
	require.True(t, resp.HasAnswer())
	assert.Equal(t, uint32(300), resp.Answer.TTL)
	assert.Equal(t, "93.184.216.34", resp.Answer.Address)
	assert.Equal(t, "example.com", resp.Answer.Owner)
	assert.True(t, resp.Answer.OwnerCompressed)
}

func TestUdpCodec_DecodeResponse_ReportsReservedBits(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	codec := &udpCodec{logger: log.NewZapLogger(zap.New(core)), nextID: fixedID(0x4D2)}
	query, err := codec.EncodeQuery(mustQuestion(t, "example.com"))
	require.NoError(t, err)

	data := syntheticResponse(query, 0x8170, answerBytes(questionPointer, domain.RRTypeA, 300, 4, []byte{93, 184, 216, 34}))

	resp, err := codec.DecodeResponse(data, query)
	require.NoError(t, err)
	assert.Equal(t, domain.UnpackFlags(0x8100), resp.Header.Flags)

	entries := logs.FilterMessage("Decoded DNS response header").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, 7, entries[0].ContextMap()["reserved"])
}

func TestUdpCodec_DecodeResponse_NoAnswer(t *testing.T) {
	codec := newTestCodec(9)
	query, err := codec.EncodeQuery(mustQuestion(t, "nope.example"))
	require.NoError(t, err)

	data := syntheticResponse(query, 0x8183, nil)
	resp, err := codec.DecodeResponse(data, query)
	require.NoError(t, err)
	assert.Equal(t, domain.RCodeNXDomain, resp.RCode())
	assert.False(t, resp.HasAnswer())
	assert.Equal(t, query.Question, resp.Question)
}

func TestUdpCodec_DecodeResponse_Errors(t *testing.T) {
	codec := newTestCodec(1)
	query, err := codec.EncodeQuery(mustQuestion(t, "example.com"))
	require.NoError(t, err)
	full := syntheticResponse(query, 0x8180, answerBytes(questionPointer, domain.RRTypeA, 300, 4, []byte{1, 2, 3, 4}))

	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{"short header", full[:11], domain.ErrMalformedHeader},
		{"question cut", full[:20], domain.ErrTruncatedAnswer},
		{"answer cut", full[:len(full)-2], domain.ErrTruncatedAnswer},
		{
			"foreign pointer",
			syntheticResponse(query, 0x8180, answerBytes([]byte{0xC0, 0x2A}, domain.RRTypeA, 300, 4, []byte{1, 2, 3, 4})),
			domain.ErrUnsupportedNameEncoding,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.DecodeResponse(tt.data, query)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUdpCodec_DecodeResponse_ReferenceServer(t *testing.T) {
	codec := newTestCodec(0x2222)
	query, err := codec.EncodeQuery(mustQuestion(t, "example.com"))
	require.NoError(t, err)

	req := new(dns.Msg)
	require.NoError(t, req.Unpack(query.Data))

	reply := new(dns.Msg)
	reply.SetReply(req)
	reply.Compress = true
	reply.Answer = append(reply.Answer, &dns.A{
		Hdr: dns.RR_Header{Name: "example.com.", Rrtype: dns.TypeA, Class: dns.ClassINET, Ttl: 3600},
		A:   net.IPv4(192, 0, 2, 7),
	})
	raw := runtimex.PanicOnError1(reply.Pack())

	resp, err := codec.DecodeResponse(raw, query)
	require.NoError(t, err)
	assert.Equal(t, domain.MessageID(0x2222), resp.Header.ID)
	assert.Equal(t, domain.QRResponse, resp.Header.Flags.QR)
	assert.Equal(t, domain.RDFullServiceResolver, resp.Header.Flags.RD)
	require.NotNil(t, resp.Answer)
	assert.True(t, resp.Answer.OwnerCompressed)
	assert.Equal(t, uint32(3600), resp.Answer.TTL)
	assert.Equal(t, "192.0.2.7", resp.Answer.Address)
}

func TestUdpCodec_DecodeResponse_OnlyFirstAnswer(t *testing.T) {
	codec := newTestCodec(0x3333)
	query, err := codec.EncodeQuery(mustQuestion(t, "example.com"))
	require.NoError(t, err)

	req := new(dns.Msg)
	require.NoError(t, req.Unpack(query.Data))
	reply := new(dns.Msg)
	reply.SetReply(req)
	reply.Compress = true
	for _, last := range []byte{1, 2} {
		reply.Answer = append(reply.Answer, &dns.A{
			Hdr: dns.RR_Header{Name: "example.com.", Rrtype: dns.TypeA, Class: dns.ClassINET, Ttl: 60},
			A:   net.IPv4(198, 51, 100, last),
		})
	}

	resp, err := codec.DecodeResponse(runtimex.PanicOnError1(reply.Pack()), query)
	require.NoError(t, err)
	assert.Equal(t, uint16(2), resp.Header.ANCount)
	assert.Equal(t, "198.51.100.1", resp.Answer.Address)
}
