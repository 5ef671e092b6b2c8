package dnscache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haukened/rr-lookup/internal/dns/common/clock"
	"github.com/haukened/rr-lookup/internal/dns/domain"
)

func answerFor(name string, ttl uint32) domain.Response {
	return domain.Response{
		Header:   domain.Header{ID: 1, Flags: domain.HeaderFlags{QR: domain.QRResponse}, QDCount: 1, ANCount: 1},
		Question: domain.Question{Name: name, Type: domain.RRTypeA, Class: domain.RRClassIN},
		Answer: &domain.ResourceRecord{
			Owner: name, OwnerCompressed: true, Type: domain.RRTypeA, Class: domain.RRClassIN,
			TTL: ttl, RDLength: 4, RData: []byte{10, 0, 0, 1}, Address: "10.0.0.1",
		},
	}
}

func newTestCache(t *testing.T, size int) (*dnsCache, *clock.MockClock) {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	c, err := New(size, clk)
	require.NoError(t, err)
	return c, clk
}

func TestInvalidCacheSize(t *testing.T) {
	_, err := New(-1, nil)
	assert.Error(t, err)
	_, err = New(0, nil)
	assert.Error(t, err)
}

func TestDnsCache_GetReturnsRemainingTTL(t *testing.T) {
	c, clk := newTestCache(t, 4)
	resp := answerFor("example.com", 300)
	c.Set(resp)

	got, ok := c.Get(resp.Question)
	require.True(t, ok)
	assert.Equal(t, "10.0.0.1", got.Answer.Address)
	assert.Equal(t, uint32(300), got.Answer.TTL)

	clk.Advance(100 * time.Second)
	got, ok = c.Get(resp.Question)
	require.True(t, ok)
	assert.Equal(t, uint32(200), got.Answer.TTL)
	assert.Equal(t, uint32(300), resp.Answer.TTL, "stored response must not be mutated")
}

func TestDnsCache_ExpiredEntryIsEvicted(t *testing.T) {
	c, clk := newTestCache(t, 4)
	resp := answerFor("example.com", 60)
	c.Set(resp)
	assert.Equal(t, 1, c.Len())

	clk.Advance(60 * time.Second)
	_, ok := c.Get(resp.Question)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestDnsCache_KeyIsCanonical(t *testing.T) {
	c, _ := newTestCache(t, 4)
	c.Set(answerFor("Example.COM.", 60))

	_, ok := c.Get(domain.Question{Name: "example.com", Type: domain.RRTypeA, Class: domain.RRClassIN})
	assert.True(t, ok)
}

func TestDnsCache_SkipsUncacheable(t *testing.T) {
	c, _ := newTestCache(t, 4)

	nx := domain.Response{Question: domain.Question{Name: "nope.example", Type: domain.RRTypeA, Class: domain.RRClassIN}}
	c.Set(nx)
	c.Set(answerFor("zero.example", 0))
	assert.Equal(t, 0, c.Len())
}

func TestDnsCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c, _ := newTestCache(t, 2)
	a, b, d := answerFor("a.example", 60), answerFor("b.example", 60), answerFor("d.example", 60)
	c.Set(a)
	c.Set(b)
	_, _ = c.Get(a.Question)
	c.Set(d)

	_, ok := c.Get(b.Question)
	assert.False(t, ok, "b was least recently used")
	_, ok = c.Get(a.Question)
	assert.True(t, ok)
	_, ok = c.Get(d.Question)
	assert.True(t, ok)
}

func TestDnsCache_Delete(t *testing.T) {
	c, _ := newTestCache(t, 2)
	resp := answerFor("example.com", 60)
	c.Set(resp)
	c.Delete(resp.Question)
	_, ok := c.Get(resp.Question)
	assert.False(t, ok)
}
