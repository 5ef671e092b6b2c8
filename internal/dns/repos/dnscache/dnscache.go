package dnscache

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/haukened/rr-lookup/internal/dns/common/clock"
	"github.com/haukened/rr-lookup/internal/dns/domain"
	"github.com/haukened/rr-lookup/internal/dns/services/lookup"
)

// entry is a cached response and the instant it stops being valid.
type entry struct {
	resp      domain.Response
	expiresAt time.Time
}

// dnsCache is an in-memory TTL-aware cache of decoded responses using an LRU
// strategy. Entries are keyed by question and live for the answer's TTL.
type dnsCache struct {
	lru   *lru.Cache[string, entry]
	clock clock.Clock
}

// New returns a new dnsCache instance of the given size using an LRU backing store.
func New(size int, clk clock.Clock) (*dnsCache, error) {
	cache, err := lru.New[string, entry](size)
	if err != nil {
		return nil, err
	}
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &dnsCache{lru: cache, clock: clk}, nil
}

// Set stores resp under the key of its question. Responses without an answer
// or with a zero TTL are not cached.
func (c *dnsCache) Set(resp domain.Response) {
	ttl := resp.TTL()
	if ttl <= 0 {
		return
	}
	c.lru.Add(resp.Question.CacheKey(), entry{
		resp:      resp,
		expiresAt: c.clock.Now().Add(ttl),
	})
}

// Get retrieves the response for q if present and not expired. Expired entries
// are removed. The returned answer carries the TTL remaining, not the TTL
// originally received.
func (c *dnsCache) Get(q domain.Question) (domain.Response, bool) {
	key := q.CacheKey()
	e, found := c.lru.Get(key)
	if !found {
		return domain.Response{}, false
	}

	remaining := e.expiresAt.Sub(c.clock.Now())
	if remaining <= 0 {
		c.lru.Remove(key)
		return domain.Response{}, false
	}

	resp := e.resp
	answer := *e.resp.Answer
	//gosec:disable G115 -- remaining is bounded by the original uint32 TTL.
	answer.TTL = uint32(remaining / time.Second)
	resp.Answer = &answer
	return resp, true
}

// Delete removes the entry for q from the cache.
func (c *dnsCache) Delete(q domain.Question) {
	c.lru.Remove(q.CacheKey())
}

// Len returns the number of cached responses.
func (c *dnsCache) Len() int {
	return c.lru.Len()
}

var _ lookup.Cache = (*dnsCache)(nil)
