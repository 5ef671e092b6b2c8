package lookup

import (
	"context"

	"github.com/haukened/rr-lookup/internal/dns/domain"
)

// UpstreamClient sends a question to a resolver and returns its decoded reply.
type UpstreamClient interface {
	Query(ctx context.Context, q domain.Question) (domain.Response, error)
}

// Cache holds decoded responses for the lifetime of their answer TTL.
type Cache interface {
	Get(q domain.Question) (domain.Response, bool)
	Set(resp domain.Response)
}
