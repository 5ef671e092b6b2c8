// Package lookup turns user-supplied names into A questions and answers them
// from the cache or the upstream resolver.
package lookup

import (
	"context"
	"fmt"
	"strings"

	"github.com/haukened/rr-lookup/internal/dns/common/log"
	"github.com/haukened/rr-lookup/internal/dns/common/names"
	"github.com/haukened/rr-lookup/internal/dns/domain"
)

// Result is the outcome of one lookup.
type Result struct {
	Response domain.Response
	// Cached is set when the response was served from the cache.
	Cached bool
}

// Service resolves names to A records.
type Service struct {
	cache    Cache
	logger   log.Logger
	upstream UpstreamClient
	idna     bool
}

// Options configures a Service. Cache may be nil to disable caching.
type Options struct {
	Cache    Cache
	Logger   log.Logger
	Upstream UpstreamClient
	// IDNA converts internationalised names to punycode before encoding.
	IDNA bool
}

// NewService returns a lookup Service. Upstream is required.
func NewService(opts Options) (*Service, error) {
	if opts.Upstream == nil {
		return nil, fmt.Errorf("upstream client is required")
	}
	if opts.Logger == nil {
		opts.Logger = log.NewNoopLogger()
	}
	return &Service{
		cache:    opts.Cache,
		logger:   opts.Logger,
		upstream: opts.Upstream,
		idna:     opts.IDNA,
	}, nil
}

// Question normalises name and returns the A/IN question for it. Only one
// trailing dot is accepted as the root marker.
func (s *Service) Question(name string) (domain.Question, error) {
	name = names.Canonical(name)
	if strings.HasSuffix(name, ".") {
		return domain.Question{}, fmt.Errorf("%w: empty label in %q", domain.ErrEncoding, name)
	}
	if s.idna {
		ascii, err := names.ToASCII(name)
		if err != nil {
			return domain.Question{}, fmt.Errorf("%w: %q is not a valid internationalised name: %v", domain.ErrEncoding, name, err)
		}
		name = ascii
	}
	q, err := domain.NewAddressQuestion(name)
	if err != nil {
		return domain.Question{}, fmt.Errorf("%w: %v", domain.ErrEncoding, err)
	}
	return q, nil
}

// Lookup resolves the A record of name.
func (s *Service) Lookup(ctx context.Context, name string) (Result, error) {
	q, err := s.Question(name)
	if err != nil {
		return Result{}, err
	}

	if s.cache != nil {
		if resp, ok := s.cache.Get(q); ok {
			s.logger.Debug(map[string]any{"name": q.Name, "ttl": resp.TTL().String()}, "Answer served from cache")
			return Result{Response: resp, Cached: true}, nil
		}
	}

	resp, err := s.upstream.Query(ctx, q)
	if err != nil {
		return Result{}, fmt.Errorf("lookup %s: %w", q.Name, err)
	}

	s.logger.Info(map[string]any{
		"name":   q.Name,
		"id":     resp.Header.ID,
		"rcode":  resp.RCode().String(),
		"answer": resp.HasAnswer(),
	}, "Lookup completed")

	if s.cache != nil {
		s.cache.Set(resp)
	}
	return Result{Response: resp}, nil
}
