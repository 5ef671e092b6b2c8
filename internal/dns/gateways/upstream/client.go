// Package upstream exchanges encoded queries with resolvers over UDP.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/haukened/rr-lookup/internal/dns/common/log"
	"github.com/haukened/rr-lookup/internal/dns/domain"
	"github.com/haukened/rr-lookup/internal/dns/gateways/wire"
	"github.com/haukened/rr-lookup/internal/dns/services/lookup"
)

const (
	// DefaultServer is the resolver used when none is configured.
	DefaultServer = "8.8.8.8:53"
	// DefaultTimeout bounds a query when the context carries no deadline.
	DefaultTimeout = 5 * time.Second
	// DefaultBufferSize is the largest datagram read back from a server.
	DefaultBufferSize = 2048
)

// Error message constants for consistent error handling
const (
	errCodecRequired    = "DNS codec is required"
	errServerFailed     = "server %s: %w"
	errAllServersFailed = "all %d upstream servers failed"
	errQueryTimeout     = "%w: query timeout after %v"
	errFailedToConnect  = "%w: failed to connect: %w"
	errEncodeFailed     = "encode failed: %w"
	errWriteFailed      = "%w: write failed: %w"
	errZeroByteSend     = "%w: zero-byte send"
	errReadFailed       = "%w: read failed: %w"
	errIDMismatch       = "%w: response ID %d does not match query ID %d"
)

// Client sends queries to upstream DNS servers.
type Client struct {
	servers    []string
	timeout    time.Duration
	codec      wire.DNSCodec
	parallel   bool
	dial       DialFunc
	bufferSize int
	logger     log.Logger
}

// DialFunc defines a function type for establishing a network connection.
// It takes a context for cancellation, the network type (e.g., "tcp", "udp"),
// and the address to connect to, returning a net.Conn and an error if any occurs.
type DialFunc func(ctx context.Context, network, address string) (net.Conn, error)

// Options configures a Client. Zero values fall back to the package defaults.
type Options struct {
	Servers    []string
	Timeout    time.Duration
	Parallel   bool
	BufferSize int
	Logger     log.Logger
	// options to inject for testing purposes
	Codec wire.DNSCodec
	Dial  DialFunc
}

// NewClient creates a new upstream client with the specified options.
// Returns an error if the codec is not provided.
func NewClient(opts Options) (*Client, error) {
	if opts.Codec == nil {
		return nil, errors.New(errCodecRequired)
	}
	if len(opts.Servers) == 0 {
		opts.Servers = []string{DefaultServer}
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.BufferSize <= 0 {
		opts.BufferSize = DefaultBufferSize
	}
	if opts.Dial == nil {
		opts.Dial = (&net.Dialer{}).DialContext
	}
	if opts.Logger == nil {
		opts.Logger = log.NewNoopLogger()
	}
	return &Client{
		servers:    opts.Servers,
		timeout:    opts.Timeout,
		codec:      opts.Codec,
		parallel:   opts.Parallel,
		dial:       opts.Dial,
		bufferSize: opts.BufferSize,
		logger:     opts.Logger,
	}, nil
}

// ensureContextDeadline ensures the context has a deadline, adding the client's default timeout if needed.
// Returns the context (potentially with added timeout) and a cancel function if one was created.
func (c *Client) ensureContextDeadline(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); !ok {
		return context.WithTimeout(ctx, c.timeout)
	}
	return ctx, nil
}

// Query encodes q, sends it upstream and decodes the reply. Encoding errors are
// returned before any datagram is sent. Network failures wrap domain.ErrTransport.
func (c *Client) Query(ctx context.Context, q domain.Question) (domain.Response, error) {
	query, err := c.codec.EncodeQuery(q)
	if err != nil {
		return domain.Response{}, fmt.Errorf(errEncodeFailed, err)
	}

	ctx, cancel := c.ensureContextDeadline(ctx)
	if cancel != nil {
		defer cancel()
	}

	if c.parallel {
		return c.queryParallel(ctx, query)
	}
	return c.querySerial(ctx, query)
}

// querySerial attempts each server in order until one responds successfully.
func (c *Client) querySerial(ctx context.Context, query wire.Query) (domain.Response, error) {
	var lastErr error
	for _, server := range c.servers {
		resp, err := c.queryServer(ctx, server, query)
		if err == nil {
			return resp, nil
		}
		c.logger.Warn(map[string]any{"server": server, "error": err.Error()}, "Upstream query failed")
		lastErr = fmt.Errorf(errServerFailed, server, err)
		if ctx.Err() != nil {
			break
		}
	}
	return domain.Response{}, fmt.Errorf(errAllServersFailed+": %w", len(c.servers), lastErr)
}

// queryParallel sends the query to every server at once and returns the first success.
func (c *Client) queryParallel(ctx context.Context, query wire.Query) (domain.Response, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	responseChan := make(chan domain.Response, 1)
	errorChan := make(chan error, len(c.servers))

	for _, server := range c.servers {
		go func(srv string) {
			response, err := c.queryServer(ctx, srv, query)
			if err != nil {
				errorChan <- fmt.Errorf(errServerFailed, srv, err)
				return
			}
			select {
			case responseChan <- response:
			default:
			}
		}(server)
	}

	var errs []error
	for i := 0; i < len(c.servers); i++ {
		select {
		case response := <-responseChan:
			return response, nil
		case err := <-errorChan:
			errs = append(errs, err)
		case <-ctx.Done():
			return domain.Response{}, fmt.Errorf(errQueryTimeout, domain.ErrTransport, c.timeout)
		}
	}
	return domain.Response{}, fmt.Errorf(errAllServersFailed+": %w", len(c.servers), errors.Join(errs...))
}

// queryServer performs one exchange with server, honouring ctx cancellation.
func (c *Client) queryServer(ctx context.Context, server string, query wire.Query) (domain.Response, error) {
	logger := c.logger.With(map[string]any{"server": server, "id": query.ID})

	conn, err := c.dial(ctx, "udp", server)
	if err != nil {
		return domain.Response{}, fmt.Errorf(errFailedToConnect, domain.ErrTransport, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	type result struct {
		response domain.Response
		err      error
	}
	resultChan := make(chan result, 1)

	go func() {
		n, err := send(conn, query.Data)
		if err != nil {
			resultChan <- result{err: err}
			return
		}
		logger.Debug(map[string]any{"bytes": n}, "Sent query")

		data, err := receive(conn, c.bufferSize)
		if err != nil {
			resultChan <- result{err: err}
			return
		}
		logger.Debug(map[string]any{"bytes": len(data)}, "Received response")

		response, err := c.codec.DecodeResponse(data, query)
		if err == nil && response.Header.ID != query.ID {
			err = fmt.Errorf(errIDMismatch, domain.ErrTransport, response.Header.ID, query.ID)
		}
		resultChan <- result{response: response, err: err}
	}()

	select {
	case res := <-resultChan:
		return res.response, res.err
	case <-ctx.Done():
		return domain.Response{}, fmt.Errorf("%w: %w", domain.ErrTransport, ctx.Err())
	}
}

// send writes one datagram. Writing zero bytes is fatal: nothing was sent, so
// there is nothing to wait for.
func send(conn net.Conn, b []byte) (int, error) {
	n, err := conn.Write(b)
	if err != nil {
		return n, fmt.Errorf(errWriteFailed, domain.ErrTransport, err)
	}
	if n == 0 {
		return 0, fmt.Errorf(errZeroByteSend, domain.ErrTransport)
	}
	return n, nil
}

// receive reads one datagram of at most maxBytes.
func receive(conn net.Conn, maxBytes int) ([]byte, error) {
	buffer := make([]byte, maxBytes)
	n, err := conn.Read(buffer)
	if err != nil {
		return nil, fmt.Errorf(errReadFailed, domain.ErrTransport, err)
	}
	return buffer[:n], nil
}

var _ lookup.UpstreamClient = (*Client)(nil)
