package domain

import "errors"

// Sentinel errors for the codec and its transport. Failures wrap exactly one of
// these with context, so callers classify them with errors.Is.
var (
	// ErrEncoding reports a name that cannot be put on the wire.
	ErrEncoding = errors.New("encoding error")

	// ErrMalformedHeader reports a message too short to hold a header.
	ErrMalformedHeader = errors.New("malformed header")

	// ErrTruncatedAnswer reports an answer section shorter than its fields claim.
	ErrTruncatedAnswer = errors.New("truncated answer")

	// ErrUnsupportedNameEncoding reports an owner name using a compression
	// pointer other than the one back to the question name. This is a known
	// limitation, not a malformed message.
	ErrUnsupportedNameEncoding = errors.New("unsupported name encoding")

	// ErrTransport reports a failure to exchange datagrams with a server.
	ErrTransport = errors.New("transport error")
)
