package wire

import (
	"fmt"
	"strings"

	"github.com/haukened/rr-lookup/internal/dns/domain"
)

const (
	// MaxLabelLength is the longest label RFC 1035 allows.
	MaxLabelLength = 63
	// MaxNameLength is the longest encoded name, length octets included.
	MaxNameLength = 255

	labelSeparator = "."
	pointerMask    = 0xC0
)

// EncodeName encodes a dotted domain name as length-prefixed labels ending in
// a zero byte. A single trailing dot is accepted as the root marker, and both
// "" and "." encode the root itself.
func EncodeName(name string) ([]byte, error) {
	name = strings.TrimSuffix(name, labelSeparator)
	if name == "" {
		return []byte{0}, nil
	}

	labels := strings.Split(name, labelSeparator)
	size := 1 // terminating zero
	for _, label := range labels {
		if len(label) == 0 {
			return nil, fmt.Errorf("%w: empty label in %q", domain.ErrEncoding, name)
		}
		if len(label) > MaxLabelLength {
			return nil, fmt.Errorf("%w: label too long (%d > %d bytes): %s", domain.ErrEncoding, len(label), MaxLabelLength, label)
		}
		size += 1 + len(label)
	}
	if size > MaxNameLength {
		return nil, fmt.Errorf("%w: name too long (%d > %d bytes)", domain.ErrEncoding, size, MaxNameLength)
	}

	encoded := make([]byte, 0, size)
	for _, label := range labels {
		encoded = append(encoded, byte(len(label)))
		encoded = append(encoded, label...)
	}
	return append(encoded, 0), nil
}

// DecodeName is the inverse of EncodeName: it reads an uncompressed label
// sequence from the start of b and returns the dot-joined name together with
// the number of bytes consumed. The root decodes as "".
func DecodeName(b []byte) (string, int, error) {
	r := NewReader(b)
	name, err := readName(r)
	if err != nil {
		return "", 0, err
	}
	return name, r.Offset(), nil
}

// readName consumes a literal name from r. Compression pointers are refused:
// resolving arbitrary offsets is outside what this decoder supports.
func readName(r *Reader) (string, error) {
	var labels []string
	for {
		length, ok := r.Uint8()
		if !ok {
			return "", fmt.Errorf("%w: name runs past end of message", domain.ErrTruncatedAnswer)
		}
		if length == 0 {
			return strings.Join(labels, labelSeparator), nil
		}
		if length&pointerMask != 0 {
			return "", fmt.Errorf("%w: label type %#02x at offset %d", domain.ErrUnsupportedNameEncoding, length&pointerMask, r.Offset()-1)
		}
		label, ok := r.Bytes(int(length))
		if !ok {
			return "", fmt.Errorf("%w: label runs past end of message", domain.ErrTruncatedAnswer)
		}
		labels = append(labels, string(label))
	}
}
