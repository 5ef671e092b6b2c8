package rrdata

import (
	"fmt"

	"github.com/haukened/rr-lookup/internal/dns/gateways/wire"
)

// decodeNameData decodes RDATA made of a single domain name (NS, CNAME).
// Names compressed against the rest of the message cannot be followed from
// RDATA alone and fail with domain.ErrUnsupportedNameEncoding.
func decodeNameData(b []byte) (string, error) {
	name, n, err := wire.DecodeName(b)
	if err != nil {
		return "", err
	}
	if n != len(b) {
		return "", fmt.Errorf("trailing bytes after name: %d", len(b)-n)
	}
	return name + ".", nil
}
