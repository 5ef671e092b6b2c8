package domain

import (
	"github.com/haukened/rr-lookup/internal/dns/common/names"
)

// generateCacheKey returns a consistent cache key derived from a DNS name, type, and class.
// Format: "apex|name|type|class" (e.g., "example.com|www.example.com|A|IN")
// Uses pipe (|) separator to avoid conflicts with colons in IPv6 addresses and URIs.
func generateCacheKey(name string, t RRType, c RRClass) string {
	name = names.Canonical(name)
	apexDomain := names.Apex(name)
	return apexDomain + "|" + name + "|" + t.String() + "|" + c.String()
}
