package domain

import "fmt"

// RRClass represents a DNS class. Only IN is spoken by this resolver.
type RRClass uint16

// RRClassIN is the Internet class.
const RRClassIN RRClass = 1

// IsValid returns true if the RRClass is IN.
func (c RRClass) IsValid() bool {
	return c == RRClassIN
}

// String returns the textual representation of the RRClass.
func (c RRClass) String() string {
	if c == RRClassIN {
		return "IN"
	}
	return fmt.Sprintf("UNKNOWN(%d)", c)
}
