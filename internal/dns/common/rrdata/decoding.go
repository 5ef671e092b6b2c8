// Package rrdata renders RDATA in presentation format for display. It never
// takes part in decoding a message: the wire package hands records over with
// their RDATA untouched.
package rrdata

import (
	"encoding/hex"
	"strconv"

	"github.com/haukened/rr-lookup/internal/dns/domain"
)

// Decode decodes a record value based on its type, from its binary representation.
func Decode(rrType domain.RRType, data []byte) (string, error) {
	switch rrType {
	case domain.RRTypeA: // 1
		return decodeAData(data)
	case domain.RRTypeNS, domain.RRTypeCNAME: // 2, 5
		return decodeNameData(data)
	case domain.RRTypeMX: // 15
		return decodeMXData(data)
	case domain.RRTypeTXT: // 16
		return decodeTXTData(data)
	case domain.RRTypeAAAA: // 28
		return decodeAAAAData(data)
	default:
		return hexData(data), nil
	}
}

// Format returns the presentation form of a decoded answer. The address
// decoded by the wire layer wins; anything that cannot be rendered falls back
// to RFC 3597 generic notation.
func Format(rr domain.ResourceRecord) string {
	if rr.IsAddress() {
		return rr.Address
	}
	s, err := Decode(rr.Type, rr.RData)
	if err != nil {
		return hexData(rr.RData)
	}
	return s
}

// hexData renders RDATA as RFC 3597 "\# <len> <hex>".
func hexData(b []byte) string {
	if len(b) == 0 {
		return `\# 0`
	}
	return `\# ` + strconv.Itoa(len(b)) + " " + hex.EncodeToString(b)
}
