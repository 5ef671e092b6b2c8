package rrdata

import (
	"encoding/binary"
	"fmt"
)

// decodeMXData decodes MX (Mail Exchange) record data from the given byte slice.
func decodeMXData(b []byte) (string, error) {
	if len(b) < 3 {
		return "", fmt.Errorf("invalid MX data length")
	}
	pref := binary.BigEndian.Uint16(b[:2])
	exchange, err := decodeNameData(b[2:])
	if err != nil {
		return "", fmt.Errorf("invalid MX exchange domain: %w", err)
	}
	return fmt.Sprintf("%d %s", pref, exchange), nil
}
