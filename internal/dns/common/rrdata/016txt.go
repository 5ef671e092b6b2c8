package rrdata

import (
	"fmt"
	"strconv"
	"strings"
)

// decodeTXTData renders each character-string of a TXT record quoted, space separated.
func decodeTXTData(b []byte) (string, error) {
	var segments []string
	for i := 0; i < len(b); {
		n := int(b[i])
		i++
		if i+n > len(b) {
			return "", fmt.Errorf("TXT segment overruns RDATA")
		}
		segments = append(segments, strconv.Quote(string(b[i:i+n])))
		i += n
	}
	if len(segments) == 0 {
		return "", fmt.Errorf("TXT record must contain at least one segment")
	}
	return strings.Join(segments, " "), nil
}
