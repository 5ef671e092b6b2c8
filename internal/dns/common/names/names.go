// Package names normalises user-supplied domain names before they are encoded.
package names

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"
)

// lookupProfile maps internationalised names for lookup without the STD3 and
// hyphen rules, so labels such as "_dmarc" or "ab--cd" survive conversion.
var lookupProfile = idna.New(
	idna.MapForLookup(),
	idna.BidiRule(),
	idna.StrictDomainName(false),
	idna.CheckHyphens(false),
)

// Canonical returns a DNS name in canonical form: trimmed of surrounding
// whitespace, lowercased, and without its root marker. Only one trailing dot
// is removed; "example.com.." keeps a dot so the encoder can reject it.
func Canonical(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.TrimSuffix(name, ".")
}

// Apex returns the registrable domain (eTLD+1) of name, or the canonical name
// itself when the public suffix list cannot place it.
func Apex(name string) string {
	name = Canonical(name)
	apex, err := publicsuffix.EffectiveTLDPlusOne(name)
	if err != nil {
		return name
	}
	return apex
}

// ToASCII converts an internationalised name to its punycode form. ASCII
// names are returned unchanged; length and label rules are left to the encoder.
func ToASCII(name string) (string, error) {
	if isASCII(name) {
		return name, nil
	}
	return lookupProfile.ToASCII(name)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
