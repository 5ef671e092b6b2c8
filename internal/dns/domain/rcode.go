package domain

import "fmt"

// RCode represents a DNS response code indicating the result of a query.
// It occupies the low four bits of the header flags.
type RCode uint8

// DNS response codes understood by the resolver.
const (
	RCodeNoError   RCode = 0
	RCodeFormError RCode = 1
	RCodeServFail  RCode = 2
	RCodeNXDomain  RCode = 3
	RCodeNotImp    RCode = 4
	RCodeRefused   RCode = 5
)

// IsValid returns true if the RCode is one of the known response codes.
func (r RCode) IsValid() bool {
	return r <= RCodeRefused
}

// String returns the textual representation of the RCode.
func (r RCode) String() string {
	switch r {
	case RCodeNoError:
		return "NOERROR"
	case RCodeFormError:
		return "FORMERR"
	case RCodeServFail:
		return "SERVFAIL"
	case RCodeNXDomain:
		return "NXDOMAIN"
	case RCodeNotImp:
		return "NOTIMP"
	case RCodeRefused:
		return "REFUSED"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", r)
	}
}

// Description returns a human readable explanation of the RCode.
func (r RCode) Description() string {
	switch r {
	case RCodeNoError:
		return "No error"
	case RCodeFormError:
		return "Format error"
	case RCodeServFail:
		return "Server failure"
	case RCodeNXDomain:
		return "Not found"
	case RCodeNotImp:
		return "Not implemented"
	case RCodeRefused:
		return "Connection refused"
	default:
		return undefined
	}
}
