package domain

import "fmt"

const undefined = "Undefined"

// QR distinguishes a query from a response.
type QR uint8

const (
	QRQuery    QR = 0
	QRResponse QR = 1
)

func (q QR) String() string {
	switch q {
	case QRQuery:
		return "QUERY"
	case QRResponse:
		return "RESPONSE"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", q)
	}
}

// Description returns the human readable form of the QR bit.
func (q QR) Description() string {
	switch q {
	case QRQuery:
		return "Query"
	case QRResponse:
		return "Response"
	default:
		return undefined
	}
}

// Opcode is the kind of query carried by a message.
type Opcode uint8

const (
	OpcodeQuery      Opcode = 0
	OpcodeIQuery     Opcode = 1
	OpcodeStatus     Opcode = 2
	OpcodeUnassigned Opcode = 3
	OpcodeNotify     Opcode = 4
	OpcodeUpdate     Opcode = 5
)

func (o Opcode) String() string {
	switch o {
	case OpcodeQuery:
		return "QUERY"
	case OpcodeIQuery:
		return "IQUERY"
	case OpcodeStatus:
		return "STATUS"
	case OpcodeUnassigned:
		return "UNASSIGNED"
	case OpcodeNotify:
		return "NOTIFY"
	case OpcodeUpdate:
		return "UPDATE"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", o)
	}
}

// Description returns the human readable form of the opcode.
func (o Opcode) Description() string {
	switch o {
	case OpcodeQuery:
		return "Query"
	case OpcodeIQuery:
		return "IQuery"
	case OpcodeStatus:
		return "Status"
	case OpcodeUnassigned:
		return "Unassigned"
	case OpcodeNotify:
		return "Notify"
	case OpcodeUpdate:
		return "Update"
	default:
		return undefined
	}
}

// AA is the authoritative-answer bit.
type AA uint8

const (
	AANo  AA = 0
	AAYes AA = 1
)

// Description returns "Yes" or "No".
func (a AA) Description() string {
	switch a {
	case AANo:
		return "No"
	case AAYes:
		return "Yes"
	default:
		return undefined
	}
}

// TC is the truncation bit.
type TC uint8

const (
	TCNotTruncated TC = 0
	TCTruncated    TC = 1
)

// Description returns the human readable form of the TC bit.
func (t TC) Description() string {
	switch t {
	case TCNotTruncated:
		return "Not truncated"
	case TCTruncated:
		return "Truncated"
	default:
		return undefined
	}
}

// RD is the recursion-desired bit. A requester sets it to ask the server to
// act as a full-service resolver.
type RD uint8

const (
	RDAuthoritativeServer RD = 0
	RDFullServiceResolver RD = 1
)

// Description returns the human readable form of the RD bit.
func (r RD) Description() string {
	switch r {
	case RDAuthoritativeServer:
		return "Authoritative Server"
	case RDFullServiceResolver:
		return "Full service resolver"
	default:
		return undefined
	}
}

// RA is the recursion-available bit as this resolver encodes it: zero means
// available and one means unavailable.
type RA uint8

const (
	RAAvailable   RA = 0
	RAUnavailable RA = 1
)

// Description returns "Yes" when recursion is available and "No" otherwise.
func (r RA) Description() string {
	switch r {
	case RAAvailable:
		return "Yes"
	case RAUnavailable:
		return "No"
	default:
		return undefined
	}
}

// Bit positions and masks of the fields packed into the 16-bit header flags.
// Bits 4 through 6 are reserved: they are written as zero and ignored on read.
const (
	qrShift     = 15
	opcodeShift = 11
	aaShift     = 10
	tcShift     = 9
	rdShift     = 8
	raShift     = 7

	oneBitMask  = 0x01
	opcodeMask  = 0x0F
	rcodeMask   = 0x0F
	reservedBit = 0x0070
)

// HeaderFlags is the unpacked form of the 16-bit flags word.
type HeaderFlags struct {
	QR     QR
	Opcode Opcode
	AA     AA
	TC     TC
	RD     RD
	RA     RA
	RCode  RCode
}

// QueryFlags returns the flags carried by every query this resolver sends.
func QueryFlags() HeaderFlags {
	return HeaderFlags{
		QR:     QRQuery,
		Opcode: OpcodeQuery,
		AA:     AANo,
		TC:     TCNotTruncated,
		RD:     RDFullServiceResolver,
		RA:     RAAvailable,
		RCode:  RCodeNoError,
	}
}

// Pack folds the flags into their wire representation. Values wider than
// their field are masked so a bad value can never bleed into a neighbour.
func (f HeaderFlags) Pack() uint16 {
	return uint16(f.QR&oneBitMask)<<qrShift |
		uint16(f.Opcode&opcodeMask)<<opcodeShift |
		uint16(f.AA&oneBitMask)<<aaShift |
		uint16(f.TC&oneBitMask)<<tcShift |
		uint16(f.RD&oneBitMask)<<rdShift |
		uint16(f.RA&oneBitMask)<<raShift |
		uint16(f.RCode&rcodeMask)
}

// UnpackFlags splits a wire flags word into its fields, ignoring the reserved bits.
func UnpackFlags(v uint16) HeaderFlags {
	//gosec:disable G115 -- every field is masked to at most four bits before conversion.
	return HeaderFlags{
		QR:     QR((v >> qrShift) & oneBitMask),
		Opcode: Opcode((v >> opcodeShift) & opcodeMask),
		AA:     AA((v >> aaShift) & oneBitMask),
		TC:     TC((v >> tcShift) & oneBitMask),
		RD:     RD((v >> rdShift) & oneBitMask),
		RA:     RA((v >> raShift) & oneBitMask),
		RCode:  RCode(v & rcodeMask),
	}
}

// ReservedBits reports the reserved bits of a raw flags word. Unpacking ignores
// them; this is exposed for callers that want to inspect a peer's behaviour.
func ReservedBits(v uint16) uint16 {
	return (v & reservedBit) >> 4
}
