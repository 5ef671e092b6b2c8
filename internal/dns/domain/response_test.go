package domain

import (
	"testing"
	"time"
)

func TestResponse_Accessors(t *testing.T) {
	resp := Response{
		Header: Header{Flags: HeaderFlags{QR: QRResponse, RCode: RCodeNXDomain}},
	}
	if resp.HasAnswer() {
		t.Errorf("expected no answer")
	}
	if resp.RCode() != RCodeNXDomain {
		t.Errorf("RCode() = %s, want NXDOMAIN", resp.RCode())
	}
	if resp.TTL() != 0 {
		t.Errorf("TTL() = %v, want 0 without answer", resp.TTL())
	}

	resp.Answer = &ResourceRecord{Type: RRTypeA, TTL: 60, Address: "10.0.0.1"}
	if !resp.HasAnswer() {
		t.Errorf("expected answer")
	}
	if resp.TTL() != time.Minute {
		t.Errorf("TTL() = %v, want 1m", resp.TTL())
	}
}
