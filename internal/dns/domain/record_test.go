package domain

import (
	"testing"
	"time"
)

func TestResourceRecord_TTLDuration(t *testing.T) {
	rr := ResourceRecord{TTL: 300}
	if got := rr.TTLDuration(); got != 300*time.Second {
		t.Errorf("TTLDuration() = %v, want 5m", got)
	}
}

func TestResourceRecord_IsAddress(t *testing.T) {
	cases := []struct {
		name string
		rr   ResourceRecord
		want bool
	}{
		{"decoded A", ResourceRecord{Type: RRTypeA, Address: "93.184.216.34"}, true},
		{"A without address", ResourceRecord{Type: RRTypeA, RData: []byte{1, 2}}, false},
		{"AAAA", ResourceRecord{Type: RRTypeAAAA, RData: make([]byte, 16)}, false},
	}
	for _, tc := range cases {
		if got := tc.rr.IsAddress(); got != tc.want {
			t.Errorf("%s: IsAddress() = %v, want %v", tc.name, got, tc.want)
		}
	}
}
