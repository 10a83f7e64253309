package sequence

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestTagPrefix(t *testing.T) {
	got := TagPrefix(date(2025, time.November, 16))
	if got != "251116" {
		t.Errorf("expected 251116, got %s", got)
	}
}

func TestAssetFilePrefix(t *testing.T) {
	got := AssetFilePrefix(date(2025, time.November, 16))
	if got != "AF-20251116-" {
		t.Errorf("expected AF-20251116-, got %s", got)
	}
}

func TestFormat(t *testing.T) {
	if got := Format("251116", 1); got != "2511160001" {
		t.Errorf("expected 2511160001, got %s", got)
	}
	if got := Format("AF-20251116-", 42); got != "AF-20251116-0042" {
		t.Errorf("expected AF-20251116-0042, got %s", got)
	}
	if got := Format("251116", MaxPerDay); got != "2511169999" {
		t.Errorf("expected 2511169999, got %s", got)
	}
}

func TestNextAfter(t *testing.T) {
	tests := []struct {
		name    string
		prefix  string
		highest string
		want    int
		wantOK  bool
	}{
		{"empty sequence starts at 1", "251116", "", 1, true},
		{"increments highest", "251116", "2511160041", 42, true},
		{"independent asset-file namespace", "AF-20251116-", "AF-20251116-0007", 8, true},
		{"ceiling is hard, no rollover", "251116", "2511169999", 0, false},
		{"last valid value", "251116", "2511169998", 9999, true},
		{"malformed stored code restarts", "251116", "251116XXXX", 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NextAfter(tt.prefix, tt.highest)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if ok && got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestParseSuffix(t *testing.T) {
	if got := ParseSuffix("251116", "2511160001"); got != 1 {
		t.Errorf("expected 1, got %d", got)
	}
	if got := ParseSuffix("251116", "2511169999"); got != MaxPerDay {
		t.Errorf("expected %d, got %d", MaxPerDay, got)
	}
	if got := ParseSuffix("251116", "2511150001"); got != -1 {
		t.Errorf("expected -1 for wrong prefix, got %d", got)
	}
	if got := ParseSuffix("251116", "251116abcd"); got != -1 {
		t.Errorf("expected -1 for non-numeric suffix, got %d", got)
	}
}

func TestChildCode(t *testing.T) {
	if got := ChildCode("PRY-001", 0); got != "PRY-001-1" {
		t.Errorf("expected PRY-001-1, got %s", got)
	}
	if got := ChildCode("PRY-001", 7); got != "PRY-001-8" {
		t.Errorf("expected PRY-001-8, got %s", got)
	}
}

func TestResponsibleCode(t *testing.T) {
	if got := ResponsibleCode(0); got != "R1" {
		t.Errorf("expected R1, got %s", got)
	}
	if got := ResponsibleCode(14); got != "R15" {
		t.Errorf("expected R15, got %s", got)
	}
}
