package dates

import (
	"testing"
	"time"
)

func TestFormatISO(t *testing.T) {
	in := time.Date(2025, 1, 2, 8, 0, 0, 500_000_000, time.UTC)
	if got := FormatISO(in); got != "2025-01-02T08:00:00.500Z" {
		t.Errorf("got %q", got)
	}

	// Non-UTC inputs are converted before formatting.
	loc := time.FixedZone("BST", 6*3600)
	in = time.Date(2025, 1, 2, 6, 0, 0, 0, loc)
	if got := FormatISO(in); got != "2025-01-02T00:00:00.000Z" {
		t.Errorf("got %q", got)
	}
}

func TestParseInstant(t *testing.T) {
	for _, s := range []string{
		"2025-01-02T08:00:00.000Z",
		"2025-01-02T08:00:00Z",
		"2025-01-02T14:00:00+06:00",
		"2025-01-02",
	} {
		if _, err := ParseInstant(s); err != nil {
			t.Errorf("ParseInstant(%q): %v", s, err)
		}
	}
	for _, s := range []string{"", "yesterday", "02-01-2025", "2025-13-40"} {
		if _, err := ParseInstant(s); err == nil {
			t.Errorf("ParseInstant(%q) should fail", s)
		}
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	const s = "2025-06-15T23:59:59.999Z"
	got, err := ParseInstant(s)
	if err != nil {
		t.Fatal(err)
	}
	if FormatISO(got) != s {
		t.Errorf("round trip gave %q", FormatISO(got))
	}
}

func TestYMD(t *testing.T) {
	if got := YMD("2025-01-02T08:00:00.000Z"); got != "2025-01-02" {
		t.Errorf("got %q", got)
	}
	if got := YMD("2025-01-02"); got != "2025-01-02" {
		t.Errorf("got %q", got)
	}
}

func TestDDMMYYYY(t *testing.T) {
	if got := DDMMYYYY("2025-01-02T08:00:00.000Z"); got != "02-01-2025" {
		t.Errorf("got %q", got)
	}
	if got := DDMMYYYY("2025-12-31"); got != "31-12-2025" {
		t.Errorf("got %q", got)
	}
}

func TestIsYMD(t *testing.T) {
	if !IsYMD("2025-01-02") {
		t.Error("valid day rejected")
	}
	for _, s := range []string{"", "2025-1-2x", "02-01-2025", "2025-02-30"} {
		if IsYMD(s) {
			t.Errorf("IsYMD(%q) should be false", s)
		}
	}
}
