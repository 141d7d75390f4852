// Package dates implements the timestamp and calendar-day conventions used
// across the document schema.
//
// Entity timestamps are ISO-8601 UTC strings with millisecond precision
// ("2025-01-02T08:00:00.000Z"). Calendar days are the zero-padded
// YYYY-MM-DD prefix of that form, compared lexicographically. Reports
// display days as DD-MM-YYYY.
package dates

import (
	"fmt"
	"strings"
	"time"
)

const isoMillis = "2006-01-02T15:04:05.000Z"

// FormatISO renders t in the millisecond UTC form stored in documents.
func FormatISO(t time.Time) string {
	return t.UTC().Format(isoMillis)
}

// ParseInstant accepts the timestamp forms the application historically
// wrote or received: RFC 3339 with or without fractional seconds, or a
// bare YYYY-MM-DD date.
func ParseInstant(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date: %q", s)
}

// YMD returns the calendar-day portion of an ISO timestamp or date string.
func YMD(s string) string {
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		return s[:i]
	}
	return s
}

// DDMMYYYY converts an ISO timestamp or YYYY-MM-DD string to the
// DD-MM-YYYY display form.
func DDMMYYYY(s string) string {
	ymd := YMD(s)
	parts := strings.SplitN(ymd, "-", 3)
	if len(parts) != 3 {
		return ymd
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0]
}

// IsYMD reports whether s is a valid zero-padded YYYY-MM-DD date string.
func IsYMD(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
